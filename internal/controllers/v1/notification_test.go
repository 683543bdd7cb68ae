package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
)

func (suite *TestSuiteStandard) createTestNotification(title string) models.Notification {
	n := models.Notification{
		UserID:      suite.userID,
		Kind:        models.NotificationBillReminder,
		Title:       title,
		Message:     "Testing",
		ReferenceID: uuid.New(),
	}
	suite.Require().NoError(suite.store.AddNotification(suite.T().Context(), &n))
	return n
}

func (suite *TestSuiteStandard) TestNotificationsMarkRead() {
	n := suite.createTestNotification("First")
	suite.createTestNotification("Second")

	var response v1.NotificationResponse
	suite.do(http.MethodPatch, suite.url("/notifications/%s", n.ID), map[string]any{"read": true}, &response)
	suite.Assert().True(response.Data.Read)
	suite.Assert().Equal("First", response.Data.Title)

	var list v1.NotificationListResponse
	suite.do(http.MethodGet, suite.url("/notifications?unread=true"), nil, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Second", list.Data[0].Title)

	suite.do(http.MethodGet, suite.url("/notifications"), nil, &list)
	suite.Assert().Len(list.Data, 2)

	suite.do(http.MethodPatch, suite.url("/notifications/%s", n.ID), map[string]any{"read": false}, &response)
	suite.Assert().False(response.Data.Read)
}

func (suite *TestSuiteStandard) TestNotificationsUpdateInvalid() {
	n := suite.createTestNotification("Bill")

	tests := []struct {
		name   string
		url    string
		body   any
		status int
		err    string
	}{
		{"No read field", suite.url("/notifications/%s", n.ID), map[string]any{"title": "x"}, http.StatusBadRequest, "the read field must be set"},
		{"Empty body", suite.url("/notifications/%s", n.ID), "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Wrong type", suite.url("/notifications/%s", n.ID), map[string]any{"read": "yes"}, http.StatusBadRequest, "cannot unmarshal"},
		{"Unknown", suite.url("/notifications/%s", uuid.New()), map[string]any{"read": true}, http.StatusNotFound, "there is no"},
		{"Invalid ID", suite.url("/notifications/nope"), map[string]any{"read": true}, http.StatusBadRequest, httputil.ErrInvalidUUID.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.NotificationResponse
			suite.do(http.MethodPatch, tt.url, tt.body, &response, tt.status)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestNotificationsOtherUser() {
	other := models.Notification{UserID: uuid.New(), Kind: models.NotificationBillReminder, Title: "Not yours"}
	suite.Require().NoError(suite.store.AddNotification(suite.T().Context(), &other))

	var list v1.NotificationListResponse
	suite.do(http.MethodGet, suite.url("/notifications"), nil, &list)
	suite.Assert().Len(list.Data, 0)

	suite.do(http.MethodPatch, suite.url("/notifications/%s", other.ID), map[string]any{"read": true}, nil, http.StatusNotFound)
}
