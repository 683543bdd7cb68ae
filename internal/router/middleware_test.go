package router_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/router"
)

func TestURLMiddlewareContextSet(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	u, _ := url.Parse("https://tally.example.com:8081/api")
	r.Use(router.URLMiddleware(u))
	r.GET("/schedules", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(models.DBContextURL)))
	})

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/schedules", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://tally.example.com:8081/api", w.Body.String())
}
