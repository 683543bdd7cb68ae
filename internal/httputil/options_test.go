package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tally-finance/backend/internal/httputil"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		f     gin.HandlerFunc
		allow string
	}{
		{httputil.OptionsGet, "OPTIONS, GET"},
		{httputil.OptionsPost, "OPTIONS, POST"},
		{httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{httputil.OptionsGetDelete, "OPTIONS, GET, DELETE"},
		{httputil.OptionsGetPatch, "OPTIONS, GET, PATCH"},
		{httputil.OptionsGetPatchDelete, "OPTIONS, GET, PATCH, DELETE"},
		{httputil.OptionsPatch, "OPTIONS, PATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.allow, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)
			r.OPTIONS("/", tt.f)

			c.Request, _ = http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
