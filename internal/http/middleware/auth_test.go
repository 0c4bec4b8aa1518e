package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/visualenglish-backend/internal/platform/ctxutil"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	auth := services.NewAuthService(logger.Nop(), "secret")
	adminToken, err := auth.IssueToken("1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	teacherToken, _ := auth.IssueToken("2", "teacher", time.Hour)

	am := NewAuthMiddleware(logger.Nop(), auth)
	r := gin.New()
	r.Use(am.OptionalAuth())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.UserID(c.Request.Context()))
	})
	r.GET("/admin", am.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		path   string
		token  string
		status int
		body   string
	}{
		{"anonymous_default_user", "/whoami", "", http.StatusOK, ctxutil.DefaultUserID},
		{"token_user", "/whoami", teacherToken, http.StatusOK, "2"},
		{"bad_token", "/whoami", "garbage", http.StatusUnauthorized, ""},
		{"admin_anonymous", "/admin", "", http.StatusUnauthorized, ""},
		{"admin_teacher", "/admin", teacherToken, http.StatusForbidden, ""},
		{"admin_ok", "/admin", adminToken, http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status: want=%d got=%d body=%s", tc.status, rec.Code, rec.Body.String())
			}
			if tc.body != "" && rec.Body.String() != tc.body {
				t.Fatalf("body: want=%q got=%q", tc.body, rec.Body.String())
			}
		})
	}
}
