package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenlaunch/proposal-backend/internal/auth"
)

func setupRouter(t *testing.T) (*gin.Engine, *auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := auth.NewService("hunter2", "test-secret", time.Hour)
	r := gin.New()
	New(svc, 100).Register(r.Group("/api"))
	return r, svc
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r, svc := setupRouter(t)

	w := postLogin(r, `{"password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	assert.True(t, svc.Verify(resp.Token))
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := postLogin(r, `{"password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		OK   bool   `json:"ok"`
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Code)
}

func TestLogin_EmptyPassword(t *testing.T) {
	r, _ := setupRouter(t)

	for _, body := range []string{`{"password":""}`, `{"password":"   "}`, `{}`, `not json`} {
		w := postLogin(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestLogin_Throttled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := auth.NewService("hunter2", "test-secret", time.Hour)
	r := gin.New()
	New(svc, 2).Register(r.Group("/api"))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, postLogin(r, `{"password":"wrong"}`).Code)
	}

	// burst of 2, third attempt is throttled
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestAuthCheck(t *testing.T) {
	r, svc := setupRouter(t)

	token, err := svc.Issue("hunter2")
	require.NoError(t, err)

	check := func(header string) bool {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth-check", nil)
		if header != "" {
			req.Header.Set(auth.TokenHeader, header)
		}
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Authenticated bool `json:"authenticated"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Authenticated
	}

	assert.True(t, check(token))
	assert.False(t, check(""))
	assert.False(t, check("bogus"))
}
