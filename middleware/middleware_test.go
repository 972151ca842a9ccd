package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	return newRouterWithCookie(CookieOptions{})
}

func newRouterWithCookie(opts CookieOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(), CORS([]string{"https://campus.example"}), Session(opts))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestSessionIssuesCookie(t *testing.T) {
	r := newRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(SessionHeader))
}

func TestSessionCookieAttributes(t *testing.T) {
	tests := []struct {
		sameSite   string
		secure     bool
		wantMode   http.SameSite
		wantSecure bool
	}{
		{sameSite: "lax", wantMode: http.SameSiteLaxMode},
		{sameSite: "Strict", secure: true, wantMode: http.SameSiteStrictMode, wantSecure: true},
		{sameSite: "none", wantMode: http.SameSiteNoneMode, wantSecure: true},
		{sameSite: "bogus", wantMode: http.SameSiteLaxMode},
	}
	for _, tc := range tests {
		t.Run(tc.sameSite, func(t *testing.T) {
			r := newRouterWithCookie(NewCookieOptions(tc.sameSite, tc.secure))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, tc.wantMode, cookies[0].SameSite)
			assert.Equal(t, tc.wantSecure, cookies[0].Secure)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestSessionReusesToken(t *testing.T) {
	r := newRouter()
	const token = "0b4e7a0e-5c1f-4d8e-9a53-0d4b1c2f3a44"

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, token, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, token, rec.Body.String())
}

func TestSessionRejectsMalformedToken(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", rec.Body.String())
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	req.Header.Set("Origin", "https://campus.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://campus.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
