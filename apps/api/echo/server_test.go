package echoapi_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func Test_server(t *testing.T) {
	srv, _ := setup(t)

	tests := []httpTest{
		{
			name: "invalid token", path: "/v1/common/catalog", token: "not-a-token",
			wantCode: http.StatusUnauthorized, wantData: []byte(`{"error": "invalid or expired jwt"}`),
		},
		{
			name: "wrong secret", path: "/v1/common/catalog",
			token:    "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiJ1MDAwMDAwMSIsInJvbGUiOiJBZG1pbmlzdHJhdG9yIn0.ZmFrZQ",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown class key", path: classURL[:len(classURL)-4] + "20x4/students", token: getToken(t, professor),
			wantCode: http.StatusNotFound,
		},
	}
	runHTTPTests(t, srv, tests)

	req, rec := newAuthRequest(http.MethodGet, "/", "")
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req, rec = newAuthRequest(http.MethodGet, "/metrics", "")
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `lms_http_requests_total{code="200",method="GET",route="/"} 1`), body)
	assert.Contains(t, body, `route="/v1/common/catalog"`)
}
