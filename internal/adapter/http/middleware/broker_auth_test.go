package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func token(payload string) string {
	enc := base64.RawURLEncoding
	return "Bearer " + enc.EncodeToString([]byte(`{"alg":"none"}`)) + "." + enc.EncodeToString([]byte(payload)) + ".sig"
}

func newAuthRouter(devBypass bool) *gin.Engine {
	r := gin.New()
	r.GET("/v1/brokers/:broker_id/quotes", BrokerAuth(devBypass), func(c *gin.Context) {
		c.String(http.StatusOK, CallerBrokerID(c))
	})
	return r
}

func TestBrokerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		devBypass  bool
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "malformed token", headers: map[string]string{"Authorization": "Bearer abc"}, wantStatus: http.StatusUnauthorized},
		{name: "token without sub", headers: map[string]string{"Authorization": token(`{"iss":"x"}`)}, wantStatus: http.StatusUnauthorized},
		{name: "other broker", headers: map[string]string{"Authorization": token(`{"sub":"broker-2"}`)}, wantStatus: http.StatusForbidden},
		{name: "matching broker", headers: map[string]string{"Authorization": token(`{"sub":"broker-1"}`)}, wantStatus: http.StatusOK, wantBody: "broker-1"},
		{name: "bypass header ignored when disabled", headers: map[string]string{"X-Broker-ID": "broker-1"}, wantStatus: http.StatusUnauthorized},
		{name: "bypass header", devBypass: true, headers: map[string]string{"X-Broker-ID": "broker-1"}, wantStatus: http.StatusOK, wantBody: "broker-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.devBypass)
			req := httptest.NewRequest(http.MethodGet, "/v1/brokers/broker-1/quotes", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
