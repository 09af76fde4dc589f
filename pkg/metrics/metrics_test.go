package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGinMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Register()
	Register()

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ping", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ping", "200"))

	if after-before != 1 {
		t.Fatalf("expected one recorded request, got %v", after-before)
	}
}

func TestHandlerExposesQuoteCollectors(t *testing.T) {
	Register()
	DocumentsGenerated.Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quote_documents_generated_total") {
		t.Fatalf("expected quote collector in exposition")
	}
}
