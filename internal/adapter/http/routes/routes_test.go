package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_quote/internal/adapter/http/handlers"
	"freight_quote/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRoutesRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, handlers.NewQuoteHandler(mocks.NewMockIQuoteExportUseCase(ctrl), false))
	addDraftRoutes(v1, handlers.NewDraftQuoteHandler(mocks.NewMockIDraftQuoteUseCase(ctrl)))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"POST /v1/quotes/preview",
		"POST /v1/quotes/validate",
		"POST /v1/quotes/validate/source",
		"POST /v1/quotes/export",
		"POST /v1/quotes/export/batch",
		"POST /v1/quotes/email",
		"POST /v1/quotes/email/send",
		"POST /v1/quotes/report",
		"GET /v1/quotes/:reference/exports",
		"GET /v1/exports/:id",
		"POST /v1/drafts/validate",
		"POST /v1/drafts/submission-check",
		"POST /v1/drafts/resume-token",
		"PUT /v1/drafts/:resume_token",
		"GET /v1/drafts/:resume_token",
		"POST /v1/drafts/:resume_token/submit",
	}
	for _, w := range want {
		if !registered[w] {
			t.Fatalf("route %s not registered", w)
		}
	}
	if len(registered) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(registered))
	}
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
