package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"freight_quote/internal/adapter/http/handlers/mocks"
	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	draftToken = "resume_1741343400000_k3j9x2ab"
	draftBody  = `{"basics":{"cargoType":"FCL","incoterm":"fob","origin":{"city":"Marseille","country":"FR"},"destination":{"city":"Shanghai","country":"CN"},"requestedDeparture":"2025-04-01","goodsDescription":"Machine parts"},"currentOption":{"seafreights":[{"carrier":"CMA CGM","containerType":"40' HC","rate":1650}]}}`
)

func newDraftRouter(h *DraftQuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/drafts/validate", h.ValidateForm)
	r.POST("/v1/drafts/submission-check", h.CheckSubmission)
	r.POST("/v1/drafts/resume-token", h.CreateResumeToken)
	r.PUT("/v1/drafts/:resume_token", h.SaveDraft)
	r.GET("/v1/drafts/:resume_token", h.GetDraft)
	r.POST("/v1/drafts/:resume_token/submit", h.SubmitDraft)
	return r
}

func TestDraftQuoteHandler_ValidateForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/drafts/validate", `{"basics":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schema issues are a 200 result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().
			ValidateForm(gomock.Any()).
			DoAndReturn(func(form entities.DraftQuoteForm) usecase.SchemaValidation {
				if form.Basics.Incoterm != "fob" || len(form.CurrentOption.Seafreights) != 1 {
					t.Fatalf("unexpected form: %+v", form)
				}
				return usecase.SchemaValidation{
					Success: false,
					Error:   &usecase.SchemaError{Issues: []usecase.SchemaIssue{{Path: "basics.incoterm", Tag: "required", Message: "is required"}}},
				}
			})

		w := doJSON(r, http.MethodPost, "/v1/drafts/validate", draftBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got usecase.SchemaValidation
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.Success || got.Error == nil || got.Error.Issues[0].Path != "basics.incoterm" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestDraftQuoteHandler_CheckSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
	r := newDraftRouter(NewDraftQuoteHandler(uc))

	uc.EXPECT().
		CheckSubmission(gomock.Any()).
		Return(usecase.SubmissionCheck{IsValid: false, Errors: []string{"Goods description is required"}})

	w := doJSON(r, http.MethodPost, "/v1/drafts/submission-check", draftBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got usecase.SubmissionCheck
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.IsValid || len(got.Errors) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestDraftQuoteHandler_CreateResumeToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
	r := newDraftRouter(NewDraftQuoteHandler(uc))

	uc.EXPECT().CreateResumeToken().Return(draftToken)

	w := doJSON(r, http.MethodPost, "/v1/drafts/resume-token", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w.Body.String() != `{"resume_token":"`+draftToken+`"}` {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestDraftQuoteHandler_SaveDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		now := time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)
		uc.EXPECT().
			SaveDraft(gomock.Any(), draftToken, gomock.Any()).
			Return(entities.DraftQuote{
				ResumeToken: draftToken,
				Status:      entities.DraftStatusDraft,
				Payload:     entities.CreateDraftQuoteRequest{ResumeToken: draftToken, FormVersion: "1.0", Incoterm: "FOB"},
				CreatedAt:   now,
				UpdatedAt:   now,
			}, nil)

		w := doJSON(r, http.MethodPut, "/v1/drafts/"+draftToken, draftBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["status"] != "draft" || got["resume_token"] != draftToken {
			t.Fatalf("unexpected body: %+v", got)
		}
		payload, _ := got["payload"].(map[string]any)
		if payload["incoterm"] != "FOB" || payload["formVersion"] != "1.0" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	})

	t.Run("schema issues map to 422 with paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().
			SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.DraftQuote{}, &usecase.DraftFormError{Issues: []usecase.SchemaIssue{
				{Path: "basics.origin.country", Tag: "required", Message: "is required"},
			}})

		w := doJSON(r, http.MethodPut, "/v1/drafts/"+draftToken, draftBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		got := decodeHTTPError(t, w)
		if got.Code != "DRAFT_INVALID" || len(got.Details) != 1 || got.Details[0] != "basics.origin.country: is required" {
			t.Fatalf("unexpected error body: %+v", got)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"bad token", usecase.ErrInvalidResumeToken, http.StatusBadRequest, "INVALID_REQUEST"},
			{"submitted", usecase.ErrDraftAlreadySubmitted, http.StatusConflict, "DRAFT_ALREADY_SUBMITTED"},
			{"internal", errors.New("throttled"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
				r := newDraftRouter(NewDraftQuoteHandler(uc))

				uc.EXPECT().SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.DraftQuote{}, tc.err)

				w := doJSON(r, http.MethodPut, "/v1/drafts/"+draftToken, draftBody)
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				if got := decodeHTTPError(t, w); got.Code != tc.code {
					t.Fatalf("expected code %s, got %+v", tc.code, got)
				}
			})
		}
	})
}

func TestDraftQuoteHandler_GetDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().GetDraft(gomock.Any(), draftToken).Return(entities.DraftQuote{}, usecase.ErrDraftNotFound)

		w := doJSON(r, http.MethodGet, "/v1/drafts/"+draftToken, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().
			GetDraft(gomock.Any(), draftToken).
			Return(entities.DraftQuote{ResumeToken: draftToken, Status: entities.DraftStatusSubmitted}, nil)

		w := doJSON(r, http.MethodGet, "/v1/drafts/"+draftToken, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftQuoteHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submission errors map to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().
			SubmitDraft(gomock.Any(), draftToken, gomock.Any()).
			Return(entities.DraftQuote{}, &usecase.DraftFormError{Errors: []string{"Add at least one seafreight, haulage or service to the current option"}})

		w := doJSON(r, http.MethodPost, "/v1/drafts/"+draftToken+"/submit", draftBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		got := decodeHTTPError(t, w)
		if len(got.Details) != 1 || got.Details[0] != "Add at least one seafreight, haulage or service to the current option" {
			t.Fatalf("unexpected details: %+v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftQuoteUseCase(ctrl)
		r := newDraftRouter(NewDraftQuoteHandler(uc))

		uc.EXPECT().
			SubmitDraft(gomock.Any(), draftToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, token string, form entities.DraftQuoteForm) (entities.DraftQuote, error) {
				if form.Basics.GoodsDescription != "Machine parts" {
					t.Fatalf("unexpected form: %+v", form.Basics)
				}
				return entities.DraftQuote{ResumeToken: token, Status: entities.DraftStatusSubmitted}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/drafts/"+draftToken+"/submit", draftBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["status"] != "submitted" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}
