package handlers

import (
	"errors"
	"net/http"

	response "freight_quote/internal/adapter/http/dto/response"
	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase"
	"freight_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid draft payload", http.StatusBadRequest)
)

// DraftQuoteHandler serves the quote request wizard: form checks, resume
// tokens and draft persistence.
type DraftQuoteHandler struct {
	usecase usecase.IDraftQuoteUseCase
}

func NewDraftQuoteHandler(uc usecase.IDraftQuoteUseCase) *DraftQuoteHandler {
	return &DraftQuoteHandler{usecase: uc}
}

// ValidateForm reports schema issues with their JSON paths. It never fails on
// an invalid form, only on an undecodable body.
// @Summary      Validate a draft form against its schema
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body entities.DraftQuoteForm true "Wizard state"
// @Success      200 {object} usecase.SchemaValidation
// @Failure      400 {object} pkg.HTTPError
// @Router       /drafts/validate [post]
func (h *DraftQuoteHandler) ValidateForm(c *gin.Context) {
	form, ok := bindDraftForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.ValidateForm(form))
}

// CheckSubmission godoc
// @Summary      Check a draft form against the submission rules
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body entities.DraftQuoteForm true "Wizard state"
// @Success      200 {object} usecase.SubmissionCheck
// @Failure      400 {object} pkg.HTTPError
// @Router       /drafts/submission-check [post]
func (h *DraftQuoteHandler) CheckSubmission(c *gin.Context) {
	form, ok := bindDraftForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.CheckSubmission(form))
}

// CreateResumeToken godoc
// @Summary      Mint a resume token
// @Tags         drafts
// @Produce      json
// @Success      201 {object} response.ResumeTokenResponse
// @Router       /drafts/resume-token [post]
func (h *DraftQuoteHandler) CreateResumeToken(c *gin.Context) {
	c.JSON(http.StatusCreated, response.ResumeTokenResponse{ResumeToken: h.usecase.CreateResumeToken()})
}

// SaveDraft godoc
// @Summary      Save the wizard state under a resume token
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        resume_token path string true "Resume token"
// @Param        request body entities.DraftQuoteForm true "Wizard state"
// @Success      200 {object} response.DraftQuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/{resume_token} [put]
func (h *DraftQuoteHandler) SaveDraft(c *gin.Context) {
	form, ok := bindDraftForm(c)
	if !ok {
		return
	}

	d, err := h.usecase.SaveDraft(c.Request.Context(), c.Param("resume_token"), form)
	if err != nil {
		writeAppError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraftQuote(d))
}

// GetDraft godoc
// @Summary      Load a saved draft
// @Tags         drafts
// @Produce      json
// @Param        resume_token path string true "Resume token"
// @Success      200 {object} response.DraftQuoteResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /drafts/{resume_token} [get]
func (h *DraftQuoteHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("resume_token"))
	if err != nil {
		writeAppError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraftQuote(d))
}

// SubmitDraft godoc
// @Summary      Submit a draft quote request
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        resume_token path string true "Resume token"
// @Param        request body entities.DraftQuoteForm true "Wizard state"
// @Success      200 {object} response.DraftQuoteResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /drafts/{resume_token}/submit [post]
func (h *DraftQuoteHandler) SubmitDraft(c *gin.Context) {
	form, ok := bindDraftForm(c)
	if !ok {
		return
	}

	d, err := h.usecase.SubmitDraft(c.Request.Context(), c.Param("resume_token"), form)
	if err != nil {
		writeAppError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraftQuote(d))
}

func bindDraftForm(c *gin.Context) (entities.DraftQuoteForm, bool) {
	var form entities.DraftQuoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return entities.DraftQuoteForm{}, false
	}
	return form, true
}

func mapDraftError(err error) *pkg.AppError {
	var invalid *usecase.DraftFormError
	switch {
	case errors.As(err, &invalid):
		return pkg.NewDomainError("DRAFT_INVALID", "Draft form is invalid", err, http.StatusUnprocessableEntity).
			WithDetails(draftErrorDetails(invalid))
	case errors.Is(err, usecase.ErrInvalidResumeToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid resume token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftAlreadySubmitted):
		return pkg.NewDomainErrorSimple("DRAFT_ALREADY_SUBMITTED", "Draft was already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// draftErrorDetails renders schema issues as "path: message"; submission
// errors are already readable.
func draftErrorDetails(e *usecase.DraftFormError) []string {
	if len(e.Issues) == 0 {
		return e.Errors
	}
	details := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		details = append(details, issue.Path+": "+issue.Message)
	}
	return details
}
