package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	request "freight_quote/internal/adapter/http/dto/request"
	response "freight_quote/internal/adapter/http/dto/response"
	"freight_quote/internal/usecase"
	"freight_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler exposes the quote document pipeline: preview, validation,
// exports, email and the artifact archive.
type QuoteHandler struct {
	usecase             usecase.IQuoteExportUseCase
	batchSkipValidation bool
}

func NewQuoteHandler(uc usecase.IQuoteExportUseCase, batchSkipValidation bool) *QuoteHandler {
	return &QuoteHandler{usecase: uc, batchSkipValidation: batchSkipValidation}
}

// Preview godoc
// @Summary      Generate and validate a quote without side effects
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.QuoteExportRequest true "Selected option and candidates"
// @Success      200 {object} entities.QuotePreview
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var payload request.QuoteExportRequest
	if !bindQuote(c, &payload) {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GeneratePreview(c.Request.Context(), payload.SelectedOption, payload.AllOptions))
}

// Validate checks an externally supplied document. Undecodable bodies are
// reported as an invalid result, not as a request error.
// @Summary      Validate a quote document
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Success      200 {object} entities.ValidationResult
// @Router       /quotes/validate [post]
func (h *QuoteHandler) Validate(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.ValidateDocument(c.Request.Context(), raw))
}

// ValidateAgainstSource godoc
// @Summary      Cross-check a document against its source option
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.SourceValidationRequest true "Document and source option"
// @Success      200 {object} entities.ValidationResult
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes/validate/source [post]
func (h *QuoteHandler) ValidateAgainstSource(c *gin.Context) {
	var payload request.SourceValidationRequest
	if !bindQuote(c, &payload) {
		return
	}
	c.JSON(http.StatusOK, h.usecase.ValidateAgainstSource(c.Request.Context(), payload.Document, payload.Source))
}

// ExportJSON godoc
// @Summary      Export a quote as a JSON file
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.QuoteExportRequest true "Selected option and candidates"
// @Success      200 {object} entities.QuoteDocument
// @Failure      422 {object} pkg.HTTPError
// @Router       /quotes/export [post]
func (h *QuoteHandler) ExportJSON(c *gin.Context) {
	var payload request.QuoteExportRequest
	if !bindQuote(c, &payload) {
		return
	}

	artifact, err := h.usecase.ExportAsJSON(c.Request.Context(), payload.SelectedOption, payload.AllOptions,
		usecase.ExportOptions{Pretty: payload.ResolvePretty()})
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}
	writeAttachment(c, artifact.Filename, artifact.MimeType, artifact.Content)
}

// ExportBatch godoc
// @Summary      Export several quotes as one zip archive
// @Tags         quotes
// @Accept       json
// @Produce      application/zip
// @Param        request body request.BatchExportRequest true "Quote pairs"
// @Success      200 {file} file
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /quotes/export/batch [post]
func (h *QuoteHandler) ExportBatch(c *gin.Context) {
	var payload request.BatchExportRequest
	if !bindQuote(c, &payload) {
		return
	}

	artifact, err := h.usecase.ExportMultiple(c.Request.Context(), payload.Quotes, usecase.BatchExportOptions{
		Pretty:         payload.ResolvePretty(),
		SkipValidation: payload.ResolveSkipValidation(h.batchSkipValidation),
	})
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}
	writeAttachment(c, artifact.Filename, artifact.MimeType, artifact.Content)
}

// PrepareEmail godoc
// @Summary      Build the quote email payload
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.EmailRequest true "Selected option, candidates and overrides"
// @Success      200 {object} entities.EmailPayload
// @Failure      422 {object} pkg.HTTPError
// @Router       /quotes/email [post]
func (h *QuoteHandler) PrepareEmail(c *gin.Context) {
	var payload request.EmailRequest
	if !bindQuote(c, &payload) {
		return
	}

	email, err := h.usecase.PrepareEmail(c.Request.Context(), payload.SelectedOption, payload.AllOptions,
		emailOverrides(payload), usecase.ExportOptions{Pretty: payload.ResolvePretty()})
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, email)
}

// SendEmail always answers 200; delivery failures only flip "sent".
// @Summary      Send the quote email
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.EmailRequest true "Selected option, candidates and overrides"
// @Success      200 {object} response.SendEmailResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes/email/send [post]
func (h *QuoteHandler) SendEmail(c *gin.Context) {
	var payload request.EmailRequest
	if !bindQuote(c, &payload) {
		return
	}

	sent := h.usecase.SendEmail(c.Request.Context(), payload.SelectedOption, payload.AllOptions,
		emailOverrides(payload), usecase.ExportOptions{Pretty: payload.ResolvePretty()})
	c.JSON(http.StatusOK, response.SendEmailResponse{Sent: sent})
}

// Report godoc
// @Summary      Statistics and recommendations for a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body request.QuoteExportRequest true "Selected option and candidates"
// @Success      200 {object} entities.ExportReport
// @Router       /quotes/report [post]
func (h *QuoteHandler) Report(c *gin.Context) {
	var payload request.QuoteExportRequest
	if !bindQuote(c, &payload) {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GenerateExportReport(c.Request.Context(), payload.SelectedOption, payload.AllOptions))
}

// DownloadArtifact godoc
// @Summary      Download an archived export
// @Tags         exports
// @Produce      octet-stream
// @Param        id path string true "Artifact id"
// @Success      200 {file} file
// @Failure      404 {object} pkg.HTTPError
// @Router       /exports/{id} [get]
func (h *QuoteHandler) DownloadArtifact(c *gin.Context) {
	artifact, err := h.usecase.GetArtifact(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}
	writeAttachment(c, artifact.Filename, artifact.MimeType, artifact.Content)
}

// ListArtifacts godoc
// @Summary      List archived exports of a quote reference
// @Tags         exports
// @Produce      json
// @Param        reference path string true "Quote reference"
// @Success      200 {array} response.ArtifactResponse
// @Router       /quotes/{reference}/exports [get]
func (h *QuoteHandler) ListArtifacts(c *gin.Context) {
	items, err := h.usecase.ListArtifacts(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromArtifacts(items))
}

func bindQuote(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return false
	}
	return true
}

func emailOverrides(r request.EmailRequest) usecase.EmailOverrides {
	return usecase.EmailOverrides{
		To:       r.ResolveTo(),
		Subject:  r.ResolveSubject(),
		Template: r.ResolveTemplate(),
	}
}

func writeAttachment(c *gin.Context, filename, mimeType string, content []byte) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, mimeType, content)
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	var invalid *usecase.QuoteValidationError
	switch {
	case errors.As(err, &invalid):
		return pkg.NewDomainError("QUOTE_INVALID", "Quote document failed validation", err, http.StatusUnprocessableEntity).
			WithDetails(invalid.Errors)
	case errors.Is(err, usecase.ErrQuoteValidation):
		return pkg.NewDomainError("QUOTE_INVALID", "Quote document failed validation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEmptyBatch), errors.Is(err, usecase.ErrInvalidArtifactID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArtifactNotFound):
		return pkg.NewDomainErrorSimple("ARTIFACT_NOT_FOUND", "Artifact not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArtifactArchiveUnavailable):
		return pkg.NewDomainErrorSimple("ARCHIVE_UNAVAILABLE", "Artifact archive is not configured", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
