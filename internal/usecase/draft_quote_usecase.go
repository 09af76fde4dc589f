package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/logger"
	"freight_quote/pkg/metrics"
)

var (
	ErrInvalidResumeToken    = errors.New("invalid resume token")
	ErrDraftNotFound         = errors.New("draft not found")
	ErrDraftAlreadySubmitted = errors.New("draft already submitted")
	ErrInvalidDraftForm      = errors.New("invalid draft form")
)

// DraftFormError carries the findings that rejected a draft form. It matches
// ErrInvalidDraftForm with errors.Is.
type DraftFormError struct {
	Issues []SchemaIssue
	Errors []string
}

func (e *DraftFormError) Error() string {
	switch {
	case len(e.Issues) > 0:
		return fmt.Sprintf("%s: %s %s", ErrInvalidDraftForm, e.Issues[0].Path, e.Issues[0].Message)
	case len(e.Errors) > 0:
		return fmt.Sprintf("%s: %s", ErrInvalidDraftForm, e.Errors[0])
	}
	return ErrInvalidDraftForm.Error()
}

func (e *DraftFormError) Is(target error) bool {
	return target == ErrInvalidDraftForm
}

// IDraftQuoteUseCase exposes the quote request wizard operations.
//
//   - ValidateForm / CheckSubmission are pure checks over the form
//   - SaveDraft upserts the mapped payload under its resume token
//   - SubmitDraft re-checks the submission rules and moves the draft to "submitted"

type IDraftQuoteUseCase interface {
	ValidateForm(form entities.DraftQuoteForm) SchemaValidation
	CheckSubmission(form entities.DraftQuoteForm) SubmissionCheck
	CreateResumeToken() string
	SaveDraft(ctx context.Context, resumeToken string, form entities.DraftQuoteForm) (entities.DraftQuote, error)
	GetDraft(ctx context.Context, resumeToken string) (entities.DraftQuote, error)
	SubmitDraft(ctx context.Context, resumeToken string, form entities.DraftQuoteForm) (entities.DraftQuote, error)
}

type DraftQuoteUseCase struct {
	repo interfaces.IDraftQuoteRepository
	log  *logger.Logger
	now  func() time.Time
}

var _ IDraftQuoteUseCase = (*DraftQuoteUseCase)(nil)

func NewDraftQuoteUseCase(repo interfaces.IDraftQuoteRepository, log *logger.Logger) *DraftQuoteUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DraftQuoteUseCase{repo: repo, log: log, now: time.Now}
}

func (u *DraftQuoteUseCase) ValidateForm(form entities.DraftQuoteForm) SchemaValidation {
	return ValidateDraftQuoteForm(form)
}

func (u *DraftQuoteUseCase) CheckSubmission(form entities.DraftQuoteForm) SubmissionCheck {
	return ValidateFormForSubmission(form)
}

func (u *DraftQuoteUseCase) CreateResumeToken() string {
	return CreateResumeToken()
}

// SaveDraft stores an in-progress form. Only the structural schema is enforced;
// submission rules wait for SubmitDraft.
func (u *DraftQuoteUseCase) SaveDraft(ctx context.Context, resumeToken string, form entities.DraftQuoteForm) (entities.DraftQuote, error) {
	resumeToken = strings.TrimSpace(resumeToken)
	if !isResumeToken(resumeToken) {
		return entities.DraftQuote{}, ErrInvalidResumeToken
	}
	if v := ValidateDraftQuoteForm(form); !v.Success {
		return entities.DraftQuote{}, &DraftFormError{Issues: v.Error.Issues}
	}

	existing, err := u.repo.GetByResumeToken(ctx, resumeToken)
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if existing.Status == entities.DraftStatusSubmitted {
		return entities.DraftQuote{}, ErrDraftAlreadySubmitted
	}

	return u.persist(ctx, existing, resumeToken, form, entities.DraftStatusDraft)
}

func (u *DraftQuoteUseCase) GetDraft(ctx context.Context, resumeToken string) (entities.DraftQuote, error) {
	resumeToken = strings.TrimSpace(resumeToken)
	if !isResumeToken(resumeToken) {
		return entities.DraftQuote{}, ErrInvalidResumeToken
	}

	d, err := u.repo.GetByResumeToken(ctx, resumeToken)
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if d.ResumeToken == "" {
		return entities.DraftQuote{}, ErrDraftNotFound
	}
	return d, nil
}

// SubmitDraft accepts a draft that was never saved before as well: the resume
// token alone identifies it.
func (u *DraftQuoteUseCase) SubmitDraft(ctx context.Context, resumeToken string, form entities.DraftQuoteForm) (entities.DraftQuote, error) {
	resumeToken = strings.TrimSpace(resumeToken)
	if !isResumeToken(resumeToken) {
		return entities.DraftQuote{}, ErrInvalidResumeToken
	}
	if check := ValidateFormForSubmission(form); !check.IsValid {
		return entities.DraftQuote{}, &DraftFormError{Errors: check.Errors}
	}

	existing, err := u.repo.GetByResumeToken(ctx, resumeToken)
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if existing.Status == entities.DraftStatusSubmitted {
		return entities.DraftQuote{}, ErrDraftAlreadySubmitted
	}

	return u.persist(ctx, existing, resumeToken, form, entities.DraftStatusSubmitted)
}

func (u *DraftQuoteUseCase) persist(ctx context.Context, existing entities.DraftQuote, token string, form entities.DraftQuoteForm, status entities.DraftStatus) (entities.DraftQuote, error) {
	now := u.now().UTC()
	payload := ToDraftQuotePayload(form, token, now)

	createdAt := now
	if existing.ResumeToken != "" && !existing.CreatedAt.IsZero() {
		createdAt = existing.CreatedAt
		payload.CreatedAt = existing.Payload.CreatedAt
	}

	saved, err := u.repo.Save(ctx, entities.DraftQuote{
		ResumeToken: token,
		Status:      status,
		Payload:     payload,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	})
	if errors.Is(err, interfaces.ErrDraftLocked) {
		u.log.Warn(ctx, fmt.Sprintf("[draft][usecase] draft submitted concurrently resume_token=%s", token))
		return entities.DraftQuote{}, ErrDraftAlreadySubmitted
	}
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("[draft][usecase] save failed resume_token=%s status=%s", token, status), err)
		return entities.DraftQuote{}, err
	}

	metrics.DraftsSaved.WithLabelValues(string(status)).Inc()
	u.log.Info(ctx, fmt.Sprintf("[draft][usecase] saved resume_token=%s status=%s options=%d", token, status, len(payload.Options)))
	return saved, nil
}

func isResumeToken(token string) bool {
	return resumeTokenPattern.MatchString(token)
}

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_usecases.go -package=mocks freight_quote/internal/usecase IQuoteExportUseCase,IDraftQuoteUseCase
