package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/logger"
	"freight_quote/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteValidation            = errors.New("quote validation failed")
	ErrEmptyBatch                 = errors.New("batch export needs at least one quote")
	ErrArtifactNotFound           = errors.New("artifact not found")
	ErrInvalidArtifactID          = errors.New("invalid artifact id")
	ErrArtifactArchiveUnavailable = errors.New("artifact archive not configured")
	ErrEmailSenderUnavailable     = errors.New("email sender not configured")
)

const (
	defaultEmailTemplate = "quote-offer"

	reportTransitThresholdDays = 30.0
	reportValueThreshold       = 10000.0
)

// QuoteValidationError halts single-document exports. Its message is the joined
// list of validation errors; errors.Is(err, ErrQuoteValidation) holds.
type QuoteValidationError struct {
	Reference string
	Errors    []string
}

func (e *QuoteValidationError) Error() string {
	return fmt.Sprintf("quote %s failed validation: %s", e.Reference, strings.Join(e.Errors, "; "))
}

func (e *QuoteValidationError) Is(target error) bool {
	return target == ErrQuoteValidation
}

type ExportOptions struct {
	Pretty bool
}

// BatchExportOptions controls ExportMultiple. With SkipValidation false every
// document must validate before the archive is built.
type BatchExportOptions struct {
	Pretty         bool
	SkipValidation bool
}

// EmailOverrides replaces the derived recipient, subject or template when set.
type EmailOverrides struct {
	To       string
	Subject  string
	Template string
}

// IQuoteExportUseCase orchestrates generator, validator and the artifact/mail
// boundaries.
//
// Failure semantics:
//   - ExportAsJSON and PrepareEmail return a *QuoteValidationError on invalid documents
//   - SendEmail never returns an error: any failure is logged and reported as false
//   - ExportMultiple validates only when SkipValidation is false

type IQuoteExportUseCase interface {
	ExportAsJSON(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, opts ExportOptions) (entities.Artifact, error)
	PrepareEmail(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, overrides EmailOverrides, opts ExportOptions) (entities.EmailPayload, error)
	SendEmail(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, overrides EmailOverrides, opts ExportOptions) bool
	GeneratePreview(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption) entities.QuotePreview
	ExportMultiple(ctx context.Context, quotes []entities.QuotePair, opts BatchExportOptions) (entities.Artifact, error)
	GenerateExportReport(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption) entities.ExportReport
	ValidateDocument(ctx context.Context, raw []byte) entities.ValidationResult
	ValidateAgainstSource(ctx context.Context, doc *entities.QuoteDocument, source entities.SelectedOption) entities.ValidationResult
	GetArtifact(ctx context.Context, id string) (entities.Artifact, error)
	ListArtifacts(ctx context.Context, reference string) ([]entities.Artifact, error)
}

type QuoteExportUseCase struct {
	generator        IQuoteGenerator
	validator        IQuoteValidator
	sink             interfaces.IArtifactSink
	mailer           interfaces.IEmailSender
	log              *logger.Logger
	defaultRecipient string
	now              func() time.Time
}

var _ IQuoteExportUseCase = (*QuoteExportUseCase)(nil)

// NewQuoteExportUseCase wires the exporter. sink and mailer may be nil: exports
// then skip emission and sends report false.
func NewQuoteExportUseCase(
	generator IQuoteGenerator,
	validator IQuoteValidator,
	sink interfaces.IArtifactSink,
	mailer interfaces.IEmailSender,
	log *logger.Logger,
	defaultRecipient string,
) *QuoteExportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteExportUseCase{
		generator:        generator,
		validator:        validator,
		sink:             sink,
		mailer:           mailer,
		log:              log,
		defaultRecipient: defaultRecipient,
		now:              time.Now,
	}
}

func (u *QuoteExportUseCase) ExportAsJSON(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, opts ExportOptions) (entities.Artifact, error) {
	doc, err := u.generateValid(ctx, selected, all)
	if err != nil {
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindJSON), "invalid").Inc()
		return entities.Artifact{}, err
	}

	content, err := marshalDocument(doc, opts.Pretty)
	if err != nil {
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindJSON), "failed").Inc()
		return entities.Artifact{}, err
	}

	artifact := u.newArtifact(doc.Reference, entities.ArtifactKindJSON, documentFilename(doc.Reference), entities.MimeTypeJSON, content)
	if err := u.emit(ctx, artifact); err != nil {
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindJSON), "failed").Inc()
		return entities.Artifact{}, err
	}

	metrics.Exports.WithLabelValues(string(entities.ArtifactKindJSON), "ok").Inc()
	u.log.Info(u.log.WithField(ctx, "reference", doc.Reference), "[quote][exporter] json export done")
	return artifact, nil
}

func (u *QuoteExportUseCase) PrepareEmail(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, overrides EmailOverrides, opts ExportOptions) (entities.EmailPayload, error) {
	payload, _, err := u.prepareEmail(ctx, selected, all, overrides, opts)
	return payload, err
}

func (u *QuoteExportUseCase) prepareEmail(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, overrides EmailOverrides, opts ExportOptions) (entities.EmailPayload, string, error) {
	doc, err := u.generateValid(ctx, selected, all)
	if err != nil {
		return entities.EmailPayload{}, "", err
	}

	content, err := marshalDocument(doc, opts.Pretty)
	if err != nil {
		return entities.EmailPayload{}, "", err
	}

	payload := entities.EmailPayload{
		To:       firstNonEmpty(overrides.To, u.defaultRecipient),
		Subject:  firstNonEmpty(overrides.Subject, fmt.Sprintf("Quote %s - %s", doc.Reference, doc.Client)),
		Template: firstNonEmpty(overrides.Template, defaultEmailTemplate),
		Attachments: []entities.EmailAttachment{{
			Filename:    documentFilename(doc.Reference),
			Content:     string(content),
			ContentType: entities.MimeTypeJSON,
		}},
	}
	return payload, doc.Reference, nil
}

// SendEmail prepares and sends the quote email. The attachment is archived after
// a successful send.
func (u *QuoteExportUseCase) SendEmail(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption, overrides EmailOverrides, opts ExportOptions) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			u.log.Error(ctx, "[quote][exporter] email send panicked", fmt.Errorf("%v", r))
			metrics.Exports.WithLabelValues(string(entities.ArtifactKindEmail), "failed").Inc()
			sent = false
		}
	}()

	payload, reference, err := u.prepareEmail(ctx, selected, all, overrides, opts)
	if err != nil {
		u.log.Error(ctx, "[quote][exporter] email preparation failed", err)
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindEmail), "invalid").Inc()
		return false
	}
	if u.mailer == nil {
		u.log.Error(ctx, "[quote][exporter] email send skipped", ErrEmailSenderUnavailable)
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindEmail), "failed").Inc()
		return false
	}

	ctx = u.log.WithFields(ctx, map[string]any{"to": payload.To, "subject": payload.Subject})
	if err := u.mailer.Send(ctx, payload); err != nil {
		u.log.Error(ctx, "[quote][exporter] email send failed", err)
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindEmail), "failed").Inc()
		return false
	}

	attachment := payload.Attachments[0]
	artifact := u.newArtifact(reference, entities.ArtifactKindEmail, attachment.Filename, attachment.ContentType, []byte(attachment.Content))
	if err := u.emit(ctx, artifact); err != nil {
		u.log.Warn(ctx, "[quote][exporter] email sent but attachment not archived: "+err.Error())
	}

	metrics.Exports.WithLabelValues(string(entities.ArtifactKindEmail), "ok").Inc()
	u.log.Info(ctx, "[quote][exporter] email sent")
	return true
}

func (u *QuoteExportUseCase) GeneratePreview(_ context.Context, selected entities.SelectedOption, all []entities.SelectedOption) entities.QuotePreview {
	doc := u.generator.Generate(selected, all)
	return entities.QuotePreview{Document: doc, Validation: u.validator.Validate(&doc)}
}

// ExportMultiple renders every pair into one zip archive named
// devis_lot_{YYYY-MM-DD}.zip.
func (u *QuoteExportUseCase) ExportMultiple(ctx context.Context, quotes []entities.QuotePair, opts BatchExportOptions) (entities.Artifact, error) {
	if len(quotes) == 0 {
		return entities.Artifact{}, ErrEmptyBatch
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	seen := make(map[string]int, len(quotes))

	for _, q := range quotes {
		doc := u.generator.Generate(q.SelectedOption, q.AllOptions)
		if !opts.SkipValidation {
			if res := u.validator.Validate(&doc); !res.IsValid {
				metrics.Exports.WithLabelValues(string(entities.ArtifactKindBatch), "invalid").Inc()
				return entities.Artifact{}, &QuoteValidationError{Reference: doc.Reference, Errors: res.Errors}
			}
		}

		content, err := marshalDocument(doc, opts.Pretty)
		if err != nil {
			return entities.Artifact{}, err
		}

		name := documentFilename(doc.Reference)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("devis_%s_%d.json", doc.Reference, n)
		}
		w, err := zw.Create(name)
		if err != nil {
			return entities.Artifact{}, fmt.Errorf("adding %s to archive: %w", name, err)
		}
		if _, err := w.Write(content); err != nil {
			return entities.Artifact{}, fmt.Errorf("writing %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return entities.Artifact{}, fmt.Errorf("closing archive: %w", err)
	}

	filename := fmt.Sprintf("devis_lot_%s.zip", u.now().UTC().Format(time.DateOnly))
	artifact := u.newArtifact(entities.BatchReference, entities.ArtifactKindBatch, filename, entities.MimeTypeZip, buf.Bytes())
	if err := u.emit(ctx, artifact); err != nil {
		metrics.Exports.WithLabelValues(string(entities.ArtifactKindBatch), "failed").Inc()
		return entities.Artifact{}, err
	}

	metrics.Exports.WithLabelValues(string(entities.ArtifactKindBatch), "ok").Inc()
	u.log.Info(u.log.WithField(ctx, "documents", len(quotes)), "[quote][exporter] batch export done")
	return artifact, nil
}

// GenerateExportReport summarizes one document. Recommendations are advisory text.
func (u *QuoteExportUseCase) GenerateExportReport(_ context.Context, selected entities.SelectedOption, all []entities.SelectedOption) entities.ExportReport {
	doc := u.generator.Generate(selected, all)
	res := u.validator.Validate(&doc)

	total := decimal.Zero
	for _, t := range doc.Totals {
		total = total.Add(decimal.NewFromFloat(t.GrandTotal))
	}

	avgTransit := 0.0
	if len(doc.Options) > 0 {
		sum := 0.0
		for _, o := range doc.Options {
			sum += o.TransitTime
		}
		avgTransit = sum / float64(len(doc.Options))
	}

	stats := entities.ExportStatistics{
		TotalOptions:       len(doc.Options),
		TotalContainers:    doc.ContainerCount(),
		TotalValue:         total.Round(2).InexactFloat64(),
		AverageTransitTime: avgTransit,
	}

	recommendations := []string{}
	if len(res.Warnings) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Review the %d validation warning(s) before sending the quote.", len(res.Warnings)))
	}
	if stats.AverageTransitTime > reportTransitThresholdDays {
		recommendations = append(recommendations, "Average transit time exceeds 30 days; consider offering a faster routing.")
	}
	if stats.TotalValue > reportValueThreshold {
		recommendations = append(recommendations, "Total quote value exceeds 10000; consider a volume discount.")
	}

	return entities.ExportReport{
		Document:        doc,
		Validation:      res,
		Statistics:      stats,
		Recommendations: recommendations,
	}
}

func (u *QuoteExportUseCase) ValidateDocument(_ context.Context, raw []byte) entities.ValidationResult {
	return u.validator.ValidateJSON(raw)
}

func (u *QuoteExportUseCase) ValidateAgainstSource(_ context.Context, doc *entities.QuoteDocument, source entities.SelectedOption) entities.ValidationResult {
	return u.validator.ValidateAgainstSource(doc, source)
}

func (u *QuoteExportUseCase) GetArtifact(ctx context.Context, id string) (entities.Artifact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Artifact{}, ErrInvalidArtifactID
	}
	archive, ok := u.sink.(interfaces.IArtifactArchive)
	if !ok {
		return entities.Artifact{}, ErrArtifactArchiveUnavailable
	}

	a, err := archive.GetByID(ctx, id)
	if err != nil {
		return entities.Artifact{}, err
	}
	if a.ID == "" {
		return entities.Artifact{}, ErrArtifactNotFound
	}
	return a, nil
}

func (u *QuoteExportUseCase) ListArtifacts(ctx context.Context, reference string) ([]entities.Artifact, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrInvalidArtifactID
	}
	archive, ok := u.sink.(interfaces.IArtifactArchive)
	if !ok {
		return nil, ErrArtifactArchiveUnavailable
	}
	return archive.ListByReference(ctx, reference)
}

// generateValid is the validate-or-stop step shared by single-document exports.
func (u *QuoteExportUseCase) generateValid(ctx context.Context, selected entities.SelectedOption, all []entities.SelectedOption) (entities.QuoteDocument, error) {
	doc := u.generator.Generate(selected, all)
	res := u.validator.Validate(&doc)
	if !res.IsValid {
		err := &QuoteValidationError{Reference: doc.Reference, Errors: res.Errors}
		u.log.Warn(u.log.WithField(ctx, "reference", doc.Reference), "[quote][exporter] "+err.Error())
		return entities.QuoteDocument{}, err
	}
	return doc, nil
}

func (u *QuoteExportUseCase) newArtifact(reference string, kind entities.ArtifactKind, filename, mimeType string, content []byte) entities.Artifact {
	return entities.Artifact{
		ID:        uuid.NewString(),
		Reference: reference,
		Kind:      kind,
		Filename:  filename,
		MimeType:  mimeType,
		Content:   content,
		Size:      len(content),
		CreatedAt: u.now().UTC(),
	}
}

func (u *QuoteExportUseCase) emit(ctx context.Context, artifact entities.Artifact) error {
	if u.sink == nil {
		return nil
	}
	if err := u.sink.Emit(ctx, artifact); err != nil {
		return fmt.Errorf("emitting %s: %w", artifact.Filename, err)
	}
	return nil
}

func marshalDocument(doc entities.QuoteDocument, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func documentFilename(reference string) string {
	return fmt.Sprintf("devis_%s.json", reference)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
