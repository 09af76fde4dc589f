package request

import (
	"strings"

	"freight_quote/internal/domain/entities"
)

// QuoteExportRequest is the (selectedOption, allOptions) pair every quote
// endpoint works on. Pretty defaults to true.
type QuoteExportRequest struct {
	SelectedOption entities.SelectedOption   `json:"selectedOption"`
	AllOptions     []entities.SelectedOption `json:"allOptions"`
	Pretty         *bool                     `json:"pretty,omitempty"`
}

func (r QuoteExportRequest) ResolvePretty() bool {
	if r.Pretty == nil {
		return true
	}
	return *r.Pretty
}

// EmailRequest adds optional overrides of the derived recipient, subject and
// template.
type EmailRequest struct {
	QuoteExportRequest
	To       string `json:"to,omitempty" binding:"omitempty,email"`
	Subject  string `json:"subject,omitempty"`
	Template string `json:"template,omitempty"`
}

func (r EmailRequest) ResolveTo() string {
	return strings.TrimSpace(r.To)
}

func (r EmailRequest) ResolveSubject() string {
	return strings.TrimSpace(r.Subject)
}

func (r EmailRequest) ResolveTemplate() string {
	return strings.TrimSpace(r.Template)
}

type BatchExportRequest struct {
	Quotes         []entities.QuotePair `json:"quotes" binding:"required,min=1"`
	Pretty         *bool                `json:"pretty,omitempty"`
	SkipValidation *bool                `json:"skipValidation,omitempty"`
}

func (r BatchExportRequest) ResolvePretty() bool {
	if r.Pretty == nil {
		return true
	}
	return *r.Pretty
}

// ResolveSkipValidation falls back to the service default when the request
// does not say.
func (r BatchExportRequest) ResolveSkipValidation(def bool) bool {
	if r.SkipValidation == nil {
		return def
	}
	return *r.SkipValidation
}

// SourceValidationRequest cross-checks a document against the option it was
// generated from.
type SourceValidationRequest struct {
	Document *entities.QuoteDocument `json:"document" binding:"required"`
	Source   entities.SelectedOption `json:"source"`
}
