package entities

import "time"

const (
	MimeTypeJSON = "application/json"
	MimeTypeZip  = "application/zip"
)

// ArtifactKind tells how an artifact left the exporter.
type ArtifactKind string

const (
	ArtifactKindJSON  ArtifactKind = "json"
	ArtifactKindBatch ArtifactKind = "batch"
	ArtifactKindEmail ArtifactKind = "email"
)

// Artifact is a rendered export handed to an artifact sink.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference
//
// Batch archives carry BatchReference as their reference.
type Artifact struct {
	ID        string       `json:"id"`
	Reference string       `json:"reference"`
	Kind      ArtifactKind `json:"kind"`
	Filename  string       `json:"filename"`
	MimeType  string       `json:"mime_type"`
	Content   []byte       `json:"-"`
	Size      int          `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
}

const BatchReference = "batch"

// EmailAttachment is one file attached to an outbound quote email.
type EmailAttachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

// EmailPayload is handed to the external mail transport as is.
type EmailPayload struct {
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	Template    string            `json:"template"`
	Attachments []EmailAttachment `json:"attachments"`
}

// QuotePreview is the side-effect free result of generate + validate.
type QuotePreview struct {
	Document   QuoteDocument    `json:"document"`
	Validation ValidationResult `json:"validation"`
}

type ExportStatistics struct {
	TotalOptions       int     `json:"totalOptions"`
	TotalContainers    int     `json:"totalContainers"`
	TotalValue         float64 `json:"totalValue"`
	AverageTransitTime float64 `json:"averageTransitTime"`
}

// ExportReport is advisory only; recommendations are plain text.
type ExportReport struct {
	Document        QuoteDocument    `json:"document"`
	Validation      ValidationResult `json:"validation"`
	Statistics      ExportStatistics `json:"statistics"`
	Recommendations []string         `json:"recommendations"`
}
