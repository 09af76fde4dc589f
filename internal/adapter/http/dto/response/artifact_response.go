package response

import (
	"freight_quote/internal/domain/entities"
	"time"
)

// ArtifactResponse describes an archived export. Content is served by the
// download route, never inline.
type ArtifactResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Kind      string    `json:"kind"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mime_type"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func FromArtifact(a entities.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ID:        a.ID,
		Reference: a.Reference,
		Kind:      string(a.Kind),
		Filename:  a.Filename,
		MimeType:  a.MimeType,
		Size:      a.Size,
		CreatedAt: a.CreatedAt,
	}
}

func FromArtifacts(items []entities.Artifact) []ArtifactResponse {
	out := make([]ArtifactResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromArtifact(a))
	}
	return out
}

type SendEmailResponse struct {
	Sent bool `json:"sent"`
}
