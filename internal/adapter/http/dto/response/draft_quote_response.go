package response

import (
	"freight_quote/internal/domain/entities"
	"time"
)

type DraftQuoteResponse struct {
	ResumeToken string                           `json:"resume_token"`
	Status      string                           `json:"status"`
	Payload     entities.CreateDraftQuoteRequest `json:"payload"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
}

func FromDraftQuote(d entities.DraftQuote) DraftQuoteResponse {
	return DraftQuoteResponse{
		ResumeToken: d.ResumeToken,
		Status:      string(d.Status),
		Payload:     d.Payload,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type ResumeTokenResponse struct {
	ResumeToken string `json:"resume_token"`
}
