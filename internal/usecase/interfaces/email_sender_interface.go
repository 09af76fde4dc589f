package interfaces

import (
	"context"
	"freight_quote/internal/domain/entities"
)

// IEmailSender abstracts the outbound mail transport. The quote service only
// builds the payload; delivery belongs to the transport.
type IEmailSender interface {
	Send(ctx context.Context, payload entities.EmailPayload) error
}
