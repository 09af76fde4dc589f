package interfaces

import (
	"context"
	"errors"
	"freight_quote/internal/domain/entities"
)

// ErrDraftLocked is returned by Save when the stored draft is already submitted.
var ErrDraftLocked = errors.New("draft is locked by a submission")

// IDraftQuoteRepository abstracts DynamoDB persistence for DraftQuote.
//
// Save is an upsert keyed by resume token that never overwrites a submitted
// draft (ErrDraftLocked). GetByResumeToken returns a zero DraftQuote (empty
// ResumeToken) when nothing is stored under the token.

type IDraftQuoteRepository interface {
	Save(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error)
	GetByResumeToken(ctx context.Context, token string) (entities.DraftQuote, error)
}
