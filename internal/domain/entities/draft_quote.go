package entities

import "time"

// DraftStatus represents the lifecycle of a persisted draft quote request.
//
// A draft is saved with status "draft" while the wizard is in progress and moves
// to "submitted" once the submission rules pass.
type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusSubmitted DraftStatus = "submitted"
)

// DraftQuote is the persisted wizard state.
//
// Storage model (DynamoDB):
//   - PK: resume_token
//
// The resume token is the key: a reload of the wizard presents the token and gets
// the last saved payload back.
type DraftQuote struct {
	ResumeToken string                  `json:"resume_token"`
	Status      DraftStatus             `json:"status"`
	Payload     CreateDraftQuoteRequest `json:"payload"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// CreateDraftQuoteRequest is the backend wire shape of a draft. Field names and
// enum spellings (TRUCK, PRE_CARRIAGE, ...) are a compatibility contract.
type CreateDraftQuoteRequest struct {
	ResumeToken        string               `json:"resumeToken"`
	FormVersion        string               `json:"formVersion"`
	CargoType          string               `json:"cargoType"`
	Incoterm           string               `json:"incoterm"`
	Origin             LocationPayload      `json:"origin"`
	Destination        LocationPayload      `json:"destination"`
	RequestedDeparture string               `json:"requestedDeparture,omitempty"`
	GoodsDescription   string               `json:"goodsDescription"`
	ClientNumber       string               `json:"clientNumber,omitempty"`
	CustomerName       string               `json:"customerName,omitempty"`
	AssigneeID         string               `json:"assigneeId,omitempty"`
	PortOfLoading      string               `json:"portOfLoading,omitempty"`
	PortOfDischarge    string               `json:"portOfDischarge,omitempty"`
	ContainerType      string               `json:"containerType,omitempty"`
	ContainerCount     int                  `json:"containerCount,omitempty"`
	Options            []DraftOptionPayload `json:"options"`
	CurrentOption      DraftOptionPayload   `json:"currentOption"`
	Attachments        []AttachmentPayload  `json:"attachments"`
	CreatedAt          string               `json:"createdAt"`
	UpdatedAt          string               `json:"updatedAt"`
}

type LocationPayload struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type DraftOptionPayload struct {
	ID          string               `json:"id,omitempty"`
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Seafreights []SeafreightPayload  `json:"seafreights"`
	Haulages    []HaulagePayload     `json:"haulages"`
	Services    []ServicePayload     `json:"services"`
	Totals      *OptionTotalsPayload `json:"totals,omitempty"`
}

type SeafreightPayload struct {
	ID            string  `json:"id,omitempty"`
	Carrier       string  `json:"carrier"`
	ContainerType string  `json:"containerType"`
	Rate          float64 `json:"rate"`
	Currency      string  `json:"currency,omitempty"`
	TransitDays   int     `json:"transitDays,omitempty"`
	ValidUntil    string  `json:"validUntil,omitempty"`
}

type HaulagePayload struct {
	ID         string  `json:"id,omitempty"`
	Haulier    string  `json:"haulier"`
	Mode       string  `json:"mode"`
	Leg        string  `json:"leg"`
	Rate       float64 `json:"rate"`
	Currency   string  `json:"currency,omitempty"`
	ValidUntil string  `json:"validUntil,omitempty"`
}

type ServicePayload struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type OptionTotalsPayload struct {
	Seafreight float64 `json:"seafreight"`
	Haulage    float64 `json:"haulage"`
	Services   float64 `json:"services"`
	Grand      float64 `json:"grand"`
}

type AttachmentPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
