package entities

// QuoteDocument is the normalized, self-contained quote (devis) produced for one
// selected pricing option.
//
// Lifecycle:
//   - built fresh by the generator on every preview/export request
//   - never mutated afterwards; validator and exporter only read it
//
// Monetary amounts are plain numbers in a single implied currency (EUR by convention).
type QuoteDocument struct {
	Reference   string                  `json:"reference"`
	Client      string                  `json:"client"`
	Date        string                  `json:"date"`
	Origin      string                  `json:"origin"`
	Destination string                  `json:"destination"`
	Incoterm    string                  `json:"incoterm"`
	Validity    string                  `json:"validity"`
	Options     []QuoteOptionEntry      `json:"options"`
	Remarks     []string                `json:"remarks"`
	Metadata    *QuoteMetadata          `json:"metadata,omitempty"`
	Totals      map[string]OptionTotals `json:"totals,omitempty"`
}

// QuoteOptionEntry is the projection of one candidate option into the document.
// TransitTime is in days; documents from other tools may carry fractional days.
type QuoteOptionEntry struct {
	OptionID      string          `json:"option_id"`
	TransitTime   float64         `json:"transit_time"`
	PortOfLoading string          `json:"port_of_loading"`
	Containers    []ContainerLine `json:"containers"`
}

// ContainerLine carries unit costs for one container type; the line total is
// quantity times the sum of every unit cost.
type ContainerLine struct {
	Type           string         `json:"type"`
	Quantity       int            `json:"quantity"`
	UnitHaulage    []CostLine     `json:"unit_haulage"`
	UnitSeafreight SeafreightCost `json:"unit_seafreight"`
	UnitServices   []CostLine     `json:"unit_services"`
}

type CostLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type SeafreightCost struct {
	Freight    CostLine    `json:"freight"`
	Surcharges []Surcharge `json:"surcharges"`
}

// Surcharge is a named fee layered on top of the base freight (e.g. BAF).
type Surcharge struct {
	Code        string  `json:"code"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
}

type QuoteMetadata struct {
	GeneratedAt  string  `json:"generatedAt"`
	Version      string  `json:"version"`
	Currency     string  `json:"currency"`
	ExchangeRate float64 `json:"exchangeRate"`
}

// OptionTotals is keyed by "option1", "option2", ... in QuoteDocument.Totals.
//
// Invariant: GrandTotal == HaulageTotal + SeafreightTotal + ServicesTotal (within 0.01).
type OptionTotals struct {
	HaulageTotal    float64 `json:"haulageTotal"`
	SeafreightTotal float64 `json:"seafreightTotal"`
	ServicesTotal   float64 `json:"servicesTotal"`
	GrandTotal      float64 `json:"grandTotal"`
}

// ContainerCount sums container quantities across every option of the document.
func (d QuoteDocument) ContainerCount() int {
	total := 0
	for _, o := range d.Options {
		for _, c := range o.Containers {
			total += c.Quantity
		}
	}
	return total
}
