package entities

// The records below describe the loosely structured option data handed over by the
// quoting UI. Every field is optional; the generator documents and applies a
// fallback for each one instead of rejecting the input.

// Port is a structured port reference. Rendered as "Name (UNLOCODE)".
type Port struct {
	Name     string `json:"name,omitempty"`
	UNLocode string `json:"unlocode,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Carrier holds live carrier data when the sea-freight offer came with it.
type Carrier struct {
	Name        string `json:"name,omitempty"`
	TransitTime int    `json:"transitTime,omitempty"`
}

// RequestData is the shipment request an option was priced for.
type RequestData struct {
	ID               string `json:"id,omitempty"`
	CustomerName     string `json:"customerName,omitempty"`
	Incoterm         string `json:"incoterm,omitempty"`
	OriginPort       *Port  `json:"originPort,omitempty"`
	OriginCity       string `json:"originCity,omitempty"`
	DestinationPort  *Port  `json:"destinationPort,omitempty"`
	DestinationCity  string `json:"destinationCity,omitempty"`
	Validity         string `json:"validity,omitempty"`
	GoodsDescription string `json:"goodsDescription,omitempty"`
}

type SeafreightOffer struct {
	ID              string   `json:"id,omitempty"`
	Carrier         *Carrier `json:"carrier,omitempty"`
	DeparturePort   *Port    `json:"departurePort,omitempty"`
	DestinationPort *Port    `json:"destinationPort,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}

type HaulageOffer struct {
	ID          string `json:"id,omitempty"`
	Haulier     string `json:"haulier,omitempty"`
	LoadingCity string `json:"loadingCity,omitempty"`
}

// SelectedOption is one candidate combination of sea-freight and haulage offers
// for a request. Service lines come from the pricing tables.
//
// Containers maps a container type code to a quantity; entries with a
// non-positive quantity are ignored.
type SelectedOption struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name,omitempty"`
	Request    *RequestData     `json:"request,omitempty"`
	Seafreight *SeafreightOffer `json:"seafreight,omitempty"`
	Haulage    *HaulageOffer    `json:"haulage,omitempty"`
	Containers map[string]int   `json:"containers,omitempty"`
}

// QuotePair is one (selected option, candidate options) input of a batch export.
type QuotePair struct {
	SelectedOption SelectedOption   `json:"selectedOption"`
	AllOptions     []SelectedOption `json:"allOptions"`
}
