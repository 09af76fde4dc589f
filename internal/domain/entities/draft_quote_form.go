package entities

// DraftQuoteForm is the state of the multi-step quote request wizard.
//
// The validate tags are the form schema: the whole form is checked in one pass
// and each failure is reported with its JSON path (e.g. "basics.incoterm",
// "currentOption.seafreights[0].rate"). "isodate" is a custom tag accepting
// YYYY-MM-DD or RFC 3339 timestamps.
type DraftQuoteForm struct {
	Basics          DraftBasics   `json:"basics"`
	ExistingOptions []QuoteOption `json:"existingOptions" validate:"max=3,dive"`
	CurrentOption   CurrentOption `json:"currentOption"`
	Attachments     []Attachment  `json:"attachments" validate:"dive"`
}

type CargoType string

const (
	CargoTypeFCL CargoType = "FCL"
	CargoTypeLCL CargoType = "LCL"
	CargoTypeAIR CargoType = "AIR"
)

type Location struct {
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type DraftBasics struct {
	CargoType          CargoType `json:"cargoType" validate:"required,oneof=FCL LCL AIR"`
	Incoterm           string    `json:"incoterm" validate:"required"`
	Origin             Location  `json:"origin"`
	Destination        Location  `json:"destination"`
	RequestedDeparture string    `json:"requestedDeparture" validate:"required,isodate"`
	GoodsDescription   string    `json:"goodsDescription" validate:"required"`

	ClientNumber    string `json:"clientNumber,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	AssigneeID      string `json:"assigneeId,omitempty"`
	PortOfLoading   string `json:"portOfLoading,omitempty"`
	PortOfDischarge string `json:"portOfDischarge,omitempty"`
	ContainerType   string `json:"containerType,omitempty"`
	ContainerCount  int    `json:"containerCount,omitempty" validate:"gte=0"`
}

type HaulageMode string

const (
	HaulageModeTruck HaulageMode = "truck"
	HaulageModeRail  HaulageMode = "rail"
	HaulageModeBarge HaulageMode = "barge"
)

type HaulageLeg string

const (
	HaulageLegPre  HaulageLeg = "pre"
	HaulageLegOn   HaulageLeg = "on"
	HaulageLegPost HaulageLeg = "post"
)

type SeafreightLine struct {
	ID            string  `json:"id,omitempty"`
	Carrier       string  `json:"carrier" validate:"required"`
	ContainerType string  `json:"containerType" validate:"required"`
	Rate          float64 `json:"rate" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	TransitDays   int     `json:"transitDays" validate:"gte=0"`
	ValidUntil    string  `json:"validUntil,omitempty" validate:"omitempty,isodate"`
}

type HaulageLine struct {
	ID         string      `json:"id,omitempty"`
	Haulier    string      `json:"haulier" validate:"required"`
	Mode       HaulageMode `json:"mode" validate:"required,oneof=truck rail barge"`
	Leg        HaulageLeg  `json:"leg" validate:"required,oneof=pre on post"`
	Rate       float64     `json:"rate" validate:"gte=0"`
	Currency   string      `json:"currency" validate:"omitempty,len=3"`
	ValidUntil string      `json:"validUntil,omitempty" validate:"omitempty,isodate"`
}

type ServiceLine struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type OptionTotalsDraft struct {
	Seafreight float64 `json:"seafreight" validate:"gte=0"`
	Haulage    float64 `json:"haulage" validate:"gte=0"`
	Services   float64 `json:"services" validate:"gte=0"`
	Grand      float64 `json:"grand" validate:"gte=0"`
}

// CurrentOption is the option being edited in the wizard.
type CurrentOption struct {
	Seafreights []SeafreightLine   `json:"seafreights" validate:"dive"`
	Haulages    []HaulageLine      `json:"haulages" validate:"dive"`
	Services    []ServiceLine      `json:"services" validate:"dive"`
	Totals      *OptionTotalsDraft `json:"totals,omitempty"`
}

// IsEmpty reports whether no sea-freight, haulage or service line was added.
func (o CurrentOption) IsEmpty() bool {
	return len(o.Seafreights) == 0 && len(o.Haulages) == 0 && len(o.Services) == 0
}

// QuoteOption is a saved option. ID is assigned at save time and never changes.
type QuoteOption struct {
	ID          string             `json:"id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description,omitempty"`
	Seafreights []SeafreightLine   `json:"seafreights" validate:"dive"`
	Haulages    []HaulageLine      `json:"haulages" validate:"dive"`
	Services    []ServiceLine      `json:"services" validate:"dive"`
	Totals      *OptionTotalsDraft `json:"totals,omitempty"`
}

type Attachment struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}
