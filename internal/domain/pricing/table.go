// Package pricing holds the placeholder cost tables used to price container lines.
//
// The numbers are demo pricing, not a rate engine. Every value can be replaced by
// loading a YAML file over the defaults (see Load).
package pricing

import (
	"strings"
)

// ContainerClass groups container type codes that share a price list.
type ContainerClass string

const (
	Class20ft ContainerClass = "20ft"
	Class40ft ContainerClass = "40ft"
	ClassLCL  ContainerClass = "lcl"
)

const (
	DefaultContainerType = "20' Dry"
	DefaultCurrency      = "EUR"
	DefaultTransitDays   = 25
)

// KnownContainerTypes is the fixed list of standard container codes. Other codes are
// accepted but flagged as non-standard by the validator.
var KnownContainerTypes = []string{
	"20' Dry",
	"40' Dry",
	"40' HC",
	"45' HC",
	"20' Reefer",
	"40' Reefer",
	"40' HC Reefer",
	"20' Open Top",
	"40' Open Top",
	"20' Flat Rack",
	"40' Flat Rack",
	"20' Tank",
	"40' Tank",
	"LCL",
}

type SurchargeRate struct {
	Code        string  `yaml:"code"`
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
}

type ServiceRate struct {
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
}

// ClassRates is the per-container price list of one class. Delivery haulage is
// priced as pickup plus DeliveryMarkup.
type ClassRates struct {
	HaulagePickup  float64         `yaml:"haulage_pickup"`
	DeliveryMarkup float64         `yaml:"delivery_markup"`
	Freight        float64         `yaml:"freight"`
	Surcharges     []SurchargeRate `yaml:"surcharges"`
	Services       []ServiceRate   `yaml:"services"`
}

// Table is the complete set of lookup tables used by the quote generator.
//
// Routes maps "ORIGIN-DESTINATION" (UN/LOCODEs or city names, upper-cased) to a
// transit time in days.
type Table struct {
	Currency             string                        `yaml:"currency"`
	DefaultContainerType string                        `yaml:"default_container_type"`
	DefaultTransitDays   int                           `yaml:"default_transit_days"`
	Classes              map[ContainerClass]ClassRates `yaml:"classes"`
	Routes               map[string]int                `yaml:"routes"`
}

// Default returns the compiled-in tables.
func Default() Table {
	return Table{
		Currency:             DefaultCurrency,
		DefaultContainerType: DefaultContainerType,
		DefaultTransitDays:   DefaultTransitDays,
		Classes: map[ContainerClass]ClassRates{
			Class20ft: {
				HaulagePickup:  280,
				DeliveryMarkup: 20,
				Freight:        950,
				Surcharges: []SurchargeRate{
					{Code: "BAF", Description: "Bunker adjustment factor", Amount: 150},
					{Code: "ISPS", Description: "Port security", Amount: 15},
				},
				Services: []ServiceRate{
					{Description: "Documentation", Amount: 75},
					{Description: "Customs clearance", Amount: 120},
				},
			},
			Class40ft: {
				HaulagePickup:  380,
				DeliveryMarkup: 20,
				Freight:        1650,
				Surcharges: []SurchargeRate{
					{Code: "BAF", Description: "Bunker adjustment factor", Amount: 280},
					{Code: "ISPS", Description: "Port security", Amount: 15},
				},
				Services: []ServiceRate{
					{Description: "Documentation", Amount: 75},
					{Description: "Customs clearance", Amount: 120},
				},
			},
			ClassLCL: {
				HaulagePickup:  120,
				DeliveryMarkup: 20,
				Freight:        85,
				Surcharges: []SurchargeRate{
					{Code: "BAF", Description: "Bunker adjustment factor", Amount: 25},
					{Code: "ISPS", Description: "Port security", Amount: 5},
				},
				Services: []ServiceRate{
					{Description: "Documentation", Amount: 45},
					{Description: "Customs clearance", Amount: 95},
				},
			},
		},
		Routes: map[string]int{
			"FRMRS-CNSHA":        32,
			"FRLEH-USNYC":        12,
			"FRMRS-DZALG":        3,
			"FRLEH-BRSSZ":        21,
			"BEANR-CNSHA":        34,
			"NLRTM-SGSIN":        24,
			"MARSEILLE-SHANGHAI": 32,
			"LE HAVRE-NEW YORK":  12,
			"MARSEILLE-ALGER":    3,
		},
	}
}

// Classify maps a container type code to its class. Unknown codes fall into the
// 20ft class.
func Classify(containerType string) ContainerClass {
	t := strings.ToUpper(strings.TrimSpace(containerType))
	switch {
	case strings.HasPrefix(t, "LCL"):
		return ClassLCL
	case strings.HasPrefix(t, "40"), strings.HasPrefix(t, "45"):
		return Class40ft
	default:
		return Class20ft
	}
}

// IsKnownContainerType reports whether the code is one of KnownContainerTypes.
func IsKnownContainerType(containerType string) bool {
	for _, known := range KnownContainerTypes {
		if known == containerType {
			return true
		}
	}
	return false
}

// Rates returns the price list for a container type, falling back to the 20ft
// class when the table has no entry for the resolved class.
func (t Table) Rates(containerType string) ClassRates {
	if rates, ok := t.Classes[Classify(containerType)]; ok {
		return rates
	}
	return t.Classes[Class20ft]
}

// TransitDays looks a route up by origin and destination keys.
func (t Table) TransitDays(origin, destination string) (int, bool) {
	o := strings.ToUpper(strings.TrimSpace(origin))
	d := strings.ToUpper(strings.TrimSpace(destination))
	if o == "" || d == "" {
		return 0, false
	}
	days, ok := t.Routes[o+"-"+d]
	return days, ok && days > 0
}
