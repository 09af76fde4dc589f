package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/domain/pricing"
	"freight_quote/internal/usecase/interfaces"
	"freight_quote/pkg/metrics"

	"github.com/shopspring/decimal"
)

const (
	QuoteFormatVersion = "1.0"

	defaultClient        = "Client not specified"
	defaultOrigin        = "Europe"
	defaultDestination   = "Destination not specified"
	defaultIncoterm      = "FOB"
	defaultValidity      = "30 days"
	defaultPortOfLoading = "Port not specified"
)

// quoteRemarks are appended verbatim to every document.
var quoteRemarks = []string{
	"Rates are valid for the period stated and subject to space and equipment availability.",
	"Prices exclude duties, taxes and any inspection or storage charges.",
	"Surcharges (BAF, ISPS) are subject to change without notice by the carrier.",
	"Transit times are estimates given by the carrier and are not guaranteed.",
}

// IQuoteGenerator builds quote documents.
//
// Generate is a pure function of its two inputs (plus clock and reference suffix):
// missing input fields degrade to fallback values, never to an error.

type IQuoteGenerator interface {
	Generate(selected entities.SelectedOption, all []entities.SelectedOption) entities.QuoteDocument
}

type QuoteGenerator struct {
	table    pricing.Table
	sequence interfaces.IReferenceSequence
	now      func() time.Time
}

var _ IQuoteGenerator = (*QuoteGenerator)(nil)

func NewQuoteGenerator(table pricing.Table, sequence interfaces.IReferenceSequence) *QuoteGenerator {
	if sequence == nil {
		sequence = RandomSequence{}
	}
	return &QuoteGenerator{table: table, sequence: sequence, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (g *QuoteGenerator) WithClock(now func() time.Time) *QuoteGenerator {
	g.now = now
	return g
}

// Generate projects the selected option and its siblings into a QuoteDocument.
// Options keep input order; an empty candidate list falls back to the selected
// option alone.
func (g *QuoteGenerator) Generate(selected entities.SelectedOption, all []entities.SelectedOption) entities.QuoteDocument {
	now := g.now().UTC()
	if len(all) == 0 {
		all = []entities.SelectedOption{selected}
	}

	doc := entities.QuoteDocument{
		Reference:   g.reference(now),
		Client:      clientName(selected.Request),
		Date:        now.Format(time.DateOnly),
		Origin:      originLabel(selected.Request),
		Destination: destinationLabel(selected.Request),
		Incoterm:    incoterm(selected.Request),
		Validity:    validity(selected.Request),
		Options:     make([]entities.QuoteOptionEntry, 0, len(all)),
		Remarks:     append([]string(nil), quoteRemarks...),
		Metadata: &entities.QuoteMetadata{
			GeneratedAt:  now.Format(time.RFC3339),
			Version:      QuoteFormatVersion,
			Currency:     g.currency(),
			ExchangeRate: 1.0,
		},
		Totals: make(map[string]entities.OptionTotals, len(all)),
	}

	for i, opt := range all {
		entry := g.optionEntry(i, opt)
		doc.Options = append(doc.Options, entry)
		doc.Totals[fmt.Sprintf("option%d", i+1)] = ComputeOptionTotals(entry.Containers)
	}

	metrics.DocumentsGenerated.Inc()
	return doc
}

func (g *QuoteGenerator) reference(now time.Time) string {
	n := g.sequence.Next() % 1000
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("DEV%04d-%02d%02d-%03d", now.Year(), int(now.Month()), now.Day(), n)
}

func (g *QuoteGenerator) currency() string {
	if g.table.Currency != "" {
		return g.table.Currency
	}
	return pricing.DefaultCurrency
}

func (g *QuoteGenerator) optionEntry(index int, opt entities.SelectedOption) entities.QuoteOptionEntry {
	return entities.QuoteOptionEntry{
		OptionID:      fmt.Sprintf("Option %d", index+1),
		TransitTime:   float64(g.transitTime(opt)),
		PortOfLoading: portOfLoading(opt),
		Containers:    g.containerLines(opt),
	}
}

// transitTime prefers live carrier data, then the route table, then the default.
func (g *QuoteGenerator) transitTime(opt entities.SelectedOption) int {
	if sf := opt.Seafreight; sf != nil && sf.Carrier != nil && sf.Carrier.TransitTime > 0 {
		return sf.Carrier.TransitTime
	}
	for _, route := range routeKeys(opt) {
		if days, ok := g.table.TransitDays(route[0], route[1]); ok {
			return days
		}
	}
	if g.table.DefaultTransitDays > 0 {
		return g.table.DefaultTransitDays
	}
	return pricing.DefaultTransitDays
}

// routeKeys lists candidate (origin, destination) lookups, most specific first.
func routeKeys(opt entities.SelectedOption) [][2]string {
	var keys [][2]string
	if sf := opt.Seafreight; sf != nil && sf.DeparturePort != nil && sf.DestinationPort != nil {
		keys = append(keys, [2]string{sf.DeparturePort.UNLocode, sf.DestinationPort.UNLocode})
	}
	if req := opt.Request; req != nil {
		if req.OriginPort != nil && req.DestinationPort != nil {
			keys = append(keys, [2]string{req.OriginPort.UNLocode, req.DestinationPort.UNLocode})
		}
		keys = append(keys, [2]string{req.OriginCity, req.DestinationCity})
	}
	return keys
}

// containerLines emits one line per container type with a positive quantity, in
// type order, or a single default line when the option carries none.
func (g *QuoteGenerator) containerLines(opt entities.SelectedOption) []entities.ContainerLine {
	types := make([]string, 0, len(opt.Containers))
	for t, qty := range opt.Containers {
		if qty > 0 && strings.TrimSpace(t) != "" {
			types = append(types, t)
		}
	}
	sort.Strings(types)

	if len(types) == 0 {
		defaultType := g.table.DefaultContainerType
		if defaultType == "" {
			defaultType = pricing.DefaultContainerType
		}
		return []entities.ContainerLine{g.containerLine(defaultType, 1, opt)}
	}

	lines := make([]entities.ContainerLine, 0, len(types))
	for _, t := range types {
		lines = append(lines, g.containerLine(t, opt.Containers[t], opt))
	}
	return lines
}

func (g *QuoteGenerator) containerLine(containerType string, quantity int, opt entities.SelectedOption) entities.ContainerLine {
	rates := g.table.Rates(containerType)

	pickup := "Pickup"
	delivery := "Delivery to port of loading"
	if h := opt.Haulage; h != nil && h.LoadingCity != "" {
		pickup = fmt.Sprintf("Pickup (%s)", h.LoadingCity)
	}

	freight := "Ocean freight"
	if sf := opt.Seafreight; sf != nil && sf.Carrier != nil && sf.Carrier.Name != "" {
		freight = fmt.Sprintf("Ocean freight - %s", sf.Carrier.Name)
	}

	surcharges := make([]entities.Surcharge, 0, len(rates.Surcharges))
	for _, s := range rates.Surcharges {
		surcharges = append(surcharges, entities.Surcharge{Code: s.Code, Description: s.Description, Amount: s.Amount})
	}
	services := make([]entities.CostLine, 0, len(rates.Services))
	for _, s := range rates.Services {
		services = append(services, entities.CostLine{Description: s.Description, Amount: s.Amount})
	}

	return entities.ContainerLine{
		Type:     containerType,
		Quantity: quantity,
		UnitHaulage: []entities.CostLine{
			{Description: pickup, Amount: rates.HaulagePickup},
			{Description: delivery, Amount: rates.HaulagePickup + rates.DeliveryMarkup},
		},
		UnitSeafreight: entities.SeafreightCost{
			Freight:    entities.CostLine{Description: freight, Amount: rates.Freight},
			Surcharges: surcharges,
		},
		UnitServices: services,
	}
}

// ComputeOptionTotals folds the emitted container lines once: every unit cost is
// multiplied by the line quantity. GrandTotal is the sum of the three subtotals.
func ComputeOptionTotals(lines []entities.ContainerLine) entities.OptionTotals {
	haulage, seafreight, services := decimal.Zero, decimal.Zero, decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, h := range line.UnitHaulage {
			haulage = haulage.Add(decimal.NewFromFloat(h.Amount).Mul(qty))
		}
		sea := decimal.NewFromFloat(line.UnitSeafreight.Freight.Amount)
		for _, s := range line.UnitSeafreight.Surcharges {
			sea = sea.Add(decimal.NewFromFloat(s.Amount))
		}
		seafreight = seafreight.Add(sea.Mul(qty))
		for _, s := range line.UnitServices {
			services = services.Add(decimal.NewFromFloat(s.Amount).Mul(qty))
		}
	}

	haulage, seafreight, services = haulage.Round(2), seafreight.Round(2), services.Round(2)
	return entities.OptionTotals{
		HaulageTotal:    haulage.InexactFloat64(),
		SeafreightTotal: seafreight.InexactFloat64(),
		ServicesTotal:   services.InexactFloat64(),
		GrandTotal:      haulage.Add(seafreight).Add(services).InexactFloat64(),
	}
}

func clientName(req *entities.RequestData) string {
	if req != nil && strings.TrimSpace(req.CustomerName) != "" {
		return strings.TrimSpace(req.CustomerName)
	}
	return defaultClient
}

func originLabel(req *entities.RequestData) string {
	if req == nil {
		return defaultOrigin
	}
	return placeLabel(req.OriginPort, req.OriginCity, defaultOrigin)
}

func destinationLabel(req *entities.RequestData) string {
	if req == nil {
		return defaultDestination
	}
	return placeLabel(req.DestinationPort, req.DestinationCity, defaultDestination)
}

func incoterm(req *entities.RequestData) string {
	if req != nil && strings.TrimSpace(req.Incoterm) != "" {
		return strings.ToUpper(strings.TrimSpace(req.Incoterm))
	}
	return defaultIncoterm
}

func validity(req *entities.RequestData) string {
	if req != nil && strings.TrimSpace(req.Validity) != "" {
		return strings.TrimSpace(req.Validity)
	}
	return defaultValidity
}

func portOfLoading(opt entities.SelectedOption) string {
	if sf := opt.Seafreight; sf != nil {
		if label := portLabel(sf.DeparturePort); label != "" {
			return label
		}
	}
	if req := opt.Request; req != nil {
		if label := portLabel(req.OriginPort); label != "" {
			return label
		}
	}
	return defaultPortOfLoading
}

// placeLabel prefers the structured port, then the city, then the fallback.
func placeLabel(port *entities.Port, city, fallback string) string {
	if label := portLabel(port); label != "" {
		return label
	}
	if c := strings.TrimSpace(city); c != "" {
		return c
	}
	return fallback
}

// portLabel renders "Name (UNLOCODE)", or whichever half is present.
func portLabel(port *entities.Port) string {
	if port == nil {
		return ""
	}
	name := strings.TrimSpace(port.Name)
	code := strings.TrimSpace(port.UNLocode)
	switch {
	case name != "" && code != "":
		return fmt.Sprintf("%s (%s)", name, code)
	case name != "":
		return name
	default:
		return code
	}
}
