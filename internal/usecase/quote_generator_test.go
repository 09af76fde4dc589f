package usecase

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/domain/pricing"
	mock_interfaces "freight_quote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

func newTestGenerator(start int) *QuoteGenerator {
	return NewQuoteGenerator(pricing.Default(), NewCounterSequence(start)).WithClock(func() time.Time { return fixedNow })
}

func marseilleShanghai() entities.SelectedOption {
	return entities.SelectedOption{
		ID:   "opt-1",
		Name: "Direct CMA",
		Request: &entities.RequestData{
			CustomerName:    "ACME Import",
			Incoterm:        "fob",
			OriginPort:      &entities.Port{Name: "Marseille", UNLocode: "FRMRS"},
			DestinationPort: &entities.Port{Name: "Shanghai", UNLocode: "CNSHA"},
			Validity:        "15 days",
		},
		Seafreight: &entities.SeafreightOffer{
			Carrier:       &entities.Carrier{Name: "CMA CGM"},
			DeparturePort: &entities.Port{Name: "Marseille", UNLocode: "FRMRS"},
		},
		Haulage:    &entities.HaulageOffer{Haulier: "Trans Sud", LoadingCity: "Aix"},
		Containers: map[string]int{"40' HC": 1, "20' Dry": 2, "LCL": 0},
	}
}

func TestQuoteGenerator_Generate_EmptyInput(t *testing.T) {
	doc := newTestGenerator(7).Generate(entities.SelectedOption{}, nil)

	assert.Equal(t, "DEV2025-0307-007", doc.Reference)
	assert.Equal(t, "2025-03-07", doc.Date)
	assert.Equal(t, "Client not specified", doc.Client)
	assert.Equal(t, "Europe", doc.Origin)
	assert.Equal(t, "Destination not specified", doc.Destination)
	assert.Equal(t, "FOB", doc.Incoterm)
	assert.Equal(t, "30 days", doc.Validity)
	assert.Len(t, doc.Remarks, 4)

	require.Len(t, doc.Options, 1)
	opt := doc.Options[0]
	assert.Equal(t, "Option 1", opt.OptionID)
	assert.Equal(t, float64(pricing.DefaultTransitDays), opt.TransitTime)
	assert.Equal(t, "Port not specified", opt.PortOfLoading)

	require.Len(t, opt.Containers, 1)
	line := opt.Containers[0]
	assert.Equal(t, "20' Dry", line.Type)
	assert.Equal(t, 1, line.Quantity)
	require.Len(t, line.UnitHaulage, 2)
	assert.Equal(t, 280.0, line.UnitHaulage[0].Amount)
	assert.Equal(t, line.UnitHaulage[0].Amount+20, line.UnitHaulage[1].Amount)
	assert.Equal(t, 950.0, line.UnitSeafreight.Freight.Amount)

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, QuoteFormatVersion, doc.Metadata.Version)
	assert.Equal(t, "EUR", doc.Metadata.Currency)

	assert.Equal(t, entities.OptionTotals{
		HaulageTotal:    580,
		SeafreightTotal: 1115,
		ServicesTotal:   195,
		GrandTotal:      1890,
	}, doc.Totals["option1"])
}

func TestQuoteGenerator_Generate_SelectedOption(t *testing.T) {
	sel := marseilleShanghai()
	doc := newTestGenerator(1).Generate(sel, []entities.SelectedOption{sel})

	assert.Equal(t, "ACME Import", doc.Client)
	assert.Equal(t, "Marseille (FRMRS)", doc.Origin)
	assert.Equal(t, "Shanghai (CNSHA)", doc.Destination)
	assert.Equal(t, "FOB", doc.Incoterm)
	assert.Equal(t, "15 days", doc.Validity)

	require.Len(t, doc.Options, 1)
	opt := doc.Options[0]
	assert.Equal(t, 32.0, opt.TransitTime, "route table lookup by port codes")
	assert.Equal(t, "Marseille (FRMRS)", opt.PortOfLoading)

	require.Len(t, opt.Containers, 2, "zero quantities are dropped")
	assert.Equal(t, "20' Dry", opt.Containers[0].Type)
	assert.Equal(t, 2, opt.Containers[0].Quantity)
	assert.Equal(t, "40' HC", opt.Containers[1].Type)
	assert.Equal(t, 1650.0, opt.Containers[1].UnitSeafreight.Freight.Amount)
	assert.Equal(t, "Pickup (Aix)", opt.Containers[0].UnitHaulage[0].Description)
	assert.Equal(t, "Ocean freight - CMA CGM", opt.Containers[0].UnitSeafreight.Freight.Description)
}

func TestQuoteGenerator_Generate_CarrierTransitWins(t *testing.T) {
	sel := marseilleShanghai()
	sel.Seafreight.Carrier.TransitTime = 29

	doc := newTestGenerator(1).Generate(sel, nil)
	assert.Equal(t, 29.0, doc.Options[0].TransitTime)
}

func TestQuoteGenerator_Generate_OptionsKeepInputOrder(t *testing.T) {
	a := marseilleShanghai()
	b := entities.SelectedOption{ID: "opt-2", Containers: map[string]int{"LCL": 3}}

	doc := newTestGenerator(1).Generate(a, []entities.SelectedOption{b, a})

	require.Len(t, doc.Options, 2)
	assert.Equal(t, "Option 1", doc.Options[0].OptionID)
	assert.Equal(t, "LCL", doc.Options[0].Containers[0].Type)
	assert.Equal(t, "Option 2", doc.Options[1].OptionID)
	assert.Len(t, doc.Totals, 2)
}

func TestQuoteGenerator_TotalsMatchContainerLines(t *testing.T) {
	sel := marseilleShanghai()
	doc := newTestGenerator(1).Generate(sel, nil)

	for i, opt := range doc.Options {
		var haulage, sea, services float64
		for _, c := range opt.Containers {
			q := float64(c.Quantity)
			for _, h := range c.UnitHaulage {
				haulage += h.Amount * q
			}
			sea += c.UnitSeafreight.Freight.Amount * q
			for _, s := range c.UnitSeafreight.Surcharges {
				sea += s.Amount * q
			}
			for _, s := range c.UnitServices {
				services += s.Amount * q
			}
		}
		totals := doc.Totals[optionKey(i)]
		assert.InDelta(t, haulage, totals.HaulageTotal, 0.001)
		assert.InDelta(t, sea, totals.SeafreightTotal, 0.001)
		assert.InDelta(t, services, totals.ServicesTotal, 0.001)
		assert.InDelta(t, totals.HaulageTotal+totals.SeafreightTotal+totals.ServicesTotal, totals.GrandTotal, 0.01)
	}
}

func TestQuoteGenerator_ReferenceFromSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seq := mock_interfaces.NewMockIReferenceSequence(ctrl)
	seq.EXPECT().Next().Return(42)

	g := NewQuoteGenerator(pricing.Default(), seq).WithClock(func() time.Time { return fixedNow })
	doc := g.Generate(entities.SelectedOption{}, nil)

	assert.Equal(t, "DEV2025-0307-042", doc.Reference)
}

func TestQuoteGenerator_ReferenceFormat(t *testing.T) {
	re := regexp.MustCompile(`^DEV\d{4}-\d{4}-\d{3}$`)
	g := NewQuoteGenerator(pricing.Default(), nil)
	for i := 0; i < 20; i++ {
		ref := g.Generate(entities.SelectedOption{}, nil).Reference
		if !re.MatchString(ref) {
			t.Fatalf("unexpected reference %q", ref)
		}
	}
}

func TestCounterSequence_Wraps(t *testing.T) {
	s := NewCounterSequence(998)
	assert.Equal(t, 998, s.Next())
	assert.Equal(t, 999, s.Next())
	assert.Equal(t, 0, s.Next())
}

func TestNewReferenceSequence(t *testing.T) {
	assert.IsType(t, RandomSequence{}, NewReferenceSequence(""))
	assert.IsType(t, &CounterSequence{}, NewReferenceSequence("counter"))
	assert.IsType(t, UUIDSequence{}, NewReferenceSequence("uuid"))

	n := UUIDSequence{}.Next()
	assert.True(t, n >= 0 && n < 1000)
}

func optionKey(i int) string {
	return fmt.Sprintf("option%d", i+1)
}
