package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"freight_quote/internal/domain/entities"
	"freight_quote/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDocument() entities.QuoteDocument {
	return entities.QuoteDocument{
		Reference:   "DEV2025-0307-001",
		Client:      "ACME Import",
		Date:        "2025-03-07",
		Origin:      "Marseille (FRMRS)",
		Destination: "Shanghai (CNSHA)",
		Incoterm:    "FOB",
		Validity:    "30 days",
		Options: []entities.QuoteOptionEntry{{
			OptionID:      "Option 1",
			TransitTime:   32,
			PortOfLoading: "Marseille (FRMRS)",
			Containers: []entities.ContainerLine{{
				Type:        "20' Dry",
				Quantity:    1,
				UnitHaulage: []entities.CostLine{{Description: "Pickup", Amount: 280}},
				UnitSeafreight: entities.SeafreightCost{
					Freight:    entities.CostLine{Description: "Ocean freight", Amount: 950},
					Surcharges: []entities.Surcharge{{Code: "BAF", Description: "Bunker", Amount: 150}},
				},
				UnitServices: []entities.CostLine{{Description: "Documentation", Amount: 75}},
			}},
		}},
		Remarks:  []string{},
		Metadata: &entities.QuoteMetadata{GeneratedAt: "2025-03-07T10:30:00Z", Version: "1.0", Currency: "EUR", ExchangeRate: 1},
		Totals: map[string]entities.OptionTotals{
			"option1": {HaulageTotal: 280, SeafreightTotal: 1100, ServicesTotal: 75, GrandTotal: 1455},
		},
	}
}

func hasFinding(findings []string, sub string) bool {
	for _, f := range findings {
		if strings.Contains(f, sub) {
			return true
		}
	}
	return false
}

func TestQuoteValidator_Validate_MinimalDocument(t *testing.T) {
	doc := minimalDocument()
	res := NewQuoteValidator().Validate(&doc)

	assert.True(t, res.IsValid, "errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Suggestions)
}

func TestQuoteValidator_Validate_Nil(t *testing.T) {
	res := NewQuoteValidator().Validate(nil)

	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"Document is missing"}, res.Errors)
}

func TestQuoteValidator_Validate_EmptyDocument(t *testing.T) {
	res := NewQuoteValidator().Validate(&entities.QuoteDocument{})

	require.False(t, res.IsValid)
	for _, field := range []string{"reference", "client", "date", "origin", "destination", "incoterm", "validity", "options", "remarks"} {
		assert.Contains(t, res.Errors, "Missing required field: "+field)
	}
	assert.Contains(t, res.Errors, "Options must contain at least one option")
	assert.True(t, hasFinding(res.Warnings, "Totals are missing"))
	assert.True(t, hasFinding(res.Warnings, "Metadata is missing"))
}

func TestQuoteValidator_Validate_Rules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *entities.QuoteDocument)
		errors   []string
		warnings []string
		suggest  []string
	}{
		{
			name:   "bad reference",
			mutate: func(d *entities.QuoteDocument) { d.Reference = "QUOTE-1" },
			errors: []string{"Invalid reference format"},
		},
		{
			name:   "bad date",
			mutate: func(d *entities.QuoteDocument) { d.Date = "next tuesday" },
			errors: []string{"Invalid date"},
		},
		{
			name:   "empty options",
			mutate: func(d *entities.QuoteDocument) { d.Options = []entities.QuoteOptionEntry{} },
			errors: []string{"Options must contain at least one option"},
		},
		{
			name:   "zero transit",
			mutate: func(d *entities.QuoteDocument) { d.Options[0].TransitTime = 0 },
			errors: []string{"Option 1: transit_time must be a positive number"},
		},
		{
			name:     "long transit",
			mutate:   func(d *entities.QuoteDocument) { d.Options[0].TransitTime = 75 },
			warnings: []string{"transit time of 75 days is unusually long"},
		},
		{
			name:     "non standard container",
			mutate:   func(d *entities.QuoteDocument) { d.Options[0].Containers[0].Type = "53' Domestic" },
			warnings: []string{"non-standard container type"},
		},
		{
			name:   "zero quantity",
			mutate: func(d *entities.QuoteDocument) { d.Options[0].Containers[0].Quantity = 0 },
			errors: []string{"quantity must be a positive number"},
		},
		{
			name:   "negative haulage",
			mutate: func(d *entities.QuoteDocument) { d.Options[0].Containers[0].UnitHaulage[0].Amount = -1 },
			errors: []string{"haulage 1: amount must not be negative"},
		},
		{
			name: "high haulage",
			mutate: func(d *entities.QuoteDocument) {
				d.Options[0].Containers[0].UnitHaulage[0].Amount = 800
				d.Totals["option1"] = entities.OptionTotals{HaulageTotal: 800, SeafreightTotal: 1100, ServicesTotal: 75, GrandTotal: 1975}
			},
			warnings: []string{"unusually high"},
		},
		{
			name:   "missing haulage array",
			mutate: func(d *entities.QuoteDocument) { d.Options[0].Containers[0].UnitHaulage = nil },
			errors: []string{"unit_haulage must be an array"},
		},
		{
			name:   "surcharge without code",
			mutate: func(d *entities.QuoteDocument) { d.Options[0].Containers[0].UnitSeafreight.Surcharges[0].Code = "" },
			errors: []string{"surcharge 1: missing code"},
		},
		{
			name: "totals mismatch",
			mutate: func(d *entities.QuoteDocument) {
				d.Totals["option1"] = entities.OptionTotals{HaulageTotal: 280, SeafreightTotal: 1100, ServicesTotal: 75, GrandTotal: 1500}
			},
			errors: []string{"Totals mismatch for option1"},
		},
		{
			name: "totals within tolerance",
			mutate: func(d *entities.QuoteDocument) {
				d.Totals["option1"] = entities.OptionTotals{HaulageTotal: 280, SeafreightTotal: 1100, ServicesTotal: 75, GrandTotal: 1455.005}
			},
		},
		{
			name:    "foreign currency",
			mutate:  func(d *entities.QuoteDocument) { d.Metadata.Currency = "USD" },
			suggest: []string{"Currency USD differs from EUR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := minimalDocument()
			tt.mutate(&doc)
			res := NewQuoteValidator().Validate(&doc)

			assert.Equal(t, len(res.Errors) == 0, res.IsValid)
			assert.Len(t, res.Errors, len(tt.errors), "errors: %v", res.Errors)
			for _, e := range tt.errors {
				assert.True(t, hasFinding(res.Errors, e), "missing error %q in %v", e, res.Errors)
			}
			for _, w := range tt.warnings {
				assert.True(t, hasFinding(res.Warnings, w), "missing warning %q in %v", w, res.Warnings)
			}
			for _, s := range tt.suggest {
				assert.True(t, hasFinding(res.Suggestions, s), "missing suggestion %q in %v", s, res.Suggestions)
			}
		})
	}
}

func TestQuoteValidator_GeneratedDocumentIsValid(t *testing.T) {
	doc := newTestGenerator(1).Generate(marseilleShanghai(), nil)
	res := NewQuoteValidator().Validate(&doc)

	assert.True(t, res.IsValid, "errors: %v", res.Errors)
}

func TestQuoteValidator_ValidateJSON(t *testing.T) {
	v := NewQuoteValidator()

	t.Run("valid document", func(t *testing.T) {
		raw, err := json.Marshal(minimalDocument())
		require.NoError(t, err)
		assert.True(t, v.ValidateJSON(raw).IsValid)
	})

	t.Run("not json", func(t *testing.T) {
		res := v.ValidateJSON([]byte("{not json"))
		assert.False(t, res.IsValid)
		assert.True(t, hasFinding(res.Errors, "does not match the quote format"))
	})

	t.Run("wrong shape", func(t *testing.T) {
		res := v.ValidateJSON([]byte(`{"options": "many"}`))
		assert.False(t, res.IsValid)
	})

	t.Run("null", func(t *testing.T) {
		res := v.ValidateJSON([]byte("null"))
		assert.Equal(t, []string{"Document is missing"}, res.Errors)
	})

	t.Run("not an object", func(t *testing.T) {
		res := v.ValidateJSON([]byte(`[1, 2]`))
		assert.Equal(t, []string{"Document does not match the quote format: expected an object, got an array"}, res.Errors)
	})

	t.Run("fractional transit time", func(t *testing.T) {
		raw := documentJSON(t, func(m map[string]any) {
			m["options"].([]any)[0].(map[string]any)["transit_time"] = 32.5
		})

		res := v.ValidateJSON(raw)
		assert.True(t, res.IsValid, "errors: %v", res.Errors)
	})

	t.Run("wrong type reported on its field while other rules run", func(t *testing.T) {
		raw := []byte(`{
			"reference": 12,
			"totals": {"option1": {"haulageTotal": 1, "seafreightTotal": 1, "servicesTotal": 1, "grandTotal": 99}}
		}`)

		res := v.ValidateJSON(raw)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "Field reference must be a string, got a number")
		assert.NotContains(t, res.Errors, "Missing required field: reference")
		assert.Contains(t, res.Errors, "Missing required field: client")
		assert.Contains(t, res.Errors, "Missing required field: options")
		assert.True(t, hasFinding(res.Errors, "Totals mismatch for option1"), "errors: %v", res.Errors)
		assert.Contains(t, res.Warnings, "Metadata is missing")
	})

	t.Run("nested wrong types", func(t *testing.T) {
		raw := documentJSON(t, func(m map[string]any) {
			opt := m["options"].([]any)[0].(map[string]any)
			opt["transit_time"] = "32 days"
			container := opt["containers"].([]any)[0].(map[string]any)
			container["quantity"] = 1.5
			container["unit_haulage"] = "none"
		})

		res := v.ValidateJSON(raw)
		assert.ElementsMatch(t, []string{
			"Field options[0].transit_time must be a number, got a string",
			"Field options[0].containers[0].quantity must be a whole number of containers, got 1.5",
			"Field options[0].containers[0].unit_haulage must be an array of cost lines, got a string",
		}, res.Errors)
	})

	t.Run("option that is not an object", func(t *testing.T) {
		raw := documentJSON(t, func(m map[string]any) {
			m["options"] = append(m["options"].([]any), "Option 2")
		})

		res := v.ValidateJSON(raw)
		assert.Equal(t, []string{"Field options[1] must be an object, got a string"}, res.Errors)
	})

	t.Run("mistyped totals entry", func(t *testing.T) {
		raw := documentJSON(t, func(m map[string]any) {
			m["totals"] = map[string]any{"option1": "1455"}
		})

		res := v.ValidateJSON(raw)
		assert.Equal(t, []string{"Field totals.option1 must be an object of numeric totals, got a string"}, res.Errors)
		assert.NotContains(t, res.Warnings, "Totals are missing; calculation cross-check skipped")
	})
}

// documentJSON renders minimalDocument as generic JSON, lets the caller edit
// it and returns the bytes.
func documentJSON(t *testing.T, edit func(m map[string]any)) []byte {
	t.Helper()
	raw, err := json.Marshal(minimalDocument())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	edit(m)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

func TestQuoteValidator_RecordsFindingsOnce(t *testing.T) {
	v := NewQuoteValidator()
	doc := minimalDocument()
	src := marseilleShanghai()
	src.Request.CustomerName = "Other Corp"
	src.Request.Incoterm = "CIF"

	before := testutil.ToFloat64(metrics.ValidationFindings.WithLabelValues("warning"))
	res := v.ValidateAgainstSource(&doc, src)
	after := testutil.ToFloat64(metrics.ValidationFindings.WithLabelValues("warning"))

	require.Len(t, res.Warnings, 2)
	assert.Equal(t, float64(len(res.Warnings)), after-before)
}

func TestQuoteValidator_ValidateAgainstSource(t *testing.T) {
	v := NewQuoteValidator()
	doc := minimalDocument()

	t.Run("matching source", func(t *testing.T) {
		res := v.ValidateAgainstSource(&doc, marseilleShanghai())
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("mismatching source", func(t *testing.T) {
		src := marseilleShanghai()
		src.Request.CustomerName = "Other Corp"
		src.Request.DestinationPort = &entities.Port{Name: "Algiers", UNLocode: "DZALG"}
		src.Request.Incoterm = "CIF"

		res := v.ValidateAgainstSource(&doc, src)
		assert.True(t, res.IsValid, "mismatches are warnings")
		assert.True(t, hasFinding(res.Warnings, "Client mismatch"))
		assert.True(t, hasFinding(res.Warnings, "Destination mismatch"))
		assert.True(t, hasFinding(res.Warnings, "Incoterm mismatch"))
		assert.False(t, hasFinding(res.Warnings, "Origin mismatch"))
	})
}
