package usecase

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/domain/pricing"
	"freight_quote/pkg/metrics"
)

const (
	totalsTolerance     = 0.01
	transitWarningDays  = 60
	haulageWarningLimit = 500.0
	expectedCurrency    = "EUR"
)

var referencePattern = regexp.MustCompile(`^DEV\d{4}-\d{4}-\d{3}$`)

var documentDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// IQuoteValidator checks quote documents against the fixed rule set.
//
// Every method is total: problems become findings in the result, never errors
// or panics. All rule groups always run.

type IQuoteValidator interface {
	Validate(doc *entities.QuoteDocument) entities.ValidationResult
	ValidateJSON(raw []byte) entities.ValidationResult
	ValidateAgainstSource(doc *entities.QuoteDocument, source entities.SelectedOption) entities.ValidationResult
}

type QuoteValidator struct{}

var _ IQuoteValidator = (*QuoteValidator)(nil)

func NewQuoteValidator() *QuoteValidator {
	return &QuoteValidator{}
}

func (v *QuoteValidator) Validate(doc *entities.QuoteDocument) entities.ValidationResult {
	res := entities.NewValidationResult()
	runRules(doc, newRuleSet(&res))
	return record(res.Finalize())
}

// ValidateJSON validates an externally supplied document. Fields are decoded one
// at a time: a value of the wrong type is reported against its own path and the
// remaining rule groups still run on everything else.
func (v *QuoteValidator) ValidateJSON(raw []byte) entities.ValidationResult {
	res := entities.NewValidationResult()
	rs := newRuleSet(&res)
	if doc, ok := decodeDocument(raw, rs); ok {
		runRules(doc, rs)
	}
	return record(res.Finalize())
}

// ValidateAgainstSource runs the rule set and then compares the document with
// the option it was generated from. Mismatches are warnings only.
func (v *QuoteValidator) ValidateAgainstSource(doc *entities.QuoteDocument, source entities.SelectedOption) entities.ValidationResult {
	res := entities.NewValidationResult()
	runRules(doc, newRuleSet(&res))
	if doc != nil && source.Request != nil {
		compareWithSource(doc, source.Request, &res)
	}
	return record(res.Finalize())
}

func compareWithSource(doc *entities.QuoteDocument, req *entities.RequestData, res *entities.ValidationResult) {
	if name := strings.TrimSpace(req.CustomerName); name != "" && doc.Client != name {
		res.AddWarning(fmt.Sprintf("Client mismatch: document has %q, source request has %q", doc.Client, name))
	}
	if want := placeHint(req.OriginPort, req.OriginCity); want != "" && !containsFold(doc.Origin, want) {
		res.AddWarning(fmt.Sprintf("Origin mismatch: document origin %q does not mention %q", doc.Origin, want))
	}
	if want := placeHint(req.DestinationPort, req.DestinationCity); want != "" && !containsFold(doc.Destination, want) {
		res.AddWarning(fmt.Sprintf("Destination mismatch: document destination %q does not mention %q", doc.Destination, want))
	}
	if inc := strings.TrimSpace(req.Incoterm); inc != "" && !strings.EqualFold(doc.Incoterm, inc) {
		res.AddWarning(fmt.Sprintf("Incoterm mismatch: document has %q, source request has %q", doc.Incoterm, inc))
	}
}

// ruleSet carries the result being built and the JSON paths the decoder has
// already reported, so a mistyped field is not reported a second time as
// missing or out of range.
type ruleSet struct {
	res      *entities.ValidationResult
	reported map[string]bool
}

func newRuleSet(res *entities.ValidationResult) *ruleSet {
	return &ruleSet{res: res, reported: map[string]bool{}}
}

func (r *ruleSet) checks(path string) bool {
	return !r.reported[path]
}

func runRules(doc *entities.QuoteDocument, rs *ruleSet) {
	if doc == nil {
		rs.res.AddError("Document is missing")
		return
	}
	validateRequiredFields(doc, rs)
	validateOptions(doc.Options, rs)
	validateTotals(doc.Totals, rs)
	validateMetadata(doc.Metadata, rs)
}

func validateRequiredFields(doc *entities.QuoteDocument, rs *ruleSet) {
	required := []struct {
		name    string
		present bool
	}{
		{"reference", strings.TrimSpace(doc.Reference) != ""},
		{"client", strings.TrimSpace(doc.Client) != ""},
		{"date", strings.TrimSpace(doc.Date) != ""},
		{"origin", strings.TrimSpace(doc.Origin) != ""},
		{"destination", strings.TrimSpace(doc.Destination) != ""},
		{"incoterm", strings.TrimSpace(doc.Incoterm) != ""},
		{"validity", strings.TrimSpace(doc.Validity) != ""},
		{"options", doc.Options != nil},
		{"remarks", doc.Remarks != nil},
	}
	for _, f := range required {
		if !f.present && rs.checks(f.name) {
			rs.res.AddError(fmt.Sprintf("Missing required field: %s", f.name))
		}
	}

	if doc.Reference != "" && !referencePattern.MatchString(doc.Reference) {
		rs.res.AddError(fmt.Sprintf("Invalid reference format: %q (expected DEVYYYY-MMDD-NNN)", doc.Reference))
	}
	if doc.Date != "" && !isValidDate(doc.Date) {
		rs.res.AddError(fmt.Sprintf("Invalid date: %q", doc.Date))
	}
}

func validateOptions(options []entities.QuoteOptionEntry, rs *ruleSet) {
	res := rs.res
	if len(options) == 0 {
		if rs.checks("options") {
			res.AddError("Options must contain at least one option")
		}
		return
	}

	for i, opt := range options {
		path := fmt.Sprintf("options[%d]", i)
		if !rs.checks(path) {
			continue
		}
		label := fmt.Sprintf("Option %d", i+1)
		if strings.TrimSpace(opt.OptionID) == "" && rs.checks(path+".option_id") {
			res.AddError(fmt.Sprintf("%s: missing option_id", label))
		}
		if rs.checks(path + ".transit_time") {
			switch {
			case opt.TransitTime <= 0:
				res.AddError(fmt.Sprintf("%s: transit_time must be a positive number", label))
			case opt.TransitTime > transitWarningDays:
				res.AddWarning(fmt.Sprintf("%s: transit time of %g days is unusually long", label, opt.TransitTime))
			}
		}
		if strings.TrimSpace(opt.PortOfLoading) == "" && rs.checks(path+".port_of_loading") {
			res.AddError(fmt.Sprintf("%s: missing port_of_loading", label))
		}
		if !rs.checks(path + ".containers") {
			continue
		}
		if len(opt.Containers) == 0 {
			res.AddError(fmt.Sprintf("%s: containers must contain at least one container", label))
			continue
		}
		for j, c := range opt.Containers {
			validateContainer(fmt.Sprintf("%s, container %d", label, j+1), fmt.Sprintf("%s.containers[%d]", path, j), c, rs)
		}
	}
}

func validateContainer(label, path string, c entities.ContainerLine, rs *ruleSet) {
	if !rs.checks(path) {
		return
	}
	res := rs.res
	if rs.checks(path + ".type") {
		switch {
		case strings.TrimSpace(c.Type) == "":
			res.AddError(fmt.Sprintf("%s: missing container type", label))
		case !pricing.IsKnownContainerType(c.Type):
			res.AddWarning(fmt.Sprintf("%s: non-standard container type %q", label, c.Type))
		}
	}
	if c.Quantity <= 0 && rs.checks(path+".quantity") {
		res.AddError(fmt.Sprintf("%s: quantity must be a positive number", label))
	}

	if rs.checks(path + ".unit_haulage") {
		validateHaulage(label, c.UnitHaulage, res)
	}
	if rs.checks(path + ".unit_seafreight") {
		validateSeafreight(label, c.UnitSeafreight, res)
	}
	if rs.checks(path + ".unit_services") {
		validateServices(label, c.UnitServices, res)
	}
}

func validateHaulage(label string, lines []entities.CostLine, res *entities.ValidationResult) {
	if lines == nil {
		res.AddError(fmt.Sprintf("%s: unit_haulage must be an array", label))
		return
	}
	for k, h := range lines {
		prefix := fmt.Sprintf("%s, haulage %d", label, k+1)
		if strings.TrimSpace(h.Description) == "" {
			res.AddError(fmt.Sprintf("%s: missing description", prefix))
		}
		switch {
		case h.Amount < 0:
			res.AddError(fmt.Sprintf("%s: amount must not be negative (%.2f)", prefix, h.Amount))
		case h.Amount > haulageWarningLimit:
			res.AddWarning(fmt.Sprintf("%s: haulage amount %.2f is unusually high", prefix, h.Amount))
		}
	}
}

func validateSeafreight(label string, sf entities.SeafreightCost, res *entities.ValidationResult) {
	if strings.TrimSpace(sf.Freight.Description) == "" {
		res.AddError(fmt.Sprintf("%s: missing seafreight freight description", label))
	}
	if sf.Freight.Amount < 0 {
		res.AddError(fmt.Sprintf("%s: seafreight freight amount must not be negative (%.2f)", label, sf.Freight.Amount))
	}
	if sf.Surcharges == nil {
		res.AddError(fmt.Sprintf("%s: seafreight surcharges must be an array", label))
		return
	}
	for k, s := range sf.Surcharges {
		prefix := fmt.Sprintf("%s, surcharge %d", label, k+1)
		if strings.TrimSpace(s.Code) == "" {
			res.AddError(fmt.Sprintf("%s: missing code", prefix))
		}
		if s.Amount < 0 {
			res.AddError(fmt.Sprintf("%s: amount must not be negative (%.2f)", prefix, s.Amount))
		}
	}
}

func validateServices(label string, lines []entities.CostLine, res *entities.ValidationResult) {
	if lines == nil {
		res.AddError(fmt.Sprintf("%s: unit_services must be an array", label))
		return
	}
	for k, s := range lines {
		prefix := fmt.Sprintf("%s, service %d", label, k+1)
		if strings.TrimSpace(s.Description) == "" {
			res.AddError(fmt.Sprintf("%s: missing description", prefix))
		}
		if s.Amount < 0 {
			res.AddError(fmt.Sprintf("%s: amount must not be negative (%.2f)", prefix, s.Amount))
		}
	}
}

// validateTotals recomputes every grand total from its three subtotals.
func validateTotals(totals map[string]entities.OptionTotals, rs *ruleSet) {
	if len(totals) == 0 {
		if rs.checks("totals") {
			rs.res.AddWarning("Totals are missing; calculation cross-check skipped")
		}
		return
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		t := totals[k]
		expected := t.HaulageTotal + t.SeafreightTotal + t.ServicesTotal
		if math.Abs(t.GrandTotal-expected) > totalsTolerance {
			rs.res.AddError(fmt.Sprintf("Totals mismatch for %s: grandTotal %.2f does not equal computed %.2f", k, t.GrandTotal, expected))
		}
	}
}

func validateMetadata(meta *entities.QuoteMetadata, rs *ruleSet) {
	res := rs.res
	if meta == nil {
		if rs.checks("metadata") {
			res.AddWarning("Metadata is missing")
		}
		return
	}
	if strings.TrimSpace(meta.GeneratedAt) == "" {
		res.AddWarning("Metadata: generatedAt is missing")
	}
	if strings.TrimSpace(meta.Version) == "" {
		res.AddWarning("Metadata: version is missing")
	}
	if meta.Currency != "" && !strings.EqualFold(meta.Currency, expectedCurrency) {
		res.AddSuggestion(fmt.Sprintf("Currency %s differs from %s; consider quoting in %s", meta.Currency, expectedCurrency, expectedCurrency))
	}
}

// record counts the findings of a finished result; call it once per result.
func record(res entities.ValidationResult) entities.ValidationResult {
	metrics.ValidationFindings.WithLabelValues("error").Add(float64(len(res.Errors)))
	metrics.ValidationFindings.WithLabelValues("warning").Add(float64(len(res.Warnings)))
	metrics.ValidationFindings.WithLabelValues("suggestion").Add(float64(len(res.Suggestions)))
	return res
}

func isValidDate(s string) bool {
	for _, layout := range documentDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func placeHint(port *entities.Port, city string) string {
	if port != nil {
		if name := strings.TrimSpace(port.Name); name != "" {
			return name
		}
		if code := strings.TrimSpace(port.UNLocode); code != "" {
			return code
		}
	}
	return strings.TrimSpace(city)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
