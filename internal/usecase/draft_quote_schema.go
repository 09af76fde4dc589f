package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// SchemaIssue is one failed constraint of the draft form schema. Path is the JSON
// path of the offending field, e.g. "currentOption.seafreights[0].rate".
type SchemaIssue struct {
	Path    string `json:"path"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type SchemaError struct {
	Issues []SchemaIssue `json:"issues"`
}

// SchemaValidation mirrors a parse result: Data on success, Error otherwise.
// Error.Issues[0] is the first failing constraint in field order.
type SchemaValidation struct {
	Success bool                     `json:"success"`
	Data    *entities.DraftQuoteForm `json:"data,omitempty"`
	Error   *SchemaError             `json:"error,omitempty"`
}

// SubmissionCheck is the result of the submission rule set.
type SubmissionCheck struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

var draftValidate = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := parseISODate(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateDraftQuoteForm checks the whole form against the schema in one pass.
func ValidateDraftQuoteForm(form entities.DraftQuoteForm) SchemaValidation {
	issues := schemaIssues(form)
	if len(issues) > 0 {
		return SchemaValidation{Success: false, Error: &SchemaError{Issues: issues}}
	}
	return SchemaValidation{Success: true, Data: &form}
}

func schemaIssues(form entities.DraftQuoteForm) []SchemaIssue {
	err := draftValidate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []SchemaIssue{{Path: "", Tag: "invalid", Message: err.Error()}}
	}

	issues := make([]SchemaIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, SchemaIssue{
			Path:    issuePath(fe),
			Tag:     fe.Tag(),
			Message: issueMessage(fe),
		})
	}
	return issues
}

// issuePath drops the root struct name from the validator namespace.
func issuePath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s items", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "url":
		return "must be a valid URL"
	case "isodate":
		return "must be an ISO 8601 date"
	}
	return "is invalid"
}

// submissionLabels gives friendly names to the fields the wizard shows on its
// first step.
var submissionLabels = map[string]string{
	"basics.cargoType":           "Cargo type",
	"basics.incoterm":            "Incoterm",
	"basics.origin.city":         "Origin city",
	"basics.origin.country":      "Origin country",
	"basics.destination.city":    "Destination city",
	"basics.destination.country": "Destination country",
	"basics.requestedDeparture":  "Requested departure date",
	"basics.goodsDescription":    "Goods description",
}

// ValidateFormForSubmission derives its field rules from the schema and adds the
// rules that only apply at submission time:
//   - the current option holds at least one sea-freight, haulage or service line
//   - every sea-freight line has a positive rate (carrier and container type
//     are already required by the schema)
func ValidateFormForSubmission(form entities.DraftQuoteForm) SubmissionCheck {
	errs := []string{}

	for _, issue := range schemaIssues(form) {
		label, ok := submissionLabels[issue.Path]
		if !ok {
			label = issue.Path
		}
		errs = append(errs, fmt.Sprintf("%s %s", label, issue.Message))
	}

	if form.CurrentOption.IsEmpty() {
		errs = append(errs, "Add at least one seafreight, haulage or service to the current option")
	}
	for i, sf := range form.CurrentOption.Seafreights {
		if sf.Rate <= 0 {
			errs = append(errs, fmt.Sprintf("Seafreight %d: rate must be positive", i+1))
		}
	}

	return SubmissionCheck{IsValid: len(errs) == 0, Errors: errs}
}
