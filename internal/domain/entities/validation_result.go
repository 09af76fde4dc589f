package entities

// ValidationResult collects validator findings for one document.
//
// Findings are human-readable strings; there are no machine-readable codes.
// IsValid is true iff Errors is empty.
type ValidationResult struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func NewValidationResult() ValidationResult {
	return ValidationResult{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) AddSuggestion(msg string) {
	r.Suggestions = append(r.Suggestions, msg)
}

// Finalize recomputes IsValid from the collected errors.
func (r *ValidationResult) Finalize() ValidationResult {
	r.IsValid = len(r.Errors) == 0
	return *r
}
