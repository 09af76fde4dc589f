package pricing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTable = errors.New("invalid pricing table")

// Load reads a YAML pricing file over the defaults. Keys absent from the file keep
// their default value; a class present in the file replaces the default class as a
// whole. An empty path returns the defaults.
func Load(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading pricing table %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes over the defaults and checks the result.
func Parse(raw []byte) (Table, error) {
	table := Default()
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return Table{}, fmt.Errorf("decoding pricing table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Validate rejects tables that would produce negative costs or no 20ft fallback.
func (t Table) Validate() error {
	if _, ok := t.Classes[Class20ft]; !ok {
		return fmt.Errorf("%w: missing %s class", ErrInvalidTable, Class20ft)
	}
	if t.DefaultContainerType == "" {
		return fmt.Errorf("%w: empty default container type", ErrInvalidTable)
	}
	if t.DefaultTransitDays <= 0 {
		return fmt.Errorf("%w: default transit days must be positive", ErrInvalidTable)
	}
	for class, rates := range t.Classes {
		if rates.HaulagePickup < 0 || rates.DeliveryMarkup < 0 || rates.Freight < 0 {
			return fmt.Errorf("%w: negative rate in class %s", ErrInvalidTable, class)
		}
		for _, s := range rates.Surcharges {
			if s.Code == "" || s.Amount < 0 {
				return fmt.Errorf("%w: bad surcharge in class %s", ErrInvalidTable, class)
			}
		}
		for _, s := range rates.Services {
			if s.Description == "" || s.Amount < 0 {
				return fmt.Errorf("%w: bad service in class %s", ErrInvalidTable, class)
			}
		}
	}
	for route, days := range t.Routes {
		if days <= 0 {
			return fmt.Errorf("%w: non-positive transit for route %s", ErrInvalidTable, route)
		}
	}
	return nil
}
