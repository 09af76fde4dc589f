package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"freight_quote/internal/domain/entities"
)

type jsonObject = map[string]json.RawMessage

// decodeDocument builds a QuoteDocument from raw JSON one field at a time. A
// field whose value has the wrong type is reported as an error on its path and
// left at its zero value; decoding carries on with the other fields. ok is
// false only when nothing can be validated at all (invalid JSON, null or a
// non-object root).
func decodeDocument(raw []byte, rs *ruleSet) (doc *entities.QuoteDocument, ok bool) {
	if !json.Valid(raw) {
		rs.res.AddError("Document does not match the quote format: not valid JSON")
		return nil, false
	}

	var root jsonObject
	if err := json.Unmarshal(raw, &root); err != nil {
		rs.res.AddError(fmt.Sprintf("Document does not match the quote format: expected an object, got %s", jsonKind(raw)))
		return nil, false
	}
	if root == nil {
		rs.res.AddError("Document is missing")
		return nil, false
	}

	d := documentDecoder{rs: rs}
	doc = &entities.QuoteDocument{}
	d.field(root, "reference", "reference", "a string", &doc.Reference)
	d.field(root, "client", "client", "a string", &doc.Client)
	d.field(root, "date", "date", "a string", &doc.Date)
	d.field(root, "origin", "origin", "a string", &doc.Origin)
	d.field(root, "destination", "destination", "a string", &doc.Destination)
	d.field(root, "incoterm", "incoterm", "a string", &doc.Incoterm)
	d.field(root, "validity", "validity", "a string", &doc.Validity)
	d.field(root, "remarks", "remarks", "an array of strings", &doc.Remarks)
	d.field(root, "metadata", "metadata", "an object", &doc.Metadata)
	doc.Options = d.options(root)
	doc.Totals = d.totals(root)
	return doc, true
}

type documentDecoder struct {
	rs *ruleSet
}

func (d documentDecoder) field(obj jsonObject, key, path, want string, dst any) bool {
	raw, ok := obj[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.mistyped(path, want, raw)
		return false
	}
	return true
}

func (d documentDecoder) mistyped(path, want string, raw json.RawMessage) {
	d.rs.reported[path] = true
	d.rs.res.AddError(fmt.Sprintf("Field %s must be %s, got %s", path, want, jsonKind(raw)))
}

// elements decodes an array of objects. A nil result means the key was absent,
// null or not an array.
func (d documentDecoder) elements(obj jsonObject, key, path string) []jsonObject {
	var items []json.RawMessage
	if !d.field(obj, key, path, "an array", &items) || items == nil {
		return nil
	}

	out := make([]jsonObject, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		var o jsonObject
		if err := json.Unmarshal(item, &o); err != nil || o == nil {
			d.mistyped(itemPath, "an object", item)
			continue
		}
		out[i] = o
	}
	return out
}

func (d documentDecoder) options(root jsonObject) []entities.QuoteOptionEntry {
	items := d.elements(root, "options", "options")
	if items == nil {
		return nil
	}

	options := make([]entities.QuoteOptionEntry, len(items))
	for i, o := range items {
		if o == nil {
			continue
		}
		path := fmt.Sprintf("options[%d]", i)
		opt := &options[i]
		d.field(o, "option_id", path+".option_id", "a string", &opt.OptionID)
		d.field(o, "transit_time", path+".transit_time", "a number", &opt.TransitTime)
		d.field(o, "port_of_loading", path+".port_of_loading", "a string", &opt.PortOfLoading)
		opt.Containers = d.containers(o, path+".containers")
	}
	return options
}

func (d documentDecoder) containers(option jsonObject, path string) []entities.ContainerLine {
	items := d.elements(option, "containers", path)
	if items == nil {
		return nil
	}

	lines := make([]entities.ContainerLine, len(items))
	for i, o := range items {
		if o == nil {
			continue
		}
		cpath := fmt.Sprintf("%s[%d]", path, i)
		c := &lines[i]
		d.field(o, "type", cpath+".type", "a string", &c.Type)
		c.Quantity = d.quantity(o, cpath+".quantity")
		d.field(o, "unit_haulage", cpath+".unit_haulage", "an array of cost lines", &c.UnitHaulage)
		d.field(o, "unit_seafreight", cpath+".unit_seafreight", "an object with freight and surcharges", &c.UnitSeafreight)
		d.field(o, "unit_services", cpath+".unit_services", "an array of cost lines", &c.UnitServices)
	}
	return lines
}

// quantity accepts any JSON number holding a whole count of containers.
func (d documentDecoder) quantity(container jsonObject, path string) int {
	var q float64
	if !d.field(container, "quantity", path, "a number", &q) {
		return 0
	}
	if q != math.Trunc(q) || math.Abs(q) > math.MaxInt32 {
		d.rs.reported[path] = true
		d.rs.res.AddError(fmt.Sprintf("Field %s must be a whole number of containers, got %g", path, q))
		return 0
	}
	return int(q)
}

// totals keeps the well-typed entries; a mistyped entry is reported and
// skipped so the remaining options are still cross-checked.
func (d documentDecoder) totals(root jsonObject) map[string]entities.OptionTotals {
	var entries jsonObject
	if !d.field(root, "totals", "totals", "an object", &entries) || len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	totals := make(map[string]entities.OptionTotals, len(entries))
	for _, k := range keys {
		var t entities.OptionTotals
		if err := json.Unmarshal(entries[k], &t); err != nil {
			d.mistyped("totals."+k, "an object of numeric totals", entries[k])
			d.rs.reported["totals"] = true
			continue
		}
		totals[k] = t
	}
	return totals
}

func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '"':
		return "a string"
	case '{':
		return "an object"
	case '[':
		return "an array"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}
