package odoo

import (
	"encoding/json"
	"time"
)

const (
	// DateLayout is the ERP's serialization of date fields.
	DateLayout = "2006-01-02"
	// DatetimeLayout is the ERP's serialization of datetime fields.
	DatetimeLayout = "2006-01-02 15:04:05"
)

// Record is one raw row returned by read/search_read. Null fields arrive
// as JSON false rather than null, so the typed accessors below treat a
// bool false as absent for every non-bool type.
type Record map[string]any

// Str returns a string field, or "" when unset.
func (r Record) Str(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

// Float returns a numeric field, or 0 when unset.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns an integer field, or 0 when unset.
func (r Record) Int(field string) int64 {
	return int64(r.Float(field))
}

// Bool returns a boolean field.
func (r Record) Bool(field string) bool {
	b, _ := r[field].(bool)
	return b
}

// Ref returns a normalized many2one reference field.
func (r Record) Ref(field string) (Ref, bool) {
	return ParseRef(r[field])
}

// Date parses a date field, falling back to the datetime layout. The
// second return is false when the field is unset or malformed.
func (r Record) Date(field string) (time.Time, bool) {
	raw := r.Str(field)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(DatetimeLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
