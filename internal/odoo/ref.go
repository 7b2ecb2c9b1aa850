package odoo

import "encoding/json"

// Ref is a normalized many2one reference. The ERP serializes these either
// as a bare integer ID or as a two-element [id, label] tuple; unset
// references arrive as JSON false. Every consumer goes through ParseRef so
// the tuple-vs-scalar ambiguity never leaks past this package.
type Ref struct {
	ID    int64
	Label string
}

// ParseRef normalizes a raw reference value. The second return is false
// when the value does not carry a resolvable ID.
func ParseRef(value any) (Ref, bool) {
	switch v := value.(type) {
	case nil:
		return Ref{}, false
	case bool:
		// JSON false marks a null reference.
		return Ref{}, false
	case float64:
		return Ref{ID: int64(v)}, true
	case int64:
		return Ref{ID: v}, true
	case int:
		return Ref{ID: int64(v)}, true
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return Ref{}, false
		}
		return Ref{ID: id}, true
	case []any:
		if len(v) != 2 {
			return Ref{}, false
		}
		ref, ok := ParseRef(v[0])
		if !ok {
			return Ref{}, false
		}
		if label, ok := v[1].(string); ok {
			ref.Label = label
		}
		return ref, true
	default:
		return Ref{}, false
	}
}
