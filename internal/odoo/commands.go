package odoo

// One-to-many and many-to-many write commands, in the ERP's tuple
// convention for relational field mutation.

// CommandCreate builds a [0, 0, values] tuple: create a new related
// record inline with the given field values.
func CommandCreate(values map[string]any) []any {
	return []any{int64(0), int64(0), values}
}

// CommandSet builds a [6, false, ids] tuple: replace the related record
// set with exactly the given IDs.
func CommandSet(ids []int64) []any {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return []any{int64(6), false, values}
}
