package odoo

// Domain is a search filter in the ERP's prefix-operator wire form: an
// ordered list of [field, operator, value] triplets, optionally preceded
// by "&"/"|" logical operators. Multiple top-level terms are implicitly
// AND-joined by the ERP, matching the wire contract of search_read.
type Domain struct {
	nodes []any
	terms int
}

// Operator is a comparison operator accepted in a domain triplet.
type Operator string

const (
	OpEq    Operator = "="
	OpNeq   Operator = "!="
	OpGt    Operator = ">"
	OpGte   Operator = ">="
	OpLt    Operator = "<"
	OpLte   Operator = "<="
	OpIlike Operator = "ilike"
	OpIn    Operator = "in"
)

// Where builds a single-condition domain.
func Where(field string, op Operator, value any) Domain {
	return Domain{
		nodes: []any{[]any{field, string(op), value}},
		terms: 1,
	}
}

func Eq(field string, value any) Domain  { return Where(field, OpEq, value) }
func Neq(field string, value any) Domain { return Where(field, OpNeq, value) }
func Gt(field string, value any) Domain  { return Where(field, OpGt, value) }
func Gte(field string, value any) Domain { return Where(field, OpGte, value) }
func Lt(field string, value any) Domain  { return Where(field, OpLt, value) }
func Lte(field string, value any) Domain { return Where(field, OpLte, value) }

// Ilike matches a case-insensitive substring.
func Ilike(field, pattern string) Domain { return Where(field, OpIlike, pattern) }

// In matches any of the given record IDs.
func In(field string, ids []int64) Domain {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return Where(field, OpIn, values)
}

// And joins parts into one domain. Empty parts are dropped. The result
// relies on the ERP's implicit AND between top-level terms, which is how
// every filter object in this service composes its optional conditions.
func And(parts ...Domain) Domain {
	var out Domain
	for _, part := range parts {
		if part.terms == 0 {
			continue
		}
		out.nodes = append(out.nodes, part.nodes...)
		out.terms += part.terms
	}
	return out
}

// Or joins parts with explicit "|" prefix operators. Each multi-term part
// is first made explicit with "&" prefixes so it nests as a single operand.
func Or(parts ...Domain) Domain {
	operands := make([]Domain, 0, len(parts))
	for _, part := range parts {
		if part.terms == 0 {
			continue
		}
		operands = append(operands, part.explicit())
	}
	if len(operands) == 0 {
		return Domain{}
	}
	if len(operands) == 1 {
		return operands[0]
	}

	var out Domain
	for i := 0; i < len(operands)-1; i++ {
		out.nodes = append(out.nodes, "|")
	}
	for _, operand := range operands {
		out.nodes = append(out.nodes, operand.nodes...)
	}
	out.terms = 1
	return out
}

// explicit collapses implicit AND terms into a single "&"-prefixed operand.
func (d Domain) explicit() Domain {
	if d.terms <= 1 {
		return d
	}
	nodes := make([]any, 0, len(d.nodes)+d.terms-1)
	for i := 0; i < d.terms-1; i++ {
		nodes = append(nodes, "&")
	}
	nodes = append(nodes, d.nodes...)
	return Domain{nodes: nodes, terms: 1}
}

// IsEmpty reports whether the domain has no conditions.
func (d Domain) IsEmpty() bool { return d.terms == 0 }

// Wire returns the JSON-serializable domain list sent to the ERP.
// An empty domain compiles to an empty list, i.e. match-all.
func (d Domain) Wire() []any {
	if len(d.nodes) == 0 {
		return []any{}
	}
	out := make([]any, len(d.nodes))
	copy(out, d.nodes)
	return out
}
