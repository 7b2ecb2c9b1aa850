package odoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereWire(t *testing.T) {
	d := Eq("state", "posted")

	assert.Equal(t, []any{[]any{"state", "=", "posted"}}, d.Wire())
	assert.False(t, d.IsEmpty())
}

func TestAndConcatenatesTerms(t *testing.T) {
	d := And(
		Eq("state", "posted"),
		Gte("date", "2024-01-01"),
		Lte("date", "2024-12-31"),
	)

	assert.Equal(t, []any{
		[]any{"state", "=", "posted"},
		[]any{"date", ">=", "2024-01-01"},
		[]any{"date", "<=", "2024-12-31"},
	}, d.Wire())
}

func TestAndDropsEmptyParts(t *testing.T) {
	d := And(Domain{}, Eq("active", true), Domain{})

	assert.Equal(t, []any{[]any{"active", "=", true}}, d.Wire())
}

func TestOrPrefixesPipeOperators(t *testing.T) {
	d := Or(
		Ilike("code", "4000"),
		Ilike("name", "4000"),
	)

	assert.Equal(t, []any{
		"|",
		[]any{"code", "ilike", "4000"},
		[]any{"name", "ilike", "4000"},
	}, d.Wire())
}

func TestOrThreeOperands(t *testing.T) {
	d := Or(Eq("a", 1), Eq("b", 2), Eq("c", 3))

	assert.Equal(t, []any{
		"|", "|",
		[]any{"a", "=", 1},
		[]any{"b", "=", 2},
		[]any{"c", "=", 3},
	}, d.Wire())
}

func TestOrMakesMultiTermOperandsExplicit(t *testing.T) {
	// an implicit-AND pair must become "&"-prefixed before it can nest
	// under "|", otherwise the second term escapes the disjunction
	d := Or(
		And(Eq("state", "posted"), Eq("move_type", "out_invoice")),
		Eq("move_type", "out_refund"),
	)

	assert.Equal(t, []any{
		"|",
		"&",
		[]any{"state", "=", "posted"},
		[]any{"move_type", "=", "out_invoice"},
		[]any{"move_type", "=", "out_refund"},
	}, d.Wire())
}

func TestOrSingleOperandCollapses(t *testing.T) {
	d := Or(Eq("state", "draft"), Domain{})

	assert.Equal(t, []any{[]any{"state", "=", "draft"}}, d.Wire())
}

func TestInBuildsValueList(t *testing.T) {
	d := In("account_id", []int64{7, 9, 12})

	assert.Equal(t, []any{[]any{"account_id", "in", []any{int64(7), int64(9), int64(12)}}}, d.Wire())
}

func TestEmptyDomainIsMatchAll(t *testing.T) {
	var d Domain

	assert.True(t, d.IsEmpty())
	assert.Equal(t, []any{}, d.Wire())
}

func TestAndKeepsOrGroupAsSingleTerm(t *testing.T) {
	d := And(
		Or(Ilike("code", "ar"), Ilike("name", "ar")),
		Eq("active", true),
	)

	assert.Equal(t, []any{
		"|",
		[]any{"code", "ilike", "ar"},
		[]any{"name", "ilike", "ar"},
		[]any{"active", "=", true},
	}, d.Wire())
}
