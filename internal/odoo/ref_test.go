package odoo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRefTuple(t *testing.T) {
	ref, ok := ParseRef([]any{float64(42), "Azure Interior"})

	assert.True(t, ok)
	assert.Equal(t, int64(42), ref.ID)
	assert.Equal(t, "Azure Interior", ref.Label)
}

func TestParseRefBareID(t *testing.T) {
	ref, ok := ParseRef(float64(7))

	assert.True(t, ok)
	assert.Equal(t, int64(7), ref.ID)
	assert.Empty(t, ref.Label)
}

func TestParseRefFalseIsNull(t *testing.T) {
	_, ok := ParseRef(false)
	assert.False(t, ok)

	_, ok = ParseRef(nil)
	assert.False(t, ok)
}

func TestParseRefJSONNumber(t *testing.T) {
	ref, ok := ParseRef(json.Number("19"))

	assert.True(t, ok)
	assert.Equal(t, int64(19), ref.ID)
}

func TestParseRefRejectsMalformedTuple(t *testing.T) {
	_, ok := ParseRef([]any{float64(1)})
	assert.False(t, ok)

	_, ok = ParseRef([]any{"x", "y"})
	assert.False(t, ok)
}

func TestRecordStrTreatsFalseAsUnset(t *testing.T) {
	rec := Record{"ref": false, "name": "INV/2024/0001"}

	assert.Equal(t, "", rec.Str("ref"))
	assert.Equal(t, "INV/2024/0001", rec.Str("name"))
}

func TestRecordFloatAndInt(t *testing.T) {
	rec := Record{"amount_total": float64(1210.5), "id": float64(31)}

	assert.Equal(t, 1210.5, rec.Float("amount_total"))
	assert.Equal(t, int64(31), rec.Int("id"))
	assert.Equal(t, float64(0), rec.Float("missing"))
}

func TestRecordDateFallsBackToDatetime(t *testing.T) {
	rec := Record{
		"invoice_date": "2024-03-15",
		"create_date":  "2024-03-15 10:30:00",
		"bad":          "not-a-date",
	}

	d, ok := rec.Date("invoice_date")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-15", d.Format(DateLayout))

	dt, ok := rec.Date("create_date")
	assert.True(t, ok)
	assert.Equal(t, 10, dt.Hour())

	_, ok = rec.Date("bad")
	assert.False(t, ok)

	_, ok = rec.Date("absent")
	assert.False(t, ok)
}

func TestRecordRef(t *testing.T) {
	rec := Record{"partner_id": []any{float64(5), "Deco Addict"}, "journal_id": false}

	ref, ok := rec.Ref("partner_id")
	assert.True(t, ok)
	assert.Equal(t, int64(5), ref.ID)

	_, ok = rec.Ref("journal_id")
	assert.False(t, ok)
}
