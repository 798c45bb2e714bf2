package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2025-01-31")
	require.NotNil(t, d)
	assert.Equal(t, "2025-01-31", d.String())

	// Sentinel strings from exported data all mean "unset"
	for _, s := range []string{"", "  ", "NaT", "nat", "nan", "None", "null"} {
		assert.Nil(t, ParseDate(s), "input %q", s)
	}

	assert.Nil(t, ParseDate("31/01/2025"))
	assert.Nil(t, ParseDate("not a date"))
}

func TestDateDefined(t *testing.T) {
	assert.False(t, (*Date)(nil).Defined())
	assert.False(t, (&Date{}).Defined())
	assert.True(t, NewDate(2025, 1, 31).Defined())
}

func TestDateJSON(t *testing.T) {
	type doc struct {
		End *Date `json:"end,omitempty"`
	}

	b, err := json.Marshal(doc{End: NewDate(2025, 1, 31)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"end":"2025-01-31"}`, string(b))

	var parsed doc
	require.NoError(t, json.Unmarshal([]byte(`{"end":"2025-01-31"}`), &parsed))
	assert.Equal(t, "2025-01-31", parsed.End.String())

	// Empty string is tolerated and leaves the date unset
	var blank doc
	require.NoError(t, json.Unmarshal([]byte(`{"end":""}`), &blank))
	assert.False(t, blank.End.Defined())
}
