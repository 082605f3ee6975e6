package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Condition
		wantErr bool
	}{
		{name: "baik", in: "baik", want: ConditionGood},
		{name: "sedang", in: "sedang", want: ConditionMedium},
		{name: "buruk", in: "buruk", want: ConditionBad},
		{name: "uppercase", in: "BAIK", want: ConditionGood},
		{name: "surrounding whitespace", in: "  sedang ", want: ConditionMedium},
		{name: "unknown", in: "rusak", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCondition(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCondition_Valid(t *testing.T) {
	assert.True(t, ConditionGood.Valid())
	assert.True(t, ConditionMedium.Valid())
	assert.True(t, ConditionBad.Valid())
	assert.False(t, Condition("").Valid())
	assert.False(t, Condition("Baik").Valid())
}

func TestEntry_HasCoordinates(t *testing.T) {
	assert.True(t, Entry{Latitude: "-6.876583", Longitude: "107.576589"}.HasCoordinates())
	assert.False(t, Entry{Latitude: "-6.876583"}.HasCoordinates())
	assert.False(t, Entry{Longitude: "107.576589"}.HasCoordinates())
	assert.False(t, Entry{}.HasCoordinates())
	assert.False(t, Entry{Latitude: "  ", Longitude: "107.576589"}.HasCoordinates())
}

func TestEntry_Validate(t *testing.T) {
	valid := Entry{No: 1, Route: "Jalur A", Condition: ConditionGood}
	assert.NoError(t, valid.Validate())

	invalid := Entry{No: 2, Condition: "rusak"}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 2")
}
