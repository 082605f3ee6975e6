package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	require.NoError(t, l.Validate())
	assert.Equal(t, 9, l.StartRow)
	assert.Equal(t, "D5", l.DateCell)
	assert.Equal(t, "C4", l.AssetCell)
	assert.Equal(t, "B", l.SequenceColumn)
	assert.Equal(t, "J", l.PhotoColumn)
	assert.Equal(t, "√", l.Marker)
}

func TestLayout_Row(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 9, l.Row(0))
	assert.Equal(t, 10, l.Row(1))
	assert.Equal(t, 108, l.Row(99))
}

func TestLayout_Cell(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "B9", l.Cell("B", 9))
	assert.Equal(t, "J108", l.Cell("J", 108))
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{name: "zero start row", mutate: func(l *Layout) { l.StartRow = 0 }},
		{name: "empty marker", mutate: func(l *Layout) { l.Marker = "" }},
		{name: "bad date cell", mutate: func(l *Layout) { l.DateCell = "5D" }},
		{name: "bad asset cell", mutate: func(l *Layout) { l.AssetCell = "" }},
		{name: "bad column", mutate: func(l *Layout) { l.RouteColumn = "42" }},
		{name: "empty column", mutate: func(l *Layout) { l.PhotoColumn = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			assert.Error(t, l.Validate())
		})
	}
}

func TestFormatScheduleDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), want: "1 Januari 2023"},
		{date: time.Date(2023, time.February, 14, 0, 0, 0, 0, time.UTC), want: "14 Februari 2023"},
		{date: time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC), want: "31 Maret 2023"},
		{date: time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC), want: "2 April 2023"},
		{date: time.Date(2023, time.May, 17, 0, 0, 0, 0, time.UTC), want: "17 Mei 2023"},
		{date: time.Date(2023, time.June, 13, 0, 0, 0, 0, time.UTC), want: "13 Juni 2023"},
		{date: time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC), want: "4 Juli 2023"},
		{date: time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC), want: "24 Agustus 2023"},
		{date: time.Date(2023, time.September, 9, 0, 0, 0, 0, time.UTC), want: "9 September 2023"},
		{date: time.Date(2023, time.October, 28, 0, 0, 0, 0, time.UTC), want: "28 Oktober 2023"},
		{date: time.Date(2023, time.November, 6, 0, 0, 0, 0, time.UTC), want: "6 November 2023"},
		{date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), want: "31 Desember 2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScheduleDate(tt.date))
	}
}
