package normalize

import (
	"testing"
	"time"

	"creingest/pkg/tabular"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		cell tabular.Cell
		want any
	}{
		{
			name: "missing cleans to nil",
			cell: tabular.Missing,
			want: nil,
		},
		{
			name: "text passes through",
			cell: tabular.TextCell("Retail"),
			want: "Retail",
		},
		{
			name: "whole number stays float",
			cell: tabular.NumberCell(42500),
			want: 42500.0,
		},
		{
			name: "fractional number",
			cell: tabular.NumberCell(6.75),
			want: 6.75,
		},
		{
			name: "time renders ISO 8601",
			cell: tabular.TimeCell(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)),
			want: "2024-03-15T09:30:00Z",
		},
		{
			name: "bool true renders as string",
			cell: tabular.BoolCell(true),
			want: "true",
		},
		{
			name: "bool false renders as string",
			cell: tabular.BoolCell(false),
			want: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.cell)
			if got != tt.want {
				t.Errorf("Clean() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestClean_NumberTypeIsFloat64(t *testing.T) {
	got := Clean(tabular.NumberCell(1980))

	if _, ok := got.(float64); !ok {
		t.Fatalf("Clean() of a number = %T, want float64", got)
	}
}
