package normalize

import (
	"testing"
	"time"

	"creingest/pkg/tabular"
)

func TestMatchKey(t *testing.T) {
	tests := []struct {
		name    string
		address tabular.Cell
		city    tabular.Cell
		state   tabular.Cell
		zip     tabular.Cell
		want    string
	}{
		{
			name:    "standard address",
			address: tabular.TextCell("123 Main St."),
			city:    tabular.TextCell("Springfield"),
			state:   tabular.TextCell("IL"),
			zip:     tabular.TextCell("62701"),
			want:    "123mainstspringfieldil62701",
		},
		{
			name:    "all missing",
			address: tabular.Missing,
			city:    tabular.Missing,
			state:   tabular.Missing,
			zip:     tabular.Missing,
			want:    "",
		},
		{
			name:    "numeric zip",
			address: tabular.TextCell("9 Elm Ave"),
			city:    tabular.TextCell("Atlanta"),
			state:   tabular.TextCell("GA"),
			zip:     tabular.NumberCell(30301),
			want:    "9elmaveatlantaga30301",
		},
		{
			name:    "zip+4 hyphen stripped",
			address: tabular.TextCell("500 W 5th St"),
			city:    tabular.TextCell("Austin"),
			state:   tabular.TextCell("TX"),
			zip:     tabular.TextCell("78701-2444"),
			want:    "500w5thstaustintx787012444",
		},
		{
			name:    "missing middle components",
			address: tabular.TextCell("1 Ocean Dr"),
			city:    tabular.Missing,
			state:   tabular.Missing,
			zip:     tabular.TextCell("33139"),
			want:    "1oceandr33139",
		},
		{
			name:    "punctuation only strips to empty",
			address: tabular.TextCell("---"),
			city:    tabular.TextCell("..."),
			state:   tabular.TextCell("  "),
			zip:     tabular.Missing,
			want:    "",
		},
		{
			name:    "uppercase folded",
			address: tabular.TextCell("450 LEXINGTON AVE"),
			city:    tabular.TextCell("NEW YORK"),
			state:   tabular.TextCell("NY"),
			zip:     tabular.TextCell("10017"),
			want:    "450lexingtonavenewyorkny10017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchKey(tt.address, tt.city, tt.state, tt.zip)
			if got != tt.want {
				t.Errorf("MatchKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchKey_OnlyAlphanumeric(t *testing.T) {
	inputs := [][4]tabular.Cell{
		{tabular.TextCell("Åkergatan 12"), tabular.TextCell("Malmö"), tabular.TextCell("—"), tabular.TextCell("211 20")},
		{tabular.NumberCell(42.5), tabular.BoolCell(true), tabular.Missing, tabular.TimeCell(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
	}

	for _, in := range inputs {
		got := MatchKey(in[0], in[1], in[2], in[3])
		for _, r := range got {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				t.Errorf("MatchKey() = %q contains %q outside [a-z0-9]", got, r)
			}
		}
	}
}

func TestMatchKey_IgnoresUnrelatedInputsOrder(t *testing.T) {
	// Same four components always produce the same key.
	first := MatchKey(tabular.TextCell("77 Pine St"), tabular.TextCell("Seattle"), tabular.TextCell("WA"), tabular.TextCell("98101"))
	second := MatchKey(tabular.TextCell("77 Pine St"), tabular.TextCell("Seattle"), tabular.TextCell("WA"), tabular.TextCell("98101"))

	if first != second {
		t.Errorf("MatchKey() is not deterministic: %q != %q", first, second)
	}
}
