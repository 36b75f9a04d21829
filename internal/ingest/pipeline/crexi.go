package pipeline

import (
	"io"

	"creingest/pkg/model"
	"creingest/pkg/normalize"
	"creingest/pkg/tabular"
)

// CREXi parses CREXi marketplace exports. The files carry a banner line
// above the real header, so parsing skips one row and then promotes the
// first remaining row to be the header.
type CREXi struct{}

func (CREXi) Source() string { return model.SourceCREXi }

func (CREXi) Run(r io.Reader) ([]model.Record, error) {
	tbl, err := tabular.Read(r, tabular.Options{SkipRows: 1})
	if err != nil {
		return nil, err
	}
	tbl.Promote()

	records := make([]model.Record, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)

		records = append(records, model.CREXiRecord{
			MatchKey: normalize.MatchKey(row.Get("Address"), row.Get("City"), row.Get("State"), row.Get("Zip")),
			Source:   model.SourceCREXi,

			CREXiPropertyLink: normalize.Clean(row.Get("Property Link")),
			Address:           normalize.Clean(row.Get("Address")),
			City:              normalize.Clean(row.Get("City")),
			State:             normalize.Clean(row.Get("State")),
			Zip:               normalize.Clean(row.Get("Zip")),
			Latitude:          normalize.Clean(row.Get("Latitude")),
			Longitude:         normalize.Clean(row.Get("Longitude")),
			PropertyName:      normalize.Clean(row.Get("Property Name")),
			PropertyType:      normalize.Clean(row.Get("Type")),
			PropertyStatus:    normalize.Clean(row.Get("Property Status")),
			BuildingSF:        normalize.Clean(row.Get("SqFt")),
			LotSize:           normalize.Clean(row.Get("Lot Size")),
			NumberOfUnits:     normalize.Clean(row.Get("Units")),
			AskingPrice:       normalize.Clean(row.Get("Asking Price")),
			PricePerSF:        normalize.Clean(row.Get("Price/SqFt")),
			PricePerUnit:      normalize.Clean(row.Get("Price/Unit")),
			PricePerAC:        normalize.Clean(row.Get("Price/Acre")),
			CapRate:           normalize.Clean(row.Get("Cap Rate")),
			NOI:               normalize.Clean(row.Get("NOI")),
			Tenants:           normalize.Clean(row.Get("Tenant(s)")),
			OpportunityZone:   normalize.Clean(row.Get("Opportunity Zone")) == "Yes",
			DaysOnMarket:      normalize.Clean(row.Get("Days on Market")),
		})
	}

	return records, nil
}
