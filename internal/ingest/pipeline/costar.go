package pipeline

import (
	"io"

	"creingest/pkg/model"
	"creingest/pkg/normalize"
	"creingest/pkg/tabular"
)

// CoStar parses CoStar sale exports. The first worksheet row is the
// header row.
type CoStar struct{}

func (CoStar) Source() string { return model.SourceCoStar }

func (CoStar) Run(r io.Reader) ([]model.Record, error) {
	tbl, err := tabular.Read(r, tabular.Options{})
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)

		records = append(records, model.CoStarRecord{
			MatchKey: normalize.MatchKey(row.Get("Address"), row.Get("City"), row.Get("State"), row.Get("Zip")),
			Source:   model.SourceCoStar,

			CoStarPropertyID:        normalize.Clean(row.Get("PropertyID")),
			Address:                 normalize.Clean(row.Get("Address")),
			City:                    normalize.Clean(row.Get("City")),
			State:                   normalize.Clean(row.Get("State")),
			Zip:                     normalize.Clean(row.Get("Zip")),
			County:                  normalize.Clean(row.Get("County")),
			Latitude:                normalize.Clean(row.Get("Latitude")),
			Longitude:               normalize.Clean(row.Get("Longitude")),
			PropertyName:            normalize.Clean(row.Get("Name")),
			PropertyType:            normalize.Clean(row.Get("Property Type")),
			PropertyStatus:          normalize.Clean(row.Get("Sale Status")),
			BuildingSF:              normalize.Clean(row.Get("Size (SF)")),
			LandSF:                  normalize.Clean(row.Get("Land Area (SF)")),
			LandAC:                  normalize.Clean(row.Get("Land Area (AC)")),
			NumberOfUnits:           normalize.Clean(row.Get("Number Of Units")),
			YearBuilt:               normalize.Clean(row.Get("Built")),
			BuildingClass:           normalize.Clean(row.Get("Building Class")),
			SalePrice:               normalize.Clean(row.Get("Sale Price")),
			PricePerSF:              normalize.Clean(row.Get("Price/SF")),
			PricePerUnit:            normalize.Clean(row.Get("Price Per Unit")),
			PricePerAC:              normalize.Clean(row.Get("Price Per AC Land")),
			CapRate:                 normalize.Clean(row.Get("Cap Rate")),
			NOI:                     normalize.Clean(row.Get("Net Income")),
			ListingBrokerCompany:    normalize.Clean(row.Get("Listing Broker Company")),
			ListingBrokerAgentFirst: normalize.Clean(row.Get("Listing Broker Agent First Name")),
			ListingBrokerAgentLast:  normalize.Clean(row.Get("Listing Broker Agent Last Name")),
			ListingBrokerPhone:      normalize.Clean(row.Get("Listing Broker Phone")),
			ListingBrokerAddress:    normalize.Clean(row.Get("Listing Broker Address")),
			Market:                  normalize.Clean(row.Get("Market")),
			Submarket:               normalize.Clean(row.Get("Submarket")),
			Tenancy:                 normalize.Clean(row.Get("Tenancy")),
			PercentLeased:           normalize.Clean(row.Get("Percent Leased")),
			Zoning:                  normalize.Clean(row.Get("Zoning")),
			DaysOnMarket:            normalize.Clean(row.Get("Days On Market")),
		})
	}

	return records, nil
}
