package model

// Source labels carried on every normalized record. The literals are
// part of the response contract and must match what downstream matching
// already stores.
const (
	SourceCoStar = "CoStar"
	SourceCREXi  = "CREXi"
)

// Record is one normalized listing row, ready for JSON serialization.
type Record interface {
	// Key returns the address-derived match key, possibly empty.
	Key() string
	// Vendor returns the source label of the pipeline that built the record.
	Vendor() string
}

// CoStarRecord flattens one row of a CoStar sale export. Mapped fields
// hold the cleaned scalar forms: nil, float64 or string.
type CoStarRecord struct {
	MatchKey string `json:"match_key"`
	Source   string `json:"source"`

	CoStarPropertyID        any `json:"costar_property_id"`
	Address                 any `json:"address"`
	City                    any `json:"city"`
	State                   any `json:"state"`
	Zip                     any `json:"zip"`
	County                  any `json:"county"`
	Latitude                any `json:"latitude"`
	Longitude               any `json:"longitude"`
	PropertyName            any `json:"property_name"`
	PropertyType            any `json:"property_type"`
	PropertyStatus          any `json:"property_status"`
	BuildingSF              any `json:"building_sf"`
	LandSF                  any `json:"land_sf"`
	LandAC                  any `json:"land_ac"`
	NumberOfUnits           any `json:"number_of_units"`
	YearBuilt               any `json:"year_built"`
	BuildingClass           any `json:"building_class"`
	SalePrice               any `json:"sale_price"`
	PricePerSF              any `json:"price_per_sf"`
	PricePerUnit            any `json:"price_per_unit"`
	PricePerAC              any `json:"price_per_ac"`
	CapRate                 any `json:"cap_rate"`
	NOI                     any `json:"noi"`
	ListingBrokerCompany    any `json:"listing_broker_company"`
	ListingBrokerAgentFirst any `json:"listing_broker_agent_first"`
	ListingBrokerAgentLast  any `json:"listing_broker_agent_last"`
	ListingBrokerPhone      any `json:"listing_broker_phone"`
	ListingBrokerAddress    any `json:"listing_broker_address"`
	Market                  any `json:"market"`
	Submarket               any `json:"submarket"`
	Tenancy                 any `json:"tenancy"`
	PercentLeased           any `json:"percent_leased"`
	Zoning                  any `json:"zoning"`
	DaysOnMarket            any `json:"days_on_market"`
}

func (r CoStarRecord) Key() string    { return r.MatchKey }
func (r CoStarRecord) Vendor() string { return r.Source }

// CREXiRecord flattens one row of a CREXi marketplace export. Identity
// comes from the listing link rather than a numeric property id.
type CREXiRecord struct {
	MatchKey string `json:"match_key"`
	Source   string `json:"source"`

	CREXiPropertyLink any  `json:"crexi_property_link"`
	Address           any  `json:"address"`
	City              any  `json:"city"`
	State             any  `json:"state"`
	Zip               any  `json:"zip"`
	Latitude          any  `json:"latitude"`
	Longitude         any  `json:"longitude"`
	PropertyName      any  `json:"property_name"`
	PropertyType      any  `json:"property_type"`
	PropertyStatus    any  `json:"property_status"`
	BuildingSF        any  `json:"building_sf"`
	LotSize           any  `json:"lot_size"`
	NumberOfUnits     any  `json:"number_of_units"`
	AskingPrice       any  `json:"asking_price"`
	PricePerSF        any  `json:"price_per_sf"`
	PricePerUnit      any  `json:"price_per_unit"`
	PricePerAC        any  `json:"price_per_ac"`
	CapRate           any  `json:"cap_rate"`
	NOI               any  `json:"noi"`
	Tenants           any  `json:"tenants"`
	OpportunityZone   bool `json:"opportunity_zone"`
	DaysOnMarket      any  `json:"days_on_market"`
}

func (r CREXiRecord) Key() string    { return r.MatchKey }
func (r CREXiRecord) Vendor() string { return r.Source }
