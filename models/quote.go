package models

// MissionType is the category of inspection/report requested. The values are
// the business's own French vocabulary and double as price-table key segments.
type MissionType string

const (
	MissionLocatif      MissionType = "locatif"
	MissionAvantTravaux MissionType = "avant-travaux"
	MissionReception    MissionType = "reception"
	MissionAcquisitif   MissionType = "acquisitif"
	MissionPermis       MissionType = "permis-location"
)

// PropertyKind identifies the kind of property being inspected.
type PropertyKind string

const (
	PropertyAppartement PropertyKind = "appartement"
	PropertyMaison      PropertyKind = "maison"
	PropertyVilla       PropertyKind = "villa"
	PropertyStudio      PropertyKind = "studio"
	PropertyKot         PropertyKind = "kot"
	PropertyEntrepot    PropertyKind = "entrepot"
)

// Option is a pricing option selectable on a service request. Furnished and
// printed-copy options are proportional to the base price, the rest are flat
// surcharges (see services/pricing).
type Option string

const (
	OptionMeuble      Option = "meuble"
	OptionJardin      Option = "jardin"
	OptionParking     Option = "parking"
	OptionCave        Option = "cave"
	OptionPrint       Option = "print"
	OptionPiscine     Option = "piscine"
	OptionBxl         Option = "bxl"
	OptionAdmin       Option = "admin"
	OptionReouverture Option = "reouverture"
)

// ServiceRequest describes one property for quotation. It is built fresh for
// every computation and never mutated.
type ServiceRequest struct {
	Mission      MissionType     `json:"mission"`
	PropertyKind PropertyKind    `json:"typeBien"`
	Bedrooms     int             `json:"chambres"`
	Bathrooms    int             `json:"sdb"`
	SurfaceM2    float64         `json:"surface,omitempty"`
	Options      map[Option]bool `json:"options,omitempty"`
}

// HasOption reports whether opt is selected on the request.
func (r ServiceRequest) HasOption(opt Option) bool {
	return r.Options[opt]
}

// PriceQuote is the result of a price computation. Total is always twice the
// per-party price: lease inspections are billed half to the landlord and half
// to the tenant. Single-party missions read PricePerParty as the full price.
// A zero BasePrice means "on request". Quotes are derived values, never stored.
type PriceQuote struct {
	BasePrice     float64 `json:"basePrice"`
	PricePerParty float64 `json:"pricePerParty"`
	Total         float64 `json:"total"`
}

// OnRequest reports whether the request falls outside the price table.
func (q PriceQuote) OnRequest() bool {
	return q.BasePrice == 0
}
