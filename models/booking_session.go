package models

// Booking session steps, in order. Transitions are strictly forward through
// explicit client actions; Back moves exactly one step without discarding
// later-step data.
const (
	StepService      = "service"
	StepDateTime     = "date"
	StepInfo         = "info"
	StepConfirmation = "confirmation"
)

// InspectionDetails carries the property fields that only exist when the
// selected service is an inspection (état des lieux). Keeping them behind a
// pointer on BookingDetails gives each service variant its own field set
// instead of one flat object with unused fields.
type InspectionDetails struct {
	BookingType  string       `json:"bookingType"` // "entree" or "sortie"
	PropertyKind PropertyKind `json:"typeBien"`
	Bedrooms     int          `json:"chambres"`
	Bathrooms    int          `json:"sdb"`
	Meuble       bool         `json:"meuble"`
	Jardin       bool         `json:"jardin"`
	Parking      bool         `json:"parking"`
	Cave         bool         `json:"cave"`
	Print        bool         `json:"print"`
}

// BookingDetails is the contact block collected at the info step.
type BookingDetails struct {
	FirstName  string             `json:"firstName"`
	LastName   string             `json:"lastName"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Address    string             `json:"propertyAddress"`
	Notes      string             `json:"notes,omitempty"`
	Inspection *InspectionDetails `json:"inspection,omitempty"`
}

// BookingSession is the server-side state of one booking wizard, cached in
// Redis under its session ID with a TTL. Earlier-step data survives a Back so
// the client can move forward again without re-entering anything.
type BookingSession struct {
	SessionID     string          `json:"sessionID"`
	Step          string          `json:"step"`
	Service       string          `json:"service,omitempty"`
	ServiceType   string          `json:"serviceType,omitempty"` // e.g. "edl"
	Date          string          `json:"date,omitempty"`
	Time          string          `json:"time,omitempty"`
	Details       *BookingDetails `json:"details,omitempty"`
	AppointmentID string          `json:"appointmentId,omitempty"`
}

// ServiceRequestFromDetails maps inspection details to a pricing request for
// the indicative quote shown on the summary panel.
func ServiceRequestFromDetails(d *InspectionDetails) ServiceRequest {
	opts := map[Option]bool{}
	if d.Meuble {
		opts[OptionMeuble] = true
	}
	if d.Jardin {
		opts[OptionJardin] = true
	}
	if d.Parking {
		opts[OptionParking] = true
	}
	if d.Cave {
		opts[OptionCave] = true
	}
	if d.Print {
		opts[OptionPrint] = true
	}
	return ServiceRequest{
		Mission:      MissionLocatif,
		PropertyKind: d.PropertyKind,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		Options:      opts,
	}
}
