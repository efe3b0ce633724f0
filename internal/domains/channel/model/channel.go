package model

const (
	RoomKindRoom = "room"
	RoomKindDorm = "dorm"

	SellModePerRoom = "per_room"
	RateModeManual  = "manual"
)

// External booking statuses.
const (
	StatusNew        = "new"
	StatusConfirmed  = "confirmed"
	StatusModified   = "modified"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

type Property struct {
	ID       string `json:"-"`
	Title    string `json:"title,omitempty"`
	Currency string `json:"currency"`
}

func (p *Property) SetID(id string) { p.ID = id }

type RoomType struct {
	ID               string `json:"-"`
	PropertyID       string `json:"property_id"`
	Title            string `json:"title"`
	RoomKind         string `json:"room_kind"`
	CountOfRooms     int    `json:"count_of_rooms"`
	OccAdults        int    `json:"occ_adults"`
	OccChildren      int    `json:"occ_children"`
	OccInfants       int    `json:"occ_infants"`
	DefaultOccupancy int    `json:"default_occupancy"`
}

func (r *RoomType) SetID(id string) { r.ID = id }

type RatePlanOption struct {
	Occupancy int   `json:"occupancy"`
	IsPrimary bool  `json:"is_primary"`
	Rate      Money `json:"rate"`
}

type RatePlan struct {
	ID         string           `json:"-"`
	PropertyID string           `json:"property_id"`
	RoomTypeID string           `json:"room_type_id"`
	Title      string           `json:"title"`
	Currency   string           `json:"currency"`
	SellMode   string           `json:"sell_mode"`
	RateMode   string           `json:"rate_mode"`
	Options    []RatePlanOption `json:"options"`
}

func (r *RatePlan) SetID(id string) { r.ID = id }

// RateValue sets the nightly rate of a rate plan over [DateFrom, DateTo], both inclusive.
type RateValue struct {
	PropertyID string `json:"property_id"`
	RatePlanID string `json:"rate_plan_id"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
	Rate       Money  `json:"rate"`
}

// AvailabilityValue sets the sellable count of a room type over [DateFrom, DateTo], both inclusive.
type AvailabilityValue struct {
	PropertyID   string `json:"property_id"`
	RoomTypeID   string `json:"room_type_id"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	Availability int    `json:"availability"`
}

type Customer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Mail    string `json:"mail,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
}

type Occupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type BookingRoom struct {
	RoomTypeID   string           `json:"room_type_id"`
	RatePlanID   string           `json:"rate_plan_id"`
	CheckinDate  string           `json:"checkin_date"`
	CheckoutDate string           `json:"checkout_date"`
	Occupancy    Occupancy        `json:"occupancy"`
	Days         map[string]Money `json:"days"`
}

type Booking struct {
	ID                 string        `json:"-"`
	PropertyID         string        `json:"property_id"`
	Status             string        `json:"status"`
	OTAName            string        `json:"ota_name"`
	OTAReservationCode string        `json:"ota_reservation_code,omitempty"`
	ArrivalDate        string        `json:"arrival_date"`
	DepartureDate      string        `json:"departure_date"`
	Currency           string        `json:"currency"`
	Amount             Money         `json:"amount"`
	Notes              string        `json:"notes,omitempty"`
	Customer           Customer      `json:"customer"`
	Rooms              []BookingRoom `json:"rooms"`
	UpdatedAt          string        `json:"updated_at,omitempty"`
}

func (b *Booking) SetID(id string) { b.ID = id }

// BookingFilter narrows a booking listing. Empty fields are not sent.
type BookingFilter struct {
	PropertyID   string
	ArrivalFrom  string
	ArrivalTo    string
	UpdatedSince string
	Page         int
	Limit        int
}

type BookingPage struct {
	Bookings []Booking
	Page     int
	Limit    int
	Total    int
}

// HasNext reports whether another page follows this one.
func (p BookingPage) HasNext() bool {
	return p.Limit > 0 && p.Page*p.Limit < p.Total
}
