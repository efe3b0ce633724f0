package model

import "time"

const (
	PartnerAirbnb = "airbnb"
	PartnerAgoda  = "agoda"
)

type PushRatesRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	From     string `json:"from"      validate:"required,stay_date"`
	To       string `json:"to"        validate:"required,stay_date"`
	BaseRate int64  `json:"base_rate" validate:"omitempty,gt=0"`
}

type BookingResult struct {
	Partner       string      `json:"partner"`
	BookingID     string      `json:"booking_id"`
	ExternalID    string      `json:"external_id"`
	PartnerRoomID string      `json:"partner_room_id"`
	Nights        []time.Time `json:"nights"`
}

type RatesResult struct {
	Partner       string `json:"partner"`
	PartnerRoomID string `json:"partner_room_id"`
	RatePlanID    string `json:"rate_plan_id"`
	NightlyPrice  int64  `json:"nightly_price"`
}
