package model

import "staysync/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldCategory = "category"
	FieldActive   = "active"
)

// Room is owned by the PMS, the engine only reads it.
type Room struct {
	ID        string `db:"id"`
	Number    string `db:"number"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	Capacity  int    `db:"capacity"`
	BasePrice int64  `db:"base_price"`
	Currency  string `db:"currency"`
	Active    bool   `db:"active"`
	model.Metadata
}
