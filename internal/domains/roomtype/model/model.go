package model

import "stayadmin/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID        = "id"
	FieldName      = "name"
	FieldCapacity  = "capacity"
	FieldBasePrice = "base_price"
	FieldActive    = "active"
)

type RoomType struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Capacity  int    `db:"capacity"`
	BasePrice int64  `db:"base_price"`
	Active    bool   `db:"active"`
	model.Metadata
}

// Fits reports whether guests can stay in the room type. A zero capacity is unbounded.
func (r RoomType) Fits(guests int) bool {
	return r.Capacity <= 0 || guests <= r.Capacity
}
