package entity

import (
	"time"
)

type ProductionDay struct {
	ID       int64     `db:"id"`
	Date     time.Time `db:"date"`
	IsClosed bool      `db:"is_closed"`
}
