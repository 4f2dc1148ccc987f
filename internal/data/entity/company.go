package entity

import "time"

// Company is a studio that develops and/or publishes games and may
// manufacture platforms. Name is unique across the catalog.
type Company struct {
	BaseSimple
	Name     string     `db:"name"`
	IsDev    bool       `db:"is_dev"`
	IsPub    bool       `db:"is_pub"`
	OpenedAt *time.Time `db:"opened_at"`
	ClosedAt *time.Time `db:"closed_at"`
}
