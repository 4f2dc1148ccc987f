package entity

import "github.com/google/uuid"

type Platform struct {
	BaseSimple
	Name string `db:"name"`

	Manufacturers   []*Company  `db:"-"`
	ManufacturerIDs []uuid.UUID `db:"-"`
}
