package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple covers records that are created once and never updated or
// deleted; users, movies and the swipe relations all grow monotonically.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
