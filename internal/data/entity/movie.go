package entity

import (
	"github.com/google/uuid"
)

// Movie keeps rating, length and starring as free text, matching the
// metadata source (OMDb reports e.g. "8.8", "148 min", "A, B, C").
type Movie struct {
	BaseSimple
	Title       string    `db:"title"`
	Year        int       `db:"year"`
	Poster      string    `db:"poster"`
	Description string    `db:"description"`
	Genre       string    `db:"genre"`
	Rating      string    `db:"rating"`
	Length      string    `db:"length"`
	Starring    string    `db:"starring"`
	AddedByID   uuid.UUID `db:"added_by_id"`
}
