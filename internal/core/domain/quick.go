package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNothingToUndo     = errors.New("no cigarette logged today")
	ErrCigaretteNotFound = errors.New("cigarette log not found")
	ErrParkingTooLong    = errors.New("parking location is too long (max 200 chars)")
)

const (
	ParkingUnset  = "No registrado"
	MaxParkingLen = 200
)

type CigaretteLog struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Parking is the single remembered car location.
type Parking struct {
	Location  string    `json:"location" db:"location"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewParking(location string) (*Parking, error) {
	clean := strings.TrimSpace(location)
	if clean == "" {
		clean = ParkingUnset
	}
	if utf8.RuneCountInString(clean) > MaxParkingLen {
		return nil, ErrParkingTooLong
	}
	return &Parking{Location: clean, UpdatedAt: time.Now().UTC()}, nil
}
