package entity

import "time"

// DefaultCurrency is the display symbol used until the user picks one.
const DefaultCurrency = "$"

// MaxCurrencyLength is the longest accepted currency symbol.
const MaxCurrencyLength = 3

// Settings holds user preferences for the single VoltTrack profile.
type Settings struct {
	Currency  string
	UpdatedAt time.Time
}

// NewSettings creates settings with the given currency symbol.
func NewSettings(currency string) *Settings {
	return &Settings{
		Currency:  currency,
		UpdatedAt: time.Now().UTC(),
	}
}
