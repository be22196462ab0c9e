package valueobject

import "time"

// DateLayout is the calendar-day format used for daily map keys.
const DateLayout = "2006-01-02"

// DateKey identifies a UTC calendar day.
type DateKey string

// DateKeyOf returns the UTC calendar day containing t.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.UTC().Format(DateLayout))
}

// DateKeyFor returns the key for a calendar date.
func DateKeyFor(year int, month time.Month, day int) DateKey {
	return DateKeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the keyed day.
func (k DateKey) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(k))
}

// String implements fmt.Stringer.
func (k DateKey) String() string {
	return string(k)
}
