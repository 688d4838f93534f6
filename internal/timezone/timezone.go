package timezone

import "time"

// Toda data de venda é registrada no fuso do negócio.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, Location())
}
