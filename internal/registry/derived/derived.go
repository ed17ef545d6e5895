// Package derived computes response-time values from stored fields.
// Nothing here is persisted; callers recompute on every response.
package derived

import (
	"net/url"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// MapSearchPrefix is the search URL every location link starts with.
const MapSearchPrefix = "https://www.google.com/maps/search/"

const (
	abbreviationLen = 3
	secondsPerDay   = 24 * 60 * 60
)

// DaysLeft returns endDate - referenceDate in calendar days. Negative
// values mean the project is overdue; there is no clamping.
func DaysLeft(endDate, referenceDate time.Time) int {
	e := domain.DateOf(endDate)
	r := domain.DateOf(referenceDate)
	return int((e.Unix() - r.Unix()) / secondsPerDay)
}

// MapLink returns a map-search URL for address, or "" when address is blank.
// Everything except letters, digits, "_.-~" and "/" is percent-encoded.
func MapLink(address string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	return MapSearchPrefix + pathEncoder.Replace(url.QueryEscape(address))
}

// QueryEscape already leaves only A-Za-z0-9 and "_.-~" bare; spaces come out
// as "+" and slashes as %2F.
var pathEncoder = strings.NewReplacer("+", "%20", "%2F", "/")

// Abbreviation returns the first three characters of name.
func Abbreviation(name string) string {
	r := []rune(name)
	if len(r) <= abbreviationLen {
		return name
	}
	return string(r[:abbreviationLen])
}

// Today is the calendar date of now in loc, used as the reference date.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return domain.DateOf(now)
}
