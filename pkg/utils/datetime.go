package utils

import (
	"fmt"
	"strings"
	"time"
)

// LocalInputLayout is the value format of an HTML datetime-local field.
const LocalInputLayout = "2006-01-02T15:04"

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	LocalInputLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// HasZone reports whether an ISO-8601 string carries a zone designator
// (Z or a numeric offset after the time part).
func HasZone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if last := s[len(s)-1]; last == 'Z' || last == 'z' {
		return true
	}
	sep := strings.IndexAny(s, "Tt ")
	if sep < 0 {
		return false
	}
	return strings.ContainsAny(s[sep+1:], "+-")
}

// NormalizeUTC marks a server timestamp as UTC when it has no zone. The result
// names the same instant as the input with "Z" appended. Date-only values
// become midnight UTC.
func NormalizeUTC(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || HasZone(s) {
		return s
	}
	if !strings.ContainsAny(s, "Tt ") {
		return s + "T00:00:00Z"
	}
	return strings.Replace(s, " ", "T", 1) + "Z"
}

// ParseServerTime parses a server timestamp, reading zone-less values as UTC.
func ParseServerTime(s string) (time.Time, error) {
	return ParseInLocation(NormalizeUTC(s), time.UTC)
}

// ParseInLocation parses s honoring its zone when present and falling back to
// loc otherwise.
func ParseInLocation(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if HasZone(s) {
		zoned := strings.Replace(strings.ToUpper(s), " ", "T", 1)
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, zoned); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// LocalInputToUTC converts a viewer-entered schedule time into an absolute
// instant in UTC.
func LocalInputToUTC(s string, loc *time.Location) (time.Time, error) {
	t, err := ParseInLocation(s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ToLocalInput renders an instant for an editable datetime-local field in the
// viewer's zone.
func ToLocalInput(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalInputLayout)
}

// ToLocalDisplay renders an instant for reading in the viewer's zone.
func ToLocalDisplay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon, 02 Jan 2006 15:04 MST")
}

func LoadLocation(name string, fallback *time.Location) *time.Location {
	if name == "" {
		return fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}
