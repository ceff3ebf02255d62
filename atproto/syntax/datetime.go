package syntax

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// Prefered atproto Datetime string syntax, for use with [time.Format].
	//
	// Note that *parsing* syntax is more flexible.
	AtprotoDatetimeLayout = "2006-01-02T15:04:05.999Z"
)

var datetimeRegex = regexp.MustCompile(`^[0-9]{4}-[01][0-9]-[0-3][0-9]T[0-2][0-9]:[0-6][0-9]:[0-6][0-9](.[0-9]{1,20})?(Z|([+-][0-2][0-9]:[0-5][0-9]))$`)

// Represents a Datetime in string format, as would pass Lexicon syntax validation: the intersection of RFC-3339 and ISO-8601 syntax.
type Datetime string

func ParseDatetime(raw string) (Datetime, error) {
	if len(raw) > 64 {
		return "", fmt.Errorf("Datetime too long (max 64 chars)")
	}
	if !datetimeRegex.MatchString(raw) {
		return "", fmt.Errorf("Datetime syntax didn't validate via regex")
	}
	if strings.HasSuffix(raw, "-00:00") {
		return "", fmt.Errorf("Datetime can't use '-00:00' for UTC timezone, must use '+00:00', per ISO-8601")
	}
	return Datetime(raw), nil
}

// Creates a new valid Datetime string matching the current time, in prefered syntax.
func DatetimeNow() Datetime {
	return DatetimeFromTime(time.Now())
}

// DatetimeFromTime formats t, in UTC, in the prefered syntax.
func DatetimeFromTime(t time.Time) Datetime {
	return Datetime(t.UTC().Format(AtprotoDatetimeLayout))
}

func (d Datetime) String() string {
	return string(d)
}
