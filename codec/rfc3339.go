package codec

import (
	"time"

	"github.com/reoring/lensmap"
)

// TimeRFC3339 returns a Transformer between time.Time and RFC3339 strings.
// The forward direction normalizes to UTC; the reverse accepts RFC3339 and
// RFC3339Nano.
func TimeRFC3339() lensmap.TransformerOf[time.Time, string] {
	return lensmap.New(
		func(t time.Time) (string, error) { return formatRFC3339Canonical(t), nil },
		func(s string) (time.Time, error) {
			t, err := parseRFC3339(s)
			if err != nil {
				return time.Time{}, lensmap.Issues{{Code: lensmap.CodeInvalidFormat, Message: "invalid RFC3339 time", Hint: "RFC3339", Cause: err}}
			}
			return t, nil
		},
	)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
