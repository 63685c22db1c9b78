package opls

import "time"

// apiTimeLayout is the wire format the OPLS API uses for timestamps: ISO-8601
// with the 'T' replaced by a space and no zone designator.
const apiTimeLayout = "2006-01-02 15:04:05.000"

// DateString renders t in the API's wire format. The backend interprets
// timestamps as local wall-clock time, matching the original client.
func DateString(t time.Time) string {
	return t.Format(apiTimeLayout)
}

// ParseDate parses a timestamp in the API's wire format.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(apiTimeLayout, value, time.Local)
}
