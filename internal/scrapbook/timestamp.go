package scrapbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// zonelessLayout matches ISO 8601 timestamps written without an offset,
// such as "2025-01-02T10:11:12.123456". They are read in local time.
const zonelessLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that also decodes zone-less ISO 8601 values.
// It encodes as RFC 3339.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts RFC 3339 strings, zone-less ISO 8601 strings, null
// and the empty string.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		ts.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		ts.Time = t
		return nil
	}
	t, err := time.ParseInLocation(zonelessLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: expected RFC 3339 or ISO 8601 without offset", raw)
	}
	ts.Time = t
	return nil
}
