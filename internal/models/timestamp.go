package models

import (
    "bytes"
    "database/sql/driver"
    "encoding/json"
    "fmt"
    "strings"
    "time"
)

// TimestampLayout is the wire format used by the rooms API for created_at.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp reads created_at as "2006-01-02 15:04:05" or ISO 8601 with or
// without a zone, and always writes TimestampLayout. Anything else decodes as
// the zero time rather than failing the enclosing room.
type Timestamp struct {
    time.Time
}

// Now keeps microseconds, the precision of a postgres timestamptz, so rooms
// created within the same second still sort by creation time.
func Now() Timestamp {
    return Timestamp{Time: time.Now().UTC().Truncate(time.Microsecond)}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
    if ts.IsZero() {
        return []byte(`""`), nil
    }
    return json.Marshal(ts.Format(TimestampLayout))
}

var timestampLayouts = []string{
    TimestampLayout,
    "2006-01-02 15:04:05.999999999",
    time.RFC3339Nano,
    "2006-01-02T15:04:05.999999999",
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
    if ts == nil {
        return fmt.Errorf("Timestamp: nil receiver")
    }
    ts.Time = parseTimestamp(bytes.TrimSpace(data))
    return nil
}

func parseTimestamp(data []byte) time.Time {
    var s string
    if err := json.Unmarshal(data, &s); err != nil {
        return time.Time{}
    }
    s = strings.TrimSpace(s)
    for _, layout := range timestampLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t
        }
    }
    return time.Time{}
}

// Scan implements sql.Scanner so gorm can read the column.
func (ts *Timestamp) Scan(value any) error {
    switch v := value.(type) {
    case nil:
        ts.Time = time.Time{}
    case time.Time:
        ts.Time = v
    default:
        return fmt.Errorf("Timestamp: cannot scan %T", value)
    }
    return nil
}

func (ts Timestamp) Value() (driver.Value, error) {
    return ts.Time, nil
}
