package tableio

import "time"

// isoDatetimeLayout is spec.md §3/§4.5's millisecond-precision ISO-8601
// datetime layout, matched by Testable Property 5's
// ^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}\.\d{3}Z)?$ regex. time.RFC3339
// omits fractional seconds and so does not satisfy it.
const isoDatetimeLayout = "2006-01-02T15:04:05.000Z"

// NormalizeTemporal renders a backend-native date/time/timestamp value as
// the ISO-8601 string spec.md §4.5 requires every adapter to emit, so the
// Emitter never has to reason about a backend's native temporal
// representation. spec.md §3's logical type set has no bare
// temporal-time (only temporal-date and temporal-datetime), so a
// backend's TIME column normalizes through the same millisecond-precision
// datetime layout as TypeDatetime rather than a bare hh:mm:ss string.
func NormalizeTemporal(t LogicalType, v time.Time) string {
	switch t {
	case TypeDate:
		return v.Format("2006-01-02")
	default:
		return v.UTC().Format(isoDatetimeLayout)
	}
}
