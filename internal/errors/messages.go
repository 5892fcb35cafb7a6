package errors

import "fmt"

// Message normalizes an arbitrary failure value into a human-readable string.
// Upstream failures are heterogeneous: structured *AppError values, plain
// errors, recovered panic values of any type. This is the single place that
// flattening happens; it never returns an empty string and never panics.
func Message(v interface{}) string {
	switch e := v.(type) {
	case nil:
		return "unknown error"
	case *AppError:
		if e.Details != "" {
			return fmt.Sprintf("%s: %s", e.Message, e.Details)
		}
		return e.Message
	case error:
		return e.Error()
	case string:
		if e == "" {
			return "unknown error"
		}
		return e
	default:
		return fmt.Sprintf("%v", e)
	}
}
