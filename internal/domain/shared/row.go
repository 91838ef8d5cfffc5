package shared

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Row is a loosely-shaped record entering the core from outside: a storage
// row, a submitted form, an import file line. External callers use a mix of
// snake_case, camelCase, and legacy column names; Row accessors take the
// accepted spellings in priority order so that tolerance lives in one place
// and everything past the entity constructors works on one canonical shape.
type Row map[string]interface{}

// Has reports whether any of the given keys carries a non-nil value.
func (r Row) Has(keys ...string) bool {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return true
		}
	}
	return false
}

// String returns the first present key's value as a string.
func (r Row) String(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// Int64 returns the first present key's value widened to int64.
// JSON decoders deliver numbers as float64, storage rows as int64,
// and CSV lines as strings.
func (r Row) Int64(keys ...string) int64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case int64:
			return n
		case int:
			return int64(n)
		case int32:
			return int64(n)
		case float64:
			return int64(n)
		case string:
			if parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// Float returns the first present key's numeric value, or nil when absent.
// CSV lines carry numbers as strings; unparsable text counts as absent.
func (r Row) Float(keys ...string) *float64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			f := n
			return &f
		case float32:
			f := float64(n)
			return &f
		case int:
			f := float64(n)
			return &f
		case int64:
			f := float64(n)
			return &f
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return &parsed
			}
		}
	}
	return nil
}

// Time returns the first present key's value as a time.Time, parsing
// RFC3339 strings as storage adapters emit them.
func (r Row) Time(keys ...string) time.Time {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			return t
		case string:
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// Map returns the first present key's value as a map, unmarshalling JSON
// text when the storage engine kept the column as a string.
func (r Row) Map(keys ...string) map[string]interface{} {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch m := v.(type) {
		case map[string]interface{}:
			return m
		case string:
			if m == "" {
				continue
			}
			var parsed map[string]interface{}
			if err := json.Unmarshal([]byte(m), &parsed); err == nil {
				return parsed
			}
		}
	}
	return nil
}
