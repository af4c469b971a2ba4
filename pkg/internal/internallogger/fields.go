package internallogger

import (
	"sort"

	"go.uber.org/zap"
)

// initialFields converts static fields into zap fields in key order, so every
// core emits them identically. Empty keys and nil values are dropped.
func initialFields(fields map[string]interface{}) []zap.Field {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if key != "" && value != nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, fieldFor(key, fields[key]))
	}
	return out
}
