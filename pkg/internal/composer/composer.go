// Package composer turns a classified log payload into the event the collector receives.
// Composition is pure: it reads a settings snapshot and an environment and never sends.
package composer

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/settings"
	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/joeydtaylor/splunklogger/pkg/internal/utils"
	"github.com/joeydtaylor/splunklogger/pkg/logschema"
)

// Compose builds the event for p. It returns false when p is an error payload and the
// snapshot does not forward errors; the caller must not send in that case.
//
// When hasLevel is set, level is written after labels are applied so it cannot be renamed.
func Compose(p types.Payload, level types.Severity, hasLevel bool, snap settings.Snapshot, env types.Environment, now time.Time) (types.Event, bool) {
	if p.IsError() && !snap.SendConsoleErrors {
		return types.Event{}, false
	}

	fields := utils.CopyFields(snap.Fields)
	switch p.Kind {
	case types.PayloadError:
		fields[logschema.EventMessage] = p.Error.Message
		fields[logschema.EventStack] = p.Error.Stack
	case types.PayloadFields:
		for k, v := range p.Fields {
			fields[k] = v
		}
	case types.PayloadText:
		fields[logschema.EventMessage] = p.Text
	}

	if snap.Tag != "" {
		if _, ok := fields[logschema.EventTag]; !ok {
			fields[logschema.EventTag] = snap.Tag
		}
	}

	applyLabels(fields, snap.Labels)

	if snap.IncludeURL {
		fields[logschema.EventURL] = urlOf(env)
	}
	if snap.IncludeUserAgent {
		fields[logschema.EventUserAgent] = userAgentOf(env)
	}
	if hasLevel {
		fields[logschema.EventLevel] = level.String()
	}

	event := types.Event{
		Host:       snap.Host,
		Source:     snap.Source,
		SourceType: snap.SourceType,
		Index:      snap.Index,
		Event:      fields,
	}
	if snap.IncludeTimestamp {
		ts := EpochSeconds(now)
		event.Time = &ts
	}
	return event, true
}

// EpochSeconds converts t to fractional seconds since the Unix epoch, millisecond precision.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// applyLabels renames keys in sorted old-key order. A missing old key is skipped.
func applyLabels(fields map[string]interface{}, labels map[string]string) {
	for _, oldKey := range utils.SortedKeys(labels) {
		newKey := labels[oldKey]
		v, ok := fields[oldKey]
		if !ok || newKey == oldKey {
			continue
		}
		fields[newKey] = v
		delete(fields, oldKey)
	}
}

func urlOf(env types.Environment) string {
	if env == nil {
		return ""
	}
	return env.URL()
}

func userAgentOf(env types.Environment) string {
	if env == nil {
		return ""
	}
	return env.UserAgent()
}
