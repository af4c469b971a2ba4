package sensor

import (
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

// Stats is a point-in-time read of a sensor's counters.
type Stats struct {
	Sent           int64
	Suppressed     int64
	Succeeded      int64
	Failed         int64
	Requests       int64
	Trips          int64
	Resets         int64
	UncaughtErrors int64
	LastTrip       time.Time
}

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.snapshotMetadata()
}

// Stats returns the current counter values.
func (s *Sensor) Stats() Stats {
	stats := Stats{
		Sent:           s.counters.sent.Load(),
		Suppressed:     s.counters.suppressed.Load(),
		Succeeded:      s.counters.succeeded.Load(),
		Failed:         s.counters.failed.Load(),
		Requests:       s.counters.requests.Load(),
		Trips:          s.counters.trips.Load(),
		Resets:         s.counters.resets.Load(),
		UncaughtErrors: s.counters.uncaught.Load(),
	}
	if ns := s.counters.lastTrip.Load(); ns != 0 {
		stats.LastTrip = time.Unix(0, ns)
	}
	return stats
}

// SetComponentMetadata renames the sensor. The component type is kept.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
	s.metadataLock.Unlock()
}

// ConnectLogger registers loggers that receive the sensor's own diagnostics.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			s.loggers = append(s.loggers, logger)
		}
	}
}
