package types

import (
	"context"
	"time"
)

// Forwarder composes payloads into events and hands them to a Transport.
type Forwarder interface {
	// SendMessage forwards p without a level.
	SendMessage(ctx context.Context, p Payload)

	// SendLevel forwards p with its level field set to level.
	SendLevel(ctx context.Context, level Severity, p Payload)

	IsLevelEnabled(name string) bool

	// LastLog returns the time of the most recent accepted send.
	LastLog() (time.Time, bool)

	// Attach registers the uncaught error observer on registry.
	Attach(registry ErrorRegistry)

	// SetEnvironment sets the environment used when the send context carries none.
	SetEnvironment(env Environment)

	Wait()
	Close(ctx context.Context) error

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
