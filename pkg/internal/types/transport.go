package types

import "context"

// Transport delivers composed events. Send never blocks on network completion.
type Transport interface {
	Send(ctx context.Context, event Event)
	Wait()
	Close(ctx context.Context) error
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
