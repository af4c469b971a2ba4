package types

// UncaughtError describes a runtime error that escaped application code.
// Line and Column are zero when unknown.
type UncaughtError struct {
	Message string
	URL     string
	Line    int
	Column  int
	Stack   string
	Err     error
}

// ErrorObserver receives every reported uncaught error.
type ErrorObserver func(UncaughtError)

// ErrorRegistry holds error observers and invokes them in registration order.
type ErrorRegistry interface {
	Register(observer ...ErrorObserver)
	Report(err UncaughtError)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
