package settings

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is matched by every InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid logging level")

// InvalidLevelError reports a severity name outside DEBUG, INFO, WARN and ERROR.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid logging level specified: %q", e.Name)
}

func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}
