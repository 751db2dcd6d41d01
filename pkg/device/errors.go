package device

import "fmt"

// LoadError wraps a descriptor parse or assembly failure with its source
// path.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("device: load %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// NotFoundError reports a failed registry lookup. Kind is one of "device",
// "peripheral" or "register".
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("device: %s %q not found", e.Kind, e.Name)
}
