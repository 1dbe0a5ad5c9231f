package core

import "fmt"

// DegenerateGeometryError reports a transform or shape that cannot be
// constructed, such as a zero scaling factor. It is fatal at construction
// time, never deferred to render time.
type DegenerateGeometryError struct {
	Op     string
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in %s: %s", e.Op, e.Reason)
}

// ConfigurationError reports a violated rendering precondition, such as a
// missing camera or a samples-per-pixel count that is not a perfect square
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
