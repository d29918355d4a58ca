package mlp

import "fmt"

// ConfigurationError reports a Spec that cannot be turned into a network.
//
// Err is the underlying cause, e.g. nn.ErrUnsupportedActivation.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mlp: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
