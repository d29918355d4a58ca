package nn

import "errors"

// Layer construction errors.
var (
	ErrUnsupportedActivation = errors.New("unsupported activation")
)
