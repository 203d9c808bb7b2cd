package artifact

import "fmt"

var (
	// ErrNotFound is returned when no artifact has been exported for the
	// given report id.
	ErrNotFound = fmt.Errorf("artifact not found")
)
