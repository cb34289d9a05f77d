// Package toolbar builds and injects the download and language-switch toolbar.
package toolbar

import (
	"errors"
	"fmt"
)

// ErrAlreadyInjected is returned when a page already carries the toolbar.
var ErrAlreadyInjected = errors.New("toolbar already injected")

// MarkerError reports that </body> did not occur exactly once.
type MarkerError struct {
	Marker string
	Count  int
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("toolbar error: expected exactly one %q in page, found %d", e.Marker, e.Count)
}
