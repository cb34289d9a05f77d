// Package patch rewrites rendered theme HTML for the published site.
package patch

import "fmt"

// MarkerError reports that a fixed marker did not occur exactly once.
type MarkerError struct {
	Marker string
	Count  int
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("patch error: expected exactly one %q in rendered HTML, found %d", e.Marker, e.Count)
}
