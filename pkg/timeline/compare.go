package timeline

import (
	"github.com/pmdartus/speedline/pkg/frame"
)

// AreEqual reports whether two frames carry byte-identical encoded images.
// Timestamps are ignored. Two nil frames are equal.
func AreEqual(a, b *frame.Frame) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Size() == b.Size() && a.HasImage(b.Image())
}
