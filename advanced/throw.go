package advanced

import (
	"runtime"

	"github.com/pkg/errors"
)

// A polygon with no vertices has no projection, so no overlap answer can be
// derived from it. The engine treats this as a bug in the caller and panics;
// the top level sat package recovers and returns it as an error instead.
var ErrInvalidPolygon = errors.New("polygons with 0 vertices are not supported")

// Threading errors through every projection would force an error return onto
// what are otherwise pure arithmetic helpers. Instead, we panic with an error
// value, and the public API recovers to convert to an error.

type SATError error

// Panic with a SATError wrapping cause.
func fatal(cause error, format string, args ...interface{}) {
	panic(errors.Wrapf(cause, format, args...))
}

func HandleSATPanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors are real bugs, not contract violations
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if satError, ok := r.(SATError); ok {
			return satError
		}
		panic(r)
	}
	return nil
}
