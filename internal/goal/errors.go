package goal

import "github.com/pingcap/errors"

// ErrPreconditionViolated is returned when a verse is set on an endpoint that
// has no chapter.
var ErrPreconditionViolated = errors.New("precondition violated")

// IsPreconditionViolated reports whether err was caused by ErrPreconditionViolated.
func IsPreconditionViolated(err error) bool {
	return err != nil && errors.Cause(err) == ErrPreconditionViolated
}
