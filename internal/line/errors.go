package line

import "errors"

var (
	errInconsistentLink       = errors.New("line: inconsistent prev/next link")
	errNonMonotonicLineNumber = errors.New("line: non-monotonic line number")
	errInconsistentTail       = errors.New("line: tail does not match walk")
	errValidateOverrun        = errors.New("line: validate exceeded step limit")
)
