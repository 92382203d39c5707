package tomledit

import "go.tomledit.dev/tomledit/tomlerr"

// ErrorKind classifies an [Error]. See [tomlerr.Kind] for the full set
// of values; they are re-exported here so callers never need to import
// tomlerr directly for a simple errors.Is check.
type ErrorKind = tomlerr.Kind

// Error is returned by every Document navigation and edit method that
// can fail. It is an alias of [tomlerr.Error], so callers can inspect Kind
// directly or use errors.Is against the sentinels below.
type Error = tomlerr.Error

// Sentinel errors, re-exported from tomlerr for errors.Is checks
// against a Document method's return value, e.g.:
//
//	if _, err := doc.FindByName(root, "missing"); errors.Is(err, tomledit.ErrNotFound) {
//		...
//	}
var (
	// ErrDone signals that an iteration (FindNext, IterLine) has
	// finished; it is not a failure.
	ErrDone           = tomlerr.ErrDone
	ErrIO             = tomlerr.ErrIO
	ErrSyntax         = tomlerr.ErrSyntax
	ErrNotFound       = tomlerr.ErrNotFound
	ErrTypeMismatch   = tomlerr.ErrTypeMismatch
	ErrBufferTooSmall = tomlerr.ErrBufferTooSmall
	ErrOutOfMemory    = tomlerr.ErrOutOfMemory
	ErrInvalidArg     = tomlerr.ErrInvalidArg
)

// wrapSpan passes through errors from the internal span/editor
// packages unchanged; they are already *tomlerr.Error values that
// satisfy errors.Is against the sentinels above. It exists as a single
// seam so a future enrichment (e.g. attaching source context) only
// needs to change in one place.
func wrapSpan(err error) error {
	return err
}

// wrapIO wraps an OS-level error (file not found, permission denied)
// as a [tomlerr.Error] of [tomlerr.KindIO], so callers can use the same
// errors.Is(err, tomledit.ErrIO) check as for a navigation failure.
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return tomlerr.Wrap(tomlerr.KindIO, op, err)
}
