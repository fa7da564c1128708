package resolver

// ResolveError is the single outward error kind for a failed chain
// resolution. Lookup, parse and I/O failures all collapse into it; the
// original message is preserved verbatim and the cause stays reachable
// through Unwrap.
type ResolveError struct {
	Cause error
}

func (e *ResolveError) Error() string {
	return e.Cause.Error()
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}
