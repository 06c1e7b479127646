package cycles

// All four algorithms raise exactly one error kind at their public surface:
// core.ErrInvalidArgument, when g is nil. Each wraps it with its own
// function name via core.InvalidArgument so callers can tell which entry
// point rejected the call while still matching with errors.Is(err,
// core.ErrInvalidArgument).
