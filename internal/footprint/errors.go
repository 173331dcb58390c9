package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidArgument indicates a caller passed an argument the operation
// cannot act on, such as a scenario index outside the baseline list.
const ErrInvalidArgument = constError("invalid argument")
