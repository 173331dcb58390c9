package device

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidInput indicates a device draft is missing a required field or
	// carries an out-of-range value. The draft is never promoted to a Device.
	ErrInvalidInput = constError("invalid device input")

	// ErrMalformedImport indicates an import payload is not a JSON list of devices.
	// The caller's existing list must be left untouched.
	ErrMalformedImport = constError("malformed device import")

	// ErrIndexOutOfRange indicates an edit or delete addressed a position
	// outside the list.
	ErrIndexOutOfRange = constError("device index out of range")
)
