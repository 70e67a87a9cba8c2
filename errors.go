package ftpfetch

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrConnectionFailure - opening the control connection to the remote host failed
	ErrConnectionFailure = Error("connection failure")

	// ErrAuthFailure - the server rejected the supplied credentials
	ErrAuthFailure = Error("authentication failure")

	// ErrSessionRequired - the operation needs a non-nil, open Session
	ErrSessionRequired = Error("non-nil open ftpfetch.Session is required")

	// ErrRemotePathRequired - a non-empty remote path is required
	ErrRemotePathRequired = Error("non-empty string for remote path is required")
)
