package framune

import "fmt"

// TimeoutError indicates the bridge did not produce the expected bytes
// before the transport's read timeout elapsed. A short read is reported the
// same way as a complete timeout.
//
// The session never retries internally. Both GetVersion and NegotiateChip
// are idempotent at the protocol level, so a caller that wants a retry
// simply invokes the operation again.
type TimeoutError struct {
	// Want and Got are the expected and received byte counts
	Want int
	Got  int

	// Err is the underlying transport error, if any
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("bridge did not respond in time: got %d of %d expected bytes", e.Got, e.Want)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IntegrityError indicates the bridge echoed back a different byte than the
// command the host sent, meaning the command was corrupted on the link. The
// command is considered not executed and no protocol state has changed.
type IntegrityError struct {
	// Command is the byte the host sent
	Command byte

	// Echo is the byte the bridge echoed back
	Echo byte
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("command 0x%02X did not reach the bridge intact (echo 0x%02X)", e.Command, e.Echo)
}

// NotSupportedError indicates an operation the F-Ramune protocol defines no
// wire format for.
type NotSupportedError struct {
	// Op is the operation that was attempted
	Op string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported: the protocol defines no wire format for it", e.Op)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	_, ok := err.(*TimeoutError)
	return ok
}
