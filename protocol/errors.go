package protocol

import "fmt"

// MalformedInputError indicates a codec function received a byte sequence of
// unexpected length. It signals mismatched constants between the encode and
// decode sides rather than a transient link fault, and should be treated as
// a contract violation by the caller.
type MalformedInputError struct {
	// What names the block being decoded
	What string

	// Got and Want are the actual and expected lengths in bytes
	Got  int
	Want int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s: got %d bytes, expected exactly %d", e.What, e.Got, e.Want)
}

// IsMalformedInput returns true if the error is a MalformedInputError.
func IsMalformedInput(err error) bool {
	_, ok := err.(*MalformedInputError)
	return ok
}
