package framune

import (
	"errors"
	"strings"
	"testing"
)

func TestTimeoutErrorMessage(t *testing.T) {
	underlying := errors.New("read /dev/ttyUSB0: timed out")
	err := &TimeoutError{Want: 7, Got: 2, Err: underlying}

	msg := err.Error()
	if !strings.Contains(msg, "did not respond in time") {
		t.Errorf("message = %q, want mention of the timeout", msg)
	}
	if !strings.Contains(msg, "2 of 7") {
		t.Errorf("message = %q, want byte counts", msg)
	}

	if !errors.Is(err, underlying) {
		t.Error("TimeoutError does not unwrap to the transport error")
	}
}

func TestIntegrityErrorMessage(t *testing.T) {
	err := &IntegrityError{Command: 0x01, Echo: 0x81}

	msg := err.Error()
	if !strings.Contains(msg, "0x01") || !strings.Contains(msg, "0x81") {
		t.Errorf("message = %q, want both the command and the echo", msg)
	}
}

func TestNotSupportedErrorMessage(t *testing.T) {
	err := &NotSupportedError{Op: "memory read"}

	msg := err.Error()
	if !strings.Contains(msg, "memory read") || !strings.Contains(msg, "not supported") {
		t.Errorf("message = %q, want the operation name and 'not supported'", msg)
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(&TimeoutError{Want: 1}) {
		t.Error("IsTimeout(TimeoutError) = false")
	}
	if IsTimeout(&IntegrityError{}) {
		t.Error("IsTimeout(IntegrityError) = true")
	}
	if IsTimeout(nil) {
		t.Error("IsTimeout(nil) = true")
	}
}
