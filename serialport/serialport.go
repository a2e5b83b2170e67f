// Package serialport provides the serial transport for an F-Ramune bridge.
//
// A Port implements io.ReadWriteCloser over a real serial device, with the
// connection settings the bridge firmware expects: 115200 baud, a fixed
// read timeout, and DTR held low. The protocol core (package framune) never
// touches these settings; it only sees the byte stream.
package serialport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Connection defaults matching the bridge firmware's serial configuration.
const (
	// DefaultBaudRate is the baud rate the F-Ramune firmware uses
	DefaultBaudRate = 115200

	// DefaultReadTimeout bounds every read on the port
	DefaultReadTimeout = time.Second
)

// ErrReadTimeout is returned by Port.Read when the read timeout elapses
// with no data available.
var ErrReadTimeout = errors.New("serialport: read timed out")

// Config holds the port configuration. The read timeout is fixed when the
// port is opened; it is not adjustable per call.
type Config struct {
	// BaudRate is the serial line speed
	BaudRate int

	// ReadTimeout bounds every read on the port
	ReadTimeout time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		BaudRate:    DefaultBaudRate,
		ReadTimeout: DefaultReadTimeout,
	}
}

// Option is a functional option for configuring the port.
type Option func(*Config)

// WithBaudRate sets the serial line speed.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithReadTimeout sets the timeout bounding every read on the port.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// Port is a serial connection to an F-Ramune bridge.
type Port struct {
	port serial.Port
	name string
}

// Open opens the named serial port and immediately drops DTR. Boards that
// wire DTR to the reset line would otherwise reboot every time the host
// connects; where the OS asserts DTR before this takes effect, a hardware
// workaround (a capacitor between RST and ground) is still needed.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0",
//	    serialport.WithReadTimeout(2*time.Second),
//	)
func Open(name string, opts ...Option) (*Port, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := &serial.Mode{BaudRate: cfg.BaudRate}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	if err := p.SetDTR(false); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("clear DTR on %s: %w", name, err)
	}

	if err := p.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}

	return &Port{port: p, name: name}, nil
}

// Name returns the device name the port was opened with.
func (p *Port) Name() string {
	return p.name
}

// Read reads up to len(b) bytes from the port. The underlying library
// reports an elapsed timeout as a zero-byte read with no error; that is
// surfaced as ErrReadTimeout so exact-length readers terminate.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err == nil && n == 0 && len(b) > 0 {
		return 0, ErrReadTimeout
	}
	return n, err
}

// Write writes b to the port.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close releases the serial connection.
func (p *Port) Close() error {
	return p.port.Close()
}
