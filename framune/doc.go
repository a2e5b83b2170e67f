// Package framune provides a high-level API for talking to an F-Ramune
// memory chip bridge.
//
// # Overview
//
// A Session sequences the two exchanges the protocol defines:
//   - Querying the bridge's protocol version
//   - Proposing a chip configuration and receiving the bridge's own
//     analysis of the attached chip
//
// Every exchange starts with a one-byte echo/ack handshake that catches
// link corruption before any payload is committed; see the protocol package
// for the wire details.
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session := framune.New(port)
//	defer session.Close()
//
//	ok, err := session.VersionMatches(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    log.Fatal("bridge speaks a different protocol version")
//	}
//
//	chip, err := session.NegotiateChip(context.Background(), memchip.Chip{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(chip)
//
// # Error Handling
//
// The package surfaces structured error types:
//   - TimeoutError: the bridge did not produce the expected bytes in time;
//     a short read counts the same as a full timeout
//   - IntegrityError: the handshake echo did not match the command, so the
//     command was abandoned before execution
//   - NotSupportedError: memory read/write transfers, for which the
//     protocol defines no wire format
//   - protocol.MalformedInputError: a response block had the wrong size,
//     indicating mismatched protocol constants rather than a link fault
//
// No failure is fatal to the session: the stored chip descriptor is only
// replaced by a fully decoded negotiation response, so a failed operation
// may simply be re-invoked.
//
// # Concurrency
//
// Operations are synchronous and blocking, and a Session must not be shared
// between concurrent operations. Callers driving several bridges use one
// Session per transport.
//
// # Hardware Independence
//
// The session talks to any io.ReadWriter. The serialport package provides
// the real serial transport; tests and examples substitute in-memory
// implementations. The only contract is that reads are bounded by a timeout
// configured on the transport itself.
package framune
