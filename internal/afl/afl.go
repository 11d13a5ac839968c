// Package afl implements the host side of the AFL-style persistent-mode
// handshake fuzzprop's Harness Loop cooperates with (spec.md §6):
// a readiness token written once to a well-known control file
// descriptor, followed by a loop that reads one length-prefixed buffer
// per iteration from standard input.
//
// The exact wire protocol of any given AFL-compatible forkserver shim is
// the external fuzzer's concern, not this library's (spec.md §1: "no
// coverage instrumentation is performed in the core; it cooperates with
// an external instrumented fuzzing runtime"). This package picks one
// concrete, documented convention - control fd 198, a one-byte
// readiness ping, 4-byte little-endian length prefixes on stdin - so
// fuzzprop has something runnable to drive end to end; a harness paired
// with a different forkserver shim can swap this package out without
// touching the generator/property/runner core.
package afl

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// ControlFD is the file descriptor fuzzprop writes its readiness token
// to and, conventionally, the one an AFL++ persistent-mode C shim holds
// open across the lifetime of the child process.
const ControlFD = 198

// ErrStopped is returned by [Loop] when fn asked the loop to stop early
// (for example, because the Harness Loop observed an OutcomeFail/OutcomeCrash outcome
// and needs to abort the process rather than continue serving the
// fuzzer's forkserver).
var ErrStopped = errors.New("afl: loop stopped by callback")

// Available reports whether the persistent-mode control channel is
// open, which is how this package detects that it is running under an
// AFL-style forkserver rather than being invoked for a single,
// classic, one-shot execution.
func Available() bool {
	f := os.NewFile(uintptr(ControlFD), "afl-ctrl")
	if f == nil {
		return false
	}

	// A zero-length write is a no-op on a valid fd and an error on a
	// closed one; it is the cheapest way to probe liveness without
	// disturbing the channel's contents.
	_, err := f.Write(nil)

	return err == nil
}

// Handshake writes a single readiness byte to the control channel,
// signaling to the forkserver shim that this child is ready to begin
// serving iterations (spec.md §6: "a handshake token is written on a
// well-known file descriptor").
func Handshake() error {
	f := os.NewFile(uintptr(ControlFD), "afl-ctrl")
	if f == nil {
		return errors.New("afl: control fd unavailable")
	}

	_, err := f.Write([]byte{1})

	return err
}

// Loop reads one 4-byte little-endian length prefix followed by that
// many bytes from r, once per iteration, and calls fn with the
// resulting buffer. It stops when r reaches EOF (the forkserver shim
// closed stdin, ending the session) or when fn returns false.
//
// Loop returns nil on a clean EOF, [ErrStopped] when fn asked to stop,
// or the reader's I/O error on a malformed frame ([io.ErrUnexpectedEOF]
// when a frame's prefix or payload ends early).
func Loop(r io.Reader, fn func(buf []byte) (keepGoing bool)) error {
	var lenBuf [4]byte

	for {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		n := binary.LittleEndian.Uint32(lenBuf[:])

		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			// A frame whose payload is missing entirely is still truncated,
			// not a clean end of session.
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}

			return err
		}

		if !fn(buf) {
			return ErrStopped
		}
	}
}
