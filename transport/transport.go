// Package transport isolates the FIX client core from the concrete
// byte pipe (TCP, TLS, or a test double) underneath it, and turns that
// pipe into a stream of framed FIX messages (C4).
package transport

import (
	"bytes"
	"context"
	"io"

	"github.com/joaquinbejar/deribit-fix/errs"
)

// Transport is the minimal byte-pipe surface the client runtime needs.
// A TLS or plain TCP connection satisfies this directly; tests supply
// an in-memory double.
type Transport interface {
	io.Reader
	io.Writer
	Flush() error
	Close() error
}

// Adapter wraps a Transport with a grow-only read buffer and extracts
// one complete FIX message at a time by scanning for the CheckSum
// field's trailing SOH — the only reliable framing boundary available
// without first parsing BodyLength out of a partial read.
type Adapter struct {
	t   Transport
	buf []byte
}

// NewAdapter wraps t for framed reads/writes.
func NewAdapter(t Transport) *Adapter {
	return &Adapter{t: t, buf: make([]byte, 0, 4096)}
}

// Next blocks until one complete framed message is available, ctx is
// found canceled, or the underlying Transport errors. ctx is checked
// before each Read; a Read already blocked is not interrupted by
// cancellation, and no read deadline is set. The returned slice is a
// fresh copy owned by the caller.
func (a *Adapter) Next(ctx context.Context) ([]byte, error) {
	for {
		if msg, ok := a.extractOne(); ok {
			return msg, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk := make([]byte, 4096)
		n, err := a.t.Read(chunk)
		if n > 0 {
			a.buf = append(a.buf, chunk[:n]...)
		}
		if err != nil {
			if err == io.EOF && n == 0 {
				return nil, errs.Wrap(errs.KindConnection, err, "transport closed")
			}
			if err != io.EOF {
				return nil, errs.Wrap(errs.KindIO, err, "transport read failed")
			}
		}
	}
}

// extractOne looks for a complete "10=ddd\x01" checksum field in the
// buffer and, if found, slices off and returns everything up to and
// including its terminating SOH.
func (a *Adapter) extractOne() ([]byte, bool) {
	idx := bytes.Index(a.buf, []byte("\x0110="))
	if idx < 0 {
		// A message at the very start of the buffer (no preceding SOH)
		// is still valid if it begins with "10=", but in practice every
		// message begins with "8=FIX.4.4\x01" so the leading SOH is
		// always present before the checksum tag too.
		return nil, false
	}
	fieldStart := idx + 1
	soh := bytes.IndexByte(a.buf[fieldStart:], 0x01)
	if soh < 0 {
		return nil, false
	}
	end := fieldStart + soh + 1
	msg := make([]byte, end)
	copy(msg, a.buf[:end])
	a.buf = a.buf[end:]
	return msg, true
}

// Write frames and flushes b in one call.
func (a *Adapter) Write(b []byte) error {
	if _, err := a.t.Write(b); err != nil {
		return errs.Wrap(errs.KindIO, err, "transport write failed")
	}
	if err := a.t.Flush(); err != nil {
		return errs.Wrap(errs.KindIO, err, "transport flush failed")
	}
	return nil
}

// Close releases the underlying Transport.
func (a *Adapter) Close() error {
	return a.t.Close()
}
