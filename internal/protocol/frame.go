package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Frame layout, big-endian:
//
//	offset 0: magic 'I','M'   (2 bytes)
//	offset 2: version = 1     (1 byte)
//	offset 3: cmd_id          (2 bytes)
//	offset 5: body_length     (4 bytes)
//	offset 9: body
const (
	HeaderSize = 9
	Version    = 1

	// MaxBodySize bounds body_length; larger frames are a protocol fatal
	// and the session is dropped.
	MaxBodySize = 1 << 20
)

var magic = [2]byte{'I', 'M'}

var (
	ErrBadMagic     = errors.New("protocol: bad magic")
	ErrBadVersion   = errors.New("protocol: unsupported version")
	ErrBodyTooLarge = errors.New("protocol: body too large")
)

// Frame is one decoded protocol unit.
type Frame struct {
	Cmd  uint16
	Body []byte
}

// Encode renders a complete frame: header plus body.
func Encode(cmd uint16, body []byte) []byte {
	buf := make([]byte, HeaderSize+len(body))
	buf[0] = magic[0]
	buf[1] = magic[1]
	buf[2] = Version
	binary.BigEndian.PutUint16(buf[3:5], cmd)
	binary.BigEndian.PutUint32(buf[5:9], uint32(len(body)))
	copy(buf[HeaderSize:], body)
	return buf
}

// Decoder accumulates raw bytes and yields complete frames in order.
// Short reads keep their bytes buffered for the next round. A decode error
// is fatal: the caller must drop the session.
type Decoder struct {
	buf []byte
}

// Feed appends raw bytes to the decode buffer.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Next returns the next complete frame, or (nil, nil) when more bytes are
// needed. The returned body is a copy and does not alias the internal
// buffer, so later Feed calls leave it unchanged.
func (d *Decoder) Next() (*Frame, error) {
	if len(d.buf) < HeaderSize {
		return nil, nil
	}
	if d.buf[0] != magic[0] || d.buf[1] != magic[1] {
		return nil, ErrBadMagic
	}
	if d.buf[2] != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, d.buf[2])
	}
	bodyLen := binary.BigEndian.Uint32(d.buf[5:9])
	if bodyLen > MaxBodySize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, bodyLen)
	}
	total := HeaderSize + int(bodyLen)
	if len(d.buf) < total {
		return nil, nil
	}

	cmd := binary.BigEndian.Uint16(d.buf[3:5])
	body := make([]byte, bodyLen)
	copy(body, d.buf[HeaderSize:total])
	d.buf = d.buf[total:]

	return &Frame{Cmd: cmd, Body: body}, nil
}
