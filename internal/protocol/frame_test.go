package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode_HeaderLayout(t *testing.T) {
	body := []byte{0xAA, 0xBB}
	packet := Encode(CmdMsgSendReq, body)

	if len(packet) != HeaderSize+2 {
		t.Fatalf("Expected %d bytes, got %d", HeaderSize+2, len(packet))
	}
	if packet[0] != 'I' || packet[1] != 'M' {
		t.Errorf("Expected magic IM, got %q%q", packet[0], packet[1])
	}
	if packet[2] != Version {
		t.Errorf("Expected version %d, got %d", Version, packet[2])
	}
	// cmd_id big-endian at offset 3
	if packet[3] != 0x20 || packet[4] != 0x01 {
		t.Errorf("Expected cmd 0x2001 big-endian, got 0x%02x%02x", packet[3], packet[4])
	}
	// body_length big-endian at offset 5
	if packet[5] != 0 || packet[6] != 0 || packet[7] != 0 || packet[8] != 2 {
		t.Errorf("Expected body length 2, got % x", packet[5:9])
	}
	if !bytes.Equal(packet[HeaderSize:], body) {
		t.Errorf("Expected body % x, got % x", body, packet[HeaderSize:])
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	var dec Decoder
	dec.Feed(Encode(CmdLoginReq, []byte("hello")))

	frame, err := dec.Next()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frame == nil {
		t.Fatal("Expected a frame, got nil")
	}
	if frame.Cmd != CmdLoginReq {
		t.Errorf("Expected cmd 0x%04x, got 0x%04x", CmdLoginReq, frame.Cmd)
	}
	if string(frame.Body) != "hello" {
		t.Errorf("Expected body hello, got %q", frame.Body)
	}
}

func TestDecoder_EmptyBody(t *testing.T) {
	var dec Decoder
	dec.Feed(Encode(CmdHeartbeatReq, nil))

	frame, err := dec.Next()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frame == nil {
		t.Fatal("Expected a frame, got nil")
	}
	if len(frame.Body) != 0 {
		t.Errorf("Expected empty body, got %d bytes", len(frame.Body))
	}
}

func TestDecoder_ShortReads(t *testing.T) {
	packet := Encode(CmdMsgSyncReq, []byte("partial delivery"))
	var dec Decoder

	// Feed one byte at a time; only the final byte completes the frame.
	for i, b := range packet {
		dec.Feed([]byte{b})
		frame, err := dec.Next()
		if err != nil {
			t.Fatalf("Unexpected error at byte %d: %v", i, err)
		}
		if i < len(packet)-1 {
			if frame != nil {
				t.Fatalf("Got frame after %d bytes, want nil", i+1)
			}
			continue
		}
		if frame == nil {
			t.Fatal("Expected a frame after the final byte")
		}
		if string(frame.Body) != "partial delivery" {
			t.Errorf("Expected body round-trip, got %q", frame.Body)
		}
	}
}

func TestDecoder_MultipleFramesOneFeed(t *testing.T) {
	var dec Decoder
	buf := append(Encode(CmdHeartbeatReq, nil), Encode(CmdMsgSendReq, []byte("x"))...)
	dec.Feed(buf)

	first, err := dec.Next()
	if err != nil || first == nil {
		t.Fatalf("Expected first frame, got %v, %v", first, err)
	}
	if first.Cmd != CmdHeartbeatReq {
		t.Errorf("Expected heartbeat first, got 0x%04x", first.Cmd)
	}

	second, err := dec.Next()
	if err != nil || second == nil {
		t.Fatalf("Expected second frame, got %v, %v", second, err)
	}
	if second.Cmd != CmdMsgSendReq || string(second.Body) != "x" {
		t.Errorf("Expected send frame with body x, got 0x%04x %q", second.Cmd, second.Body)
	}

	third, err := dec.Next()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if third != nil {
		t.Errorf("Expected no third frame, got %+v", third)
	}
}

func TestDecoder_BadMagic(t *testing.T) {
	var dec Decoder
	packet := Encode(CmdLoginReq, nil)
	packet[0] = 'X'
	dec.Feed(packet)

	if _, err := dec.Next(); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic, got %v", err)
	}
}

func TestDecoder_BadVersion(t *testing.T) {
	var dec Decoder
	packet := Encode(CmdLoginReq, nil)
	packet[2] = 9
	dec.Feed(packet)

	if _, err := dec.Next(); !errors.Is(err, ErrBadVersion) {
		t.Errorf("Expected ErrBadVersion, got %v", err)
	}
}

func TestDecoder_OversizeBody(t *testing.T) {
	var dec Decoder
	packet := Encode(CmdMsgSendReq, nil)
	// Claim a body beyond the limit without actually sending it.
	packet[5] = 0xFF
	packet[6] = 0xFF
	packet[7] = 0xFF
	packet[8] = 0xFF
	dec.Feed(packet)

	if _, err := dec.Next(); !errors.Is(err, ErrBodyTooLarge) {
		t.Errorf("Expected ErrBodyTooLarge, got %v", err)
	}
}

func TestDecoder_BodyDoesNotAliasBuffer(t *testing.T) {
	var dec Decoder
	dec.Feed(Encode(CmdMsgSendReq, []byte("stable")))
	frame, err := dec.Next()
	if err != nil || frame == nil {
		t.Fatalf("Expected frame, got %v, %v", frame, err)
	}

	dec.Feed(bytes.Repeat([]byte{0x7F}, 64))
	if string(frame.Body) != "stable" {
		t.Errorf("Body mutated by later feed: %q", frame.Body)
	}
}
