package gateway

import (
	"context"
	"testing"

	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/protocol"
	"google.golang.org/protobuf/proto"
)

func TestPushServer_PushNotifyFramesSignal(t *testing.T) {
	r := NewRegistry()
	s, _ := testSession(r, 5, "PC")
	r.Join(s)

	srv := NewPushServer(r)
	resp, err := srv.PushNotify(context.Background(), &im.PushNotifyReq{UserId: 5, MaxSeq: 12, MsgType: im.MsgTypeText})
	if err != nil {
		t.Fatalf("PushNotify failed: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success")
	}

	select {
	case pkt := <-s.queue:
		var dec protocol.Decoder
		dec.Feed(pkt.data)
		frame, err := dec.Next()
		if err != nil || frame == nil {
			t.Fatalf("Expected push frame, got %v, %v", frame, err)
		}
		if frame.Cmd != protocol.CmdMsgPushNotify {
			t.Errorf("Expected 0x%04x, got 0x%04x", protocol.CmdMsgPushNotify, frame.Cmd)
		}
		var notify im.MsgPushNotify
		if err := proto.Unmarshal(frame.Body, &notify); err != nil {
			t.Fatalf("Unmarshal notify failed: %v", err)
		}
		if notify.MaxSeq != 12 || notify.Type != im.MsgTypeText {
			t.Errorf("Expected max_seq 12 type TEXT, got %+v", &notify)
		}
	default:
		t.Fatal("Expected a queued push frame")
	}
}

func TestPushServer_PushNotifyUserNotHere(t *testing.T) {
	srv := NewPushServer(NewRegistry())
	resp, err := srv.PushNotify(context.Background(), &im.PushNotifyReq{UserId: 404, MaxSeq: 1})
	if err != nil {
		t.Fatalf("PushNotify failed: %v", err)
	}
	// The caller selects nodes by location; a lagging record must not
	// surface as an error here.
	if !resp.Success {
		t.Error("Expected success even when the user is not connected on this node")
	}
}

func TestPushServer_KickUser(t *testing.T) {
	r := NewRegistry()
	s, _ := testSession(r, 6, "PC")
	r.Join(s)

	srv := NewPushServer(r)
	resp, err := srv.KickUser(context.Background(), &im.KickUserReq{UserId: 6, Device: "PC", Reason: "elsewhere"})
	if err != nil {
		t.Fatalf("KickUser failed: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success")
	}
	if s.state.Load() == stateActive {
		t.Error("Expected session to be draining after kick")
	}
}
