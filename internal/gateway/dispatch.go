package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/protocol"
	"google.golang.org/protobuf/proto"
)

// Backends resolves per-call clients for the back-end services. Resolution
// goes through the service directory, so a dead instance is skipped on the
// next call.
type Backends interface {
	Auth(ctx context.Context) (im.AuthServiceClient, error)
	Chat(ctx context.Context) (im.ChatServiceClient, error)
	Relation(ctx context.Context) (im.RelationServiceClient, error)
}

// Dispatcher maps each inbound command to its request type, back-end RPC
// and response command. The authenticated user id of the session always
// overrides any client-supplied sender/user field.
type Dispatcher struct {
	backends Backends
	timeout  time.Duration
}

// NewDispatcher creates a dispatcher with the given per-RPC deadline.
func NewDispatcher(backends Backends, timeout time.Duration) *Dispatcher {
	return &Dispatcher{backends: backends, timeout: timeout}
}

// Dispatch handles one inbound frame and returns the response frame.
// closeAfter is set for logout so the session drains and closes after the
// response. A nil response with nil error means the command was ignored.
// Back-end transport failures degrade to success=false responses; only
// malformed bodies surface as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, userID int64, frame *protocol.Frame) (resp *protocol.Frame, closeAfter bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	switch frame.Cmd {
	case protocol.CmdLoginReq:
		req := &im.LoginReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode login req: %w", err)
		}
		out := &im.LoginResp{}
		if client, cerr := d.backends.Auth(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.Login(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdLoginResp, out)

	case protocol.CmdLogoutReq:
		req := &im.LogoutReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode logout req: %w", err)
		}
		req.UserId = userID
		out := &im.LogoutResp{}
		if client, cerr := d.backends.Auth(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.Logout(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		resp, _, err := encodeResp(protocol.CmdLogoutResp, out)
		return resp, true, err

	case protocol.CmdMsgSendReq:
		req := &im.SendMessageReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode send req: %w", err)
		}
		req.SenderId = userID
		out := &im.SendMessageResp{}
		if client, cerr := d.backends.Chat(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.SendMessage(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdMsgSendResp, out)

	case protocol.CmdMsgSyncReq:
		req := &im.SyncMessagesReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode sync req: %w", err)
		}
		req.UserId = userID
		out := &im.SyncMessagesResp{}
		if client, cerr := d.backends.Chat(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.SyncMessages(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdMsgSyncResp, out)

	case protocol.CmdFriendApplyReq:
		req := &im.ApplyFriendReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode friend apply req: %w", err)
		}
		req.UserId = userID
		out := &im.ApplyFriendResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.ApplyFriend(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdFriendApplyResp, out)

	case protocol.CmdFriendAcceptReq:
		req := &im.AcceptFriendReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode friend accept req: %w", err)
		}
		req.UserId = userID
		out := &im.AcceptFriendResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.AcceptFriend(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdFriendAcceptResp, out)

	case protocol.CmdFriendListReq:
		req := &im.GetFriendListReq{UserId: userID}
		out := &im.GetFriendListResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.GetFriendList(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdFriendListResp, out)

	case protocol.CmdGroupCreateReq:
		req := &im.CreateGroupReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode group create req: %w", err)
		}
		req.OwnerId = userID
		out := &im.CreateGroupResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.CreateGroup(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdGroupCreateResp, out)

	case protocol.CmdGroupJoinReq:
		req := &im.JoinGroupReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode group join req: %w", err)
		}
		req.UserId = userID
		out := &im.JoinGroupResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.JoinGroup(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdGroupJoinResp, out)

	case protocol.CmdGroupListReq:
		req := &im.GetGroupListReq{UserId: userID}
		out := &im.GetGroupListResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.GetGroupList(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdGroupListResp, out)

	case protocol.CmdGroupApplyReq:
		req := &im.ApplyGroupReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode group apply req: %w", err)
		}
		req.UserId = userID
		out := &im.ApplyGroupResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.ApplyGroup(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdGroupApplyResp, out)

	case protocol.CmdGroupAcceptReq:
		req := &im.AcceptGroupReq{}
		if err := proto.Unmarshal(frame.Body, req); err != nil {
			return nil, false, fmt.Errorf("decode group accept req: %w", err)
		}
		req.UserId = userID
		out := &im.AcceptGroupResp{}
		if client, cerr := d.backends.Relation(ctx); cerr != nil {
			unavailable(out, cerr)
		} else if r, rerr := client.AcceptGroup(ctx, req); rerr != nil {
			unavailable(out, rerr)
		} else {
			out = r
		}
		return encodeResp(protocol.CmdGroupAcceptResp, out)

	default:
		slog.Warn("Ignoring unknown command", "user_id", userID, "cmd", fmt.Sprintf("0x%04x", frame.Cmd))
		return nil, false, nil
	}
}

// failure is implemented by every response message so transport errors can
// degrade uniformly to success=false results.
type failure interface {
	SetFailure(msg string)
}

func unavailable(resp failure, err error) {
	slog.Warn("Back-end call failed", "error", err)
	resp.SetFailure("service unavailable")
}

func encodeResp(cmd uint16, msg proto.Message) (*protocol.Frame, bool, error) {
	body, err := proto.Marshal(msg)
	if err != nil {
		return nil, false, fmt.Errorf("encode resp 0x%04x: %w", cmd, err)
	}
	return &protocol.Frame{Cmd: cmd, Body: body}, false, nil
}
