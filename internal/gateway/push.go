package gateway

import (
	"context"
	"log/slog"

	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/protocol"
	"google.golang.org/protobuf/proto"
)

// PushServer is the gRPC endpoint peers invoke to reach sessions held by
// this node. Routing is direct: the caller picked this node from the
// user's location records.
type PushServer struct {
	im.UnimplementedGatewayServiceServer

	registry *Registry
}

// NewPushServer creates the push endpoint over the node's registry.
func NewPushServer(registry *Registry) *PushServer {
	return &PushServer{registry: registry}
}

// PushNotify wraps the signal in a MSG_PUSH_NOTIFY frame and hands it to
// every session of the user on this node. Succeeds even when the user is
// not connected here; location records can lag a disconnect by one TTL.
func (p *PushServer) PushNotify(ctx context.Context, req *im.PushNotifyReq) (*im.PushNotifyResp, error) {
	body, err := proto.Marshal(&im.MsgPushNotify{MaxSeq: req.MaxSeq, Type: req.MsgType})
	if err != nil {
		return nil, err
	}
	delivered := p.registry.SendToUser(req.UserId, protocol.Encode(protocol.CmdMsgPushNotify, body))
	slog.Info("PushNotify", "user_id", req.UserId, "max_seq", req.MaxSeq, "delivered", delivered)
	return &im.PushNotifyResp{Success: true}, nil
}

// KickUser kicks matching sessions on this node.
func (p *PushServer) KickUser(ctx context.Context, req *im.KickUserReq) (*im.KickUserResp, error) {
	kicked := p.registry.KickUser(req.UserId, req.Device, req.Reason)
	slog.Info("KickUser", "user_id", req.UserId, "device", req.Device, "reason", req.Reason, "kicked", kicked)
	return &im.KickUserResp{Success: true}, nil
}
