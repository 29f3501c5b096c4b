// Package chat implements the message timeline: the body + per-owner
// index split, per-owner sequence allocation, single and group write
// paths, online push and sync.
package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultSyncLimit = 10

// KV is the ephemeral state the chat service reads: sequence allocation,
// online presence and location records.
type KV interface {
	NextSeq(ctx context.Context, ownerID int64) (int64, error)
	SessionExists(ctx context.Context, userID int64) (bool, error)
	Locations(ctx context.Context, userID int64) (map[string]string, error)
}

// GatewayClients opens (or reuses) a push channel to a peer gateway's
// push endpoint.
type GatewayClients interface {
	Gateway(addr string) (im.GatewayServiceClient, error)
}

// Service implements im.ChatServiceServer.
type Service struct {
	im.UnimplementedChatServiceServer

	repo        store.Repository
	kvs         KV
	gateways    GatewayClients
	pushTimeout time.Duration
}

// NewService creates the chat service.
func NewService(repo store.Repository, kvs KV, gateways GatewayClients, pushTimeout time.Duration) *Service {
	return &Service{repo: repo, kvs: kvs, gateways: gateways, pushTimeout: pushTimeout}
}

// SendMessage appends the body once, fans out per-recipient index entries
// with per-owner sequences, and pushes a notify to every online recipient
// device. Push failures never fail the send; the recipient catches up via
// sync.
func (s *Service) SendMessage(ctx context.Context, req *im.SendMessageReq) (*im.SendMessageResp, error) {
	if req.GroupId > 0 {
		return s.sendGroup(ctx, req)
	}
	return s.sendSingle(ctx, req)
}

func (s *Service) sendSingle(ctx context.Context, req *im.SendMessageReq) (*im.SendMessageResp, error) {
	if req.ReceiverId <= 0 {
		return &im.SendMessageResp{Success: false, ErrorMessage: "Missing receiver"}, nil
	}

	// System and friend-request messages ride the same plane before a
	// friendship exists; everything else requires an accepted relation
	// from sender to receiver.
	if req.Type != im.MsgTypeSystem && req.Type != im.MsgTypeFriendReq {
		relStatus, ok, err := s.repo.RelationStatus(ctx, req.SenderId, req.ReceiverId)
		if err != nil {
			slog.Error("Relation check failed", "sender_id", req.SenderId, "receiver_id", req.ReceiverId, "error", err)
			return nil, status.Error(codes.Internal, "database error")
		}
		if !ok || relStatus != domain.RelationAccepted {
			return &im.SendMessageResp{Success: false, ErrorMessage: "Not friends"}, nil
		}
	}

	msgID, err := s.repo.InsertMessageBody(ctx, req.SenderId, 0, req.Type, req.Content)
	if err != nil {
		slog.Error("Body insert failed", "sender_id", req.SenderId, "error", err)
		return &im.SendMessageResp{Success: false, ErrorMessage: "Save body failed"}, nil
	}

	seq, err := s.kvs.NextSeq(ctx, req.ReceiverId)
	if err != nil {
		slog.Error("Seq alloc failed", "owner_id", req.ReceiverId, "error", err)
		return &im.SendMessageResp{Success: false, ErrorMessage: "Sequence allocation failed"}, nil
	}

	err = s.repo.InsertMessageIndex(ctx, domain.IndexEntry{
		OwnerID: req.ReceiverId,
		SeqID:   seq,
		OtherID: req.SenderId,
		MsgID:   msgID,
	})
	if err != nil {
		slog.Error("Index insert failed", "owner_id", req.ReceiverId, "msg_id", msgID, "error", err)
		return &im.SendMessageResp{Success: false, ErrorMessage: "Save index failed"}, nil
	}

	s.pushNotify(ctx, req.ReceiverId, seq, req.Type)

	return &im.SendMessageResp{Success: true, MsgId: msgID, SeqId: seq}, nil
}

func (s *Service) sendGroup(ctx context.Context, req *im.SendMessageReq) (*im.SendMessageResp, error) {
	// Group membership is the sole precondition for group sends.
	if _, ok, err := s.repo.GroupMemberRole(ctx, req.GroupId, req.SenderId); err != nil {
		slog.Error("Membership check failed", "group_id", req.GroupId, "sender_id", req.SenderId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	} else if !ok {
		return &im.SendMessageResp{Success: false, ErrorMessage: "Not a group member"}, nil
	}

	members, err := s.repo.ListGroupMembers(ctx, req.GroupId)
	if err != nil {
		slog.Error("Member enumeration failed", "group_id", req.GroupId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	msgID, err := s.repo.InsertMessageBody(ctx, req.SenderId, req.GroupId, req.Type, req.Content)
	if err != nil {
		slog.Error("Body insert failed", "sender_id", req.SenderId, "group_id", req.GroupId, "error", err)
		return &im.SendMessageResp{Success: false, ErrorMessage: "Save body failed"}, nil
	}

	// Fan-out on write: one index row per member, each on its own
	// timeline. A failed member is logged and skipped; there is no
	// cross-recipient atomicity.
	for _, member := range members {
		seq, err := s.kvs.NextSeq(ctx, member)
		if err != nil {
			slog.Error("Seq alloc failed", "owner_id", member, "group_id", req.GroupId, "error", err)
			continue
		}
		err = s.repo.InsertMessageIndex(ctx, domain.IndexEntry{
			OwnerID: member,
			SeqID:   seq,
			OtherID: req.GroupId,
			MsgID:   msgID,
		})
		if err != nil {
			slog.Error("Index insert failed", "owner_id", member, "group_id", req.GroupId, "msg_id", msgID, "error", err)
			continue
		}
		s.pushNotify(ctx, member, seq, req.Type)
	}

	// Each owner has its own timeline; a sender-side sequence does not
	// apply to group sends.
	return &im.SendMessageResp{Success: true, MsgId: msgID, SeqId: 0}, nil
}

// pushNotify delivers the new-message signal to every device location of
// one recipient. Best-effort: failures are logged, never propagated.
func (s *Service) pushNotify(ctx context.Context, userID, maxSeq int64, msgType int32) {
	online, err := s.kvs.SessionExists(ctx, userID)
	if err != nil {
		slog.Warn("Presence check failed", "user_id", userID, "error", err)
		return
	}
	if !online {
		return
	}

	locations, err := s.kvs.Locations(ctx, userID)
	if err != nil {
		slog.Warn("Location lookup failed", "user_id", userID, "error", err)
		return
	}

	for device, addr := range locations {
		client, err := s.gateways.Gateway(addr)
		if err != nil {
			slog.Warn("Push channel failed", "user_id", userID, "device", device, "addr", addr, "error", err)
			continue
		}
		pushCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
		_, err = client.PushNotify(pushCtx, &im.PushNotifyReq{UserId: userID, MaxSeq: maxSeq, MsgType: msgType})
		cancel()
		if err != nil {
			slog.Warn("PushNotify failed", "user_id", userID, "device", device, "addr", addr, "error", err)
		}
	}
}

// SyncMessages reads one owner timeline, forward from local_seq or latest
// first. MaxSeq is the greatest seq in the returned rows, or local_seq
// when none.
func (s *Service) SyncMessages(ctx context.Context, req *im.SyncMessagesReq) (*im.SyncMessagesResp, error) {
	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultSyncLimit
	}

	rows, err := s.repo.SyncMessages(ctx, req.UserId, req.LocalSeq, limit, req.Reverse)
	if err != nil {
		slog.Error("Sync query failed", "user_id", req.UserId, "error", err)
		return &im.SyncMessagesResp{Success: false, ErrorMessage: "Sync query failed"}, nil
	}

	resp := &im.SyncMessagesResp{Success: true, MaxSeq: req.LocalSeq}
	for _, row := range rows {
		resp.Msgs = append(resp.Msgs, &im.MessageItem{
			SeqId:     row.SeqID,
			MsgId:     row.MsgID,
			SenderId:  row.SenderID,
			GroupId:   row.GroupID,
			Type:      row.Type,
			Content:   row.Content,
			CreatedAt: row.CreatedAt.Format(time.DateTime),
		})
		if row.SeqID > resp.MaxSeq {
			resp.MaxSeq = row.SeqID
		}
	}
	return resp, nil
}
