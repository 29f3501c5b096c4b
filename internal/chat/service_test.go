package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
	"google.golang.org/grpc"
)

// fakeRepo implements the slice of store.Repository the chat service
// touches; anything else panics via the embedded nil interface.
type fakeRepo struct {
	store.Repository

	mu        sync.Mutex
	relations map[[2]int64]int
	roles     map[[2]int64]int
	members   map[int64][]int64
	bodies    []*domain.MessageBody
	indexes   []domain.IndexEntry
	timeline  []*domain.TimelineMessage

	indexErrOwner int64 // inserts for this owner fail
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		relations: make(map[[2]int64]int),
		roles:     make(map[[2]int64]int),
		members:   make(map[int64][]int64),
	}
}

func (f *fakeRepo) RelationStatus(ctx context.Context, userID, friendID int64) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.relations[[2]int64{userID, friendID}]
	return s, ok, nil
}

func (f *fakeRepo) InsertMessageBody(ctx context.Context, senderID, groupID int64, msgType int32, content string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, &domain.MessageBody{
		MsgID:    int64(len(f.bodies) + 1),
		SenderID: senderID,
		GroupID:  groupID,
		Type:     msgType,
		Content:  content,
	})
	return int64(len(f.bodies)), nil
}

func (f *fakeRepo) InsertMessageIndex(ctx context.Context, entry domain.IndexEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexErrOwner != 0 && entry.OwnerID == f.indexErrOwner {
		return errors.New("index write failed")
	}
	f.indexes = append(f.indexes, entry)
	return nil
}

func (f *fakeRepo) GroupMemberRole(ctx context.Context, groupID, userID int64) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[[2]int64{groupID, userID}]
	return role, ok, nil
}

func (f *fakeRepo) ListGroupMembers(ctx context.Context, groupID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.members[groupID]...), nil
}

func (f *fakeRepo) SyncMessages(ctx context.Context, ownerID, localSeq int64, limit int, reverse bool) ([]*domain.TimelineMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.timeline) {
		limit = len(f.timeline)
	}
	return f.timeline[:limit], nil
}

// fakeKV allocates per-owner sequences and reports presence.
type fakeKV struct {
	mu        sync.Mutex
	seqs      map[int64]int64
	online    map[int64]bool
	locations map[int64]map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		seqs:      make(map[int64]int64),
		online:    make(map[int64]bool),
		locations: make(map[int64]map[string]string),
	}
}

func (f *fakeKV) NextSeq(ctx context.Context, ownerID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seqs[ownerID]++
	return f.seqs[ownerID], nil
}

func (f *fakeKV) SessionExists(ctx context.Context, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.online[userID], nil
}

func (f *fakeKV) Locations(ctx context.Context, userID int64) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locations[userID], nil
}

type pushCall struct {
	addr   string
	userID int64
	maxSeq int64
}

// fakeGateways records push calls; failAddr simulates an unreachable peer.
type fakeGateways struct {
	mu       sync.Mutex
	pushes   []pushCall
	failAddr string
}

type fakeGatewayClient struct {
	parent *fakeGateways
	addr   string
}

func (g *fakeGateways) Gateway(addr string) (im.GatewayServiceClient, error) {
	return &fakeGatewayClient{parent: g, addr: addr}, nil
}

func (c *fakeGatewayClient) PushNotify(ctx context.Context, in *im.PushNotifyReq, opts ...grpc.CallOption) (*im.PushNotifyResp, error) {
	if c.addr == c.parent.failAddr {
		return nil, errors.New("peer unreachable")
	}
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	c.parent.pushes = append(c.parent.pushes, pushCall{addr: c.addr, userID: in.UserId, maxSeq: in.MaxSeq})
	return &im.PushNotifyResp{Success: true}, nil
}

func (c *fakeGatewayClient) KickUser(ctx context.Context, in *im.KickUserReq, opts ...grpc.CallOption) (*im.KickUserResp, error) {
	return &im.KickUserResp{Success: true}, nil
}

func newTestService() (*Service, *fakeRepo, *fakeKV, *fakeGateways) {
	repo := newFakeRepo()
	kvs := newFakeKV()
	gws := &fakeGateways{}
	return NewService(repo, kvs, gws, time.Second), repo, kvs, gws
}

func TestSendMessage_StrangerRejected(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "Hello Stranger",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected failure for non-friends")
	}
	if resp.ErrorMessage != "Not friends" {
		t.Errorf("Expected error Not friends, got %q", resp.ErrorMessage)
	}
}

func TestSendMessage_FriendGetsIndexedAndSequenced(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "Hello Friend",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.ErrorMessage)
	}
	if resp.SeqId != 1 {
		t.Errorf("Expected seq 1, got %d", resp.SeqId)
	}
	if len(repo.indexes) != 1 {
		t.Fatalf("Expected 1 index entry, got %d", len(repo.indexes))
	}
	idx := repo.indexes[0]
	if idx.OwnerID != 2 || idx.OtherID != 1 || idx.SeqID != 1 {
		t.Errorf("Unexpected index entry %+v", idx)
	}
}

func TestSendMessage_SeqStrictlyIncreasesPerOwner(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted

	var last int64
	for i := 0; i < 5; i++ {
		resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
			SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "m",
		})
		if err != nil || !resp.Success {
			t.Fatalf("Send %d failed: %v %q", i, err, resp.ErrorMessage)
		}
		if resp.SeqId <= last {
			t.Fatalf("Seq not strictly increasing: %d after %d", resp.SeqId, last)
		}
		last = resp.SeqId
	}
}

func TestSendMessage_SystemTypeBypassesFriendCheck(t *testing.T) {
	svc, _, _, _ := newTestService()

	for _, msgType := range []int32{im.MsgTypeSystem, im.MsgTypeFriendReq} {
		resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
			SenderId: 1, ReceiverId: 2, Type: msgType, Content: "sys",
		})
		if err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
		if !resp.Success {
			t.Errorf("Expected type %d to bypass the friend check, got %q", msgType, resp.ErrorMessage)
		}
	}
}

func TestSendMessage_BlockedIsNotAccepted(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationBlocked

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "hi",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected failure for blocked relation")
	}
}

func TestSendMessage_PushesToEveryOnlineDevice(t *testing.T) {
	svc, repo, kvs, gws := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted
	kvs.online[2] = true
	kvs.locations[2] = map[string]string{"PC": "gw1:50060", "Mobile": "gw2:50060"}

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "Broadcast",
	})
	if err != nil || !resp.Success {
		t.Fatalf("SendMessage failed: %v %q", err, resp.ErrorMessage)
	}

	if len(gws.pushes) != 2 {
		t.Fatalf("Expected pushes to 2 devices, got %d", len(gws.pushes))
	}
	for _, p := range gws.pushes {
		if p.userID != 2 || p.maxSeq != resp.SeqId {
			t.Errorf("Unexpected push %+v", p)
		}
	}
}

func TestSendMessage_OfflineReceiverNotPushed(t *testing.T) {
	svc, repo, _, gws := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "Offline 42",
	})
	if err != nil || !resp.Success {
		t.Fatalf("SendMessage failed: %v %q", err, resp.ErrorMessage)
	}
	if len(gws.pushes) != 0 {
		t.Errorf("Expected no pushes for an offline receiver, got %d", len(gws.pushes))
	}
}

func TestSendMessage_PushFailureDoesNotFailSend(t *testing.T) {
	svc, repo, kvs, gws := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted
	kvs.online[2] = true
	kvs.locations[2] = map[string]string{"PC": "dead:50060"}
	gws.failAddr = "dead:50060"

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "hi",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected success despite unreachable peer, got %q", resp.ErrorMessage)
	}
}

func TestSendMessage_GroupFanOutPerMemberSeq(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.roles[[2]int64{10, 1}] = domain.RoleOwner
	repo.members[10] = []int64{1, 2, 3}

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, GroupId: 10, Type: im.MsgTypeText, Content: "Hi",
	})
	if err != nil || !resp.Success {
		t.Fatalf("Group send failed: %v %q", err, resp.ErrorMessage)
	}
	if resp.SeqId != 0 {
		t.Errorf("Expected seq 0 for group sends, got %d", resp.SeqId)
	}

	if len(repo.indexes) != 3 {
		t.Fatalf("Expected 3 index entries, got %d", len(repo.indexes))
	}
	owners := make(map[int64]bool)
	for _, idx := range repo.indexes {
		if idx.OtherID != 10 {
			t.Errorf("Expected other_id group 10, got %d", idx.OtherID)
		}
		if idx.SeqID != 1 {
			t.Errorf("Expected first seq per member, got %d for owner %d", idx.SeqID, idx.OwnerID)
		}
		owners[idx.OwnerID] = true
	}
	if len(owners) != 3 {
		t.Errorf("Expected 3 distinct owners, got %d", len(owners))
	}
	if len(repo.bodies) != 1 {
		t.Errorf("Expected body written once, got %d", len(repo.bodies))
	}
}

func TestSendMessage_GroupNonMemberRejected(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.members[10] = []int64{2, 3}

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, GroupId: 10, Type: im.MsgTypeText, Content: "Hi",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected failure for a non-member sender")
	}
}

func TestSendMessage_GroupPartialIndexFailureTolerated(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.roles[[2]int64{10, 1}] = domain.RoleOwner
	repo.members[10] = []int64{1, 2, 3}
	repo.indexErrOwner = 2

	resp, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, GroupId: 10, Type: im.MsgTypeText, Content: "Hi",
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected best-effort fan-out to succeed, got %q", resp.ErrorMessage)
	}
	if len(repo.indexes) != 2 {
		t.Errorf("Expected 2 surviving index entries, got %d", len(repo.indexes))
	}
}

func TestSyncMessages_DefaultLimitAndMaxSeq(t *testing.T) {
	svc, repo, _, _ := newTestService()
	for i := 1; i <= 15; i++ {
		repo.timeline = append(repo.timeline, &domain.TimelineMessage{
			SeqID: int64(i), MsgID: int64(i), Content: "m", CreatedAt: time.Now(),
		})
	}

	resp, err := svc.SyncMessages(context.Background(), &im.SyncMessagesReq{UserId: 2, LocalSeq: 0, Limit: 0})
	if err != nil {
		t.Fatalf("SyncMessages failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.ErrorMessage)
	}
	if len(resp.Msgs) != defaultSyncLimit {
		t.Errorf("Expected default limit %d, got %d", defaultSyncLimit, len(resp.Msgs))
	}
	if resp.MaxSeq != 10 {
		t.Errorf("Expected max_seq 10, got %d", resp.MaxSeq)
	}
}

func TestSyncMessages_EmptyKeepsLocalSeq(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.SyncMessages(context.Background(), &im.SyncMessagesReq{UserId: 2, LocalSeq: 9})
	if err != nil {
		t.Fatalf("SyncMessages failed: %v", err)
	}
	if resp.MaxSeq != 9 {
		t.Errorf("Expected max_seq to fall back to local_seq 9, got %d", resp.MaxSeq)
	}
	if len(resp.Msgs) != 0 {
		t.Errorf("Expected no rows, got %d", len(resp.Msgs))
	}
}

func TestSyncMessages_ContentRoundTrip(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.relations[[2]int64{1, 2}] = domain.RelationAccepted

	sent, err := svc.SendMessage(context.Background(), &im.SendMessageReq{
		SenderId: 1, ReceiverId: 2, Type: im.MsgTypeText, Content: "Offline 42",
	})
	if err != nil || !sent.Success {
		t.Fatalf("SendMessage failed: %v", err)
	}

	repo.timeline = []*domain.TimelineMessage{{
		SeqID:     sent.SeqId,
		MsgID:     sent.MsgId,
		SenderID:  1,
		Content:   repo.bodies[0].Content,
		CreatedAt: time.Now(),
	}}

	resp, err := svc.SyncMessages(context.Background(), &im.SyncMessagesReq{UserId: 2, Limit: 5, Reverse: true})
	if err != nil || !resp.Success {
		t.Fatalf("SyncMessages failed: %v", err)
	}
	if len(resp.Msgs) != 1 || resp.Msgs[0].Content != "Offline 42" {
		t.Errorf("Expected content round-trip, got %+v", resp.Msgs)
	}
}
