package relation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
	"google.golang.org/grpc"
)

type fakeRepo struct {
	store.Repository

	mu            sync.Mutex
	users         map[int64]*domain.User
	relations     map[[2]int64]int
	friendReqs    map[[2]int64]int // (requester, target) -> status
	groups        map[int64]*domain.Group
	roles         map[[2]int64]int // (group, user) -> role
	groupReqs     map[[2]int64]int // (user, group) -> status
	nextRequestID int64
	nextGroupID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:      make(map[int64]*domain.User),
		relations:  make(map[[2]int64]int),
		friendReqs: make(map[[2]int64]int),
		groups:     make(map[int64]*domain.Group),
		roles:      make(map[[2]int64]int),
		groupReqs:  make(map[[2]int64]int),
	}
}

func (f *fakeRepo) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[userID], nil
}

func (f *fakeRepo) HasPendingFriendRequest(ctx context.Context, userID, friendID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.friendReqs[[2]int64{userID, friendID}]
	return ok && status == domain.FriendRequestPending, nil
}

func (f *fakeRepo) InsertFriendRequest(ctx context.Context, userID, friendID int64, remark string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.friendReqs[[2]int64{userID, friendID}] = domain.FriendRequestPending
	f.nextRequestID++
	return f.nextRequestID, nil
}

func (f *fakeRepo) SetFriendRequestStatus(ctx context.Context, requesterID, userID int64, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.friendReqs[[2]int64{requesterID, userID}] = status
	return nil
}

func (f *fakeRepo) InsertRelationPair(ctx context.Context, userID, friendID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relations[[2]int64{userID, friendID}] = domain.RelationAccepted
	f.relations[[2]int64{friendID, userID}] = domain.RelationAccepted
	return nil
}

func (f *fakeRepo) ListFriends(ctx context.Context, userID int64) ([]*domain.Friend, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var friends []*domain.Friend
	for key, status := range f.relations {
		if key[0] != userID || status != domain.RelationAccepted {
			continue
		}
		u := f.users[key[1]]
		if u == nil {
			u = &domain.User{UserID: key[1]}
		}
		friends = append(friends, &domain.Friend{UserID: u.UserID, Username: u.Username, Nickname: u.Nickname})
	}
	return friends, nil
}

func (f *fakeRepo) CreateGroup(ctx context.Context, name string, ownerID int64, joinVerify bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextGroupID++
	f.groups[f.nextGroupID] = &domain.Group{GroupID: f.nextGroupID, Name: name, OwnerID: ownerID, JoinVerify: joinVerify}
	return f.nextGroupID, nil
}

func (f *fakeRepo) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groups[groupID], nil
}

func (f *fakeRepo) AddGroupMember(ctx context.Context, groupID, userID int64, role int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]int64{groupID, userID}
	if _, ok := f.roles[key]; ok {
		return store.ErrDuplicate
	}
	f.roles[key] = role
	return nil
}

func (f *fakeRepo) GroupMemberRole(ctx context.Context, groupID, userID int64) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[[2]int64{groupID, userID}]
	return role, ok, nil
}

func (f *fakeRepo) ListGroups(ctx context.Context, userID int64) ([]*domain.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var groups []*domain.Group
	for key := range f.roles {
		if key[1] == userID {
			groups = append(groups, f.groups[key[0]])
		}
	}
	return groups, nil
}

func (f *fakeRepo) HasPendingGroupRequest(ctx context.Context, userID, groupID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.groupReqs[[2]int64{userID, groupID}]
	return ok && status == domain.FriendRequestPending, nil
}

func (f *fakeRepo) InsertGroupRequest(ctx context.Context, userID, groupID int64, remark string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupReqs[[2]int64{userID, groupID}] = domain.FriendRequestPending
	f.nextRequestID++
	return f.nextRequestID, nil
}

func (f *fakeRepo) SetGroupRequestStatus(ctx context.Context, applicantID, groupID int64, status int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupReqs[[2]int64{applicantID, groupID}] = status
	return nil
}

// fakeChats records system messages the service sends as side effects.
type fakeChats struct {
	mu    sync.Mutex
	sends []*im.SendMessageReq
}

type fakeChatClient struct{ parent *fakeChats }

func (c *fakeChats) Chat(ctx context.Context) (im.ChatServiceClient, error) {
	return &fakeChatClient{parent: c}, nil
}

func (c *fakeChatClient) SendMessage(ctx context.Context, in *im.SendMessageReq, opts ...grpc.CallOption) (*im.SendMessageResp, error) {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	c.parent.sends = append(c.parent.sends, in)
	return &im.SendMessageResp{Success: true}, nil
}

func (c *fakeChatClient) SyncMessages(ctx context.Context, in *im.SyncMessagesReq, opts ...grpc.CallOption) (*im.SyncMessagesResp, error) {
	return &im.SyncMessagesResp{Success: true}, nil
}

func newTestService() (*Service, *fakeRepo, *fakeChats) {
	repo := newFakeRepo()
	chats := &fakeChats{}
	repo.users[1] = &domain.User{UserID: 1, Username: "alice", Nickname: "Alice"}
	repo.users[2] = &domain.User{UserID: 2, Username: "bob", Nickname: "Bob"}
	return NewService(repo, chats, time.Second), repo, chats
}

func TestApplyFriend_SelfRejected(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 1})
	if err != nil {
		t.Fatalf("ApplyFriend failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected self-apply to fail")
	}
}

func TestApplyFriend_UnknownTarget(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 404})
	if err != nil {
		t.Fatalf("ApplyFriend failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected unknown target to fail")
	}
}

func TestApplyFriend_SendsFriendReqSignal(t *testing.T) {
	svc, _, chats := newTestService()

	resp, err := svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 2, Remark: "hi"})
	if err != nil {
		t.Fatalf("ApplyFriend failed: %v", err)
	}
	if !resp.Success || resp.ApplyId == 0 {
		t.Fatalf("Expected success with apply id, got %+v", resp)
	}

	if len(chats.sends) != 1 {
		t.Fatalf("Expected one system message, got %d", len(chats.sends))
	}
	msg := chats.sends[0]
	if msg.ReceiverId != 2 || msg.Type != im.MsgTypeFriendReq {
		t.Errorf("Expected FRIEND_REQ to user 2, got %+v", msg)
	}
}

func TestApplyFriend_DuplicatePendingRejected(t *testing.T) {
	svc, _, _ := newTestService()

	svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 2})
	resp, err := svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 2})
	if err != nil {
		t.Fatalf("ApplyFriend failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected duplicate pending apply to fail")
	}
}

func TestAcceptFriend_InsertsBothDirections(t *testing.T) {
	svc, repo, chats := newTestService()
	svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 2})

	resp, err := svc.AcceptFriend(context.Background(), &im.AcceptFriendReq{UserId: 2, RequesterId: 1, Accept: true})
	if err != nil || !resp.Success {
		t.Fatalf("AcceptFriend failed: %v %+v", err, resp)
	}

	if repo.relations[[2]int64{1, 2}] != domain.RelationAccepted ||
		repo.relations[[2]int64{2, 1}] != domain.RelationAccepted {
		t.Error("Expected accepted relation in both directions")
	}
	if repo.friendReqs[[2]int64{1, 2}] != domain.FriendRequestAccepted {
		t.Error("Expected the pending row to flip to accepted")
	}

	// Apply signal plus acceptance notice.
	if len(chats.sends) != 2 {
		t.Fatalf("Expected 2 system messages, got %d", len(chats.sends))
	}
	last := chats.sends[1]
	if last.ReceiverId != 1 || last.Type != im.MsgTypeSystem {
		t.Errorf("Expected SYSTEM notice to requester, got %+v", last)
	}
}

func TestAcceptFriend_RejectLeavesNoRelation(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.ApplyFriend(context.Background(), &im.ApplyFriendReq{UserId: 1, FriendId: 2})

	resp, err := svc.AcceptFriend(context.Background(), &im.AcceptFriendReq{UserId: 2, RequesterId: 1, Accept: false})
	if err != nil || !resp.Success {
		t.Fatalf("AcceptFriend failed: %v %+v", err, resp)
	}
	if len(repo.relations) != 0 {
		t.Error("Expected no relation rows on reject")
	}
	if repo.friendReqs[[2]int64{1, 2}] != domain.FriendRequestRejected {
		t.Error("Expected the pending row to flip to rejected")
	}
}

func TestGetFriendList(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.InsertRelationPair(context.Background(), 1, 2)

	resp, err := svc.GetFriendList(context.Background(), &im.GetFriendListReq{UserId: 1})
	if err != nil || !resp.Success {
		t.Fatalf("GetFriendList failed: %v", err)
	}
	if len(resp.Friends) != 1 || resp.Friends[0].UserId != 2 || resp.Friends[0].Nickname != "Bob" {
		t.Errorf("Expected Bob in friend list, got %+v", resp.Friends)
	}
}

func TestCreateGroup_OwnerAndInitialMembers(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.CreateGroup(context.Background(), &im.CreateGroupReq{
		OwnerId: 1, GroupName: "G", InitialMembers: []int64{1, 2},
	})
	if err != nil || !resp.Success {
		t.Fatalf("CreateGroup failed: %v %+v", err, resp)
	}

	if repo.roles[[2]int64{resp.GroupId, 1}] != domain.RoleOwner {
		t.Error("Expected creator to have the owner role")
	}
	if repo.roles[[2]int64{resp.GroupId, 2}] != domain.RoleMember {
		t.Error("Expected initial member with the member role")
	}
}

func TestCreateGroup_EmptyNameRejected(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected empty group name to fail")
	}
}

func TestJoinGroup_IdempotentForExistingMember(t *testing.T) {
	svc, repo, _ := newTestService()
	created, _ := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1, GroupName: "G"})

	first, err := svc.JoinGroup(context.Background(), &im.JoinGroupReq{UserId: 2, GroupId: created.GroupId})
	if err != nil || !first.Success {
		t.Fatalf("First join failed: %v %+v", err, first)
	}
	role := repo.roles[[2]int64{created.GroupId, 2}]

	second, err := svc.JoinGroup(context.Background(), &im.JoinGroupReq{UserId: 2, GroupId: created.GroupId})
	if err != nil || !second.Success {
		t.Fatalf("Repeated join failed: %v %+v", err, second)
	}
	if repo.roles[[2]int64{created.GroupId, 2}] != role {
		t.Error("Expected membership unchanged on repeated join")
	}
}

func TestJoinGroup_UnknownGroup(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.JoinGroup(context.Background(), &im.JoinGroupReq{UserId: 2, GroupId: 404})
	if err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected unknown group to fail")
	}
}

func TestJoinGroup_VerificationGatedRefused(t *testing.T) {
	svc, repo, _ := newTestService()
	created, _ := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1, GroupName: "G", JoinVerify: true})

	resp, err := svc.JoinGroup(context.Background(), &im.JoinGroupReq{UserId: 2, GroupId: created.GroupId})
	if err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected gated group join to be refused")
	}
	if _, ok := repo.roles[[2]int64{created.GroupId, 2}]; ok {
		t.Error("Expected no membership row")
	}
}

func TestJoinGroup_NotifiesGroup(t *testing.T) {
	svc, _, chats := newTestService()
	created, _ := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1, GroupName: "G"})

	if _, err := svc.JoinGroup(context.Background(), &im.JoinGroupReq{UserId: 2, GroupId: created.GroupId}); err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}

	if len(chats.sends) != 1 {
		t.Fatalf("Expected one system message, got %d", len(chats.sends))
	}
	msg := chats.sends[0]
	if msg.GroupId != created.GroupId || msg.Type != im.MsgTypeSystem {
		t.Errorf("Expected SYSTEM group message, got %+v", msg)
	}
}

func TestApplyAcceptGroup_Flow(t *testing.T) {
	svc, repo, _ := newTestService()
	created, _ := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1, GroupName: "G", JoinVerify: true})

	applied, err := svc.ApplyGroup(context.Background(), &im.ApplyGroupReq{UserId: 2, GroupId: created.GroupId})
	if err != nil || !applied.Success {
		t.Fatalf("ApplyGroup failed: %v %+v", err, applied)
	}

	// A plain member may not accept.
	repo.roles[[2]int64{created.GroupId, 3}] = domain.RoleMember
	denied, err := svc.AcceptGroup(context.Background(), &im.AcceptGroupReq{
		UserId: 3, GroupId: created.GroupId, ApplicantId: 2, Accept: true,
	})
	if err != nil {
		t.Fatalf("AcceptGroup failed: %v", err)
	}
	if denied.Success {
		t.Error("Expected plain member to be refused")
	}

	accepted, err := svc.AcceptGroup(context.Background(), &im.AcceptGroupReq{
		UserId: 1, GroupId: created.GroupId, ApplicantId: 2, Accept: true,
	})
	if err != nil || !accepted.Success {
		t.Fatalf("Owner accept failed: %v %+v", err, accepted)
	}
	if repo.roles[[2]int64{created.GroupId, 2}] != domain.RoleMember {
		t.Error("Expected applicant inserted as member")
	}
}

func TestApplyGroup_AlreadyMember(t *testing.T) {
	svc, _, _ := newTestService()
	created, _ := svc.CreateGroup(context.Background(), &im.CreateGroupReq{OwnerId: 1, GroupName: "G", JoinVerify: true})

	resp, err := svc.ApplyGroup(context.Background(), &im.ApplyGroupReq{UserId: 1, GroupId: created.GroupId})
	if err != nil {
		t.Fatalf("ApplyGroup failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected already-member apply to fail")
	}
}
