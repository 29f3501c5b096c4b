// Package relation implements friend requests and acceptance, and group
// lifecycle and membership.
package relation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Chats resolves a chat-service client for system-message side effects.
type Chats interface {
	Chat(ctx context.Context) (im.ChatServiceClient, error)
}

// Service implements im.RelationServiceServer. System messages are
// best-effort side effects: they never fail the primary operation.
type Service struct {
	im.UnimplementedRelationServiceServer

	repo        store.Repository
	chats       Chats
	sendTimeout time.Duration
}

// NewService creates the relation service.
func NewService(repo store.Repository, chats Chats, sendTimeout time.Duration) *Service {
	return &Service{repo: repo, chats: chats, sendTimeout: sendTimeout}
}

// systemMessage sends a side-effect message through the chat service.
func (s *Service) systemMessage(ctx context.Context, senderID, receiverID, groupID int64, msgType int32, content string) {
	client, err := s.chats.Chat(ctx)
	if err != nil {
		slog.Warn("System message skipped, chat unavailable", "receiver_id", receiverID, "group_id", groupID, "error", err)
		return
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	resp, err := client.SendMessage(sendCtx, &im.SendMessageReq{
		SenderId:   senderID,
		ReceiverId: receiverID,
		GroupId:    groupID,
		Type:       msgType,
		Content:    content,
	})
	if err != nil {
		slog.Warn("System message failed", "receiver_id", receiverID, "group_id", groupID, "error", err)
		return
	}
	if !resp.Success {
		slog.Warn("System message rejected", "receiver_id", receiverID, "group_id", groupID, "reason", resp.ErrorMessage)
	}
}

// ApplyFriend records a pending friend request and signals the target.
func (s *Service) ApplyFriend(ctx context.Context, req *im.ApplyFriendReq) (*im.ApplyFriendResp, error) {
	if req.UserId == req.FriendId {
		return &im.ApplyFriendResp{Success: false, ErrorMessage: "Cannot add self"}, nil
	}

	target, err := s.repo.GetUser(ctx, req.FriendId)
	if err != nil {
		slog.Error("Friend lookup failed", "friend_id", req.FriendId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if target == nil {
		return &im.ApplyFriendResp{Success: false, ErrorMessage: "User not found"}, nil
	}

	pending, err := s.repo.HasPendingFriendRequest(ctx, req.UserId, req.FriendId)
	if err != nil {
		slog.Error("Pending check failed", "user_id", req.UserId, "friend_id", req.FriendId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if pending {
		return &im.ApplyFriendResp{Success: false, ErrorMessage: "Request already pending"}, nil
	}

	applyID, err := s.repo.InsertFriendRequest(ctx, req.UserId, req.FriendId, req.Remark)
	if err != nil {
		slog.Error("Friend request insert failed", "user_id", req.UserId, "friend_id", req.FriendId, "error", err)
		return &im.ApplyFriendResp{Success: false, ErrorMessage: "Apply failed"}, nil
	}

	content := req.Remark
	if content == "" {
		content = "Friend request"
	}
	s.systemMessage(ctx, req.UserId, req.FriendId, 0, im.MsgTypeFriendReq, content)

	return &im.ApplyFriendResp{Success: true, ApplyId: applyID}, nil
}

// AcceptFriend resolves a pending request. Acceptance inserts the
// accepted relation in both directions and notifies the requester.
func (s *Service) AcceptFriend(ctx context.Context, req *im.AcceptFriendReq) (*im.AcceptFriendResp, error) {
	if !req.Accept {
		if err := s.repo.SetFriendRequestStatus(ctx, req.RequesterId, req.UserId, domain.FriendRequestRejected); err != nil {
			slog.Error("Request reject failed", "requester_id", req.RequesterId, "user_id", req.UserId, "error", err)
			return nil, status.Error(codes.Internal, "database error")
		}
		return &im.AcceptFriendResp{Success: true}, nil
	}

	if err := s.repo.SetFriendRequestStatus(ctx, req.RequesterId, req.UserId, domain.FriendRequestAccepted); err != nil {
		slog.Error("Request accept failed", "requester_id", req.RequesterId, "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if err := s.repo.InsertRelationPair(ctx, req.UserId, req.RequesterId); err != nil {
		slog.Error("Relation insert failed", "user_id", req.UserId, "requester_id", req.RequesterId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	s.systemMessage(ctx, req.UserId, req.RequesterId, 0, im.MsgTypeSystem, "Friend request accepted")

	return &im.AcceptFriendResp{Success: true}, nil
}

// GetFriendList returns accepted relations joined with user info.
func (s *Service) GetFriendList(ctx context.Context, req *im.GetFriendListReq) (*im.GetFriendListResp, error) {
	friends, err := s.repo.ListFriends(ctx, req.UserId)
	if err != nil {
		slog.Error("Friend list failed", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	resp := &im.GetFriendListResp{Success: true}
	for _, f := range friends {
		resp.Friends = append(resp.Friends, &im.FriendInfo{
			UserId:   f.UserID,
			Username: f.Username,
			Nickname: f.Nickname,
		})
	}
	return resp, nil
}

// CreateGroup inserts the group, its owner membership, and the initial
// members.
func (s *Service) CreateGroup(ctx context.Context, req *im.CreateGroupReq) (*im.CreateGroupResp, error) {
	if req.GroupName == "" {
		return &im.CreateGroupResp{Success: false, ErrorMessage: "Group name cannot be empty"}, nil
	}

	groupID, err := s.repo.CreateGroup(ctx, req.GroupName, req.OwnerId, req.JoinVerify)
	if err != nil {
		slog.Error("Group insert failed", "owner_id", req.OwnerId, "error", err)
		return &im.CreateGroupResp{Success: false, ErrorMessage: "Create failed"}, nil
	}

	if err := s.repo.AddGroupMember(ctx, groupID, req.OwnerId, domain.RoleOwner); err != nil {
		slog.Error("Owner membership insert failed", "group_id", groupID, "owner_id", req.OwnerId, "error", err)
		return &im.CreateGroupResp{Success: false, ErrorMessage: "Create failed"}, nil
	}

	for _, uid := range req.InitialMembers {
		if uid == req.OwnerId {
			continue
		}
		if err := s.repo.AddGroupMember(ctx, groupID, uid, domain.RoleMember); err != nil && !errors.Is(err, store.ErrDuplicate) {
			slog.Warn("Initial member insert failed", "group_id", groupID, "user_id", uid, "error", err)
		}
	}

	return &im.CreateGroupResp{Success: true, GroupId: groupID}, nil
}

// JoinGroup adds the user to an open group. Joining a group the user is
// already in succeeds and changes nothing; verification-gated groups take
// the apply/accept path instead.
func (s *Service) JoinGroup(ctx context.Context, req *im.JoinGroupReq) (*im.JoinGroupResp, error) {
	group, err := s.repo.GetGroup(ctx, req.GroupId)
	if err != nil {
		slog.Error("Group lookup failed", "group_id", req.GroupId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if group == nil {
		return &im.JoinGroupResp{Success: false, ErrorMessage: "Group not found"}, nil
	}

	if _, member, err := s.repo.GroupMemberRole(ctx, req.GroupId, req.UserId); err != nil {
		slog.Error("Membership check failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	} else if member {
		return &im.JoinGroupResp{Success: true}, nil
	}

	if group.JoinVerify {
		return &im.JoinGroupResp{Success: false, ErrorMessage: "Group requires approval"}, nil
	}

	err = s.repo.AddGroupMember(ctx, req.GroupId, req.UserId, domain.RoleMember)
	if errors.Is(err, store.ErrDuplicate) {
		return &im.JoinGroupResp{Success: true}, nil
	}
	if err != nil {
		slog.Error("Membership insert failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return &im.JoinGroupResp{Success: false, ErrorMessage: "Join failed"}, nil
	}

	s.systemMessage(ctx, req.UserId, 0, req.GroupId, im.MsgTypeSystem,
		fmt.Sprintf("User %d joined the group", req.UserId))

	return &im.JoinGroupResp{Success: true}, nil
}

// GetGroupList returns the groups the user is a member of.
func (s *Service) GetGroupList(ctx context.Context, req *im.GetGroupListReq) (*im.GetGroupListResp, error) {
	groups, err := s.repo.ListGroups(ctx, req.UserId)
	if err != nil {
		slog.Error("Group list failed", "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	resp := &im.GetGroupListResp{Success: true}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, &im.GroupInfo{
			GroupId:   g.GroupID,
			GroupName: g.Name,
			OwnerId:   g.OwnerID,
		})
	}
	return resp, nil
}

// ApplyGroup records a pending application to a verification-gated group
// and signals the group owner.
func (s *Service) ApplyGroup(ctx context.Context, req *im.ApplyGroupReq) (*im.ApplyGroupResp, error) {
	group, err := s.repo.GetGroup(ctx, req.GroupId)
	if err != nil {
		slog.Error("Group lookup failed", "group_id", req.GroupId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if group == nil {
		return &im.ApplyGroupResp{Success: false, ErrorMessage: "Group not found"}, nil
	}

	if _, member, err := s.repo.GroupMemberRole(ctx, req.GroupId, req.UserId); err != nil {
		slog.Error("Membership check failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	} else if member {
		return &im.ApplyGroupResp{Success: false, ErrorMessage: "Already a member"}, nil
	}

	pending, err := s.repo.HasPendingGroupRequest(ctx, req.UserId, req.GroupId)
	if err != nil {
		slog.Error("Pending check failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if pending {
		return &im.ApplyGroupResp{Success: false, ErrorMessage: "Request already pending"}, nil
	}

	applyID, err := s.repo.InsertGroupRequest(ctx, req.UserId, req.GroupId, req.Remark)
	if err != nil {
		slog.Error("Group request insert failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return &im.ApplyGroupResp{Success: false, ErrorMessage: "Apply failed"}, nil
	}

	s.systemMessage(ctx, req.UserId, group.OwnerID, 0, im.MsgTypeSystem,
		fmt.Sprintf("User %d applied to join group %s", req.UserId, group.Name))

	return &im.ApplyGroupResp{Success: true, ApplyId: applyID}, nil
}

// AcceptGroup resolves a pending application; only owners and admins may
// act on it. Acceptance inserts the membership and notifies the applicant.
func (s *Service) AcceptGroup(ctx context.Context, req *im.AcceptGroupReq) (*im.AcceptGroupResp, error) {
	role, member, err := s.repo.GroupMemberRole(ctx, req.GroupId, req.UserId)
	if err != nil {
		slog.Error("Membership check failed", "group_id", req.GroupId, "user_id", req.UserId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if !member || role < domain.RoleAdmin {
		return &im.AcceptGroupResp{Success: false, ErrorMessage: "Not authorized"}, nil
	}

	if !req.Accept {
		if err := s.repo.SetGroupRequestStatus(ctx, req.ApplicantId, req.GroupId, domain.FriendRequestRejected); err != nil {
			slog.Error("Request reject failed", "group_id", req.GroupId, "applicant_id", req.ApplicantId, "error", err)
			return nil, status.Error(codes.Internal, "database error")
		}
		return &im.AcceptGroupResp{Success: true}, nil
	}

	if err := s.repo.SetGroupRequestStatus(ctx, req.ApplicantId, req.GroupId, domain.FriendRequestAccepted); err != nil {
		slog.Error("Request accept failed", "group_id", req.GroupId, "applicant_id", req.ApplicantId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	err = s.repo.AddGroupMember(ctx, req.GroupId, req.ApplicantId, domain.RoleMember)
	if err != nil && !errors.Is(err, store.ErrDuplicate) {
		slog.Error("Membership insert failed", "group_id", req.GroupId, "applicant_id", req.ApplicantId, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	s.systemMessage(ctx, req.UserId, req.ApplicantId, 0, im.MsgTypeSystem, "Group request accepted")

	return &im.AcceptGroupResp{Success: true}, nil
}
