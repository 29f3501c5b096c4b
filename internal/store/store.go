// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/ashureev/tinyim/internal/domain"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (username taken, membership row already present).
var ErrDuplicate = errors.New("store: duplicate entry")

// Repository defines the durable-state interface: users, message timeline,
// relations and groups. Implementations must use parameter binding for all
// values; sync and list queries may be served from a read replica.
type Repository interface {
	// CreateUser inserts a new account and returns its user_id.
	// A taken username surfaces as ErrDuplicate.
	CreateUser(ctx context.Context, username, password, nickname string) (int64, error)

	// GetUserByUsername retrieves a user by unique username.
	// Returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUser retrieves a user by id. Returns (nil, nil) when absent.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// InsertMessageBody appends one immutable message body and returns its
	// msg_id.
	InsertMessageBody(ctx context.Context, senderID, groupID int64, msgType int32, content string) (int64, error)

	// InsertMessageIndex appends one timeline index entry.
	InsertMessageIndex(ctx context.Context, entry domain.IndexEntry) error

	// SyncMessages reads an owner timeline joined with bodies.
	// reverse=false resumes forward from localSeq (exclusive); reverse=true
	// returns the latest rows with no seq filter.
	SyncMessages(ctx context.Context, ownerID, localSeq int64, limit int, reverse bool) ([]*domain.TimelineMessage, error)

	// RelationStatus reports the status of the directed edge user->friend.
	// ok is false when no row exists.
	RelationStatus(ctx context.Context, userID, friendID int64) (status int, ok bool, err error)

	// HasPendingFriendRequest reports whether user->friend already has a
	// pending application.
	HasPendingFriendRequest(ctx context.Context, userID, friendID int64) (bool, error)

	// InsertFriendRequest records a pending application and returns its id.
	InsertFriendRequest(ctx context.Context, userID, friendID int64, remark string) (int64, error)

	// SetFriendRequestStatus flips the pending requester->user row.
	SetFriendRequestStatus(ctx context.Context, requesterID, userID int64, status int) error

	// InsertRelationPair records the accepted relation in both directions.
	// Existing rows are left untouched.
	InsertRelationPair(ctx context.Context, userID, friendID int64) error

	// ListFriends returns accepted relations joined with user info.
	ListFriends(ctx context.Context, userID int64) ([]*domain.Friend, error)

	// CreateGroup inserts a group and returns its group_id. Membership rows
	// are added separately.
	CreateGroup(ctx context.Context, name string, ownerID int64, joinVerify bool) (int64, error)

	// GetGroup retrieves a group by id. Returns (nil, nil) when absent.
	GetGroup(ctx context.Context, groupID int64) (*domain.Group, error)

	// AddGroupMember inserts one membership row. An existing row surfaces
	// as ErrDuplicate.
	AddGroupMember(ctx context.Context, groupID, userID int64, role int) error

	// GroupMemberRole reports the member's role; ok is false for
	// non-members.
	GroupMemberRole(ctx context.Context, groupID, userID int64) (role int, ok bool, err error)

	// ListGroupMembers returns the user ids of all current members.
	ListGroupMembers(ctx context.Context, groupID int64) ([]int64, error)

	// ListGroups returns the groups the user is a member of.
	ListGroups(ctx context.Context, userID int64) ([]*domain.Group, error)

	// HasPendingGroupRequest reports whether user->group already has a
	// pending application.
	HasPendingGroupRequest(ctx context.Context, userID, groupID int64) (bool, error)

	// InsertGroupRequest records a pending application and returns its id.
	InsertGroupRequest(ctx context.Context, userID, groupID int64, remark string) (int64, error)

	// SetGroupRequestStatus flips the pending applicant->group row.
	SetGroupRequestStatus(ctx context.Context, applicantID, groupID int64, status int) error

	// Ping verifies connectivity on both the write and read paths.
	Ping(ctx context.Context) error

	// Close closes all pools.
	Close() error
}
