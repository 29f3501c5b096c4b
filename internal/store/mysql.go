package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/go-sql-driver/mysql"
)

//go:embed schema.sql
var schemaDDL string

// MySQLStore implements Repository over a primary write pool and an
// optional set of replica read pools. Reads pick a replica at random and
// fall back to the primary when none are configured.
type MySQLStore struct {
	write *sql.DB
	reads []*sql.DB
}

// Options tunes the connection pools.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
	InitSchema   bool
}

// NewMySQL opens the write pool on writeDSN and one read pool per entry of
// readDSNs.
func NewMySQL(writeDSN string, readDSNs []string, opts Options) (*MySQLStore, error) {
	open := func(dsn string) (*sql.DB, error) {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		db.SetConnMaxLifetime(5 * time.Minute)
		return db, nil
	}

	write, err := open(writeDSN)
	if err != nil {
		return nil, err
	}

	s := &MySQLStore{write: write}
	for _, dsn := range readDSNs {
		db, err := open(dsn)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.reads = append(s.reads, db)
	}

	if opts.InitSchema {
		if err := s.initSchema(); err != nil {
			s.Close()
			return nil, fmt.Errorf("initialize schema: %w", err)
		}
	}

	return s, nil
}

func (s *MySQLStore) initSchema() error {
	for _, stmt := range strings.Split(schemaDDL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err := s.write.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// read returns a pool for read queries: a random replica, or the primary
// when no replicas are configured.
func (s *MySQLStore) read() *sql.DB {
	if len(s.reads) == 0 {
		return s.write
	}
	return s.reads[rand.Intn(len(s.reads))]
}

// Ping verifies connectivity on the write pool and every read pool.
func (s *MySQLStore) Ping(ctx context.Context) error {
	if err := s.write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping primary: %w", err)
	}
	for i, db := range s.reads {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping replica %d: %w", i, err)
		}
	}
	return nil
}

// Close closes all pools.
func (s *MySQLStore) Close() error {
	var firstErr error
	if err := s.write.Close(); err != nil {
		firstErr = err
	}
	for _, db := range s.reads {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func isDuplicateErr(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// CreateUser inserts a new account and returns its user_id.
func (s *MySQLStore) CreateUser(ctx context.Context, username, password, nickname string) (int64, error) {
	res, err := s.write.ExecContext(ctx,
		`INSERT INTO im_user (username, password, nickname) VALUES (?, ?, ?)`,
		username, password, nickname)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user insert id: %w", err)
	}
	return id, nil
}

// GetUserByUsername retrieves a user by unique username.
func (s *MySQLStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.read().QueryRowContext(ctx,
		`SELECT user_id, username, password, nickname FROM im_user WHERE username = ?`, username)
	return scanUser(row)
}

// GetUser retrieves a user by id.
func (s *MySQLStore) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	row := s.read().QueryRowContext(ctx,
		`SELECT user_id, username, password, nickname FROM im_user WHERE user_id = ?`, userID)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.Password, &u.Nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}
	return &u, nil
}

// InsertMessageBody appends one immutable message body.
func (s *MySQLStore) InsertMessageBody(ctx context.Context, senderID, groupID int64, msgType int32, content string) (int64, error) {
	res, err := s.write.ExecContext(ctx,
		`INSERT INTO im_message_body (sender_id, group_id, msg_type, content) VALUES (?, ?, ?, ?)`,
		senderID, groupID, msgType, content)
	if err != nil {
		return 0, fmt.Errorf("insert message body: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("message body insert id: %w", err)
	}
	return id, nil
}

// InsertMessageIndex appends one timeline index entry.
func (s *MySQLStore) InsertMessageIndex(ctx context.Context, entry domain.IndexEntry) error {
	_, err := s.write.ExecContext(ctx,
		`INSERT INTO im_message_index (owner_id, seq_id, other_id, msg_id, is_sender) VALUES (?, ?, ?, ?, ?)`,
		entry.OwnerID, entry.SeqID, entry.OtherID, entry.MsgID, entry.IsSender)
	if err != nil {
		return fmt.Errorf("insert message index: %w", err)
	}
	return nil
}

// SyncMessages reads an owner timeline joined with bodies.
func (s *MySQLStore) SyncMessages(ctx context.Context, ownerID, localSeq int64, limit int, reverse bool) ([]*domain.TimelineMessage, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if reverse {
		rows, err = s.read().QueryContext(ctx,
			`SELECT idx.seq_id, idx.msg_id, body.sender_id, body.group_id, body.msg_type, body.content, body.created_at
			 FROM im_message_index idx
			 JOIN im_message_body body ON idx.msg_id = body.msg_id
			 WHERE idx.owner_id = ?
			 ORDER BY idx.seq_id DESC LIMIT ?`,
			ownerID, limit)
	} else {
		rows, err = s.read().QueryContext(ctx,
			`SELECT idx.seq_id, idx.msg_id, body.sender_id, body.group_id, body.msg_type, body.content, body.created_at
			 FROM im_message_index idx
			 JOIN im_message_body body ON idx.msg_id = body.msg_id
			 WHERE idx.owner_id = ? AND idx.seq_id > ?
			 ORDER BY idx.seq_id ASC LIMIT ?`,
			ownerID, localSeq, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("sync query: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.TimelineMessage
	for rows.Next() {
		var m domain.TimelineMessage
		if err := rows.Scan(&m.SeqID, &m.MsgID, &m.SenderID, &m.GroupID, &m.Type, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan timeline row: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timeline rows: %w", err)
	}
	return msgs, nil
}

// RelationStatus reports the status of the directed edge user->friend.
func (s *MySQLStore) RelationStatus(ctx context.Context, userID, friendID int64) (int, bool, error) {
	var status int
	err := s.read().QueryRowContext(ctx,
		`SELECT status FROM im_relation WHERE user_id = ? AND friend_id = ?`,
		userID, friendID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query relation: %w", err)
	}
	return status, true, nil
}

// HasPendingFriendRequest reports whether user->friend has a pending row.
func (s *MySQLStore) HasPendingFriendRequest(ctx context.Context, userID, friendID int64) (bool, error) {
	var id int64
	err := s.read().QueryRowContext(ctx,
		`SELECT id FROM im_friend_request WHERE user_id = ? AND friend_id = ? AND status = ?`,
		userID, friendID, domain.FriendRequestPending).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query friend request: %w", err)
	}
	return true, nil
}

// InsertFriendRequest records a pending application.
func (s *MySQLStore) InsertFriendRequest(ctx context.Context, userID, friendID int64, remark string) (int64, error) {
	res, err := s.write.ExecContext(ctx,
		`INSERT INTO im_friend_request (user_id, friend_id, remark) VALUES (?, ?, ?)`,
		userID, friendID, remark)
	if err != nil {
		return 0, fmt.Errorf("insert friend request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("friend request insert id: %w", err)
	}
	return id, nil
}

// SetFriendRequestStatus flips the pending requester->user row.
func (s *MySQLStore) SetFriendRequestStatus(ctx context.Context, requesterID, userID int64, status int) error {
	_, err := s.write.ExecContext(ctx,
		`UPDATE im_friend_request SET status = ? WHERE user_id = ? AND friend_id = ? AND status = ?`,
		status, requesterID, userID, domain.FriendRequestPending)
	if err != nil {
		return fmt.Errorf("update friend request: %w", err)
	}
	return nil
}

// InsertRelationPair records the accepted relation in both directions.
func (s *MySQLStore) InsertRelationPair(ctx context.Context, userID, friendID int64) error {
	_, err := s.write.ExecContext(ctx,
		`INSERT IGNORE INTO im_relation (user_id, friend_id, status) VALUES (?, ?, ?), (?, ?, ?)`,
		userID, friendID, domain.RelationAccepted,
		friendID, userID, domain.RelationAccepted)
	if err != nil {
		return fmt.Errorf("insert relation pair: %w", err)
	}
	return nil
}

// ListFriends returns accepted relations joined with user info.
func (s *MySQLStore) ListFriends(ctx context.Context, userID int64) ([]*domain.Friend, error) {
	rows, err := s.read().QueryContext(ctx,
		`SELECT r.friend_id, u.username, u.nickname FROM im_relation r
		 JOIN im_user u ON r.friend_id = u.user_id
		 WHERE r.user_id = ? AND r.status = ?`,
		userID, domain.RelationAccepted)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	var friends []*domain.Friend
	for rows.Next() {
		var f domain.Friend
		if err := rows.Scan(&f.UserID, &f.Username, &f.Nickname); err != nil {
			return nil, fmt.Errorf("scan friend row: %w", err)
		}
		friends = append(friends, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate friend rows: %w", err)
	}
	return friends, nil
}

// CreateGroup inserts a group and returns its group_id.
func (s *MySQLStore) CreateGroup(ctx context.Context, name string, ownerID int64, joinVerify bool) (int64, error) {
	res, err := s.write.ExecContext(ctx,
		`INSERT INTO im_group (group_name, owner_id, join_verify) VALUES (?, ?, ?)`,
		name, ownerID, joinVerify)
	if err != nil {
		return 0, fmt.Errorf("insert group: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("group insert id: %w", err)
	}
	return id, nil
}

// GetGroup retrieves a group by id.
func (s *MySQLStore) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	var g domain.Group
	err := s.read().QueryRowContext(ctx,
		`SELECT group_id, group_name, owner_id, join_verify FROM im_group WHERE group_id = ?`,
		groupID).Scan(&g.GroupID, &g.Name, &g.OwnerID, &g.JoinVerify)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan group row: %w", err)
	}
	return &g, nil
}

// AddGroupMember inserts one membership row.
func (s *MySQLStore) AddGroupMember(ctx context.Context, groupID, userID int64, role int) error {
	_, err := s.write.ExecContext(ctx,
		`INSERT INTO im_group_member (group_id, user_id, role) VALUES (?, ?, ?)`,
		groupID, userID, role)
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert group member: %w", err)
	}
	return nil
}

// GroupMemberRole reports the member's role.
func (s *MySQLStore) GroupMemberRole(ctx context.Context, groupID, userID int64) (int, bool, error) {
	var role int
	err := s.read().QueryRowContext(ctx,
		`SELECT role FROM im_group_member WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query group member: %w", err)
	}
	return role, true, nil
}

// ListGroupMembers returns the user ids of all current members.
func (s *MySQLStore) ListGroupMembers(ctx context.Context, groupID int64) ([]int64, error) {
	rows, err := s.read().QueryContext(ctx,
		`SELECT user_id FROM im_group_member WHERE group_id = ?`, groupID)
	if err != nil {
		return nil, fmt.Errorf("query group members: %w", err)
	}
	defer rows.Close()

	var members []int64
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan group member row: %w", err)
		}
		members = append(members, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group member rows: %w", err)
	}
	return members, nil
}

// ListGroups returns the groups the user is a member of.
func (s *MySQLStore) ListGroups(ctx context.Context, userID int64) ([]*domain.Group, error) {
	rows, err := s.read().QueryContext(ctx,
		`SELECT g.group_id, g.group_name, g.owner_id, g.join_verify FROM im_group_member m
		 JOIN im_group g ON m.group_id = g.group_id
		 WHERE m.user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.GroupID, &g.Name, &g.OwnerID, &g.JoinVerify); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group rows: %w", err)
	}
	return groups, nil
}

// HasPendingGroupRequest reports whether user->group has a pending row.
func (s *MySQLStore) HasPendingGroupRequest(ctx context.Context, userID, groupID int64) (bool, error) {
	var id int64
	err := s.read().QueryRowContext(ctx,
		`SELECT id FROM im_group_request WHERE user_id = ? AND group_id = ? AND status = ?`,
		userID, groupID, domain.FriendRequestPending).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query group request: %w", err)
	}
	return true, nil
}

// InsertGroupRequest records a pending application.
func (s *MySQLStore) InsertGroupRequest(ctx context.Context, userID, groupID int64, remark string) (int64, error) {
	res, err := s.write.ExecContext(ctx,
		`INSERT INTO im_group_request (user_id, group_id, remark) VALUES (?, ?, ?)`,
		userID, groupID, remark)
	if err != nil {
		return 0, fmt.Errorf("insert group request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("group request insert id: %w", err)
	}
	return id, nil
}

// SetGroupRequestStatus flips the pending applicant->group row.
func (s *MySQLStore) SetGroupRequestStatus(ctx context.Context, applicantID, groupID int64, status int) error {
	_, err := s.write.ExecContext(ctx,
		`UPDATE im_group_request SET status = ? WHERE user_id = ? AND group_id = ? AND status = ?`,
		status, applicantID, groupID, domain.FriendRequestPending)
	if err != nil {
		return fmt.Errorf("update group request: %w", err)
	}
	return nil
}
