package domain

import "time"

// MessageBody is the append-only message payload, written once per send.
// GroupID is 0 for single chat.
type MessageBody struct {
	MsgID     int64
	SenderID  int64
	GroupID   int64
	Type      int32
	Content   string
	CreatedAt time.Time
}

// IndexEntry is one row of an owner timeline. SeqID is strictly monotone
// per OwnerID; OtherID is the peer for single chat and the group for group
// chat. One body can have many index entries (group fan-out).
type IndexEntry struct {
	OwnerID  int64
	SeqID    int64
	OtherID  int64
	MsgID    int64
	IsSender bool
}

// TimelineMessage is an index entry joined with its body, as returned by
// sync queries.
type TimelineMessage struct {
	SeqID     int64
	MsgID     int64
	SenderID  int64
	GroupID   int64
	Type      int32
	Content   string
	CreatedAt time.Time
}
