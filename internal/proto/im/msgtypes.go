package im

// Message type values carried in SendMessageReq.Type and MessageItem.Type.
// MsgTypeSystem and MsgTypeFriendReq bypass the friend precondition on
// single chat. Wire-visible: never renumber.
const (
	MsgTypeText      int32 = 0
	MsgTypeImage     int32 = 1
	MsgTypeFile      int32 = 2
	MsgTypeSystem    int32 = 3
	MsgTypeFriendReq int32 = 4
)
