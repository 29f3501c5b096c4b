// Package protocol implements the framed binary protocol spoken on the
// client channel: a fixed 9-byte header followed by the body. Bodies are
// protobuf messages, except the kick LOGOUT_RESP, whose body is plain text.
package protocol

// Command identifiers. Every *_REQ has a paired *_RESP; CmdMsgPushNotify is
// server-initiated and has no request.
const (
	CmdLoginReq      uint16 = 0x1001
	CmdLoginResp     uint16 = 0x1002
	CmdHeartbeatReq  uint16 = 0x1003
	CmdHeartbeatResp uint16 = 0x1004
	CmdLogoutReq     uint16 = 0x1005
	CmdLogoutResp    uint16 = 0x1006

	CmdMsgSendReq    uint16 = 0x2001
	CmdMsgSendResp   uint16 = 0x2002
	CmdMsgPushNotify uint16 = 0x2003
	CmdMsgSyncReq    uint16 = 0x2004
	CmdMsgSyncResp   uint16 = 0x2005

	CmdFriendApplyReq   uint16 = 0x3001
	CmdFriendApplyResp  uint16 = 0x3002
	CmdFriendAcceptReq  uint16 = 0x3003
	CmdFriendAcceptResp uint16 = 0x3004
	CmdFriendListReq    uint16 = 0x3005
	CmdFriendListResp   uint16 = 0x3006

	CmdGroupCreateReq  uint16 = 0x4001
	CmdGroupCreateResp uint16 = 0x4002
	CmdGroupJoinReq    uint16 = 0x4003
	CmdGroupJoinResp   uint16 = 0x4004
	CmdGroupListReq    uint16 = 0x4005
	CmdGroupListResp   uint16 = 0x4006
	CmdGroupApplyReq   uint16 = 0x4007
	CmdGroupApplyResp  uint16 = 0x4008
	CmdGroupAcceptReq  uint16 = 0x4009
	CmdGroupAcceptResp uint16 = 0x4010
)
