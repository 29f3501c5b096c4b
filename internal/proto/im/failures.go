package im

// SetFailure marks a response as a logic failure with an explanatory
// message. Callers that cannot reach a service use it to degrade a
// transport error into a structured result, keeping faults out of the
// wire protocol.

func (m *RegisterResp) SetFailure(msg string)      { m.Success = false; m.ErrorMessage = msg }
func (m *LoginResp) SetFailure(msg string)         { m.Success = false; m.ErrorMessage = msg }
func (m *LogoutResp) SetFailure(msg string)        { m.Success = false; m.ErrorMessage = msg }
func (m *SendMessageResp) SetFailure(msg string)   { m.Success = false; m.ErrorMessage = msg }
func (m *SyncMessagesResp) SetFailure(msg string)  { m.Success = false; m.ErrorMessage = msg }
func (m *ApplyFriendResp) SetFailure(msg string)   { m.Success = false; m.ErrorMessage = msg }
func (m *AcceptFriendResp) SetFailure(msg string)  { m.Success = false; m.ErrorMessage = msg }
func (m *GetFriendListResp) SetFailure(msg string) { m.Success = false; m.ErrorMessage = msg }
func (m *CreateGroupResp) SetFailure(msg string)   { m.Success = false; m.ErrorMessage = msg }
func (m *JoinGroupResp) SetFailure(msg string)     { m.Success = false; m.ErrorMessage = msg }
func (m *GetGroupListResp) SetFailure(msg string)  { m.Success = false; m.ErrorMessage = msg }
func (m *ApplyGroupResp) SetFailure(msg string)    { m.Success = false; m.ErrorMessage = msg }
func (m *AcceptGroupResp) SetFailure(msg string)   { m.Success = false; m.ErrorMessage = msg }
