package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// UserRequest logs a user on/off, changes a password, or asks for
// status — the four UserRequestType variants (spec §4.2).
type UserRequest struct {
	UserRequestID   string
	RequestType     UserRequestType
	Username        string
	Password        string
	NewPassword     string
}

func NewUserRequest(reqID string, requestType UserRequestType, username string) *UserRequest {
	return &UserRequest{UserRequestID: reqID, RequestType: requestType, Username: username}
}

func (r *UserRequest) WithPassword(password string) *UserRequest {
	r.Password = password
	return r
}

func (r *UserRequest) WithNewPassword(newPassword string) *UserRequest {
	r.NewPassword = newPassword
	return r
}

func (r *UserRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.UserRequestID == "" || r.Username == "" {
		return nil, errs.New(errs.KindMessageConstruction, "UserRequest requires UserRequestID and Username")
	}
	if r.RequestType == UserRequestTypeChangePassword && r.NewPassword == "" {
		return nil, errs.New(errs.KindMessageConstruction, "UserRequestTypeChangePassword requires NewPassword")
	}
	m := header(constants.MsgTypeUserRequest, sender, target, seq)
	m.Set(constants.TagUserRequestID, r.UserRequestID)
	m.Set(constants.TagUserRequestType, string(r.RequestType))
	m.Set(constants.TagUsernameReq, r.Username)
	if r.Password != "" {
		m.Set(constants.TagPassword, r.Password)
	}
	if r.NewPassword != "" {
		m.Set(constants.TagNewPassword, r.NewPassword)
	}
	return m, nil
}

// UserResponse is the server's reply to a UserRequest.
type UserResponse struct {
	UserRequestID string
	Username      string
	Status        UserStatus
	StatusText    string
}

func (*UserResponse) FromFixMessage(m *codec.Message) (*UserResponse, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeUserResponse {
		return nil, errs.New(errs.KindMessageParsing, "not a UserResponse: MsgType=%q", mt)
	}
	r := &UserResponse{}
	r.UserRequestID, _ = m.Get(constants.TagUserRequestID)
	r.Username, _ = m.Get(constants.TagUsernameReq)
	status, _ := m.Get(constants.TagUserStatus)
	r.Status = UserStatus(status)
	r.StatusText, _ = m.Get(constants.TagUserStatusText)
	return r, nil
}
