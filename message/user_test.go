package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestUserRequestChangePasswordRequiresNewPassword(t *testing.T) {
	r := NewUserRequest("U1", UserRequestTypeChangePassword, "user")
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error without NewPassword")
	}
	r.WithNewPassword("newpass")
	if _, err := r.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserResponseParses(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeUserResponse)
	m.Set(constants.TagUserRequestID, "U1")
	m.Set(constants.TagUsernameReq, "user")
	m.Set(constants.TagUserStatus, constants.UserStatusLoggedIn)

	var zero UserResponse
	resp, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != UserStatusLoggedIn {
		t.Errorf("Status = %q", resp.Status)
	}
}
