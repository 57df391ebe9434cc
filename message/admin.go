package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// header stamps the four standard header fields shared by every
// outgoing message. Individual ToFixMessage methods call this first
// and then layer their own body fields on top.
func header(msgType, sender, target string, seq int) *codec.Message {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, msgType)
	m.Set(constants.TagSenderCompID, sender)
	m.Set(constants.TagTargetCompID, target)
	m.SetInt(constants.TagMsgSeqNum, seq)
	return m
}

// Logon is the initial authentication message (spec §4.2/§5).
type Logon struct {
	EncryptMethod      int
	HeartBtInt         int
	Username           string
	RawData            string
	Password           string
	CancelOnDisconnect bool
	DeribitAppID       string
	DeribitAppSig      string

	// Optional tags, nil unless explicitly set.
	UseWordsafeTags                *bool
	DontCancelOnDisconnect          *bool
	DeribitSequential               *bool
	UnsubscribeExecutionReports     *bool
	ConnectionOnlyExecutionReports  *bool
	ReportFillsAsExecReports        *bool
	DisplayIncrementSteps           *bool
}

// NewLogon returns a Logon with EncryptMethod fixed at 0 (none) per
// Deribit's gateway requirement.
func NewLogon(username, rawData, password string, heartBtInt int) *Logon {
	return &Logon{
		EncryptMethod: 0,
		HeartBtInt:    heartBtInt,
		Username:      username,
		RawData:       rawData,
		Password:      password,
	}
}

// WithCancelOnDisconnect sets CancelOnDisconnect(9001).
func (l *Logon) WithCancelOnDisconnect(v bool) *Logon {
	l.CancelOnDisconnect = v
	return l
}

// WithAppCredentials sets DeribitAppID(9004)/DeribitAppSig(9005).
func (l *Logon) WithAppCredentials(appID, appSig string) *Logon {
	l.DeribitAppID = appID
	l.DeribitAppSig = appSig
	return l
}

func setOptionalBool(m *codec.Message, tag int, v *bool) {
	if v == nil {
		return
	}
	if *v {
		m.Set(tag, constants.FlagYes)
	} else {
		m.Set(tag, constants.FlagNo)
	}
}

// ToFixMessage renders the Logon for transmission.
func (l *Logon) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if l.Username == "" || l.Password == "" {
		return nil, errs.New(errs.KindMessageConstruction, "Logon requires Username and Password")
	}
	m := header(constants.MsgTypeLogon, sender, target, seq)
	m.SetInt(constants.TagEncryptMethod, l.EncryptMethod)
	m.SetInt(constants.TagHeartBtInt, l.HeartBtInt)
	m.Set(constants.TagUsername, l.Username)
	m.Set(constants.TagRawData, l.RawData)
	m.SetInt(constants.TagRawDataLength, len(l.RawData))
	m.Set(constants.TagPassword, l.Password)

	if l.CancelOnDisconnect {
		m.Set(constants.TagCancelOnDisconnect, constants.FlagYes)
	}
	if l.DeribitAppID != "" {
		m.Set(constants.TagDeribitAppID, l.DeribitAppID)
	}
	if l.DeribitAppSig != "" {
		m.Set(constants.TagDeribitAppSig, l.DeribitAppSig)
	}

	setOptionalBool(m, constants.TagUseWordsafeTags, l.UseWordsafeTags)
	setOptionalBool(m, constants.TagDontCancelOnDisconnect, l.DontCancelOnDisconnect)
	setOptionalBool(m, constants.TagDeribitSequential, l.DeribitSequential)
	setOptionalBool(m, constants.TagUnsubscribeExecutionReports, l.UnsubscribeExecutionReports)
	setOptionalBool(m, constants.TagConnectionOnlyExecutionReports, l.ConnectionOnlyExecutionReports)
	setOptionalBool(m, constants.TagReportFillsAsExecReports, l.ReportFillsAsExecReports)
	setOptionalBool(m, constants.TagDisplayIncrementSteps, l.DisplayIncrementSteps)

	return m, nil
}

// Logout requests or acknowledges session termination. Text and
// DontCancelOnDisconnect are optional, matching logout_with_options in
// the reference implementation.
type Logout struct {
	Text                    string
	DontCancelOnDisconnect *bool
}

func NewLogout() *Logout { return &Logout{} }

func (l *Logout) WithText(text string) *Logout {
	l.Text = text
	return l
}

func (l *Logout) WithDontCancelOnDisconnect(v bool) *Logout {
	l.DontCancelOnDisconnect = &v
	return l
}

func (l *Logout) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeLogout, sender, target, seq)
	if l.Text != "" {
		m.Set(constants.TagText, l.Text)
	}
	setOptionalBool(m, constants.TagDontCancelOnDisconnect, l.DontCancelOnDisconnect)
	return m, nil
}

// Heartbeat is sent on the HeartBtInt timer, or in response to a
// TestRequest (in which case TestReqID echoes the request's ID).
type Heartbeat struct {
	TestReqID string
}

func NewHeartbeat() *Heartbeat { return &Heartbeat{} }

func (h *Heartbeat) WithTestReqID(id string) *Heartbeat {
	h.TestReqID = id
	return h
}

func (h *Heartbeat) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeHeartbeat, sender, target, seq)
	if h.TestReqID != "" {
		m.Set(constants.TagTestReqID, h.TestReqID)
	}
	return m, nil
}

// TestRequest solicits a Heartbeat to confirm the connection is alive.
type TestRequest struct {
	TestReqID string
}

func NewTestRequest(testReqID string) *TestRequest { return &TestRequest{TestReqID: testReqID} }

func (t *TestRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if t.TestReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "TestRequest requires TestReqID")
	}
	m := header(constants.MsgTypeTestRequest, sender, target, seq)
	m.Set(constants.TagTestReqID, t.TestReqID)
	return m, nil
}

// ResendRequest asks the counterparty to retransmit a range of
// sequence numbers. EndSeqNo of 0 means "through the current end of
// stream" per FIX convention.
type ResendRequest struct {
	BeginSeqNo int
	EndSeqNo   int
}

func NewResendRequest(begin, end int) *ResendRequest {
	return &ResendRequest{BeginSeqNo: begin, EndSeqNo: end}
}

func (r *ResendRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeResendRequest, sender, target, seq)
	m.SetInt(constants.TagBeginSeqNo, r.BeginSeqNo)
	m.SetInt(constants.TagEndSeqNo, r.EndSeqNo)
	return m, nil
}

// SequenceReset resets the expected incoming sequence number, either
// in gap-fill mode (skipping admin messages) or as a hard reset.
type SequenceReset struct {
	NewSeqNo    int
	GapFillFlag bool
}

func NewSequenceReset(newSeqNo int, gapFill bool) *SequenceReset {
	return &SequenceReset{NewSeqNo: newSeqNo, GapFillFlag: gapFill}
}

func (s *SequenceReset) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeSequenceReset, sender, target, seq)
	m.SetInt(constants.TagNewSeqNo, s.NewSeqNo)
	if s.GapFillFlag {
		m.Set(constants.TagGapFillFlag, constants.FlagYes)
	}
	return m, nil
}

// Reject is a session-level rejection of a specific message.
type Reject struct {
	RefSeqNum  int
	RefTagID   int
	RefMsgType string
	Reason     SessionRejectReason
	Text       string
}

func NewReject(refSeqNum int, reason SessionRejectReason) *Reject {
	return &Reject{RefSeqNum: refSeqNum, Reason: reason}
}

func (r *Reject) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeReject, sender, target, seq)
	m.SetInt(constants.TagRefSeqNum, r.RefSeqNum)
	if r.RefTagID != 0 {
		m.SetInt(constants.TagRefTagID, r.RefTagID)
	}
	if r.RefMsgType != "" {
		m.Set(constants.TagRefMsgType, r.RefMsgType)
	}
	if r.Reason != "" {
		m.Set(constants.TagSessionRejectReason, string(r.Reason))
	}
	if r.Text != "" {
		m.Set(constants.TagText, r.Text)
	}
	return m, nil
}

// BusinessMessageReject rejects an application-level message that
// passed session-level validation but failed a business rule.
type BusinessMessageReject struct {
	RefSeqNum  int
	RefMsgType string
	Reason     BusinessRejectReason
	RefID      string
	Text       string
}

func NewBusinessMessageReject(refSeqNum int, refMsgType string, reason BusinessRejectReason) *BusinessMessageReject {
	return &BusinessMessageReject{RefSeqNum: refSeqNum, RefMsgType: refMsgType, Reason: reason}
}

func (b *BusinessMessageReject) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeBusinessMessageReject, sender, target, seq)
	m.SetInt(constants.TagRefSeqNum, b.RefSeqNum)
	m.Set(constants.TagRefMsgType, b.RefMsgType)
	if b.Reason != "" {
		m.Set(constants.TagBusinessRejectReason, string(b.Reason))
	}
	if b.RefID != "" {
		m.Set(constants.TagBusinessRejectRefID, b.RefID)
	}
	if b.Text != "" {
		m.Set(constants.TagText, b.Text)
	}
	return m, nil
}
