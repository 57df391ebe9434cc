// Package session implements the FIX session state machine (C3):
// logon/logout transitions, sequence-number discipline, the Deribit
// SHA-256 challenge-response credential derivation, and gap/resend
// handling.
package session

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/config"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
	"github.com/sirupsen/logrus"
)

// State is one node of the session lifecycle.
type State int

const (
	Disconnected State = iota
	LogonSent
	LoggedOn
	LogoutSent
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case LogonSent:
		return "LogonSent"
	case LoggedOn:
		return "LoggedOn"
	case LogoutSent:
		return "LogoutSent"
	default:
		return "Unknown"
	}
}

// Session tracks one FIX connection's protocol state. It carries its
// own mutex because both the client's receive loop (sequence
// acceptance, logon/logout completion) and its send path (logon
// initiation, outgoing sequence allocation) mutate this state
// concurrently — there is no single external lock that dominates both
// call sites.
type Session struct {
	Log *logrus.Logger

	mu sync.Mutex

	state State

	outgoingSeq int
	incomingSeq int

	SenderCompID string
	TargetCompID string

	HeartbeatIntervalSecs int

	cfg *config.Config

	// lastAuthMs is the last millisecond timestamp issued by
	// DeriveCredentials, used to enforce strict monotonicity across
	// repeated logon attempts within the same process.
	lastAuthMs int64
}

// New returns a Session in the Disconnected state with sequence
// numbers reset to their initial values.
func New(cfg *config.Config, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		Log:                   log,
		state:                 Disconnected,
		outgoingSeq:           int(constants.MsgSeqNumInit),
		incomingSeq:           int(constants.MsgSeqNumInit),
		SenderCompID:          cfg.SenderCompID,
		TargetCompID:          cfg.TargetCompID,
		HeartbeatIntervalSecs: cfg.HeartbeatIntervalSecs,
		cfg:                   cfg,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NextOutgoingSeq returns the sequence number to stamp on the next
// outgoing message and advances the internal counter.
func (s *Session) NextOutgoingSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.outgoingSeq
	s.outgoingSeq++
	return n
}

// PeekOutgoingSeq returns the sequence number that will be used next,
// without advancing it.
func (s *Session) PeekOutgoingSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outgoingSeq
}

// IncomingSeq returns the next expected incoming sequence number.
func (s *Session) IncomingSeq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incomingSeq
}

// BeginLogon transitions Disconnected -> LogonSent. Any other starting
// state is a protocol error.
func (s *Session) BeginLogon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Disconnected {
		return errs.New(errs.KindSession, "BeginLogon: invalid transition from %s", s.state)
	}
	s.state = LogonSent
	s.Log.WithField("state", s.state).Debug("session: logon initiated")
	return nil
}

// CompleteLogon transitions LogonSent -> LoggedOn upon receiving the
// counterparty's Logon acknowledgement.
func (s *Session) CompleteLogon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != LogonSent {
		return errs.New(errs.KindSession, "CompleteLogon: invalid transition from %s", s.state)
	}
	s.state = LoggedOn
	s.Log.WithField("state", s.state).Info("session: logged on")
	return nil
}

// BeginLogout transitions LoggedOn -> LogoutSent.
func (s *Session) BeginLogout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != LoggedOn {
		return errs.New(errs.KindSession, "BeginLogout: invalid transition from %s", s.state)
	}
	s.state = LogoutSent
	s.Log.WithField("state", s.state).Debug("session: logout initiated")
	return nil
}

// CompleteLogout transitions any state to Disconnected. Unlike the
// other transitions this one is permissive: a counterparty-initiated
// Logout can arrive while we are LoggedOn or already LogoutSent.
func (s *Session) CompleteLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Disconnected
	s.Log.WithField("state", s.state).Info("session: logged out")
}

// Reset clears sequence numbers and returns to Disconnected, for use
// after a non-resumable disconnect.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Disconnected
	s.outgoingSeq = int(constants.MsgSeqNumInit)
	s.incomingSeq = int(constants.MsgSeqNumInit)
}

// AcceptIncoming validates seq against the expected next incoming
// sequence number. It returns (true, nil) when seq is exactly the
// expected value and advances the counter. It returns (false, nil)
// when seq is greater than expected (a gap — the caller should issue a
// ResendRequest). It returns (false, err) when seq is less than
// expected and PossDupFlag is not set, a hard protocol violation.
func (s *Session) AcceptIncoming(seq int, possDup bool) (accepted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case seq == s.incomingSeq:
		s.incomingSeq++
		return true, nil
	case seq > s.incomingSeq:
		s.Log.WithFields(logrus.Fields{"expected": s.incomingSeq, "got": seq}).Warn("session: sequence gap detected")
		return false, nil
	default:
		if possDup {
			return false, nil
		}
		return false, errs.New(errs.KindProtocol, "incoming seq %d below expected %d without PossDupFlag", seq, s.incomingSeq)
	}
}

// SetIncomingSeq forcibly sets the expected next incoming sequence
// number, for applying a SequenceReset. It does not look at
// GapFillFlag: the client applies both hard resets and gap-fills
// through it.
func (s *Session) SetIncomingSeq(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomingSeq = n
}

// BuildResendRequest constructs a ResendRequest covering [from, to].
// to == 0 means "resend through the current end of stream" (EndSeqNo
// of 0 per FIX convention).
func BuildResendRequest(from, to int) *codec.Message {
	m := codec.NewMessage()
	m.SetInt(constants.TagBeginSeqNo, from)
	m.SetInt(constants.TagEndSeqNo, to)
	return m
}

// BuildGapFill constructs a SequenceReset in gap-fill mode, used to
// skip over admin messages that do not need to be resent verbatim.
func BuildGapFill(newSeqNo int) *codec.Message {
	m := codec.NewMessage()
	m.SetInt(constants.TagNewSeqNo, newSeqNo)
	m.Set(constants.TagGapFillFlag, "Y")
	return m
}

// BuildReject constructs a session-level Reject referencing refSeqNum
// and, optionally, the offending tag and reason.
func BuildReject(refSeqNum int, refTagID int, reason int, text string) *codec.Message {
	m := codec.NewMessage()
	m.SetInt(constants.TagRefSeqNum, refSeqNum)
	if refTagID != 0 {
		m.SetInt(constants.TagRefTagID, refTagID)
	}
	m.SetInt(constants.TagSessionRejectReason, reason)
	if text != "" {
		m.Set(constants.TagText, text)
	}
	return m
}

// Credentials holds the fields a Logon message needs to authenticate
// against Deribit's SHA-256 challenge (spec §5).
type Credentials struct {
	Username string
	RawData  string
	Password string
	AppSig   string // empty unless app credentials are configured
}

// DeriveCredentials computes the Deribit authentication challenge:
//
//	RawData = "<timestamp_ms>.<base64(nonce)>"
//	Password = base64(SHA256(RawData + password))
//	AppSig   = base64(SHA256(RawData + app_secret))   (only if app_id/app_secret set)
//
// The timestamp is guarded to be strictly monotonically increasing
// across calls on the same Session: timestamp = max(nowMs,
// lastAuthMs+1). This prevents two rapid reconnects from producing an
// identical RawData, which Deribit's server treats as a replay.
func (s *Session) DeriveCredentials(nowMs int64, nonce []byte) Credentials {
	ts := nowMs
	if ts <= s.lastAuthMs {
		ts = s.lastAuthMs + 1
	}
	s.lastAuthMs = ts

	rawData := fmt.Sprintf("%d.%s", ts, base64.StdEncoding.EncodeToString(nonce))

	passHash := sha256.Sum256([]byte(rawData + s.cfg.Password))
	creds := Credentials{
		Username: s.cfg.Username,
		RawData:  rawData,
		Password: base64.StdEncoding.EncodeToString(passHash[:]),
	}

	if s.cfg.AppID != "" && s.cfg.AppSecret != "" {
		sigHash := sha256.Sum256([]byte(rawData + s.cfg.AppSecret))
		creds.AppSig = base64.StdEncoding.EncodeToString(sigHash[:])
	}
	return creds
}

// NowMillis is a small seam so tests can avoid real wall-clock
// dependence when driving DeriveCredentials end to end.
func NowMillis(t time.Time) int64 { return t.UnixMilli() }
