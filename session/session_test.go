package session

import (
	"testing"
	"time"

	"github.com/joaquinbejar/deribit-fix/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultTestConfig()
	cfg.Username = "user"
	cfg.Password = "secret"
	return cfg
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(nopWriter{})
	return l
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLifecycleTransitions(t *testing.T) {
	s := New(testConfig(), discardLogger())
	assert.Equal(t, Disconnected, s.State())

	require.NoError(t, s.BeginLogon())
	assert.Equal(t, LogonSent, s.State())

	require.NoError(t, s.CompleteLogon())
	assert.Equal(t, LoggedOn, s.State())

	require.NoError(t, s.BeginLogout())
	assert.Equal(t, LogoutSent, s.State())

	s.CompleteLogout()
	assert.Equal(t, Disconnected, s.State())
}

func TestLifecycleRejectsInvalidTransitions(t *testing.T) {
	s := New(testConfig(), discardLogger())
	require.Error(t, s.CompleteLogon())
	require.Error(t, s.BeginLogout())

	require.NoError(t, s.BeginLogon())
	require.Error(t, s.BeginLogon())
}

func TestSequenceDiscipline(t *testing.T) {
	s := New(testConfig(), discardLogger())
	assert.Equal(t, 1, s.NextOutgoingSeq())
	assert.Equal(t, 2, s.NextOutgoingSeq())
	assert.Equal(t, 3, s.PeekOutgoingSeq())

	accepted, err := s.AcceptIncoming(1, false)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, 2, s.IncomingSeq())
}

func TestAcceptIncomingDetectsGap(t *testing.T) {
	s := New(testConfig(), discardLogger())
	accepted, err := s.AcceptIncoming(5, false)
	require.NoError(t, err)
	assert.False(t, accepted, "a seq ahead of expected is a gap, not an error")
	assert.Equal(t, 1, s.IncomingSeq(), "gap must not advance the counter")
}

func TestAcceptIncomingRejectsStaleWithoutPossDup(t *testing.T) {
	s := New(testConfig(), discardLogger())
	_, _ = s.AcceptIncoming(1, false)
	_, err := s.AcceptIncoming(1, false)
	require.Error(t, err)
}

func TestAcceptIncomingTogeratesStaleWithPossDup(t *testing.T) {
	s := New(testConfig(), discardLogger())
	_, _ = s.AcceptIncoming(1, false)
	accepted, err := s.AcceptIncoming(1, true)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestDeriveCredentialsDeterministic(t *testing.T) {
	s := New(testConfig(), discardLogger())
	nonce := []byte("fixed-nonce")
	c1 := s.DeriveCredentials(1000, nonce)
	assert.Equal(t, "user", c1.Username)
	assert.Equal(t, "1000.Zml4ZWQtbm9uY2U=", c1.RawData)
	assert.NotEmpty(t, c1.Password)
	assert.Empty(t, c1.AppSig, "no AppSig without app credentials configured")
}

func TestDeriveCredentialsMonotonicTimestamp(t *testing.T) {
	s := New(testConfig(), discardLogger())
	nonce := []byte("n")

	c1 := s.DeriveCredentials(1000, nonce)
	c2 := s.DeriveCredentials(1000, nonce) // same wall time, must still advance
	assert.NotEqual(t, c1.RawData, c2.RawData, "RawData must differ across calls sharing a timestamp")

	c3 := s.DeriveCredentials(500, nonce) // time went backwards
	assert.NotEqual(t, c2.RawData, c3.RawData)
}

func TestDeriveCredentialsIncludesAppSigWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AppID = "app-id"
	cfg.AppSecret = "app-secret"
	s := New(cfg, discardLogger())

	c := s.DeriveCredentials(1000, []byte("n"))
	assert.NotEmpty(t, c.AppSig)
}

func TestNowMillis(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.UnixMilli(), NowMillis(ts))
}

func TestSetIncomingSeq(t *testing.T) {
	s := New(testConfig(), discardLogger())
	s.SetIncomingSeq(50)
	assert.Equal(t, 50, s.IncomingSeq())
}

func TestBuildResendRequest(t *testing.T) {
	m := BuildResendRequest(5, 0)
	v, ok := m.GetInt(7)
	require.True(t, ok)
	assert.Equal(t, 5, v)
	v, ok = m.GetInt(16)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestBuildGapFill(t *testing.T) {
	m := BuildGapFill(42)
	v, _ := m.GetInt(36)
	assert.Equal(t, 42, v)
	flag, _ := m.Get(123)
	assert.Equal(t, "Y", flag)
}

func TestBuildReject(t *testing.T) {
	m := BuildReject(3, 55, 5, "value is incorrect")
	refSeq, _ := m.GetInt(45)
	assert.Equal(t, 3, refSeq)
	refTag, _ := m.GetInt(371)
	assert.Equal(t, 55, refTag)
	reason, _ := m.GetInt(373)
	assert.Equal(t, 5, reason)
	text, _ := m.Get(58)
	assert.Equal(t, "value is incorrect", text)
}
