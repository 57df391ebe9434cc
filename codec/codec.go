package codec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// Clock returns the current instant; Encode takes one as a parameter
// so tests can inject a fixed time instead of depending on wall time.
type Clock func() time.Time

// RealClock is the default Clock, backed by time.Now.
func RealClock() time.Time { return time.Now() }

const (
	tagBeginString = constants.TagBeginString
	tagBodyLength  = constants.TagBodyLength
	tagCheckSum    = constants.TagCheckSum
	tagSendingTime = constants.TagSendingTime
)

// Encode renders msg to its canonical wire form.
//
// Required header fields (MsgType, SenderCompID, TargetCompID,
// MsgSeqNum) must already be set; Encode fails with
// errs.KindMessageConstruction otherwise. If SendingTime (tag 52) is
// absent it is set to now(), formatted to millisecond precision.
//
// Fields other than BeginString(8), BodyLength(9), and CheckSum(10)
// are emitted in ascending tag order — a deliberate canonicalization
// that makes CheckSum reproducible across implementations. Repeated
// tags within a repeating group keep their relative insertion order
// (Go's sort.SliceStable preserves it for equal keys).
func Encode(msg *Message, now Clock) ([]byte, error) {
	if now == nil {
		now = RealClock
	}
	for _, required := range []int{constants.TagMsgType, constants.TagSenderCompID, constants.TagTargetCompID, constants.TagMsgSeqNum} {
		if !msg.Has(required) {
			return nil, errs.New(errs.KindMessageConstruction, "missing required header tag %d", required)
		}
	}

	work := msg.Clone()
	if !work.Has(tagSendingTime) {
		work.Set(tagSendingTime, now().UTC().Format(constants.FixTimeLayout))
	}

	body := make([]Field, 0, len(work.Fields))
	for _, f := range work.Fields {
		if f.Tag == tagBeginString || f.Tag == tagBodyLength || f.Tag == tagCheckSum {
			continue
		}
		body = append(body, f)
	}
	sort.SliceStable(body, func(i, j int) bool { return body[i].Tag < body[j].Tag })

	var bodyBuf strings.Builder
	for _, f := range body {
		bodyBuf.WriteString(strconv.Itoa(f.Tag))
		bodyBuf.WriteByte('=')
		bodyBuf.WriteString(f.Value)
		bodyBuf.WriteByte(constants.SOH)
	}
	bodyBytes := bodyBuf.String()

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%d=%s", tagBeginString, constants.BeginString))
	out.WriteByte(constants.SOH)
	out.WriteString(fmt.Sprintf("%d=%d", tagBodyLength, len(bodyBytes)))
	out.WriteByte(constants.SOH)
	out.WriteString(bodyBytes)

	preChecksum := out.String()
	sum := checksum(preChecksum)

	var final strings.Builder
	final.WriteString(preChecksum)
	final.WriteString(fmt.Sprintf("%d=%03d", tagCheckSum, sum))
	final.WriteByte(constants.SOH)

	return []byte(final.String()), nil
}

// checksum is the unsigned 8-bit sum of all bytes in s modulo 256.
func checksum(s string) int {
	var sum int
	for i := 0; i < len(s); i++ {
		sum += int(s[i])
	}
	return sum % 256
}

// Decode parses exactly one framed FIX message from b. It does not
// re-verify BodyLength or CheckSum — the transport layer already
// delivered a framed message, and rejecting here would desynchronize
// the session (spec §4.1). Use DecodeStrict to additionally verify.
func Decode(b []byte) (*Message, error) {
	s := string(b)
	s = strings.TrimSuffix(s, string(constants.SOH))
	if s == "" {
		return nil, errs.New(errs.KindMessageParsing, "empty message")
	}
	segments := strings.Split(s, string(constants.SOH))
	msg := NewMessage()
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq <= 0 {
			return nil, errs.New(errs.KindMessageParsing, "malformed field %q", seg)
		}
		tagStr, value := seg[:eq], seg[eq+1:]
		tag, err := strconv.Atoi(tagStr)
		if err != nil || tag <= 0 {
			return nil, errs.Wrap(errs.KindMessageParsing, err, "non-numeric or invalid tag %q", tagStr)
		}
		msg.Add(tag, value)
	}
	return msg, nil
}

// DecodeStrict behaves like Decode but additionally recomputes
// BodyLength and CheckSum and fails with errs.KindProtocol on
// mismatch. This is the opt-in strict path noted in spec §4.1/§9 —
// the default Decode never rejects a message on checksum mismatch so
// a single bad byte on the wire does not tear down the session.
func DecodeStrict(b []byte) (*Message, error) {
	msg, err := Decode(b)
	if err != nil {
		return nil, err
	}
	if err := verifyFraming(b, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func verifyFraming(raw []byte, msg *Message) error {
	bodyLenStr, ok := msg.Get(tagBodyLength)
	if !ok {
		return errs.New(errs.KindProtocol, "message has no BodyLength field")
	}
	wantLen, err := strconv.Atoi(bodyLenStr)
	if err != nil {
		return errs.Wrap(errs.KindProtocol, err, "non-numeric BodyLength")
	}

	checksumStr, ok := msg.Get(tagCheckSum)
	if !ok {
		return errs.New(errs.KindProtocol, "message has no CheckSum field")
	}
	wantSum, err := strconv.Atoi(checksumStr)
	if err != nil {
		return errs.Wrap(errs.KindProtocol, err, "non-numeric CheckSum")
	}

	s := string(raw)
	idx := strings.Index(s, fmt.Sprintf("%d=", tagCheckSum))
	if idx < 0 {
		return errs.New(errs.KindProtocol, "message has no CheckSum field on the wire")
	}
	preChecksum := s[:idx]
	gotSum := checksum(preChecksum)
	if gotSum != wantSum {
		return errs.New(errs.KindProtocol, "checksum mismatch: wire=%d computed=%d", wantSum, gotSum)
	}

	bodyStart := strings.IndexByte(s, constants.SOH)
	if bodyStart < 0 {
		return errs.New(errs.KindProtocol, "message missing BeginString terminator")
	}
	bodyStart++
	secondSOH := strings.IndexByte(s[bodyStart:], constants.SOH)
	if secondSOH < 0 {
		return errs.New(errs.KindProtocol, "message missing BodyLength terminator")
	}
	bodyFieldsStart := bodyStart + secondSOH + 1
	gotLen := idx - bodyFieldsStart
	if gotLen != wantLen {
		return errs.New(errs.KindProtocol, "body length mismatch: wire=%d computed=%d", wantLen, gotLen)
	}
	return nil
}
