package client

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/config"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/message"
	"github.com/joaquinbejar/deribit-fix/session"
	"github.com/joaquinbejar/deribit-fix/store"
	"github.com/sirupsen/logrus"
)

// pipeTransport is an in-memory transport.Transport double: writes go
// to an internal buffer tests can inspect, reads are served from a
// channel tests feed explicitly.
type pipeTransport struct {
	toRead  chan []byte
	pending []byte
	written bytes.Buffer
}

func newPipeTransport() *pipeTransport {
	return &pipeTransport{toRead: make(chan []byte, 16)}
}

func (p *pipeTransport) feedMessage(m *codec.Message) {
	wire, err := codec.Encode(m, nil)
	if err != nil {
		panic(err)
	}
	p.toRead <- wire
}

func (p *pipeTransport) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		chunk, ok := <-p.toRead
		if !ok {
			return 0, io.EOF
		}
		p.pending = chunk
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

func (p *pipeTransport) Write(b []byte) (int, error) { return p.written.Write(b) }
func (p *pipeTransport) Flush() error                 { return nil }
func (p *pipeTransport) Close() error                 { close(p.toRead); return nil }

func testConfig() *config.Config {
	cfg := config.DefaultTestConfig()
	cfg.Username = "user"
	cfg.Password = "secret"
	return cfg
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestClientLogonTransitionsSession(t *testing.T) {
	pt := newPipeTransport()
	c := New(testConfig(), pt, discardLogger())

	if err := c.Logon(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Session().State() != session.LogonSent {
		t.Errorf("state = %v, want LogonSent", c.Session().State())
	}
	if pt.written.Len() == 0 {
		t.Error("expected a Logon message to be written")
	}
}

func TestClientCompletesLogonOnServerAck(t *testing.T) {
	pt := newPipeTransport()
	c := New(testConfig(), pt, discardLogger())

	if err := c.Logon(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ack := codec.NewMessage()
	ack.Set(constants.TagMsgType, constants.MsgTypeLogon)
	ack.Set(constants.TagSenderCompID, "DERIBITSERVER")
	ack.Set(constants.TagTargetCompID, "CLIENT")
	ack.SetInt(constants.TagMsgSeqNum, 1)
	pt.feedMessage(ack)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = c.Run(ctx)
	}()
	defer cancel()

	deadline := time.After(time.Second)
	for c.Session().State() != session.LoggedOn {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for LoggedOn, state = %v", c.Session().State())
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestClientHeartbeatsOnTestRequest(t *testing.T) {
	pt := newPipeTransport()
	c := New(testConfig(), pt, discardLogger())

	tr := codec.NewMessage()
	tr.Set(constants.TagMsgType, constants.MsgTypeTestRequest)
	tr.Set(constants.TagSenderCompID, "DERIBITSERVER")
	tr.Set(constants.TagTargetCompID, "CLIENT")
	tr.SetInt(constants.TagMsgSeqNum, 1)
	tr.Set(constants.TagTestReqID, "PING1")
	pt.feedMessage(tr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = c.Run(ctx) }()
	defer cancel()

	deadline := time.After(time.Second)
	for pt.written.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for Heartbeat response")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	wire, err := codec.Decode(pt.written.Bytes())
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if id, _ := wire.Get(constants.TagTestReqID); id != "PING1" {
		t.Errorf("TestReqID echo = %q, want PING1", id)
	}
}

func TestRequestPositionsCorrelatesResponse(t *testing.T) {
	pt := newPipeTransport()
	c := New(testConfig(), pt, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = c.Run(ctx) }()
	defer cancel()

	go func() {
		// give RequestPositions a moment to subscribe and send
		time.Sleep(20 * time.Millisecond)
		report := codec.NewMessage()
		report.Set(constants.TagMsgType, constants.MsgTypePositionReport)
		report.Set(constants.TagSenderCompID, "DERIBITSERVER")
		report.Set(constants.TagTargetCompID, "CLIENT")
		report.SetInt(constants.TagMsgSeqNum, 1)
		report.Set(constants.TagPosReqID, "PR1")
		report.Set(constants.TagSymbol, "BTC-PERPETUAL")
		report.Set(constants.TagPositionQty, "1.5")
		pt.feedMessage(report)
	}()

	reqCtx, reqCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer reqCancel()

	rep, err := c.RequestPositions(reqCtx, "PR1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Symbol != "BTC-PERPETUAL" || rep.PositionQty != "1.5" {
		t.Errorf("rep = %+v", rep)
	}
}

type fakeRecorder struct {
	executions []string
	positions  []string
	tickBatch  int
}

func (f *fakeRecorder) RecordExecutionReport(er *message.ExecutionReport) error {
	f.executions = append(f.executions, er.ClOrdID)
	return nil
}

func (f *fakeRecorder) RecordPosition(p *message.PositionReport) error {
	f.positions = append(f.positions, p.Symbol)
	return nil
}

func (f *fakeRecorder) RecordTickBatch(ticks []store.Tick) error {
	f.tickBatch += len(ticks)
	return nil
}

func TestClientTracksExecutionReportsAndRecords(t *testing.T) {
	pt := newPipeTransport()
	rec := &fakeRecorder{}
	c := New(testConfig(), pt, discardLogger()).WithRecorder(rec)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = c.Run(ctx) }()
	defer cancel()

	er := codec.NewMessage()
	er.Set(constants.TagMsgType, constants.MsgTypeExecutionReport)
	er.Set(constants.TagSenderCompID, "DERIBITSERVER")
	er.Set(constants.TagTargetCompID, "CLIENT")
	er.SetInt(constants.TagMsgSeqNum, 1)
	er.Set(constants.TagClOrdID, "C1")
	er.Set(constants.TagOrderID, "O1")
	er.Set(constants.TagSymbol, "BTC-PERPETUAL")
	pt.feedMessage(er)

	deadline := time.After(time.Second)
	for c.Orders().GetOrder("C1") == nil {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for order to be tracked")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if len(rec.executions) != 1 || rec.executions[0] != "C1" {
		t.Errorf("rec.executions = %+v", rec.executions)
	}
}

func TestNewCorrelationIDHasPrefix(t *testing.T) {
	id := NewCorrelationID("pos")
	if len(id) <= len("pos-") {
		t.Errorf("id = %q, too short", id)
	}
}
