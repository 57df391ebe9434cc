// Package client implements the concurrent runtime (C5): a receive
// loop over a transport.Adapter, mutex-serialized sends, and a pub/sub
// correlation registry that turns request/response exchanges into
// plain blocking calls.
package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/config"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
	"github.com/joaquinbejar/deribit-fix/message"
	"github.com/joaquinbejar/deribit-fix/session"
	"github.com/joaquinbejar/deribit-fix/store"
	"github.com/joaquinbejar/deribit-fix/transport"
	"github.com/sirupsen/logrus"
)

// Recorder persists application-level state a Client observes as it
// runs. *store.SQLiteStore satisfies this; tests and callers that
// don't need durability simply never attach one.
type Recorder interface {
	RecordExecutionReport(er *message.ExecutionReport) error
	RecordPosition(p *message.PositionReport) error
	RecordTickBatch(ticks []store.Tick) error
}

// requestBudget is the time allowed for a correlated request/response
// exchange (spec §4.5's ≈30s budget for positions/security-list/
// trade-capture/quote-status requests).
const requestBudget = 30 * time.Second

const subscriptionBuffer = 16

type subscription struct {
	filter func(*codec.Message) bool
	ch     chan *codec.Message
}

// Client owns one FIX session end to end: the session state machine,
// the framed transport, and the outgoing-sequence-serializing mutex.
type Client struct {
	cfg     *config.Config
	sess    *session.Session
	adapter *transport.Adapter
	log     *logrus.Logger

	mu sync.Mutex

	subMu sync.Mutex
	subs  []*subscription

	orders   *store.OrderStore
	recorder Recorder
}

// New wires a Client around an already-connected Transport. It always
// tracks order/quote state in memory via Orders(); attach a Recorder
// with WithRecorder for durable persistence of what it observes.
func New(cfg *config.Config, t transport.Transport, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		cfg:     cfg,
		sess:    session.New(cfg, log),
		adapter: transport.NewAdapter(t),
		log:     log,
		orders:  store.NewOrderStore(),
	}
}

// WithRecorder attaches a Recorder that every ExecutionReport,
// PositionReport, and MarketDataSnapshotFullRefresh observed by Run is
// persisted through. Incremental refreshes are not recorded.
func (c *Client) WithRecorder(r Recorder) *Client {
	c.recorder = r
	return c
}

// Session exposes the underlying session state machine, mostly for
// tests and diagnostics.
func (c *Client) Session() *session.Session { return c.sess }

// Orders exposes the client's in-memory view of order and quote state,
// kept current from every ExecutionReport and MassQuoteAcknowledgement
// observed by Run.
func (c *Client) Orders() *store.OrderStore { return c.orders }

// Run drives the receive loop until ctx is canceled or the transport
// errors. It is meant to be launched in its own goroutine.
func (c *Client) Run(ctx context.Context) error {
	for {
		raw, err := c.adapter.Next(ctx)
		if err != nil {
			return err
		}
		msg, err := codec.Decode(raw)
		if err != nil {
			c.log.WithError(err).Warn("client: dropping malformed message")
			continue
		}
		c.handleIncoming(msg)
	}
}

func (c *Client) handleIncoming(msg *codec.Message) {
	mt, _ := msg.MsgType()
	seq, _ := msg.GetInt(constants.TagMsgSeqNum)
	possDup := false
	if v, ok := msg.Get(constants.TagPossDupFlag); ok {
		possDup = v == constants.FlagYes
	}

	accepted, err := c.sess.AcceptIncoming(seq, possDup)
	if err != nil {
		c.log.WithError(err).Error("client: sequence violation, disconnecting")
		_ = c.adapter.Close()
		return
	}
	if !accepted && mt != constants.MsgTypeSequenceReset {
		if expected := c.sess.IncomingSeq(); seq > expected {
			c.requestResend(expected)
		}
		return
	}

	switch mt {
	case constants.MsgTypeLogon:
		if err := c.sess.CompleteLogon(); err != nil {
			c.log.WithError(err).Warn("client: unexpected Logon")
		}
	case constants.MsgTypeLogout:
		c.sess.CompleteLogout()
	case constants.MsgTypeHeartbeat:
		// liveness only, nothing further to do
	case constants.MsgTypeTestRequest:
		if id, ok := msg.Get(constants.TagTestReqID); ok {
			_ = c.sendMessage((&message.Heartbeat{TestReqID: id}))
		}
	case constants.MsgTypeResendRequest:
		begin, _ := msg.GetInt(constants.TagBeginSeqNo)
		end, _ := msg.GetInt(constants.TagEndSeqNo)
		c.respondToResendRequest(begin, end)
	case constants.MsgTypeSequenceReset:
		if newSeqNo, ok := msg.GetInt(constants.TagNewSeqNo); ok {
			c.sess.SetIncomingSeq(newSeqNo)
		}
	default:
		c.track(mt, msg)
		c.dispatch(msg)
	}
}

// track folds application messages the client can make sense of into
// its in-memory order/quote state and, if a Recorder is attached,
// persists them. Message kinds it does not recognize simply fall
// through to subscribers unchanged.
func (c *Client) track(mt string, msg *codec.Message) {
	switch mt {
	case constants.MsgTypeExecutionReport:
		var zero message.ExecutionReport
		er, err := zero.FromFixMessage(msg)
		if err != nil {
			c.log.WithError(err).Warn("client: failed to parse ExecutionReport")
			return
		}
		c.orders.UpdateFromExecutionReport(er)
		if c.recorder != nil {
			if err := c.recorder.RecordExecutionReport(er); err != nil {
				c.log.WithError(err).Warn("client: failed to record ExecutionReport")
			}
		}
	case constants.MsgTypePositionReport:
		var zero message.PositionReport
		p, err := zero.FromFixMessage(msg)
		if err != nil {
			c.log.WithError(err).Warn("client: failed to parse PositionReport")
			return
		}
		if c.recorder != nil {
			if err := c.recorder.RecordPosition(p); err != nil {
				c.log.WithError(err).Warn("client: failed to record PositionReport")
			}
		}
	case constants.MsgTypeMarketDataSnapshotFull:
		var zero message.MarketDataSnapshotFullRefresh
		s, err := zero.FromFixMessage(msg)
		if err != nil {
			c.log.WithError(err).Warn("client: failed to parse MarketDataSnapshotFullRefresh")
			return
		}
		if c.recorder != nil {
			ticks := make([]store.Tick, 0, len(s.Entries))
			for _, e := range s.Entries {
				ticks = append(ticks, store.Tick{Symbol: s.Symbol, EntryType: string(e.EntryType), Px: e.Px, Size: e.Size, MDReqID: s.MDReqID, IsSnapshot: true})
			}
			if err := c.recorder.RecordTickBatch(ticks); err != nil {
				c.log.WithError(err).Warn("client: failed to record market data snapshot")
			}
		}
	case constants.MsgTypeMassQuoteAcknowledgement:
		var zero message.MassQuoteAcknowledgement
		a, err := zero.FromFixMessage(msg)
		if err != nil {
			c.log.WithError(err).Warn("client: failed to parse MassQuoteAcknowledgement")
			return
		}
		for _, e := range a.Entries {
			c.orders.UpsertQuote(a.QuoteID, e)
		}
	}
}

func (c *Client) requestResend(fromSeq int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rr := session.BuildResendRequest(fromSeq, 0)
	rr.Set(constants.TagMsgType, constants.MsgTypeResendRequest)
	rr.Set(constants.TagSenderCompID, c.sess.SenderCompID)
	rr.Set(constants.TagTargetCompID, c.sess.TargetCompID)
	rr.SetInt(constants.TagMsgSeqNum, c.sess.NextOutgoingSeq())
	if err := c.write(rr); err != nil {
		c.log.WithError(err).Error("client: failed to send ResendRequest")
	}
}

// respondToResendRequest gap-fills the requested range. This
// implementation never holds a replayable message log, so it always
// gap-fills rather than resending verbatim — acceptable because every
// outbound message this client sends is either idempotent
// (ClOrdID-identified) or re-derivable by the caller.
func (c *Client) respondToResendRequest(begin, end int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if end == 0 {
		end = c.sess.PeekOutgoingSeq() - 1
	}
	gf := session.BuildGapFill(end + 1)
	gf.Set(constants.TagMsgType, constants.MsgTypeSequenceReset)
	gf.Set(constants.TagSenderCompID, c.sess.SenderCompID)
	gf.Set(constants.TagTargetCompID, c.sess.TargetCompID)
	gf.SetInt(constants.TagMsgSeqNum, begin)
	if err := c.write(gf); err != nil {
		c.log.WithError(err).Error("client: failed to send SequenceReset gap-fill")
	}
}

func (c *Client) dispatch(msg *codec.Message) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, s := range c.subs {
		if !s.filter(msg) {
			continue
		}
		select {
		case s.ch <- msg:
		default:
			c.log.Warn("client: subscriber channel full, dropping correlated message")
		}
	}
}

// subscribe registers filter against every future inbound application
// message and returns a channel of matches plus a cancel function that
// must be called to release the subscription.
func (c *Client) subscribe(filter func(*codec.Message) bool) (chan *codec.Message, func()) {
	sub := &subscription{filter: filter, ch: make(chan *codec.Message, subscriptionBuffer)}
	c.subMu.Lock()
	c.subs = append(c.subs, sub)
	c.subMu.Unlock()

	cancel := func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		for i, s := range c.subs {
			if s == sub {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
	return sub.ch, cancel
}

type toFixMessager interface {
	ToFixMessage(sender, target string, seq int) (*codec.Message, error)
}

func (c *Client) write(m *codec.Message) error {
	wire, err := codec.Encode(m, nil)
	if err != nil {
		return err
	}
	return c.adapter.Write(wire)
}

// sendMessage builds, encodes, and writes one outgoing message under
// the client's serialization mutex, advancing the session's outgoing
// sequence number on success.
func (c *Client) sendMessage(mb toFixMessager) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := c.sess.PeekOutgoingSeq()
	m, err := mb.ToFixMessage(c.sess.SenderCompID, c.sess.TargetCompID, seq)
	if err != nil {
		return err
	}
	if err := c.write(m); err != nil {
		return err
	}
	c.sess.NextOutgoingSeq()
	return nil
}

// Logon authenticates against the configured session, deriving
// credentials from a freshly generated nonce.
func (c *Client) Logon(ctx context.Context) error {
	if err := c.sess.BeginLogon(); err != nil {
		return err
	}
	nonce := uuid.New()
	creds := c.sess.DeriveCredentials(session.NowMillis(timeNow()), nonce[:])

	l := message.NewLogon(creds.Username, creds.RawData, creds.Password, c.cfg.HeartbeatIntervalSecs)
	if c.cfg.CancelOnDisconnect {
		l.WithCancelOnDisconnect(true)
	}
	if creds.AppSig != "" {
		l.WithAppCredentials(c.cfg.AppID, creds.AppSig)
	}
	l.UseWordsafeTags = c.cfg.UseWordsafeTags
	l.DeribitSequential = c.cfg.DeribitSequential
	l.UnsubscribeExecutionReports = c.cfg.UnsubscribeExecutionReports
	l.ConnectionOnlyExecutionReports = c.cfg.ConnectionOnlyExecutionReports
	l.ReportFillsAsExecReports = c.cfg.ReportFillsAsExecReports
	l.DisplayIncrementSteps = c.cfg.DisplayIncrementSteps
	return c.sendMessage(l)
}

// Logout requests session termination.
func (c *Client) Logout(ctx context.Context, text string) error {
	if err := c.sess.BeginLogout(); err != nil {
		return err
	}
	return c.sendMessage(message.NewLogout().WithText(text))
}

// SendNewOrderSingle submits an order.
func (c *Client) SendNewOrderSingle(o *message.NewOrderSingle) error {
	return c.sendMessage(o)
}

// SendOrderCancelRequest cancels an order.
func (c *Client) SendOrderCancelRequest(r *message.OrderCancelRequest) error {
	return c.sendMessage(r)
}

// SendOrderCancelReplaceRequest amends an order.
func (c *Client) SendOrderCancelReplaceRequest(r *message.OrderCancelReplaceRequest) error {
	return c.sendMessage(r)
}

// awaitCorrelated sends req, then waits up to requestBudget for the
// first inbound application message matching filter.
func (c *Client) awaitCorrelated(ctx context.Context, req toFixMessager, filter func(*codec.Message) bool) (*codec.Message, error) {
	ch, cancel := c.subscribe(filter)
	defer cancel()

	if err := c.sendMessage(req); err != nil {
		return nil, err
	}

	ctx, stop := context.WithTimeout(ctx, requestBudget)
	defer stop()

	select {
	case msg := <-ch:
		return msg, nil
	case <-ctx.Done():
		return nil, errs.Wrap(errs.KindTimeout, ctx.Err(), "request timed out waiting for correlated response")
	}
}

// RequestPositions requests a position snapshot and waits for the
// first PositionReport.
func (c *Client) RequestPositions(ctx context.Context, reqID string) (*message.PositionReport, error) {
	req := message.NewRequestForPositions(reqID)
	msg, err := c.awaitCorrelated(ctx, req, func(m *codec.Message) bool {
		mt, _ := m.MsgType()
		return mt == constants.MsgTypePositionReport
	})
	if err != nil {
		return nil, err
	}
	var zero message.PositionReport
	return zero.FromFixMessage(msg)
}

// RequestSecurityList requests the tradable instrument set.
func (c *Client) RequestSecurityList(ctx context.Context, reqID string) (*message.SecurityList, error) {
	req := message.NewSecurityListRequest(reqID)
	msg, err := c.awaitCorrelated(ctx, req, func(m *codec.Message) bool {
		mt, _ := m.MsgType()
		return mt == constants.MsgTypeSecurityList
	})
	if err != nil {
		return nil, err
	}
	var zero message.SecurityList
	return zero.FromFixMessage(msg)
}

// RequestTradeCaptureReport requests trade history and waits for the
// first TradeCaptureReport.
func (c *Client) RequestTradeCaptureReport(ctx context.Context, reqID string) (*message.TradeCaptureReport, error) {
	req := message.NewTradeCaptureReportRequest(reqID)
	msg, err := c.awaitCorrelated(ctx, req, func(m *codec.Message) bool {
		mt, _ := m.MsgType()
		return mt == constants.MsgTypeTradeCaptureReport
	})
	if err != nil {
		return nil, err
	}
	var zero message.TradeCaptureReport
	return zero.FromFixMessage(msg)
}

// RequestQuoteStatus waits for the next QuoteStatusReport matching
// quoteID.
func (c *Client) RequestQuoteStatus(ctx context.Context, quoteID string) (*message.QuoteStatusReport, error) {
	msg, err := c.awaitCorrelated(ctx, message.NewQuoteStatusRequest(quoteID), func(m *codec.Message) bool {
		mt, _ := m.MsgType()
		if mt != constants.MsgTypeQuoteStatusReport {
			return false
		}
		id, _ := m.Get(constants.TagQuoteID)
		return id == quoteID
	})
	if err != nil {
		return nil, err
	}
	var zero message.QuoteStatusReport
	return zero.FromFixMessage(msg)
}

// NewCorrelationID returns a fresh request identifier for callers that
// do not supply their own (MDReqID, PosReqID, ClOrdID, and similar).
func NewCorrelationID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

// timeNow is a seam so tests could substitute a fixed clock if a
// future change threads one through Client; today it is a thin alias
// over time.Now to keep Logon's call site uncluttered.
func timeNow() time.Time { return time.Now() }
