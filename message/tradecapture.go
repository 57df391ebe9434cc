package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// TradeCaptureReportRequest asks for historical or real-time trade
// reports, scoped by symbol and/or trade type.
type TradeCaptureReportRequest struct {
	TradeRequestID   string
	TradeRequestType string
	Symbol           string
}

func NewTradeCaptureReportRequest(reqID string) *TradeCaptureReportRequest {
	return &TradeCaptureReportRequest{TradeRequestID: reqID}
}

func (r *TradeCaptureReportRequest) WithSymbol(symbol string) *TradeCaptureReportRequest {
	r.Symbol = symbol
	return r
}

func (r *TradeCaptureReportRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.TradeRequestID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "TradeCaptureReportRequest requires TradeRequestID")
	}
	m := header(constants.MsgTypeTradeCaptureReportRequest, sender, target, seq)
	m.Set(constants.TagTradeRequestID, r.TradeRequestID)
	if r.TradeRequestType != "" {
		m.Set(constants.TagTradeRequestType, r.TradeRequestType)
	}
	if r.Symbol != "" {
		m.Set(constants.TagSymbol, r.Symbol)
	}
	return m, nil
}

// TradeCaptureReportRequestAck acknowledges a
// TradeCaptureReportRequest before reports begin streaming.
type TradeCaptureReportRequestAck struct {
	TradeRequestID string
	Result         string
}

func (*TradeCaptureReportRequestAck) FromFixMessage(m *codec.Message) (*TradeCaptureReportRequestAck, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeTradeCaptureReportReqAck {
		return nil, errs.New(errs.KindMessageParsing, "not a TradeCaptureReportRequestAck: MsgType=%q", mt)
	}
	a := &TradeCaptureReportRequestAck{}
	a.TradeRequestID, _ = m.Get(constants.TagTradeRequestID)
	a.Result, _ = m.Get(constants.TagTradeRequestType)
	return a, nil
}

// TradeCaptureReport is one executed trade, server-originated.
type TradeCaptureReport struct {
	TradeReportID       string
	Symbol              string
	LastPx              string
	LastQty             string
	TrdType              string
	TotNumTradeReports  int
}

func (*TradeCaptureReport) FromFixMessage(m *codec.Message) (*TradeCaptureReport, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeTradeCaptureReport {
		return nil, errs.New(errs.KindMessageParsing, "not a TradeCaptureReport: MsgType=%q", mt)
	}
	t := &TradeCaptureReport{}
	t.TradeReportID, _ = m.Get(constants.TagTradeReportID)
	t.Symbol, _ = m.Get(constants.TagSymbol)
	t.LastPx, _ = m.Get(constants.TagLastPx)
	t.LastQty, _ = m.Get(constants.TagLastQty)
	t.TrdType, _ = m.Get(constants.TagTrdType)
	if n, ok := m.GetInt(constants.TagTotNumTradeReports); ok {
		t.TotNumTradeReports = n
	}
	return t, nil
}
