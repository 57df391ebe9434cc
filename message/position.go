package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// RequestForPositions asks for a snapshot of current positions,
// optionally scoped to a single symbol.
type RequestForPositions struct {
	PosReqID string
	PosReqType string
	Symbol     string
	Currency   string
}

func NewRequestForPositions(reqID string) *RequestForPositions {
	return &RequestForPositions{PosReqID: reqID}
}

func (r *RequestForPositions) WithSymbol(symbol string) *RequestForPositions {
	r.Symbol = symbol
	return r
}

func (r *RequestForPositions) WithCurrency(currency string) *RequestForPositions {
	r.Currency = currency
	return r
}

func (r *RequestForPositions) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.PosReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "RequestForPositions requires PosReqID")
	}
	m := header(constants.MsgTypeRequestForPositions, sender, target, seq)
	m.Set(constants.TagPosReqID, r.PosReqID)
	if r.Symbol != "" {
		m.Set(constants.TagSymbol, r.Symbol)
	}
	if r.Currency != "" {
		m.Set(constants.TagCurrency, r.Currency)
	}
	return m, nil
}

// PositionReport is one position snapshot row, server-originated.
type PositionReport struct {
	PosReqID           string
	PosMaintRptID      string
	Symbol             string
	PositionQty        string
	AvgPx              string
	UnrealizedPnL      string
	RealizedPnL        string
	TotalNumPosReports int
	PosReqResult       string
	PosReqStatus       string
}

// Position is the scenario-6 projection of a PositionReport onto the
// fields a portfolio consumer needs, dropping the request/report
// bookkeeping (PosReqID, PosMaintRptID, pagination) to leave the net
// economic state of one instrument.
type Position struct {
	Symbol        string
	Quantity      string
	AveragePrice  string
	UnrealizedPnL string
	RealizedPnL   string
}

// ToPosition projects a PositionReport down to its economic fields.
func (p *PositionReport) ToPosition() Position {
	return Position{
		Symbol:        p.Symbol,
		Quantity:      p.PositionQty,
		AveragePrice:  p.AvgPx,
		UnrealizedPnL: p.UnrealizedPnL,
		RealizedPnL:   p.RealizedPnL,
	}
}

// FromFixMessage parses a server-originated PositionReport (spec §8
// scenario 6: the decode side of the encode(decode(m)) round trip).
func (*PositionReport) FromFixMessage(m *codec.Message) (*PositionReport, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypePositionReport {
		return nil, errs.New(errs.KindMessageParsing, "not a PositionReport: MsgType=%q", mt)
	}
	p := &PositionReport{}
	p.PosReqID, _ = m.Get(constants.TagPosReqID)
	p.PosMaintRptID, _ = m.Get(constants.TagPosMaintRptID)
	p.Symbol, _ = m.Get(constants.TagSymbol)
	p.PositionQty, _ = m.Get(constants.TagPositionQty)
	p.AvgPx, _ = m.Get(constants.TagAvgPx)
	p.UnrealizedPnL, _ = m.Get(constants.TagUnrealizedPnL)
	p.RealizedPnL, _ = m.Get(constants.TagRealizedPnL)
	if n, ok := m.GetInt(constants.TagTotalNumPosReports); ok {
		p.TotalNumPosReports = n
	}
	p.PosReqResult, _ = m.Get(constants.TagPosReqResult)
	p.PosReqStatus, _ = m.Get(constants.TagPosReqStatus)
	return p, nil
}

// ToFixMessage re-encodes a PositionReport — used by the round-trip
// test and by any component that needs to relay a parsed report
// (e.g. a recorder) rather than only consume it.
func (p *PositionReport) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypePositionReport, sender, target, seq)
	m.Set(constants.TagPosReqID, p.PosReqID)
	m.Set(constants.TagPosMaintRptID, p.PosMaintRptID)
	m.Set(constants.TagSymbol, p.Symbol)
	m.Set(constants.TagPositionQty, p.PositionQty)
	if p.AvgPx != "" {
		m.Set(constants.TagAvgPx, p.AvgPx)
	}
	if p.UnrealizedPnL != "" {
		m.Set(constants.TagUnrealizedPnL, p.UnrealizedPnL)
	}
	if p.RealizedPnL != "" {
		m.Set(constants.TagRealizedPnL, p.RealizedPnL)
	}
	m.SetInt(constants.TagTotalNumPosReports, p.TotalNumPosReports)
	if p.PosReqResult != "" {
		m.Set(constants.TagPosReqResult, p.PosReqResult)
	}
	if p.PosReqStatus != "" {
		m.Set(constants.TagPosReqStatus, p.PosReqStatus)
	}
	return m, nil
}
