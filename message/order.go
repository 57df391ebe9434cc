package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// NewOrderSingle submits a new order. Market and limit variants are
// produced by the two constructors; the With* chain adds the optional
// fields the reference builder exposes (label, time-in-force,
// post-only/reduce-only, stop price, display quantity, quantity type,
// MM-protection opt-out).
type NewOrderSingle struct {
	ClOrdID       string
	Symbol        string
	Side          Side
	OrderQty      string
	OrdType       OrdType
	Price         string // empty for market orders
	Label         string
	TimeInForce   TimeInForce
	PostOnly      bool
	ReduceOnly    bool
	StopPx        string
	DisplayQty    string
	QtyType       string
	MMProtection  *bool
	CondTrigger   string
}

func NewMarketOrder(clOrdID, symbol string, side Side, qty string) *NewOrderSingle {
	return &NewOrderSingle{ClOrdID: clOrdID, Symbol: symbol, Side: side, OrderQty: qty, OrdType: OrdTypeMarket}
}

func NewLimitOrder(clOrdID, symbol string, side Side, qty, price string) *NewOrderSingle {
	return &NewOrderSingle{ClOrdID: clOrdID, Symbol: symbol, Side: side, OrderQty: qty, OrdType: OrdTypeLimit, Price: price}
}

func (o *NewOrderSingle) WithLabel(label string) *NewOrderSingle {
	o.Label = label
	return o
}

func (o *NewOrderSingle) WithTimeInForce(tif TimeInForce) *NewOrderSingle {
	o.TimeInForce = tif
	return o
}

func (o *NewOrderSingle) WithPostOnly() *NewOrderSingle {
	o.PostOnly = true
	return o
}

func (o *NewOrderSingle) WithReduceOnly() *NewOrderSingle {
	o.ReduceOnly = true
	return o
}

func (o *NewOrderSingle) WithStopPrice(stopPx string) *NewOrderSingle {
	o.StopPx = stopPx
	return o
}

func (o *NewOrderSingle) WithDisplayQty(qty string) *NewOrderSingle {
	o.DisplayQty = qty
	return o
}

func (o *NewOrderSingle) WithQtyType(qtyType string) *NewOrderSingle {
	o.QtyType = qtyType
	return o
}

func (o *NewOrderSingle) WithMMProtection(v bool) *NewOrderSingle {
	o.MMProtection = &v
	return o
}

func (o *NewOrderSingle) WithCondTrigger(trigger string) *NewOrderSingle {
	o.CondTrigger = trigger
	return o
}

func (o *NewOrderSingle) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if o.ClOrdID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "NewOrderSingle requires ClOrdID")
	}
	if o.Symbol == "" {
		return nil, errs.New(errs.KindMessageConstruction, "NewOrderSingle requires Symbol")
	}
	if o.OrdType == OrdTypeLimit && o.Price == "" {
		return nil, errs.New(errs.KindMessageConstruction, "limit orders require Price")
	}

	m := header(constants.MsgTypeNewOrderSingle, sender, target, seq)
	m.Set(constants.TagClOrdID, o.ClOrdID)
	m.Set(constants.TagSymbol, o.Symbol)
	m.Set(constants.TagSide, string(o.Side))
	m.Set(constants.TagOrderQty, o.OrderQty)
	m.Set(constants.TagOrdType, string(o.OrdType))

	if o.Price != "" {
		m.Set(constants.TagPrice, o.Price)
	}
	if o.Label != "" {
		m.Set(constants.TagDeribitLabel, o.Label)
	}
	if o.TimeInForce != "" {
		m.Set(constants.TagTimeInForce, string(o.TimeInForce))
	}

	switch {
	case o.PostOnly && o.ReduceOnly:
		// a single ExecInst value carries both instructions rather than
		// repeating tag 18 once per flag.
		m.Set(constants.TagExecInst, constants.ExecInstPostOnly+constants.ExecInstReduceOnly)
	case o.PostOnly:
		m.Set(constants.TagExecInst, constants.ExecInstPostOnly)
	case o.ReduceOnly:
		m.Set(constants.TagExecInst, constants.ExecInstReduceOnly)
	}

	if o.StopPx != "" {
		m.Set(constants.TagStopPx, o.StopPx)
	}
	if o.DisplayQty != "" {
		m.Set(constants.TagDisplayQty, o.DisplayQty)
	}
	if o.QtyType != "" {
		m.Set(constants.TagQtyType, o.QtyType)
	}
	setOptionalBool(m, constants.TagDeribitMMProtection, o.MMProtection)
	if o.CondTrigger != "" {
		m.Set(constants.TagDeribitCondTrigger, o.CondTrigger)
	}
	return m, nil
}

// OrderCancelRequest cancels a working order. At least one of ClOrdID,
// OrigClOrdID, or DeribitLabel must identify the order.
type OrderCancelRequest struct {
	ClOrdID     string
	OrigClOrdID string
	Label       string
	Symbol      string
	Side        Side
}

func NewOrderCancelRequest(clOrdID, origClOrdID string) *OrderCancelRequest {
	return &OrderCancelRequest{ClOrdID: clOrdID, OrigClOrdID: origClOrdID}
}

func (c *OrderCancelRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if c.ClOrdID == "" && c.OrigClOrdID == "" && c.Label == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderCancelRequest requires ClOrdID, OrigClOrdID, or a DeribitLabel")
	}
	m := header(constants.MsgTypeOrderCancelRequest, sender, target, seq)
	if c.ClOrdID != "" {
		m.Set(constants.TagClOrdID, c.ClOrdID)
	}
	if c.OrigClOrdID != "" {
		m.Set(constants.TagOrigClOrdID, c.OrigClOrdID)
	}
	if c.Label != "" {
		m.Set(constants.TagDeribitLabel, c.Label)
	}
	if c.Symbol != "" {
		m.Set(constants.TagSymbol, c.Symbol)
	}
	if c.Side != "" {
		m.Set(constants.TagSide, string(c.Side))
	}
	return m, nil
}

// OrderCancelReplaceRequest amends a working order's quantity and/or price.
type OrderCancelReplaceRequest struct {
	ClOrdID     string
	OrigClOrdID string
	Symbol      string
	Side        Side
	OrderQty    string
	Price       string
	OrdType     OrdType
}

func NewOrderCancelReplaceRequest(clOrdID, origClOrdID, symbol string, side Side) *OrderCancelReplaceRequest {
	return &OrderCancelReplaceRequest{ClOrdID: clOrdID, OrigClOrdID: origClOrdID, Symbol: symbol, Side: side}
}

func (c *OrderCancelReplaceRequest) WithOrderQty(qty string) *OrderCancelReplaceRequest {
	c.OrderQty = qty
	return c
}

func (c *OrderCancelReplaceRequest) WithPrice(price string) *OrderCancelReplaceRequest {
	c.Price = price
	return c
}

func (c *OrderCancelReplaceRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if c.ClOrdID == "" || c.OrigClOrdID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderCancelReplaceRequest requires ClOrdID and OrigClOrdID")
	}
	if c.OrderQty == "" && c.Price == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderCancelReplaceRequest requires at least one of OrderQty or Price")
	}
	m := header(constants.MsgTypeOrderCancelReplaceRequest, sender, target, seq)
	m.Set(constants.TagClOrdID, c.ClOrdID)
	m.Set(constants.TagOrigClOrdID, c.OrigClOrdID)
	m.Set(constants.TagSymbol, c.Symbol)
	m.Set(constants.TagSide, string(c.Side))
	if c.OrderQty != "" {
		m.Set(constants.TagOrderQty, c.OrderQty)
	}
	if c.Price != "" {
		m.Set(constants.TagPrice, c.Price)
	}
	if c.OrdType != "" {
		m.Set(constants.TagOrdType, string(c.OrdType))
	}
	return m, nil
}

// OrderMassCancelRequest cancels a scope of orders at once. The
// required fields depend on MassCancelRequestType: by-symbol requests
// need Symbol, by-label requests need Label, all-orders requests need
// neither.
type OrderMassCancelRequest struct {
	MassCancelRequestID string
	RequestType         MassCancelRequestType
	Symbol              string
	Label               string
}

func NewOrderMassCancelRequest(requestID string, requestType MassCancelRequestType) *OrderMassCancelRequest {
	return &OrderMassCancelRequest{MassCancelRequestID: requestID, RequestType: requestType}
}

func (c *OrderMassCancelRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if c.MassCancelRequestID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderMassCancelRequest requires MassCancelRequestID")
	}
	switch c.RequestType {
	case MassCancelBySymbol:
		if c.Symbol == "" {
			return nil, errs.New(errs.KindMessageConstruction, "mass cancel by symbol requires Symbol")
		}
	case MassCancelByDeribitLabel:
		if c.Label == "" {
			return nil, errs.New(errs.KindMessageConstruction, "mass cancel by label requires a DeribitLabel")
		}
	case MassCancelAllOrders, MassCancelBySecurityType:
		// no additional required scope field
	default:
		return nil, errs.New(errs.KindMessageConstruction, "unknown MassCancelRequestType %q", c.RequestType)
	}

	m := header(constants.MsgTypeOrderMassCancelRequest, sender, target, seq)
	m.Set(constants.TagClOrdID, c.MassCancelRequestID)
	m.Set(constants.TagMassCancelRequestType, string(c.RequestType))
	if c.Symbol != "" {
		m.Set(constants.TagSymbol, c.Symbol)
	}
	if c.Label != "" {
		m.Set(constants.TagDeribitLabel, c.Label)
	}
	return m, nil
}

// OrderMassStatusRequest requests ExecutionReports for every working
// order in scope. When IDType narrows the request to a single order
// looked up by ClOrdID or DeribitLabel, at least one of Currency or
// Symbol must also be set or encoding fails.
type OrderMassStatusRequest struct {
	MassStatusReqID   string
	MassStatusReqType string
	IDType            MassStatusReqIDType
	Currency          string
	Symbol            string
}

func NewOrderMassStatusRequest(reqID string) *OrderMassStatusRequest {
	return &OrderMassStatusRequest{MassStatusReqID: reqID, MassStatusReqType: constants.MassStatusReqAllOrders}
}

// NewOrderMassStatusRequestByClOrdID looks up a single order by its
// client order ID, scoped by Currency and/or Symbol.
func NewOrderMassStatusRequestByClOrdID(clOrdID string) *OrderMassStatusRequest {
	return &OrderMassStatusRequest{
		MassStatusReqID:   clOrdID,
		MassStatusReqType: constants.MassStatusReqAllOrders,
		IDType:            MassStatusReqIDTypeClOrdID,
	}
}

// NewOrderMassStatusRequestByLabel looks up a single order by its
// DeribitLabel, scoped by Currency and/or Symbol.
func NewOrderMassStatusRequestByLabel(label string) *OrderMassStatusRequest {
	return &OrderMassStatusRequest{
		MassStatusReqID:   label,
		MassStatusReqType: constants.MassStatusReqAllOrders,
		IDType:            MassStatusReqIDTypeDeribitLabel,
	}
}

func (r *OrderMassStatusRequest) WithCurrency(currency string) *OrderMassStatusRequest {
	r.Currency = currency
	return r
}

func (r *OrderMassStatusRequest) WithSymbol(symbol string) *OrderMassStatusRequest {
	r.Symbol = symbol
	return r
}

func (r *OrderMassStatusRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.MassStatusReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderMassStatusRequest requires MassStatusReqID")
	}
	if (r.IDType == MassStatusReqIDTypeClOrdID || r.IDType == MassStatusReqIDTypeDeribitLabel) && r.Currency == "" && r.Symbol == "" {
		return nil, errs.New(errs.KindMessageConstruction, "OrderMassStatusRequest by ClOrdID or DeribitLabel requires Currency or Symbol")
	}
	m := header(constants.MsgTypeOrderMassStatusRequest, sender, target, seq)
	m.Set(constants.TagMassStatusReqID, r.MassStatusReqID)
	m.Set(constants.TagMassStatusReqType, r.MassStatusReqType)
	if r.IDType != "" {
		m.Set(constants.TagMassStatusReqIDType, string(r.IDType))
	}
	if r.Currency != "" {
		m.Set(constants.TagCurrency, r.Currency)
	}
	if r.Symbol != "" {
		m.Set(constants.TagSymbol, r.Symbol)
	}
	return m, nil
}

// ExecutionReport is a server-originated order/fill update. It is
// parse-only: the client never constructs one to send.
type ExecutionReport struct {
	OrderID   string
	ClOrdID   string
	ExecID    string
	ExecType  ExecType
	OrdStatus OrdStatus
	Symbol    string
	Side      Side
	OrderQty  string
	Price     string
	LastPx    string
	LastQty   string
	LeavesQty string
	CumQty    string
	AvgPx     string
	Label     string
	Text      string
}

// FromFixMessage parses a server-originated ExecutionReport.
func (*ExecutionReport) FromFixMessage(m *codec.Message) (*ExecutionReport, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeExecutionReport {
		return nil, errs.New(errs.KindMessageParsing, "not an ExecutionReport: MsgType=%q", mt)
	}
	e := &ExecutionReport{}
	e.OrderID, _ = m.Get(constants.TagOrderID)
	e.ClOrdID, _ = m.Get(constants.TagClOrdID)
	e.ExecID, _ = m.Get(constants.TagExecID)

	execType, _ := m.Get(constants.TagExecType)
	if et, err := ParseExecType(execType); err == nil {
		e.ExecType = et
	}
	ordStatus, _ := m.Get(constants.TagOrdStatus)
	if os, err := ParseOrdStatus(ordStatus); err == nil {
		e.OrdStatus = os
	}

	e.Symbol, _ = m.Get(constants.TagSymbol)
	side, _ := m.Get(constants.TagSide)
	if s, err := ParseSide(side); err == nil {
		e.Side = s
	}
	e.OrderQty, _ = m.Get(constants.TagOrderQty)
	e.Price, _ = m.Get(constants.TagPrice)
	e.LastPx, _ = m.Get(constants.TagLastPx)
	e.LastQty, _ = m.Get(constants.TagLastQty)
	e.LeavesQty, _ = m.Get(constants.TagLeavesQty)
	e.CumQty, _ = m.Get(constants.TagCumQty)
	e.AvgPx, _ = m.Get(constants.TagAvgPx)
	e.Label, _ = m.Get(constants.TagDeribitLabel)
	e.Text, _ = m.Get(constants.TagText)
	return e, nil
}

// OrderCancelReject rejects a cancel or cancel/replace request.
type OrderCancelReject struct {
	OrderID          string
	ClOrdID          string
	OrigClOrdID      string
	OrdStatus        OrdStatus
	CxlRejResponseTo CxlRejResponseTo
	CxlRejReason     string
	Text             string
}

func (*OrderCancelReject) FromFixMessage(m *codec.Message) (*OrderCancelReject, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeOrderCancelReject {
		return nil, errs.New(errs.KindMessageParsing, "not an OrderCancelReject: MsgType=%q", mt)
	}
	r := &OrderCancelReject{}
	r.OrderID, _ = m.Get(constants.TagOrderID)
	r.ClOrdID, _ = m.Get(constants.TagClOrdID)
	r.OrigClOrdID, _ = m.Get(constants.TagOrigClOrdID)

	ordStatus, _ := m.Get(constants.TagOrdStatus)
	if os, err := ParseOrdStatus(ordStatus); err == nil {
		r.OrdStatus = os
	}
	respTo, _ := m.Get(constants.TagCxlRejResponseTo)
	if rt, err := ParseCxlRejResponseTo(respTo); err == nil {
		r.CxlRejResponseTo = rt
	}
	r.CxlRejReason, _ = m.Get(constants.TagCxlRejReason)
	r.Text, _ = m.Get(constants.TagText)
	return r, nil
}
