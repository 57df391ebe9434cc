package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// QuoteRequest asks the counterparty to publish a two-sided quote for
// one or more instruments.
type QuoteRequest struct {
	QuoteReqID string
	Symbols    []string
}

func NewQuoteRequest(reqID string, symbols ...string) *QuoteRequest {
	return &QuoteRequest{QuoteReqID: reqID, Symbols: symbols}
}

func (q *QuoteRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if q.QuoteReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "QuoteRequest requires QuoteReqID")
	}
	if len(q.Symbols) == 0 {
		return nil, errs.New(errs.KindMessageConstruction, "QuoteRequest requires at least one symbol")
	}
	m := header(constants.MsgTypeQuoteRequest, sender, target, seq)
	m.Set(constants.TagQuoteReqID, q.QuoteReqID)
	m.SetInt(constants.TagNoRelatedSym, len(q.Symbols))
	for _, s := range q.Symbols {
		m.Add(constants.TagSymbol, s)
	}
	return m, nil
}

// QuoteRequestReject rejects a QuoteRequest.
type QuoteRequestReject struct {
	QuoteReqID string
	RejReason  QuoteRejectReason
	Text       string
}

func (*QuoteRequestReject) FromFixMessage(m *codec.Message) (*QuoteRequestReject, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeQuoteRequestReject {
		return nil, errs.New(errs.KindMessageParsing, "not a QuoteRequestReject: MsgType=%q", mt)
	}
	r := &QuoteRequestReject{}
	r.QuoteReqID, _ = m.Get(constants.TagQuoteReqID)
	reason, _ := m.Get(constants.TagQuoteRejectReason)
	if rr, err := ParseQuoteRejectReason(reason); err == nil {
		r.RejReason = rr
	}
	r.Text, _ = m.Get(constants.TagText)
	return r, nil
}

func ParseQuoteRejectReason(v string) (QuoteRejectReason, error) {
	switch QuoteRejectReason(v) {
	case QuoteRejectReasonUnknownSymbol, QuoteRejectReasonExchangeClosed, QuoteRejectReasonExceedsLimit,
		QuoteRejectReasonDuplicate, QuoteRejectReasonInvalidPrice, QuoteRejectReasonOther:
		return QuoteRejectReason(v), nil
	default:
		return "", errs.New(errs.KindMessageParsing, "invalid QuoteRejectReason %q", v)
	}
}

// QuoteEntry is one two-sided price level of a MassQuote/Quote.
type QuoteEntry struct {
	QuoteEntryID string
	Symbol       string
	BidPx        string
	OfferPx      string
	BidSize      string
	OfferSize    string
}

// quoteEntry field offsets within the Deribit tag-block dialect.
const (
	offsetQuoteEntryID = 0
	offsetSymbol       = 1
	offsetBidPx        = 2
	offsetOfferPx      = 3
	offsetBidSize      = 4
	offsetOfferSize    = 5
)

func quoteEntryToBlock(e QuoteEntry) GroupEntry {
	return GroupEntry{
		{Tag: offsetQuoteEntryID, Value: e.QuoteEntryID},
		{Tag: offsetSymbol, Value: e.Symbol},
		{Tag: offsetBidPx, Value: e.BidPx},
		{Tag: offsetOfferPx, Value: e.OfferPx},
		{Tag: offsetBidSize, Value: e.BidSize},
		{Tag: offsetOfferSize, Value: e.OfferSize},
	}
}

// MassQuote publishes one or more two-sided quotes. It defaults to the
// Deribit tag-block dialect (base 4000) per the gateway's own wire
// format (spec §9 Open Question); WithStandardDialect switches to the
// standard NoXXX-count repeating group, which some Deribit gateway
// versions also accept.
type MassQuote struct {
	QuoteID            string
	Entries            []QuoteEntry
	UseStandardDialect bool
}

func NewMassQuote(quoteID string, entries ...QuoteEntry) *MassQuote {
	return &MassQuote{QuoteID: quoteID, Entries: entries}
}

// WithStandardDialect selects the standard NoXXX-count repeating group
// over the default Deribit tag-block dialect.
func (q *MassQuote) WithStandardDialect() *MassQuote {
	q.UseStandardDialect = true
	return q
}

func (q *MassQuote) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if q.QuoteID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "MassQuote requires QuoteID")
	}
	if len(q.Entries) == 0 {
		return nil, errs.New(errs.KindMessageConstruction, "MassQuote requires at least one entry")
	}
	m := header(constants.MsgTypeMassQuote, sender, target, seq)
	m.Set(constants.TagQuoteID, q.QuoteID)

	if q.UseStandardDialect {
		entries := make([]GroupEntry, len(q.Entries))
		for i, e := range q.Entries {
			entries[i] = GroupEntry{
				{Tag: constants.TagQuoteEntryID, Value: e.QuoteEntryID},
				{Tag: constants.TagSymbol, Value: e.Symbol},
				{Tag: constants.TagBidPx, Value: e.BidPx},
				{Tag: constants.TagOfferPx, Value: e.OfferPx},
				{Tag: constants.TagBidSize, Value: e.BidSize},
				{Tag: constants.TagOfferSize, Value: e.OfferSize},
			}
		}
		EncodeGroup(m, constants.TagNoQuoteEntries, entries)
		return m, nil
	}

	blocks := make([]GroupEntry, len(q.Entries))
	for i, e := range q.Entries {
		blocks[i] = quoteEntryToBlock(e)
	}
	EncodeTagBlock(m, constants.TagDeribitQuoteEntryBase, blocks,
		[]int{offsetQuoteEntryID, offsetSymbol, offsetBidPx, offsetOfferPx, offsetBidSize, offsetOfferSize})
	return m, nil
}

// quoteBlockOffsets and quoteBlockTags pair each tag-block offset with
// the standard tag its field is reported under when decoded from the
// tag-block dialect.
var quoteBlockOffsets = []int{offsetQuoteEntryID, offsetSymbol, offsetBidPx, offsetOfferPx, offsetBidSize, offsetOfferSize}
var quoteBlockTags = []int{constants.TagQuoteEntryID, constants.TagSymbol, constants.TagBidPx, constants.TagOfferPx, constants.TagBidSize, constants.TagOfferSize}

// MassQuoteAcknowledgement acknowledges a MassQuote.
type MassQuoteAcknowledgement struct {
	QuoteID string
	Status  QuoteStatus
	Entries []QuoteEntry
}

func (*MassQuoteAcknowledgement) FromFixMessage(m *codec.Message) (*MassQuoteAcknowledgement, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeMassQuoteAcknowledgement {
		return nil, errs.New(errs.KindMessageParsing, "not a MassQuoteAcknowledgement: MsgType=%q", mt)
	}
	a := &MassQuoteAcknowledgement{}
	a.QuoteID, _ = m.Get(constants.TagQuoteID)
	status, _ := m.Get(constants.TagQuoteStatus)
	a.Status = QuoteStatus(status)

	// The standard and tag-block dialects are mutually distinguishable
	// on the wire: only the standard dialect carries a NoQuoteEntries
	// count field.
	var groups []GroupEntry
	if m.Has(constants.TagNoQuoteEntries) {
		groups = DecodeGroup(m.Fields, constants.TagQuoteEntryID)
	} else {
		groups = DecodeTagBlock(m, constants.TagDeribitQuoteEntryBase, 64, quoteBlockOffsets, quoteBlockTags)
	}
	for _, g := range groups {
		var e QuoteEntry
		for _, f := range g {
			switch f.Tag {
			case constants.TagQuoteEntryID:
				e.QuoteEntryID = f.Value
			case constants.TagSymbol:
				e.Symbol = f.Value
			case constants.TagBidPx:
				e.BidPx = f.Value
			case constants.TagOfferPx:
				e.OfferPx = f.Value
			case constants.TagBidSize:
				e.BidSize = f.Value
			case constants.TagOfferSize:
				e.OfferSize = f.Value
			}
		}
		a.Entries = append(a.Entries, e)
	}
	return a, nil
}

// QuoteCancelEntry scopes a QuoteCancel to one previously published
// quote entry rather than every quote this session has live.
type QuoteCancelEntry struct {
	QuoteEntryID string
	Symbol       string
}

// offsetCancelQuoteEntryID and offsetCancelSymbol are the tag-block
// dialect offsets for QuoteCancelEntry, a narrower layout than
// QuoteEntry's since a cancel carries no pricing.
const (
	offsetCancelQuoteEntryID = 0
	offsetCancelSymbol       = 1
)

func quoteCancelEntryToBlock(e QuoteCancelEntry) GroupEntry {
	return GroupEntry{
		{Tag: offsetCancelQuoteEntryID, Value: e.QuoteEntryID},
		{Tag: offsetCancelSymbol, Value: e.Symbol},
	}
}

// QuoteCancel withdraws a previously published quote, or a scoped list
// of entries from it. It defaults to the Deribit tag-block dialect;
// WithStandardDialect switches to the standard NoXXX-count repeating
// group.
type QuoteCancel struct {
	QuoteID            string
	QuoteCancelType    string
	Symbol             string
	Entries            []QuoteCancelEntry
	UseStandardDialect bool
}

func NewQuoteCancel(quoteID string) *QuoteCancel { return &QuoteCancel{QuoteID: quoteID} }

// WithEntries scopes the cancel to specific quote entries instead of
// every quote under QuoteID.
func (q *QuoteCancel) WithEntries(entries ...QuoteCancelEntry) *QuoteCancel {
	q.Entries = entries
	return q
}

// WithStandardDialect selects the standard NoXXX-count repeating group
// over the default Deribit tag-block dialect for Entries.
func (q *QuoteCancel) WithStandardDialect() *QuoteCancel {
	q.UseStandardDialect = true
	return q
}

func (q *QuoteCancel) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if q.QuoteID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "QuoteCancel requires QuoteID")
	}
	m := header(constants.MsgTypeQuoteCancel, sender, target, seq)
	m.Set(constants.TagQuoteID, q.QuoteID)
	if q.QuoteCancelType != "" {
		m.Set(constants.TagQuoteCancelType, q.QuoteCancelType)
	}
	if q.Symbol != "" {
		m.Set(constants.TagSymbol, q.Symbol)
	}
	if len(q.Entries) == 0 {
		return m, nil
	}
	if q.UseStandardDialect {
		entries := make([]GroupEntry, len(q.Entries))
		for i, e := range q.Entries {
			entries[i] = GroupEntry{
				{Tag: constants.TagQuoteEntryID, Value: e.QuoteEntryID},
				{Tag: constants.TagSymbol, Value: e.Symbol},
			}
		}
		EncodeGroup(m, constants.TagNoQuoteEntries, entries)
		return m, nil
	}
	blocks := make([]GroupEntry, len(q.Entries))
	for i, e := range q.Entries {
		blocks[i] = quoteCancelEntryToBlock(e)
	}
	EncodeTagBlock(m, constants.TagDeribitQuoteEntryBase, blocks, []int{offsetCancelQuoteEntryID, offsetCancelSymbol})
	return m, nil
}

// QuoteStatusReport reports the status of a quote, solicited by a
// QuoteStatusRequest or pushed unsolicited.
type QuoteStatusReport struct {
	QuoteID      string
	QuoteStatus  QuoteStatus
	Symbol       string
}

func (*QuoteStatusReport) FromFixMessage(m *codec.Message) (*QuoteStatusReport, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeQuoteStatusReport {
		return nil, errs.New(errs.KindMessageParsing, "not a QuoteStatusReport: MsgType=%q", mt)
	}
	r := &QuoteStatusReport{}
	r.QuoteID, _ = m.Get(constants.TagQuoteID)
	status, _ := m.Get(constants.TagQuoteStatus)
	r.QuoteStatus = QuoteStatus(status)
	r.Symbol, _ = m.Get(constants.TagSymbol)
	return r, nil
}

// QuoteStatusRequest asks for the current status of a previously
// published quote.
type QuoteStatusRequest struct {
	QuoteStatusReqID string
	QuoteID          string
	Symbol           string
}

func NewQuoteStatusRequest(quoteID string) *QuoteStatusRequest {
	return &QuoteStatusRequest{QuoteStatusReqID: quoteID, QuoteID: quoteID}
}

func (r *QuoteStatusRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.QuoteStatusReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "QuoteStatusRequest requires QuoteStatusReqID")
	}
	m := header(constants.MsgTypeQuoteStatusRequest, sender, target, seq)
	m.Set(constants.TagQuoteStatusReqID, r.QuoteStatusReqID)
	if r.QuoteID != "" {
		m.Set(constants.TagQuoteID, r.QuoteID)
	}
	if r.Symbol != "" {
		m.Set(constants.TagSymbol, r.Symbol)
	}
	return m, nil
}

// RfqRequest asks the counterparty to solicit external liquidity for a
// named instrument (request-for-quote).
type RfqRequest struct {
	RFQReqID string
	Symbol   string
}

func NewRfqRequest(reqID, symbol string) *RfqRequest {
	return &RfqRequest{RFQReqID: reqID, Symbol: symbol}
}

func (r *RfqRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.RFQReqID == "" || r.Symbol == "" {
		return nil, errs.New(errs.KindMessageConstruction, "RfqRequest requires RFQReqID and Symbol")
	}
	m := header(constants.MsgTypeRfqRequest, sender, target, seq)
	m.Set(constants.TagRFQReqID, r.RFQReqID)
	m.Set(constants.TagSymbol, r.Symbol)
	return m, nil
}
