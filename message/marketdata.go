package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// MarketDataRequest subscribes to (or snapshots) order-book or trade
// data for a set of symbols.
type MarketDataRequest struct {
	MDReqID                 string
	SubscriptionRequestType SubscriptionRequestType
	MarketDepth             int
	MDEntryTypes            []MDEntryType
	Symbols                 []string
}

func NewMarketDataRequest(reqID string, subType SubscriptionRequestType, depth int) *MarketDataRequest {
	return &MarketDataRequest{MDReqID: reqID, SubscriptionRequestType: subType, MarketDepth: depth}
}

func (r *MarketDataRequest) WithEntryTypes(types ...MDEntryType) *MarketDataRequest {
	r.MDEntryTypes = types
	return r
}

func (r *MarketDataRequest) WithSymbols(symbols ...string) *MarketDataRequest {
	r.Symbols = symbols
	return r
}

func (r *MarketDataRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.MDReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "MarketDataRequest requires MDReqID")
	}
	if len(r.Symbols) == 0 {
		return nil, errs.New(errs.KindMessageConstruction, "MarketDataRequest requires at least one symbol")
	}
	m := header(constants.MsgTypeMarketDataRequest, sender, target, seq)
	m.Set(constants.TagMDReqID, r.MDReqID)
	m.Set(constants.TagSubscriptionRequestType, string(r.SubscriptionRequestType))
	m.SetInt(constants.TagMarketDepth, r.MarketDepth)

	m.SetInt(constants.TagNoMDEntryTypes, len(r.MDEntryTypes))
	for _, et := range r.MDEntryTypes {
		m.Add(constants.TagMDEntryType, string(et))
	}

	m.SetInt(constants.TagNoRelatedSym, len(r.Symbols))
	for _, sym := range r.Symbols {
		m.Add(constants.TagSymbol, sym)
	}
	return m, nil
}

// MDEntry is one row of a market data snapshot or incremental update.
type MDEntry struct {
	EntryType MDEntryType
	Px        string
	Size      string
	ID        string
	Action    MDUpdateAction // set only on incremental refresh entries
}

// MarketDataSnapshotFullRefresh is a full order-book/trade snapshot.
type MarketDataSnapshotFullRefresh struct {
	MDReqID string
	Symbol  string
	Entries []MDEntry
}

// FromFixMessage parses a MarketDataSnapshotFullRefresh.
func (*MarketDataSnapshotFullRefresh) FromFixMessage(m *codec.Message) (*MarketDataSnapshotFullRefresh, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeMarketDataSnapshotFull {
		return nil, errs.New(errs.KindMessageParsing, "not a MarketDataSnapshotFullRefresh: MsgType=%q", mt)
	}
	s := &MarketDataSnapshotFullRefresh{}
	s.MDReqID, _ = m.Get(constants.TagMDReqID)
	s.Symbol, _ = m.Get(constants.TagSymbol)

	groups := DecodeGroup(m.Fields, constants.TagMDEntryType)
	for _, g := range groups {
		var e MDEntry
		for _, f := range g {
			switch f.Tag {
			case constants.TagMDEntryType:
				et, err := ParseMDEntryType(f.Value)
				if err == nil {
					e.EntryType = et
				}
			case constants.TagMDEntryPx:
				e.Px = f.Value
			case constants.TagMDEntrySize:
				e.Size = f.Value
			case constants.TagMDEntryID:
				e.ID = f.Value
			}
		}
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

// MarketDataIncrementalRefresh carries one or more entry changes
// (new/change/delete) relative to the last snapshot.
type MarketDataIncrementalRefresh struct {
	MDReqID string
	Entries []MDEntry
}

func (*MarketDataIncrementalRefresh) FromFixMessage(m *codec.Message) (*MarketDataIncrementalRefresh, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeMarketDataIncremental {
		return nil, errs.New(errs.KindMessageParsing, "not a MarketDataIncrementalRefresh: MsgType=%q", mt)
	}
	r := &MarketDataIncrementalRefresh{}
	r.MDReqID, _ = m.Get(constants.TagMDReqID)

	groups := DecodeGroup(m.Fields, constants.TagMDUpdateAction)
	for _, g := range groups {
		var e MDEntry
		for _, f := range g {
			switch f.Tag {
			case constants.TagMDUpdateAction:
				a, err := ParseMDUpdateAction(f.Value)
				if err == nil {
					e.Action = a
				}
			case constants.TagMDEntryType:
				et, err := ParseMDEntryType(f.Value)
				if err == nil {
					e.EntryType = et
				}
			case constants.TagMDEntryPx:
				e.Px = f.Value
			case constants.TagMDEntrySize:
				e.Size = f.Value
			case constants.TagMDEntryID:
				e.ID = f.Value
			}
		}
		r.Entries = append(r.Entries, e)
	}
	return r, nil
}

// MarketDataRequestReject rejects a MarketDataRequest.
type MarketDataRequestReject struct {
	MDReqID   string
	RejReason string
	Text      string
}

func (*MarketDataRequestReject) FromFixMessage(m *codec.Message) (*MarketDataRequestReject, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeMarketDataRequestReject {
		return nil, errs.New(errs.KindMessageParsing, "not a MarketDataRequestReject: MsgType=%q", mt)
	}
	r := &MarketDataRequestReject{}
	r.MDReqID, _ = m.Get(constants.TagMDReqID)
	r.RejReason, _ = m.Get(constants.TagMDReqRejReason)
	r.Text, _ = m.Get(constants.TagText)
	return r, nil
}
