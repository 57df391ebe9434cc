package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// SecurityListRequest asks for the set of tradable instruments,
// optionally scoped to a security type or currency.
type SecurityListRequest struct {
	SecurityReqID          string
	SecurityListRequestType string
	SecurityType           string
	Currency               string
}

func NewSecurityListRequest(reqID string) *SecurityListRequest {
	return &SecurityListRequest{SecurityReqID: reqID}
}

func (r *SecurityListRequest) WithSecurityType(t string) *SecurityListRequest {
	r.SecurityType = t
	return r
}

func (r *SecurityListRequest) WithCurrency(c string) *SecurityListRequest {
	r.Currency = c
	return r
}

func (r *SecurityListRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.SecurityReqID == "" {
		return nil, errs.New(errs.KindMessageConstruction, "SecurityListRequest requires SecurityReqID")
	}
	m := header(constants.MsgTypeSecurityListRequest, sender, target, seq)
	m.Set(constants.TagSecurityReqID, r.SecurityReqID)
	if r.SecurityType != "" {
		m.Set(constants.TagSecurityType, r.SecurityType)
	}
	if r.Currency != "" {
		m.Set(constants.TagCurrency, r.Currency)
	}
	return m, nil
}

// SecurityEntry is one instrument row of a SecurityList response.
type SecurityEntry struct {
	Symbol             string
	SecurityType       string
	Currency           string
	ContractMultiplier string
	StrikePrice        string
	MaturityDate       string
}

// SecurityList is the response to a SecurityListRequest.
type SecurityList struct {
	SecurityReqID     string
	SecurityResponseID string
	Entries           []SecurityEntry
}

func (*SecurityList) FromFixMessage(m *codec.Message) (*SecurityList, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeSecurityList {
		return nil, errs.New(errs.KindMessageParsing, "not a SecurityList: MsgType=%q", mt)
	}
	s := &SecurityList{}
	s.SecurityReqID, _ = m.Get(constants.TagSecurityReqID)
	s.SecurityResponseID, _ = m.Get(constants.TagSecurityResponseID)

	groups := DecodeGroup(m.Fields, constants.TagSymbol)
	for _, g := range groups {
		var e SecurityEntry
		for _, f := range g {
			switch f.Tag {
			case constants.TagSymbol:
				e.Symbol = f.Value
			case constants.TagSecurityType:
				e.SecurityType = f.Value
			case constants.TagCurrency:
				e.Currency = f.Value
			case constants.TagContractMultiplier:
				e.ContractMultiplier = f.Value
			case constants.TagStrikePrice:
				e.StrikePrice = f.Value
			case constants.TagMaturityDate:
				e.MaturityDate = f.Value
			}
		}
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

// SecurityStatusRequest asks whether an instrument is currently tradable.
type SecurityStatusRequest struct {
	SecurityStatusReqID string
	Symbol               string
}

func NewSecurityStatusRequest(reqID, symbol string) *SecurityStatusRequest {
	return &SecurityStatusRequest{SecurityStatusReqID: reqID, Symbol: symbol}
}

func (r *SecurityStatusRequest) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	if r.SecurityStatusReqID == "" || r.Symbol == "" {
		return nil, errs.New(errs.KindMessageConstruction, "SecurityStatusRequest requires SecurityStatusReqID and Symbol")
	}
	m := header(constants.MsgTypeSecurityStatusRequest, sender, target, seq)
	m.Set(constants.TagSecurityStatusReqID, r.SecurityStatusReqID)
	m.Set(constants.TagSymbol, r.Symbol)
	return m, nil
}

// SecurityStatus is the response to a SecurityStatusRequest.
type SecurityStatus struct {
	SecurityStatusReqID string
	Symbol               string
	SecurityStatus       string
	HighPx               string
	LowPx                string
}

func (*SecurityStatus) FromFixMessage(m *codec.Message) (*SecurityStatus, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeSecurityStatus {
		return nil, errs.New(errs.KindMessageParsing, "not a SecurityStatus: MsgType=%q", mt)
	}
	s := &SecurityStatus{}
	s.SecurityStatusReqID, _ = m.Get(constants.TagSecurityStatusReqID)
	s.Symbol, _ = m.Get(constants.TagSymbol)
	s.SecurityStatus, _ = m.Get(constants.TagSecurityStatus)
	s.HighPx, _ = m.Get(constants.TagHighPx)
	s.LowPx, _ = m.Get(constants.TagLowPx)
	return s, nil
}
