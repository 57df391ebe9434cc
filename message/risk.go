package message

import (
	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
	"github.com/joaquinbejar/deribit-fix/errs"
)

// MMProtectionLimits configures a market maker's self-trade and
// risk-limit protection window (Deribit custom message family, tags
// 9011-9022).
type MMProtectionLimits struct {
	Delta         string
	Vega          string
	Gamma         string
	Theta         string
	OrderLimit    string
	PositionLimit string
	TimeWindowMs  string
}

func NewMMProtectionLimits() *MMProtectionLimits { return &MMProtectionLimits{} }

func (p *MMProtectionLimits) WithDelta(v string) *MMProtectionLimits  { p.Delta = v; return p }
func (p *MMProtectionLimits) WithVega(v string) *MMProtectionLimits   { p.Vega = v; return p }
func (p *MMProtectionLimits) WithGamma(v string) *MMProtectionLimits  { p.Gamma = v; return p }
func (p *MMProtectionLimits) WithTheta(v string) *MMProtectionLimits  { p.Theta = v; return p }
func (p *MMProtectionLimits) WithOrderLimit(v string) *MMProtectionLimits {
	p.OrderLimit = v
	return p
}
func (p *MMProtectionLimits) WithPositionLimit(v string) *MMProtectionLimits {
	p.PositionLimit = v
	return p
}
func (p *MMProtectionLimits) WithTimeWindowMs(v string) *MMProtectionLimits {
	p.TimeWindowMs = v
	return p
}

func (p *MMProtectionLimits) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeMMProtectionLimits, sender, target, seq)
	if p.Delta != "" {
		m.Set(constants.TagMMProtDelta, p.Delta)
	}
	if p.Vega != "" {
		m.Set(constants.TagMMProtVega, p.Vega)
	}
	if p.Gamma != "" {
		m.Set(constants.TagMMProtGamma, p.Gamma)
	}
	if p.Theta != "" {
		m.Set(constants.TagMMProtTheta, p.Theta)
	}
	if p.OrderLimit != "" {
		m.Set(constants.TagMMProtOrderLimit, p.OrderLimit)
	}
	if p.PositionLimit != "" {
		m.Set(constants.TagMMProtPositionLimit, p.PositionLimit)
	}
	if p.TimeWindowMs != "" {
		m.Set(constants.TagMMProtTimeWindowMs, p.TimeWindowMs)
	}
	return m, nil
}

// MMProtectionLimitsResult is the server's acknowledgement of the
// limits currently in force.
type MMProtectionLimitsResult struct {
	OrderLimit    string
	PositionLimit string
	Result        string
}

func (*MMProtectionLimitsResult) FromFixMessage(m *codec.Message) (*MMProtectionLimitsResult, error) {
	mt, _ := m.MsgType()
	if mt != constants.MsgTypeMMProtectionLimitsResult {
		return nil, errs.New(errs.KindMessageParsing, "not an MMProtectionLimitsResult: MsgType=%q", mt)
	}
	r := &MMProtectionLimitsResult{}
	r.OrderLimit, _ = m.Get(constants.TagMMProtOrderLimit)
	r.PositionLimit, _ = m.Get(constants.TagMMProtPositionLimit)
	r.Result, _ = m.Get(constants.TagMMProtResult)
	return r, nil
}

// MMProtectionReset clears a triggered protection freeze, either
// resetting counters only or the configured limits as well.
type MMProtectionReset struct {
	ResetType MMProtectionResetType
}

func NewMMProtectionReset(resetType MMProtectionResetType) *MMProtectionReset {
	return &MMProtectionReset{ResetType: resetType}
}

func (r *MMProtectionReset) ToFixMessage(sender, target string, seq int) (*codec.Message, error) {
	m := header(constants.MsgTypeMMProtectionReset, sender, target, seq)
	m.Set(constants.TagMMProtResetType, string(r.ResetType))
	return m, nil
}
