package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestNewOrderSingleLimitScenario(t *testing.T) {
	o := NewLimitOrder("ORDER123", "BTC-PERPETUAL", SideBuy, "10", "50000").WithLabel("test-order")
	m, err := o.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := map[int]string{
		constants.TagMsgType:       constants.MsgTypeNewOrderSingle,
		constants.TagClOrdID:       "ORDER123",
		constants.TagSide:          constants.SideBuy,
		constants.TagOrderQty:      "10",
		constants.TagPrice:         "50000",
		constants.TagSymbol:        "BTC-PERPETUAL",
		constants.TagOrdType:       constants.OrdTypeLimit,
		constants.TagDeribitLabel:  "test-order",
	}
	for tag, want := range cases {
		got, ok := m.Get(tag)
		if !ok {
			t.Errorf("tag %d missing", tag)
			continue
		}
		if got != want {
			t.Errorf("tag %d = %q, want %q", tag, got, want)
		}
	}
}

func TestNewOrderSingleMarketOmitsPrice(t *testing.T) {
	o := NewMarketOrder("C1", "BTC-PERPETUAL", SideSell, "5")
	m, err := o.ToFixMessage("A", "B", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Has(constants.TagPrice) {
		t.Error("market order must not carry a Price field")
	}
}

func TestNewOrderSingleLimitRequiresPrice(t *testing.T) {
	o := &NewOrderSingle{ClOrdID: "C1", Symbol: "BTC-PERPETUAL", Side: SideBuy, OrdType: OrdTypeLimit}
	if _, err := o.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for limit order without price")
	}
}

func TestNewOrderSingleExecInsts(t *testing.T) {
	o := NewLimitOrder("C1", "BTC-PERPETUAL", SideBuy, "1", "100").WithPostOnly().WithReduceOnly()
	m, err := o.ToFixMessage("A", "B", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	insts := m.GetAll(constants.TagExecInst)
	if len(insts) != 1 {
		t.Fatalf("ExecInst count = %d, want 1 (combined value)", len(insts))
	}
	if insts[0] != constants.ExecInstPostOnly+constants.ExecInstReduceOnly {
		t.Errorf("ExecInst = %v, want combined %q", insts, constants.ExecInstPostOnly+constants.ExecInstReduceOnly)
	}
}

func TestNewOrderSingleExecInstSingleFlag(t *testing.T) {
	o := NewLimitOrder("C1", "BTC-PERPETUAL", SideBuy, "1", "100").WithPostOnly()
	m, err := o.ToFixMessage("A", "B", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := m.Get(constants.TagExecInst)
	if got != constants.ExecInstPostOnly {
		t.Errorf("ExecInst = %q, want %q", got, constants.ExecInstPostOnly)
	}
}

func TestOrderMassStatusRequestByClOrdIDRequiresCurrencyOrSymbol(t *testing.T) {
	r := NewOrderMassStatusRequestByClOrdID("C1")
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error without Currency or Symbol")
	}
	r.WithSymbol("BTC-PERPETUAL")
	if _, err := r.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderMassStatusRequestByLabelRequiresCurrencyOrSymbol(t *testing.T) {
	r := NewOrderMassStatusRequestByLabel("my-label")
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error without Currency or Symbol")
	}
	r.WithCurrency("BTC")
	if _, err := r.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderMassStatusRequestAllOrdersNeedsNoScope(t *testing.T) {
	r := NewOrderMassStatusRequest("STATUS1")
	if _, err := r.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderCancelRequestNeedsIdentifier(t *testing.T) {
	c := &OrderCancelRequest{}
	if _, err := c.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error when no identifying field is set")
	}
	c.Label = "my-label"
	if _, err := c.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error with Label set: %v", err)
	}
}

func TestOrderCancelReplaceRequiresQtyOrPrice(t *testing.T) {
	c := NewOrderCancelReplaceRequest("C2", "C1", "BTC-PERPETUAL", SideBuy)
	if _, err := c.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error without OrderQty or Price")
	}
	c.WithPrice("51000")
	if _, err := c.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderMassCancelRequestScopes(t *testing.T) {
	r := NewOrderMassCancelRequest("req1", MassCancelBySymbol)
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error: by-symbol scope requires Symbol")
	}
	r.Symbol = "BTC-PERPETUAL"
	if _, err := r.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := NewOrderMassCancelRequest("req2", MassCancelAllOrders)
	if _, err := all.ToFixMessage("A", "B", 1); err != nil {
		t.Fatalf("all-orders scope should not require extra fields: %v", err)
	}
}

func TestExecutionReportFromFixMessage(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeExecutionReport)
	m.Set(constants.TagOrderID, "O1")
	m.Set(constants.TagClOrdID, "C1")
	m.Set(constants.TagExecType, constants.ExecTypeFilled)
	m.Set(constants.TagOrdStatus, constants.OrdStatusFilled)
	m.Set(constants.TagSymbol, "BTC-PERPETUAL")
	m.Set(constants.TagSide, constants.SideBuy)
	m.Set(constants.TagLastPx, "50000")
	m.Set(constants.TagLastQty, "1")

	var zero ExecutionReport
	rep, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.OrderID != "O1" || rep.ExecType != ExecTypeFilled || rep.OrdStatus != OrdStatusFilled {
		t.Errorf("parsed = %+v", rep)
	}
}

func TestExecutionReportWrongMsgType(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeHeartbeat)
	var zero ExecutionReport
	if _, err := zero.FromFixMessage(m); err == nil {
		t.Fatal("expected error for wrong MsgType")
	}
}

func TestOrderCancelRejectFromFixMessage(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeOrderCancelReject)
	m.Set(constants.TagOrderID, "O1")
	m.Set(constants.TagOrdStatus, constants.OrdStatusRejected)
	m.Set(constants.TagCxlRejResponseTo, constants.CxlRejResponseToCancel)

	var zero OrderCancelReject
	rej, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rej.CxlRejResponseTo != CxlRejResponseToCancel {
		t.Errorf("CxlRejResponseTo = %q", rej.CxlRejResponseTo)
	}
}
