package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestTradeCaptureReportRequestRequiresID(t *testing.T) {
	r := &TradeCaptureReportRequest{}
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for missing TradeRequestID")
	}
}

func TestTradeCaptureReportParses(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeTradeCaptureReport)
	m.Set(constants.TagTradeReportID, "TR1")
	m.Set(constants.TagSymbol, "BTC-PERPETUAL")
	m.Set(constants.TagLastPx, "50000")
	m.Set(constants.TagLastQty, "1")
	m.SetInt(constants.TagTotNumTradeReports, 3)

	var zero TradeCaptureReport
	rep, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.TotNumTradeReports != 3 {
		t.Errorf("TotNumTradeReports = %d, want 3", rep.TotNumTradeReports)
	}
}
