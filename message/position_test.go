package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestPositionReportRoundTrip(t *testing.T) {
	want := &PositionReport{
		PosReqID:           "PR1",
		PosMaintRptID:      "RPT1",
		Symbol:             "BTC-PERPETUAL",
		PositionQty:        "2.5",
		AvgPx:              "50000",
		UnrealizedPnL:      "125.5",
		RealizedPnL:        "10",
		TotalNumPosReports: 1,
		PosReqResult:       "0",
		PosReqStatus:       "0",
	}

	encoded, err := want.ToFixMessage("DERIBITSERVER", "CLIENT", 9)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	wire, err := codec.Encode(encoded, nil)
	if err != nil {
		t.Fatalf("wire encode error: %v", err)
	}
	decodedMsg, err := codec.Decode(wire)
	if err != nil {
		t.Fatalf("wire decode error: %v", err)
	}

	var zero PositionReport
	got, err := zero.FromFixMessage(decodedMsg)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if *got != *want {
		t.Errorf("round trip mismatch:\n got  = %+v\n want = %+v", got, want)
	}
}

func TestPositionReportToPosition(t *testing.T) {
	p := &PositionReport{
		Symbol:        "BTC-PERPETUAL",
		PositionQty:   "2.5",
		AvgPx:         "50000",
		UnrealizedPnL: "125.5",
		RealizedPnL:   "10",
	}
	got := p.ToPosition()
	want := Position{
		Symbol:        "BTC-PERPETUAL",
		Quantity:      "2.5",
		AveragePrice:  "50000",
		UnrealizedPnL: "125.5",
		RealizedPnL:   "10",
	}
	if got != want {
		t.Errorf("ToPosition() = %+v, want %+v", got, want)
	}
}

func TestPositionReportFromFixMessageWrongType(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeHeartbeat)
	var zero PositionReport
	if _, err := zero.FromFixMessage(m); err == nil {
		t.Fatal("expected error for wrong MsgType")
	}
}

func TestRequestForPositionsRequiresID(t *testing.T) {
	r := &RequestForPositions{}
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for missing PosReqID")
	}
}
