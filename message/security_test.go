package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestSecurityListParsesEntries(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeSecurityList)
	m.Set(constants.TagSecurityReqID, "S1")
	m.Add(constants.TagSymbol, "BTC-PERPETUAL")
	m.Add(constants.TagSecurityType, "FUT")
	m.Add(constants.TagCurrency, "BTC")
	m.Add(constants.TagSymbol, "ETH-PERPETUAL")
	m.Add(constants.TagSecurityType, "FUT")
	m.Add(constants.TagCurrency, "ETH")

	var zero SecurityList
	list, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(list.Entries))
	}
	if list.Entries[0].Symbol != "BTC-PERPETUAL" || list.Entries[1].Currency != "ETH" {
		t.Errorf("entries = %+v", list.Entries)
	}
}

func TestSecurityStatusRequestRequiresFields(t *testing.T) {
	r := &SecurityStatusRequest{}
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for missing fields")
	}
}
