package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/codec"
	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestMarketDataRequestFields(t *testing.T) {
	r := NewMarketDataRequest("MD1", SubscriptionTypeSnapshotPlusUpdates, 0).
		WithEntryTypes(MDEntryTypeBid, MDEntryTypeOffer).
		WithSymbols("BTC-PERPETUAL")
	m, err := r.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := m.GetInt(constants.TagNoMDEntryTypes); n != 2 {
		t.Errorf("NoMDEntryTypes = %d, want 2", n)
	}
	if n, _ := m.GetInt(constants.TagNoRelatedSym); n != 1 {
		t.Errorf("NoRelatedSym = %d, want 1", n)
	}
}

func TestMarketDataRequestRequiresSymbol(t *testing.T) {
	r := NewMarketDataRequest("MD1", SubscriptionTypeSnapshot, 0)
	if _, err := r.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for no symbols")
	}
}

func TestMarketDataSnapshotFullRefreshParses(t *testing.T) {
	m := codec.NewMessage()
	m.Set(constants.TagMsgType, constants.MsgTypeMarketDataSnapshotFull)
	m.Set(constants.TagMDReqID, "MD1")
	m.Set(constants.TagSymbol, "BTC-PERPETUAL")
	m.Add(constants.TagMDEntryType, constants.MDEntryTypeBid)
	m.Add(constants.TagMDEntryPx, "49900")
	m.Add(constants.TagMDEntrySize, "10")
	m.Add(constants.TagMDEntryType, constants.MDEntryTypeOffer)
	m.Add(constants.TagMDEntryPx, "50100")
	m.Add(constants.TagMDEntrySize, "5")

	var zero MarketDataSnapshotFullRefresh
	snap, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(snap.Entries))
	}
	if snap.Entries[0].EntryType != MDEntryTypeBid || snap.Entries[0].Px != "49900" {
		t.Errorf("entry 0 = %+v", snap.Entries[0])
	}
	if snap.Entries[1].EntryType != MDEntryTypeOffer || snap.Entries[1].Size != "5" {
		t.Errorf("entry 1 = %+v", snap.Entries[1])
	}
}
