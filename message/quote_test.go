package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestMassQuoteTagBlockRoundTrip(t *testing.T) {
	entries := []QuoteEntry{
		{QuoteEntryID: "E1", Symbol: "BTC-PERPETUAL", BidPx: "49900", OfferPx: "50100", BidSize: "10", OfferSize: "10"},
		{QuoteEntryID: "E2", Symbol: "ETH-PERPETUAL", BidPx: "2990", OfferPx: "3010", BidSize: "20", OfferSize: "15"},
	}
	q := NewMassQuote("Q1", entries...)
	m, err := q.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var zero MassQuoteAcknowledgement
	// MassQuoteAcknowledgement parsing expects a MassQuoteAcknowledgement
	// MsgType, but the tag-block payload is identical across both
	// messages, so borrow it here to validate the decode path without
	// constructing a second MsgType-correct message.
	m.Set(constants.TagMsgType, constants.MsgTypeMassQuoteAcknowledgement)
	ack, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(ack.Entries) != 2 {
		t.Fatalf("Entries count = %d, want 2", len(ack.Entries))
	}
	if ack.Entries[0].QuoteEntryID != "E1" || ack.Entries[0].BidPx != "49900" {
		t.Errorf("entry 0 = %+v", ack.Entries[0])
	}
	if ack.Entries[1].Symbol != "ETH-PERPETUAL" || ack.Entries[1].OfferSize != "15" {
		t.Errorf("entry 1 = %+v", ack.Entries[1])
	}
}

func TestMassQuoteStandardDialectRoundTrip(t *testing.T) {
	entries := []QuoteEntry{
		{QuoteEntryID: "E1", Symbol: "BTC-PERPETUAL", BidPx: "49900", OfferPx: "50100", BidSize: "10", OfferSize: "10"},
		{QuoteEntryID: "E2", Symbol: "ETH-PERPETUAL", BidPx: "2990", OfferPx: "3010", BidSize: "20", OfferSize: "15"},
	}
	q := NewMassQuote("Q1", entries...).WithStandardDialect()
	m, err := q.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := m.GetInt(constants.TagNoQuoteEntries); !ok || n != 2 {
		t.Fatalf("NoQuoteEntries = %v, want 2", n)
	}

	var zero MassQuoteAcknowledgement
	m.Set(constants.TagMsgType, constants.MsgTypeMassQuoteAcknowledgement)
	ack, err := zero.FromFixMessage(m)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(ack.Entries) != 2 {
		t.Fatalf("Entries count = %d, want 2", len(ack.Entries))
	}
	if ack.Entries[0].QuoteEntryID != "E1" || ack.Entries[1].Symbol != "ETH-PERPETUAL" {
		t.Errorf("entries = %+v", ack.Entries)
	}
}

func TestQuoteCancelWithEntriesTagBlockDialect(t *testing.T) {
	q := NewQuoteCancel("Q1").WithEntries(
		QuoteCancelEntry{QuoteEntryID: "E1", Symbol: "BTC-PERPETUAL"},
		QuoteCancelEntry{QuoteEntryID: "E2", Symbol: "ETH-PERPETUAL"},
	)
	m, err := q.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Has(constants.TagNoQuoteEntries) {
		t.Error("tag-block dialect must not set NoQuoteEntries")
	}
}

func TestQuoteCancelWithEntriesStandardDialect(t *testing.T) {
	q := NewQuoteCancel("Q1").WithEntries(QuoteCancelEntry{QuoteEntryID: "E1", Symbol: "BTC-PERPETUAL"}).WithStandardDialect()
	m, err := q.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := m.GetInt(constants.TagNoQuoteEntries); !ok || n != 1 {
		t.Fatalf("NoQuoteEntries = %v, want 1", n)
	}
}

func TestMassQuoteRequiresEntries(t *testing.T) {
	q := NewMassQuote("Q1")
	if _, err := q.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for empty entries")
	}
}

func TestQuoteRequestRequiresSymbol(t *testing.T) {
	q := NewQuoteRequest("QR1")
	if _, err := q.ToFixMessage("A", "B", 1); err == nil {
		t.Fatal("expected error for no symbols")
	}
}
