package store

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/joaquinbejar/deribit-fix/message"
	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	s, err := NewSQLiteStore(path, discardLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRecordTick(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordTick(Tick{Symbol: "BTC-PERPETUAL", EntryType: "2", Px: "50000", Size: "1", IsSnapshot: false})
	if err != nil {
		t.Fatalf("RecordTick: %v", err)
	}
}

func TestSQLiteStoreRecordTickBatch(t *testing.T) {
	s := newTestStore(t)
	ticks := []Tick{
		{Symbol: "BTC-PERPETUAL", EntryType: "0", Px: "49900", Size: "10", IsSnapshot: true},
		{Symbol: "BTC-PERPETUAL", EntryType: "1", Px: "50100", Size: "8", IsSnapshot: true},
	}
	if err := s.RecordTickBatch(ticks); err != nil {
		t.Fatalf("RecordTickBatch: %v", err)
	}
}

func TestSQLiteStoreRecordTickBatchEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.RecordTickBatch(nil); err != nil {
		t.Fatalf("RecordTickBatch(nil): %v", err)
	}
}

func TestSQLiteStoreRecordExecutionReport(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordExecutionReport(&message.ExecutionReport{
		ClOrdID: "C1", OrderID: "O1", Symbol: "BTC-PERPETUAL",
		Side: message.SideBuy, OrdStatus: message.OrdStatusNew, ExecType: message.ExecTypeNew,
	})
	if err != nil {
		t.Fatalf("RecordExecutionReport: %v", err)
	}
}

func TestSQLiteStoreRecordPosition(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordPosition(&message.PositionReport{PosReqID: "P1", Symbol: "BTC-PERPETUAL", PositionQty: "1.5"})
	if err != nil {
		t.Fatalf("RecordPosition: %v", err)
	}
}
