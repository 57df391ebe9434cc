package store

import (
	"database/sql"

	"github.com/joaquinbejar/deribit-fix/errs"
	"github.com/joaquinbejar/deribit-fix/message"
	"github.com/sirupsen/logrus"

	_ "github.com/mattn/go-sqlite3"
)

const (
	schemaDDL = `
CREATE TABLE IF NOT EXISTS ticks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol TEXT NOT NULL,
	entry_type TEXT NOT NULL,
	px TEXT,
	size TEXT,
	md_req_id TEXT,
	is_snapshot INTEGER NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_ticks_symbol ON ticks(symbol);

CREATE TABLE IF NOT EXISTS executions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	cl_ord_id TEXT NOT NULL,
	order_id TEXT,
	exec_id TEXT,
	exec_type TEXT,
	ord_status TEXT,
	symbol TEXT,
	side TEXT,
	order_qty TEXT,
	price TEXT,
	last_px TEXT,
	last_qty TEXT,
	leaves_qty TEXT,
	cum_qty TEXT,
	avg_px TEXT,
	label TEXT,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_executions_cl_ord_id ON executions(cl_ord_id);

CREATE TABLE IF NOT EXISTS positions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pos_req_id TEXT,
	symbol TEXT NOT NULL,
	position_qty TEXT,
	avg_px TEXT,
	unrealized_pnl TEXT,
	realized_pnl TEXT,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_positions_symbol ON positions(symbol);
`

	insertTickQuery = `INSERT INTO ticks (symbol, entry_type, px, size, md_req_id, is_snapshot) VALUES (?, ?, ?, ?, ?, ?)`

	insertExecutionQuery = `INSERT INTO executions
		(cl_ord_id, order_id, exec_id, exec_type, ord_status, symbol, side, order_qty, price, last_px, last_qty, leaves_qty, cum_qty, avg_px, label)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertPositionQuery = `INSERT INTO positions
		(pos_req_id, symbol, position_qty, avg_px, unrealized_pnl, realized_pnl)
		VALUES (?, ?, ?, ?, ?, ?)`
)

// SQLiteStore is the durable system of record for ticks, execution
// reports, and position snapshots, backed by SQLite with prepared
// statements reused across inserts to avoid re-parsing SQL on every
// message.
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Logger

	stmtTick      *sql.Stmt
	stmtExecution *sql.Stmt
	stmtPosition  *sql.Stmt
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at
// path in WAL mode and prepares its statements.
func NewSQLiteStore(path string, log *logrus.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = logrus.New()
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, err, "open sqlite database %q", path)
	}

	s := &SQLiteStore{db: db, log: log}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(errs.KindIO, err, "initialize schema")
	}

	if s.stmtTick, err = db.Prepare(insertTickQuery); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(errs.KindIO, err, "prepare tick statement")
	}
	if s.stmtExecution, err = db.Prepare(insertExecutionQuery); err != nil {
		_ = s.stmtTick.Close()
		_ = db.Close()
		return nil, errs.Wrap(errs.KindIO, err, "prepare execution statement")
	}
	if s.stmtPosition, err = db.Prepare(insertPositionQuery); err != nil {
		_ = s.stmtTick.Close()
		_ = s.stmtExecution.Close()
		_ = db.Close()
		return nil, errs.Wrap(errs.KindIO, err, "prepare position statement")
	}

	log.WithField("path", path).Info("store: sqlite database ready")
	return s, nil
}

// Close releases the prepared statements and the underlying database
// handle.
func (s *SQLiteStore) Close() error {
	_ = s.stmtTick.Close()
	_ = s.stmtExecution.Close()
	_ = s.stmtPosition.Close()
	return s.db.Close()
}

// RecordTick persists one market data entry.
func (s *SQLiteStore) RecordTick(t Tick) error {
	_, err := s.stmtTick.Exec(t.Symbol, t.EntryType, t.Px, t.Size, t.MDReqID, t.IsSnapshot)
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "record tick for %s", t.Symbol)
	}
	return nil
}

// RecordTickBatch persists every entry of a snapshot or incremental
// refresh within a single transaction, avoiding one fsync per row.
func (s *SQLiteStore) RecordTickBatch(ticks []Tick) error {
	if len(ticks) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "begin tick batch transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt := tx.Stmt(s.stmtTick)
	for _, t := range ticks {
		if _, err := stmt.Exec(t.Symbol, t.EntryType, t.Px, t.Size, t.MDReqID, t.IsSnapshot); err != nil {
			return errs.Wrap(errs.KindIO, err, "record tick batch entry for %s", t.Symbol)
		}
	}
	if err := tx.Commit(); err != nil {
		return errs.Wrap(errs.KindIO, err, "commit tick batch transaction")
	}
	return nil
}

// RecordExecutionReport persists one parsed ExecutionReport.
func (s *SQLiteStore) RecordExecutionReport(er *message.ExecutionReport) error {
	_, err := s.stmtExecution.Exec(er.ClOrdID, er.OrderID, er.ExecID, string(er.ExecType), string(er.OrdStatus),
		er.Symbol, string(er.Side), er.OrderQty, er.Price, er.LastPx, er.LastQty, er.LeavesQty, er.CumQty, er.AvgPx, er.Label)
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "record execution report for %s", er.ClOrdID)
	}
	return nil
}

// RecordPosition persists one parsed PositionReport.
func (s *SQLiteStore) RecordPosition(p *message.PositionReport) error {
	_, err := s.stmtPosition.Exec(p.PosReqID, p.Symbol, p.PositionQty, p.AvgPx, p.UnrealizedPnL, p.RealizedPnL)
	if err != nil {
		return errs.Wrap(errs.KindIO, err, "record position for %s", p.Symbol)
	}
	return nil
}
