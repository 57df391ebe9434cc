// Package store holds client-side order/quote state and SQLite-backed
// market data persistence, mirroring the reference client's own
// bookkeeping rather than trusting the exchange to be the sole source
// of truth between requests.
package store

import (
	"sync"
	"time"

	"github.com/joaquinbejar/deribit-fix/message"
)

// Order is the client-tracked state of one order, built up from the
// ExecutionReports the gateway sends for it.
type Order struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	ClOrdID string
	OrderID string
	Symbol  string
	Side    string
	OrdType string
	Label   string // DeribitLabel, the client's own order tag

	OrdStatus string
	ExecType  string

	OrderQty  string
	Price     string
	AvgPx     string
	CumQty    string
	LeavesQty string

	LastPx  string
	LastQty string
	ExecID  string

	Text string
}

// Quote is the client-tracked state of one two-sided quote entry
// published via MassQuote.
type Quote struct {
	ReceivedAt time.Time
	QuoteID    string
	Symbol     string
	BidPx      string
	OfferPx    string
	BidSize    string
	OfferSize  string
}

// OrderStore provides thread-safe tracking of open orders and
// outstanding quotes for one session.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*Order // ClOrdID -> Order
	quotes map[string]*Quote // QuoteID -> Quote
}

// NewOrderStore returns an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*Order),
		quotes: make(map[string]*Quote),
	}
}

// UpdateFromExecutionReport folds a parsed ExecutionReport into the
// order it refers to, creating the order if this is the first report
// seen for its ClOrdID.
func (s *OrderStore) UpdateFromExecutionReport(er *message.ExecutionReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[er.ClOrdID]
	if !exists {
		order = &Order{ClOrdID: er.ClOrdID, CreatedAt: time.Now()}
		s.orders[er.ClOrdID] = order
	}

	order.UpdatedAt = time.Now()
	order.OrderID = er.OrderID
	order.Symbol = er.Symbol
	order.Side = string(er.Side)
	order.OrdStatus = string(er.OrdStatus)
	order.ExecType = string(er.ExecType)
	order.Label = er.Label

	if er.OrderQty != "" {
		order.OrderQty = er.OrderQty
	}
	if er.Price != "" {
		order.Price = er.Price
	}
	if er.AvgPx != "" {
		order.AvgPx = er.AvgPx
	}
	if er.CumQty != "" {
		order.CumQty = er.CumQty
	}
	if er.LeavesQty != "" {
		order.LeavesQty = er.LeavesQty
	}
	if er.LastPx != "" {
		order.LastPx = er.LastPx
	}
	if er.LastQty != "" {
		order.LastQty = er.LastQty
	}
	if er.ExecID != "" {
		order.ExecID = er.ExecID
	}
	if er.Text != "" {
		order.Text = er.Text
	}
}

// GetOrder retrieves a defensive copy of the order tracked under
// clOrdID, or nil if no report has been seen for it yet.
func (s *OrderStore) GetOrder(clOrdID string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.orders[clOrdID]; ok {
		cp := *o
		return &cp
	}
	return nil
}

// GetOrderByOrderID scans for an order by exchange-assigned OrderID.
func (s *OrderStore) GetOrderByOrderID(orderID string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			cp := *o
			return &cp
		}
	}
	return nil
}

// GetOpenOrders returns every order not in a terminal status.
func (s *OrderStore) GetOpenOrders() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Order, 0)
	for _, o := range s.orders {
		if isOpenStatus(o.OrdStatus) {
			cp := *o
			result = append(result, &cp)
		}
	}
	return result
}

// RemoveOrder drops an order from tracking, e.g. once terminal and no
// longer of interest.
func (s *OrderStore) RemoveOrder(clOrdID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, clOrdID)
}

// isOpenStatus reports whether an OrdStatus value represents a
// working order rather than a terminal one.
func isOpenStatus(status string) bool {
	switch status {
	case "0", "1", "6", "9", "A", "E": // New, PartiallyFilled, PendingCancel, Suspended, PendingNew, PendingReplace
		return true
	default:
		return false
	}
}

// UpsertQuote records or refreshes the client's view of a published
// quote entry.
func (s *OrderStore) UpsertQuote(quoteID string, e message.QuoteEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[quoteID] = &Quote{
		ReceivedAt: time.Now(),
		QuoteID:    quoteID,
		Symbol:     e.Symbol,
		BidPx:      e.BidPx,
		OfferPx:    e.OfferPx,
		BidSize:    e.BidSize,
		OfferSize:  e.OfferSize,
	}
}

// GetQuote retrieves a defensive copy of a tracked quote.
func (s *OrderStore) GetQuote(quoteID string) *Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q, ok := s.quotes[quoteID]; ok {
		cp := *q
		return &cp
	}
	return nil
}

// RemoveQuote drops a quote from tracking, e.g. after a QuoteCancel.
func (s *OrderStore) RemoveQuote(quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotes, quoteID)
}

// GetAllQuotes returns a copy of every tracked quote.
func (s *OrderStore) GetAllQuotes() []*Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		cp := *q
		result = append(result, &cp)
	}
	return result
}
