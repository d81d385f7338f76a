package models

// Sale records the quantity of a single menu item sold on one day.
type Sale struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

// Order is one calendar day's set of sales. Item ids are unique within
// an order.
type Order struct {
	Date  Date   `json:"date"`
	Sales []Sale `json:"sales"`
}

// AddSale appends a sale for itemID. It fails when the order already
// holds a sale for that item.
func (o *Order) AddSale(itemID string, quantity float64) bool {
	for _, sale := range o.Sales {
		if sale.ItemID == itemID {
			return false
		}
	}
	o.Sales = append(o.Sales, Sale{ItemID: itemID, Quantity: quantity})
	return true
}

// ModifySale updates the quantity of an existing sale. A zero quantity
// leaves the stored value untouched; the call still succeeds. That
// quirk is deliberate: bulk imports send zero to mean "no change", not
// "zero out".
func (o *Order) ModifySale(itemID string, quantity float64) bool {
	for i := range o.Sales {
		if o.Sales[i].ItemID == itemID {
			if quantity != 0 {
				o.Sales[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RemoveSale deletes the sale for itemID.
func (o *Order) RemoveSale(itemID string) bool {
	for i, sale := range o.Sales {
		if sale.ItemID == itemID {
			o.Sales = append(o.Sales[:i], o.Sales[i+1:]...)
			return true
		}
	}
	return false
}

// Sale returns the sale for itemID, if any.
func (o *Order) Sale(itemID string) (Sale, bool) {
	for _, sale := range o.Sales {
		if sale.ItemID == itemID {
			return sale, true
		}
	}
	return Sale{}, false
}

// HasItem reports whether the order holds a sale for itemID.
func (o *Order) HasItem(itemID string) bool {
	_, ok := o.Sale(itemID)
	return ok
}

// Total sums the quantities of every sale in the order.
func (o *Order) Total() float64 {
	var total float64
	for _, sale := range o.Sales {
		total += sale.Quantity
	}
	return total
}

// OrderLedger is the per-account collection of daily orders. Dates are
// unique within a ledger and no empty order persists. The same shape
// backs the prediction ledger, which holds only forecast-origin orders.
type OrderLedger struct {
	UserID string  `json:"user_id"`
	Orders []Order `json:"orders"`
}

func (l *OrderLedger) findOrder(date Date) *Order {
	for i := range l.Orders {
		if l.Orders[i].Date.Equal(date) {
			return &l.Orders[i]
		}
	}
	return nil
}

// GetOrder returns the order for date. It is read-only and never
// creates an order as a side effect.
func (l *OrderLedger) GetOrder(date Date) (*Order, bool) {
	order := l.findOrder(date)
	return order, order != nil
}

// AddSale records a sale for itemID on date, creating the order for
// that date when absent. It fails when the date already holds a sale
// for the item.
func (l *OrderLedger) AddSale(date Date, itemID string, quantity float64) bool {
	if order := l.findOrder(date); order != nil {
		return order.AddSale(itemID, quantity)
	}
	l.Orders = append(l.Orders, Order{Date: date, Sales: []Sale{{ItemID: itemID, Quantity: quantity}}})
	return true
}

// AddOrUpdateSale records a sale for itemID on date, overwriting the
// quantity when the item is already present. Used by bulk CSV import;
// always succeeds. Inherits ModifySale's zero-is-no-op behavior.
func (l *OrderLedger) AddOrUpdateSale(date Date, itemID string, quantity float64) bool {
	if order := l.findOrder(date); order != nil {
		if !order.AddSale(itemID, quantity) {
			order.ModifySale(itemID, quantity)
		}
		return true
	}
	l.Orders = append(l.Orders, Order{Date: date, Sales: []Sale{{ItemID: itemID, Quantity: quantity}}})
	return true
}

// ModifySale updates the quantity of an existing sale. Fails when the
// date or the item is not found.
func (l *OrderLedger) ModifySale(date Date, itemID string, quantity float64) bool {
	order := l.findOrder(date)
	if order == nil {
		return false
	}
	return order.ModifySale(itemID, quantity)
}

// RemoveSale deletes the sale for itemID on date. When the last sale
// goes, the order itself is removed from the ledger.
func (l *OrderLedger) RemoveSale(date Date, itemID string) bool {
	for i := range l.Orders {
		if !l.Orders[i].Date.Equal(date) {
			continue
		}
		if !l.Orders[i].RemoveSale(itemID) {
			return false
		}
		if len(l.Orders[i].Sales) == 0 {
			l.Orders = append(l.Orders[:i], l.Orders[i+1:]...)
		}
		return true
	}
	return false
}

// PutOrder inserts order, replacing any existing order for the same
// date wholesale. Forecast runs use this so reruns never merge with
// stale output.
func (l *OrderLedger) PutOrder(order Order) {
	for i := range l.Orders {
		if l.Orders[i].Date.Equal(order.Date) {
			l.Orders[i] = order
			return
		}
	}
	l.Orders = append(l.Orders, order)
}

// LatestOrder returns the order with the greatest date.
func (l *OrderLedger) LatestOrder() (*Order, bool) {
	var latest *Order
	for i := range l.Orders {
		if latest == nil || l.Orders[i].Date.After(latest.Date.Time) {
			latest = &l.Orders[i]
		}
	}
	return latest, latest != nil
}
