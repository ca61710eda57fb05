package domain

import "time"

type Order struct {
	ID          string
	TotalAmount float64
	TotalItems  int
	Status      string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderItem struct {
	ID        uint
	OrderID   string
	ProductID int
	Quantity  int
	// Price is the catalog price snapshotted when the order was created.
	// It is never refreshed from the catalog afterward.
	Price float64
	// Name is a read-time decoration resolved from the catalog; not persisted.
	Name string
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

var OrderStatusList = []string{
	OrderStatusPending,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatusList {
		if s == status {
			return true
		}
	}
	return false
}

// ComputeTotals derives the order aggregates from its items.
func (o *Order) ComputeTotals() {
	var amount float64
	var count int
	for _, item := range o.Items {
		amount += float64(item.Quantity) * item.Price
		count += item.Quantity
	}
	o.TotalAmount = amount
	o.TotalItems = count
}
