package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	OrderID     string
	CustomerID  string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int
	TotalPrice  int
	OrderDate   time.Time
	Status      string
}

const (
	OrderStatusPending    = "Pending"
	OrderStatusSubmitted  = "Submitted"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses lists the states the backend understands, in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusSubmitted,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func NewOrder() Order {
	return Order{
		OrderID:   uuid.New().String(),
		OrderDate: time.Now(),
		Status:    OrderStatusPending,
	}
}

// ComputedTotal is the only trusted total; the wire value may be stale.
func (o Order) ComputedTotal() int {
	return o.Quantity * o.UnitPrice
}
