package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	CustomerID      string
	Name            string
	Surname         string
	Username        string
	Email           string
	ShippingAddress string
	CreationDate    time.Time
}

// NewCustomer assigns the identifier up front so it is never empty by the
// time the record leaves the process.
func NewCustomer() Customer {
	return Customer{
		CustomerID:   uuid.New().String(),
		CreationDate: time.Now().UTC(),
	}
}

func (c Customer) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
