package analytics

import (
	"sort"
	"strings"
	"time"

	"genzshop-backend/models"
)

// CustomerOrder is one entry of a customer's order history.
type CustomerOrder struct {
	ID     string             `json:"id"`
	Amount float64            `json:"amount"`
	Status string             `json:"status"`
	Time   time.Time          `json:"time"`
	Items  []models.OrderItem `json:"items"`
}

// Customer is a roll-up derived from the order stream, keyed by the
// shipping email. It is rebuilt on every fetch and never persisted.
type Customer struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  float64         `json:"totalSpent"`
	FirstOrder  time.Time       `json:"firstOrder"`
	LastOrder   time.Time       `json:"lastOrder"`
	Orders      []CustomerOrder `json:"orders"`
}

// orderTime is the timestamp used for customer recency, falling back to the
// update time for documents written before createdAt existed.
func orderTime(o models.Order) time.Time {
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt
	}
	return o.UpdatedAt
}

// BuildCustomers groups orders by shipping email into customer records,
// sorted by most recent order first. Orders without an email are excluded
// here even though they still count toward global revenue; that asymmetry
// is intentional and matches what the admin always showed. Customers whose
// orders all lack timestamps sort last.
func BuildCustomers(orders []models.Order) []Customer {
	byEmail := make(map[string]*Customer)
	var keys []string

	for _, o := range orders {
		email := o.ShippingAddress.Email
		if email == "" {
			continue
		}

		c, ok := byEmail[email]
		if !ok {
			name := o.ShippingAddress.Name
			if name == "" {
				name = email
			}
			c = &Customer{
				Name:    name,
				Email:   email,
				Phone:   o.ShippingAddress.Phone,
				Address: composeAddress(o.ShippingAddress),
			}
			byEmail[email] = c
			keys = append(keys, email)
		}

		amount := ResolveAmount(o)
		at := orderTime(o)

		c.TotalOrders++
		c.TotalSpent += amount
		c.Orders = append(c.Orders, CustomerOrder{
			ID:     o.OrderID,
			Amount: amount,
			Status: o.Status,
			Time:   at,
			Items:  o.Items,
		})
		if !at.IsZero() {
			if c.FirstOrder.IsZero() || at.Before(c.FirstOrder) {
				c.FirstOrder = at
			}
			if at.After(c.LastOrder) {
				c.LastOrder = at
			}
		}
	}

	list := make([]Customer, 0, len(keys))
	for _, email := range keys {
		list = append(list, *byEmail[email])
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LastOrder.After(list[j].LastOrder)
	})
	return list
}

// History returns the customer's orders newest-first for the detail view.
// The directory itself keeps them in encounter order.
func (c Customer) History() []CustomerOrder {
	history := append([]CustomerOrder(nil), c.Orders...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Time.After(history[j].Time)
	})
	return history
}

// FilterCustomers keeps the customers whose name or email contains term,
// case-insensitively. An empty term keeps everything.
func FilterCustomers(customers []Customer, term string) []Customer {
	if term == "" {
		return customers
	}
	term = strings.ToLower(term)
	filtered := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func composeAddress(addr models.ShippingAddress) string {
	parts := make([]string, 0, 2)
	if addr.City != "" {
		parts = append(parts, addr.City)
	}
	if addr.State != "" {
		parts = append(parts, addr.State)
	}
	return strings.Join(parts, ", ")
}
