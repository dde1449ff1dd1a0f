// Package analytics derives dashboard and customer views from raw order
// documents. Everything here is a pure function over an already-fetched
// slice of orders; each call rebuilds its result from scratch, so there is
// no cached state to invalidate and no locking.
package analytics

import (
	"sort"

	"genzshop-backend/models"
)

// ResolveAmount picks the order's currency amount with the precedence
// totalAmount > total > subtotal. A field that is missing or zero falls
// through to the next one; if none is populated the order counts as 0.
// Older order documents only carry total or subtotal, which is why the
// fallback chain exists at all.
func ResolveAmount(o models.Order) float64 {
	for _, v := range []*float64{o.TotalAmount, o.Total, o.Subtotal} {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}

// Summary is the aggregate view over a full order sequence.
type Summary struct {
	Revenue           float64        `json:"revenue"`
	OrderCount        int            `json:"orders"`
	DistinctCustomers int            `json:"customers"`
	AverageOrderValue float64        `json:"aov"`
	StatusCounts      map[string]int `json:"statusCounts"`
}

// Summarize computes revenue, order count, AOV, distinct customer count and
// per-status counts in a single pass. Malformed orders degrade to defaults;
// an empty input yields a zero-valued summary, never an error.
func Summarize(orders []models.Order) Summary {
	s := Summary{StatusCounts: make(map[string]int, len(models.OrderStatuses))}
	for _, status := range models.OrderStatuses {
		s.StatusCounts[status] = 0
	}

	emails := make(map[string]struct{})
	for _, o := range orders {
		s.Revenue += ResolveAmount(o)
		if email := o.ShippingAddress.Email; email != "" {
			emails[email] = struct{}{}
		}
		if models.IsValidStatus(o.Status) {
			s.StatusCounts[o.Status]++
		}
	}

	s.OrderCount = len(orders)
	s.DistinctCustomers = len(emails)
	if s.OrderCount > 0 {
		s.AverageOrderValue = s.Revenue / float64(s.OrderCount)
	}
	return s
}

// ProductSales is one row of the top-products ranking.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// TopProducts groups line items across all orders by productId and returns
// the n products with the highest accumulated revenue. Items without a
// productId are skipped entirely. A missing (or zero) quantity counts as 1
// and a missing price as 0. Ties keep first-encounter order.
func TopProducts(orders []models.Order, n int) []ProductSales {
	byID := make(map[string]*ProductSales)
	var order []string

	for _, o := range orders {
		for _, it := range o.Items {
			if it.ProductID == "" {
				continue
			}
			entry, ok := byID[it.ProductID]
			if !ok {
				name := it.Name
				if name == "" {
					name = "Unknown"
				}
				entry = &ProductSales{ProductID: it.ProductID, Name: name}
				byID[it.ProductID] = entry
				order = append(order, it.ProductID)
			}
			qty := it.Quantity
			if qty == 0 {
				qty = 1
			}
			entry.Quantity += qty
			entry.Revenue += it.Price * float64(qty)
		}
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byID[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DistinctProductCount counts the distinct productIds seen across all order
// items. Used as the degraded catalog-size metric when the products
// collection cannot be read.
func DistinctProductCount(orders []models.Order) int {
	seen := make(map[string]struct{})
	for _, o := range orders {
		for _, it := range o.Items {
			if it.ProductID != "" {
				seen[it.ProductID] = struct{}{}
			}
		}
	}
	return len(seen)
}
