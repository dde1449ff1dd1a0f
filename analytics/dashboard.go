package analytics

import (
	"fmt"
	"time"

	"genzshop-backend/models"
)

// recentWindow is how many of the newest orders feed the recent-orders and
// recent-activity panels.
const recentWindow = 5

// Snapshot is the single analytics view the dashboard renders.
type Snapshot struct {
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	Customers         int     `json:"customers"`
	Products          int     `json:"products"`
	AverageOrderValue float64 `json:"aov"`
}

// BuildSnapshot composes the order summary with the catalog size. When the
// product read failed (productCountOK false) the count degrades to the
// distinct productIds observed in the orders themselves; a failed product
// read never fails the dashboard.
func BuildSnapshot(orders []models.Order, productCount int, productCountOK bool) Snapshot {
	return SnapshotFrom(Summarize(orders), orders, productCount, productCountOK)
}

// SnapshotFrom is BuildSnapshot for callers that already computed the
// summary and want to reuse it instead of paying a second pass.
func SnapshotFrom(summary Summary, orders []models.Order, productCount int, productCountOK bool) Snapshot {
	if !productCountOK {
		productCount = DistinctProductCount(orders)
	}
	return Snapshot{
		Revenue:           summary.Revenue,
		Orders:            summary.OrderCount,
		Customers:         summary.DistinctCustomers,
		Products:          productCount,
		AverageOrderValue: summary.AverageOrderValue,
	}
}

// RecentOrders returns the first recentWindow orders of the input. The
// upstream read already returns newest-first, so no re-sort happens here.
func RecentOrders(orders []models.Order) []models.Order {
	if len(orders) > recentWindow {
		orders = orders[:recentWindow]
	}
	return orders
}

// Activity is one line of the recent-activity feed.
type Activity struct {
	OrderID string    `json:"orderId"`
	Status  string    `json:"status"`
	Text    string    `json:"text"`
	Time    time.Time `json:"time"`
}

// RecentActivity renders the recent orders as status narration.
func RecentActivity(orders []models.Order) []Activity {
	recent := RecentOrders(orders)
	feed := make([]Activity, 0, len(recent))
	for _, o := range recent {
		id := o.OrderID
		if id == "" {
			id = "N/A"
		}
		feed = append(feed, Activity{
			OrderID: id,
			Status:  o.Status,
			Text:    fmt.Sprintf("Order %s %s", id, o.Status),
			Time:    orderTime(o),
		})
	}
	return feed
}
