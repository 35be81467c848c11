package dto

// StatsResponse aggregates the dashboard figures computed from the three
// collections.
type StatsResponse struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalProducts    int     `json:"totalProducts"`
	TotalOrders      int     `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	ActiveUsers      int     `json:"activeUsers"`
	LowStockProducts int     `json:"lowStockProducts"`
	PendingOrders    int     `json:"pendingOrders"`
}
