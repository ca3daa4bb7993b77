package admin

import (
	"net/http"
	"time"

	"artisan-backend/database"
	"artisan-backend/internal/domain/catalog"
	"artisan-backend/internal/domain/orders"
	"artisan-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalUsers      int            `json:"total_users"`
	TotalPaintings  int            `json:"total_paintings"`
	TotalOrders     int            `json:"total_orders"`
	TotalRevenue    float64        `json:"total_revenue"`
	RecentRevenue   float64        `json:"recent_revenue"`
	OrdersPerStatus map[string]int `json:"orders_per_status"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalPaintings, totalOrders int64
	var totalRevenue, recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&catalog.Painting{}).Count(&totalPaintings)
	database.DB.Model(&orders.Order{}).Count(&totalOrders)

	database.DB.Model(&orders.Order{}).
		Where("is_paid = ?", true).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&orders.Order{}).
		Where("is_paid = ? AND paid_at >= ?", true, thirtyDaysAgo).
		Select("COALESCE(SUM(total_price), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalPaintings = int(totalPaintings)
	stats.TotalOrders = int(totalOrders)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type StatusCount struct {
		Status string
		Count  int
	}
	var counts []StatusCount

	database.DB.
		Table("orders").
		Select("delivery_status as status, COUNT(id) as count").
		Group("delivery_status").
		Scan(&counts)

	stats.OrdersPerStatus = map[string]int{}
	for _, sc := range counts {
		stats.OrdersPerStatus[sc.Status] = sc.Count
	}

	c.JSON(http.StatusOK, stats)
}
