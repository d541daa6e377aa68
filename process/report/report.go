package report

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"travelbe/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// RunReport prints a month-bounded sales report for an agent (month in
// YYYY-MM) and optionally lists the matching sale rows.
func RunReport(username, month string, list bool) {
	gdb := mustDBFromEnv()

	var user models.User
	if err := gdb.Where("username = ?", username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total sql.NullInt64
	var cnt int64
	var paid sql.NullInt64
	row := gdb.Raw(`SELECT COALESCE(SUM(s.price),0) AS total, COUNT(*) AS cnt,
		COALESCE((SELECT SUM(p.amount) FROM payments p JOIN sales s2 ON s2.id = p.sale_id
			WHERE s2.user_id = ? AND s2.departure_date >= ? AND s2.departure_date < ?),0) AS paid
		FROM sales s WHERE s.user_id = ? AND s.departure_date >= ? AND s.departure_date < ?`,
		user.ID, start, end, user.ID, start, end).Row()
	if err := row.Scan(&total, &cnt, &paid); err != nil {
		log.Fatalf("query failed: %v", err)
	}

	fmt.Printf("Report for agent=%s month=%s (UTC):\n", user.Username, month)
	fmt.Printf("  sales=%d total=%d paid=%d outstanding=%d\n", cnt, total.Int64, paid.Int64, total.Int64-paid.Int64)

	if list {
		var rows []models.Sale
		if err := gdb.Where("user_id = ? AND departure_date >= ? AND departure_date < ?", user.ID, start, end).Order("id").Find(&rows).Error; err != nil {
			log.Fatalf("fetch rows failed: %v", err)
		}
		for _, s := range rows {
			fmt.Printf("%d|%s|%d|%s|%s\n", s.ID, s.Destination, s.Price, s.Status, s.DepartureDate.Format(time.RFC3339))
		}
	}
}
