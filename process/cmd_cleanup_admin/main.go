package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Removes demo data created under the seeded admin account: notifications
// and payments hanging off admin sales, then the sales themselves.
func main() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var adminID sql.NullInt64
	if err := db.QueryRow(`SELECT id FROM users WHERE username='admin' LIMIT 1`).Scan(&adminID); err != nil {
		log.Fatalf("find admin: %v", err)
	}
	if !adminID.Valid {
		fmt.Println("admin user not found; nothing to cleanup")
		return
	}
	// Children first
	res1, err := db.Exec(`DELETE FROM notifications WHERE sale_id IN (SELECT id FROM sales WHERE user_id=$1)`, adminID.Int64)
	if err != nil {
		log.Fatalf("delete admin notifications: %v", err)
	}
	n1, _ := res1.RowsAffected()
	res2, err := db.Exec(`DELETE FROM payments WHERE sale_id IN (SELECT id FROM sales WHERE user_id=$1)`, adminID.Int64)
	if err != nil {
		log.Fatalf("delete admin payments: %v", err)
	}
	n2, _ := res2.RowsAffected()
	res3, err := db.Exec(`DELETE FROM sales WHERE user_id=$1`, adminID.Int64)
	if err != nil {
		log.Fatalf("delete admin sales: %v", err)
	}
	n3, _ := res3.RowsAffected()
	fmt.Printf("cleanup done: notifications=%d payments=%d sales=%d\n", n1, n2, n3)
}
