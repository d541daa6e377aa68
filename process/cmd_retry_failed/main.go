package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"travelbe/pkg/passport"

	_ "github.com/lib/pq"
)

// Re-runs extraction for uploads that failed or produced a zero-confidence
// result, using the stored image under the upload base. Passenger records
// are only touched when the retry beats the current confidence.
func main() {
	base := flag.String("base", "uploads", "base dir for stored upload files")
	minConf := flag.Int("min-conf", 33, "minimum confidence (0-100) to apply a retry result")
	flag.Parse()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT up.id, up.store_path, up.passenger_id, p.extract_confidence
		FROM uploads up JOIN passengers p ON p.id = up.passenger_id
		WHERE up.failed = true OR up.confidence = 0`)
	if err != nil {
		log.Fatalf("query: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, passengerID, current int
		var store sql.NullString
		if err := rows.Scan(&id, &store, &passengerID, &current); err != nil {
			log.Printf("scan: %v", err)
			continue
		}
		if !store.Valid || store.String == "" {
			log.Printf("upload id=%d has no stored file, skipping", id)
			continue
		}
		path := filepath.Join(*base, store.String)

		res := passport.ExtractFromImage(path)
		if !res.Success {
			log.Printf("retry failed for upload id=%d: source unreadable", id)
			continue
		}

		if _, err := db.Exec(`UPDATE uploads SET raw_text=$1, confidence=$2, method=$3, failed=false, failed_reason='' WHERE id=$4`,
			res.RawText, res.Confidence, res.Method, id); err != nil {
			log.Printf("update upload id=%d: %v", id, err)
			continue
		}

		if res.Data == nil || res.Confidence < *minConf || res.Confidence <= current {
			log.Printf("retry upload id=%d conf=%d (current=%d min=%d), passenger untouched", id, res.Confidence, current, *minConf)
			continue
		}
		if _, err := db.Exec(`UPDATE passengers SET given_name=$1, surname=$2, document_number=$3, nationality=$4,
			date_of_birth=$5, expiration_date=$6, extract_confidence=$7, passport_status='extracted' WHERE id=$8`,
			res.Data.Name, res.Data.Surname, res.Data.DocumentNumber, res.Data.Nationality,
			res.Data.DateOfBirth, res.Data.ExpirationDate, res.Confidence, passengerID); err != nil {
			log.Printf("update passenger id=%d: %v", passengerID, err)
			continue
		}
		fmt.Printf("retried upload id=%d passenger=%d conf=%d method=%s\n", id, passengerID, res.Confidence, res.Method)
	}
}
