package main

import (
	"fmt"
	"log"
	"time"

	"travelbe/models"

	"github.com/robfig/cron/v3"
)

const reminderKind = "departure-reminder"

// reminderWindow is how far ahead of departure a reminder is generated.
const reminderWindow = 48 * time.Hour

// startReminderCron schedules the hourly job that generates departure
// reminders. It also runs one sweep immediately so a restart does not
// delay reminders by up to an hour.
func startReminderCron() {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", runReminderSweep); err != nil {
		log.Printf("failed to schedule reminder job: %v", err)
		return
	}
	c.Start()
	go runReminderSweep()
}

// runReminderSweep creates a departure reminder for every open sale leaving
// within the reminder window that doesn't have one yet. The unique index on
// (sale_id, kind) makes the insert idempotent across overlapping runs.
func runReminderSweep() {
	now := time.Now()
	var sales []models.Sale
	err := db.
		Where("departure_date > ? AND departure_date <= ?", now, now.Add(reminderWindow)).
		Where("status <> ?", "cancelled").
		Where("id NOT IN (?)", db.Model(&models.Notification{}).Select("sale_id").Where("kind = ?", reminderKind)).
		Find(&sales).Error
	if err != nil {
		log.Printf("reminder sweep query failed: %v", err)
		return
	}
	for _, s := range sales {
		msg := fmt.Sprintf("Trip to %s departs %s", s.Destination, s.DepartureDate.Format("2006-01-02 15:04"))
		sent := time.Now()
		n := models.Notification{SaleID: s.ID, Kind: reminderKind, Message: msg, SentAt: &sent}
		if err := db.Create(&n).Error; err != nil {
			// a concurrent sweep may have inserted it already
			if !isUniqueConstraintError(err) {
				log.Printf("failed to create reminder for sale %d: %v", s.ID, err)
			}
			continue
		}
		log.Printf("departure reminder generated: sale=%d destination=%s", s.ID, s.Destination)
	}
}
