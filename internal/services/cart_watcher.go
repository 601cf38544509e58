package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// Subscribe delivers the user's cart (items + summary) whenever the persisted
// state changes, by polling the repository. The first snapshot is delivered
// immediately; the shared booking state is seeded from the first non-empty
// delivery. Returns the unsubscribe func.
func (s CartService) Subscribe(ctx context.Context, userID int64, interval time.Duration,
	onData func([]models.CartItem, models.CartSummary), onError func(error)) func() {

	if interval <= 0 {
		interval = 3 * time.Second
	}
	stop := make(chan struct{})

	go func() {
		var lastFingerprint string
		deliver := func() {
			items, summary, err := s.Cart(userID)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			fp := cartFingerprint(items)
			if fp == lastFingerprint {
				return
			}
			lastFingerprint = fp
			onData(items, summary)
		}

		deliver()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				deliver()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			utils.LogEvent(s.RequestID, "cart", "unsubscribe", fmt.Sprintf("user=%d", userID))
		})
	}
}

// cartFingerprint summarizes the cart for change detection between polls.
func cartFingerprint(items []models.CartItem) string {
	var b strings.Builder
	for _, it := range items {
		date := ""
		if it.SelectedDate != nil {
			date = utils.FormatDate(*it.SelectedDate)
		}
		fmt.Fprintf(&b, "%d:%d:%s:%d/%d/%d:%s:%d:%s;",
			it.ID, it.TourID, date,
			it.Travelers.Adults, it.Travelers.Children, it.Travelers.Infants,
			strings.Join(it.ActivityIDs, ","), it.TotalPrice, it.Status)
	}
	return b.String()
}
