// Package services contains infrastructure-level domain services.
package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// TicketSerialAllocator hands out dense, strictly increasing ticket serials.
// It seeds from MAX(serial) on first use and then counts in process; the
// mutex serializes concurrent creations.
type TicketSerialAllocator struct {
	db     *gorm.DB
	mu     sync.Mutex
	next   uint64
	seeded bool
}

func NewTicketSerialAllocator(db *gorm.DB) *TicketSerialAllocator {
	return &TicketSerialAllocator{db: db}
}

func (a *TicketSerialAllocator) Next(ctx context.Context) (uint64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.seeded {
		var maxSerial *uint64
		err := a.db.WithContext(ctx).
			Table("tickets").
			Select("MAX(serial)").
			Scan(&maxSerial).Error
		if err != nil {
			return 0, fmt.Errorf("failed to seed ticket serial: %w", err)
		}
		if maxSerial != nil {
			a.next = *maxSerial
		}
		a.seeded = true
	}

	a.next++
	return a.next, nil
}
