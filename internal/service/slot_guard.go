package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pathlab-booking/internal/domain/entity"
	"pathlab-booking/pkg/timeslot"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotTaken is returned when a (doctor, date, slot) triple is already held.
var ErrSlotTaken = errors.New("slot is already booked")

// reserveSlotScript atomically claims a slot key with a TTL.
// The Redis Go client uses EVALSHA after the first call, so under load only
// the script hash travels over the wire.
//
// Returns 1 when the slot was free and is now held, 0 when already held.
var reserveSlotScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[1], 'EX', ARGV[2])
	return 1
`)

const (
	// Redis key prefix for held slots
	slotKeyPrefix = "slot:hold:"

	// Batch size for startup sync
	syncBatchSize = 500

	// Floor for slot key TTLs so same-day bookings never get a zero expiry
	minSlotTTL = time.Hour
)

// SlotGuard keeps one Redis key per active (doctor, date, slot) triple so
// concurrent bookings for the same slot are serialized before they reach the
// database. The partial unique index on appointments stays authoritative;
// the guard only absorbs the contention. Keys expire once the visit day is
// over.
type SlotGuard struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotGuard(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *SlotGuard {
	return &SlotGuard{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

// SlotKey builds the Redis key for a slot triple.
func SlotKey(doctorCode string, date timeslot.Date, slot timeslot.Slot) string {
	return fmt.Sprintf("%s%s:%s:%d", slotKeyPrefix, doctorCode, date.String(), slot.MinuteOfDay)
}

// Reserve claims the slot. Returns ErrSlotTaken when another booking holds it.
func (g *SlotGuard) Reserve(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
	key := SlotKey(doctorCode, date, slot)
	ttl := slotTTL(date)

	res, err := reserveSlotScript.Run(ctx, g.redisClient, []string{key}, "held", int(ttl.Seconds())).Int()
	if err != nil {
		return fmt.Errorf("reserve slot %s: %w", key, err)
	}
	if res == 0 {
		return ErrSlotTaken
	}
	return nil
}

// Release frees the slot, used as compensation when the DB write fails and
// when a booking is cancelled or rescheduled away.
func (g *SlotGuard) Release(ctx context.Context, doctorCode string, date timeslot.Date, slot timeslot.Slot) error {
	key := SlotKey(doctorCode, date, slot)
	if err := g.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release slot %s: %w", key, err)
	}
	return nil
}

// SyncOnStartup rebuilds slot keys for all active appointments from today
// onward. Should run before the server accepts traffic, so a Redis flush or
// restart cannot let a taken slot look free.
//
// Appointments are read in batches and a fresh pipeline is executed per
// batch to keep memory bounded.
func (g *SlotGuard) SyncOnStartup(ctx context.Context) error {
	g.log.Info("Re-syncing slot holds from database...")
	startTime := time.Now()

	if err := g.redisClient.Ping(ctx).Err(); err != nil {
		g.log.Warnf("Redis is not available, skipping slot sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := timeslot.Today().Time()
	offset := 0
	totalSynced := 0

	for {
		var appointments []entity.Appointment
		err := g.db.WithContext(ctx).
			Where("visit_date >= ? AND status != ?", today, entity.AppointmentStatusCancelled).
			Order("id").
			Limit(syncBatchSize).
			Offset(offset).
			Find(&appointments).Error
		if err != nil {
			return fmt.Errorf("query active appointments at offset %d: %w", offset, err)
		}
		if len(appointments) == 0 {
			break
		}

		pipe := g.redisClient.Pipeline()
		for _, appt := range appointments {
			date := timeslot.Date{Year: appt.VisitDate.Year(), Month: appt.VisitDate.Month(), Day: appt.VisitDate.Day()}
			slot := timeslot.Slot{MinuteOfDay: appt.SlotMinutes}
			pipe.Set(ctx, SlotKey(appt.DoctorCode, date, slot), "held", slotTTL(date))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("sync batch at offset %d: %w", offset, err)
		}

		totalSynced += len(appointments)
		offset += syncBatchSize
	}

	g.log.Infof("Slot sync complete: %d holds restored in %s", totalSynced, time.Since(startTime))
	return nil
}

// FlushHolds drops every slot hold key. Used when the appointment table is
// wiped wholesale, e.g. by a demo reseed, so deleted bookings do not keep
// blocking their slots until the keys expire.
func (g *SlotGuard) FlushHolds(ctx context.Context) error {
	iter := g.redisClient.Scan(ctx, 0, slotKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := g.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("flush slot hold %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan slot holds: %w", err)
	}
	return nil
}

// slotTTL keeps the hold alive until the end of the visit day.
func slotTTL(date timeslot.Date) time.Duration {
	endOfDay := date.Time().Add(24 * time.Hour)
	ttl := time.Until(endOfDay)
	if ttl < minSlotTTL {
		ttl = minSlotTTL
	}
	return ttl
}
