package services

import (
	"errors"
	"sync"
	"time"

	"github.com/DerekRojGar/awa-AquaReminder/models"
	"github.com/DerekRojGar/awa-AquaReminder/utils"

	"gorm.io/gorm"
)

// TimestampLayout is the stored form of every event timestamp. Fixed-width and
// zero-padded so that string order equals chronological order; every write goes
// through normalizeTS to keep that invariant.
const TimestampLayout = "2006-01-02T15:04:05"

// DateLayout is the civil-date prefix used by all aggregate queries.
const DateLayout = "2006-01-02"

// ErrLedgerEmpty is returned by UndoLast when there is nothing to undo. Not a
// storage failure; callers translate it to an empty result.
var ErrLedgerEmpty = errors.New("intake ledger is empty")

// IntakeService owns the intake ledger. Reads hit the database directly; the
// mutex serializes the write path so two UI surfaces recording at once cannot
// interleave read-modify-write sequences.
type IntakeService struct {
	db  *gorm.DB
	mu  sync.Mutex
	now func() time.Time
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db, now: time.Now}
}

// DailyTotal is one day's aggregate.
type DailyTotal struct {
	Date    string `json:"date"`
	TotalML int    `json:"total_ml"`
}

// normalizeTS parses a caller-supplied timestamp and reformats it into
// TimestampLayout. RFC3339 input is accepted and its offset dropped: the
// recorded local time is authoritative, no timezone conversion happens.
func normalizeTS(ts string) (string, error) {
	for _, layout := range []string{TimestampLayout, time.RFC3339} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format(TimestampLayout), nil
		}
	}
	return "", utils.Invalid("ts", "must be an ISO-8601 datetime like 2006-01-02T15:04:05")
}

// Record appends one event. ts may be empty, in which case the current local
// time is used. Non-positive amounts are rejected here, at the store boundary,
// regardless of what the controller already checked.
func (s *IntakeService) Record(amountML int, ts string) (*models.IntakeEvent, error) {
	if amountML <= 0 {
		return nil, utils.Invalid("amount_ml", "must be a positive number of millilitres")
	}

	if ts == "" {
		ts = s.now().Format(TimestampLayout)
	} else {
		normalized, err := normalizeTS(ts)
		if err != nil {
			return nil, err
		}
		ts = normalized
	}

	event := &models.IntakeEvent{TS: ts, AmountML: amountML}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// TodayTotal sums amount_ml over events whose civil-date prefix is today.
func (s *IntakeService) TodayTotal() (int, error) {
	return s.totalForDate(s.now().Format(DateLayout))
}

func (s *IntakeService) totalForDate(date string) (int, error) {
	var total int
	err := s.db.Model(&models.IntakeEvent{}).
		Select("COALESCE(SUM(amount_ml), 0)").
		Where("substr(ts, 1, 10) = ?", date).
		Scan(&total).Error
	return total, err
}

// Recent returns up to limit events, newest first.
func (s *IntakeService) Recent(limit int) ([]models.IntakeEvent, error) {
	if limit <= 0 {
		return nil, utils.Invalid("limit", "must be positive")
	}
	var events []models.IntakeEvent
	err := s.db.
		Order("ts DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// Between returns every event whose civil date falls in [start, end], both
// inclusive, newest first. Dates must be YYYY-MM-DD; the prefix comparison is
// lexicographic, which the fixed-width format makes chronological.
func (s *IntakeService) Between(start, end string) ([]models.IntakeEvent, error) {
	for _, d := range []struct{ field, v string }{{"start", start}, {"end", end}} {
		if _, err := time.Parse(DateLayout, d.v); err != nil {
			return nil, utils.Invalid(d.field, "must be a date like 2006-01-02")
		}
	}
	var events []models.IntakeEvent
	err := s.db.
		Where("substr(ts, 1, 10) BETWEEN ? AND ?", start, end).
		Order("ts DESC, id DESC").
		Find(&events).Error
	return events, err
}

// DailyTotals aggregates per-day totals over the trailing window
// [today-(windowDays-1), today], ascending by date. Days without events are
// omitted unless includeMissing is set, which backfills explicit zero rows.
func (s *IntakeService) DailyTotals(windowDays int, includeMissing bool) ([]DailyTotal, error) {
	if windowDays <= 0 {
		return nil, utils.Invalid("days", "must be positive")
	}

	today := s.now()
	start := today.AddDate(0, 0, -(windowDays - 1)).Format(DateLayout)
	end := today.Format(DateLayout)

	var rows []DailyTotal
	err := s.db.Model(&models.IntakeEvent{}).
		Select("substr(ts, 1, 10) AS date, SUM(amount_ml) AS total_ml").
		Where("substr(ts, 1, 10) BETWEEN ? AND ?", start, end).
		Group("substr(ts, 1, 10)").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if !includeMissing {
		return rows, nil
	}

	// index rows by yyyy-mm-dd for missing-day handling
	idx := map[string]int{}
	for _, r := range rows {
		idx[r.Date] = r.TotalML
	}
	out := make([]DailyTotal, 0, windowDays)
	for d := today.AddDate(0, 0, -(windowDays - 1)); !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		out = append(out, DailyTotal{Date: key, TotalML: idx[key]})
	}
	return out, nil
}

// UndoLast deletes and returns the most recent event. Equal timestamps are
// broken by the higher id, so the later insert loses first. ErrLedgerEmpty when
// there is nothing to undo.
func (s *IntakeService) UndoLast() (*models.IntakeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var event models.IntakeEvent
	err := s.db.
		Order("ts DESC, id DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerEmpty
		}
		return nil, err
	}
	if err := s.db.Delete(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Reset irreversibly drops every event.
func (s *IntakeService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Exec("DELETE FROM intake").Error
}
