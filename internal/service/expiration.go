package service

import (
	"context"
	"time"

	"github.com/pantrychef/backend/models"
)

// CategoryReader is the read path of the category table consumed by the
// resolver. A missing entry is a normal outcome, not an error.
type CategoryReader interface {
	DefaultShelfLife(ctx context.Context, name string) (days int, ok bool, err error)
}

// AuditKind says which audit record, if any, an ingredient add must produce.
type AuditKind int

const (
	AuditNone AuditKind = iota
	AuditManual
	AuditUnrecognized
)

// AuditAction is the audit side of a resolution. EventType and DayOffset are
// only meaningful for AuditManual.
type AuditAction struct {
	Kind      AuditKind
	EventType models.ManualExpirationEvent
	DayOffset int
}

// Resolution is the outcome of resolving one (name, optional date) pair.
// ExpirationDate is nil when the date is unknown.
type Resolution struct {
	ExpirationDate *time.Time
	Audit          AuditAction
}

// ExpirationResolver decides the effective expiration date for an ingredient
// add and which audit event to record. It holds no state beyond its
// collaborators; for a fixed category table and a fixed clock the resolution
// is deterministic.
type ExpirationResolver struct {
	categories CategoryReader
	now        func() time.Time
}

func NewExpirationResolver(categories CategoryReader) *ExpirationResolver {
	return &ExpirationResolver{categories: categories, now: time.Now}
}

// Resolve computes the effective expiration date and audit action for one
// item. "Today" is captured once at entry so the lookup and the date
// arithmetic cannot observe different days.
func (r *ExpirationResolver) Resolve(ctx context.Context, name string, userDate *time.Time) (Resolution, error) {
	today := dateOnly(r.now())

	days, ok, err := r.categories.DefaultShelfLife(ctx, name)
	if err != nil {
		return Resolution{}, err
	}

	if userDate != nil {
		supplied := dateOnly(*userDate)
		offset := daysBetween(today, supplied)
		res := Resolution{ExpirationDate: &supplied}
		switch {
		case !ok:
			// No category entry: accept the date, log the gap.
			res.Audit = AuditAction{Kind: AuditManual, EventType: models.ManualEventUnknown, DayOffset: offset}
		case !supplied.Equal(today.AddDate(0, 0, days)):
			// Disagrees with the category default, including already-past dates.
			res.Audit = AuditAction{Kind: AuditManual, EventType: models.ManualEventDifferent, DayOffset: offset}
		}
		return res, nil
	}

	if !ok {
		return Resolution{Audit: AuditAction{Kind: AuditUnrecognized}}, nil
	}

	implied := today.AddDate(0, 0, days)
	return Resolution{ExpirationDate: &implied}, nil
}

// dateOnly normalizes to midnight UTC so date math is calendar-day math.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
