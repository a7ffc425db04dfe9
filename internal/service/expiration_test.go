package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/models"
)

// fakeCategories is an in-memory category table for resolver tests.
type fakeCategories map[string]int

func (f fakeCategories) DefaultShelfLife(_ context.Context, name string) (int, bool, error) {
	days, ok := f[name]
	return days, ok, nil
}

func fixedResolver(categories CategoryReader, today time.Time) *ExpirationResolver {
	r := NewExpirationResolver(categories)
	r.now = func() time.Time { return today }
	return r
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveExactMatchSuppressesLogging(t *testing.T) {
	r := fixedResolver(fakeCategories{"Milk": 7}, date("2024-01-01"))

	supplied := date("2024-01-08")
	res, err := r.Resolve(context.Background(), "Milk", &supplied)

	require.NoError(t, err)
	require.NotNil(t, res.ExpirationDate)
	assert.True(t, res.ExpirationDate.Equal(supplied))
	assert.Equal(t, AuditNone, res.Audit.Kind)
}

func TestResolveMismatchLogsDifferent(t *testing.T) {
	r := fixedResolver(fakeCategories{"Milk": 7}, date("2024-01-01"))

	supplied := date("2024-01-10")
	res, err := r.Resolve(context.Background(), "Milk", &supplied)

	require.NoError(t, err)
	require.NotNil(t, res.ExpirationDate)
	assert.True(t, res.ExpirationDate.Equal(supplied))
	assert.Equal(t, AuditManual, res.Audit.Kind)
	assert.Equal(t, models.ManualEventDifferent, res.Audit.EventType)
	assert.Equal(t, 9, res.Audit.DayOffset)
}

func TestResolveNoCategoryWithDateLogsUnknown(t *testing.T) {
	r := fixedResolver(fakeCategories{}, date("2024-01-01"))

	supplied := date("2024-01-05")
	res, err := r.Resolve(context.Background(), "Durian", &supplied)

	require.NoError(t, err)
	require.NotNil(t, res.ExpirationDate)
	assert.True(t, res.ExpirationDate.Equal(supplied))
	assert.Equal(t, AuditManual, res.Audit.Kind)
	assert.Equal(t, models.ManualEventUnknown, res.Audit.EventType)
	assert.Equal(t, 4, res.Audit.DayOffset)
}

func TestResolveNoCategoryNoDateLogsUnrecognized(t *testing.T) {
	r := fixedResolver(fakeCategories{}, date("2024-01-01"))

	res, err := r.Resolve(context.Background(), "Durian", nil)

	require.NoError(t, err)
	assert.Nil(t, res.ExpirationDate)
	assert.Equal(t, AuditUnrecognized, res.Audit.Kind)
}

func TestResolveCategoryNoDateAutoFills(t *testing.T) {
	r := fixedResolver(fakeCategories{"Egg": 14}, date("2024-01-01"))

	res, err := r.Resolve(context.Background(), "Egg", nil)

	require.NoError(t, err)
	require.NotNil(t, res.ExpirationDate)
	assert.True(t, res.ExpirationDate.Equal(date("2024-01-15")))
	assert.Equal(t, AuditNone, res.Audit.Kind)
}

func TestResolveAcceptsPastDates(t *testing.T) {
	r := fixedResolver(fakeCategories{"Milk": 7}, date("2024-01-10"))

	supplied := date("2024-01-05")
	res, err := r.Resolve(context.Background(), "Milk", &supplied)

	require.NoError(t, err)
	require.NotNil(t, res.ExpirationDate)
	assert.Equal(t, AuditManual, res.Audit.Kind)
	assert.Equal(t, models.ManualEventDifferent, res.Audit.EventType)
	assert.Equal(t, -5, res.Audit.DayOffset)
}

func TestResolveDeterministic(t *testing.T) {
	r := fixedResolver(fakeCategories{"Milk": 7}, date("2024-01-01"))

	supplied := date("2024-01-03")
	first, err := r.Resolve(context.Background(), "Milk", &supplied)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := r.Resolve(context.Background(), "Milk", &supplied)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveNormalizesTimeOfDay(t *testing.T) {
	// A timestamped "now" must behave like its calendar day.
	now := time.Date(2024, time.January, 1, 23, 45, 12, 0, time.UTC)
	r := fixedResolver(fakeCategories{"Milk": 7}, now)

	supplied := date("2024-01-08")
	res, err := r.Resolve(context.Background(), "Milk", &supplied)

	require.NoError(t, err)
	assert.Equal(t, AuditNone, res.Audit.Kind)
}
