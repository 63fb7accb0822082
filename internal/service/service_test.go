package service

import (
	"context"
	"testing"

	"github.com/finwell/finance-service/internal/cache"
	"github.com/finwell/finance-service/internal/config"
	"github.com/finwell/finance-service/internal/engine"
	"github.com/finwell/finance-service/internal/middleware"
	"github.com/finwell/finance-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(c cache.Cache) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(nil, c, log, &config.Config{})
}

func TestTagSnapshotFillsMissingTags(t *testing.T) {
	snap := models.FinancialSnapshot{
		Expenses: []models.FinancialLineItem{
			{Value: 1500, Category: "Rent"},
			{Value: 200, Category: "Groceries"},
			{Value: 300, Category: "Utilities", Tag: models.TagOther},
		},
	}

	tagSnapshot(&snap)

	assert.Equal(t, models.TagHousing, snap.Expenses[0].Tag)
	assert.Equal(t, models.TagNone, snap.Expenses[1].Tag)
	// Explicit tags are never overwritten.
	assert.Equal(t, models.TagOther, snap.Expenses[2].Tag)
}

func TestUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, "42")
	id, err := userIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = userIDFromContext(context.Background())
	assert.Error(t, err)
}

func TestQuickSimulateYearsGuard(t *testing.T) {
	svc := testService(cache.NewMemory(0))

	_, err := svc.QuickSimulate(models.SimulationParameters{Years: 5000})
	assert.ErrorIs(t, err, ErrYearsOutOfRange)

	res, err := svc.QuickSimulate(models.SimulationParameters{Years: 100})
	require.NoError(t, err)
	assert.Len(t, res.Years, 100)
}

func TestAnalyzeMemoizesThroughCache(t *testing.T) {
	c := cache.NewMemory(0)
	svc := testService(c)

	snap := models.FinancialSnapshot{
		Incomes:  []models.FinancialLineItem{{Value: 10000, Category: "Salary", Tag: models.TagSalary}},
		Expenses: []models.FinancialLineItem{{Value: 9500, Category: "Living", Tag: models.TagOther}},
	}
	opts := engine.AnalyzeOptions{StressLevel: 5}

	first := svc.analyze(snap, opts)
	require.NotEmpty(t, first)

	// The result landed in the cache under its content key.
	_, ok := c.Get(cache.Key("insights", snap, opts))
	assert.True(t, ok)

	// A second evaluation returns the identical findings.
	second := svc.analyze(snap, opts)
	assert.Equal(t, first, second)
}
