package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/testutil"
	"github.com/stretchr/testify/require"
)

// planText covers one item of every kind:
// 0 meal, 1 exercise, 2 condition, 3 advice.
const planText = `【食事1】07:30 白米150g
【運動】脚トレ 消費予測150kcal 30分
・スクワット 5セット 10回/セット
【睡眠】7時間
水分を多めにとる`

type fixture struct {
	db         *sql.DB
	directives *repository.SQLiteDirectiveRepo
	meals      *repository.SQLiteMealRepo
	workouts   *repository.SQLiteWorkoutRepo
	profiles   *repository.SQLiteProfileRepo
	uow        db.UnitOfWork
	catalog    *catalog.Catalog
	reward     *countingReward
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat, err := catalog.Default()
	require.NoError(t, err)
	return &fixture{
		db:         database,
		directives: repository.NewSQLiteDirectiveRepo(database),
		meals:      repository.NewSQLiteMealRepo(database),
		workouts:   repository.NewSQLiteWorkoutRepo(database),
		profiles:   repository.NewSQLiteProfileRepo(database),
		uow:        testutil.NewTestUoW(database),
		catalog:    cat,
		reward:     &countingReward{},
	}
}

func (f *fixture) completion(uow db.UnitOfWork) CompletionService {
	if uow == nil {
		uow = f.uow
	}
	return NewCompletionService(f.profiles, f.directives, uow, f.catalog, f.reward, nil)
}

func (f *fixture) timeline() TimelineService {
	return NewTimelineService(f.profiles, f.directives, f.meals, f.workouts, nil)
}

func (f *fixture) seedDirective(t *testing.T, message string, completed ...int) {
	t.Helper()
	require.NoError(t, f.directives.Upsert(context.Background(), testutil.NewTestDirective(message, completed...)))
}

func (f *fixture) completed(t *testing.T) []int {
	t.Helper()
	d, err := f.directives.Get(context.Background(), testutil.TestDate)
	require.NoError(t, err)
	return d.Completed.Indices()
}

type countingReward struct {
	mu     sync.Mutex
	events []RewardEvent
}

func (r *countingReward) Grant(_ context.Context, e RewardEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *countingReward) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
