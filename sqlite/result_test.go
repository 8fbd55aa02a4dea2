package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/raceresults"
	"github.com/fwojciec/raceresults/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(name string, place, year int, finish time.Duration) *raceresults.Result {
	return &raceresults.Result{
		Place:     place,
		Name:      name,
		BibNo:     100 + place,
		Age:       30,
		Gender:    "F",
		AgeGroup:  "1/10 30-34",
		TotalTime: "20:20",
		Pace:      "6:33/mi",
		Year:      year,
		Time:      finish,
		Minutes:   raceresults.FinishMinutes(finish),
	}
}

func TestResultService_CreateResults(t *testing.T) {
	t.Parallel()

	t.Run("stores a batch with generated IDs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		results := []*raceresults.Result{
			testResult("Alice", 1, 2010, 20*time.Minute+20*time.Second),
			testResult("Bob", 2, 2010, 21*time.Minute+5*time.Second),
		}

		err := svc.CreateResults(ctx, 2010, results)
		require.NoError(t, err)

		for _, r := range results {
			assert.NotEmpty(t, r.ID, "ID should be generated")
		}

		got, err := svc.FindResults(ctx, raceresults.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("replaces the year's prior rows", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		first := []*raceresults.Result{testResult("Alice", 1, 2010, 20 * time.Minute)}
		require.NoError(t, svc.CreateResults(ctx, 2010, first))

		second := []*raceresults.Result{
			testResult("Carol", 1, 2010, 19 * time.Minute),
			testResult("Dave", 2, 2010, 22 * time.Minute),
		}
		require.NoError(t, svc.CreateResults(ctx, 2010, second))

		got, err := svc.FindResults(ctx, raceresults.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Carol", got[0].Name)
	})

	t.Run("returns error for invalid result", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		err := svc.CreateResults(ctx, 2010, []*raceresults.Result{{}})
		require.Error(t, err)
		assert.Equal(t, raceresults.EINVALID, raceresults.ErrorCode(err))
	})
}

func TestResultService_FindResults(t *testing.T) {
	t.Parallel()

	t.Run("orders by finish time across years by default", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateResults(ctx, 2010, []*raceresults.Result{
			testResult("Alice", 1, 2010, 21*time.Minute+5*time.Second),
			testResult("Bob", 2, 2010, 23*time.Minute+40*time.Second),
		}))
		require.NoError(t, svc.CreateResults(ctx, 2011, []*raceresults.Result{
			testResult("Carol", 1, 2011, 20*time.Minute+20*time.Second),
			testResult("Dave", 2, 2011, 22*time.Minute+10*time.Second),
		}))

		got, err := svc.FindResults(ctx, raceresults.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, got, 4)

		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Time, got[i].Time)
		}
		assert.Equal(t, "Carol", got[0].Name)
		assert.Equal(t, "Bob", got[3].Name)
	})

	t.Run("filters by year", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateResults(ctx, 2010, []*raceresults.Result{
			testResult("Alice", 1, 2010, 21 * time.Minute),
		}))
		require.NoError(t, svc.CreateResults(ctx, 2011, []*raceresults.Result{
			testResult("Carol", 1, 2011, 20 * time.Minute),
		}))

		year := 2010
		got, err := svc.FindResults(ctx, raceresults.ResultFilter{Year: &year})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0].Name)
	})

	t.Run("supports place order and pagination", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateResults(ctx, 2010, []*raceresults.Result{
			testResult("Alice", 1, 2010, 21 * time.Minute),
			testResult("Bob", 2, 2010, 20 * time.Minute),
			testResult("Carol", 3, 2010, 22 * time.Minute),
		}))

		got, err := svc.FindResults(ctx, raceresults.ResultFilter{
			SortBy: raceresults.SortByPlace,
			Limit:  2,
			Offset: 1,
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Bob", got[0].Name)
		assert.Equal(t, "Carol", got[1].Name)
	})

	t.Run("round-trips the finish time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResultService(db)
		ctx := context.Background()

		finish := 20*time.Minute + 20*time.Second
		require.NoError(t, svc.CreateResults(ctx, 2010, []*raceresults.Result{
			testResult("Alice", 1, 2010, finish),
		}))

		got, err := svc.FindResults(ctx, raceresults.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, finish, got[0].Time)
		assert.InDelta(t, raceresults.FinishMinutes(finish), got[0].Minutes, 1e-9)
	})
}

func TestResultService_DeleteResultsByYear(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewResultService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateResults(ctx, 2010, []*raceresults.Result{
		testResult("Alice", 1, 2010, 21 * time.Minute),
	}))
	require.NoError(t, svc.CreateResults(ctx, 2011, []*raceresults.Result{
		testResult("Carol", 1, 2011, 20 * time.Minute),
	}))

	require.NoError(t, svc.DeleteResultsByYear(ctx, 2010))

	got, err := svc.FindResults(ctx, raceresults.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].Name)
}
