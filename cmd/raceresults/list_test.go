package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/raceresults"
	main "github.com/fwojciec/raceresults/cmd/raceresults"
	"github.com/fwojciec/raceresults/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists results in finish order", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Results: &mock.ResultService{
				FindResultsFn: func(_ context.Context, filter raceresults.ResultFilter) ([]*raceresults.Result, error) {
					assert.Equal(t, 10, filter.Limit)
					return []*raceresults.Result{
						{Place: 1, Name: "Alice Smith", TotalTime: "20:20", Year: 2010, Time: 20 * time.Minute},
						{Place: 1, Name: "Carol White", TotalTime: "21:41", Year: 2011, Time: 21 * time.Minute},
					}, nil
				},
			},
		}

		cmd := &main.ListCmd{Limit: 10}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Alice Smith")
		assert.Contains(t, output, "20:20")
		assert.Contains(t, output, "Carol White")
		assert.Contains(t, output, "2011")
	})

	t.Run("filters by year when given", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Results: &mock.ResultService{
				FindResultsFn: func(_ context.Context, filter raceresults.ResultFilter) ([]*raceresults.Result, error) {
					require.NotNil(t, filter.Year)
					assert.Equal(t, 2010, *filter.Year)
					return nil, nil
				},
			},
		}

		cmd := &main.ListCmd{Year: 2010, Limit: 10}

		require.NoError(t, cmd.Run(deps))
	})

	t.Run("shows helpful message when nothing is stored", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Results: &mock.ResultService{
				FindResultsFn: func(_ context.Context, _ raceresults.ResultFilter) ([]*raceresults.Result, error) {
					return nil, nil
				},
			},
		}

		cmd := &main.ListCmd{Limit: 10}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results stored")
	})
}
