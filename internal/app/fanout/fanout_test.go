package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/app/fanout"
)

var errLookup = errors.New("lookup failed")

// projectTotals stands in for the per-project allocation sums that the
// project list computes, failing for IDs listed in broken.
func projectTotals(broken ...string) func(context.Context, string) (int, error) {
	return func(_ context.Context, id string) (int, error) {
		if slices.Contains(broken, id) {
			return 0, fmt.Errorf("project %s: %w", id, errLookup)
		}
		return len(id) * 10, nil
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		workers    int
		ids        []string
		broken     []string
		wantValues []int
		wantFailed []int
	}{
		{name: "no projects", workers: 4, ids: []string{}, wantValues: []int{}},
		{name: "all succeed", workers: 2, ids: []string{"a", "bb", "ccc"}, wantValues: []int{10, 20, 30}},
		{
			name:       "one lookup fails",
			workers:    2,
			ids:        []string{"a", "bb", "ccc"},
			broken:     []string{"bb"},
			wantValues: []int{10, 0, 30},
			wantFailed: []int{1},
		},
		{name: "more workers than items", workers: 100, ids: []string{"a", "bb"}, wantValues: []int{10, 20}},
		{name: "zero workers still runs", workers: 0, ids: []string{"a", "bb"}, wantValues: []int{10, 20}},
		{name: "negative workers still runs", workers: -3, ids: []string{"ccc"}, wantValues: []int{30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.workers, tt.ids, projectTotals(tt.broken...))

			if results == nil || len(results) != len(tt.wantValues) {
				t.Fatalf("Run() = %v, want %d results", results, len(tt.wantValues))
			}
			for i, r := range results {
				failed := slices.Contains(tt.wantFailed, i)
				if failed != (r.Err != nil) {
					t.Errorf("results[%d].Err = %v, want failure %v", i, r.Err, failed)
				}
				if failed && !errors.Is(r.Err, errLookup) {
					t.Errorf("results[%d].Err = %v, want errLookup", i, r.Err)
				}
				if r.Value != tt.wantValues[i] {
					t.Errorf("results[%d].Value = %d, want %d", i, r.Value, tt.wantValues[i])
				}
			}
		})
	}
}

func TestRun_OrderSurvivesUnevenLatency(t *testing.T) {
	t.Parallel()

	// Earlier items finish last.
	delays := []time.Duration{40, 30, 20, 10, 0}
	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d * time.Millisecond)
		return d, nil
	})

	for i, r := range results {
		if r.Value != delays[i] {
			t.Errorf("results[%d] = %v, want %v", i, r.Value, delays[i])
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3
	var active, peak atomic.Int32

	items := make([]int, 15)
	fanout.Run(context.Background(), workers, items, func(context.Context, int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want at most %d", p, workers)
	}
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("before start", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		results := fanout.Run(ctx, 1, []string{"a", "b", "c", "d"}, func(context.Context, string) (int, error) {
			calls.Add(1)
			return 1, nil
		})

		canceled := 0
		for _, r := range results {
			if errors.Is(r.Err, context.Canceled) {
				canceled++
			}
		}
		if int(calls.Load())+canceled != len(results) {
			t.Errorf("calls = %d, canceled = %d, want every item accounted for", calls.Load(), canceled)
		}
	})

	t.Run("during a call", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		results := fanout.Run(ctx, 1, []string{"a"}, func(ctx context.Context, _ string) (int, error) {
			cancel()
			return 0, ctx.Err()
		})

		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("results[0].Err = %v, want context.Canceled", results[0].Err)
		}
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		broken  []string
		want    []int
		wantErr string
	}{
		{name: "all succeed", want: []int{10, 20, 30}},
		{name: "single failure", broken: []string{"bb"}, wantErr: "project bb"},
		{name: "lowest index wins", broken: []string{"ccc", "bb"}, wantErr: "project bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fanout.Collect(context.Background(), 2, []string{"a", "bb", "ccc"}, projectTotals(tt.broken...))

			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr+": "+errLookup.Error() {
					t.Fatalf("Collect() error = %v, want %s", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Collect() values = %v, want nil on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Collect() = %v, want %v", got, tt.want)
			}
		})
	}
}
