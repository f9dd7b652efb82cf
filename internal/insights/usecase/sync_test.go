package usecase

import (
	"context"
	"errors"
	"testing"

	"metaads-srv/internal/insights"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/metaads"
)

type syncFixture struct {
	repo     *fakeInsightsRepo
	cache    *fakeCache
	accounts *fakeAccounts
	graph    *fakeGraph
	storage  *fakeMinio
	jobs     *fakeJobs
	producer *fakeProducer
	uc       insights.UseCase
}

func newSyncFixture(cfg Config, accountIDs ...string) *syncFixture {
	f := &syncFixture{
		repo:     newFakeInsightsRepo(),
		cache:    newFakeCache(),
		accounts: newFakeAccounts(accountIDs...),
		graph:    &fakeGraph{},
		storage:  newFakeMinio(),
		jobs:     &fakeJobs{},
		producer: &fakeProducer{},
	}
	f.uc = New(log.NewNop(), f.repo, f.cache, f.accounts, f.graph, f.storage, f.jobs, f.producer, cfg)
	return f
}

func validSyncInput() insights.SyncInput {
	return insights.SyncInput{
		AccountID: "act_1",
		Since:     "2024-01-01",
		Until:     "2024-01-31",
	}
}

func TestSync(t *testing.T) {
	ctx := context.Background()

	t.Run("queues a run and enqueues a job", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		out, err := f.uc.Sync(ctx, validSyncInput())
		if err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		if out.Run.Status != model.SyncStatusQueued {
			t.Errorf("Status = %s, want QUEUED", out.Run.Status)
		}
		if out.Run.Mode != model.LoadModeReplace {
			t.Errorf("Mode = %s, want replace default", out.Run.Mode)
		}
		if len(out.Run.Fields) != len(metaads.DefaultInsightsFields()) {
			t.Errorf("Fields should default, got %d entries", len(out.Run.Fields))
		}
		if len(f.jobs.jobs) != 1 {
			t.Fatalf("got %d jobs, want 1", len(f.jobs.jobs))
		}
		if f.jobs.jobs[0].RunID != out.Run.ID {
			t.Errorf("job RunID = %s, want %s", f.jobs.jobs[0].RunID, out.Run.ID)
		}
		if !f.cache.held("act_1", "2024-01-01", "2024-01-31") {
			t.Error("sync lock should be held after enqueue")
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		input := validSyncInput()
		input.AccountID = "act_999"
		_, err := f.uc.Sync(ctx, input)
		if !errors.Is(err, insights.ErrAccountNotFound) {
			t.Errorf("got %v, want ErrAccountNotFound", err)
		}
	})

	t.Run("invalid date ranges", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		cases := []struct{ since, until string }{
			{"", ""},
			{"2024-01-01", ""},
			{"01-01-2024", "2024-01-31"},
			{"2024-02-01", "2024-01-01"},
		}
		for _, tc := range cases {
			input := validSyncInput()
			input.Since, input.Until = tc.since, tc.until
			_, err := f.uc.Sync(ctx, input)
			if !errors.Is(err, insights.ErrInvalidDateRange) {
				t.Errorf("since=%q until=%q: got %v, want ErrInvalidDateRange", tc.since, tc.until, err)
			}
		}
	})

	t.Run("rejects duplicate fields", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		input := validSyncInput()
		input.Fields = []string{"spend", "clicks", "spend"}
		_, err := f.uc.Sync(ctx, input)
		if !errors.Is(err, insights.ErrInvalidFields) {
			t.Errorf("got %v, want ErrInvalidFields", err)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		input := validSyncInput()
		input.Mode = "upsert"
		_, err := f.uc.Sync(ctx, input)
		if !errors.Is(err, insights.ErrInvalidMode) {
			t.Errorf("got %v, want ErrInvalidMode", err)
		}
	})

	t.Run("refuses while a run is in flight", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		if _, err := f.uc.Sync(ctx, validSyncInput()); err != nil {
			t.Fatalf("first Sync failed: %v", err)
		}
		_, err := f.uc.Sync(ctx, validSyncInput())
		if !errors.Is(err, insights.ErrSyncInFlight) {
			t.Errorf("got %v, want ErrSyncInFlight", err)
		}
	})

	t.Run("different range is not blocked", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		if _, err := f.uc.Sync(ctx, validSyncInput()); err != nil {
			t.Fatalf("first Sync failed: %v", err)
		}
		input := validSyncInput()
		input.Since, input.Until = "2024-02-01", "2024-02-29"
		if _, err := f.uc.Sync(ctx, input); err != nil {
			t.Errorf("second Sync on another range failed: %v", err)
		}
	})

	t.Run("enqueue failure fails run and releases lock", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")
		f.jobs.err = errors.New("broker down")

		_, err := f.uc.Sync(ctx, validSyncInput())
		if err == nil {
			t.Fatal("Sync should fail when enqueue fails")
		}
		if f.cache.held("act_1", "2024-01-01", "2024-01-31") {
			t.Error("sync lock should be released after enqueue failure")
		}

		runs, _, _ := f.repo.ListSyncRuns(ctx, listAllRuns())
		if len(runs) != 1 || runs[0].Status != model.SyncStatusFailed {
			t.Errorf("run should be FAILED after enqueue failure, got %+v", runs)
		}
	})
}
