package usecase

import (
	"context"
	"errors"
	"testing"

	"metaads-srv/internal/insights"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/metaads"
)

func TestGetSyncRun(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(Config{}, "act_1")
	run := queueRun(t, f, validSyncInput())

	t.Run("found", func(t *testing.T) {
		out, err := f.uc.GetSyncRun(ctx, insights.GetSyncRunInput{RunID: run.ID})
		if err != nil {
			t.Fatalf("GetSyncRun failed: %v", err)
		}
		if out.Run.Status != model.SyncStatusQueued {
			t.Errorf("Status = %s, want QUEUED", out.Run.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.uc.GetSyncRun(ctx, insights.GetSyncRunInput{RunID: "missing"})
		if !errors.Is(err, insights.ErrRunNotFound) {
			t.Errorf("got %v, want ErrRunNotFound", err)
		}
	})
}

func TestGetLatestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("serves a cached run without the warehouse", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")
		f.cache.latest["act_1"] = &model.SyncRun{
			ID:        "cached-run",
			AccountID: "act_1",
			Status:    model.SyncStatusCompleted,
		}

		out, err := f.uc.GetLatestRun(ctx, insights.GetLatestRunInput{AccountID: "act_1"})
		if err != nil {
			t.Fatalf("GetLatestRun failed: %v", err)
		}
		if out.Run.ID != "cached-run" {
			t.Errorf("Run.ID = %s, want cached-run", out.Run.ID)
		}
	})

	t.Run("cache miss reads the warehouse and warms the cache", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")
		f.graph.pages = []*metaads.InsightsPage{page(false, insightRow("a1", "1.00", "2"))}
		run := queueRun(t, f, validSyncInput())
		if err := f.uc.ExecuteSync(ctx, insights.ExecuteSyncInput{RunID: run.ID}); err != nil {
			t.Fatalf("ExecuteSync failed: %v", err)
		}
		// drop the entry ExecuteSync cached so the miss path runs
		delete(f.cache.latest, "act_1")

		out, err := f.uc.GetLatestRun(ctx, insights.GetLatestRunInput{AccountID: "act_1"})
		if err != nil {
			t.Fatalf("GetLatestRun failed: %v", err)
		}
		if out.Run.ID != run.ID || out.Run.Status != model.SyncStatusCompleted {
			t.Errorf("Run = %s/%s, want %s/COMPLETED", out.Run.ID, out.Run.Status, run.ID)
		}
		if f.cache.latest["act_1"] == nil || f.cache.latest["act_1"].ID != run.ID {
			t.Error("warehouse answer should re-warm the cache")
		}
	})

	t.Run("no completed run", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")
		queueRun(t, f, validSyncInput())

		_, err := f.uc.GetLatestRun(ctx, insights.GetLatestRunInput{AccountID: "act_1"})
		if !errors.Is(err, insights.ErrRunNotFound) {
			t.Errorf("got %v, want ErrRunNotFound", err)
		}
	})
}

func TestListSyncRuns(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(Config{}, "act_1")
	queueRun(t, f, validSyncInput())

	out, err := f.uc.ListSyncRuns(ctx, insights.ListSyncRunsInput{AccountID: "act_1"})
	if err != nil {
		t.Fatalf("ListSyncRuns failed: %v", err)
	}
	if len(out.Runs) != 1 {
		t.Errorf("got %d runs, want 1", len(out.Runs))
	}
	if out.Paginator.Total != 1 {
		t.Errorf("Paginator.Total = %d, want 1", out.Paginator.Total)
	}
}

func TestListInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("returns loaded rows", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")
		f.graph.pages = []*metaads.InsightsPage{page(false, insightRow("a1", "1.00", "2"))}
		run := queueRun(t, f, validSyncInput())
		if err := f.uc.ExecuteSync(ctx, insights.ExecuteSyncInput{RunID: run.ID}); err != nil {
			t.Fatalf("ExecuteSync failed: %v", err)
		}

		out, err := f.uc.ListInsights(ctx, insights.ListInsightsInput{
			AccountID: "act_1",
			Since:     "2024-01-01",
			Until:     "2024-01-31",
		})
		if err != nil {
			t.Fatalf("ListInsights failed: %v", err)
		}
		if len(out.Insights) != 1 {
			t.Fatalf("got %d rows, want 1", len(out.Insights))
		}
		row := out.Insights[0]
		if row.Spend != 1.0 || row.Clicks != 2 {
			t.Errorf("row metrics wrong: spend=%v clicks=%v", row.Spend, row.Clicks)
		}
		if row.SyncRunID != run.ID {
			t.Errorf("SyncRunID = %s, want %s", row.SyncRunID, run.ID)
		}
	})

	t.Run("rejects bad range", func(t *testing.T) {
		f := newSyncFixture(Config{}, "act_1")

		_, err := f.uc.ListInsights(ctx, insights.ListInsightsInput{
			AccountID: "act_1",
			Since:     "2024-02-01",
			Until:     "2024-01-01",
		})
		if !errors.Is(err, insights.ErrInvalidDateRange) {
			t.Errorf("got %v, want ErrInvalidDateRange", err)
		}
	})
}
