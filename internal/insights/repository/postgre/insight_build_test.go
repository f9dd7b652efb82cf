package postgre

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"metaads-srv/internal/model"
)

func makeInsightRows(n int) []model.AdInsight {
	rows := make([]model.AdInsight, n)
	for i := range rows {
		rows[i] = model.AdInsight{
			AdID:      fmt.Sprintf("ad-%d", i),
			DateStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateStop:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		}
	}
	return rows
}

func TestChunkInsights(t *testing.T) {
	t.Run("honors the configured size", func(t *testing.T) {
		chunks := chunkInsights(makeInsightRows(5), 2)
		if len(chunks) != 3 {
			t.Fatalf("chunks = %d, want 3", len(chunks))
		}
		if len(chunks[0]) != 2 || len(chunks[1]) != 2 || len(chunks[2]) != 1 {
			t.Errorf("chunk sizes = %d/%d/%d, want 2/2/1", len(chunks[0]), len(chunks[1]), len(chunks[2]))
		}
	})

	t.Run("caps a chunk at the bind parameter limit", func(t *testing.T) {
		rows := makeInsightRows(10000)
		chunks := chunkInsights(rows, 10000)

		total := 0
		for i, chunk := range chunks {
			if len(chunk) > maxInsertRows {
				t.Errorf("chunk %d holds %d rows, cap is %d", i, len(chunk), maxInsertRows)
			}
			if args := len(chunk) * insightInsertWidth; args > postgresMaxBindArgs {
				t.Errorf("chunk %d builds %d bind args, limit is %d", i, args, postgresMaxBindArgs)
			}
			total += len(chunk)
		}
		if total != len(rows) {
			t.Errorf("chunks carry %d rows, want %d", total, len(rows))
		}
	})

	t.Run("non-positive size falls back to the cap", func(t *testing.T) {
		chunks := chunkInsights(makeInsightRows(maxInsertRows+1), 0)
		if len(chunks) != 2 {
			t.Fatalf("chunks = %d, want 2", len(chunks))
		}
		if len(chunks[0]) != maxInsertRows || len(chunks[1]) != 1 {
			t.Errorf("chunk sizes = %d/%d, want %d/1", len(chunks[0]), len(chunks[1]), maxInsertRows)
		}
	})

	t.Run("empty input yields no chunks", func(t *testing.T) {
		if chunks := chunkInsights(nil, 100); len(chunks) != 0 {
			t.Errorf("chunks = %d, want 0", len(chunks))
		}
	})
}

func TestBuildInsertInsightsQuery(t *testing.T) {
	rows := makeInsightRows(3)
	query, args := buildInsertInsightsQuery("act_1", "run-1", rows)

	if want := len(rows) * insightInsertWidth; len(args) != want {
		t.Fatalf("args = %d, want %d", len(args), want)
	}
	if last := fmt.Sprintf("$%d", len(args)); !strings.Contains(query, last) {
		t.Errorf("query lacks final placeholder %s", last)
	}
	if extra := fmt.Sprintf("$%d", len(args)+1); strings.Contains(query, extra) {
		t.Errorf("query holds placeholder %s past the arg list", extra)
	}
	if args[0] != "act_1" || args[1] != "run-1" {
		t.Errorf("first row starts with %v, %v; want account and run IDs", args[0], args[1])
	}
}
