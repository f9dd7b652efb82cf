package paginator

import "testing"

func TestAdjust(t *testing.T) {
	t.Run("defaults invalid values", func(t *testing.T) {
		q := PaginateQuery{Page: 0, Limit: -5}
		q.Adjust()
		if q.Page != DefaultPage {
			t.Errorf("Page = %d, want %d", q.Page, DefaultPage)
		}
		if q.Limit != DefaultLimit {
			t.Errorf("Limit = %d, want %d", q.Limit, DefaultLimit)
		}
	})

	t.Run("caps excessive limits", func(t *testing.T) {
		q := PaginateQuery{Page: 2, Limit: 10000}
		q.Adjust()
		if q.Limit != MaxLimit {
			t.Errorf("Limit = %d, want %d", q.Limit, MaxLimit)
		}
	})
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 50}
	if got := q.Offset(); got != 100 {
		t.Errorf("Offset = %d, want 100", got)
	}
}

func TestPaginator(t *testing.T) {
	p := Paginator{Total: 101, Count: 1, PerPage: 50, CurrentPage: 3}

	if got := p.TotalPages(); got != 3 {
		t.Errorf("TotalPages = %d, want 3", got)
	}
	if p.HasNextPage() {
		t.Error("HasNextPage should be false on the last page")
	}
	if !p.HasPreviousPage() {
		t.Error("HasPreviousPage should be true on page 3")
	}

	resp := p.ToResponse()
	if resp.TotalPages != 3 || resp.HasNext || !resp.HasPrev {
		t.Errorf("ToResponse mismatch: %+v", resp)
	}
}
