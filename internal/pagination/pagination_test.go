package pagination

import "testing"

func TestParseDefaults(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"ausentes", "", "", 1, 10},
		{"não numéricos", "abc", "x", 1, 10},
		{"zero e negativo", "0", "-5", 1, 10},
		{"válidos", "3", "25", 3, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Parse(tc.page, tc.limit)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d",
					p.Page, p.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	pg := Paginate(Params{Page: 2, Limit: 10}, 25)

	if pg.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", pg.TotalPages)
	}
	if pg.StartIndex != 10 || pg.EndIndex != 20 {
		t.Fatalf("expected slice [10,20), got [%d,%d)", pg.StartIndex, pg.EndIndex)
	}
	if pg.Next == nil || pg.Next.Page != 3 {
		t.Fatalf("expected next page 3, got %+v", pg.Next)
	}
	if pg.Previous == nil || pg.Previous.Page != 1 {
		t.Fatalf("expected previous page 1, got %+v", pg.Previous)
	}
}

func TestPaginateFirstAndLastPage(t *testing.T) {
	first := Paginate(Params{Page: 1, Limit: 10}, 25)
	if first.Previous != nil {
		t.Fatalf("first page should have no previous, got %+v", first.Previous)
	}
	if first.Next == nil || first.Next.Page != 2 {
		t.Fatalf("expected next page 2, got %+v", first.Next)
	}

	last := Paginate(Params{Page: 3, Limit: 10}, 25)
	if last.Next != nil {
		t.Fatalf("last page should have no next, got %+v", last.Next)
	}
	if last.Previous == nil || last.Previous.Page != 2 {
		t.Fatalf("expected previous page 2, got %+v", last.Previous)
	}
}

func TestPaginateEmptyResult(t *testing.T) {
	pg := Paginate(Params{Page: 1, Limit: 10}, 0)

	if pg.TotalPages != 0 {
		t.Fatalf("expected 0 pages, got %d", pg.TotalPages)
	}
	if pg.Next != nil || pg.Previous != nil {
		t.Fatalf("empty result should have no links: next=%+v previous=%+v",
			pg.Next, pg.Previous)
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	pg := Paginate(Params{Page: 2, Limit: 10}, 20)

	if pg.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", pg.TotalPages)
	}
	if pg.Next != nil {
		t.Fatalf("page 2 of 20/10 should have no next, got %+v", pg.Next)
	}
}
