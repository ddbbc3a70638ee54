package pagination_test

import (
	"net/http/httptest"
	"testing"

	"docdigest/internal/common/pagination"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultLimit: 20, MaxLimit: 100}
}

func TestParseQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/reports", nil)

	params, err := pagination.ParseQueryParams(r, testConfig())
	if err != nil {
		t.Fatalf("ParseQueryParams: %v", err)
	}
	if params.Page != 1 || params.Limit != 20 {
		t.Errorf("got page=%d limit=%d, want page=1 limit=20", params.Page, params.Limit)
	}
}

func TestParseQueryParams_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/reports?page=3&limit=10", nil)

	params, err := pagination.ParseQueryParams(r, testConfig())
	if err != nil {
		t.Fatalf("ParseQueryParams: %v", err)
	}
	if params.Page != 3 || params.Limit != 10 {
		t.Errorf("got page=%d limit=%d, want page=3 limit=10", params.Page, params.Limit)
	}
	if got := params.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestParseQueryParams_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"page zero", "?page=0"},
		{"page negative", "?page=-1"},
		{"page not a number", "?page=abc"},
		{"limit zero", "?limit=0"},
		{"limit above max", "?limit=101"},
		{"limit not a number", "?limit=ten"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/reports"+tc.query, nil)
			if _, err := pagination.ParseQueryParams(r, testConfig()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewMetadata(t *testing.T) {
	cases := []struct {
		name       string
		params     pagination.Params
		total      int64
		totalPages int
	}{
		{"empty", pagination.Params{Page: 1, Limit: 20}, 0, 1},
		{"partial page", pagination.Params{Page: 1, Limit: 20}, 10, 1},
		{"exact page", pagination.Params{Page: 1, Limit: 20}, 20, 1},
		{"spills over", pagination.Params{Page: 2, Limit: 20}, 21, 2},
		{"many pages", pagination.Params{Page: 1, Limit: 20}, 100, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := pagination.NewMetadata(tc.params, tc.total)
			if meta.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tc.totalPages)
			}
			if meta.Total != tc.total || meta.Page != tc.params.Page || meta.Limit != tc.params.Limit {
				t.Errorf("unexpected metadata: %+v", meta)
			}
		})
	}
}
