package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default size", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
		{"oversized page size is clamped", 1, 500, 0, DefaultPageSize},
		{"negative page treated as first", -2, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got offset=%d limit=%d, want offset=%d limit=%d", offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("42 items at size 10 should give 5 pages, got %d", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 42 {
		t.Errorf("unexpected pagination info: %+v", info)
	}
}

func TestNewPaginationInfo_EmptyResult(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("an empty result still has one page, got %d", info.TotalPages)
	}
}

func TestNewPaginationInfo_PageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(15, 9, 10)
	if info.CurrentPage != 2 {
		t.Errorf("current page should clamp to the last page, got %d", info.CurrentPage)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&size=25", 3, 25},
		{"garbage page", "page=abc", 1, DefaultPageSize},
		{"oversized size", "size=1000", 1, DefaultPageSize},
		{"zero page", "page=0", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}
