package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/fileserve/pagination"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		req      pagination.Request
		opts     []pagination.Option
		wantPage int
		wantSize int
	}{
		{
			name:     "zero values get defaults",
			req:      pagination.Request{},
			wantPage: 1,
			wantSize: 20,
		},
		{
			name:     "negative page becomes first page",
			req:      pagination.Request{PageNumber: -3, PageSize: 10},
			wantPage: 1,
			wantSize: 10,
		},
		{
			name:     "oversized page size is capped",
			req:      pagination.Request{PageNumber: 2, PageSize: 500},
			wantPage: 2,
			wantSize: 100,
		},
		{
			name:     "custom max page size",
			req:      pagination.Request{PageNumber: 1, PageSize: 500},
			opts:     []pagination.Option{pagination.WithMaxPageSize(250)},
			wantPage: 1,
			wantSize: 250,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize(tc.opts...)
			assert.Equal(t, tc.wantPage, tc.req.PageNumber)
			assert.Equal(t, tc.wantSize, tc.req.PageSize)
		})
	}
}

func TestOffsetLimit(t *testing.T) {
	req := pagination.Request{PageNumber: 3, PageSize: 10}
	assert.Equal(t, 20, req.Offset())
	assert.Equal(t, 10, req.Limit())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name string
		req  pagination.Request
		want []int
	}{
		{
			name: "first page",
			req:  pagination.Request{PageNumber: 1, PageSize: 3},
			want: []int{1, 2, 3},
		},
		{
			name: "middle page",
			req:  pagination.Request{PageNumber: 2, PageSize: 3},
			want: []int{4, 5, 6},
		},
		{
			name: "short last page",
			req:  pagination.Request{PageNumber: 3, PageSize: 3},
			want: []int{7},
		},
		{
			name: "page beyond the end is empty, not nil",
			req:  pagination.Request{PageNumber: 9, PageSize: 3},
			want: []int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pagination.Paginate(items, tc.req)
			assert.Equal(t, tc.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestNewResponse(t *testing.T) {
	req := pagination.Request{PageNumber: 2, PageSize: 3}
	resp := pagination.NewResponse([]string{"d", "e", "f"}, 7, req)

	assert.Equal(t, 2, resp.PageNumber)
	assert.Equal(t, 3, resp.PageSize)
	assert.Equal(t, 3, resp.PageCount)
	assert.Equal(t, int64(7), resp.TotalCount)
	assert.Equal(t, []string{"d", "e", "f"}, resp.PageContent)
}
