package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoGetTransactionsRequest_ToFilterOpts(t *testing.T) {
	t.Run("all fields parsed", func(t *testing.T) {
		filter, page, pageSize, err := DoGetTransactionsRequest{
			OldestTime: "2022-06-01T00:00:00Z",
			NewestTime: "2022-07-01T00:00:00Z",
			MinAmount:  "10.50",
			MaxAmount:  "200",
			Text:       "coffee",
			Page:       2,
			PageSize:   5,
		}.ToFilterOpts("100451449", "283467960")
		require.NoError(t, err)

		assert.Equal(t, 2, page)
		assert.Equal(t, 5, pageSize)
		assert.Equal(t, "100451449", filter.CustomerID)
		assert.Equal(t, "283467960", filter.AccountID)
		assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), *filter.OldestTime)
		assert.Equal(t, time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), *filter.NewestTime)
		assert.Equal(t, "10.5", filter.MinAmount.String())
		assert.Equal(t, "200", filter.MaxAmount.String())
		assert.Equal(t, "coffee", filter.Text)
	})

	t.Run("empty request leaves bounds nil", func(t *testing.T) {
		filter, page, pageSize, err := DoGetTransactionsRequest{}.ToFilterOpts("100451449", "283467960")
		require.NoError(t, err)

		assert.Equal(t, defaultPage, page)
		assert.Equal(t, defaultPageSize, pageSize)
		assert.Nil(t, filter.OldestTime)
		assert.Nil(t, filter.NewestTime)
		assert.Nil(t, filter.MinAmount)
		assert.Nil(t, filter.MaxAmount)
	})

	tests := []struct {
		name     string
		req      DoGetTransactionsRequest
		wantCode string
	}{
		{
			name:     "bad oldest time",
			req:      DoGetTransactionsRequest{OldestTime: "yesterday"},
			wantCode: MapErrors[ErrKeyInvalidDateTimeFormat].Code,
		},
		{
			name: "oldest after newest",
			req: DoGetTransactionsRequest{
				OldestTime: "2022-07-01T00:00:00Z",
				NewestTime: "2022-06-01T00:00:00Z",
			},
			wantCode: MapErrors[ErrKeyOldestTimeAfterNewestTime].Code,
		},
		{
			name:     "bad min amount",
			req:      DoGetTransactionsRequest{MinAmount: "lots"},
			wantCode: MapErrors[ErrKeyInvalidAmountFormat].Code,
		},
		{
			name:     "bad max amount",
			req:      DoGetTransactionsRequest{MaxAmount: "1.2.3"},
			wantCode: MapErrors[ErrKeyInvalidAmountFormat].Code,
		},
		{
			name:     "negative page",
			req:      DoGetTransactionsRequest{Page: -1},
			wantCode: MapErrors[ErrKeyPageMustBeGreaterThanZero].Code,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.req.ToFilterOpts("100451449", "283467960")
			require.Error(t, err)

			var detail ErrorDetail
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}
