package banking_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	commonhttp "github.com/abeheron1/mock-data-holder/internal/common/http"
	"github.com/abeheron1/mock-data-holder/internal/deliveries/http/v1/banking"
	"github.com/abeheron1/mock-data-holder/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paginatedAccounts struct {
	Data  []models.AccountResponse  `json:"data"`
	Links commonhttp.LinksPaginated `json:"links"`
	Meta  commonhttp.MetaPaginated  `json:"meta"`
}

type paginatedTransactions struct {
	Data []models.TransactionResponse `json:"data"`
	Meta commonhttp.MetaPaginated     `json:"meta"`
}

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	srv := newTestServices(t)
	app := echo.New()
	banking.New(app.Group("/api/v1"), srv.Banking)

	return app
}

func doRequest(app *echo.Echo, target, customerID, allowedAccountIDs string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	if customerID != "" {
		req.Header.Set(commonhttp.HeaderCustomerID, customerID)
	}
	if allowedAccountIDs != "" {
		req.Header.Set(commonhttp.HeaderAllowedAccountIDs, allowedAccountIDs)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	return rec
}

func TestGetAccounts(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name              string
		target            string
		customerID        string
		allowedAccountIDs string
		wantStatus        int
		wantIDs           []string
		wantTotal         int
	}{
		{
			name:              "lists consented accounts",
			target:            "/api/v1/banking/accounts",
			customerID:        "100451449",
			allowedAccountIDs: "283467960, 383467960",
			wantStatus:        nethttp.StatusOK,
			wantIDs:           []string{"283467960", "383467960"},
			wantTotal:         2,
		},
		{
			name:              "open status filter",
			target:            "/api/v1/banking/accounts?open-status=OPEN",
			customerID:        "100451449",
			allowedAccountIDs: "283467960,383467960",
			wantStatus:        nethttp.StatusOK,
			wantIDs:           []string{"283467960"},
			wantTotal:         1,
		},
		{
			name:       "no consent header yields an empty page",
			target:     "/api/v1/banking/accounts",
			customerID: "100451449",
			wantStatus: nethttp.StatusOK,
			wantIDs:    []string{},
			wantTotal:  0,
		},
		{
			name:              "second page is empty but keeps the total",
			target:            "/api/v1/banking/accounts?page=2&page-size=25",
			customerID:        "100451449",
			allowedAccountIDs: "283467960,383467960",
			wantStatus:        nethttp.StatusOK,
			wantIDs:           []string{},
			wantTotal:         2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(app, tt.target, tt.customerID, tt.allowedAccountIDs)
			require.Equal(t, tt.wantStatus, rec.Code)

			var body paginatedAccounts
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, tt.wantTotal, body.Meta.TotalRecords)
			gotIDs := make([]string, 0, len(body.Data))
			for _, account := range body.Data {
				gotIDs = append(gotIDs, account.AccountID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestGetAccounts_Errors(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing customer header", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts", "", "283467960")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("invalid open status", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts?open-status=HALF_OPEN", "100451449", "283467960")
		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("negative page", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts?page=-1", "100451449", "283467960")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestGetAccounts_ServiceError(t *testing.T) {
	testHelper := bankingTestHelper(t)

	testHelper.mockBankingService.EXPECT().
		GetAccounts(gomock.AssignableToTypeOf(context.Background()), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Page[models.Account]{}, assert.AnError)

	rec := doRequest(testHelper.router, "/api/v1/banking/accounts", "100451449", "283467960")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}

func TestGetAccounts_PaginationLinks(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, "/api/v1/banking/accounts?page=1&page-size=1", "100451449", "283467960,383467960")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var body paginatedAccounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.Contains(t, body.Links.Next, "page=2")
	assert.Contains(t, body.Links.Last, "page=2")
	assert.Empty(t, body.Links.Prev)
}

func TestGetTransactions(t *testing.T) {
	app := newTestApp(t)

	t.Run("default window", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions", "100451449", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body paginatedTransactions
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, 2, body.Meta.TotalRecords)
		assert.Equal(t, "t001", body.Data[0].TransactionID)
		assert.Equal(t, "t002", body.Data[1].TransactionID)
	})

	t.Run("text filter", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions?text=payroll", "100451449", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body paginatedTransactions
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, 1, body.Meta.TotalRecords)
		assert.Equal(t, "t002", body.Data[0].TransactionID)
	})

	t.Run("foreign account", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/999/transactions", "100451449", "")
		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})

	t.Run("missing customer header", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions", "", "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("invalid oldest time", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions?oldest-time=yesterday", "100451449", "")
		assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("oldest after newest", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions?oldest-time=2022-07-01T00:00:00Z&newest-time=2022-06-01T00:00:00Z", "100451449", "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("invalid min amount", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/banking/accounts/283467960/transactions?min-amount=lots", "100451449", "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestGetTransactions_ServiceError(t *testing.T) {
	testHelper := bankingTestHelper(t)

	testHelper.mockBankingService.EXPECT().
		GetTransactions(gomock.AssignableToTypeOf(context.Background()), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Page[models.Transaction]{}, assert.AnError)

	rec := doRequest(testHelper.router, "/api/v1/banking/accounts/283467960/transactions", "100451449", "")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}
