package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTransactionWindow is the mandated default reporting window for
// transaction history when the caller supplies no time bounds.
const DefaultTransactionWindow = 90 * 24 * time.Hour

// Transaction is the typed projection of one transaction node. Dates and
// amounts stay strings on the record so deliberately non-compliant seed
// values survive projection; comparisons happen on parsed values inside the
// query engine only.
type Transaction struct {
	TransactionID        string
	IsDetailAvailable    *bool
	Type                 string
	Status               string
	Description          string
	PostingDateTime      string
	ExecutionDateTime    string
	Amount               string
	Currency             string
	Reference            string
	MerchantName         string
	MerchantCategoryCode string
	ApcaNumber           string
}

// AccountTransactionsFilter narrows a transaction listing for one account.
// Nil bounds mean "not supplied"; the engine applies the default window.
type AccountTransactionsFilter struct {
	CustomerID string
	AccountID  string
	OldestTime *time.Time
	NewestTime *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Text       string
}

type DoGetTransactionsRequest struct {
	OldestTime string `query:"oldest-time" json:"oldest-time" validate:"omitempty,iso8601datetime"`
	NewestTime string `query:"newest-time" json:"newest-time" validate:"omitempty,iso8601datetime"`
	MinAmount  string `query:"min-amount" json:"min-amount"`
	MaxAmount  string `query:"max-amount" json:"max-amount"`
	Text       string `query:"text" json:"text"`
	Page       int    `query:"page" json:"page"`
	PageSize   int    `query:"page-size" json:"page-size"`
}

// ToFilterOpts builds the engine filter from the request and the resolved
// customer/account pair.
func (req DoGetTransactionsRequest) ToFilterOpts(customerID, accountID string) (AccountTransactionsFilter, int, int, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return AccountTransactionsFilter{}, 0, 0, err
	}

	opts := AccountTransactionsFilter{
		CustomerID: customerID,
		AccountID:  accountID,
		Text:       req.Text,
	}

	if req.OldestTime != "" {
		t, err := time.Parse(time.RFC3339, req.OldestTime)
		if err != nil {
			return AccountTransactionsFilter{}, 0, 0, GetErrMap(ErrKeyInvalidDateTimeFormat, req.OldestTime)
		}
		opts.OldestTime = &t
	}

	if req.NewestTime != "" {
		t, err := time.Parse(time.RFC3339, req.NewestTime)
		if err != nil {
			return AccountTransactionsFilter{}, 0, 0, GetErrMap(ErrKeyInvalidDateTimeFormat, req.NewestTime)
		}
		opts.NewestTime = &t
	}

	if opts.OldestTime != nil && opts.NewestTime != nil && opts.OldestTime.After(*opts.NewestTime) {
		return AccountTransactionsFilter{}, 0, 0, GetErrMap(ErrKeyOldestTimeAfterNewestTime)
	}

	if req.MinAmount != "" {
		d, err := decimal.NewFromString(req.MinAmount)
		if err != nil {
			return AccountTransactionsFilter{}, 0, 0, GetErrMap(ErrKeyInvalidAmountFormat, req.MinAmount)
		}
		opts.MinAmount = &d
	}

	if req.MaxAmount != "" {
		d, err := decimal.NewFromString(req.MaxAmount)
		if err != nil {
			return AccountTransactionsFilter{}, 0, 0, GetErrMap(ErrKeyInvalidAmountFormat, req.MaxAmount)
		}
		opts.MaxAmount = &d
	}

	return opts, page, pageSize, nil
}

type TransactionResponse struct {
	TransactionID        string `json:"transactionId"`
	IsDetailAvailable    *bool  `json:"isDetailAvailable,omitempty"`
	Type                 string `json:"type,omitempty"`
	Status               string `json:"status,omitempty"`
	Description          string `json:"description,omitempty"`
	PostingDateTime      string `json:"postingDateTime,omitempty"`
	ExecutionDateTime    string `json:"executionDateTime,omitempty"`
	Amount               string `json:"amount,omitempty"`
	Currency             string `json:"currency,omitempty"`
	Reference            string `json:"reference,omitempty"`
	MerchantName         string `json:"merchantName,omitempty"`
	MerchantCategoryCode string `json:"merchantCategoryCode,omitempty"`
	ApcaNumber           string `json:"apcaNumber,omitempty"`
}

func (t Transaction) ToModelResponse() TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		IsDetailAvailable:    t.IsDetailAvailable,
		Type:                 t.Type,
		Status:               t.Status,
		Description:          t.Description,
		PostingDateTime:      t.PostingDateTime,
		ExecutionDateTime:    t.ExecutionDateTime,
		Amount:               t.Amount,
		Currency:             t.Currency,
		Reference:            t.Reference,
		MerchantName:         t.MerchantName,
		MerchantCategoryCode: t.MerchantCategoryCode,
		ApcaNumber:           t.ApcaNumber,
	}
}
