package services

import (
	"context"

	"github.com/abeheron1/mock-data-holder/internal/models"
)

type BankingService interface {
	GetAccounts(ctx context.Context, filter models.AccountFilter, page, pageSize int) (out models.Page[models.Account], err error)
	GetAccountsForConsent(ctx context.Context, customerID string) (out []models.Account, err error)
	GetTransactions(ctx context.Context, filter models.AccountTransactionsFilter, page, pageSize int) (out models.Page[models.Transaction], err error)
}

type banking service

var _ BankingService = (*banking)(nil)

// GetAccounts implements BankingService.
func (s *banking) GetAccounts(ctx context.Context, filter models.AccountFilter, page, pageSize int) (out models.Page[models.Account], err error) {
	out, err = s.srv.resourceRepo.GetAllAccounts(ctx, filter, page, pageSize)

	return
}

// GetAccountsForConsent implements BankingService.
func (s *banking) GetAccountsForConsent(ctx context.Context, customerID string) (out []models.Account, err error) {
	out, err = s.srv.resourceRepo.GetAllAccountsByCustomerIDForConsent(ctx, customerID)

	return
}

// GetTransactions implements BankingService. The account must belong to the
// requesting customer; an account outside the customer's holdings reads the
// same as one that does not exist.
func (s *banking) GetTransactions(ctx context.Context, filter models.AccountTransactionsFilter, page, pageSize int) (out models.Page[models.Transaction], err error) {
	allowed, err := s.srv.resourceRepo.CanAccessAccount(ctx, filter.AccountID, filter.CustomerID)
	if err != nil {
		return
	}
	if !allowed {
		err = models.GetErrMap(models.ErrKeyAccountNotFound, filter.AccountID)
		return
	}

	out, err = s.srv.resourceRepo.GetAccountTransactions(ctx, filter, page, pageSize)

	return
}
