package services

import (
	"context"

	"github.com/abeheron1/mock-data-holder/internal/models"
)

type CustomerService interface {
	Get(ctx context.Context, customerID string) (out *models.Customer, err error)
	GetByLoginID(ctx context.Context, loginID string) (out *models.Customer, err error)
}

type customer service

var _ CustomerService = (*customer)(nil)

// Get implements CustomerService.
func (s *customer) Get(ctx context.Context, customerID string) (out *models.Customer, err error) {
	out, err = s.srv.resourceRepo.GetCustomer(ctx, customerID)
	if err != nil {
		return
	}
	if out == nil {
		err = models.GetErrMap(models.ErrKeyCustomerNotFound, customerID)
		return
	}

	return
}

// GetByLoginID implements CustomerService. Used by the login flow of the
// authorization collaborator; the projection carries the variant tag but not
// the variant body.
func (s *customer) GetByLoginID(ctx context.Context, loginID string) (out *models.Customer, err error) {
	out, err = s.srv.resourceRepo.GetCustomerByLoginID(ctx, loginID)
	if err != nil {
		return
	}
	if out == nil {
		err = models.GetErrMap(models.ErrKeyCustomerNotFound, loginID)
		return
	}

	return
}
