package banking

import (
	"errors"
	nethttp "net/http"

	"github.com/abeheron1/mock-data-holder/internal/common"
	"github.com/abeheron1/mock-data-holder/internal/common/http"
	"github.com/abeheron1/mock-data-holder/internal/common/validation"
	"github.com/abeheron1/mock-data-holder/internal/models"
	"github.com/abeheron1/mock-data-holder/internal/services"

	"github.com/labstack/echo/v4"
)

type bankingHandler struct {
	bankingService services.BankingService
}

// New banking handler will initialize the banking/ resources endpoint
func New(app *echo.Group, bankingSrv services.BankingService) {
	bh := bankingHandler{
		bankingService: bankingSrv,
	}
	banking := app.Group("/banking")
	banking.GET("/accounts", bh.getAccounts())
	banking.GET("/accounts/:accountId/transactions", bh.getTransactions())
}

// getAccounts API list accounts for the authenticated customer
// @Summary Get all accounts
// @Description Get all accounts visible to the authenticated customer
// @Tags Banking
// @Produce  json
// @Param	X-Customer-Id header string true "X-Customer-Id"
// @Param	X-Allowed-Account-Ids header string false "X-Allowed-Account-Ids"
// @Param   params query models.DoGetListAccountsRequest true "Get all accounts query parameters"
// @Success 200 {object} http.RestPaginatedResponseModel[models.AccountResponse]
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/banking/accounts [get]
func (bh bankingHandler) getAccounts() echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID := c.Request().Header.Get(http.HeaderCustomerID)
		if customerID == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrValidation)
		}
		allowedAccountIDs := http.ParseAllowedAccountIDs(c.Request().Header.Get(http.HeaderAllowedAccountIDs))

		var queryFilter models.DoGetListAccountsRequest
		if err := c.Bind(&queryFilter); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(queryFilter); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		opts, page, pageSize, err := queryFilter.ToFilterOpts(customerID, allowedAccountIDs)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		accounts, err := bh.bankingService.GetAccounts(c.Request().Context(), opts, page, pageSize)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestPaginatedResponse[models.AccountResponse](c, accounts)
	}
}

// getTransactions API list transactions for one account
// @Summary Get account transactions
// @Description Get transactions for an account the customer can access
// @Tags Banking
// @Produce  json
// @Param	X-Customer-Id header string true "X-Customer-Id"
// @Param	accountId path string true "accountId"
// @Param   params query models.DoGetTransactionsRequest true "Get transactions query parameters"
// @Success 200 {object} http.RestPaginatedResponseModel[models.TransactionResponse]
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/banking/accounts/{accountId}/transactions [get]
func (bh bankingHandler) getTransactions() echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID := c.Request().Header.Get(http.HeaderCustomerID)
		if customerID == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrValidation)
		}

		var queryFilter models.DoGetTransactionsRequest
		if err := c.Bind(&queryFilter); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(queryFilter); err != nil {
			return http.RestErrorValidationResponse(c, err)
		}

		opts, page, pageSize, err := queryFilter.ToFilterOpts(customerID, c.Param("accountId"))
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		transactions, err := bh.bankingService.GetTransactions(c.Request().Context(), opts, page, pageSize)
		if err != nil {
			var detail models.ErrorDetail
			if errors.As(err, &detail) {
				return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
			}
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestPaginatedResponse[models.TransactionResponse](c, transactions)
	}
}
