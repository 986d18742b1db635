package customer

import (
	"errors"
	nethttp "net/http"

	"github.com/abeheron1/mock-data-holder/internal/common"
	"github.com/abeheron1/mock-data-holder/internal/common/http"
	"github.com/abeheron1/mock-data-holder/internal/models"
	"github.com/abeheron1/mock-data-holder/internal/services"

	"github.com/labstack/echo/v4"
)

type customerHandler struct {
	customerService services.CustomerService
	bankingService  services.BankingService
}

// New customer handler will initialize the customer/ resources endpoint
func New(app *echo.Group, customerSrv services.CustomerService, bankingSrv services.BankingService) {
	ch := customerHandler{
		customerService: customerSrv,
		bankingService:  bankingSrv,
	}
	app.GET("/customer", ch.getCustomer())

	customers := app.Group("/customers")
	customers.GET("/login/:loginId", ch.getCustomerByLoginID())
	customers.GET("/:customerId/accounts", ch.getAccountsForConsent())
}

// getCustomer resolves the authenticated customer into its person or
// organisation variant.
// @Summary Get customer
// @Description Get the authenticated customer record
// @Tags Customer
// @Produce  json
// @Param	X-Customer-Id header string true "X-Customer-Id"
// @Success 200 {object} models.GetCustomerResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customer [get]
func (ch customerHandler) getCustomer() echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID := c.Request().Header.Get(http.HeaderCustomerID)
		if customerID == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrValidation)
		}

		result, err := ch.customerService.Get(c.Request().Context(), customerID)
		if err != nil {
			var detail models.ErrorDetail
			if errors.As(err, &detail) {
				return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
			}
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestDataResponse(c, result.ToModelResponse())
	}
}

// getCustomerByLoginID serves the login flow of the authorization
// collaborator.
// @Summary Get customer by login id
// @Description Resolve a login identifier to its customer
// @Tags Customer
// @Produce  json
// @Param	loginId path string true "loginId"
// @Success 200 {object} models.CustomerLoginResponse
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/login/{loginId} [get]
func (ch customerHandler) getCustomerByLoginID() echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := ch.customerService.GetByLoginID(c.Request().Context(), c.Param("loginId"))
		if err != nil {
			var detail models.ErrorDetail
			if errors.As(err, &detail) {
				return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
			}
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		return http.RestDataResponse(c, result.ToLoginResponse())
	}
}

// getAccountsForConsent lists the customer's full account universe for
// consent selection, unfiltered and unpaginated.
// @Summary Get customer accounts
// @Description Get every account belonging to a customer, for consent flows
// @Tags Customer
// @Produce  json
// @Param	customerId path string true "customerId"
// @Success 200 {object} http.RestDataResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/customers/{customerId}/accounts [get]
func (ch customerHandler) getAccountsForConsent() echo.HandlerFunc {
	return func(c echo.Context) error {
		accounts, err := ch.bankingService.GetAccountsForConsent(c.Request().Context(), c.Param("customerId"))
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
		}

		contents := make([]models.AccountResponse, 0, len(accounts))
		for _, account := range accounts {
			contents = append(contents, account.ToModelResponse())
		}

		return http.RestDataResponse(c, contents)
	}
}
