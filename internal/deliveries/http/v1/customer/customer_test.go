package customer_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	commonhttp "github.com/abeheron1/mock-data-holder/internal/common/http"
	"github.com/abeheron1/mock-data-holder/internal/common/snapshot"
	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/deliveries/http/v1/customer"
	"github.com/abeheron1/mock-data-holder/internal/document"
	"github.com/abeheron1/mock-data-holder/internal/models"
	"github.com/abeheron1/mock-data-holder/internal/repositories"
	"github.com/abeheron1/mock-data-holder/internal/services"
	"github.com/abeheron1/mock-data-holder/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const seedDoc = `{
	"holders": [
		{
			"holderId": "700992444",
			"holder": {
				"authenticated": {
					"customers": [
						{
							"customerId": "100451449",
							"loginId": "jojo",
							"customer": {
								"customerUType": "person",
								"person": {"firstName": "Jordan", "lastName": "Maxwell"}
							},
							"banking": {
								"accounts": [
									{
										"account": {
											"accountId": "283467960",
											"displayName": "Everyday Saver",
											"openStatus": "OPEN"
										},
										"transactions": []
									}
								]
							}
						}
					]
				}
			}
		}
	]
}`

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	doc, err := document.Parse([]byte(seedDoc))
	require.NoError(t, err)

	repo := repositories.NewJSONResourceRepository(
		snapshot.NewRef(doc),
		"",
		repositories.WithNow(func() time.Time {
			return time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
		}),
	)
	srv := services.New(config.Config{}, repo, zap.NewNop())

	app := echo.New()
	customer.New(app.Group("/api/v1"), srv.Customer, srv.Banking)

	return app
}

type testCustomerHelper struct {
	router              *echo.Echo
	mockCtrl            *gomock.Controller
	mockCustomerService *mock.MockCustomerService
	mockBankingService  *mock.MockBankingService
}

func customerTestHelper(t *testing.T) testCustomerHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockCustomerSvc := mock.NewMockCustomerService(mockCtrl)
	mockBankingSvc := mock.NewMockBankingService(mockCtrl)

	app := echo.New()
	customer.New(app.Group("/api/v1"), mockCustomerSvc, mockBankingSvc)

	return testCustomerHelper{
		router:              app,
		mockCtrl:            mockCtrl,
		mockCustomerService: mockCustomerSvc,
		mockBankingService:  mockBankingSvc,
	}
}

func doRequest(app *echo.Echo, target, customerID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodGet, target, nil)
	if customerID != "" {
		req.Header.Set(commonhttp.HeaderCustomerID, customerID)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	return rec
}

func TestGetCustomer(t *testing.T) {
	app := newTestApp(t)

	t.Run("person variant", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customer", "100451449")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body struct {
			Data models.GetCustomerResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, models.CustomerUTypePerson, body.Data.CustomerUType)
		require.NotNil(t, body.Data.Person)
		assert.Equal(t, "Jordan", body.Data.Person.FirstName)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customer", "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("unknown customer", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customer", "0")
		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestGetCustomerByLoginID(t *testing.T) {
	app := newTestApp(t)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customers/login/jojo", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body struct {
			Data models.CustomerLoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, "100451449", body.Data.CustomerID)
		assert.Equal(t, models.CustomerUTypePerson, body.Data.CustomerUType)
	})

	t.Run("unknown login id", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customers/login/nobody", "")
		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})
}

func TestGetAccountsForConsent(t *testing.T) {
	app := newTestApp(t)

	t.Run("lists the full universe", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customers/100451449/accounts", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body struct {
			Data []models.AccountResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		require.Len(t, body.Data, 1)
		assert.Equal(t, "283467960", body.Data[0].AccountID)
	})

	t.Run("unknown customer has an empty universe", func(t *testing.T) {
		rec := doRequest(app, "/api/v1/customers/0/accounts", "")
		require.Equal(t, nethttp.StatusOK, rec.Code)

		var body struct {
			Data []models.AccountResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})
}

func TestGetCustomer_ServiceError(t *testing.T) {
	testHelper := customerTestHelper(t)

	testHelper.mockCustomerService.EXPECT().
		Get(gomock.AssignableToTypeOf(context.Background()), "100451449").
		Return(nil, assert.AnError)

	rec := doRequest(testHelper.router, "/api/v1/customer", "100451449")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}

func TestGetCustomerByLoginID_ServiceError(t *testing.T) {
	testHelper := customerTestHelper(t)

	testHelper.mockCustomerService.EXPECT().
		GetByLoginID(gomock.AssignableToTypeOf(context.Background()), "jojo").
		Return(nil, assert.AnError)

	rec := doRequest(testHelper.router, "/api/v1/customers/login/jojo", "")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}

func TestGetAccountsForConsent_ServiceError(t *testing.T) {
	testHelper := customerTestHelper(t)

	testHelper.mockBankingService.EXPECT().
		GetAccountsForConsent(gomock.AssignableToTypeOf(context.Background()), "100451449").
		Return(nil, assert.AnError)

	rec := doRequest(testHelper.router, "/api/v1/customers/100451449/accounts", "")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
}
