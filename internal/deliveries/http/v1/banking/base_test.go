package banking_test

import (
	"testing"
	"time"

	"github.com/abeheron1/mock-data-holder/internal/common/snapshot"
	"github.com/abeheron1/mock-data-holder/internal/config"
	"github.com/abeheron1/mock-data-holder/internal/deliveries/http/v1/banking"
	"github.com/abeheron1/mock-data-holder/internal/document"
	"github.com/abeheron1/mock-data-holder/internal/repositories"
	"github.com/abeheron1/mock-data-holder/internal/services"
	"github.com/abeheron1/mock-data-holder/internal/services/mock"

	"github.com/labstack/echo/v4"
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
											"openStatus": "OPEN",
											"productCategory": "TRANS_AND_SAVINGS_ACCOUNTS"
										},
										"transactions": [
											{
												"transactionId": "t001",
												"description": "Coffee Beans Direct",
												"postingDateTime": "2022-06-15T10:30:00Z",
												"amount": "-25.60"
											},
											{
												"transactionId": "t002",
												"executionDateTime": "2022-06-10T08:00:00Z",
												"amount": "150.00",
												"reference": "PAYROLL-JUN"
											}
										]
									},
									{
										"account": {
											"accountId": "383467960",
											"displayName": "Mortgage Offset",
											"openStatus": "CLOSED",
											"productCategory": "RESIDENTIAL_MORTGAGES"
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

func newTestServices(t *testing.T) *services.Services {
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

	return services.New(config.Config{}, repo, zap.NewNop())
}

type testBankingHelper struct {
	router             *echo.Echo
	mockCtrl           *gomock.Controller
	mockBankingService *mock.MockBankingService
}

func bankingTestHelper(t *testing.T) testBankingHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockBankingSvc := mock.NewMockBankingService(mockCtrl)

	app := echo.New()
	banking.New(app.Group("/api/v1"), mockBankingSvc)

	return testBankingHelper{
		router:             app,
		mockCtrl:           mockCtrl,
		mockBankingService: mockBankingSvc,
	}
}
