package repositories

import (
	"github.com/abeheron1/mock-data-holder/internal/document"
	"github.com/abeheron1/mock-data-holder/internal/models"
)

// Projections map matched nodes straight onto typed records, field by field.
// Missing or mistyped fields project to zero values instead of failing; the
// seed data is allowed to be non-compliant and the engine must keep working.

func projectAccount(n document.Node, customerID string) models.Account {
	account := models.Account{
		AccountID:       n.Get("accountId").StringOr(""),
		CustomerID:      customerID,
		CreationDate:    n.Get("creationDate").StringOr(""),
		DisplayName:     n.Get("displayName").StringOr(""),
		Nickname:        n.Get("nickname").StringOr(""),
		OpenStatus:      n.Get("openStatus").StringOr(""),
		MaskedNumber:    n.Get("maskedNumber").StringOr(""),
		ProductCategory: n.Get("productCategory").StringOr(""),
		ProductName:     n.Get("productName").StringOr(""),
	}

	if owned, ok := n.Get("isOwned").AsBool(); ok {
		account.IsOwned = &owned
	}

	return account
}

func projectTransaction(n document.Node) models.Transaction {
	transaction := models.Transaction{
		TransactionID:        n.Get("transactionId").StringOr(""),
		Type:                 n.Get("type").StringOr(""),
		Status:               n.Get("status").StringOr(""),
		Description:          n.Get("description").StringOr(""),
		PostingDateTime:      n.Get("postingDateTime").StringOr(""),
		ExecutionDateTime:    n.Get("executionDateTime").StringOr(""),
		Amount:               n.Get("amount").StringOr(""),
		Currency:             n.Get("currency").StringOr(""),
		Reference:            n.Get("reference").StringOr(""),
		MerchantName:         n.Get("merchantName").StringOr(""),
		MerchantCategoryCode: n.Get("merchantCategoryCode").StringOr(""),
		ApcaNumber:           n.Get("apcaNumber").StringOr(""),
	}

	if available, ok := n.Get("isDetailAvailable").AsBool(); ok {
		transaction.IsDetailAvailable = &available
	}

	return transaction
}

func projectPerson(n document.Node, customerID string) models.Person {
	return models.Person{
		CustomerID:            customerID,
		LastUpdateTime:        n.Get("lastUpdateTime").StringOr(""),
		FirstName:             n.Get("firstName").StringOr(""),
		LastName:              n.Get("lastName").StringOr(""),
		MiddleNames:           n.StringsOf("middleNames"),
		Prefix:                n.Get("prefix").StringOr(""),
		Suffix:                n.Get("suffix").StringOr(""),
		OccupationCode:        n.Get("occupationCode").StringOr(""),
		OccupationCodeVersion: n.Get("occupationCodeVersion").StringOr(""),
	}
}

func projectOrganisation(n document.Node, customerID string) models.Organisation {
	return models.Organisation{
		CustomerID:        customerID,
		LastUpdateTime:    n.Get("lastUpdateTime").StringOr(""),
		AgentFirstName:    n.Get("agentFirstName").StringOr(""),
		AgentLastName:     n.Get("agentLastName").StringOr(""),
		AgentRole:         n.Get("agentRole").StringOr(""),
		BusinessName:      n.Get("businessName").StringOr(""),
		LegalName:         n.Get("legalName").StringOr(""),
		ShortName:         n.Get("shortName").StringOr(""),
		ABN:               n.Get("abn").StringOr(""),
		ACN:               n.Get("acn").StringOr(""),
		OrganisationType:  n.Get("organisationType").StringOr(""),
		RegisteredCountry: n.Get("registeredCountry").StringOr(""),
		EstablishmentDate: n.Get("establishmentDate").StringOr(""),
	}
}

// projectCustomer maps a whole customer node, without resolving the
// person/organisation variant. Used by login-id lookups.
func projectCustomer(n document.Node) models.Customer {
	return models.Customer{
		CustomerID:    n.Get("customerId").StringOr(""),
		LoginID:       n.Get("loginId").StringOr(""),
		CustomerUType: n.Get("customer").Get("customerUType").StringOr(""),
	}
}
