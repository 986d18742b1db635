package models

const (
	defaultPage     = 1
	defaultPageSize = 25
)

// Account is the typed projection of one account node from the seed
// document. CustomerID is stamped on at projection time; the per-account node
// does not carry it.
type Account struct {
	AccountID       string
	CustomerID      string
	CreationDate    string
	DisplayName     string
	Nickname        string
	OpenStatus      string
	IsOwned         *bool
	MaskedNumber    string
	ProductCategory string
	ProductName     string
}

// AccountFilter narrows an account listing. AllowedAccountIDs is a mandatory
// allow-list sourced from the caller's consent grant; when it is empty no
// account is visible at all.
type AccountFilter struct {
	AllowedAccountIDs []string
	CustomerID        string
	OpenStatus        string
	ProductCategory   string
	IsOwned           *bool
}

type DoGetListAccountsRequest struct {
	OpenStatus      string `query:"open-status" json:"open-status" validate:"omitempty,oneof=OPEN CLOSED ALL"`
	ProductCategory string `query:"product-category" json:"product-category"`
	IsOwned         *bool  `query:"is-owned" json:"is-owned"`
	Page            int    `query:"page" json:"page"`
	PageSize        int    `query:"page-size" json:"page-size"`
}

// ToFilterOpts builds the engine filter from the request, the authenticated
// customer and the consented account ids.
func (req DoGetListAccountsRequest) ToFilterOpts(customerID string, allowedAccountIDs []string) (AccountFilter, int, int, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return AccountFilter{}, 0, 0, err
	}

	openStatus := req.OpenStatus
	if openStatus == "ALL" {
		// ALL is the "no filter" value on the wire
		openStatus = ""
	}

	return AccountFilter{
		AllowedAccountIDs: allowedAccountIDs,
		CustomerID:        customerID,
		OpenStatus:        openStatus,
		ProductCategory:   req.ProductCategory,
		IsOwned:           req.IsOwned,
	}, page, pageSize, nil
}

func normalizePagination(page, pageSize int) (int, int, error) {
	if page < 0 {
		return 0, 0, GetErrMap(ErrKeyPageMustBeGreaterThanZero)
	}
	if pageSize < 0 {
		return 0, 0, GetErrMap(ErrKeyPageSizeMustBeGreaterThanZero)
	}

	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	return page, pageSize, nil
}

type AccountResponse struct {
	AccountID       string `json:"accountId"`
	CustomerID      string `json:"customerId,omitempty"`
	CreationDate    string `json:"creationDate,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	Nickname        string `json:"nickname,omitempty"`
	OpenStatus      string `json:"openStatus,omitempty"`
	IsOwned         *bool  `json:"isOwned,omitempty"`
	MaskedNumber    string `json:"maskedNumber,omitempty"`
	ProductCategory string `json:"productCategory,omitempty"`
	ProductName     string `json:"productName,omitempty"`
}

func (a Account) ToModelResponse() AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		CustomerID:      a.CustomerID,
		CreationDate:    a.CreationDate,
		DisplayName:     a.DisplayName,
		Nickname:        a.Nickname,
		OpenStatus:      a.OpenStatus,
		IsOwned:         a.IsOwned,
		MaskedNumber:    a.MaskedNumber,
		ProductCategory: a.ProductCategory,
		ProductName:     a.ProductName,
	}
}
