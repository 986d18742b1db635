package repositories

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/abeheron1/mock-data-holder/internal/common/snapshot"
	"github.com/abeheron1/mock-data-holder/internal/document"
	"github.com/abeheron1/mock-data-holder/internal/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ResourceRepository is the query surface of the mock data holder: read-only
// lookups over the active seed document snapshot. Lookups that find nothing
// return empty results, never errors; callers must treat absence as a normal
// outcome.
type ResourceRepository interface {
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	GetCustomerByLoginID(ctx context.Context, loginID string) (*models.Customer, error)
	GetAllAccounts(ctx context.Context, filter models.AccountFilter, page, pageSize int) (models.Page[models.Account], error)
	GetAllAccountsByCustomerIDForConsent(ctx context.Context, customerID string) ([]models.Account, error)
	GetAccountTransactions(ctx context.Context, filter models.AccountTransactionsFilter, page, pageSize int) (models.Page[models.Transaction], error)
	CanAccessAccount(ctx context.Context, accountID, customerID string) (bool, error)
}

type JSONResourceRepository struct {
	snap     *snapshot.Ref[document.Node]
	holderID string
	now      func() time.Time
}

var _ ResourceRepository = (*JSONResourceRepository)(nil)

type Option func(*JSONResourceRepository)

// WithNow overrides the clock used for the default transaction window.
func WithNow(now func() time.Time) Option {
	return func(r *JSONResourceRepository) {
		r.now = now
	}
}

// NewJSONResourceRepository builds the query engine over an already loaded
// document snapshot. holderID selects the tenant partition; empty means
// single-tenant mode (first holder in document order).
func NewJSONResourceRepository(snap *snapshot.Ref[document.Node], holderID string, opts ...Option) *JSONResourceRepository {
	r := &JSONResourceRepository{
		snap:     snap,
		holderID: holderID,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reload replaces the active snapshot atomically. In-flight queries keep the
// tree they already loaded.
func (r *JSONResourceRepository) Reload(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	r.snap.Store(doc)

	return nil
}

// customers resolves the active holder and returns its authenticated
// customer list. An unknown holder id behaves as an empty list, not an
// error; downstream lookups then simply match nothing.
func (r *JSONResourceRepository) customers() []document.Node {
	holders := r.snap.Load().Get("holders").Items()

	var holder document.Node
	if r.holderID == "" {
		if len(holders) == 0 {
			return nil
		}
		holder = holders[0]
	} else {
		match, found := lo.Find(holders, func(h document.Node) bool {
			id, ok := h.Get("holderId").AsString()
			return ok && id == r.holderID
		})
		if !found {
			return nil
		}
		holder = match
	}

	return holder.Get("holder").Get("authenticated").Get("customers").Items()
}

// accountEntries returns the account wrapper nodes (account + transactions)
// owned by the given customer.
func (r *JSONResourceRepository) accountEntries(customerID string) []document.Node {
	owned := lo.Filter(r.customers(), func(c document.Node, _ int) bool {
		id, ok := c.Get("customerId").AsString()
		return ok && id == customerID
	})

	return lo.FlatMap(owned, func(c document.Node, _ int) []document.Node {
		return c.Get("banking").Get("accounts").Items()
	})
}

func (r *JSONResourceRepository) GetCustomer(_ context.Context, customerID string) (*models.Customer, error) {
	match, found := lo.Find(r.customers(), func(c document.Node) bool {
		id, ok := c.Get("customerId").AsString()
		return ok && id == customerID
	})
	if !found {
		return nil, nil
	}

	// The record's own customerUType decides the projected variant. An
	// unrecognized or missing type resolves to "not found" on purpose: such
	// records exist in the seed data to probe caller robustness.
	variant := match.Get("customer")
	switch variant.Get("customerUType").StringOr("") {
	case models.CustomerUTypePerson:
		person := projectPerson(variant.Get("person"), customerID)
		return &models.Customer{
			CustomerID:    customerID,
			CustomerUType: models.CustomerUTypePerson,
			Person:        &person,
		}, nil
	case models.CustomerUTypeOrganisation:
		organisation := projectOrganisation(variant.Get("organisation"), customerID)
		return &models.Customer{
			CustomerID:    customerID,
			CustomerUType: models.CustomerUTypeOrganisation,
			Organisation:  &organisation,
		}, nil
	default:
		return nil, nil
	}
}

func (r *JSONResourceRepository) GetCustomerByLoginID(_ context.Context, loginID string) (*models.Customer, error) {
	match, found := lo.Find(r.customers(), func(c document.Node) bool {
		id, ok := c.Get("loginId").AsString()
		return ok && id == loginID
	})
	if !found {
		return nil, nil
	}

	customer := projectCustomer(match)

	return &customer, nil
}

func (r *JSONResourceRepository) GetAllAccounts(_ context.Context, filter models.AccountFilter, page, pageSize int) (models.Page[models.Account], error) {
	empty := models.Page[models.Account]{
		Data:        []models.Account{},
		CurrentPage: page,
		PageSize:    pageSize,
	}

	// Only individually owned accounts are modelled; a query for accounts
	// that are not owned has nothing to return.
	if filter.IsOwned != nil && !*filter.IsOwned {
		return empty, nil
	}

	// The allow-list is mandatory: no consented account ids, no visible
	// accounts.
	if len(filter.AllowedAccountIDs) == 0 {
		return empty, nil
	}

	accounts := lo.Map(r.accountEntries(filter.CustomerID), func(entry document.Node, _ int) document.Node {
		return entry.Get("account")
	})

	accounts = lo.Filter(accounts, func(a document.Node, _ int) bool {
		id, ok := a.Get("accountId").AsString()
		return ok && lo.Contains(filter.AllowedAccountIDs, id)
	})

	if filter.OpenStatus != "" {
		accounts = lo.Filter(accounts, fieldEquals("openStatus", filter.OpenStatus))
	}

	if filter.ProductCategory != "" {
		accounts = lo.Filter(accounts, fieldEquals("productCategory", filter.ProductCategory))
	}

	sortAccounts(accounts)

	nodePage := models.Paginate(accounts, page, pageSize)

	return models.Page[models.Account]{
		Data: lo.Map(nodePage.Data, func(a document.Node, _ int) models.Account {
			return projectAccount(a, filter.CustomerID)
		}),
		TotalRecords: nodePage.TotalRecords,
		CurrentPage:  page,
		PageSize:     pageSize,
	}, nil
}

// GetAllAccountsByCustomerIDForConsent lists every account owned by the
// customer, unfiltered and unpaginated. This is the universe presented
// during consent selection, as opposed to the access-scoped listing above.
func (r *JSONResourceRepository) GetAllAccountsByCustomerIDForConsent(_ context.Context, customerID string) ([]models.Account, error) {
	accounts := lo.Map(r.accountEntries(customerID), func(entry document.Node, _ int) document.Node {
		return entry.Get("account")
	})

	sortAccounts(accounts)

	return lo.Map(accounts, func(a document.Node, _ int) models.Account {
		return projectAccount(a, customerID)
	}), nil
}

func (r *JSONResourceRepository) GetAccountTransactions(_ context.Context, filter models.AccountTransactionsFilter, page, pageSize int) (models.Page[models.Transaction], error) {
	newest := r.now().UTC()
	if filter.NewestTime != nil {
		newest = *filter.NewestTime
	}
	oldest := newest.Add(-models.DefaultTransactionWindow)
	if filter.OldestTime != nil {
		oldest = *filter.OldestTime
	}

	entries := lo.Filter(r.accountEntries(filter.CustomerID), func(entry document.Node, _ int) bool {
		id, ok := entry.Get("account").Get("accountId").AsString()
		return ok && id == filter.AccountID
	})

	transactions := lo.FlatMap(entries, func(entry document.Node, _ int) []document.Node {
		return entry.Get("transactions").Items()
	})

	predicates := []func(document.Node) bool{
		dateAtMost(newest),
		dateAtLeast(oldest),
	}
	if filter.MinAmount != nil {
		predicates = append(predicates, amountAtLeast(*filter.MinAmount))
	}
	if filter.MaxAmount != nil {
		predicates = append(predicates, amountAtMost(*filter.MaxAmount))
	}
	if filter.Text != "" {
		predicates = append(predicates, matchesText(filter.Text))
	}

	transactions = lo.Filter(transactions, func(t document.Node, _ int) bool {
		for _, match := range predicates {
			if !match(t) {
				return false
			}
		}
		return true
	})

	sortTransactions(transactions)

	nodePage := models.Paginate(transactions, page, pageSize)

	return models.Page[models.Transaction]{
		Data: lo.Map(nodePage.Data, func(t document.Node, _ int) models.Transaction {
			return projectTransaction(t)
		}),
		TotalRecords: nodePage.TotalRecords,
		CurrentPage:  page,
		PageSize:     pageSize,
	}, nil
}

// CanAccessAccount reports whether the account belongs to the customer. It
// is the membership primitive callers use before serving account-scoped
// resources; consent enforcement proper happens outside this engine.
func (r *JSONResourceRepository) CanAccessAccount(_ context.Context, accountID, customerID string) (bool, error) {
	owned := lo.SomeBy(r.accountEntries(customerID), func(entry document.Node) bool {
		id, ok := entry.Get("account").Get("accountId").AsString()
		return ok && id == accountID
	})

	return owned, nil
}

// fieldEquals matches nodes whose named field is present and equals want.
// A record missing the field is excluded, not an error.
func fieldEquals(name, want string) func(document.Node, int) bool {
	return func(n document.Node, _ int) bool {
		v, ok := n.Get(name).AsString()
		return ok && v == want
	}
}

// dateAtMost matches transactions where either governing date field is
// present, parseable and not after the bound. A transaction with neither
// field fails the filter.
func dateAtMost(bound time.Time) func(document.Node) bool {
	return func(t document.Node) bool {
		if posted, ok := t.Get("postingDateTime").AsTime(); ok && !posted.After(bound) {
			return true
		}
		executed, ok := t.Get("executionDateTime").AsTime()
		return ok && !executed.After(bound)
	}
}

func dateAtLeast(bound time.Time) func(document.Node) bool {
	return func(t document.Node) bool {
		if posted, ok := t.Get("postingDateTime").AsTime(); ok && !posted.Before(bound) {
			return true
		}
		executed, ok := t.Get("executionDateTime").AsTime()
		return ok && !executed.Before(bound)
	}
}

func amountAtLeast(bound decimal.Decimal) func(document.Node) bool {
	return func(t document.Node) bool {
		amount, ok := t.Get("amount").AsDecimal()
		return ok && amount.GreaterThanOrEqual(bound)
	}
}

func amountAtMost(bound decimal.Decimal) func(document.Node) bool {
	return func(t document.Node) bool {
		amount, ok := t.Get("amount").AsDecimal()
		return ok && amount.LessThanOrEqual(bound)
	}
}

// matchesText does a case-insensitive substring match against description or
// reference. A missing field fails its side only; the other may still match.
func matchesText(text string) func(document.Node) bool {
	needle := strings.ToLower(text)
	return func(t document.Node) bool {
		if description, ok := t.Get("description").AsString(); ok && strings.Contains(strings.ToLower(description), needle) {
			return true
		}
		reference, ok := t.Get("reference").AsString()
		return ok && strings.Contains(strings.ToLower(reference), needle)
	}
}

// sortAccounts orders ascending by displayName then accountId, falling back
// to empty strings so partially populated records still order
// deterministically.
func sortAccounts(accounts []document.Node) {
	slices.SortStableFunc(accounts, func(a, b document.Node) int {
		if c := strings.Compare(a.Get("displayName").StringOr(""), b.Get("displayName").StringOr("")); c != 0 {
			return c
		}
		return strings.Compare(a.Get("accountId").StringOr(""), b.Get("accountId").StringOr(""))
	})
}

// sortTransactions orders most-recent-first: descending postingDateTime then
// descending executionDateTime, with empty-string fallbacks. RFC3339 strings
// order correctly under plain string comparison.
func sortTransactions(transactions []document.Node) {
	slices.SortStableFunc(transactions, func(a, b document.Node) int {
		if c := strings.Compare(b.Get("postingDateTime").StringOr(""), a.Get("postingDateTime").StringOr("")); c != 0 {
			return c
		}
		return strings.Compare(b.Get("executionDateTime").StringOr(""), a.Get("executionDateTime").StringOr(""))
	})
}
