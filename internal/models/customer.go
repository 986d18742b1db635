package models

// Customer variant discriminators carried by the seed document's
// customerUType field. Any other value means the customer cannot be resolved.
const (
	CustomerUTypePerson       = "person"
	CustomerUTypeOrganisation = "organisation"
)

// Customer is the generic customer record returned by login-id lookups.
// Variant lookups by customer id resolve into Person or Organisation instead.
type Customer struct {
	CustomerID    string
	LoginID       string
	CustomerUType string

	Person       *Person
	Organisation *Organisation
}

type Person struct {
	CustomerID            string
	LastUpdateTime        string
	FirstName             string
	LastName              string
	MiddleNames           []string
	Prefix                string
	Suffix                string
	OccupationCode        string
	OccupationCodeVersion string
}

type Organisation struct {
	CustomerID        string
	LastUpdateTime    string
	AgentFirstName    string
	AgentLastName     string
	AgentRole         string
	BusinessName      string
	LegalName         string
	ShortName         string
	ABN               string
	ACN               string
	OrganisationType  string
	RegisteredCountry string
	EstablishmentDate string
}

type GetCustomerResponse struct {
	CustomerUType string                `json:"customerUType,omitempty"`
	Person        *PersonResponse       `json:"person,omitempty"`
	Organisation  *OrganisationResponse `json:"organisation,omitempty"`
}

type PersonResponse struct {
	CustomerID            string   `json:"customerId"`
	LastUpdateTime        string   `json:"lastUpdateTime,omitempty"`
	FirstName             string   `json:"firstName,omitempty"`
	LastName              string   `json:"lastName,omitempty"`
	MiddleNames           []string `json:"middleNames,omitempty"`
	Prefix                string   `json:"prefix,omitempty"`
	Suffix                string   `json:"suffix,omitempty"`
	OccupationCode        string   `json:"occupationCode,omitempty"`
	OccupationCodeVersion string   `json:"occupationCodeVersion,omitempty"`
}

type OrganisationResponse struct {
	CustomerID        string `json:"customerId"`
	LastUpdateTime    string `json:"lastUpdateTime,omitempty"`
	AgentFirstName    string `json:"agentFirstName,omitempty"`
	AgentLastName     string `json:"agentLastName,omitempty"`
	AgentRole         string `json:"agentRole,omitempty"`
	BusinessName      string `json:"businessName,omitempty"`
	LegalName         string `json:"legalName,omitempty"`
	ShortName         string `json:"shortName,omitempty"`
	ABN               string `json:"abn,omitempty"`
	ACN               string `json:"acn,omitempty"`
	OrganisationType  string `json:"organisationType,omitempty"`
	RegisteredCountry string `json:"registeredCountry,omitempty"`
	EstablishmentDate string `json:"establishmentDate,omitempty"`
}

// CustomerLoginResponse is the shape served to the login flow: the variant
// tag without the variant body.
type CustomerLoginResponse struct {
	CustomerID    string `json:"customerId"`
	LoginID       string `json:"loginId,omitempty"`
	CustomerUType string `json:"customerUType,omitempty"`
}

func (c Customer) ToLoginResponse() CustomerLoginResponse {
	return CustomerLoginResponse{
		CustomerID:    c.CustomerID,
		LoginID:       c.LoginID,
		CustomerUType: c.CustomerUType,
	}
}

func (c Customer) ToModelResponse() GetCustomerResponse {
	res := GetCustomerResponse{
		CustomerUType: c.CustomerUType,
	}

	if c.Person != nil {
		p := c.Person.ToModelResponse()
		res.Person = &p
	}
	if c.Organisation != nil {
		o := c.Organisation.ToModelResponse()
		res.Organisation = &o
	}

	return res
}

func (p Person) ToModelResponse() PersonResponse {
	return PersonResponse{
		CustomerID:            p.CustomerID,
		LastUpdateTime:        p.LastUpdateTime,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		MiddleNames:           p.MiddleNames,
		Prefix:                p.Prefix,
		Suffix:                p.Suffix,
		OccupationCode:        p.OccupationCode,
		OccupationCodeVersion: p.OccupationCodeVersion,
	}
}

func (o Organisation) ToModelResponse() OrganisationResponse {
	return OrganisationResponse{
		CustomerID:        o.CustomerID,
		LastUpdateTime:    o.LastUpdateTime,
		AgentFirstName:    o.AgentFirstName,
		AgentLastName:     o.AgentLastName,
		AgentRole:         o.AgentRole,
		BusinessName:      o.BusinessName,
		LegalName:         o.LegalName,
		ShortName:         o.ShortName,
		ABN:               o.ABN,
		ACN:               o.ACN,
		OrganisationType:  o.OrganisationType,
		RegisteredCountry: o.RegisteredCountry,
		EstablishmentDate: o.EstablishmentDate,
	}
}
