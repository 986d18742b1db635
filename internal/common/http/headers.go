package http

import "strings"

// Identity and consent membership arrive as headers from the authorization
// collaborator sitting in front of this API. Consent enforcement proper
// happens there; only the resolved values enter here.
const (
	HeaderCustomerID        = "X-Customer-Id"
	HeaderAllowedAccountIDs = "X-Allowed-Account-Ids"
)

// ParseAllowedAccountIDs splits the consented account id header. Blank
// entries are dropped; an empty header means no account is visible.
func ParseAllowedAccountIDs(header string) []string {
	if header == "" {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(header, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
