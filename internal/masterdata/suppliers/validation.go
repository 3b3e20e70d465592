package suppliers

import (
	"net/http"
	"strconv"

	"github.com/odyssey-erp/supplierdesk/internal/records"
)

func draftFromForm(r *http.Request) records.SupplierDraft {
	return records.SupplierDraft{
		Name:          r.PostFormValue("name"),
		TaxID:         r.PostFormValue("taxId"),
		ContactNumber: r.PostFormValue("contactNumber"),
		Address:       r.PostFormValue("address"),
		Email:         r.PostFormValue("email"),
	}
}

// policyFrom reads the refreshSubmittedAt flag; anything unparsable keeps the
// original submission time.
func policyFrom(raw string) records.UpdatePolicy {
	if ok, _ := strconv.ParseBool(raw); ok {
		return records.RefreshSubmittedAt
	}
	return records.KeepSubmittedAt
}
