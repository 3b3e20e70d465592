package records

import (
	"strconv"
	"time"
)

// ID identifies a stored record. IDs increase monotonically and are never reused
// within a store.
type ID int64

// Entry is a stored record together with its identity and its current position.
type Entry[R any] struct {
	ID       ID  `json:"id"`
	Position int `json:"position"`
	Record   R   `json:"record"`
}

// UpdatePolicy selects how creation timestamps behave on update.
type UpdatePolicy int

const (
	// KeepSubmittedAt preserves the timestamp assigned at creation.
	KeepSubmittedAt UpdatePolicy = iota
	// RefreshSubmittedAt re-stamps the record with the store clock.
	RefreshSubmittedAt
)

// Schema describes how drafts of type D become records of type R.
type Schema[D, R any] struct {
	Name string
	// Build validates a draft and converts it into a record.
	Build func(D) (R, error)
	// Stamp assigns the creation timestamp. Nil when the schema has none.
	Stamp func(R, time.Time) R
	// Carry copies immutable fields from the stored record onto its replacement.
	Carry func(prev, next R) R
	// Draft turns a stored record back into form input for edit-resume.
	Draft func(R) D
}

// SupplierSchema stamps SubmittedAt on creation and keeps it on update.
func SupplierSchema() Schema[SupplierDraft, Supplier] {
	const name = "supplier"
	return Schema[SupplierDraft, Supplier]{
		Name: name,
		Build: func(d SupplierDraft) (Supplier, error) {
			if err := checkDraft(name, d); err != nil {
				return Supplier{}, err
			}
			return Supplier{
				Name:          d.Name,
				TaxID:         d.TaxID,
				ContactNumber: d.ContactNumber,
				Address:       d.Address,
				Email:         d.Email,
			}, nil
		},
		Stamp: func(s Supplier, at time.Time) Supplier {
			s.SubmittedAt = at
			return s
		},
		Carry: func(prev, next Supplier) Supplier {
			next.SubmittedAt = prev.SubmittedAt
			return next
		},
		Draft: func(s Supplier) SupplierDraft {
			return SupplierDraft{
				Name:          s.Name,
				TaxID:         s.TaxID,
				ContactNumber: s.ContactNumber,
				Address:       s.Address,
				Email:         s.Email,
			}
		},
	}
}

// PurchaseSchema converts purchase drafts; purchases carry no creation stamp.
func PurchaseSchema() Schema[PurchaseDraft, PurchaseEntry] {
	const name = "purchase"
	return Schema[PurchaseDraft, PurchaseEntry]{
		Name: name,
		Build: func(d PurchaseDraft) (PurchaseEntry, error) {
			if err := checkDraft(name, d); err != nil {
				return PurchaseEntry{}, err
			}
			qty, err := parseQuantity(name, "quantity", d.Quantity)
			if err != nil {
				return PurchaseEntry{}, err
			}
			amount, err := parseAmount(name, "amount", d.Amount)
			if err != nil {
				return PurchaseEntry{}, err
			}
			return PurchaseEntry{
				PartyName: d.PartyName,
				Date:      d.Date,
				Item:      d.Item,
				Quantity:  qty,
				Amount:    amount,
			}, nil
		},
		Draft: func(p PurchaseEntry) PurchaseDraft {
			return PurchaseDraft{
				PartyName: p.PartyName,
				Date:      p.Date,
				Item:      p.Item,
				Quantity:  strconv.FormatInt(p.Quantity, 10),
				Amount:    p.Amount.String(),
			}
		},
	}
}

// PaymentSchema converts payment drafts.
func PaymentSchema() Schema[PaymentDraft, PaymentDue] {
	const name = "payment"
	return Schema[PaymentDraft, PaymentDue]{
		Name: name,
		Build: func(d PaymentDraft) (PaymentDue, error) {
			if err := checkDraft(name, d); err != nil {
				return PaymentDue{}, err
			}
			amount, err := parseAmount(name, "amount", d.Amount)
			if err != nil {
				return PaymentDue{}, err
			}
			return PaymentDue{
				PartyName: d.PartyName,
				DueDate:   d.DueDate,
				Amount:    amount,
				Status:    PaymentStatus(d.Status),
			}, nil
		},
		Draft: func(p PaymentDue) PaymentDraft {
			return PaymentDraft{
				PartyName: p.PartyName,
				DueDate:   p.DueDate,
				Amount:    p.Amount.String(),
				Status:    string(p.Status),
			}
		},
	}
}
