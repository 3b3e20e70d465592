package records

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enumerates settlement states of a payment due.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pending"
	StatusPaid    PaymentStatus = "Paid"
)

// Supplier is a registered supplier. SubmittedAt is assigned by the store.
type Supplier struct {
	Name          string    `json:"name"`
	TaxID         string    `json:"taxId"`
	ContactNumber string    `json:"contactNumber"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// PurchaseEntry is one purchase booked against a supplier.
type PurchaseEntry struct {
	PartyName string          `json:"owningPartyName"`
	Date      string          `json:"date"`
	Item      string          `json:"itemName"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// PaymentDue is an amount owed to a supplier on a due date.
type PaymentDue struct {
	PartyName string          `json:"owningPartyName"`
	DueDate   string          `json:"dueDate"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
}

// SupplierDraft carries unvalidated supplier form input.
type SupplierDraft struct {
	Name          string `json:"name" validate:"required"`
	TaxID         string `json:"taxId" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Email         string `json:"email" validate:"required"`
}

// PurchaseDraft carries unvalidated purchase form input.
type PurchaseDraft struct {
	PartyName string `json:"owningPartyName" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Item      string `json:"itemName" validate:"required"`
	Quantity  string `json:"quantity" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// PaymentDraft carries unvalidated payment form input.
type PaymentDraft struct {
	PartyName string `json:"owningPartyName" validate:"required"`
	DueDate   string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Amount    string `json:"amount" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Pending Paid"`
}
