// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID                uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email             string    // The user's email, used as the login identifier.
	Name              string    // The user's display name or real name.
	PasswordHash      string    // bcrypt hash of the user's password. Never leaves the service layer.
	Role              Role      // The user's role, embedded in issued session tokens.
	PaymentCustomerID *string   // Identifier of the customer record at the payment processor, assigned once.
	CreatedAt         time.Time // Timestamp of when this user account was created.
	UpdatedAt         time.Time // Timestamp of the last modification to this user's data.
}

// HasPaymentCustomer reports whether a processor customer has been provisioned for the user.
func (u *User) HasPaymentCustomer() bool {
	return u.PaymentCustomerID != nil && *u.PaymentCustomerID != ""
}

// PaymentCustomer returns the processor customer id, or "" when none was provisioned.
func (u *User) PaymentCustomer() string {
	if u.PaymentCustomerID == nil {
		return ""
	}

	return *u.PaymentCustomerID
}
