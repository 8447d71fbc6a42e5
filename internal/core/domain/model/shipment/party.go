package shipment

import (
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
	"errors"
)

var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party is the contact record of a shipment's sender or receiver.
// All fields are immutable shipment facts captured at creation time;
// the lifecycle engine never mutates them afterwards.
type Party struct {
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewParty creates a Party, requiring every contact field.
// The notification dispatcher relies on email and phone being present,
// and the initial tracking event uses the sender's address as location.
func NewParty(name, email, phone, address string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return Party{}, errs.NewValueIsRequiredError("email")
	}
	if phone == "" {
		return Party{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("address")
	}

	return Party{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Name returns the party's display name.
func (p Party) Name() string { return p.name }

// Email returns the party's notification email address.
func (p Party) Email() string { return p.email }

// Phone returns the party's notification phone number.
func (p Party) Phone() string { return p.phone }

// Address returns the party's postal address.
func (p Party) Address() string { return p.address }

// Validate ensures the Party was constructed via NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}
