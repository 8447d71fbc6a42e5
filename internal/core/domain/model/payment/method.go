package payment

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrMethodIsNotConstructed = errors.New("Method must be created via a NewMethod constructor")

// cardDigits is the exact card number length accepted after stripping
// every non-digit character from the raw input.
const cardDigits = 16

// upiPattern matches a localpart@domain shaped UPI identifier.
var upiPattern = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+$`)

var nonDigits = regexp.MustCompile(`\D`)

// Method is a validated payment instrument. Constructing a Method runs
// the mode-specific validation, so a Method that exists is one that
// passed it; the atomic completion procedure never re-validates.
//
// Card and UPI details are validated but deliberately not retained:
// the engine stores only the chosen mode, never instrument data.
type Method struct {
	mode Mode

	guard guard.ConstructorGuard
}

// NewCardMethod validates card details against the service's local
// calendar and returns a Method for CreditCard or DebitCard.
//
// Validation rules: the card number must contain exactly 16 digits
// after stripping non-digits, the expiry (MM/YY or MM/YYYY) must not
// precede the current month in the supplied local time, and the CVV
// must be 3 or 4 digits.
func NewCardMethod(mode Mode, cardNumber, expiry, cvv string, now time.Time) (Method, error) {
	if !mode.isCard() {
		return Method{}, errs.NewValueIsInvalidErrorWithCause("payment mode is invalid",
			fmt.Errorf("%s does not carry card details", mode))
	}

	digits := nonDigits.ReplaceAllString(cardNumber, "")
	if len(digits) != cardDigits {
		return Method{}, errs.NewValueIsInvalidErrorWithCause("card number is invalid",
			fmt.Errorf("card number must contain exactly %d digits", cardDigits))
	}

	if err := validateExpiry(expiry, now); err != nil {
		return Method{}, err
	}

	if len(cvv) < 3 || len(cvv) > 4 || nonDigits.MatchString(cvv) {
		return Method{}, errs.NewValueIsInvalidError("cvv is invalid")
	}

	return Method{mode: mode, guard: guard.NewConstructorGuard()}, nil
}

// NewUPIMethod validates the UPI identifier and returns a UPI Method.
func NewUPIMethod(upiID string) (Method, error) {
	if !upiPattern.MatchString(strings.TrimSpace(upiID)) {
		return Method{}, errs.NewValueIsInvalidError("upi id is invalid")
	}
	return Method{mode: UPI, guard: guard.NewConstructorGuard()}, nil
}

// NewSimpleMethod returns a Method for the modes that carry no extra
// fields: NetBanking and CashOnDelivery.
func NewSimpleMethod(mode Mode) (Method, error) {
	if mode != NetBanking && mode != CashOnDelivery {
		return Method{}, errs.NewValueIsInvalidErrorWithCause("payment mode is invalid",
			fmt.Errorf("%s requires instrument details", mode))
	}
	return Method{mode: mode, guard: guard.NewConstructorGuard()}, nil
}

// Mode returns the payment mode this method settles in.
func (m Method) Mode() Mode { return m.mode }

// Validate ensures the Method was created via a constructor.
func (m Method) Validate() error {
	return m.guard.Validate(ErrMethodIsNotConstructed)
}

// validateExpiry accepts MM/YY or MM/YYYY and requires the expiry month
// to be the current month or later in the supplied local time. A card
// expiring this month is still valid (it expires at month end).
func validateExpiry(expiry string, now time.Time) error {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return errs.NewValueIsInvalidError("card expiry is invalid")
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return errs.NewValueIsInvalidError("card expiry is invalid")
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return errs.NewValueIsInvalidError("card expiry is invalid")
	}
	if year < 100 {
		year += 2000
	}

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return errs.NewValueIsInvalidErrorWithCause("card expiry is invalid",
			errors.New("card has expired"))
	}
	return nil
}
