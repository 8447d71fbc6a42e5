package http

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"courier/internal/pkg/errs"
)

// errNotAdmin answers every admin-only route the same way.
var errNotAdmin = errs.NewNotAuthorizedError("admin area")

// parseBillNo parses a positive bill number from a path parameter.
func parseBillNo(raw string) (int64, error) {
	billNo, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if billNo <= 0 {
		return 0, fmt.Errorf("bill number %d is not positive", billNo)
	}
	return billNo, nil
}

// parseDecimals parses a fixed set of decimal strings, failing on the
// first one that does not parse.
func parseDecimals(raw ...string) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(raw))
	for i, s := range raw {
		value, err := decimal.NewFromString(s)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}
