package inventory

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
)

// Source columns, in file order.
const (
	ColumnName     = "product_name"
	ColumnPrice    = "product_price"
	ColumnQuantity = "product_quantity"
	ColumnDate     = "date_updated"
)

// DateLayout is month/day/4-digit-year; leading zeros are optional when parsing.
const DateLayout = "1/2/2006"

// priceAmount finds the first decimal amount in a cell. Thousands separators are
// allowed inside the integer part.
var priceAmount = regexp.MustCompile(`\d[\d,]*(?:\.\d*)?|\.\d+`)

var (
	errNoAmount  = errors.New("no amount found")
	errNegative  = errors.New("must not be negative")
	errEmptyName = errors.New("must not be empty")
	errTooLarge  = errors.New("amount too large")

	hundred  = decimal.NewFromInt(100)
	maxPrice = decimal.NewFromInt(math.MaxInt64).Div(hundred).Truncate(0)
)

// ParseRow converts one source row into a product without an id.
// The first malformed field is reported as a *ParseError.
func ParseRow(row map[string]string) (models.Product, error) {
	name := row[ColumnName]
	if name == "" {
		return models.Product{}, &ParseError{Field: FieldName, Value: name, Err: errEmptyName}
	}

	price, err := ParsePrice(row[ColumnPrice])
	if err != nil {
		return models.Product{}, err
	}

	quantity, err := ParseQuantity(row[ColumnQuantity])
	if err != nil {
		return models.Product{}, err
	}

	updated, err := ParseDate(row[ColumnDate])
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		Name:       name,
		Quantity:   quantity,
		PriceCents: price,
		UpdatedOn:  updated,
	}, nil
}

// ParsePrice extracts the first decimal amount from s and returns it in cents.
// Currency symbols and surrounding text are ignored ("$12.50 each" is 1250).
// Digits beyond the second fractional place are truncated ("3.999" is 399).
func ParsePrice(s string) (int64, error) {
	match := priceAmount.FindString(s)
	if match == "" {
		return 0, &ParseError{Field: FieldPrice, Value: s, Err: errNoAmount}
	}

	match = strings.ReplaceAll(match, ",", "")
	match = strings.TrimSuffix(match, ".")
	if strings.HasPrefix(match, ".") {
		match = "0" + match
	}

	amount, err := decimal.NewFromString(match)
	if err != nil {
		return 0, &ParseError{Field: FieldPrice, Value: s, Err: err}
	}
	if amount.GreaterThan(maxPrice) {
		return 0, &ParseError{Field: FieldPrice, Value: s, Err: errTooLarge}
	}

	return amount.Truncate(2).Mul(hundred).IntPart(), nil
}

// FormatPrice renders cents as "$x.xx".
func FormatPrice(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// ParseQuantity parses a non-negative base-10 integer.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Field: FieldQuantity, Value: s, Err: err}
	}
	if q < 0 {
		return 0, &ParseError{Field: FieldQuantity, Value: s, Err: errNegative}
	}
	return q, nil
}

// ParseDate parses an M/D/YYYY date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ParseError{Field: FieldDate, Value: s, Err: err}
	}
	return models.DateOf(t), nil
}

// FormatDate renders a date as M/D/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
