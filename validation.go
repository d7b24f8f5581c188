package omnifolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
)

// validate holds the rules used by record decoders.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations registers the omnifolio rules in v:
//
//	currency   a known ISO-4217 currency code
//	txkind     a TransactionKind
//	eventkind  an EventKind
func RegisterValidations(v *validator.Validate) error {
	return errors.Join(
		v.RegisterValidation("currency", isCurrency),
		v.RegisterValidation("txkind", isTransactionKind),
		v.RegisterValidation("eventkind", isEventKind),
	)
}

// isCurrency only accepts upper case codes: money.GetCurrency ignores the case.
func isCurrency(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	c := money.GetCurrency(code)
	return c != nil && c.Code == code
}

func isTransactionKind(fl validator.FieldLevel) bool {
	switch TransactionKind(fl.Field().String()) {
	case Buy, Sell:
		return true
	}
	return false
}

func isEventKind(fl validator.FieldLevel) bool {
	return EventKind(fl.Field().String()) == ExDistribution
}

// ValidateCurrency checks that code is a known ISO-4217 currency code.
func ValidateCurrency(code string) error { return check(code, "currency") }

// currencyRule returns the rule for a currency restricted to the supported ones.
// An empty list accepts any known currency.
func currencyRule(supported []string) string {
	if len(supported) == 0 {
		return "currency"
	}
	return "currency,oneof=" + strings.Join(supported, " ")
}

// check validates value against the rule and turns the first failure into a readable error.
func check(value string, rule string) error {
	err := validate.Var(value, rule)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch fe := verrs[0]; fe.Tag() {
	case "currency":
		return fmt.Errorf("%q is not an ISO-4217 currency code", value)
	case "txkind":
		return fmt.Errorf("%q is not a transaction type, want %q or %q", value, Buy, Sell)
	case "eventkind":
		return fmt.Errorf("%q is not an event type, want %q", value, ExDistribution)
	case "oneof":
		return fmt.Errorf("%q is not supported, want one of [%s]", value, fe.Param())
	default:
		return fmt.Errorf("%q breaks rule %q", value, fe.Tag())
	}
}
