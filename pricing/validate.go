package pricing

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
)

var validate = newValidator()

// Amount is the wire shape of a two-currency fee on admin requests.
type Amount struct {
	USD decimal.Decimal `json:"usd" validate:"usd_step"`
	LBP decimal.Decimal `json:"lbp" validate:"lbp_step"`
}

func (a Amount) toModel() model.CurrencyAmount {
	return model.CurrencyAmount{USD: a.USD, LBP: a.LBP}
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names so field errors line up with the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			// Scientific form keeps the string short whatever the exponent.
			return d.Coefficient().String() + "e" + strconv.Itoa(int(d.Exponent()))
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "usd_step", feeOf(model.CheckUSD))
	mustRegister(v, "lbp_step", feeOf(model.CheckLBP))
	mustRegister(v, "package_type", func(fl validator.FieldLevel) bool {
		return model.PackageType(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

// feeOf accepts decimals that check reports no problem for.
func feeOf(check func(decimal.Decimal) string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return check(d) == ""
	}
}

func validateRequest(r any) error {
	if err := validate.Struct(r); err != nil {
		return apierr.FromValidator(err)
	}
	return nil
}

// optional maps an empty query or header value to nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// expectedVersion maps the zero value of an optional version parameter to nil.
func expectedVersion(v int32) *int32 {
	if v == 0 {
		return nil
	}
	return &v
}
