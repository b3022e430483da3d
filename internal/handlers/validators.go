package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs:
// txkind (a known transaction kind, any case) and decimal_gte0.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Validate decimals through their string form.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		// Report fields by their JSON or form name.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
		_ = v.RegisterValidation("txkind", validateTxKind)
		_ = v.RegisterValidation("decimal_gte0", validateDecimalGTE0)
	})
}

func validateTxKind(fl validator.FieldLevel) bool {
	kind := domain.TransactionKind(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
	return kind.IsValid()
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}
