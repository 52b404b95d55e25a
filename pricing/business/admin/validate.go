package admin

import (
	"logistics.app/pricing/apierr"
	"logistics.app/pricing/model"
)

// checkAmount copies the amount violations into fields under prefix.
func checkAmount(fields apierr.FieldErrors, prefix string, amount model.CurrencyAmount) {
	for k, msg := range amount.Violations() {
		fields[prefix+"."+k] = msg
	}
}

func checkActor(fields apierr.FieldErrors, changedBy string) {
	if changedBy == "" {
		fields["changedBy"] = "is required"
	}
}

func checkVersion(fields apierr.FieldErrors, expected *int32) {
	if expected != nil && *expected < 1 {
		fields["expectedVersion"] = "must be positive"
	}
}

func validationResult(message string, fields apierr.FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return apierr.Validation(message, fields)
}

// staleVersion reports a conflict when the caller saw a different version.
func staleVersion(entity string, expected *int32, actual int32) error {
	if expected != nil && *expected != actual {
		return apierr.StaleVersion(entity, *expected, actual)
	}
	return nil
}
