package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Shape rules from the ebInterface schema. The date check is purely
// lexical; calendar validity is the schema consumer's concern.
var (
	bicPattern       = regexp.MustCompile(`^[0-9A-Za-z]{8}([0-9A-Za-z]{3})?$`)
	datePattern      = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	maskedPANPattern = regexp.MustCompile(`^[0-9]{0,6}\*[0-9]{0,4}$`)
)

// validateBIC checks the 8-or-11 alphanumeric BIC shape shared by SEPA
// direct debits and beneficiary accounts.
func validateBIC(bic string) error {
	if !bicPattern.MatchString(bic) {
		return errors.Errorf("BIC %q doesn't match %s", bic, bicPattern)
	}
	return nil
}

func validateDate(field, value string) error {
	if !datePattern.MatchString(value) {
		return errors.Errorf("%s %q doesn't match %s", field, value, datePattern)
	}
	return nil
}

// validateMaxLength rejects values longer than max characters. Lengths are
// counted in characters, not bytes.
func validateMaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return errors.Errorf("%s %q is too long, at most %d characters allowed", field, value, max)
	}
	return nil
}

func validateExactLength(field, value string, length int) error {
	if utf8.RuneCountInString(value) != length {
		return errors.Errorf("%s %q is not %d characters long", field, value, length)
	}
	return nil
}
