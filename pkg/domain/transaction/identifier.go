package transaction

import "github.com/amirasaad/backoffice/pkg/utils"

const (
	cuitLength = 11
	cbuLength  = 22
)

// IdentifierForms returns every normalized form an identifier can be
// compared by. A CUIT/CUIL also yields the DNI embedded in digits 3-10.
func IdentifierForms(id string) []string {
	digits := utils.OnlyDigits(id)
	switch len(digits) {
	case 0:
		return nil
	case cuitLength:
		return []string{digits, trimLeadingZeros(digits[2:10])}
	case cbuLength:
		return []string{digits}
	default:
		return []string{trimLeadingZeros(digits)}
	}
}

// IdentifiersMatch reports whether any normalized form of a equals any form of b.
func IdentifiersMatch(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x != "" && x == y {
				return true
			}
		}
	}
	return false
}

// DNIs are written with and without a leading zero.
func trimLeadingZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
