package brx

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address looks deliverable.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone accepts 8 to 11 digits, with or without mask characters.
func ValidPhone(phone string) bool {
	n := len(onlyDigits(phone))
	return n >= 8 && n <= 11
}

// ValidCNPJ verifies the two mod-11 check digits of a CNPJ. A run of 14
// identical digits is rejected up front; the registry never issues those.
func ValidCNPJ(cnpj string) bool {
	digits := onlyDigits(cnpj)
	if len(digits) != 14 {
		return false
	}
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(digits, 12, 5) != int(digits[12]-'0') {
		return false
	}
	return checkDigit(digits, 13, 6) == int(digits[13]-'0')
}

// checkDigit computes a mod-11 check digit over digits[:length] with weights
// cycling downward from startWeight, resetting to 9 after reaching 2.
func checkDigit(digits string, length, startWeight int) int {
	sum := 0
	weight := startWeight
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * weight
		if weight == 2 {
			weight = 9
		} else {
			weight--
		}
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
