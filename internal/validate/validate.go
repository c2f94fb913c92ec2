package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reNick  = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,50}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 ()-]{5,20}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reGend  = regexp.MustCompile(`^(M|F|U)$`)
	rePrice = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{1,2})?$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Nickname(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reNick.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Name validates a displayable name (person, category, color...).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// ID validates a resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Gender validates the product gender enum.
func Gender(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reGend.MatchString(s)
}

// Price validates a decimal with at most two places. The schema does not
// constrain the sign; negative prices are flagged upstream, not rejected.
func Price(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePrice.MatchString(s)
}

// Qty parses a line quantity. Values below 1 are invalid, never clamped;
// the caller must fail the write.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Pairs parses a stock count (zero allowed).
func Pairs(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Password enforces the staff password policy for login checks.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
