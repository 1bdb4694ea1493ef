package schemavalidator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var decimalRe = regexp.MustCompile(`^[+-]?[0-9]+$`)

// ParseInt64 reads a base 10 integer. Leading zeros do not switch the base,
// and hex, octal or binary prefixes are rejected.
func ParseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !decimalRe.MatchString(s) {
		return 0, fmt.Errorf("%q is not a decimal integer", s)
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	return cast.ToInt64E(sign + s)
}

// ParseInt is ParseInt64 for int values.
func ParseInt(s string) (int, error) {
	n, err := ParseInt64(s)
	return int(n), err
}
