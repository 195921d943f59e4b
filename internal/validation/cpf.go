// Package validation holds the pure field formatting and checking rules applied
// to the booking form before anything is sent to the server.
package validation

import "strings"

const cpfLength = 11

// DigitsOnly strips every character that is not an ASCII digit.
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF renders raw as "000.000.000-00", progressively for partial input.
// Digits beyond the eleventh are dropped, so the result never exceeds 14
// characters.
func FormatCPF(raw string) string {
	d := DigitsOnly(raw)
	if len(d) > cpfLength {
		d = d[:cpfLength]
	}

	switch n := len(d); {
	case n <= 3:
		return d
	case n <= 6:
		return d[:3] + "." + d[3:]
	case n <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// ValidateCPF reports whether raw holds a CPF whose two check digits match.
// Separators are ignored; repeated-digit sequences such as "111.111.111-11"
// are rejected even though their check digits are consistent.
func ValidateCPF(raw string) bool {
	d := DigitsOnly(raw)
	if len(d) != cpfLength || strings.Count(d, d[:1]) == cpfLength {
		return false
	}

	if checkDigit(d[:9], 10) != int(d[9]-'0') {
		return false
	}
	return checkDigit(d[:10], 11) == int(d[10]-'0')
}

// checkDigit weights digits with descending factors starting at first and
// reduces the sum modulo 11, mapping 10 to 0.
func checkDigit(digits string, first int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (first - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest
}
