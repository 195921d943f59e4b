package validation

import (
	"errors"
	"strings"
)

const (
	dateMask = "99/99/9999"
	timeMask = "99:99"
)

// ErrDateShape is returned when a date does not split into DD, MM and YYYY parts.
var ErrDateShape = errors.New("date must be formatted as DD/MM/YYYY")

// MaskDate shapes typed input into DD/MM/YYYY as digits arrive.
func MaskDate(raw string) string {
	return applyMask(dateMask, raw)
}

// MaskTime shapes typed input into HH:MM as digits arrive.
func MaskTime(raw string) string {
	return applyMask(timeMask, raw)
}

// applyMask fills the '9' slots of mask with the digits of raw. Literal
// separators are only emitted when a digit follows them, and input beyond the
// mask is discarded.
func applyMask(mask, raw string) string {
	digits := DigitsOnly(raw)
	var b strings.Builder
	b.Grow(len(mask))

	pending := ""
	for i := 0; i < len(mask) && len(digits) > 0; i++ {
		if mask[i] != '9' {
			pending += string(mask[i])
			continue
		}
		b.WriteString(pending)
		pending = ""
		b.WriteByte(digits[0])
		digits = digits[1:]
	}
	return b.String()
}

// SplitDate splits a DD/MM/YYYY date. ok is false unless day and month have
// exactly two characters and year exactly four. Calendar validity is not
// checked: "32/13/9999" splits fine.
func SplitDate(date string) (day, month, year string, ok bool) {
	parts := strings.Split(date, "/")
	if len(parts) < 3 {
		return "", "", "", false
	}
	day, month, year = parts[0], parts[1], parts[2]
	if len(day) != 2 || len(month) != 2 || len(year) != 4 {
		return "", "", "", false
	}
	return day, month, year, true
}

// ToStorageDate converts a DD/MM/YYYY date into the YYYY-MM-DD form stored by
// the server.
func ToStorageDate(date string) (string, error) {
	day, month, year, ok := SplitDate(date)
	if !ok {
		return "", ErrDateShape
	}
	return year + "-" + month + "-" + day, nil
}
