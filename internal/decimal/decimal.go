package decimal

import (
	"fmt"
	"strings"
)

// Add returns the exact sum of a and b.
//
// The result is grouped with Separator if and only if a or b contains one.
// Grouping placement in the operands is not validated; see ValidGrouping.
func Add(a, b string) (string, error) {
	cleanA, cleanB, grouped, err := Normalize(a, b)
	if err != nil {
		return "", err
	}
	sum := AddDigits(cleanA, cleanB)
	if grouped {
		return Group(sum), nil
	}
	return sum, nil
}

// Normalize strips separators from both operands and reports whether either
// of them was grouped.
func Normalize(a, b string) (cleanA, cleanB string, grouped bool, err error) {
	sep := string(Separator)
	grouped = strings.Contains(a, sep) || strings.Contains(b, sep)

	cleanA = strings.ReplaceAll(a, sep, "")
	cleanB = strings.ReplaceAll(b, sep, "")
	if err := validDigits(cleanA); err != nil {
		return "", "", false, fmt.Errorf("operand a %q: %w", a, err)
	}
	if err := validDigits(cleanB); err != nil {
		return "", "", false, fmt.Errorf("operand b %q: %w", b, err)
	}
	return cleanA, cleanB, grouped, nil
}

func validDigits(s string) error {
	if s == "" {
		return ErrInvalidDigitSequence
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidDigitSequence
		}
	}
	return nil
}

// AddDigits adds two separator-free digit sequences. Both must already be
// valid; Normalize guarantees that.
//
// The loop runs max(len(a), len(b)) times, plus once more when a carry
// escapes past both operands.
func AddDigits(a, b string) string {
	i, j := len(a)-1, len(b)-1
	out := make([]byte, max(len(a), len(b))+1)
	k := len(out)
	carry := 0
	for i >= 0 || j >= 0 || carry != 0 {
		d1, d2 := 0, 0
		if i >= 0 {
			d1 = int(a[i] - '0')
			i--
		}
		if j >= 0 {
			d2 = int(b[j] - '0')
			j--
		}
		sum := d1 + d2 + carry
		k--
		out[k] = byte('0' + sum%10)
		carry = sum / 10
	}
	return string(out[k:])
}

// Group inserts Separator into digits every three places counted from the
// least-significant end. It never places a separator at index 0.
func Group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var sb strings.Builder
	sb.Grow(n + (n-1)/3)
	head := n % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(digits[:head])
	for i := head; i < n; i += 3 {
		sb.WriteByte(Separator)
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// ValidGrouping reports whether s is a well-formed grouped or ungrouped
// numeral: a leading run of one to three digits followed by zero or more
// separator-prefixed runs of exactly three digits. Strings without a
// separator only need to be non-empty digit sequences.
func ValidGrouping(s string) bool {
	groups := strings.Split(s, string(Separator))
	if len(groups) == 1 {
		return validDigits(s) == nil
	}
	if n := len(groups[0]); n < 1 || n > 3 || validDigits(groups[0]) != nil {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || validDigits(g) != nil {
			return false
		}
	}
	return true
}
