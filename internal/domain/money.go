package domain

import "strconv"

// Money is an amount in the smallest currency unit (Indonesian rupiah).
// All monetary arithmetic stays in int64 space; floats never touch totals.
type Money = int64

// FormatIDR renders an amount with thousand separators, e.g. 45000 -> "45.000"
func FormatIDR(amount Money) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
