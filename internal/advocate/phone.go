package advocate

import "strings"

// FormatPhone renders a North American number as "+1 (AAA) BBB-CCCC". Anything that
// does not reduce to 10 digits, or 11 digits with a leading 1, is returned unchanged.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	switch {
	case len(d) == 10:
		return "+1 (" + d[0:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	}
	return raw
}
