// Package expand performs strftime-style time expansion of text templates.
//
// The drawtext renderer runs its text through Expand once per frame, so a
// template like "%H:%M:%S" produces a live clock. Text without conversion
// specifications passes through unchanged.
package expand

import (
	"fmt"
	"strings"
	"time"
)

// Expand substitutes strftime conversion specifications in format with
// values from t. Unsupported specifications are copied through verbatim,
// matching the common C library behavior.
func Expand(format string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			b.WriteByte(c)
			continue
		}
		i++
		writeConversion(&b, format[i], t)
	}
	return b.String()
}

func writeConversion(b *strings.Builder, spec byte, t time.Time) {
	switch spec {
	case 'a':
		b.WriteString(t.Format("Mon"))
	case 'A':
		b.WriteString(t.Format("Monday"))
	case 'b', 'h':
		b.WriteString(t.Format("Jan"))
	case 'B':
		b.WriteString(t.Format("January"))
	case 'c':
		b.WriteString(t.Format(time.ANSIC))
	case 'C':
		fmt.Fprintf(b, "%02d", t.Year()/100)
	case 'd':
		fmt.Fprintf(b, "%02d", t.Day())
	case 'D':
		b.WriteString(t.Format("01/02/06"))
	case 'e':
		fmt.Fprintf(b, "%2d", t.Day())
	case 'F':
		b.WriteString(t.Format("2006-01-02"))
	case 'H':
		fmt.Fprintf(b, "%02d", t.Hour())
	case 'I':
		b.WriteString(t.Format("03"))
	case 'j':
		fmt.Fprintf(b, "%03d", t.YearDay())
	case 'm':
		fmt.Fprintf(b, "%02d", int(t.Month()))
	case 'M':
		fmt.Fprintf(b, "%02d", t.Minute())
	case 'n':
		b.WriteByte('\n')
	case 'p':
		b.WriteString(t.Format("PM"))
	case 'R':
		b.WriteString(t.Format("15:04"))
	case 'S':
		fmt.Fprintf(b, "%02d", t.Second())
	case 't':
		b.WriteByte('\t')
	case 'T':
		b.WriteString(t.Format("15:04:05"))
	case 'u':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		fmt.Fprintf(b, "%d", wd)
	case 'w':
		fmt.Fprintf(b, "%d", int(t.Weekday()))
	case 'y':
		b.WriteString(t.Format("06"))
	case 'Y':
		fmt.Fprintf(b, "%d", t.Year())
	case 'z':
		b.WriteString(t.Format("-0700"))
	case 'Z':
		b.WriteString(t.Format("MST"))
	case '%':
		b.WriteByte('%')
	default:
		b.WriteByte('%')
		b.WriteByte(spec)
	}
}
