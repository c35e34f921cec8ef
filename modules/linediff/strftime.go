package linediff

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatTime renders t in loc using a small strftime-alike token set: the
// one the original differ's time_format actually needs, including the
// Abseil fractional-seconds extension %E<n>S (e.g. %E3S for milliseconds).
// No POSIX strftime library in the ecosystem implements %E<n>S, so this
// formatter exists only to cover that one non-standard token; everything
// else delegates straight to time.Time field accessors.
func formatTime(format string, t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	var out strings.Builder
	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			out.WriteByte(c)
			i++
			continue
		}
		i++ // consume '%'
		switch format[i] {
		case 'Y':
			fmt.Fprintf(&out, "%04d", t.Year())
			i++
		case 'm':
			fmt.Fprintf(&out, "%02d", int(t.Month()))
			i++
		case 'd':
			fmt.Fprintf(&out, "%02d", t.Day())
			i++
		case 'H':
			fmt.Fprintf(&out, "%02d", t.Hour())
			i++
		case 'M':
			fmt.Fprintf(&out, "%02d", t.Minute())
			i++
		case 'S':
			fmt.Fprintf(&out, "%02d", t.Second())
			i++
		case 'z':
			out.WriteString(t.Format("-0700"))
			i++
		case 'F':
			fmt.Fprintf(&out, "%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
			i++
		case 'E':
			// %E<n>S: seconds with n fractional digits. No other %E<n><c>
			// combination is used by this differ's default time_format.
			j := i + 1
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			if j < len(format) && format[j] == 'S' && j > i+1 {
				n, _ := strconv.Atoi(format[i+1 : j])
				fmt.Fprintf(&out, "%02d", t.Second())
				if n > 0 {
					frac := t.Nanosecond()
					scale := 1
					for k := 0; k < 9-n; k++ {
						scale *= 10
					}
					out.WriteByte('.')
					fmt.Fprintf(&out, "%0*d", n, frac/scale)
				}
				i = j + 1
			} else {
				out.WriteByte('%')
				out.WriteByte('E')
				i++
			}
		case '%':
			out.WriteByte('%')
			i++
		default:
			out.WriteByte('%')
			out.WriteByte(format[i])
			i++
		}
	}
	return out.String()
}
