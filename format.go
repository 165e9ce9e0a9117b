package draft

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/message"
)

// FormatNumber formats value according to the number settings of style.
//
// NumberFormat is a printf format whose verbs take their arguments, in
// order, from NumberArguments:
//
//	d  the value, rounded to Decimals
//	D  the integer part of the value
//	m  the minutes of the fractional part, with decimals
//	M  the integer minutes
//	s  the seconds of the fractional part, with decimals
//	S  the integer seconds
//
// Text enclosed in parentheses is a group: the group is dropped when
// every argument it consumes is zero, otherwise it is printed without the
// parentheses. With format "%g°(%g')(%g\")" and arguments "DMs", 30.5
// prints "30°30'" and 30 prints "30°".
//
// Numbers are printed through golang.org/x/text/message with the style
// language, so separators follow the locale.
func FormatNumber(value float64, style DimStyle) (string, error) {
	format := style.NumberFormat
	if format == "" {
		format = "%g"
	}
	args := style.NumberArguments
	if args == "" {
		args = "d"
	}

	f := formatter{
		printer: message.NewPrinter(style.Language),
		args:    args,
	}
	f.split(value, style.Decimals)
	out, _, err := f.run(format, 0)
	if err != nil {
		return "", err
	}
	if rest := f.args[f.next:]; rest != "" {
		return "", fmt.Errorf("draft: number format %q leaves arguments %q unused", format, rest)
	}
	return out, nil
}

type formatter struct {
	printer *message.Printer
	args    string
	next    int

	value            float64
	degrees          float64
	minutes, seconds float64
}

// split computes the argument values. The value is rounded at the
// resolution of the finest argument used, so sexagesimal parts carry
// over (59.9999 minutes become one more degree).
func (f *formatter) split(value float64, decimals int) {
	f.value = roundTo(value, decimals)

	unit := 1.0
	dec := decimals
	switch {
	case strings.ContainsRune(f.args, 's'):
		unit = 3600
	case strings.ContainsRune(f.args, 'S'):
		unit, dec = 3600, 0
	case strings.ContainsRune(f.args, 'm'):
		unit = 60
	case strings.ContainsRune(f.args, 'M'):
		unit, dec = 60, 0
	}
	sign := 1.0
	if value < 0 {
		sign = -1
	}
	scaled := roundTo(math.Abs(value)*unit, dec)

	degrees := math.Trunc(scaled / unit)
	rest := scaled - degrees*unit
	f.degrees = sign * degrees
	if unit == 3600 {
		f.minutes = math.Trunc(rest / 60)
		f.seconds = roundTo(rest-f.minutes*60, dec)
	} else {
		f.minutes = roundTo(rest, dec)
	}
}

// run formats format up to the end or to the closing parenthesis of the
// current group. It returns the text, whether any consumed argument was
// non-zero and the number of bytes read.
func (f *formatter) run(format string, depth int) (string, bool, error) {
	var (
		sb      strings.Builder
		nonZero bool
	)
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '(':
			inner, nz, n, err := f.group(format[i+1:], depth+1)
			if err != nil {
				return "", false, err
			}
			if nz {
				sb.WriteString(inner)
				nonZero = true
			}
			i += n
		case c == ')':
			if depth == 0 {
				return "", false, fmt.Errorf("draft: number format %q: unbalanced ')'", format)
			}
			return sb.String(), nonZero, nil
		case c == '%' && i+1 < len(format) && format[i+1] == '%':
			sb.WriteByte('%')
			i++
		case c == '%':
			end := verbEnd(format, i)
			if end < 0 {
				return "", false, fmt.Errorf("draft: number format %q: incomplete verb", format)
			}
			v, err := f.nextArg()
			if err != nil {
				return "", false, err
			}
			if v != 0 {
				nonZero = true
			}
			sb.WriteString(f.printer.Sprintf(format[i:end+1], v))
			i = end
		default:
			sb.WriteByte(c)
		}
	}
	if depth > 0 {
		return "", false, fmt.Errorf("draft: number format: unbalanced '('")
	}
	return sb.String(), nonZero, nil
}

// group formats a parenthesised group and returns its length including
// the closing parenthesis.
func (f *formatter) group(format string, depth int) (string, bool, int, error) {
	level := 1
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				out, nz, err := f.run(format[:i+1], depth)
				return out, nz, i + 1, err
			}
		}
	}
	return "", false, 0, fmt.Errorf("draft: number format: unbalanced '('")
}

// verbEnd returns the index of the verb letter of the directive starting
// at format[start], or -1.
func verbEnd(format string, start int) int {
	for i := start + 1; i < len(format); i++ {
		c := format[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return i
		}
	}
	return -1
}

func (f *formatter) nextArg() (float64, error) {
	if f.next >= len(f.args) {
		return 0, fmt.Errorf("draft: number format needs more than %d arguments", len(f.args))
	}
	arg := f.args[f.next]
	f.next++

	switch arg {
	case 'd':
		return f.value, nil
	case 'D':
		return f.degrees, nil
	case 'm':
		return f.minutes, nil
	case 'M':
		return math.Trunc(f.minutes), nil
	case 's':
		return f.seconds, nil
	case 'S':
		return math.Trunc(f.seconds), nil
	default:
		return 0, fmt.Errorf("draft: unknown number argument %q", arg)
	}
}
