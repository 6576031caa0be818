package dateutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultPattern = "yyyy-MM-dd HH:mm:ss"
	DayPattern     = "yyyy-MM-dd"
)

// ToLayout translates a letter pattern such as "yyyy-MM-dd HH:mm:ss" into a
// Go reference layout. Text inside single quotes is literal and two quotes
// in a row are one quote. Go layouts cannot escape literal text, so
// patterns whose literals would be read back as date fields are rejected.
func ToLayout(pattern string) (string, error) {
	r := []rune(pattern)
	var pieces []layoutPiece

	for i := 0; i < len(r); {
		c := r[i]

		switch {
		case c == '\'':
			lit, next, err := readQuoted(r, i)
			if err != nil {
				return "", fmt.Errorf("pattern %q: %w", pattern, err)
			}
			if err := checkLiteral(lit); err != nil {
				return "", fmt.Errorf("pattern %q: %w", pattern, err)
			}
			pieces = append(pieces, layoutPiece{text: lit, literal: true})
			i = next

		case isPatternLetter(c):
			n := 1
			for i+n < len(r) && r[i+n] == c {
				n++
			}
			var prev rune
			if i > 0 {
				prev = r[i-1]
			}
			tok, err := layoutToken(c, n, prev)
			if err != nil {
				return "", fmt.Errorf("pattern %q: %w", pattern, err)
			}
			pieces = append(pieces, layoutPiece{text: tok})
			i += n

		default:
			if err := checkLiteral(string(c)); err != nil {
				return "", fmt.Errorf("pattern %q: %w", pattern, err)
			}
			pieces = append(pieces, layoutPiece{text: string(c), literal: true})
			i++
		}
	}

	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.text)
	}
	layout := b.String()

	if err := checkPieces(pieces, layout); err != nil {
		return "", fmt.Errorf("pattern %q: %w", pattern, err)
	}
	return layout, nil
}

type layoutPiece struct {
	text    string
	literal bool
}

// layoutCheckTime differs from the Go reference time in every field so a
// reinterpreted literal changes the formatted output.
var layoutCheckTime = time.Date(2009, time.November, 17, 9, 34, 58, 651387237,
	time.FixedZone("XYZ", 5*3600+30*60))

// checkPieces formats layoutCheckTime with the joined layout and with each
// piece on its own. Any difference means literal text collided with a Go
// layout token, either by itself ('Mon', 'PM') or across a boundary
// ("_" before a day, "MMM" before 'uary').
func checkPieces(pieces []layoutPiece, layout string) error {
	var want strings.Builder
	for _, p := range pieces {
		switch {
		case p.literal:
			want.WriteString(p.text)
		case strings.Trim(p.text, "0") == "":
			// fractions only format after a separator
			want.WriteString(layoutCheckTime.Format("." + p.text)[1:])
		default:
			want.WriteString(layoutCheckTime.Format(p.text))
		}
	}

	if got := layoutCheckTime.Format(layout); got != want.String() {
		return fmt.Errorf("layout %q reads literal text as a date field: %w", layout, ErrUnsupportedPattern)
	}
	return nil
}

func isPatternLetter(c rune) bool {
	return c < unicode.MaxASCII && unicode.IsLetter(c)
}

// readQuoted returns the literal starting at the quote r[i] and the index
// just past its closing quote.
func readQuoted(r []rune, i int) (string, int, error) {
	if i+1 < len(r) && r[i+1] == '\'' {
		return "'", i + 2, nil
	}

	var b strings.Builder
	for j := i + 1; j < len(r); j++ {
		if r[j] != '\'' {
			b.WriteRune(r[j])
			continue
		}
		if j+1 < len(r) && r[j+1] == '\'' {
			b.WriteRune('\'')
			j++
			continue
		}
		return b.String(), j + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quote: %w", ErrUnsupportedPattern)
}

func checkLiteral(lit string) error {
	if strings.ContainsAny(lit, "0123456789") {
		return fmt.Errorf("digits in literal %q: %w", lit, ErrUnsupportedPattern)
	}
	return nil
}

func layoutToken(c rune, n int, prev rune) (string, error) {
	switch c {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch {
		case n >= 4:
			return "January", nil
		case n == 3:
			return "Jan", nil
		case n == 2:
			return "01", nil
		default:
			return "1", nil
		}
	case 'd':
		if n >= 2 {
			return "02", nil
		}
		return "2", nil
	case 'D':
		return "002", nil
	case 'H':
		return "15", nil
	case 'h':
		if n >= 2 {
			return "03", nil
		}
		return "3", nil
	case 'm':
		if n >= 2 {
			return "04", nil
		}
		return "4", nil
	case 's':
		if n >= 2 {
			return "05", nil
		}
		return "5", nil
	case 'S':
		// Go only reads fractional seconds right after '.' or ','.
		if (prev != '.' && prev != ',') || n > 9 {
			return "", fmt.Errorf("fraction %q: %w", strings.Repeat("S", n), ErrUnsupportedPattern)
		}
		return strings.Repeat("0", n), nil
	case 'a':
		return "PM", nil
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		default:
			return "Z07:00", nil
		}
	}
	return "", fmt.Errorf("letter %q: %w", c, ErrUnsupportedPattern)
}

// Parse reads value with pattern in the local time zone.
func Parse(value, pattern string) (time.Time, error) {
	return ParseInLocation(value, pattern, time.Local)
}

func ParseInLocation(value, pattern string, loc *time.Location) (time.Time, error) {
	layout, err := ToLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q as %q: %v: %w", value, pattern, err, ErrParse)
	}
	return t, nil
}

// Format renders t with pattern.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := ToLayout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
