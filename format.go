package kansuji

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shabbyrobe/go-num"
)

var (
	intraUnits = [...]Unit{Sen, Hyaku, Ju}
	largeUnits = [...]Unit{Kei, Cho, Oku, Man}
	smallUnits = [...]Unit{Bu, Rin, Mo}
)

// String implements the [fmt.Stringer] interface and returns the canonical
// kansuji representation of the value.
// The canonical form is the shortest one accepted by [Parse]:
//   - zero groups and zero fractional digits are omitted;
//   - the digit 一 is omitted in front of 十, 百, 千, but kept in front of
//     large and small units (一万, 一分);
//   - values below one start with 零 (零五分).
//
// See also method [Kansuji.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kansuji) String() string {
	return string(k.appendKansuji(make([]byte, 0, 48)))
}

func (k Kansuji) appendKansuji(text []byte) []byte {
	if k.integer.IsZero() {
		text = append(text, digitSymbolLookup[0]...)
	} else {
		text = appendU128(text, k.integer)
	}
	return appendFrac(text, k.frac)
}

// appendU128 appends a positive integer.
// A coefficient of 垓 above 9999 is written with the lower large units.
func appendU128(text []byte, u num.U128) []byte {
	gai, rest := u.QuoRem(gaiScale)
	if !gai.IsZero() {
		text = appendUint64(text, gai.AsUint64())
		text = append(text, Gai.String()...)
	}
	kei, low := rest.QuoRem(num.U128From64(pow10[Kei.Exp()]))
	text = appendGroup(text, kei.AsUint64(), Kei)
	return appendUint64(text, low.AsUint64())
}

// appendUint64 appends the groups from 京 down to the ones group.
func appendUint64(text []byte, u uint64) []byte {
	for _, unit := range largeUnits {
		scale := pow10[unit.Exp()]
		text = appendGroup(text, u/scale, unit)
		u %= scale
	}
	if u != 0 {
		text = appendDigits(text, u)
	}
	return text
}

// appendGroup appends a group from 0 to 9999 followed by its large unit.
// Zero groups are omitted together with their unit.
func appendGroup(text []byte, g uint64, unit Unit) []byte {
	if g == 0 {
		return text
	}
	text = appendDigits(text, g)
	return append(text, unit.String()...)
}

// appendDigits appends a number from 1 to 9999.
func appendDigits(text []byte, g uint64) []byte {
	for _, unit := range intraUnits {
		switch d := g / pow10[unit.Exp()] % 10; d {
		case 0:
			continue
		case 1:
			// 一 is elided: 十, not 一十
		default:
			text = append(text, digitSymbolLookup[d]...)
		}
		text = append(text, unit.String()...)
	}
	if d := g % 10; d != 0 {
		text = append(text, digitSymbolLookup[d]...)
	}
	return text
}

// appendFrac appends the fractional digits given in thousandths.
func appendFrac(text []byte, frac uint16) []byte {
	for _, unit := range smallUnits {
		d := uint64(frac) / pow10[fracScale+unit.Exp()] % 10
		if d == 0 {
			continue
		}
		text = append(text, digitSymbolLookup[d]...)
		text = append(text, unit.String()...)
	}
	return text
}

// arabic returns the value in Arabic numerals, with trailing zeros of the
// fractional part removed.
func (k Kansuji) arabic() string {
	s := k.integer.String()
	if k.frac == 0 {
		return s
	}
	f := fmt.Sprintf("%03d", k.frac)
	return s + "." + strings.TrimRight(f, "0")
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description                 |
//	| ------ | -------------- | --------------------------- |
//	| %s, %v | 一二分三厘四毛 | Canonical kansuji           |
//	| %q     | "一二分三厘"   | Quoted kansuji              |
//	| %f     | 1.234          | Arabic numerals             |
//	| %d     | 1              | Integer part in Arabic      |
//
// The '-' format flag can be used with all verbs.
// Width is measured in characters, not bytes.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (k Kansuji) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, k.String())
	case 'q', 'Q':
		writePadded(state, `"`+k.String()+`"`)
	case 'f', 'F':
		writePadded(state, k.arabic())
	case 'd', 'D':
		writePadded(state, k.integer.String())
	default:
		writeBadVerb(state, verb, "kansuji.Kansuji", k.String())
	}
}

// writePadded writes s padded with spaces up to the width of the state.
func writePadded(state fmt.State, s string) {
	var buf strings.Builder
	pad := 0
	if w, ok := state.Width(); ok {
		pad = w - utf8.RuneCountInString(s)
	}

	// Leading spaces
	if !state.Flag('-') {
		for range pad {
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(s)

	// Trailing spaces
	if state.Flag('-') {
		for range pad {
			buf.WriteByte(' ')
		}
	}

	//nolint:errcheck
	state.Write([]byte(buf.String()))
}

// writeBadVerb reports an unsupported verb the way package fmt does.
func writeBadVerb(state fmt.State, verb rune, typ, s string) {
	//nolint:errcheck
	fmt.Fprintf(state, "%%!%c(%s=%s)", verb, typ, s)
}
