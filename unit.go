package kansuji

import (
	"errors"
	"fmt"
	"strconv"
)

//go:generate go run scripts/symbol/codegen.go

// Unit type represents a unit character of the kansuji notation.
// The zero value is [Ju] (十).
//
// Unit is implemented as an integer index into in-memory arrays that
// store the unit's character and decimal exponent.
// There are three kinds of units:
//   - intra-group units 十, 百, 千 with exponents 1 to 3;
//   - large units 万, 億, 兆, 京, 垓 with exponents 4 to 20 in steps of 4;
//   - small units 分, 厘, 毛 with exponents -1 to -3.
//
// The implicit ones place (10^0) has no character and therefore no Unit.
type Unit uint8

var errInvalidUnit = errors.New("invalid unit")

// symbolKind classifies a numeral character.
type symbolKind uint8

const (
	kindInvalid symbolKind = iota
	kindZero               // 零
	kindDigit              // 一 to 九
	kindIntra              // 十, 百, 千
	kindLarge              // 万, 億, 兆, 京, 垓
	kindSmall              // 分, 厘, 毛
)

// symbol is an entry of the symbol table.
// For digits value holds the digit, for units it holds the exponent.
type symbol struct {
	kind  symbolKind
	value int8
	unit  Unit
}

// classify looks up a character in the symbol table.
// Characters outside the table are reported as kindInvalid.
func classify(r rune) symbol {
	return symbolLookup[r]
}

// ParseUnit converts a string to a unit.
// The input string must be either the unit character or its romanized name:
//
//	万
//	man
//
// ParseUnit returns an error if the string does not represent a valid unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[unit]
	if !ok {
		return Ju, errInvalidUnit
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// String method implements the [fmt.Stringer] interface and returns
// the unit character.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	if int(u) >= len(unitSymbolLookup) {
		return ""
	}
	return unitSymbolLookup[u]
}

// Exp returns the decimal exponent of the unit.
// For example, the exponent of 万 is 4 and the exponent of 毛 is -3.
func (u Unit) Exp() int {
	if int(u) >= len(unitExpLookup) {
		return 0
	}
	return int(unitExpLookup[u])
}

// IsLarge returns true if u groups digits by powers of 10,000 (万 to 垓).
func (u Unit) IsLarge() bool {
	return u.kind() == kindLarge
}

// IsSmall returns true if u is a fractional unit (分, 厘, 毛).
func (u Unit) IsSmall() bool {
	return u.kind() == kindSmall
}

func (u Unit) kind() symbolKind {
	if int(u) >= len(unitKindLookup) {
		return kindInvalid
	}
	return unitKindLookup[u]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Ju, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the unit character.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	return append(text, u.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the unit character.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description         |
//	| ---------- | ------- | ------------------- |
//	| %c, %s, %v | 万      | Unit character      |
//	| %q         | "万"    | Quoted character    |
//	| %d         | 4       | Decimal exponent    |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	switch verb {
	case 'd', 'D':
		writePadded(state, strconv.Itoa(u.Exp()))
	case 'q', 'Q':
		writePadded(state, `"`+u.String()+`"`)
	case 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, u.String())
	default:
		writeBadVerb(state, verb, "kansuji.Unit", u.String())
	}
}
