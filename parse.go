package kansuji

import (
	"fmt"
	"math"

	"github.com/shabbyrobe/go-num"
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

var (
	maxU128    = num.U128FromRaw(math.MaxUint64, math.MaxUint64)
	gaiScale   = num.U128From64(pow10[16]).Mul(num.U128From64(pow10[4])) // 10^20
	maxGaiCoef = maxU128.Quo(gaiScale)
)

// Parse converts a kansuji string to a value.
// The input must be either 零, or an integer part, a fractional part, or both:
//
//	百二十三兆五百四十万二
//	一二分三厘四毛
//	零五分
//	五分
//
// The integer part consists of groups separated by large units 垓, 京, 兆, 億,
// 万 in strictly decreasing order.
// Each group is a number from 1 to 9999 written with 千, 百, 十 and a
// trailing digit; a missing digit in front of a unit stands for one.
// The coefficient of 垓 may itself use the large units 京 to 万, so that
// every 128-bit value can be written (一万垓 is 10^24).
// This relaxes the order rule at 垓 only: 垓 appears at most once, and the
// units after it restart from 京.
// The fractional part consists of digit and unit pairs 分, 厘, 毛 in strictly
// decreasing order.
//
// Parse returns a [*ParseError] wrapping one of [ErrEmptyInput],
// [ErrInvalidCharacter], [ErrUnitOutOfOrder], [ErrDuplicateUnit],
// [ErrMalformedGroup], or [ErrOverflow].
func Parse(s string) (Kansuji, error) {
	toks, err := tokenize(s)
	if err != nil {
		return Kansuji{}, err
	}
	return accumulate(s, toks)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse(s string) Kansuji {
	k, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return k
}

// accumulate folds the tokens into a value.
func accumulate(input string, toks []token) (Kansuji, error) {
	intToks, fracToks, err := partition(input, toks)
	if err != nil {
		return Kansuji{}, err
	}
	integer, err := accumulateInt(input, intToks)
	if err != nil {
		return Kansuji{}, err
	}
	frac, err := accumulateFrac(input, fracToks)
	if err != nil {
		return Kansuji{}, err
	}
	return newKansujiUnsafe(integer, frac), nil
}

// partition splits the tokens into the integer and fractional regions.
// The fractional region starts with the digit in front of the first small unit.
func partition(input string, toks []token) (intToks, fracToks []token, err error) {
	for i, tok := range toks {
		if tok.kind != kindSmall {
			continue
		}
		if i == 0 || toks[i-1].kind != kindDigit {
			return nil, nil, newParseError(input, tok, ErrMalformedGroup)
		}
		return toks[:i-1], toks[i-1:], nil
	}
	return toks, nil, nil
}

// accumulateInt computes the integer part.
// The state machine tracks the last exponent at two levels: large units
// across groups, and intra-group units inside the current group.
func accumulateInt(input string, toks []token) (num.U128, error) {
	if len(toks) == 0 {
		return num.U128{}, nil
	}

	// Zero
	if toks[0].kind == kindZero {
		if len(toks) > 1 {
			return num.U128{}, newParseError(input, toks[1], ErrMalformedGroup)
		}
		return num.U128{}, nil
	}

	var (
		total   num.U128 // coefficient of 垓 times 10^20
		section num.U128 // groups accumulated since the start or since 垓
		g       group    // current group
		prev    int8     // exponent of the previous large unit, 0 if none
		gai     bool     // 垓 already seen
	)
	for _, tok := range toks {
		var err error
		switch tok.kind {
		case kindDigit:
			err = g.addDigit(tok)
		case kindIntra:
			err = g.addUnit(tok)
		case kindLarge:
			switch {
			case tok.unit == Gai && gai:
				err = ErrDuplicateUnit
			case tok.unit == Gai:
				// An empty group stands for one only if nothing precedes 垓.
				coef := section.Add(num.U128From64(g.close(section.IsZero())))
				if coef.Cmp(maxGaiCoef) > 0 {
					return num.U128{}, &ParseError{Input: input, Pos: -1, Err: ErrOverflow}
				}
				total = coef.Mul(gaiScale)
				section = num.U128{}
				gai = true
			case prev != 0 && tok.value == prev:
				err = ErrDuplicateUnit
			case prev != 0 && tok.value > prev:
				err = ErrUnitOutOfOrder
			default:
				v := num.U128From64(g.close(true)).Mul(num.U128From64(pow10[tok.value]))
				section = section.Add(v)
			}
			prev = tok.value
			g = group{}
		default:
			err = ErrMalformedGroup
		}
		if err != nil {
			return num.U128{}, newParseError(input, tok, err)
		}
	}
	section = section.Add(num.U128From64(g.close(false)))

	sum := total.Add(section)
	if sum.Cmp(total) < 0 {
		return num.U128{}, &ParseError{Input: input, Pos: -1, Err: ErrOverflow}
	}
	return sum, nil
}

// group accumulates the digits and intra-group units between two large units.
// The zero value is an empty group.
type group struct {
	value uint64
	digit int8 // pending digit, 0 if none
	prev  int8 // exponent of the previous intra-group unit, 0 if none
	n     int  // number of tokens seen
}

func (g *group) addDigit(tok token) error {
	if g.digit != 0 {
		return ErrMalformedGroup
	}
	g.digit = tok.value
	g.n++
	return nil
}

func (g *group) addUnit(tok token) error {
	switch {
	case g.prev != 0 && tok.value == g.prev:
		return ErrDuplicateUnit
	case g.prev != 0 && tok.value > g.prev:
		return ErrUnitOutOfOrder
	}
	d := g.digit
	if d == 0 {
		d = 1
	}
	g.value += uint64(d) * pow10[tok.value]
	g.digit = 0
	g.prev = tok.value
	g.n++
	return nil
}

// close returns the value of the group.
// If elide is true, an empty group stands for one, as in 万 (10^4).
func (g *group) close(elide bool) uint64 {
	if g.n == 0 && elide {
		return 1
	}
	return g.value + uint64(g.digit)
}

// accumulateFrac computes the fractional part in thousandths.
// The tokens must start with a digit followed by a small unit.
func accumulateFrac(input string, toks []token) (uint16, error) {
	var (
		frac uint16
		prev int8 // exponent of the previous small unit, 0 if none
	)
	for i := 0; i < len(toks); i += 2 {
		d := toks[i]
		switch {
		case d.kind == kindSmall:
			return 0, newParseError(input, d, ErrMalformedGroup)
		case d.kind != kindDigit || i+1 == len(toks):
			return 0, newParseError(input, d, ErrUnitOutOfOrder)
		}
		u := toks[i+1]
		var err error
		switch {
		case u.kind == kindDigit:
			err = ErrMalformedGroup
		case u.kind != kindSmall:
			err = ErrUnitOutOfOrder
		case prev != 0 && u.value == prev:
			err = ErrDuplicateUnit
		case prev != 0 && u.value > prev:
			err = ErrUnitOutOfOrder
		}
		if err != nil {
			return 0, newParseError(input, u, err)
		}
		frac += uint16(d.value) * uint16(pow10[3+u.value])
		prev = u.value
	}
	return frac, nil
}
