/*
Package kansuji implements a codec between Japanese kanji numerals (漢数字)
and numeric values.
It leverages the [decimal] package for rounding floating-point input and the
[num] package for 128-bit unsigned integers.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Decoding with strict validation and positioned errors
  - Canonical, minimal encoding that decodes back to the same value
  - Conversions to and from uint64, 128-bit integers, floats, and decimals
  - Text, JSON, BSON, and SQL encodings

# Representation

A Kansuji consists of a 128-bit unsigned integer part and a fractional part
of three decimal digits.
The supported characters are:

	| Kind              | Characters             | Values               |
	| ----------------- | ---------------------- | -------------------- |
	| Zero              | 零                     | 0                    |
	| Digits            | 一 二 三 四 五 六 七 八 九 | 1 to 9               |
	| Intra-group units | 十 百 千               | 10^1 to 10^3         |
	| Large units       | 万 億 兆 京 垓         | 10^4 to 10^20        |
	| Small units       | 分 厘 毛               | 10^-1 to 10^-3       |

Large-character variants (大字) such as 壱 or 萬 are not supported.

# Grammar

A numeral is 零, or an integer part optionally followed by a fractional part:

	numeral         := 零 fractional-part? | integer-part? fractional-part?
	integer-part    := group (large-unit group)*
	group           := (digit intra-unit?)+
	fractional-part := (digit small-unit)+

Units appear in strictly decreasing order at each level.
A missing digit in front of 十, 百, 千 or a large unit stands for one, so
百万 is 1,000,000.
The coefficient of 垓 may itself contain the lower large units (一万垓 is
10^24), which makes every 128-bit value representable.

# Canonical Form

[Kansuji.String] produces the shortest numeral for a value: zero groups and
fractional digits are omitted, 一 is omitted in front of 十, 百, 千, and values
below one start with 零.
For example, 123000005400002 is written as 百二十三兆五百四十万二, and 1.234
is written as 一二分三厘四毛.

# Errors

Decoding errors are reported as [*ParseError] values that carry the position
of the offending character and wrap one of the sentinel errors, such as
[ErrUnitOutOfOrder] or [ErrOverflow].
Conversions return errors wrapping [ErrOutOfRange], [ErrOverflow], or
[ErrNonIntegerConversion].
Use [errors.Is] to distinguish them.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
[num]: https://pkg.go.dev/github.com/shabbyrobe/go-num
*/
package kansuji
