package kansuji

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
	"github.com/shabbyrobe/go-num"
)

const (
	maxU128Str = "340282366920938463463374607431768211455"
	maxU128Kan = "三百四十京二千八百二十三兆六千六百九十二億九百三十八万四千六百三十四垓六千三百三十七京四千六百七兆四千三百十七億六千八百二十一万千四百五十五"
)

func TestKansuji_ZeroValue(t *testing.T) {
	got := Kansuji{}
	want := MustParse("零")
	if got != want {
		t.Errorf("Kansuji{} = %q, want %q", got, want)
	}
}

func TestKansuji_Size(t *testing.T) {
	k := Kansuji{}
	got := unsafe.Sizeof(k)
	want := uintptr(24)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", k, got, want)
	}
}

func TestKansuji_Interfaces(t *testing.T) {
	var i any = Kansuji{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
}

func TestNewFromUint64(t *testing.T) {
	tests := []struct {
		u    uint64
		want string
	}{
		{0, "零"},
		{1, "一"},
		{10, "十"},
		{11, "十一"},
		{101, "百一"},
		{1000, "千"},
		{10000, "一万"},
		{10001, "一万一"},
		{1000001, "百万一"},
		{123000005400002, "百二十三兆五百四十万二"},
		{math.MaxUint64, "千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十五"},
	}
	for _, tt := range tests {
		got := NewFromUint64(tt.u)
		if got.String() != tt.want {
			t.Errorf("NewFromUint64(%v) = %q, want %q", tt.u, got, tt.want)
		}
	}
}

func TestNewFromUint128(t *testing.T) {
	tests := []struct {
		u    string
		want string
	}{
		{"0", "零"},
		{"100000000000000000000", "一垓"},
		{"1000000000000000000000000", "一万垓"},
		{"20500000000000001000021", "二百五垓百万二十一"},
		{"1234567890123456789012345678901234567", "一京二千三百四十五兆六千七百八十九億百二十三万四千五百六十七垓八千九百一京二千三百四十五兆六千七百八十九億百二十三万四千五百六十七"},
		{maxU128Str, maxU128Kan},
	}
	for _, tt := range tests {
		got := NewFromUint128(mustU128(tt.u))
		if got.String() != tt.want {
			t.Errorf("NewFromUint128(%v) = %q, want %q", tt.u, got, tt.want)
		}
	}
}

func TestNewFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f        float64
			wantInt  string
			wantFrac uint16
		}{
			{0, "0", 0},
			{0.5, "0", 500},
			{1, "1", 0},
			{1.234, "1", 234},
			{1.203, "1", 203},
			{12.3, "12", 300},
			{10.01, "10", 10},
			{0.001, "0", 1},

			// Rounding half to even
			{0.0005, "0", 0},
			{0.0015, "0", 2},
			{1.2345, "1", 234},
			{0.9995, "1", 0},
			{0.00049, "0", 0},

			// Tiny floats
			{1e-300, "0", 0},
			{math.SmallestNonzeroFloat64, "0", 0},

			// Large floats
			{0x1p53 - 1, "9007199254740991", 0},
			{0x1p53, "9007199254740992", 0},
			{1e20, "100000000000000000000", 0},
			{0x1p64, "18446744073709551616", 0},
			{0x1p127, "170141183460469231731687303715884105728", 0},
		}
		for _, tt := range tests {
			got, err := NewFromFloat64(tt.f)
			if err != nil {
				t.Errorf("NewFromFloat64(%v) failed: %v", tt.f, err)
				continue
			}
			if got.Int() != mustU128(tt.wantInt) || got.frac != tt.wantFrac {
				t.Errorf("NewFromFloat64(%v) = %v.%03d, want %v.%03d", tt.f, got.Int(), got.frac, tt.wantInt, tt.wantFrac)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]float64{
			"nan":      math.NaN(),
			"+inf":     math.Inf(1),
			"-inf":     math.Inf(-1),
			"negative": -1,
			"tiny":     -0.001,
			"overflow": 1e39,
			"2^128":    0x1p128,
		}
		for name, f := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFromFloat64(f)
				if err == nil {
					t.Fatalf("NewFromFloat64(%v) did not fail", f)
				}
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("NewFromFloat64(%v) error = %v, want %v", f, err, ErrOutOfRange)
				}
			})
		}
	})
}

func TestNewFromFloat32(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float32
			want string
		}{
			{0, "零"},
			{0.5, "零五分"},
			{1.25, "一二分五厘"},
			{10000, "一万"},
		}
		for _, tt := range tests {
			got, err := NewFromFloat32(tt.f)
			if err != nil {
				t.Errorf("NewFromFloat32(%v) failed: %v", tt.f, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewFromFloat32(%v) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float32{
			float32(math.NaN()),
			float32(math.Inf(1)),
			-1,
		}
		for _, f := range tests {
			_, err := NewFromFloat32(f)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NewFromFloat32(%v) error = %v, want %v", f, err, ErrOutOfRange)
			}
		}
	})
}

func TestNewFromDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			want string
		}{
			{"0", "零"},
			{"0.000", "零"},
			{"1", "一"},
			{"1.5", "一五分"},
			{"1.234", "一二分三厘四毛"},
			{"1.2345", "一二分三厘四毛"},
			{"1.2355", "一二分三厘六毛"},
			{"0.0004", "零"},
			{"9999999999999999.999", "九千九百九十九兆九千九百九十九億九千九百九十九万九千九百九十九九分九厘九毛"},
			{"9223372036854775807", "九百二十二京三千三百七十二兆三百六十八億五千四百七十七万五千八百七"},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.d)
			got, err := NewFromDecimal(d)
			if err != nil {
				t.Errorf("NewFromDecimal(%v) failed: %v", d, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewFromDecimal(%v) = %q, want %q", d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"-1", "-0.001"}
		for _, tt := range tests {
			d := decimal.MustParse(tt)
			_, err := NewFromDecimal(d)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NewFromDecimal(%v) error = %v, want %v", d, err, ErrOutOfRange)
			}
		}
	})
}

func TestKansuji_Uint128(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			k    string
			want string
		}{
			{"零", "0"},
			{"十", "10"},
			{"一万垓", "1000000000000000000000000"},
			{maxU128Kan, maxU128Str},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.k).Uint128()
			if err != nil {
				t.Errorf("%q.Uint128() failed: %v", tt.k, err)
				continue
			}
			if got != mustU128(tt.want) {
				t.Errorf("%q.Uint128() = %v, want %v", tt.k, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"零五分", "一一毛", "一垓一毛"}
		for _, tt := range tests {
			_, err := MustParse(tt).Uint128()
			if !errors.Is(err, ErrNonIntegerConversion) {
				t.Errorf("%q.Uint128() error = %v, want %v", tt, err, ErrNonIntegerConversion)
			}
		}
	})
}

func TestKansuji_Uint64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			k    string
			want uint64
		}{
			{"零", 0},
			{"百二十三兆五百四十万二", 123000005400002},
			{"千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十五", math.MaxUint64},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.k).Uint64()
			if err != nil {
				t.Errorf("%q.Uint64() failed: %v", tt.k, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Uint64() = %v, want %v", tt.k, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			k       string
			wantErr error
		}{
			{"一二分", ErrNonIntegerConversion},
			{"千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十六", ErrOverflow},
			{"一垓", ErrOverflow},
		}
		for _, tt := range tests {
			_, err := MustParse(tt.k).Uint64()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%q.Uint64() error = %v, want %v", tt.k, err, tt.wantErr)
			}
		}
	})
}

func TestKansuji_Float64(t *testing.T) {
	tests := []struct {
		k    string
		want float64
	}{
		{"零", 0},
		{"零五分", 0.5},
		{"一二分五厘", 1.25},
		{"一万", 10000},
		{"一垓", 1e20},
		{maxU128Kan, 0x1p128},
	}
	for _, tt := range tests {
		k := MustParse(tt.k)
		if got := k.Float64(); got != tt.want {
			t.Errorf("%q.Float64() = %v, want %v", tt.k, got, tt.want)
		}
		if got := k.Float32(); got != float32(tt.want) {
			t.Errorf("%q.Float32() = %v, want %v", tt.k, got, float32(tt.want))
		}
	}
}

func TestKansuji_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			k    string
			want string
		}{
			{"零", "0"},
			{"十", "10"},
			{"零五分", "0.5"},
			{"一二分三厘四毛", "1.234"},
			{"一二分三毛", "1.203"},
			{"九千二百二十三兆三千七百二十億三千六百八十五万四千七百七十五八分七毛", "9223372036854775.807"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.k).Decimal()
			if err != nil {
				t.Errorf("%q.Decimal() failed: %v", tt.k, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Decimal() = %v, want %v", tt.k, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"九千二百二十三兆三千七百二十億三千六百八十五万四千七百七十五八分八毛",
			"九百二十二京三千三百七十二兆三百六十八億五千四百七十七万五千八百七",
			"一垓",
			maxU128Kan,
		}
		for _, tt := range tests {
			_, err := MustParse(tt).Decimal()
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%q.Decimal() error = %v, want %v", tt, err, ErrOverflow)
			}
		}
	})
}

func TestKansuji_Accessors(t *testing.T) {
	tests := []struct {
		k             string
		wantInt       uint64
		wantFraction  float64
		wantTrunc     string
		isZero, isInt bool
	}{
		{"零", 0, 0, "零", true, true},
		{"零五分", 0, 0.5, "零", false, false},
		{"十二五分", 12, 0.5, "十二", false, false},
		{"一万", 10000, 0, "一万", false, true},
	}
	for _, tt := range tests {
		k := MustParse(tt.k)
		if got := k.Int(); got != num.U128From64(tt.wantInt) {
			t.Errorf("%q.Int() = %v, want %v", tt.k, got, tt.wantInt)
		}
		if got := k.Fraction(); got != tt.wantFraction {
			t.Errorf("%q.Fraction() = %v, want %v", tt.k, got, tt.wantFraction)
		}
		if got := k.Trunc().String(); got != tt.wantTrunc {
			t.Errorf("%q.Trunc() = %q, want %q", tt.k, got, tt.wantTrunc)
		}
		if got := k.IsZero(); got != tt.isZero {
			t.Errorf("%q.IsZero() = %v, want %v", tt.k, got, tt.isZero)
		}
		if got := k.IsInt(); got != tt.isInt {
			t.Errorf("%q.IsInt() = %v, want %v", tt.k, got, tt.isInt)
		}
	}
}

func TestKansuji_Cmp(t *testing.T) {
	tests := []struct {
		k, l string
		want int
	}{
		{"零", "零", 0},
		{"零", "一毛", -1},
		{"一毛", "零", 1},
		{"一", "九分九厘九毛", 1},
		{"一一毛", "一一厘", -1},
		{"万", "一万", 0},
		{"一垓", "千八百四十四京六千七百四十四兆七百三十七億九百五十五万千六百十五", 1},
	}
	for _, tt := range tests {
		k, l := MustParse(tt.k), MustParse(tt.l)
		got := k.Cmp(l)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", k, l, got, tt.want)
		}
	}
}

func TestKansuji_String(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		// Canonical input
		{"零", "零"},
		{"十", "十"},
		{"百二十三兆五百四十万二", "百二十三兆五百四十万二"},
		{"一二分三厘四毛", "一二分三厘四毛"},
		{"一二分三毛", "一二分三毛"},
		{"零五分", "零五分"},
		{"十一厘", "十一厘"},
		{"零一毛", "零一毛"},
		{"一万垓", "一万垓"},
		{maxU128Kan, maxU128Kan},

		// Non-canonical input
		{"一十", "十"},
		{"一千一百一十一", "千百十一"},
		{"万", "一万"},
		{"垓", "一垓"},
		{"五分", "零五分"},
	}
	for _, tt := range tests {
		got := MustParse(tt.s).String()
		if got != tt.want {
			t.Errorf("MustParse(%q).String() = %q, want %q", tt.s, got, tt.want)
		}
		if _, err := Parse(got); err != nil {
			t.Errorf("Parse(%q) failed: %v", got, err)
		}
	}
}

func TestKansuji_Format(t *testing.T) {
	tests := []struct {
		k, format, want string
	}{
		// %T verb
		{"一二分三厘四毛", "%T", "kansuji.Kansuji"},
		// %q verb
		{"一二分三厘四毛", "%q", "\"一二分三厘四毛\""},
		{"一二分三厘四毛", "%10q", " \"一二分三厘四毛\""},
		{"一二分三厘四毛", "%-10q", "\"一二分三厘四毛\" "},
		// %s verb
		{"一二分三厘四毛", "%s", "一二分三厘四毛"},
		{"一二分三厘四毛", "%9s", "  一二分三厘四毛"},
		{"一二分三厘四毛", "%09s", "  一二分三厘四毛"}, // '0' is ignored
		{"一二分三厘四毛", "%-9s", "一二分三厘四毛  "},
		{"十", "%3s", "  十"},
		// %v verb
		{"百万一", "%v", "百万一"},
		{"百万一", "%5v", "  百万一"},
		{"百万一", "%+5v", "  百万一"}, // '+' is ignored
		// %f verb
		{"零", "%f", "0"},
		{"一二分三厘四毛", "%f", "1.234"},
		{"一二分", "%f", "1.2"},
		{"十一厘", "%f", "10.01"},
		{"十一厘", "%7f", "  10.01"},
		{"十一厘", "%-7f", "10.01  "},
		{maxU128Kan, "%f", maxU128Str},
		// %d verb
		{"一二分三厘四毛", "%d", "1"},
		{"一万", "%d", "10000"},
		{"一万", "%6d", " 10000"},
		// wrong verbs
		{"一二分", "%b", "%!b(kansuji.Kansuji=一二分)"},
		{"十", "%x", "%!x(kansuji.Kansuji=十)"},
	}
	for _, tt := range tests {
		k := MustParse(tt.k)
		got := fmt.Sprintf(tt.format, k)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, k, got, tt.want)
		}
	}
}
