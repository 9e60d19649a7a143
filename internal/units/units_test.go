package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		quantity int64
		unit     Unit
		want     int64
	}{
		{1, Bit, 1},
		{1, Byte, 8},
		{3, Kilobit, 3000},
		{5, Kilobyte, 40960},
		{2, Megabit, 2000000},
		{1, Megabyte, 8388608},
		{300000, Bit, 300000},
	}

	for _, tt := range tests {
		t.Run(tt.unit.Name(), func(t *testing.T) {
			got, err := Convert(tt.quantity, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertMatchesMultiplier(t *testing.T) {
	for _, u := range All() {
		for _, q := range []int64{1, 7, 1000, 123456} {
			got, err := Convert(q, u)
			require.NoError(t, err)
			assert.Equal(t, q*u.Multiplier(), got, "%d %s", q, u)
		}
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	got, err := Convert(42, Unit("GB"))
	assert.Equal(t, int64(0), got)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	got, err = ConvertString(42, "unrecognized")
	assert.Equal(t, int64(0), got)
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestConvertInvalidQuantity(t *testing.T) {
	for _, q := range []int64{0, -5} {
		got, err := Convert(q, Byte)
		assert.Equal(t, int64(0), got)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestConvertOverflow(t *testing.T) {
	_, err := Convert(math.MaxInt64/8+1, Byte)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err := Convert(math.MaxInt64, Bit)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestParse(t *testing.T) {
	tests := map[string]Unit{
		"b":         Bit,
		"B":         Byte,
		"Kb":        Kilobit,
		"KB":        Kilobyte,
		"Mb":        Megabit,
		"MB":        Megabyte,
		" MB ":      Megabyte,
		"bits":      Bit,
		"Byte":      Byte,
		"KILOBYTES": Kilobyte,
		"megabit":   Megabit,
	}

	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("kb")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity(" 300000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(300000), n)

	for _, in := range []string{"", "abc", "-5", "0", "1.5", "12abc"} {
		_, err := ParseQuantity(in)
		assert.ErrorIs(t, err, ErrInvalidQuantity, in)
	}
}
