package rebalance

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestF(t *testing.T) {
	testCases := []struct {
		name string
		got  Fraction
		want string
	}{
		{name: "zero value", got: Fraction{}, want: "0"},
		{name: "int", got: F(6500), want: "6500"},
		{name: "int64", got: F(int64(-3)), want: "-3"},
		{name: "float is read as its decimal", got: F(0.1), want: "1/10"},
		{name: "float", got: F(1234.56), want: "30864/25"},
		{name: "decimal", got: F(decimal.RequireFromString("0.3")), want: "3/10"},
		{name: "ratio", got: NewFraction(6, 4), want: "3/2"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestFraction_ExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 == 0.3, exactly.
	assert.True(t, F(0.1).Add(F(0.2)).Equal(F(0.3)))

	third := F(1).Div(F(3))
	assert.True(t, third.Add(third).Add(third).Equal(F(1)))
	assert.Equal(t, "0.333", third.StringFixed(3))
	assert.Equal(t, "-0.67", third.Mul(F(-2)).StringFixed(2))

	assert.True(t, F(-5).Abs().Equal(F(5)))
	assert.True(t, F(5).Neg().IsNegative())
	assert.True(t, F(2).Sub(F(2)).IsZero())
	assert.True(t, F(1).LessThan(F(2)))
	assert.True(t, F(2).GreaterThanOrEqual(F(2)))
	assert.Equal(t, -1, F(-0.5).Sign())

	assert.Panics(t, func() { F(1).Div(Fraction{}) })
}

func TestFraction_ZeroValueIsNotShared(t *testing.T) {
	var zero Fraction
	sum := zero.Add(F(3))
	assert.True(t, zero.IsZero())
	assert.True(t, sum.Equal(F(3)))
	assert.True(t, Fraction{}.Equal(F(0)))
}

func TestParseFraction(t *testing.T) {
	testCases := []struct {
		input   string
		want    Fraction
		wantErr bool
	}{
		{input: "6500", want: F(6500)},
		{input: " -12.75 ", want: NewFraction(-51, 4)},
		{input: "1e3", want: F(1000)},
		{input: "31000/7", want: NewFraction(31000, 7)},
		{input: "abc", wantErr: true},
		{input: "1/0", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFraction(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Truef(t, tc.want.Equal(got), "got %s, want %s", got, tc.want)
		})
	}
}

func TestFraction_JSON(t *testing.T) {
	b, err := json.Marshal(NewFraction(31000, 7))
	require.NoError(t, err)
	assert.Equal(t, `"31000/7"`, string(b))

	var got struct {
		A Fraction `json:"a"`
		B Fraction `json:"b"`
		C Fraction `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"31000/7","b":12.5,"c":"0.1"}`), &got))
	assert.True(t, got.A.Equal(NewFraction(31000, 7)))
	assert.True(t, got.B.Equal(NewFraction(25, 2)))
	assert.True(t, got.C.Equal(NewFraction(1, 10)))
}
