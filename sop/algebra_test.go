package sop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		f, d string
		q, r string
	}{
		{"ab+ac+bc", "a", "b + c", "bc"},
		{"ab+ac+ad", "a", "b + c + d", "0"},
		{"abc+abd+e", "ab", "c + d", "e"},
		{"ab+cd", "e", "0", "ab + cd"},
		{"f", "f", "1", "0"}, // f/f yields the constant 1
		{"", "a", "0", "0"},
	}
	for _, test := range tests {
		q, r := Divide(Parse(test.f), Parse(test.d)[0])
		assert.Equal(t, test.q, q.String(), "quotient of %q / %q", test.f, test.d)
		assert.Equal(t, test.r, r.String(), "remainder of %q / %q", test.f, test.d)
	}
}

func TestDivideByOne(t *testing.T) {
	f := Parse("ab+cd+e")
	q, r := Divide(f, NewCube())
	assert.True(t, q.Equal(f))
	assert.Empty(t, r)
}

func TestDivideRoundTrip(t *testing.T) {
	inputs := []string{
		"ab+ac+ad",
		"adf+aef+bdf+bef+cdf+cef+bfg+h",
		"ab+cd+ef",
		"abc",
		"",
	}
	divisors := []Cube{NewCube(), NewCube("a"), NewCube("d", "f"), NewCube("z")}
	for _, input := range inputs {
		f := Parse(input)
		for _, d := range divisors {
			q, r := Divide(f, d)
			back := AddExpr(MultiplyCube(d, q), r)
			if diff := cmp.Diff(f, back); diff != "" {
				t.Errorf("round trip failed for %q / %q (-want +got):\n%s", input, d, diff)
			}
		}
	}
}

func TestMultiplyCube(t *testing.T) {
	got := MultiplyCube(NewCube("a"), Parse("b+c+bd"))
	require.Equal(t, "ab + ac + abd", got.String())

	// multiplying by 1 is the identity
	f := Parse("ab+c")
	assert.True(t, MultiplyCube(NewCube(), f).Equal(f))
}

func TestAddExprIdempotent(t *testing.T) {
	a := Parse("ab+cd")
	b := Parse("cd+e")
	sum := AddExpr(a, b)
	assert.Equal(t, "e + ab + cd", sum.String())
	assert.True(t, AddExpr(a, a).Equal(a))
}
