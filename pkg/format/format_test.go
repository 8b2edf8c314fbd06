package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeEveryWord(t *testing.T) {
	assert.Equal(t, "", CapitalizeEveryWord(""))
	assert.Equal(t, "Jos South", CapitalizeEveryWord("jos south"))
	assert.Equal(t, "Jos South", CapitalizeEveryWord("Jos South"))
	assert.Equal(t, "McDonald Avenue", CapitalizeEveryWord("mcDonald avenue"))
}

func TestCapitalizeEveryWordPreservesWordCount(t *testing.T) {
	// Repeated spaces are kept, not collapsed.
	assert.Equal(t, "A  B", CapitalizeEveryWord("a  b"))
}

func TestCapitalizeEveryWordIdempotent(t *testing.T) {
	inputs := []string{"plateau state", "ilorin  west", "x", ""}
	for _, in := range inputs {
		once := CapitalizeEveryWord(in)
		assert.Equal(t, once, CapitalizeEveryWord(once))
	}
}

func TestFilterNonNumbers(t *testing.T) {
	assert.Equal(t, "1234.567", FilterNonNumbers("12a3,4.567"))
	// A second decimal point is dropped, not an error.
	assert.Equal(t, "1.23", FilterNonNumbers("1.2.3"))
	assert.Equal(t, "", FilterNonNumbers("abc"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.56", FormatAmount("12a3,4.567"))
	assert.Equal(t, "1,000,000", FormatAmount("1000000"))
	assert.Equal(t, "123", FormatAmount("123"))
	assert.Equal(t, "", FormatAmount(""))
	assert.Equal(t, "", FormatAmount("naira"))
	// Truncation, never rounding.
	assert.Equal(t, "9.99", FormatAmount("9.999"))
	assert.Equal(t, "12.", FormatAmount("12."))
}

func TestDateInWords(t *testing.T) {
	assert.Equal(t, "1st January, 1990", DateInWords("01/01/1990"))
	assert.Equal(t, "22nd March, 1985", DateInWords("22/03/1985"))
	assert.Equal(t, "13th May, 2001", DateInWords("13/05/2001"))
	assert.Equal(t, "3rd November, 1999", DateInWords("3/11/1999"))
}

func TestDateInWordsPartialInput(t *testing.T) {
	// A partially typed date must not produce output.
	for _, in := range []string{"", "12", "12/0", "12/05", "32/01/1990", "12/13/1990"} {
		assert.Equal(t, "", DateInWords(in), in)
	}
}

func TestAmountInWords(t *testing.T) {
	c := NewWordsConverter()

	assert.Equal(t, "Zero Naira", c.AmountInWords(0))
	assert.Equal(t, "One Naira", c.AmountInWords(100))
	assert.Equal(t, "Zero Naira and Fifty Kobo", c.AmountInWords(50))
	assert.Equal(t,
		"One Thousand Two Hundred Thirty Four Naira and Fifty Six Kobo",
		c.AmountInWords(123456))
	assert.Equal(t, "Two Million Naira", c.AmountInWords(200000000))
	assert.Equal(t, "Minus One Naira", c.AmountInWords(-100))
}

func TestAmountInWordsCustomUnits(t *testing.T) {
	c := &WordsConverter{MajorUnit: "Dollars", MinorUnit: "Cents"}
	assert.Equal(t, "Ten Dollars and One Cents", c.AmountInWords(1001))
}

func TestIntegerWords(t *testing.T) {
	c := NewWordsConverter()
	cases := map[int64]string{
		0:          "Zero",
		7:          "Seven",
		13:         "Thirteen",
		40:         "Forty",
		99:         "Ninety Nine",
		100:        "One Hundred",
		101:        "One Hundred One",
		1000:       "One Thousand",
		1000000:    "One Million",
		1000001:    "One Million One",
		2351000004: "Two Billion Three Hundred Fifty One Million Four",
	}
	for n, want := range cases {
		assert.Equal(t, want, c.Integer(n))
	}
}

func TestIntegerWordsLargeScales(t *testing.T) {
	c := NewWordsConverter()

	assert.Equal(t, "One Quadrillion", c.Integer(1_000_000_000_000_000))
	assert.Equal(t, "One Quintillion", c.Integer(1_000_000_000_000_000_000))
	assert.Equal(t,
		"Nine Quintillion Two Hundred Twenty Three Quadrillion "+
			"Three Hundred Seventy Two Trillion Thirty Six Billion "+
			"Eight Hundred Fifty Four Million Seven Hundred Seventy Five Thousand "+
			"Eight Hundred Seven",
		c.Integer(math.MaxInt64))
}

func TestAmountInWordsLargeAmounts(t *testing.T) {
	c := NewWordsConverter()

	assert.Equal(t, "One Quadrillion Naira", c.AmountInWords(100_000_000_000_000_000))

	// The extremes of int64 must spell out rather than panic or recurse.
	assert.NotEmpty(t, c.AmountInWords(math.MaxInt64))
	got := c.AmountInWords(math.MinInt64)
	assert.True(t, strings.HasPrefix(got, "Minus "))
	assert.NotEmpty(t, c.Integer(math.MinInt64))
}
