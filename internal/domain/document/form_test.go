package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	spec, ok := Lookup("change-of-name")
	require.True(t, ok)
	assert.Equal(t, "Change of Name", spec.Title)
	assert.Contains(t, spec.FieldNames(), "wrongName")

	_, ok = Lookup("no-such-form")
	assert.False(t, ok)
}

func TestRegistrySlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range Registry() {
		assert.False(t, seen[spec.Slug], "duplicate slug %s", spec.Slug)
		seen[spec.Slug] = true
	}
}

func TestValidateRequiredFields(t *testing.T) {
	spec, ok := Lookup("change-of-name")
	require.True(t, ok)

	errs := spec.Validate(map[string]string{
		"wrongName": "  ",
		"gender":    "male",
	})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "wrongName")
	assert.Contains(t, fields, "correctName")
	assert.Contains(t, fields, "authority")
	assert.NotContains(t, fields, "gender")
	// Derived fields never fail required checks on their own.
	assert.NotContains(t, fields, "dateOfAffidavitInWords")
}

func TestValidatePatterns(t *testing.T) {
	spec, ok := Lookup("change-of-date-of-birth")
	require.True(t, ok)

	errs := spec.Validate(map[string]string{
		"name":       "jane doe",
		"wrongDob":   "31/13/1990",
		"correctDob": "1/1/1990",
		"authority":  "nimc",
		"lga":        "ikeja", "state": "lagos", "nationality": "nigerian",
		"religion": "christianity", "gender": "female",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "wrongDob", errs[0].Field)
}

func TestNormalizeChangeOfName(t *testing.T) {
	spec, ok := Lookup("change-of-name")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{
		"wrongName":       "john doe",
		"correctName":     "jonathan doe",
		"gender":          "male",
		"lga":             "OBIO AKPOR",
		"state":           "rivers",
		"authority":       "wema bank",
		"dateOfAffidavit": "14/2/2024",
	})

	assert.Equal(t, "JOHN DOE", got["wrongName"])
	assert.Equal(t, "JONATHAN DOE", got["correctName"])
	assert.Equal(t, "Male", got["gender"])
	assert.Equal(t, "Obio Akpor", got["lga"])
	assert.Equal(t, "Rivers", got["state"])
	assert.Equal(t, "WEMA BANK", got["authority"])
	assert.Equal(t, "14th February, 2024", got["dateOfAffidavitInWords"])
}

func TestNormalizeDerivedDateLeftEmptyOnBadSource(t *testing.T) {
	spec, ok := Lookup("change-of-name")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{"dateOfAffidavit": "14/2"})
	assert.Equal(t, "", got["dateOfAffidavitInWords"])
}

func TestNormalizeExplicitWordsWin(t *testing.T) {
	spec, ok := Lookup("correction-of-name-and-dob")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{
		"wrongDob":        "5/6/1988",
		"wrongDobInWords": "fifth of june, 1988",
	})

	// A user-supplied value is title-cased, not replaced by the derivation.
	assert.Equal(t, "Fifth Of June, 1988", got["wrongDobInWords"])

	got = spec.Normalize(map[string]string{"wrongDob": "5/6/1988"})
	assert.Equal(t, "5th June, 1988", got["wrongDobInWords"])
}

func TestNormalizeWrongTransferAmount(t *testing.T) {
	spec, ok := Lookup("wrong-transfer")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{
		"amount": "1234567.899",
	})

	assert.Equal(t, "1,234,567.89", got["amount"])
	assert.Equal(t,
		"One Million Two Hundred Thirty Four Thousand Five Hundred Sixty Seven Naira and Eighty Nine Kobo",
		got["amountInWords"])
}

func TestNormalizeWrongTransferHugeAmount(t *testing.T) {
	spec, ok := Lookup("wrong-transfer")
	require.True(t, ok)

	// A sixteen-digit figure still spells out.
	got := spec.Normalize(map[string]string{
		"amount": "1000000000000000",
	})
	assert.Equal(t, "1,000,000,000,000,000", got["amount"])
	assert.Equal(t, "One Quadrillion Naira", got["amountInWords"])

	// Beyond the kobo range the words field degrades to empty.
	got = spec.Normalize(map[string]string{
		"amount": "99999999999999999999",
	})
	assert.Empty(t, got["amountInWords"])
}

func TestNormalizeGuardianshipAuthorityTitleCased(t *testing.T) {
	spec, ok := Lookup("guardianship")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{"authority": "federal ministry of education"})
	assert.Equal(t, "Federal Ministry Of Education", got["authority"])
}

func TestNormalizeDropsUnknownKeys(t *testing.T) {
	spec, ok := Lookup("domicile")
	require.True(t, ok)

	got := spec.Normalize(map[string]string{
		"fullName": "ada obi",
		"injected": "value",
	})

	assert.Equal(t, "ADA OBI", got["fullName"])
	_, present := got["injected"]
	assert.False(t, present)
}

func TestOutputName(t *testing.T) {
	spec, ok := Lookup("domicile")
	require.True(t, ok)

	name := spec.OutputName(map[string]string{"fullName": "ADA OBI"})
	assert.Equal(t, "Affidavit as to Domicile - ADA OBI", name)

	plain, ok := Lookup("change-of-name")
	require.True(t, ok)
	assert.Equal(t, "Affidavit", plain.OutputName(map[string]string{}))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		kobo int64
		ok   bool
	}{
		{"1500", 150000, true},
		{"1,500.50", 150050, true},
		{"0.999", 99, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		kobo, ok := parseAmount(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.kobo, kobo, tc.in)
	}
}
