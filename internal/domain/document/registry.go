package document

import "regexp"

var (
	datePattern    = regexp.MustCompile(`^(0?[1-9]|[12][0-9]|3[01])/(0?[1-9]|1[0-2])/\d{4}$`)
	phonePattern   = regexp.MustCompile(`^0\d{10}$`)
	accountPattern = regexp.MustCompile(`^\d{10}$`)
	agePattern     = regexp.MustCompile(`^\d{1,3}$`)
)

// commonFields are shared by every affidavit variant: the date of the
// affidavit and the deponent's location and bio details.
func commonFields() []FieldSpec {
	return []FieldSpec{
		{Name: "dateOfAffidavit", Label: "Date of affidavit", Pattern: datePattern},
		{Name: "dateOfAffidavitInWords", Label: "Date of affidavit in words", DateWordsOf: "dateOfAffidavit"},
		{Name: "lga", Label: "LGA", Required: true, Transform: TransformTitle},
		{Name: "state", Label: "State", Required: true, Transform: TransformTitle},
		{Name: "nationality", Label: "Nationality", Required: true, Transform: TransformTitle},
		{Name: "religion", Label: "Religion", Required: true, Transform: TransformTitle},
		{Name: "gender", Label: "Gender", Required: true, Transform: TransformTitle},
	}
}

func affidavit(slug, title, outputName string, fields ...FieldSpec) FormSpec {
	return FormSpec{
		Slug:              slug,
		Title:             title,
		DefaultOutputName: outputName,
		Fields:            append(commonFields(), fields...),
	}
}

// registry holds every document type the generator knows, keyed by slug.
var registry = []FormSpec{
	affidavit("change-of-name", "Change of Name", "Affidavit",
		FieldSpec{Name: "wrongName", Label: "Wrong name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "correctName", Label: "Correct name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
	),
	affidavit("change-of-date-of-birth", "Change of Date of Birth", "Change of DOB - {name}",
		FieldSpec{Name: "name", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongDob", Label: "Wrong date of birth", Required: true, Pattern: datePattern},
		FieldSpec{Name: "wrongDobInWords", Label: "Wrong date of birth in words", DateWordsOf: "wrongDob", Transform: TransformTitle},
		FieldSpec{Name: "correctDob", Label: "Correct date of birth", Required: true, Pattern: datePattern},
		FieldSpec{Name: "correctDobInWords", Label: "Correct date of birth in words", DateWordsOf: "correctDob", Transform: TransformTitle},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
	),
	affidavit("rearrangement-of-name", "Rearrangement of Name", "Rearrangement of Name - {firstName}",
		FieldSpec{Name: "firstName", Label: "First name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "middleName", Label: "Middle name", Transform: TransformUpper},
		FieldSpec{Name: "surname", Label: "Surname", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongNameArrangement", Label: "Wrong name arrangement", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "correctNameArrangement", Label: "Correct name arrangement", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "document", Label: "Affected document", Required: true},
	),
	affidavit("change-of-state-of-origin", "Change of State of Origin", "Change of State of Origin - {name}",
		FieldSpec{Name: "name", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongStateOfOrigin", Label: "Wrong state of origin", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "correctStateOfOrigin", Label: "Correct state of origin", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "correctLGA", Label: "Correct LGA", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
	),
	affidavit("guardianship", "Affidavit as to Guardianship", "Guardianship - {guardiansName}",
		FieldSpec{Name: "guardiansName", Label: "Guardian's name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "minorsName", Label: "Minor's name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "minorsAge", Label: "Minor's age", Required: true, Pattern: agePattern},
		FieldSpec{Name: "minorsAgeInWords", Label: "Minor's age in words", Transform: TransformTitle},
		FieldSpec{Name: "minorsGender", Label: "Minor's gender", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "relationshipToMinor", Label: "Relationship to minor", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformTitle},
	),
	affidavit("removal-of-name", "Removal of Name", "Removal of Name - {fullName}",
		FieldSpec{Name: "fullName", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "firstName", Label: "First name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "otherName", Label: "Other name", Transform: TransformUpper},
		FieldSpec{Name: "surname", Label: "Surname", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "nameToRemove", Label: "Name to remove", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "correctName", Label: "Correct name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
	),
	affidavit("domicile", "Affidavit as to Domicile", "Affidavit as to Domicile - {fullName}",
		FieldSpec{Name: "fullName", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "spouseName", Label: "Spouse's name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "domicile", Label: "Domicile", Required: true, Transform: TransformTitle},
		FieldSpec{Name: "relationshipToSpouse", Label: "Relationship to spouse", Required: true, Transform: TransformTitle},
	),
	affidavit("change-of-registration-on-sim", "Change of Registration on Sim", "Sim Registration - {name}",
		FieldSpec{Name: "name", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "previousName", Label: "Previous name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "phone", Label: "Phone number", Required: true, Pattern: phonePattern},
		FieldSpec{Name: "simNetwork", Label: "Sim network", Required: true, Transform: TransformUpper},
	),
	affidavit("correction-of-name-and-dob", "Correction of Name and DOB", "Correction of Name and DOB - {fullName}",
		FieldSpec{Name: "fullName", Label: "Full name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongFirstName", Label: "Wrong first name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongOtherName", Label: "Wrong other name", Transform: TransformUpper},
		FieldSpec{Name: "wrongSurname", Label: "Wrong surname", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "correctFirstName", Label: "Correct first name", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "correctOtherName", Label: "Correct other name", Transform: TransformUpper},
		FieldSpec{Name: "correctSurname", Label: "Correct surname", Required: true, Transform: TransformUpper},
		FieldSpec{Name: "wrongDob", Label: "Wrong date of birth", Required: true, Pattern: datePattern},
		FieldSpec{Name: "wrongDobInWords", Label: "Wrong date of birth in words", DateWordsOf: "wrongDob", Transform: TransformTitle},
		FieldSpec{Name: "correctDob", Label: "Correct date of birth", Required: true, Pattern: datePattern},
		FieldSpec{Name: "correctDobInWords", Label: "Correct date of birth in words", DateWordsOf: "correctDob", Transform: TransformTitle},
		FieldSpec{Name: "authority", Label: "Authority", Required: true, Transform: TransformUpper},
	),
	{
		Slug:              "wrong-transfer",
		Title:             "Wrong Transfer",
		DefaultOutputName: "Wrong Transfer - {sender}",
		Fields: []FieldSpec{
			{Name: "dateOfOrder", Label: "Date of order", Pattern: datePattern},
			{Name: "dateOfOrderInWords", Label: "Date of order in words", DateWordsOf: "dateOfOrder"},
			{Name: "amount", Label: "Amount", Required: true, Transform: TransformAmount},
			{Name: "amountInWords", Label: "Amount in words", AmountWordsOf: "amount"},
			{Name: "dateOfTransaction", Label: "Date of transaction", Required: true, Pattern: datePattern},
			{Name: "dateOfTransactionInWords", Label: "Date of transaction in words", DateWordsOf: "dateOfTransaction"},
			{Name: "transactionMethod", Label: "Transaction method", Required: true, Transform: TransformTitle},
			{Name: "lga", Label: "LGA", Required: true, Transform: TransformTitle},
			{Name: "state", Label: "State", Required: true, Transform: TransformTitle},
			{Name: "nationality", Label: "Nationality", Required: true, Transform: TransformTitle},
			{Name: "religion", Label: "Religion", Required: true, Transform: TransformTitle},
			{Name: "gender", Label: "Gender", Required: true, Transform: TransformTitle},
			{Name: "sender", Label: "Sender's name", Required: true, Transform: TransformUpper},
			{Name: "sendersBank", Label: "Sender's bank", Required: true, Transform: TransformTitle},
			{Name: "sendersAccountNo", Label: "Sender's account number", Required: true, Pattern: accountPattern},
			{Name: "recipient", Label: "Recipient's name", Required: true, Transform: TransformUpper},
			{Name: "recipientsBank", Label: "Recipient's bank", Required: true, Transform: TransformTitle},
			{Name: "recipientsAccountNo", Label: "Recipient's account number", Required: true, Pattern: accountPattern},
			{Name: "intendedRecipient", Label: "Intended recipient's name", Required: true, Transform: TransformUpper},
			{Name: "intendedRecipientsBank", Label: "Intended recipient's bank", Required: true, Transform: TransformTitle},
			{Name: "intendedRecipientsAccountNo", Label: "Intended recipient's account number", Required: true, Pattern: accountPattern},
			{Name: "transactionId", Label: "Transaction id"},
			{Name: "tellerId", Label: "Teller id"},
		},
	},
}

// Registry lists every known document form specification.
func Registry() []FormSpec {
	return registry
}

// Lookup finds a form specification by its slug.
func Lookup(slug string) (*FormSpec, bool) {
	for i := range registry {
		if registry[i].Slug == slug {
			return &registry[i], true
		}
	}
	return nil, false
}
