package core

import (
	"strings"
	"unicode"
)

// allowedEmailDomains is the fixed allow-list of mail-provider suffixes
// accepted on prediction submissions.
var allowedEmailDomains = []string{"@gmail.com", "@yahoo.com", "@outlook.com"}

// Fixed label sets for the heart disease categorical fields, mapped to the
// numeric codes the classifier was trained on.
var (
	sexCodes = map[string]float64{
		"Female": 0,
		"Male":   1,
	}
	chestPainCodes = map[string]float64{
		"Typical Angina":   0,
		"Atypical Angina":  1,
		"Non-Anginal Pain": 2,
		"Asymptomatic":     3,
	}
	fastingBSCodes = map[string]float64{
		"Less than 120 mg/dl":    0,
		"Greater than 120 mg/dl": 1,
	}
	restingECGCodes = map[string]float64{
		"Normal":                       0,
		"ST-T Wave Abnormality":        1,
		"Left Ventricular Hypertrophy": 2,
	}
	exerciseAnginaCodes = map[string]float64{
		"No":  0,
		"Yes": 1,
	}
	stSlopeCodes = map[string]float64{
		"Upsloping":   0,
		"Flat":        1,
		"Downsloping": 2,
	}
	thalassemiaCodes = map[string]float64{
		"Normal":            1,
		"Fixed Defect":      2,
		"Reversible Defect": 3,
	}
)

// validateIdentity checks the name and email fields shared by both
// prediction forms.
func validateIdentity(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return &ValidationError{Field: "name", Reason: "must contain letters and spaces only"}
		}
	}

	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	for _, domain := range allowedEmailDomains {
		if strings.HasSuffix(email, domain) {
			return nil
		}
	}
	return &ValidationError{
		Field:  "email",
		Reason: "must end with one of " + strings.Join(allowedEmailDomains, ", "),
	}
}

// validateHistoryEmail is the looser check used for history lookups, where
// old records may predate the allow-list.
func validateHistoryEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || !strings.Contains(email[at:], ".") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// categoryCode maps a categorical form label to its classifier code.
func categoryCode(field, label string, codes map[string]float64) (float64, error) {
	code, ok := codes[label]
	if !ok {
		options := make([]string, 0, len(codes))
		for k := range codes {
			options = append(options, k)
		}
		return 0, &ValidationError{
			Field:  field,
			Reason: "must be one of " + strings.Join(options, ", "),
		}
	}
	return code, nil
}
