package core

import (
	"strconv"

	"dps.app/disease-prediction/internal/report"
	"dps.app/disease-prediction/internal/store"
)

// DiabetesRequest carries the diabetes prediction form fields.
type DiabetesRequest struct {
	Name             string  `json:"name"`
	Sex              string  `json:"sex"`
	Email            string  `json:"email"`
	Pregnancies      int     `json:"pregnancies"`
	Glucose          float64 `json:"glucose"`
	BloodPressure    float64 `json:"blood_pressure"`
	SkinThickness    float64 `json:"skin_thickness"`
	Insulin          float64 `json:"insulin"`
	BMI              float64 `json:"bmi"`
	DiabetesPedigree float64 `json:"diabetes_pedigree"`
	Age              int     `json:"age"`
}

func (r DiabetesRequest) validate() error {
	if err := validateIdentity(r.Name, r.Email); err != nil {
		return err
	}
	if _, ok := sexCodes[r.Sex]; !ok {
		return &ValidationError{Field: "sex", Reason: "must be Male or Female"}
	}
	if r.Pregnancies < 0 {
		return &ValidationError{Field: "pregnancies", Reason: "must not be negative"}
	}
	return nil
}

// featureVector returns the 8 features in the exact order the diabetes
// classifier was trained on. Sex is recorded but not part of the vector.
func (r DiabetesRequest) featureVector() []float64 {
	return []float64{
		float64(r.Pregnancies),
		r.Glucose,
		r.BloodPressure,
		r.SkinThickness,
		r.Insulin,
		r.BMI,
		r.DiabetesPedigree,
		float64(r.Age),
	}
}

func (r DiabetesRequest) record(prediction string) *store.DiabetesRecord {
	return &store.DiabetesRecord{
		Name:             r.Name,
		Sex:              r.Sex,
		Email:            r.Email,
		Pregnancies:      r.Pregnancies,
		Glucose:          r.Glucose,
		BloodPressure:    r.BloodPressure,
		SkinThickness:    r.SkinThickness,
		Insulin:          r.Insulin,
		BMI:              r.BMI,
		DiabetesPedigree: r.DiabetesPedigree,
		Age:              r.Age,
		Prediction:       prediction,
	}
}

func (r DiabetesRequest) parameters() []report.Parameter {
	return []report.Parameter{
		{Name: "Gender", Value: r.Sex, NormalRange: "Male/Female"},
		{Name: "Pregnancies", Value: strconv.Itoa(r.Pregnancies), NormalRange: "N/A"},
		{Name: "Glucose", Value: formatFloat(r.Glucose), NormalRange: "70-99 mg/dL (fasting)"},
		{Name: "Blood Pressure", Value: formatFloat(r.BloodPressure), NormalRange: "< 120/80 mmHg"},
		{Name: "Skin Thickness", Value: formatFloat(r.SkinThickness), NormalRange: "Variable"},
		{Name: "Insulin", Value: formatFloat(r.Insulin), NormalRange: "< 25 mIU/L (fasting)"},
		{Name: "BMI", Value: formatFloat(r.BMI), NormalRange: "18.5-24.9"},
		{Name: "Diabetes Pedigree", Value: formatFloat(r.DiabetesPedigree), NormalRange: "Variable"},
		{Name: "Age", Value: strconv.Itoa(r.Age), NormalRange: "N/A"},
	}
}

// HeartRequest carries the heart disease prediction form fields. Categorical
// fields use the human-readable labels shown in the form.
type HeartRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	ChestPainType  string  `json:"chest_pain_type"`
	RestingBP      float64 `json:"resting_bp"`
	Cholesterol    float64 `json:"cholesterol"`
	FastingBS      string  `json:"fasting_bs"`
	RestingECG     string  `json:"resting_ecg"`
	MaxHeartRate   int     `json:"max_heart_rate"`
	ExerciseAngina string  `json:"exercise_angina"`
	Oldpeak        float64 `json:"oldpeak"`
	STSlope        string  `json:"st_slope"`
	MajorVessels   int     `json:"major_vessels"`
	Thalassemia    string  `json:"thalassemia"`
}

func (r HeartRequest) validate() error {
	return validateIdentity(r.Name, r.Email)
}

// featureVector maps the categorical labels to their training codes and
// returns the 13 features in the exact order the heart classifier expects.
func (r HeartRequest) featureVector() ([]float64, error) {
	fields := []struct {
		name  string
		label string
		codes map[string]float64
	}{
		{"sex", r.Sex, sexCodes},
		{"chest_pain_type", r.ChestPainType, chestPainCodes},
		{"fasting_bs", r.FastingBS, fastingBSCodes},
		{"resting_ecg", r.RestingECG, restingECGCodes},
		{"exercise_angina", r.ExerciseAngina, exerciseAnginaCodes},
		{"st_slope", r.STSlope, stSlopeCodes},
		{"thalassemia", r.Thalassemia, thalassemiaCodes},
	}
	codes := make(map[string]float64, len(fields))
	for _, f := range fields {
		code, err := categoryCode(f.name, f.label, f.codes)
		if err != nil {
			return nil, err
		}
		codes[f.name] = code
	}

	return []float64{
		float64(r.Age),
		codes["sex"],
		codes["chest_pain_type"],
		r.RestingBP,
		r.Cholesterol,
		codes["fasting_bs"],
		codes["resting_ecg"],
		float64(r.MaxHeartRate),
		codes["exercise_angina"],
		r.Oldpeak,
		codes["st_slope"],
		float64(r.MajorVessels),
		codes["thalassemia"],
	}, nil
}

func (r HeartRequest) record(prediction string) *store.HeartRecord {
	return &store.HeartRecord{
		Name:           r.Name,
		Email:          r.Email,
		Age:            r.Age,
		Sex:            r.Sex,
		ChestPainType:  r.ChestPainType,
		RestingBP:      r.RestingBP,
		Cholesterol:    r.Cholesterol,
		FastingBS:      r.FastingBS,
		RestingECG:     r.RestingECG,
		MaxHeartRate:   r.MaxHeartRate,
		ExerciseAngina: r.ExerciseAngina,
		Oldpeak:        r.Oldpeak,
		STSlope:        r.STSlope,
		MajorVessels:   r.MajorVessels,
		Thalassemia:    r.Thalassemia,
		Prediction:     prediction,
	}
}

func (r HeartRequest) parameters() []report.Parameter {
	return []report.Parameter{
		{Name: "Age", Value: strconv.Itoa(r.Age), NormalRange: "N/A"},
		{Name: "Sex", Value: r.Sex, NormalRange: "N/A"},
		{Name: "Chest Pain Type", Value: r.ChestPainType, NormalRange: "N/A"},
		{Name: "Resting BP", Value: formatFloat(r.RestingBP), NormalRange: "< 120/80 mmHg"},
		{Name: "Cholesterol", Value: formatFloat(r.Cholesterol), NormalRange: "< 200 mg/dL"},
		{Name: "Fasting Blood Sugar", Value: r.FastingBS, NormalRange: "< 100 mg/dL"},
		{Name: "Resting ECG", Value: r.RestingECG, NormalRange: "Normal"},
		{Name: "Max Heart Rate", Value: strconv.Itoa(r.MaxHeartRate), NormalRange: "220 - age"},
		{Name: "Exercise Angina", Value: r.ExerciseAngina, NormalRange: "No"},
		{Name: "ST Depression", Value: formatFloat(r.Oldpeak), NormalRange: "N/A"},
		{Name: "ST Slope", Value: r.STSlope, NormalRange: "N/A"},
		{Name: "Major Vessels", Value: strconv.Itoa(r.MajorVessels), NormalRange: "0-3"},
		{Name: "Thalassemia", Value: r.Thalassemia, NormalRange: "Normal"},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
