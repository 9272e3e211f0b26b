package store

import "time"

// DiabetesRecord is one persisted outcome of a diabetes prediction run.
// Records are append-only; there is no update or delete path.
type DiabetesRecord struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Sex              string    `json:"sex"`
	Email            string    `json:"email"`
	Pregnancies      int       `json:"pregnancies"`
	Glucose          float64   `json:"glucose"`
	BloodPressure    float64   `json:"blood_pressure"`
	SkinThickness    float64   `json:"skin_thickness"`
	Insulin          float64   `json:"insulin"`
	BMI              float64   `json:"bmi"`
	DiabetesPedigree float64   `json:"diabetes_pedigree"`
	Age              int       `json:"age"`
	Prediction       string    `json:"prediction"`
	PredictionDate   time.Time `json:"prediction_date"`
}

// HeartRecord is one persisted outcome of a heart disease prediction run.
// Categorical fields hold the human-readable labels the user selected, not
// the numeric codes fed to the classifier.
type HeartRecord struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            int       `json:"age"`
	Sex            string    `json:"sex"`
	ChestPainType  string    `json:"chest_pain_type"`
	RestingBP      float64   `json:"resting_bp"`
	Cholesterol    float64   `json:"cholesterol"`
	FastingBS      string    `json:"fasting_bs"`
	RestingECG     string    `json:"resting_ecg"`
	MaxHeartRate   int       `json:"max_heart_rate"`
	ExerciseAngina string    `json:"exercise_angina"`
	Oldpeak        float64   `json:"oldpeak"`
	STSlope        string    `json:"st_slope"`
	MajorVessels   int       `json:"major_vessels"`
	Thalassemia    string    `json:"thalassemia"`
	Prediction     string    `json:"prediction"`
	PredictionDate time.Time `json:"prediction_date"`
}
