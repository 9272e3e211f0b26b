package report

import "dps.app/disease-prediction/internal/model"

// Patient identifies the report recipient.
type Patient struct {
	Name  string
	Email string
}

// Parameter is one row of the health parameter table.
type Parameter struct {
	Name        string
	Value       string
	NormalRange string
}

const disclaimer = "Disclaimer: This report is generated based on machine learning " +
	"predictions and should not be considered a substitute for professional medical " +
	"advice. Please consult with a qualified healthcare provider for proper diagnosis " +
	"and treatment."

// DiseaseTitle returns the report title prefix for a disease type.
func DiseaseTitle(disease model.Disease) string {
	if disease == model.DiseaseHeart {
		return "Heart Disease"
	}
	return "Diabetes"
}

// Recommendations returns the canned recommendation bullets for the given
// disease and outcome polarity.
func Recommendations(disease model.Disease, positive bool) []string {
	if disease == model.DiseaseDiabetes {
		if positive {
			return []string{
				"Monitor blood glucose levels regularly",
				"Follow a balanced diet low in refined carbohydrates",
				"Engage in regular physical activity",
				"Take prescribed medications as directed",
				"Schedule regular check-ups with your healthcare provider",
			}
		}
		return []string{
			"Maintain a healthy weight",
			"Eat a balanced diet rich in fruits, vegetables, and whole grains",
			"Exercise regularly (at least 150 minutes per week)",
			"Limit sugary drinks and processed foods",
			"Have your blood glucose checked annually",
		}
	}

	if positive {
		return []string{
			"Consult with a cardiologist promptly",
			"Take prescribed medications as directed",
			"Follow a heart-healthy diet low in sodium and saturated fats",
			"Engage in cardiac rehabilitation if recommended",
			"Monitor blood pressure and cholesterol regularly",
		}
	}
	return []string{
		"Maintain a heart-healthy diet rich in fruits, vegetables, and lean proteins",
		"Exercise regularly (at least 150 minutes per week)",
		"Avoid smoking and limit alcohol consumption",
		"Manage stress through relaxation techniques",
		"Schedule regular heart health check-ups",
	}
}
