package notify

import (
	"fmt"

	"dps.app/disease-prediction/internal/core"
	"dps.app/disease-prediction/internal/model"
)

const (
	diabetesSubject = "Your Diabetes Prediction Results"
	heartSubject    = "Your Heart Disease Prediction Results"

	diabetesBanner = "https://d2jx2rerrg6sh3.cloudfront.net/images/Article_Images/ImageForArticle_22744_16565132428524067.jpg"
	heartBanner    = "https://www.labiotech.eu/wp-content/uploads/2023/05/Cure-for-cardiovascular-diseases.jpg"
)

const diabetesTips = `
<p><strong><u>Tips for Diabetic Patients:</u></strong></p>
<ol>
	<li><strong>Monitor Blood Sugar Levels:</strong> regularly check your blood glucose levels as advised by your healthcare provider.</li>
	<li><strong>Medication Adherence:</strong> take medications as prescribed by your healthcare provider.</li>
	<li><strong>Balanced Nutrition:</strong> adopt a diet rich in whole grains, lean proteins, fruits, and vegetables.</li>
	<li><strong>Regular Exercise:</strong> engage in physical activity like brisk walking, swimming, or cycling.</li>
	<li><strong>Mindful Stress Management:</strong> practice stress-reducing techniques, such as mindfulness, meditation, or yoga.</li>
</ol>
<p><strong><u>Tips for Diabetes Prevention:</u></strong></p>
<ol>
	<li><strong>Healthy Dietary Choices:</strong> consume a well-balanced diet and limit processed foods, sugary drinks, and high-fat items.</li>
	<li><strong>Regular Physical Activity:</strong> maintain a healthy weight and improve insulin sensitivity through exercise.</li>
	<li><strong>Weight Management:</strong> aim for a BMI within the normal range; even a small reduction in weight lowers the risk.</li>
	<li><strong>Reduce Sedentary Time:</strong> minimize sitting time and incorporate more movement into your daily routine.</li>
	<li><strong>Routine Health Check-ups:</strong> schedule regular check-ups to detect potential issues early.</li>
</ol>
<p>These tips should be personalized based on individual health conditions and preferences. Consultation with healthcare professionals is crucial for tailored advice and management.</p>`

const heartTips = `
<p><strong><u>Tips for Heart Disease Patients:</u></strong></p>
<ol>
	<li><strong>Heart-Healthy Diet:</strong> choose a diet rich in fruits, vegetables, whole grains, and lean proteins; limit saturated and trans fats, cholesterol, and sodium.</li>
	<li><strong>Regular Exercise:</strong> engage in aerobic exercise for at least 150 minutes per week and include strength training.</li>
	<li><strong>Manage Blood Pressure:</strong> monitor blood pressure regularly and follow your healthcare provider's recommendations.</li>
	<li><strong>Quit Smoking:</strong> smoking is a major risk factor for heart disease.</li>
	<li><strong>Manage Stress:</strong> practice stress-reducing techniques, such as mindfulness, meditation, or yoga.</li>
</ol>
<p><strong><u>Tips for Heart Disease Prevention:</u></strong></p>
<ol>
	<li><strong>Regular Health Check-ups:</strong> monitor cholesterol levels, blood pressure, and other cardiovascular risk factors.</li>
	<li><strong>Limit Alcohol Intake:</strong> if you drink alcohol, do so in moderation.</li>
	<li><strong>Maintain Optimal Blood Sugar Levels:</strong> diabetes can contribute to heart disease.</li>
	<li><strong>Stay Hydrated:</strong> maintain proper hydration for overall health and heart function.</li>
</ol>
<p>These tips should be personalized based on individual health conditions and preferences. Consultation with healthcare professionals is crucial for tailored advice and management.</p>`

func subjectFor(disease model.Disease) string {
	if disease == model.DiseaseHeart {
		return heartSubject
	}
	return diabetesSubject
}

// htmlBody composes the HTML message: greeting, colored diagnosis line, the
// disease-specific educational block, a link back to the web application, and
// the footer disclaimer.
func htmlBody(n core.Notification, webAppURL string) string {
	color := "red"
	if !n.Diagnosis.Positive() {
		color = "green"
	}

	banner, tips := diabetesBanner, diabetesTips
	if n.Disease == model.DiseaseHeart {
		banner, tips = heartBanner, heartTips
	}

	return fmt.Sprintf(`<html>
<head>
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; }
		.container { margin: 0 auto; max-width: 600px; padding: 20px; }
		.result { font-size: 18px; margin: 20px 0; }
		.footer { font-size: 12px; color: #6c757d; margin-top: 30px; }
	</style>
</head>
<body>
	<div class="container">
		<p>Dear %s,</p>
		<p>Thank you for using our Disease Prediction System. Below is your test result:</p>
		<div class="result">
			<p><span style="color:%s; font-weight:bold; font-size:20px;">%s</span></p>
		</div>
		<img src="%s" alt="Banner Image" style="max-width: 100%%; height: auto; margin-top: 20px;">
		%s
		<p>Please find attached a detailed PDF report of your results.</p>
		<p>Visit our web application for more information: <a href="%s">%s</a></p>
		<div class="footer">
			<p>This is an automated message. Please do not reply.</p>
			<p>Note: This prediction is based on machine learning models and should not replace professional medical advice.</p>
		</div>
	</div>
</body>
</html>`, n.PatientName, color, n.Diagnosis.Label, banner, tips, webAppURL, webAppURL)
}
