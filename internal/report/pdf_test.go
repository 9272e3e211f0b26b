package report

import (
	"bytes"
	"testing"

	"dps.app/disease-prediction/internal/model"
)

func testParams() []Parameter {
	return []Parameter{
		{Name: "Glucose", Value: "120", NormalRange: "70-99 mg/dL (fasting)"},
		{Name: "BMI", Value: "25.5", NormalRange: "18.5-24.9"},
	}
}

func TestBuildProducesPDF(t *testing.T) {
	b := NewBuilder()
	patient := Patient{Name: "Jane Doe", Email: "jane@gmail.com"}
	diagnosis := model.DiagnosisResult{Label: model.LabelDiabetic, Confidence: 0.93}

	doc, reportID, err := b.Build(patient, diagnosis, model.DiseaseDiabetes, testParams())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
	if len(reportID) != 8 {
		t.Errorf("report id %q has length %d, want 8", reportID, len(reportID))
	}
}

func TestBuildGeneratesFreshReportIDs(t *testing.T) {
	b := NewBuilder()
	patient := Patient{Name: "John Smith", Email: "john@outlook.com"}
	diagnosis := model.DiagnosisResult{Label: model.LabelNoHeart, Confidence: 0.8}

	_, first, err := b.Build(patient, diagnosis, model.DiseaseHeart, testParams())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, second, err := b.Build(patient, diagnosis, model.DiseaseHeart, testParams())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if first == second {
		t.Errorf("two builds produced the same report id %q", first)
	}
}

func TestRecommendationsVaryByOutcome(t *testing.T) {
	for _, disease := range []model.Disease{model.DiseaseDiabetes, model.DiseaseHeart} {
		positive := Recommendations(disease, true)
		negative := Recommendations(disease, false)
		if len(positive) == 0 || len(negative) == 0 {
			t.Fatalf("%s: empty recommendation list", disease)
		}
		if positive[0] == negative[0] {
			t.Errorf("%s: positive and negative recommendations are identical", disease)
		}
	}
}
