package model

import (
	"errors"
	"math"
	"testing"
)

// probClassifier exposes the full probability capability.
type probClassifier struct {
	label int
	probs []float64
}

func (c *probClassifier) Predict(features []float64) (int, error) { return c.label, nil }
func (c *probClassifier) PredictProba(features []float64) ([]float64, error) {
	return c.probs, nil
}

// scoreClassifier exposes only a decision margin.
type scoreClassifier struct {
	score float64
}

func (c *scoreClassifier) Predict(features []float64) (int, error) {
	if c.score >= 0 {
		return 1, nil
	}
	return 0, nil
}
func (c *scoreClassifier) DecisionScore(features []float64) (float64, error) {
	return c.score, nil
}

// labelClassifier exposes nothing beyond the label.
type labelClassifier struct {
	label int
}

func (c *labelClassifier) Predict(features []float64) (int, error) { return c.label, nil }

// failingClassifier always errors.
type failingClassifier struct{}

func (c *failingClassifier) Predict(features []float64) (int, error) {
	return 0, errors.New("model exploded")
}

func diabetesFeatures() []float64 {
	return []float64{2, 120, 70, 20, 80, 25.5, 0.5, 33}
}

func heartFeatures() []float64 {
	return []float64{50, 1, 2, 120, 250, 0, 0, 150, 0, 1.0, 1, 0, 2}
}

func TestAdapterProbabilityConfidence(t *testing.T) {
	tests := []struct {
		name       string
		label      int
		probs      []float64
		wantLabel  string
		wantConfid float64
	}{
		{"positive", 1, []float64{0.07, 0.93}, LabelDiabetic, 0.93},
		{"negative", 0, []float64{0.95, 0.05}, LabelNotDiabetic, 0.95},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter := NewAdapterWith(&probClassifier{label: tc.label, probs: tc.probs}, 8, &labelClassifier{}, 13)
			diag, err := adapter.Predict(DiseaseDiabetes, diabetesFeatures())
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if diag.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", diag.Label, tc.wantLabel)
			}
			if math.Abs(diag.Confidence-tc.wantConfid) > 1e-9 {
				t.Errorf("confidence = %v, want %v", diag.Confidence, tc.wantConfid)
			}
		})
	}
}

func TestAdapterDecisionScoreConfidence(t *testing.T) {
	adapter := NewAdapterWith(&scoreClassifier{score: 2.0}, 8, &labelClassifier{}, 13)
	diag, err := adapter.Predict(DiseaseDiabetes, diabetesFeatures())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if diag.Label != LabelDiabetic {
		t.Errorf("label = %q, want %q", diag.Label, LabelDiabetic)
	}
	want := 1 / (1 + math.Exp(-2.0))
	if math.Abs(diag.Confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want sigmoid(2.0) = %v", diag.Confidence, want)
	}
}

func TestAdapterDefaultConfidence(t *testing.T) {
	adapter := NewAdapterWith(&labelClassifier{label: 0}, 8, &labelClassifier{}, 13)
	diag, err := adapter.Predict(DiseaseDiabetes, diabetesFeatures())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if diag.Label != LabelNotDiabetic {
		t.Errorf("label = %q, want %q", diag.Label, LabelNotDiabetic)
	}
	if diag.Confidence != 0.8 {
		t.Errorf("confidence = %v, want default 0.8", diag.Confidence)
	}
}

func TestAdapterConfidenceAlwaysInRange(t *testing.T) {
	classifiers := []Classifier{
		&probClassifier{label: 1, probs: []float64{0, 1}},
		&scoreClassifier{score: -50},
		&scoreClassifier{score: 50},
		&labelClassifier{label: 1},
	}
	for _, c := range classifiers {
		adapter := NewAdapterWith(c, 8, &labelClassifier{}, 13)
		diag, err := adapter.Predict(DiseaseDiabetes, diabetesFeatures())
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		if diag.Confidence < 0 || diag.Confidence > 1 {
			t.Errorf("confidence %v outside [0,1]", diag.Confidence)
		}
	}
}

func TestAdapterHeartLabels(t *testing.T) {
	adapter := NewAdapterWith(&labelClassifier{}, 8, &probClassifier{label: 1, probs: []float64{0.2, 0.8}}, 13)
	diag, err := adapter.Predict(DiseaseHeart, heartFeatures())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if diag.Label != LabelHeartDisease {
		t.Errorf("label = %q, want %q", diag.Label, LabelHeartDisease)
	}
}

func TestAdapterRejectsWrongVectorLength(t *testing.T) {
	adapter := NewAdapterWith(&labelClassifier{}, 8, &labelClassifier{}, 13)
	_, err := adapter.Predict(DiseaseDiabetes, []float64{1, 2, 3})
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestAdapterRejectsNonFiniteFeatures(t *testing.T) {
	adapter := NewAdapterWith(&labelClassifier{}, 8, &labelClassifier{}, 13)
	features := diabetesFeatures()
	features[2] = math.NaN()
	_, err := adapter.Predict(DiseaseDiabetes, features)
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestAdapterRejectsUnknownDisease(t *testing.T) {
	adapter := NewAdapterWith(&labelClassifier{}, 8, &labelClassifier{}, 13)
	_, err := adapter.Predict(Disease("lungs"), diabetesFeatures())
	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestAdapterWrapsClassifierFailure(t *testing.T) {
	adapter := NewAdapterWith(&failingClassifier{}, 8, &labelClassifier{}, 13)
	_, err := adapter.Predict(DiseaseDiabetes, diabetesFeatures())
	var infErr *InferenceError
	if !errors.As(err, &infErr) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
}
