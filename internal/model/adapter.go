package model

import (
	"fmt"
	"math"
)

type Disease string

const (
	DiseaseDiabetes Disease = "diabetes"
	DiseaseHeart    Disease = "heart"
)

// Human-readable outcome labels, one positive/negative pair per disease.
const (
	LabelDiabetic     = "Diabetic"
	LabelNotDiabetic  = "Not Diabetic"
	LabelHeartDisease = "Heart Disease Detected"
	LabelNoHeart      = "No Heart Disease"
)

// defaultConfidence is used when a classifier exposes neither probabilities
// nor a decision score.
const defaultConfidence = 0.8

// DiagnosisResult pairs the predicted outcome label with a confidence in [0,1].
type DiagnosisResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Positive reports whether the diagnosis is a disease-detected outcome.
func (d DiagnosisResult) Positive() bool {
	return d.Label == LabelDiabetic || d.Label == LabelHeartDisease
}

type loadedModel struct {
	classifier Classifier
	features   int
}

// Adapter wraps the two opaque pre-trained classifiers and normalizes their
// output into a DiagnosisResult. Predictions are pure functions of the input;
// there is nothing to retry.
type Adapter struct {
	models map[Disease]loadedModel
}

// NewAdapter loads both classifiers from the artifacts named in the manifest.
func NewAdapter(manifestPath string) (*Adapter, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	diabetes, err := LoadArtifact(manifest.Diabetes.Path)
	if err != nil {
		return nil, err
	}
	heart, err := LoadArtifact(manifest.Heart.Path)
	if err != nil {
		return nil, err
	}

	return NewAdapterWith(diabetes, manifest.Diabetes.Features, heart, manifest.Heart.Features), nil
}

// NewAdapterWith builds an adapter around already-constructed classifiers.
func NewAdapterWith(diabetes Classifier, diabetesFeatures int, heart Classifier, heartFeatures int) *Adapter {
	return &Adapter{
		models: map[Disease]loadedModel{
			DiseaseDiabetes: {classifier: diabetes, features: diabetesFeatures},
			DiseaseHeart:    {classifier: heart, features: heartFeatures},
		},
	}
}

// Predict runs the classifier for the given disease over an ordered feature
// vector and returns the labeled diagnosis with a confidence in [0,1].
func (a *Adapter) Predict(disease Disease, features []float64) (DiagnosisResult, error) {
	m, ok := a.models[disease]
	if !ok {
		return DiagnosisResult{}, &InvalidInputError{Reason: fmt.Sprintf("unknown disease type %q", disease)}
	}

	if len(features) != m.features {
		return DiagnosisResult{}, &InvalidInputError{
			Reason: fmt.Sprintf("expected %d features for %s, got %d", m.features, disease, len(features)),
		}
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return DiagnosisResult{}, &InvalidInputError{
				Reason: fmt.Sprintf("feature %d is not a finite number", i),
			}
		}
	}

	label, err := m.classifier.Predict(features)
	if err != nil {
		return DiagnosisResult{}, &InferenceError{Err: err}
	}
	if label != 0 && label != 1 {
		return DiagnosisResult{}, &InferenceError{Err: fmt.Errorf("classifier returned label %d outside {0,1}", label)}
	}

	confidence, err := confidenceFor(m.classifier, features, label)
	if err != nil {
		return DiagnosisResult{}, &InferenceError{Err: err}
	}

	return DiagnosisResult{
		Label:      labelString(disease, label),
		Confidence: clamp01(confidence),
	}, nil
}

// confidenceFor derives a confidence for the predicted label, in priority
// order: probability of the predicted class, sigmoid of the decision score,
// fixed default.
func confidenceFor(c Classifier, features []float64, label int) (float64, error) {
	if pe, ok := c.(ProbabilityEstimator); ok {
		probs, err := pe.PredictProba(features)
		if err != nil {
			return 0, err
		}
		if label >= len(probs) {
			return 0, fmt.Errorf("probability estimate has %d classes, predicted label is %d", len(probs), label)
		}
		return probs[label], nil
	}

	if ds, ok := c.(DecisionScorer); ok {
		score, err := ds.DecisionScore(features)
		if err != nil {
			return 0, err
		}
		return sigmoid(score), nil
	}

	return defaultConfidence, nil
}

func labelString(disease Disease, label int) string {
	if disease == DiseaseDiabetes {
		if label == 1 {
			return LabelDiabetic
		}
		return LabelNotDiabetic
	}
	if label == 1 {
		return LabelHeartDisease
	}
	return LabelNoHeart
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
