package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Classifier is the minimal capability every pre-trained model exposes.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// ProbabilityEstimator is the optional class-probability capability. The
// returned slice is indexed by class label, so probs[1] is the probability of
// the positive class.
type ProbabilityEstimator interface {
	PredictProba(features []float64) ([]float64, error)
}

// DecisionScorer is the optional decision-margin capability.
type DecisionScorer interface {
	DecisionScore(features []float64) (float64, error)
}

// artifactFile is the on-disk JSON export of a trained model. The serialized
// format is owned by the training side; this package only decodes it.
type artifactFile struct {
	Type      string    `json:"type"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
	Label     int       `json:"label"`
}

// LoadArtifact decodes a serialized classifier from path.
func LoadArtifact(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var af artifactFile
	if err := json.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}

	switch af.Type {
	case "logistic":
		if len(af.Weights) == 0 {
			return nil, fmt.Errorf("model artifact %s has no weights", path)
		}
		return &LogisticModel{weights: af.Weights, intercept: af.Intercept}, nil
	case "linear_svm":
		if len(af.Weights) == 0 {
			return nil, fmt.Errorf("model artifact %s has no weights", path)
		}
		return &LinearSVM{weights: af.Weights, intercept: af.Intercept}, nil
	case "majority":
		if af.Label != 0 && af.Label != 1 {
			return nil, fmt.Errorf("model artifact %s has label %d outside {0,1}", path, af.Label)
		}
		return &MajorityModel{label: af.Label}, nil
	default:
		return nil, fmt.Errorf("model artifact %s has unknown type %q", path, af.Type)
	}
}

// LogisticModel is a logistic regression export. It exposes all three
// capabilities: label prediction, class probabilities and the raw margin.
type LogisticModel struct {
	weights   []float64
	intercept float64
}

func (m *LogisticModel) margin(features []float64) (float64, error) {
	return dot(m.weights, features, m.intercept)
}

func (m *LogisticModel) Predict(features []float64) (int, error) {
	p, err := m.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if p[1] >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	margin, err := m.margin(features)
	if err != nil {
		return nil, err
	}
	positive := sigmoid(margin)
	return []float64{1 - positive, positive}, nil
}

func (m *LogisticModel) DecisionScore(features []float64) (float64, error) {
	return m.margin(features)
}

// LinearSVM is a linear support vector machine export. It predicts labels and
// exposes the decision margin but has no native probability estimate.
type LinearSVM struct {
	weights   []float64
	intercept float64
}

func (m *LinearSVM) Predict(features []float64) (int, error) {
	score, err := m.DecisionScore(features)
	if err != nil {
		return 0, err
	}
	if score >= 0 {
		return 1, nil
	}
	return 0, nil
}

func (m *LinearSVM) DecisionScore(features []float64) (float64, error) {
	return dot(m.weights, features, m.intercept)
}

// MajorityModel always predicts a constant label. It exposes neither
// probabilities nor a decision score, so the adapter falls back to the
// default confidence.
type MajorityModel struct {
	label int
}

func (m *MajorityModel) Predict(features []float64) (int, error) {
	return m.label, nil
}

func dot(weights, features []float64, intercept float64) (float64, error) {
	if len(weights) != len(features) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features), len(weights))
	}
	sum := intercept
	for i, w := range weights {
		sum += w * features[i]
	}
	return sum, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
