package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"dps.app/disease-prediction/internal/model"
	"dps.app/disease-prediction/internal/store"
)

// HistoryStore is the query surface the history service needs.
type HistoryStore interface {
	DiabetesByEmail(ctx context.Context, email string) ([]store.DiabetesRecord, error)
	HeartByEmail(ctx context.Context, email string) ([]store.HeartRecord, error)
	AllDiabetes(ctx context.Context) ([]store.DiabetesRecord, error)
	AllHeart(ctx context.Context) ([]store.HeartRecord, error)
}

// HistoryStats summarizes a user's prediction history for the distribution
// chart: how many runs, how many positive outcomes, and the positive rate as
// a percentage.
type HistoryStats struct {
	Total        int     `json:"total"`
	Positive     int     `json:"positive"`
	Negative     int     `json:"negative"`
	PositiveRate float64 `json:"positive_rate"`
}

// HistoryService answers per-email history lookups, full-table listings, CSV
// exports and distribution stats.
type HistoryService struct {
	store HistoryStore
	log   *zap.SugaredLogger
}

func NewHistoryService(store HistoryStore, log *zap.SugaredLogger) *HistoryService {
	return &HistoryService{store: store, log: log}
}

func (s *HistoryService) DiabetesHistory(ctx context.Context, email string) ([]store.DiabetesRecord, error) {
	if err := validateHistoryEmail(email); err != nil {
		return nil, err
	}
	return s.store.DiabetesByEmail(ctx, email)
}

func (s *HistoryService) HeartHistory(ctx context.Context, email string) ([]store.HeartRecord, error) {
	if err := validateHistoryEmail(email); err != nil {
		return nil, err
	}
	return s.store.HeartByEmail(ctx, email)
}

func (s *HistoryService) AllDiabetes(ctx context.Context) ([]store.DiabetesRecord, error) {
	return s.store.AllDiabetes(ctx)
}

func (s *HistoryService) AllHeart(ctx context.Context) ([]store.HeartRecord, error) {
	return s.store.AllHeart(ctx)
}

// DiabetesStats counts positive and negative outcomes in a user's diabetes
// history.
func (s *HistoryService) DiabetesStats(ctx context.Context, email string) (HistoryStats, error) {
	records, err := s.DiabetesHistory(ctx, email)
	if err != nil {
		return HistoryStats{}, err
	}
	positive := 0
	for _, rec := range records {
		if rec.Prediction == model.LabelDiabetic {
			positive++
		}
	}
	return newStats(len(records), positive), nil
}

// HeartStats counts positive and negative outcomes in a user's heart disease
// history.
func (s *HistoryService) HeartStats(ctx context.Context, email string) (HistoryStats, error) {
	records, err := s.HeartHistory(ctx, email)
	if err != nil {
		return HistoryStats{}, err
	}
	positive := 0
	for _, rec := range records {
		if rec.Prediction == model.LabelHeartDisease {
			positive++
		}
	}
	return newStats(len(records), positive), nil
}

func newStats(total, positive int) HistoryStats {
	stats := HistoryStats{Total: total, Positive: positive, Negative: total - positive}
	if total > 0 {
		stats.PositiveRate = float64(positive) / float64(total) * 100
	}
	return stats
}

const timeLayout = "2006-01-02 15:04:05"

// DiabetesCSV renders diabetes history rows as a CSV export.
func DiabetesCSV(records []store.DiabetesRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "sex", "email", "pregnancies", "glucose",
		"blood_pressure", "skin_thickness", "insulin", "bmi", "diabetes_pedigree",
		"age", "prediction", "prediction_date"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Name,
			rec.Sex,
			rec.Email,
			strconv.Itoa(rec.Pregnancies),
			formatFloat(rec.Glucose),
			formatFloat(rec.BloodPressure),
			formatFloat(rec.SkinThickness),
			formatFloat(rec.Insulin),
			formatFloat(rec.BMI),
			formatFloat(rec.DiabetesPedigree),
			strconv.Itoa(rec.Age),
			rec.Prediction,
			rec.PredictionDate.Format(timeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// HeartCSV renders heart disease history rows as a CSV export.
func HeartCSV(records []store.HeartRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "email", "age", "sex", "chest_pain_type",
		"resting_bp", "cholesterol", "fasting_bs", "resting_ecg", "max_heart_rate",
		"exercise_angina", "oldpeak", "st_slope", "major_vessels", "thalassemia",
		"prediction", "prediction_date"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Name,
			rec.Email,
			strconv.Itoa(rec.Age),
			rec.Sex,
			rec.ChestPainType,
			formatFloat(rec.RestingBP),
			formatFloat(rec.Cholesterol),
			rec.FastingBS,
			rec.RestingECG,
			strconv.Itoa(rec.MaxHeartRate),
			rec.ExerciseAngina,
			formatFloat(rec.Oldpeak),
			rec.STSlope,
			strconv.Itoa(rec.MajorVessels),
			rec.Thalassemia,
			rec.Prediction,
			rec.PredictionDate.Format(timeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
