package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is the prediction record store. It is safe for concurrent use: the
// underlying *sql.DB hands each request its own connection, and WAL mode lets
// readers proceed while a writer is active.
type Store struct {
	db *sql.DB
}

func New(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err = db.Exec("PRAGMA busy_timeout=10000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	store := &Store{db: db}
	if err = store.migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AppendDiabetes inserts a diabetes record and returns the stored row. The id
// and prediction_date are assigned by the database; the insert is atomic.
func (s *Store) AppendDiabetes(ctx context.Context, rec *DiabetesRecord) (*DiabetesRecord, error) {
	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO diabetes_predictions
		(name, sex, email, pregnancies, glucose, blood_pressure, skin_thickness,
		insulin, bmi, diabetes_pedigree, age, prediction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare diabetes insert: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, rec.Name, rec.Sex, rec.Email, rec.Pregnancies,
		rec.Glucose, rec.BloodPressure, rec.SkinThickness, rec.Insulin,
		rec.BMI, rec.DiabetesPedigree, rec.Age, rec.Prediction)
	if err != nil {
		return nil, fmt.Errorf("failed to execute diabetes insert: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.diabetesByID(ctx, id)
}

// AppendHeart inserts a heart disease record and returns the stored row.
func (s *Store) AppendHeart(ctx context.Context, rec *HeartRecord) (*HeartRecord, error) {
	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO heart_disease_predictions
		(name, email, age, sex, chest_pain_type, resting_bp, cholesterol, fasting_bs,
		resting_ecg, max_heart_rate, exercise_angina, oldpeak, st_slope, major_vessels,
		thalassemia, prediction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare heart insert: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, rec.Name, rec.Email, rec.Age, rec.Sex,
		rec.ChestPainType, rec.RestingBP, rec.Cholesterol, rec.FastingBS,
		rec.RestingECG, rec.MaxHeartRate, rec.ExerciseAngina, rec.Oldpeak,
		rec.STSlope, rec.MajorVessels, rec.Thalassemia, rec.Prediction)
	if err != nil {
		return nil, fmt.Errorf("failed to execute heart insert: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.heartByID(ctx, id)
}

const diabetesColumns = `id, name, sex, email, pregnancies, glucose, blood_pressure,
	skin_thickness, insulin, bmi, diabetes_pedigree, age, prediction, prediction_date`

const heartColumns = `id, name, email, age, sex, chest_pain_type, resting_bp, cholesterol,
	fasting_bs, resting_ecg, max_heart_rate, exercise_angina, oldpeak, st_slope,
	major_vessels, thalassemia, prediction, prediction_date`

func (s *Store) diabetesByID(ctx context.Context, id int64) (*DiabetesRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+diabetesColumns+" FROM diabetes_predictions WHERE id = ?", id)
	rec, err := scanDiabetes(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get diabetes record by id: %w", err)
	}
	return rec, nil
}

func (s *Store) heartByID(ctx context.Context, id int64) (*HeartRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+heartColumns+" FROM heart_disease_predictions WHERE id = ?", id)
	rec, err := scanHeart(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get heart record by id: %w", err)
	}
	return rec, nil
}

// DiabetesByEmail returns all diabetes records whose email exactly matches,
// newest first.
func (s *Store) DiabetesByEmail(ctx context.Context, email string) ([]DiabetesRecord, error) {
	return s.queryDiabetes(ctx,
		"SELECT "+diabetesColumns+` FROM diabetes_predictions
		WHERE email = ? ORDER BY prediction_date DESC, id DESC`, email)
}

// AllDiabetes returns every diabetes record, newest first.
func (s *Store) AllDiabetes(ctx context.Context) ([]DiabetesRecord, error) {
	return s.queryDiabetes(ctx,
		"SELECT "+diabetesColumns+` FROM diabetes_predictions
		ORDER BY prediction_date DESC, id DESC`)
}

// HeartByEmail returns all heart disease records whose email exactly matches,
// newest first.
func (s *Store) HeartByEmail(ctx context.Context, email string) ([]HeartRecord, error) {
	return s.queryHeart(ctx,
		"SELECT "+heartColumns+` FROM heart_disease_predictions
		WHERE email = ? ORDER BY prediction_date DESC, id DESC`, email)
}

// AllHeart returns every heart disease record, newest first.
func (s *Store) AllHeart(ctx context.Context) ([]HeartRecord, error) {
	return s.queryHeart(ctx,
		"SELECT "+heartColumns+` FROM heart_disease_predictions
		ORDER BY prediction_date DESC, id DESC`)
}

func (s *Store) queryDiabetes(ctx context.Context, query string, args ...any) ([]DiabetesRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query diabetes records: %w", err)
	}
	defer rows.Close()

	var records []DiabetesRecord
	for rows.Next() {
		rec, err := scanDiabetes(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan diabetes row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *Store) queryHeart(ctx context.Context, query string, args ...any) ([]HeartRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query heart records: %w", err)
	}
	defer rows.Close()

	var records []HeartRecord
	for rows.Next() {
		rec, err := scanHeart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan heart row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDiabetes(row rowScanner) (*DiabetesRecord, error) {
	var rec DiabetesRecord
	err := row.Scan(&rec.ID, &rec.Name, &rec.Sex, &rec.Email, &rec.Pregnancies,
		&rec.Glucose, &rec.BloodPressure, &rec.SkinThickness, &rec.Insulin,
		&rec.BMI, &rec.DiabetesPedigree, &rec.Age, &rec.Prediction, &rec.PredictionDate)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanHeart(row rowScanner) (*HeartRecord, error) {
	var rec HeartRecord
	err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Age, &rec.Sex,
		&rec.ChestPainType, &rec.RestingBP, &rec.Cholesterol, &rec.FastingBS,
		&rec.RestingECG, &rec.MaxHeartRate, &rec.ExerciseAngina, &rec.Oldpeak,
		&rec.STSlope, &rec.MajorVessels, &rec.Thalassemia, &rec.Prediction,
		&rec.PredictionDate)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
