package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDiabetes(email string) *DiabetesRecord {
	return &DiabetesRecord{
		Name:             "Jane Doe",
		Sex:              "Female",
		Email:            email,
		Pregnancies:      2,
		Glucose:          120,
		BloodPressure:    70,
		SkinThickness:    20,
		Insulin:          80,
		BMI:              25.5,
		DiabetesPedigree: 0.5,
		Age:              33,
		Prediction:       "Not Diabetic",
	}
}

func sampleHeart(email string) *HeartRecord {
	return &HeartRecord{
		Name:           "John Smith",
		Email:          email,
		Age:            54,
		Sex:            "Male",
		ChestPainType:  "Typical Angina",
		RestingBP:      130,
		Cholesterol:    250,
		FastingBS:      "Less than 120 mg/dl",
		RestingECG:     "Normal",
		MaxHeartRate:   150,
		ExerciseAngina: "No",
		Oldpeak:        1.2,
		STSlope:        "Flat",
		MajorVessels:   0,
		Thalassemia:    "Normal",
		Prediction:     "No Heart Disease",
	}
}

func TestAppendDiabetesAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stored, err := s.AppendDiabetes(ctx, sampleDiabetes("jane@gmail.com"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID == 0 {
		t.Error("expected non-zero id")
	}
	if stored.PredictionDate.IsZero() {
		t.Error("expected store-generated timestamp")
	}
	if stored.Prediction != "Not Diabetic" {
		t.Errorf("prediction = %q", stored.Prediction)
	}
}

func TestDiabetesByEmailFiltersAndOrders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AppendDiabetes(ctx, sampleDiabetes("jane@gmail.com"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := s.AppendDiabetes(ctx, sampleDiabetes("jane@gmail.com"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.AppendDiabetes(ctx, sampleDiabetes("other@yahoo.com")); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := s.DiabetesByEmail(ctx, "jane@gmail.com")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first; same-second inserts fall back to id order.
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("order = [%d, %d], want [%d, %d]",
			records[0].ID, records[1].ID, second.ID, first.ID)
	}
	for _, rec := range records {
		if rec.Email != "jane@gmail.com" {
			t.Errorf("record %d has email %q", rec.ID, rec.Email)
		}
	}
}

func TestDiabetesByEmailExactMatchOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AppendDiabetes(ctx, sampleDiabetes("jane@gmail.com")); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := s.DiabetesByEmail(ctx, "jane@gmail.co")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for a non-matching email, want 0", len(records))
	}
}

func TestAppendAndQueryHeart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stored, err := s.AppendHeart(ctx, sampleHeart("john@outlook.com"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID == 0 {
		t.Error("expected non-zero id")
	}

	records, err := s.HeartByEmail(ctx, "john@outlook.com")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ChestPainType != "Typical Angina" {
		t.Errorf("chest_pain_type = %q", records[0].ChestPainType)
	}

	all, err := s.AllHeart(ctx)
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d records from AllHeart, want 1", len(all))
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migrate.db")
	ctx := context.Background()

	s, err := New(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	version, err := s.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("schema version: %v", err)
	}
	want := migrations[len(migrations)-1].version
	if version != want {
		t.Fatalf("schema version = %d, want %d", version, want)
	}
	if _, err := s.AppendDiabetes(ctx, sampleDiabetes("jane@gmail.com")); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	// Re-opening re-runs the migration pass; nothing may change.
	s2, err := New(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	version, err = s2.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("schema version after reopen: %v", err)
	}
	if version != want {
		t.Errorf("schema version after reopen = %d, want %d", version, want)
	}

	records, err := s2.AllDiabetes(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records after reopen, want 1", len(records))
	}
}
