package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"dps.app/disease-prediction/internal/metrics"
	"dps.app/disease-prediction/internal/model"
	"dps.app/disease-prediction/internal/report"
	"dps.app/disease-prediction/internal/store"
)

// Stage names the pipeline states a run moves through. A run that fails
// terminates with the last stage it completed and a non-nil Outcome.Err.
type Stage string

const (
	StageCollecting Stage = "collecting"
	StageValidated  Stage = "validated"
	StageInferred   Stage = "inferred"
	StagePersisted  Stage = "persisted"
	StageNotified   Stage = "notified"
)

// Outcome is the result of one pipeline run. Diagnosis stays set even when a
// later stage fails, so a storage or notification error never loses the
// result already produced.
type Outcome struct {
	Disease   model.Disease          `json:"disease"`
	Stage     Stage                  `json:"stage"`
	Diagnosis *model.DiagnosisResult `json:"diagnosis,omitempty"`
	RecordID  int64                  `json:"record_id,omitempty"`
	ReportID  string                 `json:"report_id,omitempty"`
	EmailSent bool                   `json:"email_sent"`

	Err error `json:"-"`
}

// RecordStore is the append surface the pipeline needs from the record store.
type RecordStore interface {
	AppendDiabetes(ctx context.Context, rec *store.DiabetesRecord) (*store.DiabetesRecord, error)
	AppendHeart(ctx context.Context, rec *store.HeartRecord) (*store.HeartRecord, error)
}

// Notification is everything the notifier needs to compose the result email.
type Notification struct {
	Recipient   string
	PatientName string
	Disease     model.Disease
	Diagnosis   model.DiagnosisResult
	Report      []byte
	ReportID    string
}

// Notifier dispatches the result email. A nil Notifier disables the
// notification stage entirely.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// PredictionService orchestrates validate -> infer -> persist -> report ->
// notify for each disease type.
type PredictionService struct {
	records  RecordStore
	adapter  *model.Adapter
	reports  *report.Builder
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewPredictionService(records RecordStore, adapter *model.Adapter, reports *report.Builder, notifier Notifier, log *zap.SugaredLogger) *PredictionService {
	return &PredictionService{
		records:  records,
		adapter:  adapter,
		reports:  reports,
		notifier: notifier,
		log:      log,
	}
}

// PredictDiabetes runs the full pipeline for a diabetes form submission.
func (s *PredictionService) PredictDiabetes(ctx context.Context, req DiabetesRequest) Outcome {
	started := time.Now()
	out := Outcome{Disease: model.DiseaseDiabetes, Stage: StageCollecting}

	if err := req.validate(); err != nil {
		out.Err = err
		s.observe(out, started)
		return out
	}
	out.Stage = StageValidated

	diag, err := s.adapter.Predict(model.DiseaseDiabetes, req.featureVector())
	if err != nil {
		out.Err = err
		s.observe(out, started)
		return out
	}
	out.Diagnosis = &diag
	out.Stage = StageInferred

	stored, err := s.records.AppendDiabetes(ctx, req.record(diag.Label))
	if err != nil {
		// The diagnosis is already in the outcome; nothing to roll back.
		out.Err = &StorageError{Err: err}
		s.log.Errorw("failed to store diabetes prediction", "email", req.Email, "error", err)
		s.observe(out, started)
		return out
	}
	out.RecordID = stored.ID
	out.Stage = StagePersisted

	s.notify(ctx, &out, Notification{
		Recipient:   req.Email,
		PatientName: req.Name,
		Disease:     model.DiseaseDiabetes,
		Diagnosis:   diag,
	}, report.Patient{Name: req.Name, Email: req.Email}, req.parameters())
	s.observe(out, started)
	return out
}

// PredictHeart runs the full pipeline for a heart disease form submission.
func (s *PredictionService) PredictHeart(ctx context.Context, req HeartRequest) Outcome {
	started := time.Now()
	out := Outcome{Disease: model.DiseaseHeart, Stage: StageCollecting}

	if err := req.validate(); err != nil {
		out.Err = err
		s.observe(out, started)
		return out
	}

	// Label-to-code mapping failures are validation errors too; they happen
	// before inference.
	vector, err := req.featureVector()
	if err != nil {
		out.Err = err
		s.observe(out, started)
		return out
	}
	out.Stage = StageValidated

	diag, err := s.adapter.Predict(model.DiseaseHeart, vector)
	if err != nil {
		out.Err = err
		s.observe(out, started)
		return out
	}
	out.Diagnosis = &diag
	out.Stage = StageInferred

	stored, err := s.records.AppendHeart(ctx, req.record(diag.Label))
	if err != nil {
		out.Err = &StorageError{Err: err}
		s.log.Errorw("failed to store heart prediction", "email", req.Email, "error", err)
		s.observe(out, started)
		return out
	}
	out.RecordID = stored.ID
	out.Stage = StagePersisted

	s.notify(ctx, &out, Notification{
		Recipient:   req.Email,
		PatientName: req.Name,
		Disease:     model.DiseaseHeart,
		Diagnosis:   diag,
	}, report.Patient{Name: req.Name, Email: req.Email}, req.parameters())
	s.observe(out, started)
	return out
}

// notify builds the PDF report and dispatches the result email. Failures here
// are reported but never undo the stored record.
func (s *PredictionService) notify(ctx context.Context, out *Outcome, n Notification, patient report.Patient, params []report.Parameter) {
	if s.notifier == nil {
		return
	}

	pdf, reportID, err := s.reports.Build(patient, n.Diagnosis, n.Disease, params)
	if err != nil {
		out.Err = &NotificationError{Err: err}
		s.log.Errorw("failed to build report", "email", n.Recipient, "error", err)
		metrics.ObserveEmail(false)
		return
	}
	out.ReportID = reportID
	n.Report = pdf
	n.ReportID = reportID

	if err := s.notifier.Send(ctx, n); err != nil {
		out.Err = &NotificationError{Err: err}
		s.log.Errorw("failed to send result email", "email", n.Recipient, "error", err)
		metrics.ObserveEmail(false)
		return
	}
	out.EmailSent = true
	out.Stage = StageNotified
	metrics.ObserveEmail(true)
}

func (s *PredictionService) observe(out Outcome, started time.Time) {
	metrics.ObservePrediction(string(out.Disease), time.Since(started), out.Err != nil)
}
