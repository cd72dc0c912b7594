package service

import (
	"context"
	"errors"
	"testing"

	"cropwatch/cropdata"
	"cropwatch/models"
	"cropwatch/rabbitmq"
)

type fakeStore struct {
	history      []models.AssessmentSnapshot
	historyErr   error
	savedCheckIn *models.CheckIn
	savedRecord  *models.WeeklyRecord
	saveErr      error
}

func (f *fakeStore) SaveFarmProfile(ctx context.Context, p *models.FarmProfile) error { return nil }

func (f *fakeStore) GetFarmProfile(ctx context.Context, id string) (*models.FarmProfile, error) {
	return nil, nil
}

func (f *fakeStore) SaveCheckIn(ctx context.Context, c *models.CheckIn) error {
	f.savedCheckIn = c
	return f.saveErr
}

func (f *fakeStore) GetCheckInHistory(ctx context.Context, farmerID string, limit int) ([]models.AssessmentSnapshot, error) {
	return f.history, f.historyErr
}

func (f *fakeStore) GetCheckIns(ctx context.Context, farmerID string, limit int) ([]models.CheckIn, error) {
	return nil, nil
}

func (f *fakeStore) SaveWeeklyRecord(ctx context.Context, r *models.WeeklyRecord) error {
	f.savedRecord = r
	return f.saveErr
}

func (f *fakeStore) GetWeeklyRecords(ctx context.Context, farmerID string, limit int) ([]models.WeeklyRecord, error) {
	return nil, nil
}

type fakePublisher struct {
	events []rabbitmq.AlertEvent
	err    error
}

func (f *fakePublisher) PublishAlerts(event rabbitmq.AlertEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeBroadcaster struct {
	assessments int
	alertBlocks int
}

func (f *fakeBroadcaster) BroadcastAssessment(checkIn *models.CheckIn) { f.assessments++ }
func (f *fakeBroadcaster) BroadcastAlerts(farmerID string, alerts []models.Alert) {
	f.alertBlocks++
}

type fakeSuggester struct {
	text string
	err  error
}

func (f *fakeSuggester) Enabled() bool { return true }
func (f *fakeSuggester) SuggestActions(cropType, currentStage string, assessment models.RiskAssessment, weather *models.WeatherSnapshot) (string, error) {
	return f.text, f.err
}

func newService(store *fakeStore, publisher *fakePublisher, broadcaster *fakeBroadcaster, suggester *fakeSuggester) *Service {
	var pub AlertPublisher
	if publisher != nil {
		pub = publisher
	}
	var bc Broadcaster
	if broadcaster != nil {
		bc = broadcaster
	}
	var sg Suggester
	if suggester != nil {
		sg = suggester
	}
	return New(cropdata.New(), store, nil, sg, pub, bc)
}

func TestProcessCheckInUnsupportedCrop(t *testing.T) {
	svc := newService(&fakeStore{}, nil, nil, nil)

	_, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID: "farmer-1",
		CropType: "Durian",
	})
	if err == nil {
		t.Fatal("expected error for unsupported crop type")
	}
}

func TestProcessCheckInPersistsAndBroadcasts(t *testing.T) {
	store := &fakeStore{}
	broadcaster := &fakeBroadcaster{}
	svc := newService(store, nil, broadcaster, nil)

	checkIn, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:     "farmer-1",
		CropType:     "Rice",
		CurrentStage: "tillering",
		Responses:    map[string]string{"rice-water-1": "yes"},
	})
	if err != nil {
		t.Fatalf("ProcessCheckIn: unexpected error: %v", err)
	}
	if store.savedCheckIn == nil {
		t.Fatal("check-in was not persisted")
	}
	if store.savedCheckIn.ID != checkIn.ID {
		t.Errorf("persisted id %q != returned id %q", store.savedCheckIn.ID, checkIn.ID)
	}
	if checkIn.RiskScore <= 0 {
		t.Errorf("RiskScore = %v, want positive for an affirmative response", checkIn.RiskScore)
	}
	if broadcaster.assessments != 1 {
		t.Errorf("broadcast count = %d, want 1", broadcaster.assessments)
	}
}

func TestProcessCheckInPublishesSevereAssessments(t *testing.T) {
	store := &fakeStore{}
	publisher := &fakePublisher{}
	svc := newService(store, publisher, nil, nil)

	// rice-disease-1 has weight 10; with Rice and flowering multipliers the
	// single factor clamps to 10 and the assessment lands at critical.
	checkIn, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:     "farmer-1",
		CropType:     "Rice",
		CurrentStage: "flowering",
		Responses:    map[string]string{"rice-disease-1": "yes"},
	})
	if err != nil {
		t.Fatalf("ProcessCheckIn: unexpected error: %v", err)
	}
	if checkIn.RiskLevel != string(models.RiskCritical) {
		t.Fatalf("RiskLevel = %q, want critical", checkIn.RiskLevel)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(publisher.events))
	}
	if publisher.events[0].FarmerID != "farmer-1" || publisher.events[0].RiskLevel != "critical" {
		t.Errorf("event = %+v, want critical event for farmer-1", publisher.events[0])
	}
}

func TestProcessCheckInSkipsPublishForLowRisk(t *testing.T) {
	publisher := &fakePublisher{}
	svc := newService(&fakeStore{}, publisher, nil, nil)

	checkIn, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:  "farmer-1",
		CropType:  "Wheat",
		Responses: map[string]string{},
	})
	if err != nil {
		t.Fatalf("ProcessCheckIn: unexpected error: %v", err)
	}
	if checkIn.RiskLevel != string(models.RiskLow) {
		t.Fatalf("RiskLevel = %q, want low with no affirmative responses", checkIn.RiskLevel)
	}
	if len(publisher.events) != 0 {
		t.Errorf("published events = %v, want none", publisher.events)
	}
}

func TestProcessCheckInHistoryErrorIsNonFatal(t *testing.T) {
	store := &fakeStore{historyErr: errors.New("db down")}
	svc := newService(store, nil, nil, nil)

	if _, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:  "farmer-1",
		CropType:  "Maize",
		Responses: map[string]string{},
	}); err != nil {
		t.Errorf("history failure should not fail the check-in, got %v", err)
	}
}

func TestProcessCheckInMergesSuggestions(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, nil, nil, &fakeSuggester{text: "Drain the field for two days."})

	checkIn, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:  "farmer-1",
		CropType:  "Rice",
		Responses: map[string]string{"rice-pest-1": "yes"},
	})
	if err != nil {
		t.Fatalf("ProcessCheckIn: unexpected error: %v", err)
	}
	if checkIn.Suggestions != "Drain the field for two days." {
		t.Errorf("Suggestions = %q, want the model text", checkIn.Suggestions)
	}
}

func TestProcessCheckInSuggesterFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, nil, nil, &fakeSuggester{err: errors.New("quota")})

	checkIn, err := svc.ProcessCheckIn(context.Background(), models.CheckInRequest{
		FarmerID:  "farmer-1",
		CropType:  "Rice",
		Responses: map[string]string{},
	})
	if err != nil {
		t.Fatalf("ProcessCheckIn: unexpected error: %v", err)
	}
	if checkIn.Suggestions != "" {
		t.Errorf("Suggestions = %q, want empty on model failure", checkIn.Suggestions)
	}
}

func TestProcessWeeklyRecordDroughtScenario(t *testing.T) {
	store := &fakeStore{}
	broadcaster := &fakeBroadcaster{}
	svc := newService(store, nil, broadcaster, nil)

	temp := 25.0
	record, err := svc.ProcessWeeklyRecord(context.Background(), models.WeeklyRecordRequest{
		FarmerID:      "farmer-1",
		CropType:      "Rice",
		Rainfall:      2,
		Irrigation:    "No",
		CropCondition: "Good",
		AvgTemp:       &temp,
	})
	if err != nil {
		t.Fatalf("ProcessWeeklyRecord: unexpected error: %v", err)
	}
	if record.RiskScore != 3 {
		t.Errorf("RiskScore = %v, want 3", record.RiskScore)
	}
	if record.RiskLevel != "Low" {
		t.Errorf("RiskLevel = %q, want Low", record.RiskLevel)
	}
	if store.savedRecord == nil {
		t.Fatal("weekly record was not persisted")
	}
	if broadcaster.alertBlocks != 1 {
		t.Errorf("alert broadcasts = %d, want 1 for the water-stress alert", broadcaster.alertBlocks)
	}
}

func TestProcessWeeklyRecordUnknownCropStillScores(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, nil, nil, nil)

	temp := 25.0
	record, err := svc.ProcessWeeklyRecord(context.Background(), models.WeeklyRecordRequest{
		FarmerID:      "farmer-1",
		CropType:      "Durian",
		Rainfall:      20,
		Irrigation:    "Yes - Canal",
		CropCondition: "Good",
		AvgTemp:       &temp,
	})
	if err != nil {
		t.Fatalf("ProcessWeeklyRecord: unexpected error: %v", err)
	}
	if record.RiskScore != 1 {
		t.Errorf("RiskScore = %v, want floor of 1", record.RiskScore)
	}
}
