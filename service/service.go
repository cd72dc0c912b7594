package service

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"cropwatch/cropdata"
	"cropwatch/engine"
	"cropwatch/metrics"
	"cropwatch/models"
	"cropwatch/rabbitmq"
)

// historyWindow is how many past assessments are fed back into trend analysis.
const historyWindow = 5

// Store is the persistence surface the service needs.
type Store interface {
	SaveFarmProfile(ctx context.Context, p *models.FarmProfile) error
	GetFarmProfile(ctx context.Context, id string) (*models.FarmProfile, error)
	SaveCheckIn(ctx context.Context, c *models.CheckIn) error
	GetCheckInHistory(ctx context.Context, farmerID string, limit int) ([]models.AssessmentSnapshot, error)
	GetCheckIns(ctx context.Context, farmerID string, limit int) ([]models.CheckIn, error)
	SaveWeeklyRecord(ctx context.Context, r *models.WeeklyRecord) error
	GetWeeklyRecords(ctx context.Context, farmerID string, limit int) ([]models.WeeklyRecord, error)
}

// WeatherProvider supplies current conditions for a location.
type WeatherProvider interface {
	Current(ctx context.Context, latitude, longitude float64) (*models.WeatherSnapshot, error)
}

// Suggester produces free-form week-ahead suggestions for an assessment.
type Suggester interface {
	Enabled() bool
	SuggestActions(cropType, currentStage string, assessment models.RiskAssessment, weather *models.WeatherSnapshot) (string, error)
}

// AlertPublisher fans high and critical alerts out to the message broker.
type AlertPublisher interface {
	PublishAlerts(event rabbitmq.AlertEvent) error
}

// Broadcaster pushes fresh results to connected WebSocket clients.
type Broadcaster interface {
	BroadcastAssessment(checkIn *models.CheckIn)
	BroadcastAlerts(farmerID string, alerts []models.Alert)
}

// Service orchestrates the two assessment flows: catalog lookup, scoring,
// persistence and fan-out. weather, suggester, publisher and broadcaster are
// optional; a nil dependency simply disables that enrichment.
type Service struct {
	catalog     *cropdata.Catalog
	store       Store
	weather     WeatherProvider
	suggester   Suggester
	publisher   AlertPublisher
	broadcaster Broadcaster
}

// New creates the service.
func New(catalog *cropdata.Catalog, store Store, weather WeatherProvider, suggester Suggester, publisher AlertPublisher, broadcaster Broadcaster) *Service {
	return &Service{
		catalog:     catalog,
		store:       store,
		weather:     weather,
		suggester:   suggester,
		publisher:   publisher,
		broadcaster: broadcaster,
	}
}

// ProcessCheckIn runs the full weighted assessment flow for one check-in.
func (s *Service) ProcessCheckIn(ctx context.Context, req models.CheckInRequest) (*models.CheckIn, error) {
	started := time.Now()

	questions := s.catalog.Questions(req.CropType)
	if len(questions) == 0 {
		return nil, fmt.Errorf("unsupported crop type: %s", req.CropType)
	}

	history, err := s.store.GetCheckInHistory(ctx, req.FarmerID, historyWindow)
	if err != nil {
		// Trend analysis is an enrichment; score without it.
		log.Errorf("failed to load check-in history for %s: %v", req.FarmerID, err)
		history = nil
	}

	weather := s.lookupWeather(ctx, req.Weather, req.Latitude, req.Longitude)

	assessment := engine.CalculateRiskScore(req.Responses, questions, req.CropType, req.CurrentStage, weather, history)

	if weather != nil {
		if stage, ok := s.catalog.Stage(req.CropType, req.CurrentStage); ok {
			warnings, adjustment := engine.CompareWithIdealConditions(&stage, *weather)
			engine.AdjustForConditions(&assessment, warnings, adjustment)
		}
	}

	checkIn := &models.CheckIn{
		ID:              uuid.NewString(),
		FarmerID:        req.FarmerID,
		CropType:        req.CropType,
		CurrentStage:    req.CurrentStage,
		Date:            time.Now().UTC(),
		Responses:       req.Responses,
		Weather:         weather,
		RiskScore:       assessment.OverallRisk,
		RiskLevel:       string(assessment.RiskLevel),
		Factors:         assessment.Factors,
		Alerts:          assessment.Alerts,
		Recommendations: assessment.Recommendations,
	}

	if s.suggester != nil && s.suggester.Enabled() {
		suggestions, err := s.suggester.SuggestActions(req.CropType, req.CurrentStage, assessment, weather)
		if err != nil {
			metrics.SuggestionErrorsTotal.Inc()
			log.Warnf("suggestion model call failed: %v", err)
		} else {
			checkIn.Suggestions = suggestions
		}
	}

	if err := s.store.SaveCheckIn(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}

	metrics.CheckInsTotal.WithLabelValues(checkIn.RiskLevel).Inc()
	for _, a := range checkIn.Alerts {
		metrics.AlertsEmittedTotal.WithLabelValues(a.Severity).Inc()
	}
	metrics.AssessmentDurationSeconds.Observe(time.Since(started).Seconds())

	if s.broadcaster != nil {
		s.broadcaster.BroadcastAssessment(checkIn)
	}
	s.publishIfSevere(checkIn.FarmerID, checkIn.CropType, checkIn.RiskScore, checkIn.RiskLevel, checkIn.Alerts)

	log.Infof("check-in %s assessed: farmer=%s crop=%s score=%.1f level=%s alerts=%d",
		checkIn.ID, checkIn.FarmerID, checkIn.CropType, checkIn.RiskScore, checkIn.RiskLevel, len(checkIn.Alerts))

	return checkIn, nil
}

// ProcessWeeklyRecord runs the lightweight field assessment flow.
func (s *Service) ProcessWeeklyRecord(ctx context.Context, req models.WeeklyRecordRequest) (*models.WeeklyRecord, error) {
	var notes *models.CropRiskProfile
	if profile, ok := s.catalog.RiskProfile(req.CropType); ok {
		notes = &profile
	}

	temp := 0.0
	if req.AvgTemp != nil {
		temp = *req.AvgTemp
	} else if snapshot := s.lookupWeather(ctx, nil, req.Latitude, req.Longitude); snapshot != nil {
		temp = snapshot.AvgTemp
	}

	input := models.FieldInput{
		Responses:     req.Responses,
		Questions:     s.catalog.FieldQuestions(req.CropType),
		Rainfall:      req.Rainfall,
		Irrigation:    req.Irrigation,
		Temp:          temp,
		CropCondition: req.CropCondition,
		PestSeen:      req.PestSeen,
		CropType:      req.CropType,
	}

	out := engine.AnalyzeCropRisk(input, notes)

	record := &models.WeeklyRecord{
		ID:            uuid.NewString(),
		FarmerID:      req.FarmerID,
		CropType:      req.CropType,
		Date:          time.Now().UTC(),
		Rainfall:      req.Rainfall,
		Irrigation:    req.Irrigation,
		CropCondition: req.CropCondition,
		PestSeen:      req.PestSeen,
		AvgTemp:       temp,
		Notes:         req.Notes,
		RiskScore:     out.Score,
		RiskLevel:     string(out.Level),
		Alerts:        out.Alerts,
		Actions:       out.Actions,
	}

	if err := s.store.SaveWeeklyRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save weekly record: %w", err)
	}

	metrics.WeeklyRecordsTotal.WithLabelValues(record.RiskLevel).Inc()
	for _, a := range record.Alerts {
		metrics.AlertsEmittedTotal.WithLabelValues(a.Severity).Inc()
	}

	if s.broadcaster != nil && len(record.Alerts) > 0 {
		s.broadcaster.BroadcastAlerts(record.FarmerID, record.Alerts)
	}

	log.Infof("weekly record %s analyzed: farmer=%s crop=%s score=%.0f level=%s",
		record.ID, record.FarmerID, record.CropType, record.RiskScore, record.RiskLevel)

	return record, nil
}

// SaveFarmProfile registers or updates a farm profile. The crop type must be
// in the catalog; profiles drive which question set the check-in UI shows.
func (s *Service) SaveFarmProfile(ctx context.Context, p *models.FarmProfile) (*models.FarmProfile, error) {
	if len(s.catalog.Questions(p.CropType)) == 0 {
		return nil, fmt.Errorf("unsupported crop type: %s", p.CropType)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.store.SaveFarmProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save farm profile: %w", err)
	}
	return p, nil
}

// GetFarmProfile returns a farm profile by id.
func (s *Service) GetFarmProfile(ctx context.Context, id string) (*models.FarmProfile, error) {
	return s.store.GetFarmProfile(ctx, id)
}

// GetCheckIns returns recent check-ins for a farmer, newest first.
func (s *Service) GetCheckIns(ctx context.Context, farmerID string, limit int) ([]models.CheckIn, error) {
	return s.store.GetCheckIns(ctx, farmerID, limit)
}

// GetWeeklyRecords returns recent weekly records for a farmer, newest first.
func (s *Service) GetWeeklyRecords(ctx context.Context, farmerID string, limit int) ([]models.WeeklyRecord, error) {
	return s.store.GetWeeklyRecords(ctx, farmerID, limit)
}

// lookupWeather resolves the weather snapshot for a request: caller-supplied
// weather wins, then a provider lookup when coordinates are present. Failures
// are logged and scoring proceeds without weather.
func (s *Service) lookupWeather(ctx context.Context, supplied *models.WeatherSnapshot, latitude, longitude float64) *models.WeatherSnapshot {
	if supplied != nil {
		return supplied
	}
	if s.weather == nil || (latitude == 0 && longitude == 0) {
		return nil
	}
	snapshot, err := s.weather.Current(ctx, latitude, longitude)
	if err != nil {
		metrics.WeatherLookupErrorsTotal.Inc()
		log.Warnf("weather lookup failed: %v", err)
		return nil
	}
	return snapshot
}

func (s *Service) publishIfSevere(farmerID, cropType string, score float64, level string, alerts []models.Alert) {
	if s.publisher == nil {
		return
	}
	if level != string(models.RiskHigh) && level != string(models.RiskCritical) {
		return
	}
	event := rabbitmq.AlertEvent{
		FarmerID:  farmerID,
		CropType:  cropType,
		RiskScore: score,
		RiskLevel: level,
		Alerts:    alerts,
		EmittedAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishAlerts(event); err != nil {
		metrics.AlertPublishErrorsTotal.Inc()
		log.Errorf("failed to publish alert event: %v", err)
	}
}
