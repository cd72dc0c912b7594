package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cropwatch/cropdata"
	"cropwatch/models"
	"cropwatch/service"
)

type stubStore struct{}

func (stubStore) SaveFarmProfile(ctx context.Context, p *models.FarmProfile) error { return nil }
func (stubStore) GetFarmProfile(ctx context.Context, id string) (*models.FarmProfile, error) {
	return &models.FarmProfile{ID: id, FarmerName: "A. Farmer", CropType: "Rice"}, nil
}
func (stubStore) SaveCheckIn(ctx context.Context, c *models.CheckIn) error { return nil }
func (stubStore) GetCheckInHistory(ctx context.Context, farmerID string, limit int) ([]models.AssessmentSnapshot, error) {
	return nil, nil
}
func (stubStore) GetCheckIns(ctx context.Context, farmerID string, limit int) ([]models.CheckIn, error) {
	return []models.CheckIn{}, nil
}
func (stubStore) SaveWeeklyRecord(ctx context.Context, r *models.WeeklyRecord) error { return nil }
func (stubStore) GetWeeklyRecords(ctx context.Context, farmerID string, limit int) ([]models.WeeklyRecord, error) {
	return []models.WeeklyRecord{}, nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := cropdata.New()
	svc := service.New(catalog, stubStore{}, nil, nil, nil, nil)
	h := NewHandlers(svc, catalog)

	router := gin.New()
	router.GET("/health", h.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/farms", h.SaveFarmProfile)
		api.GET("/farms/:id", h.GetFarmProfile)
		api.POST("/checkin", h.SubmitCheckIn)
		api.GET("/checkins", h.GetCheckIns)
		api.POST("/records/weekly", h.SubmitWeeklyRecord)
		api.GET("/records/weekly", h.GetWeeklyRecords)
		api.GET("/crops", h.GetCrops)
		api.GET("/crops/:type/questions", h.GetCropQuestions)
		api.GET("/crops/:type/stages", h.GetCropStages)
		api.GET("/crops/:type/notes", h.GetCropNotes)
	}
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
}

func TestGetCrops(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, "GET", "/api/crops", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Crops []string `json:"crops"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Crops) != 3 {
		t.Errorf("crops = %v, want 3 entries", resp.Crops)
	}
}

func TestGetCropQuestions(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, "GET", "/api/crops/Rice/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	w = doRequest(router, "GET", "/api/crops/Durian/questions", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d for unsupported crop, want 404", w.Code)
	}
}

func TestGetCropStagesAndNotes(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, "GET", "/api/crops/Wheat/stages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stages status = %d, want 200", w.Code)
	}
	var stagesResp struct {
		Stages []models.CropStage `json:"stages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stagesResp); err != nil {
		t.Fatalf("failed to parse stages: %v", err)
	}
	if len(stagesResp.Stages) != 9 {
		t.Errorf("wheat stages = %d, want 9", len(stagesResp.Stages))
	}

	w = doRequest(router, "GET", "/api/crops/Maize/notes", nil)
	if w.Code != http.StatusOK {
		t.Errorf("notes status = %d, want 200", w.Code)
	}
}

func TestSubmitCheckIn(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, "POST", "/api/checkin", models.CheckInRequest{
		FarmerID:     "farmer-1",
		CropType:     "Rice",
		CurrentStage: "flowering",
		Responses:    map[string]string{"rice-disease-1": "yes"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp models.CheckIn
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.RiskLevel != "critical" {
		t.Errorf("risk level = %q, want critical", resp.RiskLevel)
	}
	if resp.ID == "" {
		t.Error("check-in id is empty")
	}
}

func TestSubmitCheckInValidation(t *testing.T) {
	router := setupRouter()

	// Missing crop_type fails binding.
	w := doRequest(router, "POST", "/api/checkin", map[string]interface{}{
		"farmer_id": "farmer-1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d without crop_type, want 400", w.Code)
	}

	// Malformed body.
	req := httptest.NewRequest("POST", "/api/checkin", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d for malformed body, want 400", rec.Code)
	}
}

func TestGetCheckInsRequiresFarmerID(t *testing.T) {
	router := setupRouter()
	w := doRequest(router, "GET", "/api/checkins", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d without farmer_id, want 400", w.Code)
	}

	w = doRequest(router, "GET", "/api/checkins?farmer_id=farmer-1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d with farmer_id, want 200", w.Code)
	}
}

func TestSubmitWeeklyRecord(t *testing.T) {
	router := setupRouter()

	temp := 38.0
	w := doRequest(router, "POST", "/api/records/weekly", models.WeeklyRecordRequest{
		FarmerID:      "farmer-1",
		CropType:      "Maize",
		Rainfall:      2,
		Irrigation:    "No",
		CropCondition: "Poor",
		PestSeen:      true,
		AvgTemp:       &temp,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp models.WeeklyRecord
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.RiskScore != 9 {
		t.Errorf("risk score = %v, want 9", resp.RiskScore)
	}
	if resp.RiskLevel != "High" {
		t.Errorf("risk level = %q, want High", resp.RiskLevel)
	}
}

func TestFarmProfileEndpoints(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, "POST", "/api/farms", models.FarmProfile{
		FarmerName: "A. Farmer",
		Location:   "District 9",
		CropType:   "Rice",
		FieldSize:  1.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var saved models.FarmProfile
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if saved.ID == "" {
		t.Error("saved profile id is empty")
	}

	// Crop types outside the catalog are rejected.
	w = doRequest(router, "POST", "/api/farms", models.FarmProfile{
		FarmerName: "A. Farmer",
		CropType:   "Durian",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d for unsupported crop, want 400", w.Code)
	}

	w = doRequest(router, "GET", "/api/farms/farmer-1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d, want 200", w.Code)
	}
}

func TestSubmitWeeklyRecordValidation(t *testing.T) {
	router := setupRouter()

	// Missing crop_condition fails binding.
	w := doRequest(router, "POST", "/api/records/weekly", map[string]interface{}{
		"farmer_id": "farmer-1",
		"crop_type": "Rice",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d without crop_condition, want 400", w.Code)
	}
}
