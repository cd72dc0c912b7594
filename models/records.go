package models

import "time"

// FarmProfile identifies a farmer's field.
type FarmProfile struct {
	ID         string    `json:"id"`
	FarmerName string    `json:"farmer_name"`
	Location   string    `json:"location"`
	CropType   string    `json:"crop_type"`
	FieldSize  float64   `json:"field_size"`
	SowingDate time.Time `json:"sowing_date"`
}

// CheckIn is a stored weekly check-in with its assessment.
type CheckIn struct {
	ID              string               `json:"id"`
	FarmerID        string               `json:"farmer_id"`
	CropType        string               `json:"crop_type"`
	CurrentStage    string               `json:"current_stage"`
	Date            time.Time            `json:"date"`
	Responses       map[string]string    `json:"responses"`
	Weather         *WeatherSnapshot     `json:"weather,omitempty"`
	RiskScore       float64              `json:"risk_score"`
	RiskLevel       string               `json:"risk_level"`
	Factors         map[Category]float64 `json:"factors,omitempty"`
	Alerts          []Alert              `json:"alerts"`
	Recommendations []string             `json:"recommendations"`
	Suggestions     string               `json:"suggestions,omitempty"` // merged LLM text, kept separate from engine output
}

// WeeklyRecord is a stored lightweight weekly record with its field risk output.
type WeeklyRecord struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	CropType      string    `json:"crop_type"`
	Date          time.Time `json:"date"`
	Rainfall      float64   `json:"rainfall"`
	Irrigation    string    `json:"irrigation"`
	CropCondition string    `json:"crop_condition"`
	PestSeen      bool      `json:"pest_seen"`
	AvgTemp       float64   `json:"avg_temp"`
	Notes         string    `json:"notes,omitempty"`
	RiskScore     float64   `json:"risk_score"`
	RiskLevel     string    `json:"risk_level"`
	Alerts        []Alert   `json:"alerts"`
	Actions       []string  `json:"actions"`
}

// CheckInRequest is the POST /api/checkin payload.
type CheckInRequest struct {
	FarmerID     string            `json:"farmer_id"`
	CropType     string            `json:"crop_type" binding:"required"`
	CurrentStage string            `json:"current_stage"`
	Responses    map[string]string `json:"responses"`
	Weather      *WeatherSnapshot  `json:"weather,omitempty"`
	Latitude     float64           `json:"latitude,omitempty"`
	Longitude    float64           `json:"longitude,omitempty"`
}

// WeeklyRecordRequest is the POST /api/records/weekly payload.
type WeeklyRecordRequest struct {
	FarmerID      string            `json:"farmer_id"`
	CropType      string            `json:"crop_type"`
	Rainfall      float64           `json:"rainfall"`
	Irrigation    string            `json:"irrigation"`
	CropCondition string            `json:"crop_condition" binding:"required"`
	PestSeen      bool              `json:"pest_seen"`
	AvgTemp       *float64          `json:"avg_temp,omitempty"`
	Responses     map[string]string `json:"responses,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Latitude      float64           `json:"latitude,omitempty"`
	Longitude     float64           `json:"longitude,omitempty"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
	ConnectedClients int    `json:"connected_clients,omitempty"`
}

// BroadcastMessage is a message sent to WebSocket clients.
type BroadcastMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
