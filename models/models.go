package models

import "time"

// Category is one of the six risk dimensions tracked throughout the system.
type Category string

const (
	CategoryPest     Category = "pest"
	CategoryDisease  Category = "disease"
	CategoryWater    Category = "water"
	CategoryNutrient Category = "nutrient"
	CategoryWeather  Category = "weather"
	CategoryGrowth   Category = "growth"
)

// Categories returns all six categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryPest,
		CategoryDisease,
		CategoryWater,
		CategoryNutrient,
		CategoryWeather,
		CategoryGrowth,
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPest, CategoryDisease, CategoryWater, CategoryNutrient, CategoryWeather, CategoryGrowth:
		return true
	}
	return false
}

// RiskLevel is the 4-level taxonomy used by the weighted check-in flow.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// FieldRiskLevel is the 3-level taxonomy used by the weekly record flow.
// It evolved separately from RiskLevel and existing callers depend on the
// capitalized values, so the two are kept as distinct types.
type FieldRiskLevel string

const (
	FieldRiskLow    FieldRiskLevel = "Low"
	FieldRiskMedium FieldRiskLevel = "Medium"
	FieldRiskHigh   FieldRiskLevel = "High"
)

// Crop condition values reported by the farmer.
const (
	ConditionGood    = "Good"
	ConditionAverage = "Average"
	ConditionPoor    = "Poor"
)

// Alert is a single typed warning emitted by either engine.
type Alert struct {
	ID       string `json:"id"`
	Severity string `json:"severity"` // low|medium|high|critical
	Category string `json:"category"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// ChecklistItem is a static catalog entry: one yes/no diagnostic question
// tied to a category and a severity weight in [1,10].
type ChecklistItem struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Category   Category `json:"category"`
	RiskWeight int      `json:"riskWeight"`
}

// IdealConditions describes the temperature/rainfall/humidity band a stage
// prefers. Humidity is the qualitative descriptor from the agronomic data
// (low/medium/high); rainfall bounds are annual-equivalent mm.
type IdealConditions struct {
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	RainfallMin float64 `json:"rainfallMin"`
	RainfallMax float64 `json:"rainfallMax"`
	Humidity    string  `json:"humidity"`
}

// CropStage is one growth phase of one crop type. Stages form an ordered
// sequence per crop but are looked up by id during scoring.
type CropStage struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Duration        int             `json:"duration"` // days
	CriticalFactors []string        `json:"criticalFactors"`
	IdealConditions IdealConditions `json:"idealConditions"`
}

// WeatherSnapshot is recent ambient weather supplied by the weather provider.
type WeatherSnapshot struct {
	AvgTemp  float64 `json:"avgTemp"`  // °C
	Rainfall float64 `json:"rainfall"` // mm, recent accumulated
	Humidity float64 `json:"humidity"` // %
}

// RiskAssessment is the output of the weighted multi-factor engine.
type RiskAssessment struct {
	OverallRisk     float64              `json:"overallRisk"` // 0-10, one decimal
	RiskLevel       RiskLevel            `json:"riskLevel"`
	Factors         map[Category]float64 `json:"factors"`
	Alerts          []Alert              `json:"alerts"`
	Recommendations []string             `json:"recommendations"`
}

// AssessmentSnapshot is one historical assessment as stored by the caller,
// supplied back to the engine oldest-to-newest for trend analysis. The engine
// never filters or reorders history itself.
type AssessmentSnapshot struct {
	Date      time.Time            `json:"date"`
	RiskScore float64              `json:"riskScore"`
	RiskLevel string               `json:"riskLevel"`
	Factors   map[Category]float64 `json:"factors"`
}

// FieldInput is the input to the simple field engine.
type FieldInput struct {
	Responses     map[string]string `json:"responses"` // question id -> "Yes"/"No"
	Questions     []ChecklistItem   `json:"questions"`
	Rainfall      float64           `json:"rainfall"`   // mm
	Irrigation    string            `json:"irrigation"` // Yes/No/type
	Temp          float64           `json:"temp"`       // °C
	CropCondition string            `json:"cropCondition"`
	PestSeen      bool              `json:"pestSeen"`
	CropType      string            `json:"cropType,omitempty"`
}

// FieldRiskOutput is the output of the simple field engine.
type FieldRiskOutput struct {
	Score   float64        `json:"score"` // clamped to [1,10]
	Level   FieldRiskLevel `json:"level"`
	Alerts  []Alert        `json:"alerts"`
	Actions []string       `json:"actions"` // deduplicated, order preserved
}

// CropRisk is one qualitative risk note for a crop type.
type CropRisk struct {
	Type       string `json:"type"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

// CropRiskProfile bundles the qualitative risk notes for a crop type.
type CropRiskProfile struct {
	CommonRisks []CropRisk `json:"commonRisks"`
	Analysis    string     `json:"analysis"`
}
