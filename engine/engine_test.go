package engine

import (
	"math"
	"reflect"
	"testing"

	"cropwatch/models"
)

func item(id string, cat models.Category, weight int) models.ChecklistItem {
	return models.ChecklistItem{ID: id, Question: "Test question " + id, Category: cat, RiskWeight: weight}
}

func TestCalculateRiskScoreEmptyInput(t *testing.T) {
	got := CalculateRiskScore(nil, nil, "", "", nil, nil)

	if got.OverallRisk != 0 {
		t.Errorf("OverallRisk = %v, want 0", got.OverallRisk)
	}
	if got.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %q, want %q", got.RiskLevel, models.RiskLow)
	}
	for _, cat := range models.Categories() {
		if got.Factors[cat] != 0 {
			t.Errorf("Factors[%s] = %v, want 0", cat, got.Factors[cat])
		}
	}
	if len(got.Alerts) != 0 {
		t.Errorf("Alerts = %v, want none", got.Alerts)
	}
	if len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", got.Recommendations)
	}
}

func TestCalculateRiskScoreDeterminism(t *testing.T) {
	questions := []models.ChecklistItem{
		item("a", models.CategoryWater, 8),
		item("b", models.CategoryPest, 6),
		item("c", models.CategoryDisease, 9),
	}
	responses := map[string]string{"a": "yes", "b": "yes", "c": "yes"}
	weather := &models.WeatherSnapshot{AvgTemp: 28, Rainfall: 12, Humidity: 70}

	first := CalculateRiskScore(responses, questions, "Rice", "flowering", weather, nil)
	second := CalculateRiskScore(responses, questions, "Rice", "flowering", weather, nil)

	if first.OverallRisk != second.OverallRisk {
		t.Errorf("OverallRisk differs: %v vs %v", first.OverallRisk, second.OverallRisk)
	}
	if first.RiskLevel != second.RiskLevel {
		t.Errorf("RiskLevel differs: %q vs %q", first.RiskLevel, second.RiskLevel)
	}
	if !reflect.DeepEqual(first.Factors, second.Factors) {
		t.Errorf("Factors differ: %v vs %v", first.Factors, second.Factors)
	}
	if !reflect.DeepEqual(first.Recommendations, second.Recommendations) {
		t.Errorf("Recommendations differ")
	}
	if len(first.Alerts) != len(second.Alerts) {
		t.Fatalf("alert counts differ: %d vs %d", len(first.Alerts), len(second.Alerts))
	}
	// Alert ids carry a random suffix; everything else must match.
	for i := range first.Alerts {
		a, b := first.Alerts[i], second.Alerts[i]
		if a.Severity != b.Severity || a.Category != b.Category || a.Message != b.Message || a.Action != b.Action {
			t.Errorf("alert %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestCalculateRiskScoreRange(t *testing.T) {
	questions := []models.ChecklistItem{
		item("p1", models.CategoryPest, 10),
		item("d1", models.CategoryDisease, 10),
		item("w1", models.CategoryWater, 10),
		item("n1", models.CategoryNutrient, 10),
		item("e1", models.CategoryWeather, 10),
		item("g1", models.CategoryGrowth, 10),
	}
	responses := map[string]string{"p1": "yes", "d1": "yes", "w1": "yes", "n1": "yes", "e1": "yes", "g1": "yes"}
	weather := &models.WeatherSnapshot{AvgTemp: 42, Rainfall: 0, Humidity: 95}
	history := []models.AssessmentSnapshot{
		{Factors: map[models.Category]float64{models.CategoryWater: 1}},
		{Factors: map[models.Category]float64{models.CategoryWater: 3}},
		{Factors: map[models.Category]float64{models.CategoryWater: 5}},
	}

	got := CalculateRiskScore(responses, questions, "Rice", "flowering", weather, history)
	if got.OverallRisk < 0 || got.OverallRisk > 10 {
		t.Errorf("OverallRisk = %v, want within [0,10]", got.OverallRisk)
	}
	if got.RiskLevel != models.RiskCritical {
		t.Errorf("RiskLevel = %q, want %q", got.RiskLevel, models.RiskCritical)
	}
}

func TestCalculateRiskScoreMonotoneFromEmpty(t *testing.T) {
	questions := []models.ChecklistItem{
		item("p1", models.CategoryPest, 6),
		item("d1", models.CategoryDisease, 7),
		item("w1", models.CategoryWater, 9),
	}
	base := CalculateRiskScore(nil, questions, "Wheat", "seedling", nil, nil)
	for _, q := range questions {
		got := CalculateRiskScore(map[string]string{q.ID: "yes"}, questions, "Wheat", "seedling", nil, nil)
		if got.OverallRisk < base.OverallRisk {
			t.Errorf("flipping %s decreased risk: %v -> %v", q.ID, base.OverallRisk, got.OverallRisk)
		}
		if got.OverallRisk <= 0 {
			t.Errorf("flipping %s produced non-positive risk %v", q.ID, got.OverallRisk)
		}
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{2.9, models.RiskLow},
		{3.0, models.RiskMedium},
		{4.9, models.RiskMedium},
		{5.0, models.RiskHigh},
		{6.9, models.RiskHigh},
		{7.0, models.RiskCritical},
		{10, models.RiskCritical},
	}
	for _, tc := range tests {
		if got := RiskLevelFor(tc.score); got != tc.want {
			t.Errorf("RiskLevelFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestUnknownCropTypeScoresNeutrally(t *testing.T) {
	questions := []models.ChecklistItem{
		item("w1", models.CategoryWater, 7),
		item("g1", models.CategoryGrowth, 6),
	}
	responses := map[string]string{"w1": "yes", "g1": "yes"}

	unknown := CalculateRiskScore(responses, questions, "Durian", "vegetative", nil, nil)
	omitted := CalculateRiskScore(responses, questions, "", "vegetative", nil, nil)

	if unknown.OverallRisk != omitted.OverallRisk {
		t.Errorf("unknown crop risk %v, omitted crop risk %v; want identical", unknown.OverallRisk, omitted.OverallRisk)
	}
	if !reflect.DeepEqual(unknown.Factors, omitted.Factors) {
		t.Errorf("factors differ between unknown and omitted crop: %v vs %v", unknown.Factors, omitted.Factors)
	}
}

func TestNeutralWeatherMatchesNoWeather(t *testing.T) {
	questions := []models.ChecklistItem{item("w1", models.CategoryWater, 7)}
	responses := map[string]string{"w1": "yes"}
	calm := &models.WeatherSnapshot{AvgTemp: 20, Rainfall: 20, Humidity: 60}

	withWeather := CalculateRiskScore(responses, questions, "", "", calm, nil)
	without := CalculateRiskScore(responses, questions, "", "", nil, nil)

	if withWeather.OverallRisk != without.OverallRisk {
		t.Errorf("neutral weather changed risk: %v vs %v", withWeather.OverallRisk, without.OverallRisk)
	}
}

func TestHotWeatherBoostsPestContribution(t *testing.T) {
	questions := []models.ChecklistItem{item("p1", models.CategoryPest, 5)}
	responses := map[string]string{"p1": "yes"}
	hot := &models.WeatherSnapshot{AvgTemp: 32, Rainfall: 20, Humidity: 60}

	boosted := CalculateRiskScore(responses, questions, "", "", hot, nil)
	plain := CalculateRiskScore(responses, questions, "", "", nil, nil)

	if boosted.OverallRisk <= plain.OverallRisk {
		t.Errorf("hot weather did not boost pest risk: %v vs %v", boosted.OverallRisk, plain.OverallRisk)
	}
	// 5 * 1.3 (vegetative pest) * 1.3 (hot weather) crosses the alert bar.
	if len(boosted.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(boosted.Alerts))
	}
	if boosted.Alerts[0].Severity != "medium" {
		t.Errorf("alert severity = %q, want medium for base weight 5", boosted.Alerts[0].Severity)
	}
}

func TestHighWeightQuestionEmitsBespokeAlert(t *testing.T) {
	questions := []models.ChecklistItem{
		{ID: "rice-disease-1", Question: "Are there diamond/spindle-shaped gray-brown spots on leaves?", Category: models.CategoryDisease, RiskWeight: 10},
	}
	got := CalculateRiskScore(map[string]string{"rice-disease-1": "yes"}, questions, "Rice", "flowering", nil, nil)

	if len(got.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(got.Alerts))
	}
	alert := got.Alerts[0]
	if alert.Severity != "high" {
		t.Errorf("severity = %q, want high", alert.Severity)
	}
	if alert.Message != alertOverrides["rice-disease-1"].Message {
		t.Errorf("message = %q, want bespoke blast message", alert.Message)
	}
	if got.Factors[models.CategoryDisease] != 10 {
		t.Errorf("disease factor = %v, want clamped 10", got.Factors[models.CategoryDisease])
	}
	if got.RiskLevel != models.RiskCritical {
		t.Errorf("RiskLevel = %q, want critical", got.RiskLevel)
	}
}

func TestRecommendationsCropAdviceFirstThenTruncated(t *testing.T) {
	questions := []models.ChecklistItem{
		{ID: "rice-disease-1", Question: "q", Category: models.CategoryDisease, RiskWeight: 10},
	}
	got := CalculateRiskScore(map[string]string{"rice-disease-1": "yes"}, questions, "Rice", "vegetative", nil, nil)

	// Factor 10 allows five entries: one Rice-specific followed by generic
	// disease advice; the tail of the generic list is truncated away.
	if len(got.Recommendations) != 5 {
		t.Fatalf("recommendations = %d, want 5: %v", len(got.Recommendations), got.Recommendations)
	}
	if got.Recommendations[0] != cropAdvice["Rice"][models.CategoryDisease][0] {
		t.Errorf("first recommendation = %q, want Rice disease advice first", got.Recommendations[0])
	}
	for i, rec := range got.Recommendations[1:] {
		if rec != genericAdvice[models.CategoryDisease][i] {
			t.Errorf("recommendation %d = %q, want generic disease advice in order", i+1, rec)
		}
	}
}

func TestTrendMultiplierAndTrendAlert(t *testing.T) {
	questions := []models.ChecklistItem{item("w1", models.CategoryWater, 5)}
	responses := map[string]string{"w1": "yes"}
	history := []models.AssessmentSnapshot{
		{Factors: map[models.Category]float64{models.CategoryWater: 1}},
		{Factors: map[models.Category]float64{models.CategoryWater: 2}},
		{Factors: map[models.Category]float64{models.CategoryWater: 3.5}},
	}

	got := CalculateRiskScore(responses, questions, "", "", nil, history)

	// 5 * 1.2 (vegetative water) * 1.2 (worsening trend) = 7.2.
	if math.Abs(got.Factors[models.CategoryWater]-7.2) > 1e-9 {
		t.Errorf("water factor = %v, want 7.2", got.Factors[models.CategoryWater])
	}
	if got.OverallRisk != 7.2 {
		t.Errorf("OverallRisk = %v, want 7.2", got.OverallRisk)
	}
	if got.RiskLevel != models.RiskCritical {
		t.Errorf("RiskLevel = %q, want critical", got.RiskLevel)
	}

	// Current factor 7.2 vs historical average 2.17: excess > 3 is critical.
	if len(got.Alerts) != 1 {
		t.Fatalf("alerts = %d, want single trend alert", len(got.Alerts))
	}
	if got.Alerts[0].Severity != "critical" {
		t.Errorf("trend alert severity = %q, want critical", got.Alerts[0].Severity)
	}
	if got.Alerts[0].Category != string(models.CategoryWater) {
		t.Errorf("trend alert category = %q, want water", got.Alerts[0].Category)
	}
}

func TestImprovingTrendDampensContribution(t *testing.T) {
	questions := []models.ChecklistItem{item("w1", models.CategoryWater, 5)}
	responses := map[string]string{"w1": "yes"}
	history := []models.AssessmentSnapshot{
		{Factors: map[models.Category]float64{models.CategoryWater: 6}},
		{Factors: map[models.Category]float64{models.CategoryWater: 4}},
		{Factors: map[models.Category]float64{models.CategoryWater: 2}},
	}

	damped := CalculateRiskScore(responses, questions, "", "", nil, history)
	plain := CalculateRiskScore(responses, questions, "", "", nil, nil)

	if damped.OverallRisk >= plain.OverallRisk {
		t.Errorf("improving trend did not dampen risk: %v vs %v", damped.OverallRisk, plain.OverallRisk)
	}
}

func TestShortHistorySkipsTrendAnalysis(t *testing.T) {
	questions := []models.ChecklistItem{item("w1", models.CategoryWater, 5)}
	responses := map[string]string{"w1": "yes"}
	history := []models.AssessmentSnapshot{
		{Factors: map[models.Category]float64{models.CategoryWater: 9}},
		{Factors: map[models.Category]float64{models.CategoryWater: 9}},
	}

	withHistory := CalculateRiskScore(responses, questions, "", "", nil, history)
	without := CalculateRiskScore(responses, questions, "", "", nil, nil)

	if withHistory.OverallRisk != without.OverallRisk {
		t.Errorf("short history changed risk: %v vs %v", withHistory.OverallRisk, without.OverallRisk)
	}
	if len(withHistory.Alerts) != 0 {
		t.Errorf("short history emitted trend alerts: %v", withHistory.Alerts)
	}
}

func TestResponsesForUnknownQuestionsIgnored(t *testing.T) {
	questions := []models.ChecklistItem{item("w1", models.CategoryWater, 5)}
	responses := map[string]string{"w1": "no", "ghost": "yes"}

	got := CalculateRiskScore(responses, questions, "", "", nil, nil)
	if got.OverallRisk != 0 {
		t.Errorf("OverallRisk = %v, want 0 when only unknown ids are affirmative", got.OverallRisk)
	}
}
