// Package engine holds the risk assessment core: a weighted multi-factor
// engine for the weekly check-in flow, a simple point-based engine for the
// lightweight weekly record flow, and an ideal-conditions comparator. All
// entry points are pure functions of their arguments; nothing here touches
// the database, the clock (outside alert id suffixes) or shared state, so
// every function is safe to call from concurrent request handlers.
package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cropwatch/models"
)

// CalculateRiskScore scores a full check-in response set against the supplied
// question catalog. cropType, currentStage, weather and history are optional
// context: unknown crops and stages score neutrally, a nil weather skips the
// weather multipliers, and trend analysis needs at least three history
// entries (ordered oldest to newest, already filtered by the caller).
func CalculateRiskScore(
	responses map[string]string,
	questions []models.ChecklistItem,
	cropType string,
	currentStage string,
	weather *models.WeatherSnapshot,
	history []models.AssessmentSnapshot,
) models.RiskAssessment {
	scores := make(map[models.Category][]float64)
	var alerts []models.Alert

	for _, q := range questions {
		if !isAffirmative(responses[q.ID]) {
			continue
		}
		contribution := float64(q.RiskWeight)
		contribution *= cropMultiplier(cropType, q.Category)
		contribution *= stageMultiplier(currentStage, q.Category)
		if weather != nil {
			contribution *= weatherMultiplier(*weather, q.Category)
		}
		contribution *= trendMultiplier(history, q.Category)
		if contribution > 10 {
			contribution = 10
		}
		scores[q.Category] = append(scores[q.Category], contribution)

		if contribution >= 8 {
			alerts = append(alerts, questionAlert(q))
		}
	}

	factors := make(map[models.Category]float64, len(models.Categories()))
	for _, cat := range models.Categories() {
		factors[cat] = mean(scores[cat])
	}

	weights := adjustedCategoryWeights(cropType, currentStage, weather)
	var weightedSum, weightSum float64
	for _, cat := range models.Categories() {
		if factors[cat] <= 0 {
			continue
		}
		weightedSum += factors[cat] * weights[cat]
		weightSum += weights[cat]
	}
	overall := 0.0
	if weightSum > 0 {
		overall = round1(weightedSum / weightSum)
	}

	recommendations := buildRecommendations(factors, cropType, currentStage)
	alerts = append(alerts, trendAlerts(factors, history)...)

	return models.RiskAssessment{
		OverallRisk:     overall,
		RiskLevel:       RiskLevelFor(overall),
		Factors:         factors,
		Alerts:          alerts,
		Recommendations: recommendations,
	}
}

// RiskLevelFor classifies a (rounded) overall risk score. Classification is
// idempotent: re-running the pipeline on a rounded score never changes the
// level.
func RiskLevelFor(score float64) models.RiskLevel {
	switch {
	case score < 3:
		return models.RiskLow
	case score < 5:
		return models.RiskMedium
	case score < 7:
		return models.RiskHigh
	}
	return models.RiskCritical
}

// buildRecommendations emits advice for every category whose factor exceeds 5:
// crop-specific first, then stage-specific, then generic, truncated to a
// length derived from the factor itself. The truncation is applied after the
// specific advice is prepended, so a long specific list can crowd out the
// generic entries; existing callers rely on that ordering.
func buildRecommendations(factors map[models.Category]float64, cropType, currentStage string) []string {
	var recs []string
	bucket := stageBucket(currentStage)
	for _, cat := range models.Categories() {
		f := factors[cat]
		if f <= 5 {
			continue
		}
		var list []string
		if perCrop, ok := cropAdvice[cropType]; ok {
			list = append(list, perCrop[cat]...)
		}
		list = append(list, stageAdvice[bucket][cat]...)
		list = append(list, genericAdvice[cat]...)

		limit := 3
		switch {
		case f > 7:
			limit = 5
		case f > 5:
			limit = 4
		}
		if len(list) > limit {
			list = list[:limit]
		}
		recs = append(recs, list...)
	}
	return recs
}

// trendAlerts runs the secondary trend pass: a category whose current factor
// is at least 3 and exceeds its recent historical average by more than 2
// points is flagged as deteriorating.
func trendAlerts(factors map[models.Category]float64, history []models.AssessmentSnapshot) []models.Alert {
	if len(history) < 3 {
		return nil
	}
	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	var alerts []models.Alert
	for _, cat := range models.Categories() {
		current := factors[cat]
		if current < 3 {
			continue
		}
		var sum float64
		for _, h := range recent {
			sum += h.Factors[cat]
		}
		avg := sum / float64(len(recent))
		excess := current - avg
		if excess <= 2 {
			continue
		}
		severity := "high"
		if excess > 3 {
			severity = "critical"
		}
		alerts = append(alerts, models.Alert{
			ID:       fmt.Sprintf("trend-%s-%s", cat, shortID()),
			Severity: severity,
			Category: string(cat),
			Message:  fmt.Sprintf("Rising %s risk compared to your recent check-ins.", cat),
			Action:   "Review this week's responses and address the flagged category before it worsens.",
		})
	}
	return alerts
}

func questionAlert(q models.ChecklistItem) models.Alert {
	severity := "medium"
	if q.RiskWeight >= 8 {
		severity = "high"
	}
	message := "Issue detected: " + q.Question
	action := "Consult the suggestions list or your local agriculture office."
	if t, ok := alertOverrides[q.ID]; ok {
		message = t.Message
		action = t.Action
	}
	return models.Alert{
		ID:       fmt.Sprintf("q-%s-%s", q.ID, shortID()),
		Severity: severity,
		Category: string(q.Category),
		Message:  message,
		Action:   action,
	}
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

// shortID returns a random suffix for alert ids. Ids exist for display and
// deduplication only; scoring never depends on them.
func shortID() string {
	return uuid.NewString()[:8]
}
