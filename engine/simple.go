package engine

import (
	"fmt"
	"strings"

	"cropwatch/models"
)

// AnalyzeCropRisk is the lightweight engine behind the weekly record flow.
// It accumulates flat points from the farmer's direct observations, the
// water/heat signals and the reported crop condition, clamps the score to
// [1,10] and classifies it on the 3-level scale. notes are the crop's
// qualitative risk notes, nil when the crop type is unsupported.
//
// The returned action list is deduplicated by exact string match, first
// occurrence wins.
func AnalyzeCropRisk(input models.FieldInput, notes *models.CropRiskProfile) models.FieldRiskOutput {
	score := 0.0
	var alerts []models.Alert
	var actions []string

	// Farmer's direct observations carry the most signal: a "Yes" to a known
	// problem question is an immediate risk.
	for _, q := range input.Questions {
		if input.Responses[q.ID] != "Yes" {
			continue
		}
		impact := 1.0
		switch {
		case q.RiskWeight >= 8:
			impact = 3
		case q.RiskWeight >= 6:
			impact = 2
		}
		score += impact

		severity := "medium"
		if q.RiskWeight >= 8 {
			severity = "high"
		}
		alerts = append(alerts, models.Alert{
			ID:       "risk-" + q.ID,
			Severity: severity,
			Category: string(q.Category),
			Message:  "Observed issue: " + q.Question,
			Action:   "Check the suggestions for immediate control measures.",
		})
	}

	// Low rain with no irrigation at all is a drought signal. Any other
	// irrigation answer, including partial ones, counts as irrigated.
	if input.Rainfall < 10 && input.Irrigation == "No" {
		score += 3
		alerts = append(alerts, models.Alert{
			ID:       "water-stress",
			Severity: "high",
			Category: string(models.CategoryWater),
			Message:  "Critical water deficit detected.",
			Action:   "Start irrigation immediately. Soil moisture is critically low.",
		})
		actions = append(actions, "Apply emergency irrigation (5cm depth).")
	}

	if input.PestSeen {
		score += 2
		actions = append(actions, "Scout field in zig-zag pattern to identify specific pest.")
		if notes != nil {
			for _, r := range notes.CommonRisks {
				if riskTypeMatches(r.Type, "pest", "worm", "army") {
					actions = append(actions, r.Mitigation)
				}
			}
		}
	}

	if input.Temp > 35 {
		score += 2
		alerts = append(alerts, models.Alert{
			ID:       "heat-stress",
			Severity: "medium",
			Category: string(models.CategoryWeather),
			Message:  fmt.Sprintf("Heat stress warning (%.0f°C).", input.Temp),
			Action:   "Maintain higher water level to cool the crop.",
		})
		if notes != nil {
			for _, r := range notes.CommonRisks {
				if riskTypeMatches(r.Type, "heat") {
					actions = append(actions, r.Mitigation)
				}
			}
		}
	}

	switch input.CropCondition {
	case models.ConditionPoor:
		score += 2
	case models.ConditionAverage:
		score += 1
	}

	// This engine never reports zero risk.
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	level := models.FieldRiskLow
	switch {
	case score >= 7:
		level = models.FieldRiskHigh
		actions = append([]string{"URGENT: Consult your local agriculture officer immediately."}, actions...)
	case score >= 4:
		level = models.FieldRiskMedium
		actions = append(actions, "Monitor field daily for the next 3 days.")
	default:
		actions = append(actions, "Continue routine monitoring.")
	}

	if notes != nil && score > 5 {
		actions = append(actions, notes.Analysis)
	}

	return models.FieldRiskOutput{
		Score:   score,
		Level:   level,
		Alerts:  alerts,
		Actions: dedupe(actions),
	}
}

func riskTypeMatches(riskType string, keywords ...string) bool {
	t := strings.ToLower(riskType)
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
