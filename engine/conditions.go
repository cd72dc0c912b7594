package engine

import (
	"fmt"
	"math"

	"cropwatch/models"
)

// CompareWithIdealConditions checks current weather against a stage's ideal
// band and returns human-readable warnings plus a risk adjustment the caller
// adds to the overall score. A nil stage yields no warnings and a zero
// adjustment.
func CompareWithIdealConditions(stage *models.CropStage, weather models.WeatherSnapshot) (warnings []string, riskAdjustment float64) {
	if stage == nil {
		return nil, 0
	}
	ideal := stage.IdealConditions

	if weather.AvgTemp < ideal.TempMin {
		warnings = append(warnings, fmt.Sprintf(
			"Temperature %.1f°C is below the ideal minimum of %.0f°C for %s.",
			weather.AvgTemp, ideal.TempMin, stage.Name))
		riskAdjustment += 1.5
	} else if weather.AvgTemp > ideal.TempMax {
		warnings = append(warnings, fmt.Sprintf(
			"Temperature %.1f°C is above the ideal maximum of %.0f°C for %s.",
			weather.AvgTemp, ideal.TempMax, stage.Name))
		riskAdjustment += 2.0
	}

	if weather.Humidity < 50 {
		warnings = append(warnings, fmt.Sprintf(
			"Low humidity (%.0f%%) may stress the crop.", weather.Humidity))
		riskAdjustment += 1.0
	} else if weather.Humidity > 90 {
		warnings = append(warnings, fmt.Sprintf(
			"Very high humidity (%.0f%%) favors fungal disease.", weather.Humidity))
		riskAdjustment += 1.5
	}

	return warnings, riskAdjustment
}

// AdjustForConditions folds comparator output into an assessment: the
// adjustment raises the overall score (still capped at 10, level re-derived)
// and each warning becomes a medium weather alert.
func AdjustForConditions(a *models.RiskAssessment, warnings []string, adjustment float64) {
	if adjustment > 0 {
		a.OverallRisk = round1(math.Min(a.OverallRisk+adjustment, 10))
		a.RiskLevel = RiskLevelFor(a.OverallRisk)
	}
	for _, w := range warnings {
		a.Alerts = append(a.Alerts, models.Alert{
			ID:       "weather-" + shortID(),
			Severity: "medium",
			Category: string(models.CategoryWeather),
			Message:  w,
			Action:   "Adjust field operations for the current conditions.",
		})
	}
}
