package engine

import "cropwatch/models"

// Base category weights for the final weighted average. Disease and weather
// carry the most weight, nutrient the least.
var baseCategoryWeights = map[models.Category]float64{
	models.CategoryPest:     1.2,
	models.CategoryDisease:  1.5,
	models.CategoryWater:    1.3,
	models.CategoryNutrient: 1.0,
	models.CategoryWeather:  1.4,
	models.CategoryGrowth:   1.1,
}

// Per-crop category multipliers. Crops not in the table score neutrally.
var cropMultipliers = map[string]map[models.Category]float64{
	"Rice": {
		models.CategoryPest:     1.3,
		models.CategoryDisease:  1.4,
		models.CategoryWater:    1.5,
		models.CategoryNutrient: 1.1,
		models.CategoryWeather:  1.2,
		models.CategoryGrowth:   1.1,
	},
	"Wheat": {
		models.CategoryPest:     1.1,
		models.CategoryDisease:  1.4,
		models.CategoryWater:    1.3,
		models.CategoryNutrient: 1.2,
		models.CategoryWeather:  1.5,
		models.CategoryGrowth:   1.1,
	},
	"Maize": {
		models.CategoryPest:     1.6,
		models.CategoryDisease:  1.2,
		models.CategoryWater:    1.4,
		models.CategoryNutrient: 1.3,
		models.CategoryWeather:  1.2,
		models.CategoryGrowth:   1.1,
	},
}

// Per-stage category multipliers, keyed by the six stage buckets. Stage ids
// outside the buckets (tillering, booting, silking, ...) fall back to the
// vegetative table.
var stageMultipliers = map[string]map[models.Category]float64{
	"germination": {
		models.CategoryPest:     1.1,
		models.CategoryDisease:  1.3,
		models.CategoryWater:    1.5,
		models.CategoryNutrient: 1.0,
		models.CategoryWeather:  1.4,
		models.CategoryGrowth:   1.2,
	},
	"seedling": {
		models.CategoryPest:     1.4,
		models.CategoryDisease:  1.3,
		models.CategoryWater:    1.3,
		models.CategoryNutrient: 1.2,
		models.CategoryWeather:  1.2,
		models.CategoryGrowth:   1.2,
	},
	"vegetative": {
		models.CategoryPest:     1.3,
		models.CategoryDisease:  1.2,
		models.CategoryWater:    1.2,
		models.CategoryNutrient: 1.4,
		models.CategoryWeather:  1.1,
		models.CategoryGrowth:   1.2,
	},
	"flowering": {
		models.CategoryPest:     1.2,
		models.CategoryDisease:  1.3,
		models.CategoryWater:    1.4,
		models.CategoryNutrient: 1.3,
		models.CategoryWeather:  1.5,
		models.CategoryGrowth:   1.3,
	},
	"grain-filling": {
		models.CategoryPest:     1.2,
		models.CategoryDisease:  1.2,
		models.CategoryWater:    1.4,
		models.CategoryNutrient: 1.4,
		models.CategoryWeather:  1.3,
		models.CategoryGrowth:   1.3,
	},
	"maturity": {
		models.CategoryPest:     1.2,
		models.CategoryDisease:  1.2,
		models.CategoryWater:    1.0,
		models.CategoryNutrient: 1.0,
		models.CategoryWeather:  1.4,
		models.CategoryGrowth:   1.1,
	},
}

func cropMultiplier(cropType string, cat models.Category) float64 {
	if m, ok := cropMultipliers[cropType]; ok {
		return m[cat]
	}
	return 1.0
}

func stageBucket(stageID string) string {
	if _, ok := stageMultipliers[stageID]; ok {
		return stageID
	}
	return "vegetative"
}

func stageMultiplier(stageID string, cat models.Category) float64 {
	return stageMultipliers[stageBucket(stageID)][cat]
}

// weatherMultiplier boosts a category when current conditions favor that kind
// of stress: warm/humid air breeds pests, sustained humidity breeds disease,
// heat and dry spells mean water stress, extremes and downpours are weather
// risk in their own right.
func weatherMultiplier(w models.WeatherSnapshot, cat models.Category) float64 {
	switch cat {
	case models.CategoryPest:
		if w.AvgTemp > 30 || w.Humidity > 80 {
			return 1.3
		}
	case models.CategoryDisease:
		if w.Humidity > 85 || (w.AvgTemp >= 25 && w.AvgTemp <= 30) {
			return 1.4
		}
	case models.CategoryWater:
		if w.AvgTemp > 35 || w.Rainfall < 5 {
			return 1.4
		}
	case models.CategoryWeather:
		if w.AvgTemp < 5 || w.AvgTemp > 40 || w.Rainfall > 50 {
			return 1.4
		}
	}
	return 1.0
}

// trendMultiplier compares the last three historical factor values for a
// category. A worsening trend amplifies new contributions, an improving one
// dampens them. Needs at least three history entries; otherwise neutral.
func trendMultiplier(history []models.AssessmentSnapshot, cat models.Category) float64 {
	if len(history) < 3 {
		return 1.0
	}
	recent := history[len(history)-3:]
	first := recent[0].Factors[cat]
	last := recent[2].Factors[cat]
	switch diff := last - first; {
	case diff > 1:
		return 1.2
	case diff > 0.5:
		return 1.1
	case diff < -1:
		return 0.9
	}
	return 1.0
}

// adjustedCategoryWeights returns the final weights for the weighted average,
// starting from the base table and boosting categories that matter more for
// the given crop, stage and current weather.
func adjustedCategoryWeights(cropType, currentStage string, weather *models.WeatherSnapshot) map[models.Category]float64 {
	weights := make(map[models.Category]float64, len(baseCategoryWeights))
	for cat, w := range baseCategoryWeights {
		weights[cat] = w
	}

	switch cropType {
	case "Rice":
		weights[models.CategoryWater] *= 1.3
		weights[models.CategoryDisease] *= 1.2
	case "Cotton":
		weights[models.CategoryPest] *= 1.3
		weights[models.CategoryNutrient] *= 1.2
	}

	switch stageBucket(currentStage) {
	case "flowering", "grain-filling":
		weights[models.CategoryNutrient] *= 1.2
		weights[models.CategoryWater] *= 1.2
	}

	if weather != nil {
		if weather.AvgTemp > 35 {
			weights[models.CategoryWater] *= 1.3
			weights[models.CategoryWeather] *= 1.2
		}
		if weather.Humidity > 85 {
			weights[models.CategoryDisease] *= 1.3
		}
	}
	return weights
}
