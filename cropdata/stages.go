package cropdata

import "cropwatch/models"

// Growth stages per crop, ordered germination -> maturity. Durations are days;
// rainfall bounds are annual-equivalent mm; humidity is qualitative.
var cropStages = map[string][]models.CropStage{
	"Rice": {
		{ID: "germination", Name: "Germination", Duration: 7, CriticalFactors: []string{"water", "temperature"}, IdealConditions: models.IdealConditions{TempMin: 10, TempMax: 32, RainfallMin: 1000, RainfallMax: 1500, Humidity: "high"}},
		{ID: "seedling", Name: "Seedling", Duration: 14, CriticalFactors: []string{"water", "nutrient"}, IdealConditions: models.IdealConditions{TempMin: 16, TempMax: 30, RainfallMin: 1000, RainfallMax: 1500, Humidity: "high"}},
		{ID: "tillering", Name: "Tillering", Duration: 20, CriticalFactors: []string{"water", "nutrient"}, IdealConditions: models.IdealConditions{TempMin: 18, TempMax: 32, RainfallMin: 1000, RainfallMax: 1500, Humidity: "high"}},
		{ID: "panicle-initiation", Name: "Panicle Initiation", Duration: 15, CriticalFactors: []string{"water"}, IdealConditions: models.IdealConditions{TempMin: 20, TempMax: 32, RainfallMin: 1000, RainfallMax: 1500, Humidity: "high"}},
		{ID: "flowering", Name: "Flowering", Duration: 10, CriticalFactors: []string{"temperature", "water"}, IdealConditions: models.IdealConditions{TempMin: 22, TempMax: 30, RainfallMin: 800, RainfallMax: 1200, Humidity: "medium"}},
		{ID: "grain-filling", Name: "Grain Filling", Duration: 15, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 20, TempMax: 30, RainfallMin: 600, RainfallMax: 1000, Humidity: "medium"}},
		{ID: "maturity", Name: "Maturity", Duration: 10, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 18, TempMax: 28, RainfallMin: 400, RainfallMax: 800, Humidity: "low"}},
	},
	"Wheat": {
		{ID: "germination", Name: "Germination", Duration: 6, CriticalFactors: []string{"temperature", "water"}, IdealConditions: models.IdealConditions{TempMin: 4, TempMax: 25, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "seedling", Name: "Seedling", Duration: 10, CriticalFactors: []string{"water", "nutrient"}, IdealConditions: models.IdealConditions{TempMin: 10, TempMax: 22, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "tillering", Name: "Tillering", Duration: 15, CriticalFactors: []string{"water"}, IdealConditions: models.IdealConditions{TempMin: 12, TempMax: 22, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "stem-elongation", Name: "Stem Elongation", Duration: 15, CriticalFactors: []string{"nutrient"}, IdealConditions: models.IdealConditions{TempMin: 15, TempMax: 22, RainfallMin: 400, RainfallMax: 700, Humidity: "medium"}},
		{ID: "booting", Name: "Booting", Duration: 8, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 15, TempMax: 22, RainfallMin: 400, RainfallMax: 700, Humidity: "medium"}},
		{ID: "heading", Name: "Heading", Duration: 7, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 15, TempMax: 22, RainfallMin: 350, RainfallMax: 650, Humidity: "medium"}},
		{ID: "flowering", Name: "Flowering", Duration: 7, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 15, TempMax: 22, RainfallMin: 350, RainfallMax: 650, Humidity: "low"}},
		{ID: "grain-filling", Name: "Grain Filling", Duration: 14, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 14, TempMax: 20, RainfallMin: 300, RainfallMax: 600, Humidity: "low"}},
		{ID: "maturity", Name: "Maturity", Duration: 10, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 12, TempMax: 18, RainfallMin: 200, RainfallMax: 400, Humidity: "low"}},
	},
	"Maize": {
		{ID: "germination", Name: "Germination", Duration: 5, CriticalFactors: []string{"temperature", "water"}, IdealConditions: models.IdealConditions{TempMin: 8, TempMax: 30, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "seedling", Name: "Seedling", Duration: 12, CriticalFactors: []string{"water", "nutrient"}, IdealConditions: models.IdealConditions{TempMin: 15, TempMax: 28, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "vegetative", Name: "Vegetative", Duration: 30, CriticalFactors: []string{"water", "nutrient"}, IdealConditions: models.IdealConditions{TempMin: 18, TempMax: 30, RainfallMin: 500, RainfallMax: 800, Humidity: "medium"}},
		{ID: "tasseling", Name: "Tasseling", Duration: 8, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 20, TempMax: 30, RainfallMin: 400, RainfallMax: 700, Humidity: "medium"}},
		{ID: "silking", Name: "Silking", Duration: 7, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 20, TempMax: 30, RainfallMin: 400, RainfallMax: 700, Humidity: "medium"}},
		{ID: "grain-filling", Name: "Grain Filling", Duration: 20, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 18, TempMax: 28, RainfallMin: 300, RainfallMax: 600, Humidity: "low"}},
		{ID: "maturity", Name: "Maturity", Duration: 10, CriticalFactors: []string{"temperature"}, IdealConditions: models.IdealConditions{TempMin: 18, TempMax: 28, RainfallMin: 200, RainfallMax: 400, Humidity: "low"}},
	},
}

// Short per-crop question sets used by the lightweight weekly record flow.
var fieldQuestions = map[string][]models.ChecklistItem{
	"Rice": {
		{ID: "rice-water", Question: "Is the field completely dry? (Should be flooded)", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "rice-pest-1", Question: "Do you see dead hearts (dried central shoots)?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "rice-pest-2", Question: "Are leaf tips turning yellow or brown?", Category: models.CategoryDisease, RiskWeight: 7},
		{ID: "rice-health", Question: "Does the crop look pale or yellowish?", Category: models.CategoryNutrient, RiskWeight: 6},
	},
	"Wheat": {
		{ID: "wheat-water", Question: "Is soil moisture very low? (Dry 10cm deep)", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "wheat-pest", Question: "Are there yellow stripes or rust powder on leaves?", Category: models.CategoryDisease, RiskWeight: 9},
		{ID: "wheat-temp", Question: "Is the temperature unusually hot?", Category: models.CategoryWeather, RiskWeight: 8},
		{ID: "wheat-health", Question: "Are plants shorter than normal?", Category: models.CategoryGrowth, RiskWeight: 6},
	},
	"Maize": {
		{ID: "maize-water", Question: "Are leaves curling inward during the day?", Category: models.CategoryWater, RiskWeight: 9},
		{ID: "maize-pest", Question: "Is there damage in the central whorl (Fall Armyworm)?", Category: models.CategoryPest, RiskWeight: 10},
		{ID: "maize-pest-2", Question: "Are silks being eaten?", Category: models.CategoryPest, RiskWeight: 8},
		{ID: "maize-health", Question: "Are lower leaves yellowing?", Category: models.CategoryNutrient, RiskWeight: 6},
	},
}
