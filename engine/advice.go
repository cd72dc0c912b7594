package engine

import "cropwatch/models"

// Generic advice per category, appended after any crop- or stage-specific
// advice when a category's factor crosses the recommendation threshold.
var genericAdvice = map[models.Category][]string{
	models.CategoryPest: {
		"Scout the field in a zig-zag pattern and record pest counts.",
		"Use pheromone or light traps to monitor pest pressure.",
		"Apply need-based pesticide only after crossing economic thresholds.",
		"Encourage natural enemies; avoid blanket sprays.",
		"Remove and destroy heavily infested plants.",
	},
	models.CategoryDisease: {
		"Remove and destroy infected plant material away from the field.",
		"Improve air circulation; avoid dense canopy and excess nitrogen.",
		"Apply a recommended fungicide at the first sign of spread.",
		"Use clean seed and resistant varieties next season.",
		"Avoid overhead irrigation late in the day.",
	},
	models.CategoryWater: {
		"Check soil moisture at root depth before and after irrigation.",
		"Repair channels and remove drainage blockages.",
		"Irrigate early morning or evening to reduce losses.",
		"Mulch between rows to conserve soil moisture.",
		"Level the field to avoid dry and waterlogged patches.",
	},
	models.CategoryNutrient: {
		"Split fertilizer applications to match crop demand.",
		"Apply a balanced NPK dose based on soil test results.",
		"Correct visible deficiencies with foliar sprays for fast recovery.",
		"Add organic matter to improve nutrient retention.",
		"Avoid over-fertilizing; excess nitrogen invites pests and disease.",
	},
	models.CategoryWeather: {
		"Monitor the weather forecast daily for the next week.",
		"Delay spraying and fertilizing ahead of heavy rain or wind.",
		"Provide drainage before storms; stake or earth-up vulnerable plants.",
		"Protect young plants from temperature extremes where possible.",
		"Plan field operations around predicted dry windows.",
	},
	models.CategoryGrowth: {
		"Compare plant height and stand against the expected stage benchmarks.",
		"Thin or gap-fill to maintain optimal plant population.",
		"Address underlying water and nutrient stress slowing growth.",
		"Record stage progression weekly to catch delays early.",
		"Consult an extension officer if growth stays behind schedule.",
	},
}

// Crop-specific advice, put ahead of the generic list.
var cropAdvice = map[string]map[models.Category][]string{
	"Rice": {
		models.CategoryWater: {
			"Maintain about 5cm of standing water through tillering and flowering.",
			"Check bunds daily for leaks and repair them the same day.",
		},
		models.CategoryDisease: {
			"Avoid excessive nitrogen; it predisposes rice to blast.",
		},
		models.CategoryPest: {
			"Drain the field for 2-3 days to disturb stem borer and hopper buildup.",
		},
	},
	"Wheat": {
		models.CategoryWeather: {
			"Plan irrigation to buffer terminal heat during grain filling.",
		},
		models.CategoryDisease: {
			"Spray early against rusts; switch to resistant varieties next season.",
		},
		models.CategoryWater: {
			"Do not miss the crown root initiation and flowering irrigations.",
		},
	},
	"Maize": {
		models.CategoryPest: {
			"Scout whorls twice a week for fall armyworm egg masses.",
			"Apply control measures directly into the whorl, not broadcast.",
		},
		models.CategoryNutrient: {
			"Split-apply nitrogen at knee-high stage and at tasseling.",
		},
		models.CategoryWater: {
			"Never let the field dry out between tasseling and silking.",
		},
	},
}

// Stage-specific advice keyed by stage bucket, placed between crop-specific
// and generic advice.
var stageAdvice = map[string]map[models.Category][]string{
	"germination": {
		models.CategoryWater:   {"Keep the seedbed uniformly moist until emergence."},
		models.CategoryWeather: {"Protect emerging seedlings from temperature extremes."},
	},
	"seedling": {
		models.CategoryPest:     {"Check seedlings daily; early pest damage is hard to outgrow."},
		models.CategoryNutrient: {"Apply starter fertilizer if seedlings look pale."},
	},
	"vegetative": {
		models.CategoryNutrient: {"This is peak nutrient uptake; top-dress on schedule."},
		models.CategoryWater:    {"Avoid water stress during active tillering and stem growth."},
	},
	"flowering": {
		models.CategoryWater:    {"Flowering is the most water-sensitive window; irrigate on time."},
		models.CategoryWeather:  {"Heat at flowering causes sterility; irrigate to cool the canopy."},
		models.CategoryNutrient: {"Hold back heavy nitrogen now; focus on potassium."},
	},
	"grain-filling": {
		models.CategoryNutrient: {"Maintain nutrition through grain filling for fully formed kernels."},
		models.CategoryWater:    {"Keep soil moist; stress now shrivels the grain."},
	},
	"maturity": {
		models.CategoryWeather: {"Harvest promptly once mature; unseasonal rain degrades grain."},
		models.CategoryWater:   {"Taper off irrigation as the crop dries down."},
	},
}

type alertText struct {
	Message string
	Action  string
}

// Bespoke alert texts for a handful of question ids whose symptom points at a
// specific, well-known problem. Everything else gets a generic alert built
// from the question text.
var alertOverrides = map[string]alertText{
	"rice-pest-5": {
		Message: "White heads suggest stem borer damage in your rice crop.",
		Action:  "Apply recommended stem borer control immediately and remove affected tillers.",
	},
	"rice-disease-1": {
		Message: "Diamond-shaped lesions indicate rice blast.",
		Action:  "Apply a blast-effective fungicide and avoid excess nitrogen.",
	},
	"rice-water-9": {
		Message: "No standing water during flowering puts rice yield at severe risk.",
		Action:  "Restore irrigation immediately; flowering is the most water-sensitive stage.",
	},
	"wheat-disease-1": {
		Message: "Yellow-orange stripes indicate stripe rust in wheat.",
		Action:  "Apply fungicide early; rust spreads fast in cool humid weather.",
	},
	"wheat-water-5": {
		Message: "Dry soil during flowering or grain filling sharply reduces wheat yield.",
		Action:  "Irrigate now and prioritize this field over others.",
	},
	"wheat-weather-1": {
		Message: "Frost damage reported in wheat.",
		Action:  "Wait a few days to assess regrowth before deciding on replanting.",
	},
	"maize-pest-1": {
		Message: "Caterpillars with an inverted Y mark are fall armyworm in maize.",
		Action:  "Begin whorl-directed control now; armyworm can destroy a field within days.",
	},
	"maize-water-4": {
		Message: "Drought during silk emergence severely cuts maize kernel set.",
		Action:  "Irrigate immediately; silking is the most drought-sensitive stage.",
	},
	"maize-disease-8": {
		Message: "Wilting despite adequate water suggests stalk rot.",
		Action:  "Improve drainage and remove affected plants from the field.",
	},
}
