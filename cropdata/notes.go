package cropdata

import "cropwatch/models"

// Qualitative risk notes per crop, used to enrich recommendations and actions.
var riskProfiles = map[string]models.CropRiskProfile{
	"Rice": {
		CommonRisks: []models.CropRisk{
			{Type: "Drought", Impact: "High", Mitigation: "Ensure alternative irrigation sources are ready."},
			{Type: "Blast Disease", Impact: "Moderate", Mitigation: "Avoid excessive nitrogen fertilization."},
		},
		Analysis: "Rice is highly sensitive to water availability. Monitoring flood levels daily is recommended during tillering and flowering stages.",
	},
	"Wheat": {
		CommonRisks: []models.CropRisk{
			{Type: "Heat Stress", Impact: "High", Mitigation: "Early sowing and selection of heat-tolerant varieties."},
			{Type: "Rust Disease", Impact: "High", Mitigation: "Apply fungicides early if yellow rust is spotted."},
		},
		Analysis: "Wheat yields are heavily impacted by terminal heat stress. Monitoring temperature trends during the grain-filling stage is critical.",
	},
	"Maize": {
		CommonRisks: []models.CropRisk{
			{Type: "Fall Armyworm", Impact: "Critical", Mitigation: "Regular scouting and early pesticide application."},
			{Type: "Nitrogen Deficiency", Impact: "Moderate", Mitigation: "Split-apply nitrogen fertilizers for better uptake."},
		},
		Analysis: "Maize requires significant nutrient management. Pests like Fall Armyworm can devastate entire fields if not caught early.",
	},
}
