package cropdata

import (
	"fmt"

	"cropwatch/models"
)

// Catalog is the static agronomic knowledge base: growth stages, check-in
// questions and qualitative risk notes per crop type. It is built once at
// startup and passed by reference to whatever needs it; nothing mutates it
// after Validate.
type Catalog struct {
	cropTypes []string
	stages    map[string][]models.CropStage
	questions map[string][]models.ChecklistItem
	field     map[string][]models.ChecklistItem
	profiles  map[string]models.CropRiskProfile
}

// New builds the catalog from the static tables.
func New() *Catalog {
	return &Catalog{
		cropTypes: []string{"Rice", "Wheat", "Maize"},
		stages:    cropStages,
		questions: checkInQuestions,
		field:     fieldQuestions,
		profiles:  riskProfiles,
	}
}

// CropTypes returns the supported crop types in catalog order.
func (c *Catalog) CropTypes() []string {
	return c.cropTypes
}

// Stages returns the ordered growth stages for a crop type. Lookup is
// case-sensitive; an unsupported crop type yields an empty slice.
func (c *Catalog) Stages(cropType string) []models.CropStage {
	return c.stages[cropType]
}

// Stage looks up a single stage by id for a crop type. The second return
// value is false when either the crop or the stage is unknown.
func (c *Catalog) Stage(cropType, stageID string) (models.CropStage, bool) {
	for _, s := range c.stages[cropType] {
		if s.ID == stageID {
			return s, true
		}
	}
	return models.CropStage{}, false
}

// Questions returns the full check-in question catalog for a crop type.
func (c *Catalog) Questions(cropType string) []models.ChecklistItem {
	return c.questions[cropType]
}

// FieldQuestions returns the short question set used by the weekly record flow.
func (c *Catalog) FieldQuestions(cropType string) []models.ChecklistItem {
	return c.field[cropType]
}

// RiskProfile returns the qualitative risk notes for a crop type. The second
// return value is false for unsupported crops.
func (c *Catalog) RiskProfile(cropType string) (models.CropRiskProfile, bool) {
	p, ok := c.profiles[cropType]
	return p, ok
}

// Validate checks the static data for corruption: every question must carry a
// known category and a risk weight in [1,10]. A failure here means the catalog
// itself is broken and the process should not start.
func (c *Catalog) Validate() error {
	for crop, items := range c.questions {
		if err := validateItems(crop, items); err != nil {
			return err
		}
	}
	for crop, items := range c.field {
		if err := validateItems(crop, items); err != nil {
			return err
		}
	}
	for crop, stages := range c.stages {
		if len(stages) == 0 {
			return fmt.Errorf("crop %q has no growth stages", crop)
		}
		for _, s := range stages {
			if s.Duration <= 0 {
				return fmt.Errorf("crop %q stage %q has non-positive duration", crop, s.ID)
			}
			if s.IdealConditions.TempMin >= s.IdealConditions.TempMax {
				return fmt.Errorf("crop %q stage %q has inverted temperature band", crop, s.ID)
			}
		}
	}
	return nil
}

func validateItems(crop string, items []models.ChecklistItem) error {
	seen := make(map[string]bool, len(items))
	for _, q := range items {
		if !q.Category.Valid() {
			return fmt.Errorf("crop %q question %q has unknown category %q", crop, q.ID, q.Category)
		}
		if q.RiskWeight < 1 || q.RiskWeight > 10 {
			return fmt.Errorf("crop %q question %q has risk weight %d outside [1,10]", crop, q.ID, q.RiskWeight)
		}
		if seen[q.ID] {
			return fmt.Errorf("crop %q has duplicate question id %q", crop, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
