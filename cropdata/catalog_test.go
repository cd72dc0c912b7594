package cropdata

import (
	"testing"

	"cropwatch/models"
)

func TestCatalogValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCatalogCropTypes(t *testing.T) {
	got := New().CropTypes()
	want := []string{"Rice", "Wheat", "Maize"}
	if len(got) != len(want) {
		t.Fatalf("CropTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CropTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogQuestionCounts(t *testing.T) {
	c := New()
	tests := []struct {
		crop  string
		count int
	}{
		{"Rice", 64},
		{"Wheat", 64},
		{"Maize", 46},
	}
	for _, tc := range tests {
		if got := len(c.Questions(tc.crop)); got != tc.count {
			t.Errorf("Questions(%q) = %d items, want %d", tc.crop, got, tc.count)
		}
		if got := len(c.FieldQuestions(tc.crop)); got != 4 {
			t.Errorf("FieldQuestions(%q) = %d items, want 4", tc.crop, got)
		}
	}
}

func TestCatalogUnsupportedCrop(t *testing.T) {
	c := New()
	if got := c.Questions("Durian"); len(got) != 0 {
		t.Errorf("Questions(Durian) = %v, want empty", got)
	}
	if got := c.Stages("Durian"); len(got) != 0 {
		t.Errorf("Stages(Durian) = %v, want empty", got)
	}
	if _, ok := c.RiskProfile("Durian"); ok {
		t.Error("RiskProfile(Durian) ok = true, want false")
	}
	if _, ok := c.Stage("Durian", "flowering"); ok {
		t.Error("Stage(Durian, flowering) ok = true, want false")
	}
}

func TestCatalogStageLookup(t *testing.T) {
	c := New()
	stage, ok := c.Stage("Rice", "flowering")
	if !ok {
		t.Fatal("Stage(Rice, flowering) not found")
	}
	if stage.Name != "Flowering" {
		t.Errorf("stage name = %q, want Flowering", stage.Name)
	}
	if stage.IdealConditions.TempMax != 30 {
		t.Errorf("TempMax = %v, want 30", stage.IdealConditions.TempMax)
	}

	if _, ok := c.Stage("Rice", "tasseling"); ok {
		t.Error("Stage(Rice, tasseling) ok = true, want false")
	}
}

func TestCatalogRiskProfiles(t *testing.T) {
	c := New()
	for _, crop := range c.CropTypes() {
		p, ok := c.RiskProfile(crop)
		if !ok {
			t.Errorf("RiskProfile(%q) missing", crop)
			continue
		}
		if len(p.CommonRisks) == 0 {
			t.Errorf("RiskProfile(%q) has no common risks", crop)
		}
		if p.Analysis == "" {
			t.Errorf("RiskProfile(%q) has empty analysis", crop)
		}
		for _, r := range p.CommonRisks {
			if r.Type == "" || r.Mitigation == "" {
				t.Errorf("RiskProfile(%q) risk %+v incomplete", crop, r)
			}
		}
	}
}

func TestCatalogQuestionCategoriesValid(t *testing.T) {
	c := New()
	for _, crop := range c.CropTypes() {
		for _, q := range c.Questions(crop) {
			if !q.Category.Valid() {
				t.Errorf("%s question %s has invalid category %q", crop, q.ID, q.Category)
			}
		}
	}
	// Spot-check an entry against the source sheet.
	var found bool
	for _, q := range c.Questions("Maize") {
		if q.ID == "maize-pest-1" {
			found = true
			if q.Category != models.CategoryPest || q.RiskWeight != 10 {
				t.Errorf("maize-pest-1 = %+v, want pest weight 10", q)
			}
		}
	}
	if !found {
		t.Error("maize-pest-1 missing from Maize questions")
	}
}
