package main

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirelens/assessment-engine/internal/config"
	"hirelens/assessment-engine/internal/models"
)

// Seeds a minimal engineering rubric so the API has configuration to serve
// in development: four dimensions with default levels, one role-family
// override, two archetypes with weights and seniority gates.
func main() {
	log.Println("🚀 Starting rubric seed...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	log.Println("✅ Rubric seed completed")
}

type dimensionSeed struct {
	Slug        string
	Name        string
	Description string
	IsUniversal bool
	Labels      [4]string
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		family := models.RoleFamily{
			ID:   uuid.New(),
			Slug: "engineering",
			Name: "Engineering",
		}
		if err := tx.Create(&family).Error; err != nil {
			return err
		}

		dimensionSeeds := []dimensionSeed{
			{
				Slug:        "technical_depth",
				Name:        "Technical Depth",
				Description: "Command of the technologies and concepts the role requires",
				Labels:      [4]string{"Surface familiarity", "Working knowledge", "Deep understanding", "Authoritative expertise"},
			},
			{
				Slug:        "problem_solving",
				Name:        "Problem Solving",
				Description: "Structure and rigor when decomposing unfamiliar problems",
				Labels:      [4]string{"Needs full guidance", "Solves with hints", "Solves independently", "Reframes the problem"},
			},
			{
				Slug:        "communication",
				Name:        "Communication",
				Description: "Clarity and adaptation to the audience",
				IsUniversal: true,
				Labels:      [4]string{"Hard to follow", "Mostly clear", "Consistently clear", "Elevates the discussion"},
			},
			{
				Slug:        "ownership",
				Name:        "Ownership",
				Description: "Initiative and follow-through without being driven",
				IsUniversal: true,
				Labels:      [4]string{"Reactive", "Delivers assigned work", "Anticipates needs", "Drives outcomes"},
			},
		}

		dimensions := make(map[string]models.Dimension, len(dimensionSeeds))
		for i, ds := range dimensionSeeds {
			dim := models.Dimension{
				ID:          uuid.New(),
				Slug:        ds.Slug,
				Name:        ds.Name,
				Description: ds.Description,
				IsUniversal: ds.IsUniversal,
			}
			if err := tx.Create(&dim).Error; err != nil {
				return err
			}
			dimensions[ds.Slug] = dim

			link := models.RoleFamilyDimension{
				RoleFamilyID: family.ID,
				DimensionID:  dim.ID,
				SortOrder:    i + 1,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}

			// Default levels, role-family agnostic.
			for level := 1; level <= 4; level++ {
				rubricLevel := models.RubricLevel{
					ID:          uuid.New(),
					DimensionID: dim.ID,
					Level:       level,
					Label:       ds.Labels[level-1],
					Description: ds.Name + " at level " + ds.Labels[level-1],
					Examples:    []string{},
				}
				if err := tx.Create(&rubricLevel).Error; err != nil {
					return err
				}
			}
		}

		// One engineering-specific override so the fallback path has data.
		override := models.RubricLevel{
			ID:           uuid.New(),
			DimensionID:  dimensions["technical_depth"].ID,
			RoleFamilyID: &family.ID,
			Level:        4,
			Label:        "Systems-level expertise",
			Description:  "Reasons about architecture trade-offs across the whole stack",
			Examples:     []string{"Walks through a past scaling decision with concrete numbers"},
		}
		if err := tx.Create(&override).Error; err != nil {
			return err
		}

		redFlag := models.RedFlag{
			ID:           uuid.New(),
			RoleFamilyID: family.ID,
			Slug:         "blames_others",
			Name:         "Blames others",
			Description:  "Consistently attributes failures to teammates or circumstances",
		}
		if err := tx.Create(&redFlag).Error; err != nil {
			return err
		}

		archetypes := []struct {
			Slug    string
			Name    string
			Weights map[string]float64
			Gates   map[models.SeniorityLevel]map[string]int
		}{
			{
				Slug: "backend_engineer",
				Name: "Backend Engineer",
				Weights: map[string]float64{
					"technical_depth": 0.4,
					"problem_solving": 0.3,
					"communication":   0.15,
					"ownership":       0.15,
				},
				Gates: map[models.SeniorityLevel]map[string]int{
					models.SeniorityJunior: {"technical_depth": 1, "problem_solving": 1},
					models.SeniorityMid:    {"technical_depth": 2, "problem_solving": 2, "ownership": 2},
					models.SenioritySenior: {"technical_depth": 3, "problem_solving": 3, "communication": 3, "ownership": 3},
				},
			},
			{
				Slug: "frontend_engineer",
				Name: "Frontend Engineer",
				Weights: map[string]float64{
					"technical_depth": 0.3,
					"problem_solving": 0.25,
					"communication":   0.3,
					"ownership":       0.15,
				},
				Gates: map[models.SeniorityLevel]map[string]int{
					models.SeniorityJunior: {"technical_depth": 1},
					models.SeniorityMid:    {"technical_depth": 2, "communication": 2},
					models.SenioritySenior: {"technical_depth": 3, "communication": 3, "ownership": 3},
				},
			},
		}

		for _, arch := range archetypes {
			archetype := models.Archetype{
				ID:           uuid.New(),
				RoleFamilyID: family.ID,
				Slug:         arch.Slug,
				Name:         arch.Name,
			}
			if err := tx.Create(&archetype).Error; err != nil {
				return err
			}

			for slug, weight := range arch.Weights {
				w := models.ArchetypeWeight{
					ID:          uuid.New(),
					ArchetypeID: archetype.ID,
					DimensionID: dimensions[slug].ID,
					Weight:      weight,
				}
				if err := tx.Create(&w).Error; err != nil {
					return err
				}
			}

			for level, gates := range arch.Gates {
				for slug, minScore := range gates {
					gate := models.SeniorityGate{
						ID:          uuid.New(),
						ArchetypeID: archetype.ID,
						DimensionID: dimensions[slug].ID,
						Level:       level,
						MinScore:    minScore,
					}
					if err := tx.Create(&gate).Error; err != nil {
						return err
					}
				}
			}

			log.Printf("✅ Seeded archetype %s\n", arch.Slug)
		}

		return nil
	})
}
