package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/university"
	"gradpath-server/internal/infrastructure/logger"
	"gradpath-server/internal/utils/idgen"
	"gradpath-server/internal/utils/platformerrors"
)

//go:embed universities.yaml
var defaultCatalog []byte

type DataInitializer struct {
	universities *university.Service
}

type catalogFile struct {
	Universities []catalogEntry `yaml:"universities"`
}

type catalogEntry struct {
	Name              string `yaml:"name"`
	Country           string `yaml:"country"`
	Program           string `yaml:"program"`
	Rank              int    `yaml:"rank"`
	TuitionFeePerYear string `yaml:"tuition_fee_per_year"`
	CostLevel         string `yaml:"cost_level"`
	Competitiveness   string `yaml:"competitiveness"`
	AcceptanceChance  string `yaml:"acceptance_chance"`
	Description       string `yaml:"description"`
	WhyItFits         string `yaml:"why_it_fits"`
	Risks             string `yaml:"risks"`
}

// Install seeds the university catalog. A catalog file configured via
// UNIVERSITY_CATALOG_FILE replaces the embedded default.
func (d *DataInitializer) Install(ctx context.Context) error {
	log := logger.GetLogger()
	cfg := config.GetGlobal()

	raw := defaultCatalog
	if cfg != nil && cfg.UniversityCatalogFile != "" {
		data, err := os.ReadFile(cfg.UniversityCatalogFile)
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err,
				fmt.Sprintf("failed to read catalog file %q", cfg.UniversityCatalogFile))
		}
		raw = data
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to parse university catalog")
	}

	unis := make([]*university.University, 0, len(file.Universities))
	for i := range file.Universities {
		entry := file.Universities[i]
		if entry.Name == "" {
			continue
		}

		tuition := decimal.Zero
		if entry.TuitionFeePerYear != "" {
			parsed, err := decimal.NewFromString(entry.TuitionFeePerYear)
			if err != nil {
				return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err,
					fmt.Sprintf("invalid tuition fee for %q", entry.Name))
			}
			tuition = parsed
		}

		unis = append(unis, &university.University{
			PublicID:          idgen.MustGenerateSecureID("univ", 16),
			Name:              entry.Name,
			Country:           entry.Country,
			Program:           entry.Program,
			Rank:              entry.Rank,
			TuitionFeePerYear: tuition,
			CostLevel:         entry.CostLevel,
			Competitiveness:   entry.Competitiveness,
			AcceptanceChance:  entry.AcceptanceChance,
			Description:       entry.Description,
			WhyItFits:         entry.WhyItFits,
			Risks:             entry.Risks,
			IsActive:          true,
		})
	}

	if err := d.universities.SeedCatalog(ctx, unis); err != nil {
		return err
	}

	log.Info().Int("universities", len(unis)).Msg("University catalog seeded")
	return nil
}
