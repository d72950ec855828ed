package cmd

import (
	"context"
	"errors"

	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"olradar.se/Olradar/configs"
	"olradar.se/Olradar/pkg/model"
	"olradar.se/Olradar/pkg/repository"
)

type SeedCmd struct {
	ConfigFile string `default:".Olradar.toml" help:"Path to config file" short:"c"`
}

// Seed venues carry hand-assigned identifiers, unrelated to the slug scheme
// used for user-created venues.
func seedVenues(country string) []model.Venue {
	return []model.Venue{
		{ID: "v-hbg-001", Name: "Bishops Arms Helsingborg", City: "Helsingborg", Address: pointy.String("Södra Storgatan 2"), Country: country, OpenNow: true},
		{ID: "v-hbg-002", Name: "Telegrafen", City: "Helsingborg", Address: pointy.String("Norra Storgatan 14"), Country: country, OpenNow: true},
		{ID: "v-hbg-003", Name: "Olympia Krog", City: "Helsingborg", Country: country, OpenNow: true},
		{ID: "v-sto-001", Name: "Akkurat", City: "Stockholm", Address: pointy.String("Hornsgatan 18"), Country: country, OpenNow: true},
		{ID: "v-sto-002", Name: "Oliver Twist", City: "Stockholm", Address: pointy.String("Repslagargatan 6"), Country: country, OpenNow: true},
		{ID: "v-got-001", Name: "Ölhallen 7:an", City: "Göteborg", Address: pointy.String("Kungstorget 7"), Country: country, OpenNow: true},
		{ID: "v-got-002", Name: "Brewers Beer Bar", City: "Göteborg", Address: pointy.String("Tredje Långgatan 8"), Country: country, OpenNow: true},
		{ID: "v-mmo-001", Name: "Malmö Brewing Co", City: "Malmö", Address: pointy.String("Bergsgatan 33"), Country: country, OpenNow: true},
	}
}

func (s *SeedCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	ctx := context.Background()

	for _, venue := range seedVenues(conf.Venues.DefaultCountry) {
		_, err := repo.AddVenue(ctx, venue)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.Info("venue already seeded", zap.String("venue_id", venue.ID))

				continue
			}

			return err
		}

		logger.Info("seeded venue", zap.String("venue_id", venue.ID), zap.String("city", venue.City))
	}

	return nil
}
