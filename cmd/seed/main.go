package main

import (
	"context"

	"github.com/shenikar/urec_capacity_tracker/internal/config"
	"github.com/shenikar/urec_capacity_tracker/internal/models"
	"github.com/shenikar/urec_capacity_tracker/internal/repository"
	"github.com/shenikar/urec_capacity_tracker/pkg/logger"
	"github.com/shenikar/urec_capacity_tracker/pkg/postgres"
	"github.com/sirupsen/logrus"
)

// Начальный набор зон комплекса. Повторный запуск обновляет имя и
// максимальную вместимость, сохраняя текущий счетчик.
var initialAreas = []models.Area{
	{AreaID: "weight-room", Name: "Weight Room", MaxCapacity: 100, IsOpen: true},
	{AreaID: "cardio", Name: "Cardio Area", MaxCapacity: 60, IsOpen: true},
	{AreaID: "track", Name: "Indoor Track", MaxCapacity: 50, IsOpen: true},
	{AreaID: "pool", Name: "Swimming Pool", MaxCapacity: 40, IsOpen: true},
	{AreaID: "basketball", Name: "Basketball Courts", MaxCapacity: 30, IsOpen: true},
	{AreaID: "racquetball", Name: "Racquetball Courts", MaxCapacity: 20, IsOpen: true},
	{AreaID: "climbing", Name: "Climbing Wall", MaxCapacity: 15, IsOpen: true},
	{AreaID: "group-fitness", Name: "Group Fitness Studio", MaxCapacity: 40, IsOpen: true},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)
	ctx := context.Background()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	repo := repository.NewAreaRepository(dbpool)

	for i := range initialAreas {
		area := initialAreas[i]
		if err := repo.CreateArea(ctx, &area); err != nil {
			log.WithError(err).Fatalf("Failed to seed area %q", area.AreaID)
		}
		log.WithFields(logrus.Fields{
			"area_id":       area.AreaID,
			"max_capacity":  area.MaxCapacity,
			"current_count": area.CurrentCount,
		}).Info("Area seeded")
	}

	log.Infof("Seeding complete: %d areas", len(initialAreas))
}
