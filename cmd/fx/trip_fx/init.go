package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vibecation/internal/repositories"
	"vibecation/internal/services"
	mem "vibecation/pkg/memcache"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, planCache mem.FinalPlanCache) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planCache)
}
