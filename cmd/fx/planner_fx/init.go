package planner_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vibecation/internal/repositories"
	"vibecation/internal/services"
	mem "vibecation/pkg/memcache"
	"vibecation/pkg/utils"
)

var Module = fx.Provide(
	providePlanCache,
	provideFinalPlanRepo,
	providePlannerService)

func providePlanCache() mem.FinalPlanCache {
	return mem.NewFinalPlans()
}

func provideFinalPlanRepo(db *gorm.DB) repositories.FinalPlanRepository {
	return repositories.NewFinalPlanRepository(db)
}

func providePlannerService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	finalPlanRepo repositories.FinalPlanRepository,
	pollService services.PollServiceInterface,
	normalizer *services.ItineraryNormalizer,
	aiClient utils.PlannerAIInterface,
	planCache mem.FinalPlanCache,
) services.PlannerServiceInterface {
	return services.NewPlannerService(tripRepo, suggestionRepo, finalPlanRepo, pollService, normalizer, aiClient, planCache)
}
