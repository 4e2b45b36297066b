package suggestion_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vibecation/internal/repositories"
	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

var Module = fx.Provide(
	provideIdentityResolver,
	provideNormalizer,
	provideSuggestionRepo,
	provideSuggestionService,
	provideCompletionRepo,
	provideCompletionService)

func provideIdentityResolver() utils.IdentityResolver {
	return utils.NewContentHashResolver()
}

func provideNormalizer(resolver utils.IdentityResolver) *services.ItineraryNormalizer {
	return services.NewItineraryNormalizer(resolver)
}

func provideSuggestionRepo(db *gorm.DB) repositories.SuggestionRepository {
	return repositories.NewSuggestionRepository(db)
}

func provideSuggestionService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	normalizer *services.ItineraryNormalizer,
	aiClient utils.PlannerAIInterface,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(tripRepo, suggestionRepo, normalizer, aiClient)
}

func provideCompletionRepo(db *gorm.DB) repositories.CompletionRepository {
	return repositories.NewCompletionRepository(db)
}

func provideCompletionService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	completionRepo repositories.CompletionRepository,
) services.CompletionServiceInterface {
	return services.NewCompletionService(tripRepo, suggestionRepo, completionRepo)
}
