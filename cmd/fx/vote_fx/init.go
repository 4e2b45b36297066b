package vote_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vibecation/internal/repositories"
	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

var Module = fx.Provide(provideVoteRepo, provideVoteService, providePollService)

func provideVoteRepo(db *gorm.DB) repositories.VoteRepository {
	return repositories.NewVoteRepository(db)
}

func provideVoteService(voteRepo repositories.VoteRepository) services.VoteServiceInterface {
	return services.NewVoteService(voteRepo)
}

func providePollService(
	voteRepo repositories.VoteRepository,
	suggestionRepo repositories.SuggestionRepository,
	normalizer *services.ItineraryNormalizer,
	resolver utils.IdentityResolver,
) services.PollServiceInterface {
	return services.NewPollService(voteRepo, suggestionRepo, normalizer, resolver)
}
