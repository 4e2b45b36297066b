package controllers_fx

import (
	"go.uber.org/fx"
	"vibecation/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewSuggestionController),
	fx.Provide(controllers.NewVoteController),
	fx.Provide(controllers.NewPlannerController))
