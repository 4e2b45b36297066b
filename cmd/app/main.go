package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecation/cmd/fx/account_fx"
	"vibecation/cmd/fx/ai_fx"
	"vibecation/cmd/fx/controllers_fx"
	"vibecation/cmd/fx/db_fx"
	"vibecation/cmd/fx/planner_fx"
	"vibecation/cmd/fx/suggestion_fx"
	"vibecation/cmd/fx/trip_fx"
	"vibecation/cmd/fx/vote_fx"
	"vibecation/internal/api/controllers"
	"vibecation/internal/infra"
	"vibecation/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		suggestion_fx.Module,
		vote_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	suggestionController *controllers.SuggestionController,
	voteController *controllers.VoteController,
	plannerController *controllers.PlannerController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, suggestionController, voteController, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	suggestionController *controllers.SuggestionController,
	voteController *controllers.VoteController,
	plannerController *controllers.PlannerController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/availability", accountController.CheckAvailability)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("/dashboard", tripController.GetDashboard)
	tripGroup.GET("/:tripId", tripController.GetTripInfo)
	tripGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripGroup.POST("/:tripId/invite", tripController.CreateInvite)
	tripGroup.POST("/join", tripController.JoinTrip)

	suggestionGroup := r.Group("/suggestions")
	suggestionGroup.Use(middleware.JWTAuthMiddleware())
	suggestionGroup.POST("/brainstorm", suggestionController.Brainstorm)
	suggestionGroup.POST("/submit", suggestionController.Submit)
	suggestionGroup.GET("/:tripId/mine", suggestionController.GetMine)
	suggestionGroup.GET("/:tripId/submitted", suggestionController.ListSubmitted)
	suggestionGroup.GET("/:tripId/completion", suggestionController.GetBrainstormCompletion)

	voteGroup := r.Group("/votes")
	voteGroup.Use(middleware.JWTAuthMiddleware())
	voteGroup.POST("/cast", voteController.CastVote)
	voteGroup.POST("/remove-all", voteController.RemoveAllVotes)
	voteGroup.POST("/done", voteController.MarkVotingDone)
	voteGroup.GET("/:tripId/options", voteController.GetPollOptions)
	voteGroup.GET("/:tripId/results", voteController.GetPollResults)
	voteGroup.GET("/:tripId/completion", voteController.GetVotingCompletion)
	voteGroup.GET("/:tripId/type/:voteType", voteController.ListVotes)

	plannerGroup := r.Group("/planner")
	plannerGroup.Use(middleware.JWTAuthMiddleware())
	plannerGroup.POST("/:tripId/finalize", plannerController.FinalizeTrip)
	plannerGroup.GET("/:tripId/final-plan", plannerController.GetFinalPlan)
}
