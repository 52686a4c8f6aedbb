package routes

import (
	"context"
	"strconv"

	_ "akc_operations/docs" // generated by swag init
	"akc_operations/internal/adapter/http/middleware"
	"akc_operations/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router *gin.Engine

// Run wires the application and starts the server. It only returns on
// startup failure, which is fatal.
func Run(cfg config.Config) {
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()
	app, cleanup, err := build(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire the application")
	}
	defer cleanup()

	router = NewRouter(cfg, app)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Driver).Msg("starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

// NewRouter builds the engine with every route registered.
func NewRouter(cfg config.Config, app *App) *gin.Engine {
	r := gin.New()
	setMiddlewares(r, cfg.Identity)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if app.Files != nil {
		addFileRoutes(r, app.Files)
	}

	getRoutes(r, app)
	return r
}

func getRoutes(r *gin.Engine, app *App) {
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, app.Projects)
	addEstimateRoutes(v1, app.Estimates)
	addCustomerRoutes(v1, app.Customers)
	addPartyRoutes(v1, app.Parties)
	addSubmissionRoutes(v1, app.Submissions, app.Uploads)
	addActivityRoutes(v1, app.Activity)
}

func setMiddlewares(r *gin.Engine, id config.IdentityConfig) {
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Recovery())
	r.Use(middleware.Identity(id.Header, id.DefaultActor))
}
