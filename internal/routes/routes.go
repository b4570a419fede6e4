package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	"github.com/BruksfildServices01/feedback-hub/internal/config"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/handlers"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	infraRepo "github.com/BruksfildServices01/feedback-hub/internal/infra/repository"
	"github.com/BruksfildServices01/feedback-hub/internal/middleware"
	"github.com/BruksfildServices01/feedback-hub/internal/notify"
	"github.com/BruksfildServices01/feedback-hub/internal/ratelimit"
	ucAuth "github.com/BruksfildServices01/feedback-hub/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/feedback-hub/internal/usecase/catalog"
	ucReview "github.com/BruksfildServices01/feedback-hub/internal/usecase/review"
	ucSettings "github.com/BruksfildServices01/feedback-hub/internal/usecase/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/validators"
)

// Infra holds the long lived collaborators owned by the process.
type Infra struct {
	Log      zerolog.Logger
	Audit    *audit.Dispatcher
	Notifier notify.Notifier
	// Limiter and Uploader are optional.
	Limiter  *ratelimit.Limiter
	Uploader ucReview.Uploader
}

// NewRouter builds the engine with the global middleware, every route and
// the JSON 404.
func NewRouter(db *gorm.DB, cfg *config.Config, infra Infra) *gin.Engine {
	if infra.Notifier == nil {
		infra.Notifier = notify.Noop{}
	}
	if err := validators.RegisterBinding(); err != nil {
		infra.Log.Error().Err(err).Msg("custom validators not registered")
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(infra.Log))
	r.Use(httperr.Middleware(infra.Log, cfg.IsDevelopment()))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, db, cfg, infra)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	storeRepo := infraRepo.NewStoreGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)

	auditLogger := audit.New(db)
	tokens := ucAuth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(userRepo, tokens, infra.Audit)
	currentUserUC := ucAuth.NewGetCurrentUser(userRepo)

	storeLookup := ucCatalog.NewLookup(storeRepo)
	listStoresUC := ucCatalog.NewListStores(storeRepo)
	createStoreUC := ucCatalog.NewCreateStore(storeRepo, infra.Audit)
	setTranslationUC := ucCatalog.NewSetTranslation(storeRepo, infra.Audit)
	deleteStoreUC := ucCatalog.NewDeleteStore(storeRepo, infra.Audit)

	getSettingsUC := ucSettings.NewGetSettings(settingsRepo)
	updateSettingsUC := ucSettings.NewUpdateSettings(settingsRepo, infra.Audit)

	submitReviewUC := ucReview.NewSubmitReview(reviewRepo, storeLookup, getSettingsUC, infra.Notifier)
	listReviewsUC := ucReview.NewListReviews(reviewRepo, storeLookup)
	approveReviewUC := ucReview.NewSetApproval(reviewRepo, infra.Audit)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, infra.Audit)
	exportReviewsUC := ucReview.NewExportReviews(reviewRepo, storeLookup, infra.Uploader, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, currentUserUC)
	storeHandler := handlers.NewStoreHandler(listStoresUC, createStoreUC, setTranslationUC, deleteStoreUC)
	reviewHandler := handlers.NewReviewHandler(submitReviewUC, listReviewsUC, approveReviewUC, deleteReviewUC, exportReviewsUC)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	requireAuth := middleware.AuthMiddleware(tokens)
	requireAdmin := middleware.RequireRole(auth.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", requireAuth, authHandler.Me)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/stores", storeHandler.List)
		api.POST("/reviews", ratelimit.Middleware(infra.Limiter, infra.Log), reviewHandler.Submit)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.POST("/stores", storeHandler.Create)
			admin.PUT("/stores/:id", storeHandler.Update)
			admin.DELETE("/stores/:id", storeHandler.Delete)

			admin.GET("/reviews", reviewHandler.List)
			admin.POST("/reviews/export", reviewHandler.Export)
			admin.PATCH("/reviews/:id/approve", reviewHandler.Approve)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
