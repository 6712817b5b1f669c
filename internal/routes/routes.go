package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/prepslot/interview-scheduler/internal/clock"
	"github.com/prepslot/interview-scheduler/internal/config"
	"github.com/prepslot/interview-scheduler/internal/handlers"
	infraRepo "github.com/prepslot/interview-scheduler/internal/infra/repository"
	"github.com/prepslot/interview-scheduler/internal/middleware"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
	ucInterview "github.com/prepslot/interview-scheduler/internal/usecase/interview"
)

const availabilityCacheTTL = 15 * time.Second

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewInterviewGormRepository(db)
	clk := clock.System()

	recorder := notify.NewRecorder(db, rdb, logger)
	dispatcher := notify.NewDispatcher(recorder, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucInterview.NewBookInterview(repo, clk, dispatcher)
	cancelUC := ucInterview.NewCancelInterview(repo, clk, dispatcher)
	startUC := ucInterview.NewStartInterview(repo, clk, dispatcher)
	completeUC := ucInterview.NewCompleteInterview(repo, clk, dispatcher)
	rescheduleUC := ucInterview.NewReschedule(repo, clk, dispatcher)
	annotateUC := ucInterview.NewAnnotateCancelReason(repo)
	forceStatusUC := ucInterview.NewForceStatus(repo, clk, dispatcher)

	publishSlotUC := ucInterview.NewPublishSlot(repo, clk, dispatcher)
	releaseSlotUC := ucInterview.NewReleaseSlot(repo, dispatcher)

	availabilityUC := ucInterview.NewGetAvailability(repo, clk)
	listTraineeUC := ucInterview.NewListForTrainee(repo)
	listIviewerUC := ucInterview.NewListForInterviewer(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	slotHandler := handlers.NewSlotHandler(publishSlotUC, releaseSlotUC, repo)
	interviewHandler := handlers.NewInterviewHandler(
		bookUC,
		cancelUC,
		startUC,
		completeUC,
		rescheduleUC,
		annotateUC,
		listTraineeUC,
		listIviewerUC,
	)
	adminHandler := handlers.NewAdminHandler(db, forceStatusUC)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		public.Use(middleware.RateLimiter(rate.Limit(10), 20))
		public.Use(middleware.Cache(
			cache.New(availabilityCacheTTL, time.Minute),
			availabilityCacheTTL,
		))
		{
			public.GET("/availability", availabilityHandler.List)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// INTERVIEWS
			// ------------------------------
			secured.POST("/me/interviews", interviewHandler.Book)
			secured.GET("/me/interviews", interviewHandler.ListMine)
			secured.PATCH("/me/interviews/:id/cancel", interviewHandler.Cancel)
			secured.PATCH("/me/interviews/:id/start", interviewHandler.Start)
			secured.PATCH("/me/interviews/:id/complete", interviewHandler.Complete)
			secured.PATCH("/me/interviews/:id/reschedule", interviewHandler.Reschedule)
			secured.PATCH("/me/interviews/:id/cancel-reason", interviewHandler.AnnotateReason)

			// ------------------------------
			// SLOTS (interviewer)
			// ------------------------------
			iviewer := secured.Group("/")
			iviewer.Use(middleware.RequireRole(models.RoleInterviewer))
			{
				iviewer.POST("/me/slots", slotHandler.Publish)
				iviewer.GET("/me/slots", slotHandler.ListMine)
				iviewer.DELETE("/me/slots/:id", slotHandler.Release)
				iviewer.GET("/me/schedule", interviewHandler.Schedule)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PATCH("/interviews/:id/status", adminHandler.ForceStatus)
				admin.GET("/events", adminHandler.ListEvents)
			}
		}
	}
}
