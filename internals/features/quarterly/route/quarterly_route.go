package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/quarterly/controller"
	"progresstrack_backend/internals/middlewares"
)

func QuarterlyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuarterlyController(db)

	reports := r.Group("/quarterly-reports")
	reports.Post("/recompute", middlewares.HeavyRateLimiter(), ctrl.RecomputeQuarter)
	reports.Get("/:student_id", ctrl.GetByStudent)
	reports.Put("/:report_id/feedback", ctrl.UpdateFeedback)
}
