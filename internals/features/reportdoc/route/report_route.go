package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/reportdoc/controller"
	"progresstrack_backend/internals/middlewares"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := r.Group("/reports")
	reports.Get("/:student_id/document", middlewares.HeavyRateLimiter(), ctrl.DownloadReport)
}
