package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/monthlyreport/controller"
)

func MonthlyReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMonthlyReportController(db)

	reports := r.Group("/monthly-reports")
	reports.Post("/", ctrl.RecordMonthlyScore)
	reports.Get("/:student_id", ctrl.ListByStudent)
}
