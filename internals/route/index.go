package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "progresstrack_backend/internals/features/assessment/route"
	attendanceRoute "progresstrack_backend/internals/features/attendance/route"
	monthlyRoute "progresstrack_backend/internals/features/monthlyreport/route"
	quarterlyRoute "progresstrack_backend/internals/features/quarterly/route"
	reportRoute "progresstrack_backend/internals/features/reportdoc/route"
	studentRoute "progresstrack_backend/internals/features/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(api, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(api, db)

	log.Println("[INFO] Setting up MonthlyReportRoutes...")
	monthlyRoute.MonthlyReportRoutes(api, db)

	log.Println("[INFO] Setting up AssessmentRoutes...")
	assessmentRoute.AssessmentRoutes(api, db)

	log.Println("[INFO] Setting up QuarterlyRoutes...")
	quarterlyRoute.QuarterlyRoutes(api, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(api, db)
}
