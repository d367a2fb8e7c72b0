package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/attendance/controller"
	"progresstrack_backend/internals/middlewares"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/", ctrl.RecordAttendance)
	attendance.Post("/import", middlewares.HeavyRateLimiter(), ctrl.ImportCSV)
	attendance.Get("/:student_id", ctrl.GetByStudent)
}
