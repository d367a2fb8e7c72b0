package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/assessment/controller"
)

func AssessmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)

	assessments := r.Group("/assessments")
	assessments.Post("/", ctrl.RecordGrade)
	assessments.Get("/:student_id", ctrl.ListByStudent)
}
