package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)
	educatorCtrl := controller.NewEducatorController(db)

	students := r.Group("/students")
	students.Post("/", studentCtrl.CreateStudent)
	students.Get("/", studentCtrl.ListStudents)
	students.Get("/:student_id", studentCtrl.GetStudent)

	educators := r.Group("/educators")
	educators.Post("/", educatorCtrl.CreateEducator)
	educators.Get("/", educatorCtrl.ListEducators)
	educators.Get("/:educator_id", educatorCtrl.GetEducator)
}
