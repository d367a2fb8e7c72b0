package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/assessment/dto"
	"progresstrack_backend/internals/features/assessment/service"
	studentsvc "progresstrack_backend/internals/features/students/service"
	helper "progresstrack_backend/internals/helpers"
)

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/assessments
func (ctrl *AssessmentController) RecordGrade(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.RecordGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grade, err := service.RecordGrade(db, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade recorded", dto.NewAssessmentGradeResponse(*grade))
}

/* ===================== LIST ===================== */
// GET /api/assessments/:student_id
func (ctrl *AssessmentController) ListByStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	student, err := studentsvc.ResolveStudent(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	grades, err := service.FetchByStudent(db, student.StudentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	out := make([]dto.AssessmentGradeResponse, 0, len(grades))
	for _, g := range grades {
		out = append(out, dto.NewAssessmentGradeResponse(g))
	}
	return helper.Success(c, "OK", out)
}
