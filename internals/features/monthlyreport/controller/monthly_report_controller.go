package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/monthlyreport/dto"
	"progresstrack_backend/internals/features/monthlyreport/service"
	studentsvc "progresstrack_backend/internals/features/students/service"
	helper "progresstrack_backend/internals/helpers"
)

type MonthlyReportController struct {
	DB *gorm.DB
}

func NewMonthlyReportController(db *gorm.DB) *MonthlyReportController {
	return &MonthlyReportController{DB: db}
}

/* ===================== CREATE / UPSERT ===================== */
// POST /api/monthly-reports
func (ctrl *MonthlyReportController) RecordMonthlyScore(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.RecordMonthlyScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	// Rejects out-of-range marks and empty skill names outright; a
	// partially valid submission is not trimmed down and saved.
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := studentsvc.ResolveStudent(db, req.StudentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	record, err := service.RecordMonthlyScore(db, student.StudentID, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Monthly score recorded", dto.NewMonthlyReportResponse(*record))
}

/* ===================== LIST ===================== */
// GET /api/monthly-reports/:student_id
func (ctrl *MonthlyReportController) ListByStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	student, err := studentsvc.ResolveStudent(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	records, err := service.FetchByStudent(db, student.StudentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	out := make([]dto.MonthlyReportResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewMonthlyReportResponse(r))
	}
	return helper.Success(c, "OK", out)
}
