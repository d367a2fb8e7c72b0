package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"progresstrack_backend/internals/constants"
	"progresstrack_backend/internals/features/quarterly/dto"
	"progresstrack_backend/internals/features/quarterly/service"
	studentsvc "progresstrack_backend/internals/features/students/service"
	helper "progresstrack_backend/internals/helpers"
)

type QuarterlyController struct {
	DB *gorm.DB
}

func NewQuarterlyController(db *gorm.DB) *QuarterlyController {
	return &QuarterlyController{DB: db}
}

/* ===================== RECOMPUTE ===================== */
// POST /api/quarterly-reports/recompute
func (ctrl *QuarterlyController) RecomputeQuarter(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.RecomputeQuarterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := studentsvc.ResolveStudent(db, req.StudentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	report, monthlies, err := service.RecomputeQuarter(db, student.StudentID, req.Quarter, req.Year)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.Success(c, "Quarter recomputed", dto.NewQuarterlyReportResponse(*report, monthlies))
}

/* ===================== FETCH ===================== */
// GET /api/quarterly-reports/:student_id?quarter=Q1&year=2024
// Without query params, returns the most recent report.
func (ctrl *QuarterlyController) GetByStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	student, err := studentsvc.ResolveStudent(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	quarter := c.Query("quarter")
	yearStr := c.Query("year")

	if quarter == "" && yearStr == "" {
		report, err := service.FetchLatestByStudent(db, student.StudentID)
		if err != nil {
			return helper.FromServiceError(c, err)
		}
		return helper.Success(c, "OK", dto.NewQuarterlyReportResponse(*report, nil))
	}

	if !constants.ValidQuarter(quarter) {
		return fiber.NewError(fiber.StatusBadRequest, "quarter must be one of Q1..Q4")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "year must be numeric")
	}

	report, err := service.FetchByPeriod(db, student.StudentID, quarter, year)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.NewQuarterlyReportResponse(*report, nil))
}

/* ===================== FEEDBACK ===================== */
// PUT /api/quarterly-reports/:report_id/feedback
func (ctrl *QuarterlyController) UpdateFeedback(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	reportID, err := uuid.Parse(c.Params("report_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid report id")
	}

	var req dto.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.UpdateFeedback(db, reportID, req.Suggestions, req.TeacherComments); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "Feedback updated", nil)
}
