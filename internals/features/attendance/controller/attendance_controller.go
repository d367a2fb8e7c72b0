package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/attendance/dto"
	"progresstrack_backend/internals/features/attendance/service"
	studentsvc "progresstrack_backend/internals/features/students/service"
	helper "progresstrack_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== RECORD ===================== */
// POST /api/attendance
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.RecordAttendanceRequest
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
	educator, err := studentsvc.ResolveEducator(db, req.EducatorID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	ledger, err := service.RecordAttendance(db, student.StudentID, educator.EducatorID, req.Month, req.DailyMarks)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	return helper.Success(c, "Attendance recorded", dto.NewAttendanceLedgerResponse(*ledger))
}

/* ===================== FETCH ===================== */
// GET /api/attendance/:student_id
func (ctrl *AttendanceController) GetByStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	student, err := studentsvc.ResolveStudent(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	ledgers, err := service.FetchByStudent(db, student.StudentID)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	// No ledgers yet is a valid empty report, not a 404.
	out := make([]dto.AttendanceLedgerResponse, 0, len(ledgers))
	for _, l := range ledgers {
		out = append(out, dto.NewAttendanceLedgerResponse(l))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== BULK IMPORT ===================== */
// POST /api/attendance/import (multipart form, field "file")
func (ctrl *AttendanceController) ImportCSV(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "CSV file is required (field \"file\")")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer f.Close()

	summary, err := service.ImportCSV(db, f)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return helper.Success(c, "Import finished", summary)
}
