package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/reportdoc/service"
	helper "progresstrack_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ===================== DOWNLOAD ===================== */
// GET /api/reports/:student_id/document
func (ctrl *ReportController) DownloadReport(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	out, filename, err := service.RenderReport(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
