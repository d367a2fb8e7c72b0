package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/students/dto"
	"progresstrack_backend/internals/features/students/model"
	"progresstrack_backend/internals/features/students/service"
	helper "progresstrack_backend/internals/helpers"
)

type EducatorController struct {
	DB *gorm.DB
}

func NewEducatorController(db *gorm.DB) *EducatorController {
	return &EducatorController{DB: db}
}

// POST /api/educators
func (ctrl *EducatorController) CreateEducator(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.CreateEducatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := db.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create educator")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Educator created", dto.NewEducatorResponse(m))
}

// GET /api/educators/:educator_id
func (ctrl *EducatorController) GetEducator(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	e, err := service.ResolveEducator(db, c.Params("educator_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.NewEducatorResponse(*e))
}

// GET /api/educators
func (ctrl *EducatorController) ListEducators(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var rows []model.EducatorModel
	if err := db.Order("educator_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.EducatorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewEducatorResponse(r))
	}
	return helper.Success(c, "OK", out)
}
