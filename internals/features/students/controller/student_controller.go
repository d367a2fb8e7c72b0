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

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := db.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", dto.NewStudentResponse(m))
}

/* ===================== DETAIL ===================== */
// GET /api/students/:student_id
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	s, err := service.ResolveStudent(db, c.Params("student_id"))
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.Success(c, "OK", dto.NewStudentResponse(*s))
}

/* ===================== LIST ===================== */
// GET /api/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := db.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	orderCol := "student_created_at"
	if p.SortBy == "name" {
		orderCol = "student_name"
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}

	var rows []model.StudentModel
	if err := db.
		Order(orderCol + " " + dir).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewStudentResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   out,
		"pagination": helper.BuildMeta(total, p),
	})
}
