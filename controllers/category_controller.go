package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,oneof=consumable non-consumable"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := c.DB.Model(&models.Category{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category already exists"})
	}

	category := models.Category{Name: input.Name, Type: input.Type}
	if err := c.DB.Create(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Category created successfully"})
}

// GetAllCategories returns the plain array, newest first.
func (c *CategoryController) GetAllCategories(ctx *fiber.Ctx) error {
	var categories []models.Category
	if err := c.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(categories)
}

func (c *CategoryController) UpdateCategory(ctx *fiber.Ctx) error {
	var input struct {
		ID   uint   `json:"id" validate:"required"`
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required,oneof=consumable non-consumable"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := c.DB.Model(&models.Category{}).
		Where("name = ? AND id <> ?", input.Name, input.ID).
		Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category already exists"})
	}

	if err := c.DB.Model(&category).Updates(map[string]interface{}{
		"name": input.Name,
		"type": input.Type,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory routes through the reference guard. A blocked delete is
// not an error status: the refusal message goes back as a 200 for the
// operator to act on.
func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category ID is required"})
	}

	blocked, err := c.guard.DeleteCategory(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Category deleted successfully"})
}
