package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubCategoryController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewSubCategoryController(db *gorm.DB) *SubCategoryController {
	return &SubCategoryController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *SubCategoryController) CreateSubCategory(ctx *fiber.Ctx) error {
	var input struct {
		Name       string `json:"name" validate:"required"`
		CategoryID uint   `json:"categoryId" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	subCategory := models.SubCategory{Name: input.Name, CategoryID: input.CategoryID}
	if err := c.DB.Create(&subCategory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "SubCategory created successfully"})
}

// GetSubCategories returns both lists the subcategory screen needs:
// the categories (optionally narrowed by ?type=) and all subcategories
// joined with their parent category, newest first.
func (c *SubCategoryController) GetSubCategories(ctx *fiber.Ctx) error {
	categoryType := ctx.Query("type")

	query := c.DB.Model(&models.Category{})
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	var subCategories []models.SubCategory
	if err := c.DB.Preload("Category").Order("created_at DESC").Find(&subCategories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories":    categories,
		"subCategories": subCategories,
	})
}

func (c *SubCategoryController) UpdateSubCategory(ctx *fiber.Ctx) error {
	var input struct {
		ID   uint   `json:"id" validate:"required"`
		Name string `json:"name" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var subCategory models.SubCategory
	if err := c.DB.First(&subCategory, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "SubCategory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&subCategory).Update("name", input.Name).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "SubCategory updated successfully",
		"subCategory": subCategory,
	})
}

func (c *SubCategoryController) DeleteSubCategory(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "SubCategory ID is required"})
	}

	blocked, err := c.guard.DeleteSubCategory(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "SubCategory deleted successfully"})
}
