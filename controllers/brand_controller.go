package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BrandController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *BrandController) CreateBrand(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := c.DB.Model(&models.Brand{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Brand already exists"})
	}

	brand := models.Brand{Name: input.Name}
	if err := c.DB.Create(&brand).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"brand": brand})
}

func (c *BrandController) GetAllBrands(ctx *fiber.Ctx) error {
	var brands []models.Brand
	if err := c.DB.Find(&brands).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"brands": brands})
}

func (c *BrandController) UpdateBrand(ctx *fiber.Ctx) error {
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

	var brand models.Brand
	if err := c.DB.First(&brand, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := c.DB.Model(&models.Brand{}).
		Where("name = ? AND id <> ?", input.Name, input.ID).
		Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Brand already exists"})
	}

	if err := c.DB.Model(&brand).Update("name", input.Name).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"brand": brand})
}

func (c *BrandController) DeleteBrand(ctx *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Brand ID is required"})
	}

	blocked, err := c.guard.DeleteBrand(input.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Brand deleted successfully"})
}
