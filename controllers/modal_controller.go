package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ModalController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewModalController(db *gorm.DB) *ModalController {
	return &ModalController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *ModalController) CreateModal(ctx *fiber.Ctx) error {
	var input struct {
		Name    string `json:"name" validate:"required"`
		BrandID uint   `json:"brandId" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var brand models.Brand
	if err := c.DB.First(&brand, input.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	modal := models.Modal{Name: input.Name, BrandID: input.BrandID}
	if err := c.DB.Create(&modal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"modal": modal})
}

// GetAllModals lists modals joined with their brand, optionally narrowed
// to one brand by ?brandId=.
func (c *ModalController) GetAllModals(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Brand")
	if brandID := ctx.QueryInt("brandId"); brandID > 0 {
		query = query.Where("brand_id = ?", brandID)
	}

	var modals []models.Modal
	if err := query.Find(&modals).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"modals": modals})
}

func (c *ModalController) UpdateModal(ctx *fiber.Ctx) error {
	var input struct {
		ID      uint   `json:"id" validate:"required"`
		Name    string `json:"name" validate:"required"`
		BrandID uint   `json:"brandId" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var modal models.Modal
	if err := c.DB.First(&modal, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Modal not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var brand models.Brand
	if err := c.DB.First(&brand, input.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&modal).Updates(map[string]interface{}{
		"name":     input.Name,
		"brand_id": input.BrandID,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"modal": modal})
}

func (c *ModalController) DeleteModal(ctx *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Modal ID is required"})
	}

	blocked, err := c.guard.DeleteModal(input.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Modal deleted successfully"})
}
