package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MopController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewMopController(db *gorm.DB) *MopController {
	return &MopController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *MopController) CreateMop(ctx *fiber.Ctx) error {
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
	if err := c.DB.Model(&models.MOP{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode of Purchase already exists"})
	}

	mop := models.MOP{Name: input.Name}
	if err := c.DB.Create(&mop).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"mop": mop})
}

func (c *MopController) GetAllMops(ctx *fiber.Ctx) error {
	var mops []models.MOP
	if err := c.DB.Find(&mops).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"mops": mops})
}

func (c *MopController) UpdateMop(ctx *fiber.Ctx) error {
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

	var mop models.MOP
	if err := c.DB.First(&mop, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mode of Purchase not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	if err := c.DB.Model(&models.MOP{}).
		Where("name = ? AND id <> ?", input.Name, input.ID).
		Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode of Purchase already exists"})
	}

	if err := c.DB.Model(&mop).Update("name", input.Name).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"mop": mop})
}

func (c *MopController) DeleteMop(ctx *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode of Purchase ID is required"})
	}

	blocked, err := c.guard.DeleteMOP(input.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Mode of Purchase deleted successfully"})
}
