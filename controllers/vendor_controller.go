package controllers

import (
	"errors"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VendorController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db, guard: services.NewReferenceGuard(db)}
}

// CreateVendor pulls the next vendor number from the counter before the
// insert. A failed insert burns the number; the sequence never goes
// backwards.
func (c *VendorController) CreateVendor(ctx *fiber.Ctx) error {
	var input struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
		Mobile  string `json:"mobile" validate:"required,len=10,numeric"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mobile number must be 10 digits"})
	}

	vendorID, err := idgen.NextSequence(c.DB, models.VendorCounterName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	vendor := models.Vendor{
		VendorID: vendorID,
		Name:     input.Name,
		Address:  input.Address,
		Mobile:   input.Mobile,
	}
	if err := c.DB.Create(&vendor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"vendor": vendor})
}

func (c *VendorController) GetAllVendors(ctx *fiber.Ctx) error {
	var vendors []models.Vendor
	if err := c.DB.Order("vendor_id ASC").Find(&vendors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"vendors": vendors})
}

// UpdateVendor edits the contact fields. The vendor number is assigned
// once and never touched here.
func (c *VendorController) UpdateVendor(ctx *fiber.Ctx) error {
	var input struct {
		ID      uint   `json:"id" validate:"required"`
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
		Mobile  string `json:"mobile" validate:"required,len=10,numeric"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mobile number must be 10 digits"})
	}

	var vendor models.Vendor
	if err := c.DB.First(&vendor, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&vendor).Updates(map[string]interface{}{
		"name":    input.Name,
		"address": input.Address,
		"mobile":  input.Mobile,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"vendor": vendor})
}

func (c *VendorController) DeleteVendor(ctx *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.ID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vendor ID is required"})
	}

	blocked, err := c.guard.DeleteVendor(input.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if blocked != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": blocked})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Vendor deleted successfully"})
}
