package controllers

import (
	"errors"

	"inventory-app/models"
	"inventory-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	guard *services.ReferenceGuard
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, guard: services.NewReferenceGuard(db)}
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var input struct {
		Username     string `json:"username" validate:"required"`
		MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
		Address      string `json:"address" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mobile number must be 10 digits"})
	}

	var count int64
	if err := c.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already exists"})
	}

	user := models.User{
		Username:     input.Username,
		MobileNumber: input.MobileNumber,
		Address:      input.Address,
	}
	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	var users []models.User
	if err := c.DB.Order("username ASC").Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID is required"})
	}

	var input struct {
		Username     string `json:"username" validate:"required"`
		MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
		Address      string `json:"address" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mobile number must be 10 digits"})
	}

	var count int64
	if err := c.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", input.Username, id).
		Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already exists"})
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&user).Updates(map[string]interface{}{
		"username":      input.Username,
		"mobile_number": input.MobileNumber,
		"address":       input.Address,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

// DeleteUser is refused while the user still holds issued stock; the
// operator reverts or deletes those entries first.
func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID is required"})
	}

	if err := c.guard.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserHasIssuedStock) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete user with issued products"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
}
