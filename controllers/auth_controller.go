package controllers

import (
	"errors"
	"time"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func signSessionToken(adminID string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":      idgen.TokenID(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// Login signs the operator in. The very first login bootstraps the
// admin account from the submitted credentials; afterwards credentials
// are checked against the stored account.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		AdminID  string `json:"adminId"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.AdminID == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Admin ID and password are required"})
	}

	var count int64
	if err := c.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if count == 0 {
		admin := models.Admin{AdminID: input.AdminID, Password: input.Password}
		if err := c.DB.Create(&admin).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		token, err := signSessionToken(admin.AdminID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Cookie(config.GetTokenCookie(token))

		return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Admin created successfully",
			"admin":   fiber.Map{"adminId": admin.AdminID, "id": admin.ID},
		})
	}

	var admin models.Admin
	if err := c.DB.Where("admin_id = ? AND password = ?", input.AdminID, input.Password).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := signSessionToken(admin.AdminID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	ctx.Cookie(config.GetTokenCookie(token))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"admin":   fiber.Map{"adminId": admin.AdminID, "id": admin.ID},
	})
}

// Verify checks the session cookie and confirms the admin still exists.
func (c *AuthController) Verify(ctx *fiber.Ctx) error {
	tokenString := ctx.Cookies(config.CookieName)
	if tokenString == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No session found"})
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}
	adminID, _ := claims["admin_id"].(string)

	var admin models.Admin
	if err := c.DB.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		ctx.Cookie(config.ClearTokenCookie())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Session verified",
		"admin":   fiber.Map{"adminId": admin.AdminID, "id": admin.ID},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(config.ClearTokenCookie())
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out successfully"})
}
