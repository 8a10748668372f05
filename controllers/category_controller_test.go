package controllers

import (
	"net/http"
	"testing"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	categoryController := NewCategoryController(db)
	app.Post("/categories", categoryController.CreateCategory)
	app.Get("/categories", categoryController.GetAllCategories)
	app.Put("/categories", categoryController.UpdateCategory)
	app.Delete("/categories", categoryController.DeleteCategory)
	return app
}

func TestCreateCategory(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)

	resp, err := app.Test(jsonRequest(t, "POST", "/categories", fiber.Map{
		"name": "Electronics",
		"type": "non-consumable",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var category models.Category
	require.NoError(t, db.First(&category, "name = ?", "Electronics").Error)
	assert.Equal(t, models.CategoryTypeNonConsumable, category.Type)
}

func TestCreateCategory_RejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)
	require.NoError(t, db.Create(&models.Category{Name: "Electronics", Type: models.CategoryTypeNonConsumable}).Error)

	resp, err := app.Test(jsonRequest(t, "POST", "/categories", fiber.Map{
		"name": "Electronics",
		"type": "consumable",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category already exists", decodeBody(t, resp)["error"])
}

func TestCreateCategory_RejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)

	resp, err := app.Test(jsonRequest(t, "POST", "/categories", fiber.Map{
		"name": "Electronics",
		"type": "perishable",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)

	resp, err := app.Test(jsonRequest(t, "PUT", "/categories", fiber.Map{
		"id":   99,
		"name": "Electronics",
		"type": "consumable",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCategory_BlockedRefusalIsOK(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)

	category := models.Category{Name: "Electronics", Type: models.CategoryTypeNonConsumable}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Laptops", CategoryID: category.ID}).Error)

	resp, err := app.Test(jsonRequest(t, "DELETE", "/categories?id=1", nil))
	require.NoError(t, err)
	// A blocked delete is a refusal message, not an error status.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Delete Sub-Categories First", decodeBody(t, resp)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteCategory_Unreferenced(t *testing.T) {
	db := setupTestDB(t)
	app := newCategoryApp(db)
	require.NoError(t, db.Create(&models.Category{Name: "Stationery", Type: models.CategoryTypeConsumable}).Error)

	resp, err := app.Test(jsonRequest(t, "DELETE", "/categories?id=1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category deleted successfully", decodeBody(t, resp)["message"])
}
