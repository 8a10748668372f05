package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStockApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	stockController := NewStockController(db)
	app.Post("/stocks", stockController.CreateStock)
	app.Get("/stocks", stockController.GetStocks)
	app.Put("/stocks", stockController.UpdateStock)
	app.Delete("/stocks", stockController.DeleteStock)
	app.Post("/stocks/export", stockController.ExportStocks)
	return app
}

func TestCreateStock(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var product models.Product
	require.NoError(t, db.First(&product, "serial_number = ?", "SN-001").Error)
	assert.False(t, product.Issued, "new entries are always unissued")
	assert.Nil(t, product.UserID)
	assert.Nil(t, product.IssuedDate)
}

func TestCreateStock_RejectsDuplicateIdentity(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product with these details already exists", decodeBody(t, resp)["error"])

	// A different serial is a different item.
	body := stockBody(refs)
	body["serialNumber"] = "SN-002"
	resp, err = app.Test(jsonRequest(t, "POST", "/stocks", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateStock_UnknownReference(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	body := stockBody(refs)
	body["brandId"] = 99
	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Brand not found", decodeBody(t, resp)["error"])
}

func TestUpdateStock_IssueSetsHolderAndDate(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := models.User{Username: "ravi", MobileNumber: "9000000001", Address: "Hostel 4"}
	require.NoError(t, db.Create(&user).Error)

	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", fiber.Map{"user": user.ID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.True(t, product.Issued)
	require.NotNil(t, product.UserID)
	assert.Equal(t, user.ID, *product.UserID)
	assert.NotNil(t, product.IssuedDate)
}

func TestUpdateStock_IssueUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", fiber.Map{"user": 42}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decodeBody(t, resp)["error"])
}

func TestUpdateStock_EditResetsIssuance(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := models.User{Username: "ravi", MobileNumber: "9000000001", Address: "Hostel 4"}
	require.NoError(t, db.Create(&user).Error)

	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", fiber.Map{"user": user.ID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// An edit without a user reverts the item to unissued.
	body := stockBody(refs)
	body["productNumber"] = "PN-002"
	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, "PN-002", product.ProductNumber)
	assert.False(t, product.Issued)
	assert.Nil(t, product.UserID)
	assert.Nil(t, product.IssuedDate)
}

func TestDeleteStock_RefusesIssuedItems(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := models.User{Username: "ravi", MobileNumber: "9000000001", Address: "Hostel 4"}
	require.NoError(t, db.Create(&user).Error)

	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", fiber.Map{"user": user.ID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "DELETE", "/stocks", fiber.Map{"id": 1}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot delete an issued product", decodeBody(t, resp)["error"])

	// Reverting via an edit frees the item for deletion.
	resp, err = app.Test(jsonRequest(t, "PUT", "/stocks?id=1", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "DELETE", "/stocks", fiber.Map{"id": 1}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetStocks_PaginationMeta(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	for i := 1; i <= 7; i++ {
		body := stockBody(refs)
		body["serialNumber"] = fmt.Sprintf("SN-%03d", i)
		body["billNumber"] = fmt.Sprintf("BILL-%03d", i)
		resp, err := app.Test(jsonRequest(t, "POST", "/stocks", body))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(t, "GET", "/stocks?page=2&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	meta := out["meta"].(map[string]interface{})
	assert.EqualValues(t, 7, meta["total"])
	assert.EqualValues(t, 2, meta["page"])
	assert.EqualValues(t, 2, meta["total_pages"])
	assert.Len(t, out["products"], 2)
}

func TestExportStocks_ReturnsWorkbook(t *testing.T) {
	db := setupTestDB(t)
	app := newStockApp(db)
	refs := seedStockReferences(t, db)

	resp, err := app.Test(jsonRequest(t, "POST", "/stocks", stockBody(refs)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/stocks/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock-report.xlsx")
}
