package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var loadConfigOnce sync.Once

func setupTestDB(t *testing.T) *gorm.DB {
	loadConfigOnce.Do(func() {
		config.LoadConfig()
		idgen.Init()
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Counter{},
		&models.Category{},
		&models.SubCategory{},
		&models.Brand{},
		&models.Modal{},
		&models.MOP{},
		&models.Vendor{},
		&models.User{},
		&models.Admin{},
		&models.Product{},
	))
	return db
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedStockReferences creates one row of every master record a stock
// entry needs and returns their ids keyed by field name.
func seedStockReferences(t *testing.T, db *gorm.DB) map[string]uint {
	category := models.Category{Name: "Electronics", Type: models.CategoryTypeNonConsumable}
	require.NoError(t, db.Create(&category).Error)

	subCategory := models.SubCategory{Name: "Laptops", CategoryID: category.ID}
	require.NoError(t, db.Create(&subCategory).Error)

	brand := models.Brand{Name: "Lenovo"}
	require.NoError(t, db.Create(&brand).Error)

	modal := models.Modal{Name: "ThinkPad T14", BrandID: brand.ID}
	require.NoError(t, db.Create(&modal).Error)

	mop := models.MOP{Name: "Tender"}
	require.NoError(t, db.Create(&mop).Error)

	vendor := models.Vendor{VendorID: 1, Name: "Acme Traders", Address: "12 Main Rd", Mobile: "9876543210"}
	require.NoError(t, db.Create(&vendor).Error)

	return map[string]uint{
		"categoryId":    category.ID,
		"subCategoryId": subCategory.ID,
		"brandId":       brand.ID,
		"modalId":       modal.ID,
		"mopId":         mop.ID,
		"vendorId":      vendor.ID,
	}
}

func stockBody(refs map[string]uint) map[string]interface{} {
	return map[string]interface{}{
		"categoryId":    refs["categoryId"],
		"subCategoryId": refs["subCategoryId"],
		"brandId":       refs["brandId"],
		"modalId":       refs["modalId"],
		"mopId":         refs["mopId"],
		"vendorId":      refs["vendorId"],
		"serialNumber":  "SN-001",
		"productNumber": "PN-001",
		"billNumber":    "BILL-001",
		"billDate":      "2024-03-10",
	}
}
