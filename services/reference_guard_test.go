package services

import (
	"testing"
	"time"

	"inventory-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Brand{},
		&models.Modal{},
		&models.MOP{},
		&models.Vendor{},
		&models.User{},
		&models.Product{},
	))
	return db
}

// seedReferences creates one row of every master record plus one stock
// entry referencing them all.
func seedReferences(t *testing.T, db *gorm.DB) (models.Category, models.SubCategory, models.Brand, models.Modal, models.MOP, models.Vendor, models.Product) {
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

	product := models.Product{
		CategoryID:    category.ID,
		SubCategoryID: subCategory.ID,
		BrandID:       brand.ID,
		ModalID:       modal.ID,
		MopID:         mop.ID,
		VendorID:      vendor.ID,
		SerialNumber:  "SN-001",
		ProductNumber: "PN-001",
		BillNumber:    "BILL-001",
		BillDate:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&product).Error)

	return category, subCategory, brand, modal, mop, vendor, product
}

func TestDeleteCategory_BlockedBySubCategories(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)

	category := models.Category{Name: "Furniture", Type: models.CategoryTypeNonConsumable}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Chairs", CategoryID: category.ID}).Error)

	blocked, err := guard.DeleteCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete Sub-Categories First", blocked)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "blocked delete must not remove the category")
}

func TestDeleteCategory_BlockedByStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	category, subCategory, _, _, _, _, product := seedReferences(t, db)

	// Detach the sub category chain so only the stock entry blocks.
	require.NoError(t, db.Delete(&subCategory).Error)
	_ = product

	blocked, err := guard.DeleteCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete The Stock Entry If Possible", blocked)
}

func TestDeleteCategory_Unreferenced(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)

	category := models.Category{Name: "Stationery", Type: models.CategoryTypeConsumable}
	require.NoError(t, db.Create(&category).Error)

	blocked, err := guard.DeleteCategory(category.ID)
	require.NoError(t, err)
	assert.Empty(t, blocked)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteSubCategory_BlockedByStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, subCategory, _, _, _, _, _ := seedReferences(t, db)

	blocked, err := guard.DeleteSubCategory(subCategory.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete The Stock Entry If Possible", blocked)
}

func TestDeleteBrand_ModalsCheckedBeforeStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, _, brand, modal, _, _, _ := seedReferences(t, db)

	blocked, err := guard.DeleteBrand(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Firstly Delete All Modals of this Brand", blocked)

	// With the modal gone the stock entry still blocks.
	require.NoError(t, db.Delete(&modal).Error)
	blocked, err = guard.DeleteBrand(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete The Stock Entry If Possible", blocked)
}

func TestDeleteModal_BlockedByStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, _, _, modal, _, _, _ := seedReferences(t, db)

	blocked, err := guard.DeleteModal(modal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete The Stock Entry If Possible", blocked)
}

func TestDeleteMOP_BlockedByStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, _, _, _, mop, _, _ := seedReferences(t, db)

	blocked, err := guard.DeleteMOP(mop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete Stock Entry if Possible", blocked)
}

func TestDeleteVendor_BlockedThenFreed(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, _, _, _, _, vendor, product := seedReferences(t, db)

	blocked, err := guard.DeleteVendor(vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete Stock Entry if Possible", blocked)

	require.NoError(t, db.Delete(&product).Error)

	blocked, err = guard.DeleteVendor(vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, blocked)
}

func TestDeleteUser_RefusedWhileHoldingIssuedStock(t *testing.T) {
	db := setupTestDB(t)
	guard := NewReferenceGuard(db)
	_, _, _, _, _, _, product := seedReferences(t, db)

	user := models.User{Username: "ravi", MobileNumber: "9000000001", Address: "Hostel 4"}
	require.NoError(t, db.Create(&user).Error)

	now := time.Now()
	require.NoError(t, db.Model(&product).Updates(map[string]interface{}{
		"issued":      true,
		"user_id":     user.ID,
		"issued_date": now,
	}).Error)

	err := guard.DeleteUser(user.ID)
	assert.ErrorIs(t, err, ErrUserHasIssuedStock)

	// Reverting the issuance frees the user for deletion.
	require.NoError(t, db.Model(&product).Updates(map[string]interface{}{
		"issued":      false,
		"user_id":     nil,
		"issued_date": nil,
	}).Error)

	require.NoError(t, guard.DeleteUser(user.ID))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
