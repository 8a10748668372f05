package services

import (
	"errors"

	"inventory-app/models"

	"gorm.io/gorm"
)

// ErrUserHasIssuedStock blocks deleting a user who still holds issued items.
var ErrUserHasIssuedStock = errors.New("user has issued products")

// ReferenceGuard refuses to delete a master record while anything still
// references it. There is no cascading delete: the operator removes the
// dependents first. Each check runs in the same transaction as the delete,
// so a stock entry created concurrently cannot slip in between the count
// and the removal.
type ReferenceGuard struct {
	DB *gorm.DB
}

func NewReferenceGuard(db *gorm.DB) *ReferenceGuard {
	return &ReferenceGuard{DB: db}
}

// DeleteCategory removes the category unless subcategories or stock
// entries still reference it. A non-empty return is the refusal message
// for the operator.
func (g *ReferenceGuard) DeleteCategory(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SubCategory{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete Sub-Categories First"
			return nil
		}
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete The Stock Entry If Possible"
			return nil
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	return blocked, err
}

func (g *ReferenceGuard) DeleteSubCategory(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("sub_category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete The Stock Entry If Possible"
			return nil
		}
		return tx.Delete(&models.SubCategory{}, id).Error
	})
	return blocked, err
}

// DeleteBrand checks the brand's modals before its stock entries, the
// same order an operator would clean them up in.
func (g *ReferenceGuard) DeleteBrand(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Modal{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Firstly Delete All Modals of this Brand"
			return nil
		}
		if err := tx.Model(&models.Product{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete The Stock Entry If Possible"
			return nil
		}
		return tx.Delete(&models.Brand{}, id).Error
	})
	return blocked, err
}

func (g *ReferenceGuard) DeleteModal(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("modal_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete The Stock Entry If Possible"
			return nil
		}
		return tx.Delete(&models.Modal{}, id).Error
	})
	return blocked, err
}

func (g *ReferenceGuard) DeleteMOP(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("mop_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete Stock Entry if Possible"
			return nil
		}
		return tx.Delete(&models.MOP{}, id).Error
	})
	return blocked, err
}

func (g *ReferenceGuard) DeleteVendor(id uint) (string, error) {
	blocked := ""
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("vendor_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			blocked = "Delete Stock Entry if Possible"
			return nil
		}
		return tx.Delete(&models.Vendor{}, id).Error
	})
	return blocked, err
}

// DeleteUser refuses with ErrUserHasIssuedStock while the user holds
// issued items. Unissued history does not block the delete.
func (g *ReferenceGuard) DeleteUser(id uint) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).
			Where("user_id = ? AND issued = ?", id, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUserHasIssuedStock
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
