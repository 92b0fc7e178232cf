// patch.go - Shared partial-update application used by both backends

package storage // Declares the package name

import "go-shop-backend/models"

// applyAddressPatch copies the non-nil fields of the patch onto the
// address. The IsDefault flag is applied too; sibling clearing is the
// caller's job.
func applyAddressPatch(address *models.Address, patch *models.AddressPatch) {
	if patch.Street != nil {
		address.Street = *patch.Street
	}
	if patch.City != nil {
		address.City = *patch.City
	}
	if patch.State != nil {
		address.State = *patch.State
	}
	if patch.PostalCode != nil {
		address.PostalCode = *patch.PostalCode
	}
	if patch.Country != nil {
		address.Country = *patch.Country
	}
	if patch.IsDefault != nil {
		address.IsDefault = *patch.IsDefault
	}
}

// applyProductPatch copies the non-nil fields of the patch onto the
// product.
func applyProductPatch(product *models.Product, patch *models.ProductPatch) {
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Image != nil {
		product.Image = *patch.Image
	}
	if patch.CategoryID != nil {
		product.CategoryID = patch.CategoryID
	}
	if patch.Inventory != nil {
		product.Inventory = *patch.Inventory
	}
}
