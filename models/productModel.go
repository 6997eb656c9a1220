package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// Price is in minor currency units (VND has no sub-unit).
	Price      int64          `json:"price" binding:"required"`
	Category   string         `json:"category"`
	Attributes datatypes.JSON `json:"attributes"`
	Images     []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
