package paintings

import (
	"net/http"

	"artisan-backend/database"
	"artisan-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/paintings
// ------------------------------
func ListPaintings(c *gin.Context) {
	var paintings []catalog.Painting
	if err := database.DB.Order("created_at DESC").Find(&paintings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}
	c.JSON(http.StatusOK, paintings)
}

func GetPainting(c *gin.Context) {
	var painting catalog.Painting
	if err := database.DB.First(&painting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, painting)
}

// ------------------------------
// POST /api/paintings  (admin)
// ------------------------------
func CreatePainting(c *gin.Context) {
	var req CreatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	painting := catalog.Painting{
		Title:       req.Title,
		Artist:      req.Artist,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Discount:    req.Discount,
		IsFeatured:  req.IsFeatured,
		ImageURL:    req.ImageURL,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&painting).Error; err != nil {
			return err
		}
		if req.IsMasterpiece {
			return catalog.PromoteMasterpiece(tx, &painting)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	c.JSON(http.StatusCreated, painting)
}

// ------------------------------
// PUT /api/paintings/:id  (admin, partial update)
// ------------------------------
func UpdatePainting(c *gin.Context) {
	var req UpdatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var painting catalog.Painting
	if err := database.DB.First(&painting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	if req.Title != nil {
		painting.Title = *req.Title
	}
	if req.Artist != nil {
		painting.Artist = *req.Artist
	}
	if req.Description != nil {
		painting.Description = *req.Description
	}
	if req.Price != nil {
		painting.Price = *req.Price
	}
	if req.Category != nil {
		painting.Category = *req.Category
	}
	if req.Discount != nil {
		painting.Discount = *req.Discount
	}
	if req.IsFeatured != nil {
		painting.IsFeatured = *req.IsFeatured
	}
	if req.ImageURL != nil {
		painting.ImageURL = *req.ImageURL
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&painting).Error; err != nil {
			return err
		}
		if req.IsMasterpiece != nil {
			if *req.IsMasterpiece {
				return catalog.PromoteMasterpiece(tx, &painting)
			}
			painting.IsMasterpiece = false
			return tx.Model(&painting).Update("is_masterpiece", false).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}

	c.JSON(http.StatusOK, painting)
}

// ------------------------------
// DELETE /api/paintings/:id  (admin)
// ------------------------------
func DeletePainting(c *gin.Context) {
	var painting catalog.Painting
	if err := database.DB.First(&painting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	if err := database.DB.Delete(&painting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Painting removed"})
}
