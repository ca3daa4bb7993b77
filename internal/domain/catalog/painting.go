package catalog

import (
	"time"

	"gorm.io/gorm"
)

type Painting struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Artist      string  `gorm:"not null" json:"artist"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"index" json:"category"`
	Discount    float64 `gorm:"not null;default:0" json:"discount"` // percent off, 0-100
	IsFeatured  bool    `gorm:"not null;default:false" json:"isFeatured"`

	// At most one painting carries this flag; see PromoteMasterpiece.
	IsMasterpiece bool `gorm:"not null;default:false" json:"isMasterpiece"`

	ImageURL string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClearMasterpiece unsets the flag across the whole catalogue.
func ClearMasterpiece(db *gorm.DB) error {
	return db.Model(&Painting{}).
		Where("is_masterpiece = ?", true).
		Update("is_masterpiece", false).Error
}

// PromoteMasterpiece makes p the single masterpiece of the month by
// bulk-clearing the flag and then setting it on p. Callers pass a
// transaction handle; on a plain connection a failure between the two
// writes leaves no masterpiece at all, never two.
func PromoteMasterpiece(db *gorm.DB, p *Painting) error {
	if err := ClearMasterpiece(db); err != nil {
		return err
	}
	p.IsMasterpiece = true
	return db.Model(p).Update("is_masterpiece", true).Error
}
