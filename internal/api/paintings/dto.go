package paintings

// ---------- requests

type CreatePaintingRequest struct {
	Title         string  `json:"title" binding:"required"`
	Artist        string  `json:"artist" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	Discount      float64 `json:"discount" binding:"gte=0,lte=100"`
	IsFeatured    bool    `json:"isFeatured"`
	IsMasterpiece bool    `json:"isMasterpiece"`
	ImageURL      string  `json:"imageUrl"`
}

// UpdatePaintingRequest uses pointers so only supplied fields change.
type UpdatePaintingRequest struct {
	Title         *string  `json:"title"`
	Artist        *string  `json:"artist"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Category      *string  `json:"category"`
	Discount      *float64 `json:"discount"`
	IsFeatured    *bool    `json:"isFeatured"`
	IsMasterpiece *bool    `json:"isMasterpiece"`
	ImageURL      *string  `json:"imageUrl"`
}
