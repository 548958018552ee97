package request

// CategoryRequest creates or replaces a menu category
type CategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
}

// MenuItemRequest creates or replaces a menu item
type MenuItemRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Available   *bool   `json:"available"`
	Image       *string `json:"image"`
}
