package http

type OrderLineRequest struct {
	MenuItemID          uint64 `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

type CreateOrderRequest struct {
	TableID uint64             `json:"tableId" binding:"required"`
	Items   []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Notes   string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  uint64  `json:"categoryId" binding:"required"`
	Available   *bool   `json:"available"`
}

type TableRequest struct {
	Number int `json:"number" binding:"required,min=1"`
	Seats  int `json:"seats" binding:"required,min=1"`
}
