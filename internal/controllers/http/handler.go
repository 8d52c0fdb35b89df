package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tableside-service/internal/domain"
	"tableside-service/internal/repository"
	"tableside-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	orders *services.OrderService
	menu   *services.MenuService
	tables *services.TableService
	rdb    *redis.Client
}

func NewHandler(orders *services.OrderService, menu *services.MenuService, tables *services.TableService, rdb *redis.Client) *Handler {
	return &Handler{orders: orders, menu: menu, tables: tables, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PUT("/orders/:id", h.UpdateOrderStatus)
	r.GET("/orders/table/:tableId", h.GetOrdersByTable)
	r.GET("/orders/status/:status", h.GetOrdersByStatus)

	r.GET("/menu/items", h.ListMenuItems)
	r.POST("/menu/items", h.CreateMenuItem)
	r.GET("/menu/items/:id", h.GetMenuItem)
	r.PUT("/menu/items/:id", h.UpdateMenuItem)
	r.DELETE("/menu/items/:id", h.DeleteMenuItem)
	r.GET("/menu/categories", h.ListCategories)
	r.POST("/menu/categories", h.CreateCategory)
	r.DELETE("/menu/categories/:id", h.DeleteCategory)

	r.GET("/tables", h.ListTables)
	r.POST("/tables", h.CreateTable)
	r.GET("/tables/:id", h.GetTable)
	r.PUT("/tables/:id", h.UpdateTable)
	r.DELETE("/tables/:id", h.DeleteTable)
	r.POST("/tables/:id/qrcode", h.RegenerateQRCode)

	r.GET("/health", h.Health)
}

// statusForError maps service sentinels onto HTTP codes: 404 for missing
// entities, 400 for rejected input, 500 for everything else.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrTransitionNotAllowed),
		errors.Is(err, services.ErrCategoryExists),
		errors.Is(err, services.ErrCategoryInUse),
		errors.Is(err, services.ErrTableNumberTaken),
		errors.Is(err, services.ErrInvalidTableNumber):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := domain.NewCart(req.TableID)
	cart.SetNotes(req.Notes)
	for _, item := range req.Items {
		cart.AddItem(item.MenuItemID, item.Quantity, item.SpecialInstructions)
	}

	order, err := h.orders.SubmitCart(c.Request.Context(), cart)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateTableOrdersCache(req.TableID)

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateTableOrdersCache(order.TableID)

	c.JSON(http.StatusOK, order)
}

// GetOrdersByTable serves the customer's active-orders view, cached for a
// few seconds since seated customers poll it.
func (h *Handler) GetOrdersByTable(c *gin.Context) {
	tableID, ok := parseID(c, "tableId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := tableOrdersCacheKey(tableID)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var orders []domain.Order
			if json.Unmarshal([]byte(cached), &orders) == nil {
				c.JSON(http.StatusOK, orders)
				return
			}
		}
	}

	orders, err := h.orders.ListActiveOrdersByTable(tableID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			h.rdb.Set(ctx, cacheKey, data, 5*time.Second)
		}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrdersByStatus(c *gin.Context) {
	orders, err := h.orders.ListOrdersByStatus(domain.OrderStatus(c.Param("status")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListMenuItems serves the menu with server-side availability and
// category filtering. The plain available-only listing is the public hot
// path and goes through redis.
func (h *Handler) ListMenuItems(c *gin.Context) {
	filter := repository.MenuItemFilter{
		AvailableOnly: c.Query("available") == "true",
	}
	if raw := c.Query("category"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		filter.CategoryID = categoryID
	}

	ctx := c.Request.Context()
	cacheable := h.rdb != nil && filter.AvailableOnly && filter.CategoryID == 0

	if cacheable {
		if cached, err := h.rdb.Get(ctx, services.MenuCacheKey).Result(); err == nil {
			var items []domain.MenuItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				c.JSON(http.StatusOK, items)
				return
			}
		}
	}

	items, err := h.menu.ListItems(filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if cacheable {
		if data, err := json.Marshal(items); err == nil {
			h.rdb.Set(ctx, services.MenuCacheKey, data, 30*time.Second)
		}
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.menu.CreateItem(c.Request.Context(), &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Available:   available,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.menu.GetItem(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.menu.UpdateItem(c.Request.Context(), &domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Available:   available,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.menu.DeleteItem(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.menu.ListCategories()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.menu.CreateCategory(req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.menu.DeleteCategory(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.tables.ListTables()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) CreateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.CreateTable(c.Request.Context(), req.Number, req.Seats)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) GetTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	table, err := h.tables.GetTable(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) UpdateTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.UpdateTable(c.Request.Context(), id, req.Number, req.Seats)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.tables.DeleteTable(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *Handler) RegenerateQRCode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	table, err := h.tables.RegenerateQRCode(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "tableside-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func tableOrdersCacheKey(tableID uint64) string {
	return "orders:table:" + strconv.FormatUint(tableID, 10)
}

func (h *Handler) invalidateTableOrdersCache(tableID uint64) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), tableOrdersCacheKey(tableID))
}
