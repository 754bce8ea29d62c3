package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ItemHandler struct {
	useCase usecase.ItemUseCase
	log     *logrus.Logger
}

func NewItemHandler(uc usecase.ItemUseCase, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{
		useCase: uc,
		log:     logger,
	}
}

// AddItemRequest is accepted as JSON or as a URL-encoded form. A blank form
// price is stored as NULL.
type AddItemRequest struct {
	Category    string   `json:"category" form:"category"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
}

type UpdateItemRequest struct {
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
}

func (h *ItemHandler) RegisterRoutes(router gin.IRouter) {
	items := router.Group("/items")
	{
		items.GET("/:category", h.ListItemsByCategory)
		items.POST("", h.AddItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *ItemHandler) ListItemsByCategory(c *gin.Context) {
	category := c.Param("category")
	items, err := h.useCase.ListItemsByCategory(c.Request.Context(), category)
	if err != nil {
		h.log.Errorf("Failed to list items for category '%s': %v", category, err)
		ErrorResponse(c, http.StatusInternalServerError, msgInternalError)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := bindRequest(c, &req); err != nil {
		h.log.Warnf("Failed to bind add item request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if blankFormField(c, "price") {
		req.Price = nil
	}

	item, err := h.useCase.AddItem(c.Request.Context(), req.Category, req.Description, req.Price)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Category not found")
			return
		}
		h.log.Errorf("Failed to add item to category '%s': %v", req.Category, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to add item")
		return
	}

	h.log.Infof("Item added: ID %d, category '%s'", item.ID, req.Category)
	SuccessResponse(c, http.StatusOK, "Item added successfully!")
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := bindRequest(c, &req); err != nil {
		h.log.Warnf("Failed to bind update request for item ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if blankFormField(c, "price") {
		req.Price = nil
	}

	if err := h.useCase.UpdateItem(c.Request.Context(), id, req.Description, req.Price); err != nil {
		h.log.Errorf("Failed to update item ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to update item")
		return
	}
	SuccessResponse(c, http.StatusOK, "Item updated successfully!")
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteItem(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete item ID %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	SuccessResponse(c, http.StatusOK, "Item deleted successfully!")
}

func (h *ItemHandler) itemID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warnf("Invalid item ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid item ID")
		return 0, false
	}
	return id, true
}
