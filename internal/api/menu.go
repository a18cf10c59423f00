package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

// maxMenuUploadSize caps menu file uploads at 10MB.
const maxMenuUploadSize = 10 << 20

// MenuHandler exposes menu text parsing, saved menus and menu file uploads
type MenuHandler struct {
	menus service.IMenuService
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(menus service.IMenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// ParseMenuText runs the heuristic parser over pasted menu text
func (h *MenuHandler) ParseMenuText(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req types.ParseMenuTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed := h.menus.ParseMenuText(req.Text)
	c.JSON(http.StatusOK, gin.H{"menu": parsed})
}

// UploadMenuFile stores an uploaded menu file
func (h *MenuHandler) UploadMenuFile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxMenuUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	upload, err := h.menus.UploadMenuFile(c.Request.Context(), userID, fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload menu file"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"upload": upload})
}

// SaveMenu persists a reviewed menu
func (h *MenuHandler) SaveMenu(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SaveMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := h.menus.SaveMenu(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save menu"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu": menu})
}

// GetMenu returns one saved menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	menu, err := h.menus.GetMenu(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// ListMenus returns the user's saved menus
func (h *MenuHandler) ListMenus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	menus, err := h.menus.ListMenus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}
