package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/culinaryco/menucraft/backend/internal/api"
	"github.com/culinaryco/menucraft/backend/internal/mocks"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/service"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

func setupMenuRoutes(router *gin.Engine, menus *mocks.MockMenuService) {
	handler := api.NewMenuHandler(menus)
	router.POST("/menus/parse", handler.ParseMenuText)
	router.POST("/menus/upload", handler.UploadMenuFile)
	router.POST("/menus", handler.SaveMenu)
	router.GET("/menus", handler.ListMenus)
	router.GET("/menus/:id", handler.GetMenu)
}

func TestMenuHandlerParse(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the parsed menu", func(t *testing.T) {
		menus := new(mocks.MockMenuService)
		menus.On("ParseMenuText", "APPETIZERS\nBruschetta $12").
			Return(&types.ParsedMenu{
				Categories: []string{"Appetizers"},
				Items:      []types.MenuSnapshotItem{{Name: "Bruschetta", Category: "Appetizers"}},
			})
		router := newTestRouter(userID)
		setupMenuRoutes(router, menus)

		w := performJSON(t, router, http.MethodPost, "/menus/parse", map[string]string{
			"text": "APPETIZERS\nBruschetta $12",
		})
		requireStatus(t, w, http.StatusOK)
		menus.AssertExpectations(t)
	})

	t.Run("missing text fails binding", func(t *testing.T) {
		router := newTestRouter(userID)
		setupMenuRoutes(router, new(mocks.MockMenuService))

		w := performJSON(t, router, http.MethodPost, "/menus/parse", map[string]string{})
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestMenuHandlerSaveAndList(t *testing.T) {
	userID := uuid.New()
	menuID := uuid.New()

	t.Run("save", func(t *testing.T) {
		menus := new(mocks.MockMenuService)
		menus.On("SaveMenu", mock.Anything, userID, mock.Anything).
			Return(&models.SavedMenu{ID: menuID, Name: "Fall Menu"}, nil)
		router := newTestRouter(userID)
		setupMenuRoutes(router, menus)

		w := performJSON(t, router, http.MethodPost, "/menus", map[string]interface{}{
			"restaurant_id": uuid.New().String(),
			"name":          "Fall Menu",
		})
		requireStatus(t, w, http.StatusCreated)
	})

	t.Run("get not found", func(t *testing.T) {
		menus := new(mocks.MockMenuService)
		menus.On("GetMenu", mock.Anything, userID, menuID).Return(nil, service.ErrMenuNotFound)
		router := newTestRouter(userID)
		setupMenuRoutes(router, menus)

		w := performJSON(t, router, http.MethodGet, "/menus/"+menuID.String(), nil)
		requireStatus(t, w, http.StatusNotFound)
	})

	t.Run("list", func(t *testing.T) {
		menus := new(mocks.MockMenuService)
		menus.On("ListMenus", mock.Anything, userID).
			Return([]*models.SavedMenu{{ID: menuID}}, nil)
		router := newTestRouter(userID)
		setupMenuRoutes(router, menus)

		w := performJSON(t, router, http.MethodGet, "/menus", nil)
		requireStatus(t, w, http.StatusOK)
		assert.Len(t, decodeBody(t, w)["menus"], 1)
	})
}

func TestMenuHandlerUpload(t *testing.T) {
	userID := uuid.New()

	multipartBody := func(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile(fieldName, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())
		return &buf, writer.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		menus := new(mocks.MockMenuService)
		menus.On("UploadMenuFile", mock.Anything, userID, "menu.pdf", mock.Anything, []byte("%PDF-1.4")).
			Return(&service.MenuUpload{Key: "menus/x/y.pdf", FileName: "menu.pdf"}, nil)
		router := newTestRouter(userID)
		setupMenuRoutes(router, menus)

		body, contentType := multipartBody(t, "file", "menu.pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		requireStatus(t, w, http.StatusCreated)
		menus.AssertExpectations(t)
	})

	t.Run("missing file field", func(t *testing.T) {
		router := newTestRouter(userID)
		setupMenuRoutes(router, new(mocks.MockMenuService))

		body, contentType := multipartBody(t, "attachment", "menu.pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/menus/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		requireStatus(t, w, http.StatusBadRequest)
	})
}
