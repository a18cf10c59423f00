package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/culinaryco/menucraft/backend/config"
	"github.com/culinaryco/menucraft/backend/internal/menuparse"
	"github.com/culinaryco/menucraft/backend/internal/models"
	"github.com/culinaryco/menucraft/backend/internal/types"
)

var ErrMenuNotFound = errors.New("saved menu not found")

// MenuUpload describes a stored menu file. Text extraction from PDFs is not
// implemented; ExtractedText stays empty and the operator pastes menu text
// for parsing instead.
type MenuUpload struct {
	Key           string    `json:"key"`
	FileName      string    `json:"file_name"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	URL           string    `json:"url,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
	ExtractedText string    `json:"extracted_text,omitempty"`
}

// MenuService handles heuristic menu parsing, saved menus and menu file
// uploads.
type MenuService struct {
	db *gorm.DB
	s3 *config.S3Config
}

// NewMenuService creates a new MenuService instance. s3Config may be nil when
// uploads are disabled.
func NewMenuService(db *gorm.DB, s3Config *config.S3Config) *MenuService {
	return &MenuService{db: db, s3: s3Config}
}

// ParseMenuText runs the heuristic parser over raw menu text. The result is a
// suggestion for the operator to review and edit before saving.
func (s *MenuService) ParseMenuText(text string) *types.ParsedMenu {
	return menuparse.Parse(text)
}

// SaveMenu persists a reviewed menu for a restaurant.
func (s *MenuService) SaveMenu(ctx context.Context, userID uuid.UUID, req *types.SaveMenuRequest) (*models.SavedMenu, error) {
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant_id: %w", err)
	}

	menu := &models.SavedMenu{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Categories:   models.JSONBStringArray(req.Categories),
		Items:        models.SavedMenuItems(req.Items),
		SourceFile:   req.SourceFile,
	}
	if err := s.db.WithContext(ctx).Create(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

// GetMenu loads one saved menu owned by the user.
func (s *MenuService) GetMenu(ctx context.Context, userID, id uuid.UUID) (*models.SavedMenu, error) {
	var menu models.SavedMenu
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// ListMenus returns all saved menus owned by the user.
func (s *MenuService) ListMenus(ctx context.Context, userID uuid.UUID) ([]*models.SavedMenu, error) {
	var menus []*models.SavedMenu
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// UploadMenuFile stores the raw uploaded file in S3 and returns its metadata.
func (s *MenuService) UploadMenuFile(ctx context.Context, userID uuid.UUID, fileName, contentType string, data []byte) (*MenuUpload, error) {
	if s.s3 == nil {
		return nil, errors.New("menu uploads are not configured")
	}

	key := fmt.Sprintf("menus/%s/%s%s", userID, uuid.New(), filepath.Ext(fileName))
	_, err := s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload menu file: %w", err)
	}

	url, err := s.s3.GeneratePresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		log.Printf("[MenuService] failed to presign %s: %v", key, err)
		url = ""
	}

	return &MenuUpload{
		Key:         key,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         url,
		UploadedAt:  time.Now().UTC(),
	}, nil
}
