package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternfeed/tern/client/internal/types"
)

type categoryRequest struct {
	Title string `json:"title"`
}

// ListCategories returns every category of the authenticated user.
func ListCategories(ctx context.Context, hc *http.Client, baseURL string) ([]*types.Category, error) {
	var categories []*types.Category
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/categories"), nil, http.StatusOK, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a new category.
func CreateCategory(ctx context.Context, hc *http.Client, baseURL, title string) (*types.Category, error) {
	var category types.Category
	if err := doJSON(ctx, hc, http.MethodPost, endpoint(baseURL, "/categories"), categoryRequest{Title: title}, http.StatusCreated, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func UpdateCategory(ctx context.Context, hc *http.Client, baseURL string, categoryID int64, title string) (*types.Category, error) {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d", categoryID))
	var category types.Category
	if err := doJSON(ctx, hc, http.MethodPut, url, categoryRequest{Title: title}, http.StatusCreated, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Backend returns 204 No Content on success.
func DeleteCategory(ctx context.Context, hc *http.Client, baseURL string, categoryID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d", categoryID))
	return doJSON(ctx, hc, http.MethodDelete, url, nil, http.StatusNoContent, nil)
}

// RefreshCategory asks the server to refresh every feed in the category.
func RefreshCategory(ctx context.Context, hc *http.Client, baseURL string, categoryID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d/refresh", categoryID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, anyBelow400, nil)
}

// MarkCategoryAsRead marks every entry in the category as read. Backend
// returns 204.
func MarkCategoryAsRead(ctx context.Context, hc *http.Client, baseURL string, categoryID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/categories/%d/mark-all-as-read", categoryID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, http.StatusNoContent, nil)
}
