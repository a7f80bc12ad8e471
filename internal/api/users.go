package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ternfeed/tern/client/internal/types"
)

// GetMe returns the account owning the credentials in use.
func GetMe(ctx context.Context, hc *http.Client, baseURL string) (*types.User, error) {
	var user types.User
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/me"), nil, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every account; requires admin privileges.
func ListUsers(ctx context.Context, hc *http.Client, baseURL string) ([]*types.User, error) {
	var users []*types.User
	if err := doJSON(ctx, hc, http.MethodGet, endpoint(baseURL, "/users"), nil, http.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByID retrieves an account by numeric ID.
func GetUserByID(ctx context.Context, hc *http.Client, baseURL string, userID int64) (*types.User, error) {
	return getUser(ctx, hc, baseURL, strconv.FormatInt(userID, 10))
}

// GetUserByUsername retrieves an account by username; the server routes both
// lookups through the same path.
func GetUserByUsername(ctx context.Context, hc *http.Client, baseURL, username string) (*types.User, error) {
	return getUser(ctx, hc, baseURL, username)
}

func getUser(ctx context.Context, hc *http.Client, baseURL, ref string) (*types.User, error) {
	url := endpoint(baseURL, fmt.Sprintf("/users/%s", ref))
	var user types.User
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser provisions a new account; requires admin privileges.
func CreateUser(ctx context.Context, hc *http.Client, baseURL string, req types.UserCreationRequest) (*types.User, error) {
	var user types.User
	if err := doJSON(ctx, hc, http.MethodPost, endpoint(baseURL, "/users"), req, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser modifies account settings; nil fields in req are left unchanged.
func UpdateUser(ctx context.Context, hc *http.Client, baseURL string, userID int64, req types.UserModificationRequest) (*types.User, error) {
	url := endpoint(baseURL, fmt.Sprintf("/users/%d", userID))
	var user types.User
	if err := doJSON(ctx, hc, http.MethodPut, url, req, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. Backend returns 204 No Content on success.
func DeleteUser(ctx context.Context, hc *http.Client, baseURL string, userID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/users/%d", userID))
	return doJSON(ctx, hc, http.MethodDelete, url, nil, http.StatusNoContent, nil)
}

// MarkUserAsRead marks every entry of the account as read. Backend returns 204.
func MarkUserAsRead(ctx context.Context, hc *http.Client, baseURL string, userID int64) error {
	url := endpoint(baseURL, fmt.Sprintf("/users/%d/mark-all-as-read", userID))
	return doJSON(ctx, hc, http.MethodPut, url, nil, http.StatusNoContent, nil)
}
