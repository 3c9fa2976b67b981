package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type identityClaims struct {
	Username string   `json:"username"`
	UserID   string   `json:"user_id"`
	Roles    []string `json:"roles"`
}

// ctxIdentity extracts the claims injected by the Auth middleware and
// performs a fast-fail check before use: a non-empty user id proves the
// middleware ran.
func ctxIdentity(c echo.Context) (*identityClaims, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	roles, _ := c.Get("roles").([]string)

	return &identityClaims{
		Username: username,
		UserID:   userID,
		Roles:    roles,
	}, nil
}
