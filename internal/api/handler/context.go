package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxCallerID extracts the authenticated caller id injected by the Auth
// middleware. Every blog operation requires it; an empty value means the
// middleware did not run or the token carried no usable identity.
func ctxCallerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "user is not authenticated")
	}
	return id, nil
}
