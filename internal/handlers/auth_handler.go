package handlers

import (
	"net/http"

	"github.com/chamberhq/venuebook/internal/helpers"
	"github.com/chamberhq/venuebook/internal/middleware"
	"github.com/chamberhq/venuebook/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	MsgLoginMissing = "Please enter both email and password."
	MsgLoginInvalid = "Invalid email or password. Please try again."
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies admin credentials against Supabase Auth and installs the
// session cookies on success.
func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.FlaggedErrorResponse(MsgLoginMissing, "missing"))
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, helpers.FlaggedErrorResponse(MsgLoginMissing, "missing"))
			return
		}

		tokenRes, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, helpers.FlaggedErrorResponse(MsgLoginInvalid, "invalid"))
			return
		}

		middleware.SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn)

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"email":       req.Email,
			"redirect_to": "/admin/bookings",
		}, "Logged in successfully"))
	}
}

// Logout clears the admin session cookies.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.ClearSessionCookies(c)

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{
			"redirect_to": middleware.LoginPath,
		}, "Logged out successfully"))
	}
}
