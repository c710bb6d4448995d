package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/service"
)

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the payload for PUT /api/user/profile.
type UpdateProfileRequest struct {
	ID              uint   `json:"id"`
	CurrentPassword string `json:"current_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
}

// UserResponse wraps a user record in the standard envelope.
type UserResponse struct {
	Response
	User *model.User `json:"user,omitempty"`
}

// @Summary Register a new account
// @Description Create a user account. The email must be unused and the password must contain at least 8 characters with a lowercase letter, an uppercase letter and a digit.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} UserResponse
// @Failure 400 {object} Response "Invalid fields"
// @Failure 409 {object} Response "Email already registered"
// @Router /register [post]
// RegisterFiber handles POST /register for Fiber.
func (h *APIHandler) RegisterFiber(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	user, err := h.Users.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		Response: Response{Success: true, Message: "Registration successful"},
		User:     user,
	})
}

// RegisterGin handles POST /register for Gin.
func (h *APIHandler) RegisterGin(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	user, err := h.Users.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, UserResponse{
		Response: Response{Success: true, Message: "Registration successful"},
		User:     user,
	})
}

// @Summary Log in
// @Description Verify email and password. No session token is issued; the response only confirms the credentials.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} UserResponse
// @Failure 400 {object} Response "Missing fields"
// @Failure 401 {object} Response "Invalid credentials"
// @Router /login [post]
// LoginFiber handles POST /login for Fiber.
func (h *APIHandler) LoginFiber(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	user, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Response: Response{Success: true, Message: "Login successful"},
		User:     user,
	})
}

// LoginGin handles POST /login for Gin.
func (h *APIHandler) LoginGin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	user, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, UserResponse{
		Response: Response{Success: true, Message: "Login successful"},
		User:     user,
	})
}

// @Summary Update profile
// @Description Change name, email and optionally the password. The current password must verify against the stored hash.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile payload"
// @Success 200 {object} UserResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response "Current password is incorrect"
// @Failure 404 {object} Response "User not found"
// @Failure 409 {object} Response "Email already in use"
// @Router /api/user/profile [put]
// UpdateProfileFiber handles PUT /api/user/profile for Fiber.
func (h *APIHandler) UpdateProfileFiber(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	user, err := h.Users.UpdateProfile(service.UpdateProfileParams{
		ID:              req.ID,
		CurrentPassword: req.CurrentPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Response: Response{Success: true, Message: "Profile updated successfully"},
		User:     user,
	})
}

// UpdateProfileGin handles PUT /api/user/profile for Gin.
func (h *APIHandler) UpdateProfileGin(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	user, err := h.Users.UpdateProfile(service.UpdateProfileParams{
		ID:              req.ID,
		CurrentPassword: req.CurrentPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, UserResponse{
		Response: Response{Success: true, Message: "Profile updated successfully"},
		User:     user,
	})
}

// @Summary Delete account
// @Description Delete a user and, in one transaction, every check-in, journal entry, metric and feedback record the user owns.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "User not found"
// @Router /api/user/{id} [delete]
// DeleteAccountFiber handles DELETE /api/user/:id for Fiber.
func (h *APIHandler) DeleteAccountFiber(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Invalid user id"})
	}

	if err := h.Users.DeleteAccount(uint(id)); err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Message: "Account deleted successfully"})
}

// DeleteAccountGin handles DELETE /api/user/:id for Gin.
func (h *APIHandler) DeleteAccountGin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid user id"})
		return
	}

	if err := h.Users.DeleteAccount(uint(id)); err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "Account deleted successfully"})
}

// @Summary Log out
// @Description Clear the session cookie. No server-side session store exists; this endpoint only expires the cookie.
// @Tags Users
// @Produce json
// @Success 200 {object} Response
// @Router /logout [post]
// LogoutFiber handles POST /logout for Fiber.
func (h *APIHandler) LogoutFiber(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Message: "Logged out successfully"})
}

// LogoutGin handles POST /logout for Gin.
func (h *APIHandler) LogoutGin(c *gin.Context) {
	c.SetCookie("session", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Logged out successfully"})
}
