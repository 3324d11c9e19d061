package handlers

import (
	"net/http"

	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Fname    string  `json:"fname" example:"Joy"`
	Lname    string  `json:"lname" example:"Bhattacharya"`
	Email    string  `json:"email" example:"joy@example.com"`
	Phone    *string `json:"phone,omitempty" example:"9876543210"`
	Password string  `json:"password" example:"secret123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"joy@example.com"`
	Password string `json:"password" example:"secret123"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account with a starting credit score of 500
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} Response
// @Failure      400 {object} Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Empty request cannot be processed. Please provide the user's details to register."})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Fname:    req.Fname,
		Lname:    req.Lname,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Status: true, Message: "Registration successful.", Data: user})
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials and issue a 24h session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} Response
// @Failure      401 {object} Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Invalid request parameters. Please provide login details."})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Successfully logged in.", Data: result})
}
