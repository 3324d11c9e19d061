package handlers

import (
	"net/http"

	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UpdateProfileRequest struct {
	Fname *string `json:"fname,omitempty"`
	Lname *string `json:"lname,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// GetProfile godoc
// @Summary      Read own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200 {object} Response
// @Failure      401 {object} Response
// @Router       /user/{userId}/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), actingUserID(c), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Profile found successfully.", Data: user})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Replace any of fname/lname/email/phone; omitted fields are left untouched
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        request body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Router       /user/{userId}/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Invalid request body! Please provide some user's information to update."})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), actingUserID(c), c.Param("userId"), services.ProfileInput{
		Fname: req.Fname,
		Lname: req.Lname,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Data: user})
}
