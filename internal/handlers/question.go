package handlers

import (
	"net/http"

	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type CreateQuestionRequest struct {
	Description string  `json:"description" example:"Why is the sky blue?"`
	Tag         *string `json:"tag,omitempty" example:"science,physics"`
	AskedBy     string  `json:"askedBy" example:"64f1c2e5a7b9d83f5c1a2b3c"`
}

type UpdateQuestionRequest struct {
	Description *string `json:"description,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

// Create godoc
// @Summary      Post a question
// @Description  Costs the asker 100 credit score
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} Response
// @Failure      400 {object} Response
// @Router       /question [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Please provide the valid request body to post a question."})
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), actingUserID(c), services.CreateQuestionInput{
		Description: req.Description,
		Tag:         req.Tag,
		AskedBy:     req.AskedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Status: true, Message: "Question posted successfully.", Data: question})
}

// List godoc
// @Summary      List questions
// @Description  Filter by tag containment, sort by creation time
// @Tags         questions
// @Produce      json
// @Param        tag query string false "Comma-separated tags; all must match"
// @Param        sort query string false "ascending or descending"
// @Success      200 {object} Response
// @Failure      404 {object} Response
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	var tag, sort *string
	if v, ok := c.GetQuery("tag"); ok {
		tag = &v
	}
	if v, ok := c.GetQuery("sort"); ok {
		sort = &v
	}

	questions, err := h.questionService.List(c.Request.Context(), tag, sort)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Questions list.", Data: questions})
}

// GetByID godoc
// @Summary      Get a question with its answers
// @Tags         questions
// @Produce      json
// @Param        questionId path string true "Question ID"
// @Success      200 {object} Response
// @Failure      404 {object} Response
// @Router       /questions/{questionId} [get]
func (h *QuestionHandler) GetByID(c *gin.Context) {
	detail, err := h.questionService.GetByID(c.Request.Context(), c.Param("questionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Question fetched successfully.", Data: detail})
}

// Update godoc
// @Summary      Update own question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        questionId path string true "Question ID"
// @Param        request body UpdateQuestionRequest true "Fields to update"
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Router       /questions/{questionId} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Empty request body isn't valid for updation."})
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), actingUserID(c), c.Param("questionId"), services.UpdateQuestionInput{
		Description: req.Description,
		Tag:         req.Tag,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Question updated successfully.", Data: question})
}

// Delete godoc
// @Summary      Soft-delete own question
// @Tags         questions
// @Security     BearerAuth
// @Param        questionId path string true "Question ID"
// @Success      204
// @Failure      404 {object} Response
// @Router       /questions/{questionId} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.questionService.Delete(c.Request.Context(), actingUserID(c), c.Param("questionId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
