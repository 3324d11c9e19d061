package handlers

import (
	"net/http"

	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

type CreateAnswerRequest struct {
	QuestionID string `json:"questionId" example:"64f1c2e5a7b9d83f5c1a2b3c"`
	AnsweredBy string `json:"answeredBy" example:"64f1c2e5a7b9d83f5c1a2b3d"`
	Text       string `json:"text" example:"Rayleigh scattering"`
}

type UpdateAnswerRequest struct {
	Text *string `json:"text,omitempty"`
}

type DeleteAnswerRequest struct {
	AnsweredBy string `json:"answeredBy"`
	QuestionID string `json:"questionId"`
}

// Create godoc
// @Summary      Answer a question
// @Description  Rewards the answerer with 200 credit score; own questions cannot be answered
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAnswerRequest true "Answer data"
// @Success      201 {object} Response
// @Failure      400 {object} Response
// @Router       /answer [post]
func (h *AnswerHandler) Create(c *gin.Context) {
	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Empty body. Please provide a request body."})
		return
	}

	answer, err := h.answerService.Create(c.Request.Context(), actingUserID(c), services.CreateAnswerInput{
		QuestionID: req.QuestionID,
		AnsweredBy: req.AnsweredBy,
		Text:       req.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Status: true, Message: "Question answered successfully & creditScore of 200 added to your account.", Data: answer})
}

// List godoc
// @Summary      List answers of a question
// @Tags         answers
// @Produce      json
// @Param        questionId path string true "Question ID"
// @Success      200 {object} Response
// @Failure      404 {object} Response
// @Router       /questions/{questionId}/answer [get]
func (h *AnswerHandler) List(c *gin.Context) {
	questionID := c.Param("questionId")
	answers, err := h.answerService.ListByQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Answers fetched successfully for " + questionID + ".", Data: answers})
}

// Update godoc
// @Summary      Update own answer
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        answerId path string true "Answer ID"
// @Param        request body UpdateAnswerRequest true "Replacement text"
// @Success      200 {object} Response
// @Failure      400 {object} Response
// @Router       /answer/{answerId} [put]
func (h *AnswerHandler) Update(c *gin.Context) {
	var req UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Unable to update empty request body."})
		return
	}

	answer, err := h.answerService.Update(c.Request.Context(), actingUserID(c), c.Param("answerId"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Answer updated successfully.", Data: answer})
}

// Delete godoc
// @Summary      Soft-delete own answer
// @Description  Body answeredBy/questionId are redundant confirmations of the session identity
// @Tags         answers
// @Accept       json
// @Security     BearerAuth
// @Param        answerId path string true "Answer ID"
// @Param        request body DeleteAnswerRequest true "Confirmation data"
// @Success      204
// @Failure      404 {object} Response
// @Router       /answers/{answerId} [delete]
func (h *AnswerHandler) Delete(c *gin.Context) {
	var req DeleteAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: false, Message: "Empty body. Please provide a request body to delete."})
		return
	}

	err := h.answerService.Delete(c.Request.Context(), actingUserID(c), c.Param("answerId"), services.DeleteAnswerInput{
		AnsweredBy: req.AnsweredBy,
		QuestionID: req.QuestionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
