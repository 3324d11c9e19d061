package services

import (
	"context"
	"fmt"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/models"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// answerReward is credited to the answerer on every posted answer.
const answerReward = 200

type AnswerService struct {
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	users     repository.UserRepository
}

func NewAnswerService(answers repository.AnswerRepository, questions repository.QuestionRepository, users repository.UserRepository) *AnswerService {
	return &AnswerService{answers: answers, questions: questions, users: users}
}

type CreateAnswerInput struct {
	QuestionID string
	AnsweredBy string
	Text       string
}

// Create posts an answer to someone else's question and credits the
// answerer. Users cannot answer their own questions.
func (s *AnswerService) Create(ctx context.Context, actingUserID string, input CreateAnswerInput) (*models.Answer, error) {
	questionID, err := bson.ObjectIDFromHex(input.QuestionID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid question id.", input.QuestionID))
	}
	answeredBy, err := bson.ObjectIDFromHex(input.AnsweredBy)
	if err != nil {
		return nil, apperrors.Validation("Not a valid userId.")
	}
	if !validation.IsValid(input.Text) {
		return nil, apperrors.Validation("Text is required.")
	}
	if input.AnsweredBy != actingUserID {
		return nil, apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", input.AnsweredBy))
	}

	user, err := s.users.FindByID(ctx, answeredBy)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if user == nil {
		return nil, apperrors.Validation("User not found.")
	}

	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if question == nil || question.IsDeleted {
		return nil, apperrors.Validation("Either question doesn't exist or deleted.")
	}
	if question.AskedBy == answeredBy {
		return nil, apperrors.Validation("User can't answer their own question.")
	}

	answer := &models.Answer{
		QuestionID: questionID,
		AnsweredBy: answeredBy,
		Text:       input.Text,
	}
	if err := s.answers.Insert(ctx, answer); err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if err := s.users.AddCredit(ctx, answeredBy, answerReward); err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return answer, nil
}

// ListByQuestion returns all answers of a question with their
// timestamps stripped. The parent question must exist but may be
// deleted; its answers stay readable.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID string) ([]models.AnswerSummary, error) {
	id, err := bson.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid question id in URL params.", questionID))
	}

	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if question == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("Question doesn't exist by %s.", questionID))
	}

	answers, err := s.answers.ListByQuestion(ctx, id, false)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if len(answers) == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("No answers found for %s.", questionID))
	}

	summaries := make([]models.AnswerSummary, 0, len(answers))
	for _, a := range answers {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// Update replaces the text of the caller's own answer.
func (s *AnswerService) Update(ctx context.Context, actingUserID, answerID string, text *string) (*models.Answer, error) {
	id, err := bson.ObjectIDFromHex(answerID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid answerId.", answerID))
	}

	answer, err := s.answers.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if answer == nil || answer.IsDeleted {
		return nil, apperrors.NotFound(fmt.Sprintf("No answer found by %s.", answerID))
	}
	if answer.AnsweredBy.Hex() != actingUserID {
		return nil, apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", answer.AnsweredBy.Hex()))
	}

	if text == nil || !validation.ValidString(text) {
		return nil, apperrors.Validation("Please provide the answer text to update.")
	}

	updated, err := s.answers.UpdateText(ctx, id, *text)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if updated == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("No answer found by %s.", answerID))
	}
	return updated, nil
}

type DeleteAnswerInput struct {
	AnsweredBy string
	QuestionID string
}

// Delete soft-deletes the caller's own answer. The body-supplied
// answeredBy and questionId are redundant confirmations: the verified
// session stays the only trust source, the body fields are checked as
// assertions.
func (s *AnswerService) Delete(ctx context.Context, actingUserID, answerID string, input DeleteAnswerInput) error {
	id, err := bson.ObjectIDFromHex(answerID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("%s is not a valid answer id.", answerID))
	}
	if !validation.IsValid(input.AnsweredBy) {
		return apperrors.Validation("answeredBy is required to delete the answer.")
	}
	if !validation.IsValidObjectID(input.AnsweredBy) {
		return apperrors.Validation(fmt.Sprintf("%s is not a valid answeredBy id.", input.AnsweredBy))
	}
	if !validation.IsValid(input.QuestionID) {
		return apperrors.Validation("questionId is required to delete the answer.")
	}
	if !validation.IsValidObjectID(input.QuestionID) {
		return apperrors.Validation(fmt.Sprintf("%s is not a valid question id.", input.QuestionID))
	}
	if input.AnsweredBy != actingUserID {
		return apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", input.AnsweredBy))
	}

	answer, err := s.answers.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err.Error())
	}
	if answer == nil || answer.IsDeleted {
		return apperrors.NotFound(fmt.Sprintf("No answer exists by %s or has been already deleted.", answerID))
	}
	if answer.AnsweredBy.Hex() != actingUserID {
		return apperrors.Unauthorized("Unable to delete the answer because it is not answered by you.")
	}

	if err := s.answers.SoftDelete(ctx, id); err != nil {
		return apperrors.Internal(err.Error())
	}
	return nil
}
