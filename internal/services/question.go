package services

import (
	"context"
	"fmt"
	"time"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/models"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// questionCost is debited from the asker on every posted question.
const questionCost = 100

type QuestionService struct {
	questions repository.QuestionRepository
	answers   repository.AnswerRepository
	users     repository.UserRepository
}

func NewQuestionService(questions repository.QuestionRepository, answers repository.AnswerRepository, users repository.UserRepository) *QuestionService {
	return &QuestionService{questions: questions, answers: answers, users: users}
}

type CreateQuestionInput struct {
	Description string
	Tag         *string
	AskedBy     string
}

// Create posts a question on behalf of the asker and debits the asking
// user's credit score. The debit is a conditional update so the credit
// gate holds under concurrent requests from the same user.
func (s *QuestionService) Create(ctx context.Context, actingUserID string, input CreateQuestionInput) (*models.Question, error) {
	if !validation.IsValid(input.AskedBy) {
		return nil, apperrors.Validation("askedBy is required to post a question.")
	}
	askedBy, err := bson.ObjectIDFromHex(input.AskedBy)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid user id.", input.AskedBy))
	}
	if input.AskedBy != actingUserID {
		return nil, apperrors.Unauthorized("Unauthorized access! User's info doesn't match.")
	}

	user, err := s.users.FindByID(ctx, askedBy)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if user == nil {
		return nil, apperrors.Validation(fmt.Sprintf("User doesn't exist by %s.", input.AskedBy))
	}
	if user.CreditScore <= 0 {
		return nil, apperrors.InsufficientCredit("Your creditScore is 0, hence cannot post question.")
	}

	if !validation.IsValid(input.Description) {
		return nil, apperrors.Validation("Question description is required.")
	}

	question := &models.Question{
		Description: input.Description,
		AskedBy:     askedBy,
	}
	if input.Tag != nil && validation.IsValid(*input.Tag) {
		question.Tag = validation.NormalizeTags(*input.Tag)
	}

	debited, err := s.users.DebitCredit(ctx, askedBy, questionCost)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if !debited {
		return nil, apperrors.InsufficientCredit("Your creditScore is 0, hence cannot post question.")
	}
	if err := s.questions.Insert(ctx, question); err != nil {
		// Hand the debit back so the failed create leaves no effect.
		_ = s.users.AddCredit(ctx, askedBy, questionCost)
		return nil, apperrors.Internal(err.Error())
	}
	return question, nil
}

// List returns non-deleted questions, optionally narrowed to questions
// carrying every tag of a comma-separated tag filter and sorted by
// creation time.
func (s *QuestionService) List(ctx context.Context, tag, sort *string) ([]models.Question, error) {
	filter := repository.QuestionFilter{}

	if !validation.ValidString(tag) {
		return nil, apperrors.Validation("Tag is required.")
	}
	if tag != nil {
		filter.Tags = validation.NormalizeTags(*tag)
	}

	if !validation.ValidString(sort) {
		return nil, apperrors.Validation("Sort is required.")
	}
	if sort != nil {
		switch *sort {
		case "ascending":
			filter.Sort = repository.SortAscending
		case "descending":
			filter.Sort = repository.SortDescending
		default:
			return nil, apperrors.Validation("Only 'ascending' & 'descending' are allowed to sort.")
		}
	}

	questions, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if len(questions) == 0 {
		return nil, apperrors.NotFound("No questions found.")
	}
	return questions, nil
}

// GetByID returns a non-deleted question together with its answers,
// newest answer first, with the answers' timestamps stripped.
func (s *QuestionService) GetByID(ctx context.Context, questionID string) (*models.QuestionDetail, error) {
	id, err := bson.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid question id.", questionID))
	}

	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if question == nil || question.IsDeleted {
		return nil, apperrors.NotFound(fmt.Sprintf("No questions exist by %s.", questionID))
	}

	answers, err := s.answers.ListByQuestion(ctx, id, true)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	summaries := make([]models.AnswerSummary, 0, len(answers))
	for _, a := range answers {
		summaries = append(summaries, a.Summary())
	}

	return &models.QuestionDetail{
		Description: question.Description,
		Tag:         question.Tag,
		AskedBy:     question.AskedBy,
		Answers:     summaries,
	}, nil
}

type UpdateQuestionInput struct {
	Description *string
	Tag         *string
}

// Update replaces the description and/or tags of the caller's own
// question. At least one field must be supplied.
func (s *QuestionService) Update(ctx context.Context, actingUserID, questionID string, input UpdateQuestionInput) (*models.Question, error) {
	id, err := bson.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s is an invalid questionId in URL params.", questionID))
	}
	if input.Description == nil && input.Tag == nil {
		return nil, apperrors.Validation("Empty request body isn't valid for updation.")
	}
	if !validation.ValidString(input.Tag) {
		return nil, apperrors.Validation("Tag cannot be empty for updation.")
	}
	if !validation.ValidString(input.Description) {
		return nil, apperrors.Validation("Description cannot be empty for updation.")
	}

	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if question == nil || question.IsDeleted {
		return nil, apperrors.NotFound(fmt.Sprintf("Question doesn't exist by %s.", questionID))
	}
	if question.AskedBy.Hex() != actingUserID {
		return nil, apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", question.AskedBy.Hex()))
	}

	upd := repository.QuestionUpdate{Description: input.Description}
	if input.Tag != nil {
		upd.Tags = validation.NormalizeTags(*input.Tag)
	}
	updated, err := s.questions.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if updated == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("Question doesn't exist by %s.", questionID))
	}
	return updated, nil
}

// Delete soft-deletes the caller's own question. Answers are left in
// place.
func (s *QuestionService) Delete(ctx context.Context, actingUserID, questionID string) error {
	id, err := bson.ObjectIDFromHex(questionID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("%s is not a valid question id.", questionID))
	}

	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err.Error())
	}
	if question == nil {
		return apperrors.NotFound(fmt.Sprintf("Question not found for %s.", questionID))
	}
	if question.AskedBy.Hex() != actingUserID {
		return apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", question.AskedBy.Hex()))
	}
	if question.IsDeleted {
		return apperrors.NotFound("Question has been already deleted.")
	}

	if err := s.questions.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return apperrors.Internal(err.Error())
	}
	return nil
}
