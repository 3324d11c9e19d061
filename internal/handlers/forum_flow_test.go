package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qa-forum-backend/internal/middleware"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	questionRepo := repository.NewMemoryQuestionRepository()
	answerRepo := repository.NewMemoryAnswerRepository()

	authService := services.NewAuthService(userRepo, "test-secret", bcrypt.MinCost)
	userService := services.NewUserService(userRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo, userRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	questionHandler := NewQuestionHandler(questionService)
	answerHandler := NewAnswerHandler(answerService)

	r := gin.New()
	auth := middleware.SessionAuth(authService)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/user/:userId/profile", auth, userHandler.GetProfile)
	r.PUT("/user/:userId/profile", auth, userHandler.UpdateProfile)

	r.POST("/question", auth, questionHandler.Create)
	r.GET("/questions", questionHandler.List)
	r.GET("/questions/:questionId", questionHandler.GetByID)
	r.PUT("/questions/:questionId", auth, questionHandler.Update)
	r.DELETE("/questions/:questionId", auth, questionHandler.Delete)

	r.POST("/answer", auth, answerHandler.Create)
	r.GET("/questions/:questionId/answer", answerHandler.List)
	r.PUT("/answer/:answerId", auth, answerHandler.Update)
	r.DELETE("/answers/:answerId", auth, answerHandler.Delete)

	return r
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) (userID, token string) {
	t.Helper()
	body := fmt.Sprintf(`{"fname":"Test","lname":"User","email":%q,"password":"secret123"}`, email)
	w, _ := do(t, r, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := do(t, r, http.MethodPost, "/login", "", fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.UserID)
	require.NotEmpty(t, login.Token)
	return login.UserID, login.Token
}

func creditScoreOf(t *testing.T, r *gin.Engine, userID, token string) int {
	t.Helper()
	w, env := do(t, r, http.MethodGet, "/user/"+userID+"/profile", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		CreditScore int `json:"creditScore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	return profile.CreditScore
}

// TestForumFlow walks the happy path end to end: two users register, one
// asks, the other answers, and the credit economy moves accordingly.
func TestForumFlow(t *testing.T) {
	r := newTestRouter()

	askerID, askerToken := registerAndLogin(t, r, "asker@example.com")
	assert.Equal(t, 500, creditScoreOf(t, r, askerID, askerToken))

	// Asking costs 100.
	body := fmt.Sprintf(`{"description":"Why is the sky blue?","tag":"science,physics","askedBy":%q}`, askerID)
	w, env := do(t, r, http.MethodPost, "/question", askerToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var question struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &question))
	require.NotEmpty(t, question.ID)
	assert.Equal(t, 400, creditScoreOf(t, r, askerID, askerToken))

	// The asker cannot answer their own question.
	answererID, answererToken := registerAndLogin(t, r, "answerer@example.com")
	body = fmt.Sprintf(`{"questionId":%q,"answeredBy":%q,"text":"because"}`, question.ID, askerID)
	w, _ = do(t, r, http.MethodPost, "/answer", askerToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// Answering rewards 200.
	body = fmt.Sprintf(`{"questionId":%q,"answeredBy":%q,"text":"Rayleigh scattering"}`, question.ID, answererID)
	w, env = do(t, r, http.MethodPost, "/answer", answererToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var answer struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &answer))
	assert.Equal(t, 700, creditScoreOf(t, r, answererID, answererToken))
	assert.Equal(t, 400, creditScoreOf(t, r, askerID, askerToken))

	// The detail view nests the answer without its timestamps.
	w, env = do(t, r, http.MethodGet, "/questions/"+question.ID, "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail struct {
		Description string `json:"description"`
		Tag         []string
		Answers     []map[string]any `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Why is the sky blue?", detail.Description)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, "Rayleigh scattering", detail.Answers[0]["text"])
	assert.NotContains(t, detail.Answers[0], "createdAt")
	assert.NotContains(t, detail.Answers[0], "updatedAt")

	// Listing filters by tag containment.
	w, env = do(t, r, http.MethodGet, "/questions?tag=science", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 1)

	// Soft-deleting the question hides it from reads.
	w, _ = do(t, r, http.MethodDelete, "/questions/"+question.ID, askerToken, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String(), "204 carries no body")

	w, _ = do(t, r, http.MethodGet, "/questions/"+question.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForumFlowErrorEnvelopes(t *testing.T) {
	r := newTestRouter()
	askerID, askerToken := registerAndLogin(t, r, "asker@example.com")

	t.Run("DuplicateRegistration", func(t *testing.T) {
		body := `{"fname":"Test","lname":"User","email":"asker@example.com","password":"secret123"}`
		w, env := do(t, r, http.MethodPost, "/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Status)
		assert.Contains(t, env.Message, "already registered")
	})

	t.Run("ProfileOfAnotherUser", func(t *testing.T) {
		otherID, _ := registerAndLogin(t, r, "other@example.com")
		w, env := do(t, r, http.MethodGet, "/user/"+otherID+"/profile", askerToken, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Status)
	})

	t.Run("PasswordNeverSerialized", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/user/"+askerID+"/profile", askerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		var profile map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.NotContains(t, profile, "password")
	})

	t.Run("ListWithBadSort", func(t *testing.T) {
		w, _ := do(t, r, http.MethodGet, "/questions?sort=newest", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListWhenEmpty", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/questions", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No questions found.", env.Message)
	})

	t.Run("ExhaustedCreditBlocksAsking", func(t *testing.T) {
		// Five questions drain the default 500.
		for i := 0; i < 5; i++ {
			body := fmt.Sprintf(`{"description":"question %d","askedBy":%q}`, i, askerID)
			w, _ := do(t, r, http.MethodPost, "/question", askerToken, body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		assert.Equal(t, 0, creditScoreOf(t, r, askerID, askerToken))

		body := fmt.Sprintf(`{"description":"one too many","askedBy":%q}`, askerID)
		w, env := do(t, r, http.MethodPost, "/question", askerToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "creditScore is 0")
	})
}
