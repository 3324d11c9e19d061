package main

import (
	"qa-forum-backend/internal/config"
	"qa-forum-backend/internal/database"
	"qa-forum-backend/internal/handlers"
	"qa-forum-backend/internal/middleware"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/services"

	_ "qa-forum-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Q&A Forum API
// @version         1.0
// @description     Question-and-answer forum backend with a credit-score economy
// @host            localhost:3000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment")
	}
	cfg := config.Load()

	db := database.Connect(cfg)
	database.EnsureIndexes(db)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.BcryptCost)
	userService := services.NewUserService(userRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo, userRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
