package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type Router struct {
	userHandler    *UserHandler
	authHandler    *AuthHandler
	homeHandler    *HomeHandler
	bookingHandler *BookingHandler
	reviewHandler  *ReviewHandler
	guard          usecasecontract.IAuthGuard
	logger         usecasecontract.IAppLogger
	rateLimit      float64
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	homeUsecase usecasecontract.IHomeUseCase,
	bookingUsecase usecasecontract.IBookingUseCase,
	reviewUsecase usecasecontract.IReviewUseCase,
	guard usecasecontract.IAuthGuard,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
	rateLimitPerSecond float64,
) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		authHandler:    NewAuthHandler(userUsecase, config),
		homeHandler:    NewHomeHandler(homeUsecase),
		bookingHandler: NewBookingHandler(bookingUsecase),
		reviewHandler:  NewReviewHandler(reviewUsecase),
		guard:          guard,
		logger:         logger,
		rateLimit:      rateLimitPerSecond,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if r.rateLimit > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.rateLimit)))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/v1/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	session := middleware.AuthMiddleware(r.guard)
	admin := middleware.RequireRoles(r.guard, entity.UserRoleAdmin)

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", r.userHandler.Signup)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/signout", session, r.userHandler.SignOut)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	me := v1.Group("/me", session)
	{
		me.GET("", r.userHandler.GetCurrentUser)
		me.PUT("", r.userHandler.UpdateCurrentUser)
	}

	users := v1.Group("/users", session)
	{
		users.GET("", admin, r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
		users.PUT("/:id/role", admin, r.userHandler.UpdateRole)
	}

	homes := v1.Group("/homes")
	{
		homes.GET("", r.homeHandler.ListHomes)
		homes.GET("/search", r.homeHandler.SearchHomes)
		homes.GET("/:id", r.homeHandler.GetHome)
		homes.GET("/:id/reviews", r.homeHandler.ListReviews)
		homes.GET("/:id/reviews/:reviewId", r.homeHandler.GetReview)

		// review token authorizes this one, not a session
		homes.POST("/:id/review-link", r.reviewHandler.SubmitViaLink)

		homes.POST("", session, r.homeHandler.CreateHome)
		homes.PUT("/:id", session, r.homeHandler.UpdateHome)
		homes.DELETE("/:id", session, r.homeHandler.DeleteHome)
		homes.POST("/:id/review", session, r.homeHandler.AddReview)
		homes.GET("/:id/bookings", session, admin, r.bookingHandler.ListHomeBookings)
	}

	bookings := v1.Group("/bookings")
	{
		bookings.POST("", r.bookingHandler.CreateBooking)

		bookings.GET("", session, admin, r.bookingHandler.ListBookings)
		bookings.GET("/summary", session, admin, r.bookingHandler.ListBookingSummaries)
		bookings.GET("/:id", session, admin, r.bookingHandler.GetBooking)
		bookings.POST("/:id/create-review-link", session, admin, r.bookingHandler.CreateReviewLink)
		bookings.POST("/:id/send-review-link", session, admin, r.bookingHandler.SendReviewLink)
	}

	v1.GET("/owner-stats/:ownerId", session, r.homeHandler.GetOwnerStats)
	v1.GET("/home-owner-stats/:homeId", session, r.homeHandler.GetOwnerStatsByHome)
}
