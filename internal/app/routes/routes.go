// Package routes wires the HTTP route table.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/controllers"
	"github.com/alumniconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public; every
// mutating route sits behind bearer-token authentication. Donations have no
// update or delete routes and messages have no id-addressed routes at all.
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	authController *controllers.AuthController,
	alumniController *controllers.AlumniController,
	eventController *controllers.EventController,
	jobController *controllers.JobController,
	donationController *controllers.DonationController,
	postController *controllers.PostController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", homeController.Banner)

	api := router.Group("/api")

	api.GET("/health", homeController.Health)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Alumni routes ---
	alumni := api.Group("/alumni")
	{
		alumni.GET("", alumniController.ListAlumni)
		alumni.GET("/:id", alumniController.GetAlumnus)

		alumniProtected := alumni.Group("")
		alumniProtected.Use(authMiddleware.JWTAuth())
		{
			alumniProtected.POST("", alumniController.CreateAlumnus)
			alumniProtected.PUT("/:id", alumniController.UpdateAlumnus)
			alumniProtected.DELETE("/:id", alumniController.DeleteAlumnus)
		}
	}

	// --- Event routes ---
	events := api.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:id", eventController.GetEvent)

		eventsProtected := events.Group("")
		eventsProtected.Use(authMiddleware.JWTAuth())
		{
			eventsProtected.POST("", eventController.CreateEvent)
			eventsProtected.PUT("/:id", eventController.UpdateEvent)
			eventsProtected.DELETE("/:id", eventController.DeleteEvent)
		}
	}

	// --- Job routes ---
	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobController.ListJobs)
		jobs.GET("/:id", jobController.GetJob)

		jobsProtected := jobs.Group("")
		jobsProtected.Use(authMiddleware.JWTAuth())
		{
			jobsProtected.POST("", jobController.CreateJob)
			jobsProtected.PUT("/:id", jobController.UpdateJob)
			jobsProtected.DELETE("/:id", jobController.DeleteJob)
		}
	}

	// --- Donation routes (append-only) ---
	donations := api.Group("/donations")
	{
		donations.GET("", donationController.ListDonations)
		donations.GET("/:id", donationController.GetDonation)

		donationsProtected := donations.Group("")
		donationsProtected.Use(authMiddleware.JWTAuth())
		{
			donationsProtected.POST("", donationController.CreateDonation)
		}
	}

	// --- Post routes ---
	posts := api.Group("/posts")
	{
		posts.GET("", postController.ListPosts)
		posts.GET("/:id", postController.GetPost)

		postsProtected := posts.Group("")
		postsProtected.Use(authMiddleware.JWTAuth())
		{
			postsProtected.POST("", postController.CreatePost)
			postsProtected.PUT("/:id", postController.UpdatePost)
			postsProtected.DELETE("/:id", postController.DeletePost)
		}
	}

	// --- Message routes ---
	messages := api.Group("/messages")
	{
		messages.GET("", messageController.ListMessages)

		messagesProtected := messages.Group("")
		messagesProtected.Use(authMiddleware.JWTAuth())
		{
			messagesProtected.POST("", messageController.SendMessage)
		}
	}
}
