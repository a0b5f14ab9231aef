package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/venturemate/marketplace-go/chat"
	"github.com/venturemate/marketplace-go/handlers"
	"github.com/venturemate/marketplace-go/middleware"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/services"
)

// RegisterRoutes wires repositories, services and handlers onto the engine
// and returns the services for startup tasks like catalog seeding.
func RegisterRoutes(r *gin.Engine, store services.ObjectStore) *services.Services {

	// init
	hub := chat.NewHub()
	reposInstance := repositories.New()
	servicesInstance := services.New(reposInstance, hub, store)
	handlersInstance := handlers.New(servicesInstance, hub)

	// public
	r.POST("/register", handlersInstance.User.Register)
	r.POST("/login", handlersInstance.User.Login)
	r.GET("/catalog/services", handlersInstance.Catalog.ListServices)
	r.GET("/catalog/packs", handlersInstance.Catalog.ListPacks)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/projects/:id", handlersInstance.WS.Subscribe)

		users := auth.Group("/users")
		{
			users.GET("", handlersInstance.User.ListUsers)
			users.GET("/:id", handlersInstance.User.GetUser)
			users.PUT("/:id", middleware.AuthorizeUserOrAdmin(), handlersInstance.User.UpdateUser)
			users.DELETE("/:id", middleware.AuthorizeUserOrAdmin(), handlersInstance.User.DeleteUser)
		}
		auth.GET("/students", handlersInstance.User.ListStudents)

		projects := auth.Group("/projects")
		{
			projects.GET("", handlersInstance.Project.ListProjects)
			projects.GET("/:id", handlersInstance.Project.GetProject)
			projects.POST("", middleware.RequireRole(models.RoleEntrepreneur), handlersInstance.Project.CreateProject)
			projects.PUT("/:id", handlersInstance.Project.UpdateProject)
			projects.DELETE("/:id", handlersInstance.Project.DeleteProject)

			// lifecycle transitions
			projects.POST("/:id/send-proposals", middleware.RequireAdmin(), handlersInstance.Lifecycle.SendProposals)
			projects.POST("/:id/open-selection", middleware.RequireAdmin(), handlersInstance.Lifecycle.OpenSelection)
			projects.POST("/:id/select-student", middleware.RequireRole(models.RoleEntrepreneur), handlersInstance.Lifecycle.SelectStudent)
			projects.POST("/:id/confirm-payment", middleware.RequireAdmin(), handlersInstance.Lifecycle.ConfirmPayment)
			projects.POST("/:id/complete", middleware.RequireAdmin(), handlersInstance.Lifecycle.Complete)

			// proposals and shortlist
			projects.POST("/:id/proposals", middleware.RequireAdmin(), handlersInstance.Proposal.ProposeStudents)
			projects.GET("/:id/proposals", middleware.RequireAdmin(), handlersInstance.Proposal.ListProjectProposals)
			projects.GET("/:id/shortlist", handlersInstance.Proposal.Shortlist)

			// conversation
			projects.POST("/:id/messages", handlersInstance.Message.SendMessage)
			projects.GET("/:id/messages", handlersInstance.Message.History)

			// documents
			projects.POST("/:id/documents", handlersInstance.Document.Upload)
			projects.GET("/:id/documents", handlersInstance.Document.ListByProject)
		}

		proposals := auth.Group("/proposals")
		{
			proposals.GET("/mine", middleware.RequireRole(models.RoleStudent), handlersInstance.Proposal.MyProposals)
			proposals.PUT("/:id/acceptance", middleware.RequireRole(models.RoleStudent), handlersInstance.Proposal.RecordAcceptance)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("/:id", handlersInstance.Document.Download)
			documents.DELETE("/:id", handlersInstance.Document.Delete)
		}

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", handlersInstance.Message.Notifications)
			notifications.PUT("/:id/read", handlersInstance.Message.MarkRead)
		}

		catalog := auth.Group("/catalog")
		{
			catalog.POST("/services", middleware.RequireAdmin(), handlersInstance.Catalog.CreateService)
			catalog.POST("/packs", middleware.RequireAdmin(), handlersInstance.Catalog.CreatePack)
			catalog.DELETE("/services/:id", middleware.RequireAdmin(), handlersInstance.Catalog.DeleteService)
			catalog.DELETE("/packs/:id", middleware.RequireAdmin(), handlersInstance.Catalog.DeletePack)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.RequireAdmin(), handlersInstance.Audit.Query)
		}
	}

	return servicesInstance
}
