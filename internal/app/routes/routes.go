package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/controllers"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/hackathon-manager/hackathon/internal/pkg/websocket"
)

// Controllers bundles every HTTP handler the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Event       *controllers.EventController
	Project     *controllers.ProjectController
	Participant *controllers.MembershipController
	Initiator   *controllers.MembershipController
	Owner       *controllers.OwnerController
	Parking     *controllers.ParkingController
	Health      *controllers.HealthController
	WebSocket   *websocket.Handler
	Metrics     http.Handler
}

// SetupRouter configures all application routes under /api
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	token := authMiddleware.AuthenticateToken()
	guest := authMiddleware.AuthenticateAndAuthorize(models.RoleGuest)
	user := authMiddleware.AuthenticateAndAuthorize(models.RoleUser)
	manager := authMiddleware.AuthenticateAndAuthorize(models.RoleManager)
	admin := authMiddleware.AuthenticateAndAuthorize(models.RoleAdmin)

	// Public routes
	api.GET("/health", c.Health.Health)
	api.GET("/health/config", c.Health.Config)
	if c.Metrics != nil {
		api.GET("/metrics", gin.WrapH(c.Metrics))
	}
	if c.WebSocket != nil {
		api.GET("/notifications/ws", c.WebSocket.HandleConnection)
	}

	users := api.Group("/user")
	{
		users.POST("/login", c.Auth.Login)
		users.POST("", c.Auth.Register)
		users.POST("/activate", c.Auth.Activate)

		users.GET("/me", token, c.User.GetMe)
		users.GET("/list", guest, c.User.ListUsers)
		users.GET("/:id", token, c.User.GetUser)
		users.PUT("/:id", user, c.User.UpdateUser)
		users.DELETE("/:id", user, c.User.DeleteUser)
		users.POST("/:id/avatar", user, c.User.UploadAvatar)
	}

	events := api.Group("/event")
	{
		events.GET("/list", user, c.Event.ListEvents)
		events.GET("/:id", user, c.Event.GetEvent)
		events.GET("/:id/projects", user, c.Event.ListEventProjects)
		events.POST("", manager, c.Event.CreateEvent)
		events.PUT("/:id", manager, c.Event.UpdateEvent)
		events.DELETE("/:id", manager, c.Event.DeleteEvent)
	}

	projects := api.Group("/project")
	{
		projects.GET("/list", guest, c.Project.ListProjects)
		projects.GET("/:id", guest, c.Project.GetProject)
		projects.POST("", user, c.Project.CreateProject)
		projects.PUT("/:id", manager, c.Project.UpdateProject)
		projects.DELETE("/:id", admin, c.Project.DeleteProject)
	}

	// Participants and initiators share one shape
	for path, ctrl := range map[string]*controllers.MembershipController{
		"/participant": c.Participant,
		"/initiator":   c.Initiator,
	} {
		group := api.Group(path, user)
		group.GET("/list", ctrl.List)
		group.POST("", ctrl.Add)
		group.DELETE("", ctrl.Remove)
	}

	owners := api.Group("/owner")
	{
		owners.GET("/list", user, c.Owner.ListOwners)
		owners.POST("", manager, c.Owner.AddOwner)
		owners.DELETE("", manager, c.Owner.RemoveOwner)
	}

	parking := api.Group("/parking")
	{
		parking.GET("/lots", user, c.Parking.ListLots)
		parking.POST("/lots", manager, c.Parking.CreateLot)
	}

	bookings := api.Group("/booking", user)
	{
		bookings.GET("/list", c.Parking.ListBookings)
		bookings.POST("", c.Parking.CreateBooking)
		bookings.DELETE("/:id", c.Parking.CloseBooking)
	}
}
