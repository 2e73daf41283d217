package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	controller "crewdesk/controllers"
	"crewdesk/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, log *logrus.Logger) {
	// Public auth endpoints with rate limiting
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/register", middleware.AuthRateLimiter(), controller.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), controller.Login)
	auth.Post("/verify", controller.VerifyEmail)
	auth.Post("/forgot-password", controller.ForgotPassword)
	auth.Post("/reset-password", controller.ResetPassword)

	// Protected auth endpoints
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/logout", controller.Logout)
	protectedAuth.Post("/change-password", controller.ChangePassword)
	protectedAuth.Get("/me", controller.GetCurrentUser)

	// Initialize controllers
	teamController := controller.NewTeamController(db, log)
	memberController := controller.NewMemberController(db, log)
	taskController := controller.NewTaskController(db, log)
	meetingController := controller.NewMeetingController(db, log)
	systemController := controller.NewSystemController(db, log)

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Team routes
	teams := api.Group("/teams")
	teams.Post("/", teamController.CreateTeam)
	teams.Get("/", teamController.ListTeams)
	teams.Get("/:teamID", teamController.GetTeam)
	teams.Patch("/:teamID", teamController.UpdateTeam)
	teams.Delete("/:teamID", teamController.DeleteTeam)

	// Membership routes
	members := teams.Group("/:teamID/members")
	members.Get("/", memberController.ListMembers)
	members.Post("/", memberController.AddMember)
	members.Patch("/:userID", memberController.ChangeMemberRole)
	members.Delete("/:userID", memberController.RemoveMember)

	// Task routes
	teams.Post("/:teamID/tasks", taskController.CreateTask)
	teams.Get("/:teamID/tasks", taskController.ListTeamTasks)
	tasks := api.Group("/tasks")
	tasks.Get("/:taskID", taskController.GetTask)
	tasks.Patch("/:taskID", taskController.UpdateTask)
	tasks.Delete("/:taskID", taskController.DeleteTask)
	tasks.Post("/:taskID/comments", taskController.AddComment)
	tasks.Get("/:taskID/comments", taskController.ListComments)
	tasks.Post("/:taskID/evaluations", taskController.EvaluateTask)
	tasks.Get("/:taskID/evaluations", taskController.ListEvaluations)

	// Meeting routes
	teams.Post("/:teamID/meetings", meetingController.CreateMeeting)
	teams.Get("/:teamID/meetings", meetingController.ListTeamMeetings)
	meetings := api.Group("/meetings")
	meetings.Get("/:meetingID", meetingController.GetMeeting)
	meetings.Patch("/:meetingID", meetingController.UpdateMeeting)
	meetings.Delete("/:meetingID", meetingController.DeleteMeeting)

	// System routes
	api.Post("/system/workers/:userID/admin", systemController.GrantGlobalAdmin)
}
