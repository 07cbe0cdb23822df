package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	controller "pluggedin/controllers"
	"pluggedin/middleware"
	"pluggedin/relay"
	"pluggedin/store"
)

// SetupRoutes wires the stores, controllers, and relay hub onto the app.
// Everything except sign-in, the health check, and public reviews sits behind
// the session token; admin-only routes additionally check the stored role.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userStore := store.NewUserStore(db, log.New(os.Stdout, "USERS: ", log.LstdFlags))
	connectionStore := store.NewConnectionStore(db, log.New(os.Stdout, "CONNECT: ", log.LstdFlags))
	teamStore := store.NewTeamStore(db, log.New(os.Stdout, "TEAMS: ", log.LstdFlags))
	mediaStore := store.NewMediaStore(db, log.New(os.Stdout, "MEDIA: ", log.LstdFlags))
	taskStore := store.NewTaskStore(db, log.New(os.Stdout, "TASKS: ", log.LstdFlags))
	reviewStore := store.NewReviewStore(db, log.New(os.Stdout, "REVIEWS: ", log.LstdFlags))
	roomStore := store.NewRoomStore(db, log.New(os.Stdout, "ROOMS: ", log.LstdFlags))

	userController := controller.NewUserController(userStore, log.New(os.Stdout, "USER: ", log.LstdFlags))
	connectionController := controller.NewConnectionController(connectionStore, log.New(os.Stdout, "CONNECT: ", log.LstdFlags))
	teamController := controller.NewTeamController(teamStore, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	mediaController := controller.NewMediaController(mediaStore, log.New(os.Stdout, "MEDIA: ", log.LstdFlags))
	taskController := controller.NewTaskController(taskStore, log.New(os.Stdout, "TASK: ", log.LstdFlags))
	reviewController := controller.NewReviewController(reviewStore, log.New(os.Stdout, "REVIEW: ", log.LstdFlags))
	roomController := controller.NewRoomController(roomStore, log.New(os.Stdout, "ROOM: ", log.LstdFlags))

	hub := relay.NewHub()

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	protected := middleware.Protected()
	admin := middleware.RequireAdmin(userStore)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from PluggedIn Server")
	})

	// Accounts. Sign-in is open; everything else needs the session token.
	app.Post("/user", userController.CreateUser)
	app.Patch("/user/:email", protected, userController.UpdateUser)
	app.Get("/users", protected, admin, userController.GetUsers)
	app.Get("/user/:email", protected, userController.GetUser)

	// Teams
	app.Post("/team", protected, teamController.CreateTeam)
	app.Patch("/team/:email", protected, teamController.UpdateTeam)
	app.Get("/team/:email", protected, teamController.GetTeam)

	// Media records
	app.Post("/userRecords", protected, mediaController.CreateRecord)
	app.Get("/userMedia", protected, mediaController.GetUserMedia)
	app.Get("/media/:id", protected, mediaController.GetMedia)
	app.Put("/record", protected, mediaController.UpdateRecord)
	app.Delete("/record/:id", protected, mediaController.DeleteRecord)

	// Reviews; reading them is open for the landing page.
	app.Post("/reviews", protected, reviewController.CreateReview)
	app.Get("/reviews", reviewController.GetReviews)

	// Tasks
	app.Post("/task", protected, taskController.CreateTask)
	app.Put("/task/:id", protected, taskController.UpdateTask)
	app.Get("/tasks/:id", protected, taskController.GetTasks)
	app.Delete("/task/:id", protected, taskController.DeleteTask)

	// Relationship graph
	app.Put("/connect", protected, connectionController.Connect)
	app.Put("/makeFriend", protected, connectionController.MakeFriend)
	app.Put("/cancelConnect", protected, connectionController.CancelConnect)
	// Legacy alias; old clients call the misspelled path.
	app.Put("/calcelConnect", protected, connectionController.CancelConnect)
	app.Put("/disconnect", protected, connectionController.Disconnect)
	app.Get("/isPending", protected, connectionController.IsPending)
	app.Get("/isFriend", protected, connectionController.IsFriend)
	app.Get("/connectionrequests", protected, connectionController.ConnectionRequests)
	app.Get("/friends", protected, connectionController.Friends)

	// Room persistence
	app.Post("/makeRoom", protected, roomController.MakeRoom)
	app.Delete("/deleteRoom", protected, roomController.DeleteRoom)
	app.Put("/messageStore", protected, middleware.ChatRateLimiter(), roomController.StoreMessage)
	app.Get("/getMessages", protected, roomController.GetMessages)
	app.Get("/getRooms", protected, roomController.GetRooms)

	// Real-time relay
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Serve(c)
	}))

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("Routes initialized successfully")
}
