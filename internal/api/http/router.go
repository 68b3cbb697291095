package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aniq93/Customer-Support-Agent/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Tickets  *handlers.TicketsHandler
	Comments *handlers.CommentsHandler
}

// RegisterRoutes wires HTTP routes. Literal segments are registered
// before parameterized ones so /users/email/x never matches /users/:id.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Post("/", cfg.Users.CreateUser)
	users.Get("/", cfg.Users.ListUsers)
	users.Get("/email/:email", cfg.Users.GetUserByEmail)
	users.Get("/:id", cfg.Users.GetUser)
	users.Put("/:id", cfg.Users.UpdateUser)

	tickets := app.Group("/tickets")
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/user/:user_id", cfg.Tickets.ListTicketsByRequester)
	tickets.Get("/assignee/:user_id", cfg.Tickets.ListTicketsByAssignee)
	tickets.Get("/:id/requester", cfg.Tickets.GetTicketWithRequester)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Put("/:id", cfg.Tickets.UpdateTicket)

	comments := app.Group("/comments")
	comments.Post("/", cfg.Comments.CreateComment)
}
