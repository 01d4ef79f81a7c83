package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")
	api.Get("/languages", handler.Languages)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	api.Get("/me", handler.AuthRequired, handler.Me)

	predictions := api.Group("/predictions", handler.AuthRequired)
	predictions.Post("", handler.Predict)
	predictions.Get("", handler.PredictionHistory)

	api.Post("/chat", handler.OptionalAuth, handler.Ask)
	chats := api.Group("/chats", handler.AuthRequired)
	chats.Get("", handler.ListChats)
	chats.Delete("/:id", handler.DeleteChat)

	diseases := api.Group("/diseases")
	diseases.Get("", handler.ListDiseases)
	diseases.Get("/:slug", handler.GetDisease)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/users", handler.AdminListUsers)
	admin.Delete("/users/:username", handler.AdminDeleteUser)
	admin.Get("/predictions", handler.AdminListPredictions)
	admin.Delete("/predictions", handler.AdminClearPredictions)
	admin.Delete("/predictions/:id", handler.AdminDeletePrediction)
	admin.Get("/chats", handler.AdminListChats)
	admin.Delete("/chats/:id", handler.AdminDeleteChat)
}
