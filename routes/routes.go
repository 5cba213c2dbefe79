package routes

import (
	"guitar_square_backend/handlers"
	"guitar_square_backend/middleware"
	"guitar_square_backend/payment"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

// Setup wires the full route catalog. Mutating and PII-adjacent routes sit
// behind RequireAuth; category browsing, single-product lookups, user
// registration and feedback stay public.
func Setup(app *fiber.App, st store.Store, gw payment.Gateway) {
	auth := handlers.NewAuthHandler()
	categories := handlers.NewCategoryHandler(st)
	users := handlers.NewUserHandler(st)
	products := handlers.NewProductHandler(st)
	bookings := handlers.NewBookingHandler(st)
	payments := handlers.NewPaymentHandler(st, gw)
	reports := handlers.NewReportHandler(st)
	feedbacks := handlers.NewFeedbackHandler(st)

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Guitar Square running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Public
	app.Post("/jwt", auth.IssueToken)
	app.Get("/categories", categories.GetCategories)
	app.Get("/user", users.GetUser)
	app.Post("/user", users.CreateUser)
	app.Get("/product/:id", products.GetProduct)
	app.Get("/specific-product/:id", products.GetSpecificProduct)
	app.Post("/feedback", feedbacks.CreateFeedback)

	// Protected
	app.Get("/user/role/:email", middleware.RequireAuth, users.GetUserRole)
	app.Put("/user/verify", middleware.RequireAuth, users.VerifyUser)
	app.Delete("/user", middleware.RequireAuth, users.DeleteUser)
	app.Get("/sellers", middleware.RequireAuth, users.GetSellers)
	app.Get("/buyers", middleware.RequireAuth, users.GetBuyers)

	app.Get("/products", middleware.RequireAuth, products.GetProductsBySeller)
	app.Get("/category/:id", middleware.RequireAuth, products.GetProductsByCategory)
	app.Post("/product", middleware.RequireAuth, products.CreateProduct)
	app.Delete("/product/:id", middleware.RequireAuth, products.DeleteProduct)
	app.Get("/advertised", middleware.RequireAuth, products.GetAdvertised)
	app.Put("/product/advertise/:id", middleware.RequireAuth, products.ToggleAdvertise)

	app.Get("/bookings", middleware.RequireAuth, bookings.GetBookings)
	app.Post("/booking", middleware.RequireAuth, bookings.CreateBooking)

	app.Post("/create-payment-intent", middleware.RequireAuth, payments.CreatePaymentIntent)
	app.Post("/payment", middleware.RequireAuth, payments.RecordPayment)

	app.Post("/report", middleware.RequireAuth, reports.CreateReport)
	app.Get("/reports", middleware.RequireAuth, reports.GetReports)
	app.Delete("/report/:id", middleware.RequireAuth, reports.DeleteReport)
}
