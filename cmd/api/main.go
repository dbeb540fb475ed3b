package main

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/nkamau743/driving_school/configs"
	"github.com/nkamau743/driving_school/handlers"
	"github.com/nkamau743/driving_school/jobs"
	"github.com/nkamau743/driving_school/routes"
	"github.com/nkamau743/driving_school/store"
	"github.com/robfig/cron/v3"
)

func main() {
	accounts, profiles := store.Seed()
	st := store.New(accounts, profiles)

	lessonPrice, err := strconv.Atoi(config.ConfigOr("LESSON_PRICE", "55"))
	if err != nil {
		log.Fatalf("Invalid LESSON_PRICE: %v", err)
	}
	h := handlers.New(st, lessonPrice)

	c := cron.New()
	c.AddFunc("0 7 * * *", func() { jobs.SendLessonReminders(st) })
	go c.Start()
	log.Println("Cron job for lesson reminders scheduled.")

	app := fiber.New(fiber.Config{
		AppName:       "Roadworthy Driving School API",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.AuthRoutes(app, h)
	routes.InstructorRoutes(app, h)
	routes.LessonRoutes(app, h)
	routes.InvoiceRoutes(app, h)

	// Non-API routes fall back to the static frontend.
	app.Static("/", "./public")

	port := config.ConfigOr("PORT", "8080")
	log.Printf("Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
