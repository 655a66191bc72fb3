// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"shinmen-coffee/activities"
	"shinmen-coffee/controllers"
	"shinmen-coffee/routes"
	"shinmen-coffee/storage"
	"shinmen-coffee/store"
	"shinmen-coffee/utils"
	"shinmen-coffee/web"
	"shinmen-coffee/workflows"

	"github.com/gorilla/mux"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	cfg := utils.LoadConfig()

	// Set the JWT secret key
	if cfg.UsesDefaultJWTSecret() {
		log.Println("WARNING: JWT_SECRET not set. Tokens are signed with the built-in development key.")
	}
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Pick the persistence backend
	var (
		snapshots storage.SnapshotRepository
		users     storage.UserRepository
	)
	if cfg.MongoURI != "" {
		mongoClient, err := utils.ConnectDB(cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.TODO()); err != nil {
				log.Println(err)
			}
		}()
		mongoStore := storage.NewMongoStore(mongoClient, cfg.MongoDatabase)
		if err := mongoStore.EnsureIndexes(context.Background()); err != nil {
			log.Fatal(err)
		}
		snapshots, users = mongoStore, mongoStore
		log.Printf("Using MongoDB database %s", cfg.MongoDatabase)
	} else {
		memory := storage.NewMemoryStore()
		snapshots, users = memory, memory
		log.Println("MONGO_URI not set. Sessions and accounts are kept in memory.")
	}

	sessions := store.NewBoundedRegistry(snapshots, cfg.SessionCapacity)

	// Initialize EmailService
	var (
		contactMailer controllers.ContactMailer
		orderMailer   controllers.OrderMailer
	)
	if emailService := utils.NewEmailService(cfg); emailService != nil {
		contactMailer, orderMailer = emailService, emailService
	} else {
		log.Println("POSTMARK_API_TOKEN not set. Contact messages are only logged.")
	}

	// Order tracking runs only when a Temporal server is configured
	var tracker controllers.OrderTracker
	if cfg.TemporalHost != "" {
		c, err := client.Dial(client.Options{
			HostPort:  cfg.TemporalHost,
			Namespace: cfg.TemporalNamespace,
		})
		if err != nil {
			log.Fatalln("Unable to create Temporal client", err)
		}
		defer c.Close()

		w := worker.New(c, cfg.OrderTaskQueue, worker.Options{})
		w.RegisterWorkflow(workflows.OrderPreparationWorkflow)
		w.RegisterActivity(&activities.OrderActivities{Orders: sessions})
		if err := w.Start(); err != nil {
			log.Fatalln("Unable to start worker", err)
		}
		defer w.Stop()

		tracker = &workflows.Tracker{Client: c, TaskQueue: cfg.OrderTaskQueue}
		log.Println("Order tracking worker started on task queue:", cfg.OrderTaskQueue)
	}

	// Initialize controllers
	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Page:    web.NewPageHandler(sessions),
		Menu:    controllers.NewMenuController(sessions),
		Cart:    controllers.NewCartController(sessions),
		Order:   controllers.NewOrderController(sessions, tracker, orderMailer),
		User:    controllers.NewUserController(users, sessions),
		UI:      controllers.NewUIController(sessions),
		Contact: controllers.NewContactController(contactMailer),
	})

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Println(err)
	}
}
