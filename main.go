package main

import (
	"log"
	"os"
	"time"

	"mathgame-service/internal/db"
	"mathgame-service/internal/event"
	"mathgame-service/internal/game"
	"mathgame-service/internal/handlers"
	"mathgame-service/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	// Sessions live in memory unless Mongo is configured; the store
	// interface hides the difference from the engine.
	var sessionStore store.SessionStore
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		db.InitMongo(mongoURI)
		database := db.Client.Database("mathgame")
		sessionStore = store.NewMongoStore(database)
		log.Println("Using MongoDB session store")
	} else {
		sessionStore = store.NewMemoryStore()
		log.Println("MONGO_URI not set, using in-memory session store")
	}

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, game events will not be published")
	}

	engine := game.NewEngine(sessionStore)
	gameHandler := handlers.NewGameHandler(engine)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/start-game", func(c *gin.Context) {
			gameHandler.StartGame(c)
			if publisher != nil {
				publisher.Publish("game.session.started", gin.H{
					"session_id": c.GetString("session_id"),
					"timestamp":  time.Now(),
				})
			}
		})

		api.POST("/get-question", func(c *gin.Context) {
			gameHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("game.question.issued", gin.H{
					"session_id": c.GetString("session_id"),
					"timestamp":  time.Now(),
				})
			}
		})

		api.POST("/submit-answer", func(c *gin.Context) {
			gameHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("game.answer.submitted", gin.H{
					"session_id": c.GetString("session_id"),
					"timestamp":  time.Now(),
				})
			}
		})

		api.POST("/get-results", func(c *gin.Context) {
			gameHandler.GetResults(c)
			if publisher != nil {
				publisher.Publish("game.results.requested", gin.H{
					"session_id": c.GetString("session_id"),
					"timestamp":  time.Now(),
				})
			}
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	log.Fatal(r.Run(":" + port))
}
