package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prepgrid/prepgrid/internal/api"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/service"
	"github.com/prepgrid/prepgrid/internal/service/auth_service"
	"github.com/prepgrid/prepgrid/internal/service/challenge_service"
	"github.com/prepgrid/prepgrid/internal/service/key_service"
	"github.com/prepgrid/prepgrid/internal/service/llm"
	"github.com/prepgrid/prepgrid/internal/service/user_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func databaseURL() string {
	// a full url wins over the individual parts
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		host,
		port,
		os.Getenv("DB_NAME"),
	)
}

func initDatabase() *database.Queries {
	dbURL := databaseURL()
	if dbURL == "" {
		panic("database connection parameters not found in environment")
	}

	// create a connection pool to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return database.New(pool)
}

func initChallengeService() *challenge_service.ChallengeService {
	log.Info("initializing challenge service")
	store, err := challenge_service.NewChallengeStore(0)
	if err != nil {
		panic(err)
	}
	return &challenge_service.ChallengeService{
		Store:   store,
		Clients: llm.NewClient,
	}
}

func initApi(db *database.Queries) *api.Api {
	log.Info("initializing api config")
	as := &auth_service.AuthService{DB: db}
	log.Info("auth service created")
	us := &user_service.UserService{DB: db}
	log.Info("user service created")
	ks := &key_service.KeyService{DB: db}
	log.Info("key service created")
	cs := initChallengeService()
	log.Info("challenge service created")
	a := api.Api{
		AuthServiceConfig:      as,
		UserServiceConfig:      us,
		KeyServiceConfig:       ks,
		ChallengeServiceConfig: cs,
	}
	return &a
}

func setup() {
	godotenv.Load()
	service.InitializeServices()
	if os.Getenv(service.KeyGeminiApiKey) == "" {
		log.Warnf("%s not set in environment variables", service.KeyGeminiApiKey)
	}
	db := initDatabase()
	apiConfig = initApi(db)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount api router
	apiRouter := NewApiRouter()
	router.Mount("/api", apiRouter)
	log.Info("api router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
