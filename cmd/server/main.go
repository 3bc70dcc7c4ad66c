package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"fluento/internal/audio"
	"fluento/internal/config"
	"fluento/internal/database"
	"fluento/internal/handlers"
	"fluento/internal/phoneme"
	"fluento/internal/repository"
	"fluento/internal/security"
	"fluento/internal/service"
	"fluento/internal/stt"
	"fluento/internal/words"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load word dataset
	corpus, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatalf("Failed to load word dataset: %v", err)
	}
	log.Printf("Word dataset loaded (%d words)", corpus.Count(""))

	dailySelector := words.NewDailySelector(corpus)

	// Text to speech with on-disk audio cache
	ttsService, err := audio.NewTTSService(cfg.AudioDir)
	if err != nil {
		log.Fatalf("Failed to initialize TTS audio cache: %v", err)
	}
	go warmUpDailyAudio(ttsService, dailySelector)

	// Speech to text is optional; pronunciation scoring degrades to 503
	// without it
	var transcriber stt.Transcriber
	if cfg.STTEndpoint != "" {
		transcriber = stt.NewClient(cfg.STTEndpoint)
		log.Printf("Speech recognition endpoint configured: %s", cfg.STTEndpoint)
	} else {
		log.Println("Warning: STT_ENDPOINT not set, pronunciation evaluation disabled")
	}

	// Badge notification emails
	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Printf("Warning: badge emails disabled: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	userService := service.NewUserService(userRepo, practiceRepo, emailService)

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenDuration)
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, OAuth login disabled")
	}

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"facebook": {
			Name:  "facebook",
			Label: "Facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email", "public_profile"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		},
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(tokens)
	healthHandler := handlers.NewHealthHandler(corpus, transcriber != nil, true)
	authHandler := handlers.NewAuthHandler(userService, tokens, oauthProviders, cfg.OAuthRedirectBaseURL)
	wordsHandler := handlers.NewWordsHandler(corpus, dailySelector)
	pronunciationHandler := handlers.NewPronunciationHandler(transcriber, phoneme.New(), cfg.MaxUploadSize)
	spellingHandler := handlers.NewSpellingHandler(ttsService)
	usersHandler := handlers.NewUsersHandler(userService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /auth/providers", authHandler.Providers)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Word routes; the literal paths take precedence over the wildcard
	mux.HandleFunc("GET /word/daily", wordsHandler.Daily)
	mux.HandleFunc("GET /word/stats", wordsHandler.Stats)
	mux.HandleFunc("GET /word/count", wordsHandler.Count)
	mux.HandleFunc("GET /word/{mode}/{difficulty}", wordsHandler.Random)

	// Practice routes
	mux.HandleFunc("POST /pronunciation/evaluate", pronunciationHandler.Evaluate)
	mux.HandleFunc("POST /spelling/evaluate", spellingHandler.Evaluate)
	mux.HandleFunc("POST /spelling/tts", spellingHandler.GenerateTTS)
	mux.HandleFunc("GET /spelling/tts/{word}", spellingHandler.GetTTS)

	// User routes
	mux.HandleFunc("POST /user/sync", usersHandler.Sync)
	mux.HandleFunc("GET /user/profile", middleware.RequireUser(usersHandler.Profile))
	mux.HandleFunc("GET /user/stats", middleware.RequireUser(usersHandler.Stats))
	mux.HandleFunc("POST /user/stats", middleware.RequireUser(usersHandler.UpdateStats))
	mux.HandleFunc("POST /user/log-session", middleware.RequireUser(usersHandler.LogSession))
	mux.HandleFunc("GET /user/sessions", middleware.RequireUser(usersHandler.Sessions))

	// Wrap with logging and CORS middleware
	handler := handlers.Logging(handlers.CORS(cfg.CORSOrigins, mux))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

// warmUpDailyAudio pre-generates TTS audio for today's words so the first
// spelling session does not wait on the upstream service.
func warmUpDailyAudio(tts *audio.TTSService, daily *words.DailySelector) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	selection := daily.WordsFor(time.Now())
	list := make([]string, 0, len(selection))
	for _, w := range selection {
		list = append(list, w.Word)
	}
	if err := tts.WarmUp(ctx, list); err != nil {
		log.Printf("Warning: failed to warm up daily word audio: %v", err)
	}
}
