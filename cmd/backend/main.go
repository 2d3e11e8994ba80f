package main

import (
	"akurat-backend/pkg/api/middleware"
	"akurat-backend/pkg/api/routes/auth" // Authentication route handlers
	"akurat-backend/pkg/api/routes/user" // User directory route handlers
	"akurat-backend/pkg/cognito"         // Identity provider client
	"akurat-backend/pkg/config"          // Application configuration
	"akurat-backend/pkg/jwks"            // User pool key set for the auth guard
	"akurat-backend/pkg/logger"          // Custom logging implementation
	"akurat-backend/pkg/retry"

	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cors "github.com/OnlyNico43/gin-cors" // CORS middleware
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/gin-gonic/gin" // Web framework
)

func main() {
	// Load application configuration with default values
	cfg := config.LoadDefaultConfig()

	// Initialize logger for the main package
	log := logger.NewLogger(os.Stdout, "Main", cfg.LogLevel, "System")

	// Configure application mode based on debug setting
	if !cfg.DebugMode {
		log.PrintfInfo("Starting in release mode")
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.PrintfInfo("Starting in debug mode")
		gin.SetMode(gin.DebugMode)
	}

	// Resolve the AWS configuration for the identity provider client
	loadAwsConfig := retry.WithRetry(func() (aws.Config, error) {
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.AwsRegion),
		}
		if cfg.AwsAccessKeyID != "" && cfg.AwsSecretAccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AwsAccessKeyID, cfg.AwsSecretAccessKey, ""),
			))
		}
		return awsconfig.LoadDefaultConfig(context.Background(), opts...)
	}, log, nil)

	awsCfg, err := loadAwsConfig()
	if err != nil {
		log.PrintfError("Failed to load AWS configuration: %s", err)
		panic(err)
	}

	idp := cognito.New(awsCfg, cfg.UserPoolClientID, cfg.UserPoolID)

	issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.AwsRegion, cfg.UserPoolID)
	keys := jwks.New(issuer)

	warmUpKeys := retry.WithRetry(func() (struct{}, error) {
		return struct{}{}, keys.Prefetch(context.Background())
	}, log, nil)
	if _, err := warmUpKeys(); err != nil {
		// Keys are fetched lazily on the first guarded request
		log.PrintfWarning("Could not prefetch the user pool JWKS: %s", err)
	}

	// Initialize Gin router with default middleware
	router := gin.New()

	// Configure trusted proxies for security
	if err := router.SetTrustedProxies(nil); err != nil {
		log.PrintfError("Could not set trusted proxies list")
		return
	}

	// Configure router path handling
	router.RedirectFixedPath = true     // Redirect to the correct path if case-insensitive match found
	router.RedirectTrailingSlash = true // Automatically handle trailing slashes

	// Set up CORS middleware
	log.PrintfInfo("Frontend URL for cors: %s", cfg.FrontendURL)
	router.Use(cors.CorsMiddleware(cors.Config{
		AllowedOrigins:   strings.Split(cfg.FrontendURL, ", "),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add middleware for configuration, provider client, key set, and panic recovery
	router.Use(middleware.ConfigMiddleware(cfg))
	router.Use(middleware.IdpMiddleware(idp))
	router.Use(middleware.JwksMiddleware(keys))
	router.Use(gin.Recovery())

	// Register API endpoints by feature group
	api := router.Group("/api/v1")

	authEndpoints := api.Group("")
	{
		log.PrintfInfo("Registering auth endpoints")
		auth.RegisterAuthEndpoints(authEndpoints)
	}

	userEndpoints := api.Group("/users")
	{
		log.PrintfInfo("Registering user endpoints")
		user.RegisterUserEndpoints(userEndpoints)
	}

	// Start the HTTP server
	log.PrintfInfo("Starting server on port %s", cfg.BackendPort)
	if err := router.Run(":" + cfg.BackendPort); err != nil {
		log.PrintfError("Failed to start server: %s", err)
		return
	}
}
