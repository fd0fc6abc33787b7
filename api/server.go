package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/EltonDagodog/VoteRoyale/api/controllers"
	"github.com/EltonDagodog/VoteRoyale/api/transport"
	"github.com/EltonDagodog/VoteRoyale/logging"
	"github.com/EltonDagodog/VoteRoyale/storage"
	"github.com/EltonDagodog/VoteRoyale/upstream"
	"github.com/EltonDagodog/VoteRoyale/voting"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	backend := upstream.NewClient(s.config.BaseURL, time.Duration(s.config.TimeoutSeconds)*time.Second)
	sessionStorage := s.buildSessionStorage()
	registry := voting.NewRegistry()

	//Register controllers
	authController := controllers.NewAuthController(backend, sessionStorage)
	authController.RegisterRoutes(r)
	eventsController := controllers.NewEventsController(backend, sessionStorage)
	eventsController.RegisterRoutes(r)
	participantsController := controllers.NewParticipantsController(backend, sessionStorage)
	participantsController.RegisterRoutes(r)
	judgesController := controllers.NewJudgesController(backend, sessionStorage)
	judgesController.RegisterRoutes(r)
	categoriesController := controllers.NewCategoriesController(backend, sessionStorage)
	categoriesController.RegisterRoutes(r)
	resultsController := controllers.NewResultsController(backend, sessionStorage)
	resultsController.RegisterRoutes(r)
	votingController := controllers.NewVotingController(backend, sessionStorage, registry)
	votingController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// buildSessionStorage picks DynamoDB when a table is configured, otherwise
// the in-memory store. Lambda deployments need the table; local runs don't.
func (s *Server) buildSessionStorage() storage.SessionStorage {
	if s.config.TableNameSessions == "" {
		logging.Log.Info("No session table configured, using in-memory sessions")
		return storage.NewMemorySessionStorage()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	return &storage.DynamoSessionStorage{
		Client:    dynamodb.NewFromConfig(cfg),
		TableName: s.config.TableNameSessions,
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
