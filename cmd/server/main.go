package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/postcalendar/configs"
	"github.com/maheshrc27/postcalendar/internal/api"
	"github.com/maheshrc27/postcalendar/internal/api/handlers"
	"github.com/maheshrc27/postcalendar/internal/api/middleware"
	"github.com/maheshrc27/postcalendar/internal/dragdrop"
	job "github.com/maheshrc27/postcalendar/internal/jobs"
	"github.com/maheshrc27/postcalendar/internal/queue"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/service"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	setupLogger(cfg)

	if cfg.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		})
		if err != nil {
			logrus.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	postRepo := repository.NewPostRepository()

	var (
		dispatcher  *queue.Dispatcher
		client      *asynq.Client
		inspector   *asynq.Inspector
		asynqServer *asynq.Server
	)
	if cfg.RedisURI != "" {
		redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
		client = asynq.NewClient(redisConn)
		inspector = asynq.NewInspector(redisConn)
		dispatcher = queue.NewDispatcher(client, inspector, cfg.Location)
		asynqServer = asynq.NewServer(redisConn, asynq.Config{
			Concurrency: cfg.QueueConcurrency,
		})
	} else {
		logrus.Warn("REDIS_URI is not set, posts will not be handed to the publisher")
	}

	platformService := service.NewPlatformService()
	postService := service.NewPostService(postRepo, postDispatcher(dispatcher))
	calendarService := service.NewCalendarService(postRepo)

	r2Service, err := service.NewR2Service(context.Background(), cfg.R2)
	if err != nil {
		logrus.Fatalf("Failed to configure media storage: %v", err)
	}
	mediaService := service.NewMediaService(r2Service)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, " + middleware.PublisherKeyHeader,
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api.RegisterRoutes(app, api.Handlers{
		Post:         handlers.NewPostHandler(postService, cfg.Location),
		Calendar:     handlers.NewCalendarHandler(calendarService, dragdrop.NewController(postService), cfg.Location),
		Platform:     handlers.NewPlatformHandler(platformService),
		Media:        handlers.NewMediaHandler(mediaService),
		PublisherKey: middleware.NewPublisherKeyMiddleware(cfg.PublisherKey),
	})

	// cron jobs
	c := cron.New()
	if dispatcher != nil {
		sweepJob := job.NewDispatchSweepJob(postRepo, dispatcher, cfg.Location, cfg.SweepWindow)
		if err := c.AddFunc(cfg.SweepSchedule, sweepJob.Run); err != nil {
			logrus.Fatalf("Invalid SWEEP_SCHEDULE %q: %v", cfg.SweepSchedule, err)
		}
	}
	c.Start()

	//queue
	if asynqServer != nil {
		queueW := queue.NewQueue(postRepo, service.NewLogPublisher(platformService))

		go func() {
			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

			logrus.Info("Starting the Asynq server...")
			if err := asynqServer.Run(mux); err != nil {
				logrus.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()
	logrus.Infof("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, c, asynqServer, client, inspector)
}

// postDispatcher keeps a nil *queue.Dispatcher from becoming a non-nil
// interface value.
func postDispatcher(d *queue.Dispatcher) service.PostDispatcher {
	if d == nil {
		return nil
	}
	return d
}

func setupLogger(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.LogFile != "" {
		logrus.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}))
	}

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
}

func gracefulShutdown(app *fiber.App, c *cron.Cron, server *asynq.Server, client *asynq.Client, inspector *asynq.Inspector) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logrus.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logrus.Fatalf("Failed to shut down server: %v", err)
	}

	c.Stop()
	if server != nil {
		server.Shutdown()
	}
	if client != nil {
		client.Close()
	}
	if inspector != nil {
		inspector.Close()
	}
	logrus.Info("Server shutdown complete.")
}
