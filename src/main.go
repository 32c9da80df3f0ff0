package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"Backend-GuardPoint/src/config"
	"Backend-GuardPoint/src/controllers"
	"Backend-GuardPoint/src/database"
	"Backend-GuardPoint/src/jobs"
	"Backend-GuardPoint/src/routes"
	"Backend-GuardPoint/src/services/attendance"
	"Backend-GuardPoint/src/services/auth"
	"Backend-GuardPoint/src/services/checkpoints"
	"Backend-GuardPoint/src/services/contracts"
	"Backend-GuardPoint/src/services/defects"
	"Backend-GuardPoint/src/services/directory"
	"Backend-GuardPoint/src/services/patrols"
	"Backend-GuardPoint/src/services/payroll"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	redisClient := database.InitRedis(cfg.RedisURI)
	asynqClient := database.InitAsynq(redisClient, cfg.RedisURI)

	// Services. Directory first: attendance, patrols and defects all resolve
	// people and jobs through it.
	directorySvc := directory.NewService(db)
	attendanceSvc := attendance.NewService(db, directorySvc, cfg.AttendanceRadiusMeters)
	checkpointSvc := checkpoints.NewService(db, cfg.DefaultCheckpointRadiusMeters, cfg.DefaultCheckFrequencyMinutes, cfg.QRCodeDir)
	patrolSvc := patrols.NewService(db, checkpointSvc, directorySvc)

	var notifier defects.Notifier
	if asynqClient != nil {
		notifier = jobs.NewNotifier(asynqClient)
	}
	defectSvc := defects.NewService(db, directorySvc, checkpointSvc, notifier)

	contractSvc := contracts.NewService(db)
	payrollSvc := payroll.NewService(db, directorySvc)
	authSvc := auth.NewService(db, cfg.JWTSecret)

	var sender jobs.MailSender
	if s := jobs.NewSMTPSender(cfg); s != nil {
		sender = s
	}
	worker := jobs.NewWorker(cfg, patrolSvc, sender)
	worker.Start()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app, routes.Controllers{
		JWTSecret:  cfg.JWTSecret,
		Auth:       controllers.NewAuthController(authSvc),
		Attendance: controllers.NewAttendanceController(attendanceSvc),
		Checkpoint: controllers.NewCheckpointController(checkpointSvc),
		Patrol:     controllers.NewPatrolController(patrolSvc),
		Defect:     controllers.NewDefectController(defectSvc),
		Directory:  controllers.NewDirectoryController(directorySvc),
		Contract:   controllers.NewContractController(contractSvc),
		Payroll:    controllers.NewPayrollController(payrollSvc),
	})

	// Shut down cleanly on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Println("❌ Server shutdown:", err)
		}
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("❌ MongoDB disconnect:", err)
		}
	}()

	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
