// Package main kingsystem back-office API.
//
// @title           kingsystem back-office API
// @version         1.0
// @description     fleet rental back-office (rentals, installments, courtesies, agenda).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/guburchardt/kingsystem-backoffice/app/echoServer"
	courtesyctrl "github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/courtesy"
	paymentctrl "github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/payment"
	rentalctrl "github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/rental"
	vehiclectrl "github.com/guburchardt/kingsystem-backoffice/app/echoServer/controller/vehicle"
	"github.com/guburchardt/kingsystem-backoffice/app/echoServer/validation"
	"github.com/guburchardt/kingsystem-backoffice/config"
	"github.com/guburchardt/kingsystem-backoffice/repository/contractpdf"
	courtesyrepo "github.com/guburchardt/kingsystem-backoffice/repository/courtesy"
	paymentrepo "github.com/guburchardt/kingsystem-backoffice/repository/payment"
	rentalrepo "github.com/guburchardt/kingsystem-backoffice/repository/rental"
	vehiclerepo "github.com/guburchardt/kingsystem-backoffice/repository/vehicle"
	courtesysvc "github.com/guburchardt/kingsystem-backoffice/service/courtesy"
	paymentsvc "github.com/guburchardt/kingsystem-backoffice/service/payment"
	rentalsvc "github.com/guburchardt/kingsystem-backoffice/service/rental"
	vehiclesvc "github.com/guburchardt/kingsystem-backoffice/service/vehicle"
	"github.com/guburchardt/kingsystem-backoffice/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// repos
	rr := rentalrepo.New(db)
	pr := paymentrepo.New(db)
	cr := courtesyrepo.New(db)
	vr := vehiclerepo.New(db)
	pdf := contractpdf.NewHTTP(cfg.PdfRendererURL, cfg.PdfRendererKey)

	// services
	rs := rentalsvc.New(db, rr, pr, cr)
	ps := paymentsvc.New(db, pr, rr)
	cs := courtesysvc.New(cr, rr)
	vs := vehiclesvc.New(vr)

	// overdue sweep: a_receber past due -> atrasado
	sweeper := paymentsvc.NewSweeper(pr)
	go func() {
		t := time.NewTicker(time.Hour)
		defer t.Stop()
		for range t.C {
			n, err := sweeper.MarkOverdue(ctx)
			if err != nil {
				log.Error("overdue sweep failed", "err", err)
				continue
			}
			if n > 0 {
				log.Info("overdue sweep", "marked", n)
			}
		}
	}()

	// controllers
	v := validator.New()
	rentalC := &rentalctrl.Controller{Svc: rs, Pdf: pdf, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, Log: log}
	courtesyC := &courtesyctrl.Controller{Svc: cs, V: v, Log: log}
	vehicleC := &vehiclectrl.Controller{Svc: vs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Rental:   rentalC,
		Payment:  paymentC,
		Courtesy: courtesyC,
		Vehicle:  vehicleC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
