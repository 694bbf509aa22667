package main

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mpsalisbury/chouine/internal/server"
	"github.com/mpsalisbury/chouine/pkg/discovery"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap.NewProduction: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Infof("Defaulting to port %s", port)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h := &server.Handler{Service: server.NewGameService(log)}
	h.Register(e)

	if host, err := os.Hostname(); err == nil {
		loc := fmt.Sprintf("http://%s:%s", host, port)
		if ad, err := discovery.AdvertiseService(loc); err != nil {
			log.Warnf("Can't advertise service: %v", err)
		} else {
			defer ad.Close()
		}
	}

	log.Infof("chouine: starting server on :%s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatal(err)
	}
}
