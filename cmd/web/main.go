package main

import (
	"pharmacare_backend/internal/app"
	"pharmacare_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
