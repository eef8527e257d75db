package main

import (
	"github.com/joho/godotenv"

	"hrtracker/internal/app/server"
)

func main() {
	_ = godotenv.Load()
	server.Run()
}
