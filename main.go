package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.SetPrefix("sc/snapcalorie-go-api: ")
	log.SetFlags(0)

	// .env is optional; production sets real env vars.
	godotenv.Load()

	pool := getDBPool()
	store := newStore(&pgKV{pool: pool})
	store.Load(context.Background())

	h := &Handler{
		store:          store,
		analyzeBaseURL: "https://generativelanguage.googleapis.com",
		now:            time.Now,
	}

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	router.Run("localhost:3000")
}
