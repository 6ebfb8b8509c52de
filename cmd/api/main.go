package main

import (
	"context"
	"log"

	"github.com/mohammedHatemm/go-shop-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("shop API failed: %v", err)
	}
}
