package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sagfgh000/grocery/internal/app"
)

func main() {
	_ = godotenv.Load()

	a := app.New()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sig
		if err := a.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
	// the listener closed; wait for the final state flush before exiting
	<-done
}
