package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/chessboard/pkg"
)

func main() {
	addr := flag.String("listen", pkg.SshPort, "address to listen on")
	binary := flag.String("binary", "chessterm", "path to the chessterm binary")
	hostKey := flag.String("host-key", "", "ssh host key file, generated when empty")
	logPath := flag.String("log", "./log", "path to log file")
	flag.Parse()

	logFile, err := pkg.InitLog(*logPath, "SERVER: ")
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()

	// Remaining arguments are passed through to every board process
	s, err := pkg.NewServer(*addr, *binary, *hostKey, flag.Args()...)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		log.Printf("Listening at %s", *addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	log.Println("Server stopped")
}
