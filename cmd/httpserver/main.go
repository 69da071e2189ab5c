package main

import (
	"hellotcp/internal/server"

	"github.com/sirupsen/logrus"
)

const Addr = "127.0.0.1:8080"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	srv, err := server.Listen(Addr, logrus.StandardLogger())
	if err != nil {
		logrus.Fatalf("Error starting server: %v", err)
	}
	logrus.Infof("Listening on %s", Addr)

	// Serve only comes back on failure; any failure ends the process.
	if err := srv.Serve(); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
