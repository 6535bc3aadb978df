package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/junkd0g/blogcharts/internal/logging"
	"github.com/junkd0g/blogcharts/internal/tools"
)

func main() {
	logging.Init(logging.DefaultConfig())

	s := tools.NewServer("1.0.0")

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
