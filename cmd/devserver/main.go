package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"vidsense/devserver"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	// Parse command-line flags
	port := flag.String("port", "8000", "HTTP port")
	uploadDir := flag.String("upload-dir", filepath.Join(os.TempDir(), "vidsense-uploads"), "Directory for uploaded videos")
	stepDelay := flag.Duration("step-delay", 2*time.Second, "Delay between simulated pipeline stages")
	flag.Parse()

	srv := devserver.NewServer(*uploadDir, *stepDelay)

	fmt.Printf("🎬 Vidsense Dev Server\n")
	fmt.Printf("   API:        http://0.0.0.0:%s\n", *port)
	fmt.Printf("   Uploads:    %s\n", *uploadDir)
	fmt.Printf("   Step delay: %s\n", *stepDelay)
	fmt.Println("\nPress Ctrl+C to shutdown")

	if err := http.ListenAndServe(":"+*port, srv.Handler()); err != nil {
		fmt.Printf("Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
