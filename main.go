package main

import (
	"fmt"
	"os"

	"github.com/ytget/ytgrab/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("ytgrab v%s\n", version)
	os.Exit(app.Run())
}
