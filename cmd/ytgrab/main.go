package main

import (
	"os"

	"github.com/ytget/ytgrab/internal/app"
)

func main() {
	os.Exit(app.Run())
}
