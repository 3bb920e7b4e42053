// cmd/kmer-counter/main.go
package main

import (
	"jank/internal/app"
	"jank/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
