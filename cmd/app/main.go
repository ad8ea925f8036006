package main

import (
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
