package main

import (
	"github.com/ibanezbetes/trinity-sub006/internal/app"
	"github.com/ibanezbetes/trinity-sub006/internal/config"
)

func main() {
	app.Go(config.Load())
}
