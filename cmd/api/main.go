package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/feedback-hub/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		log.Error().Err(err).Msg("feedbackhub")
		os.Exit(1)
	}
}
