package main

import (
	"citylegends/backend/internal/config"
	clog "citylegends/backend/internal/log"
	"citylegends/backend/internal/mockapi"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.String("addr", "127.0.0.1:5002", "listen address")
	pflag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	clog.Init(cfg.Env)

	srv := mockapi.NewServer(mockapi.NewStore(), cfg.WSBaseURL)
	log.Info().Str("addr", *addr).Msg("mock api listening")
	if err := srv.Router().Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("mock api run")
	}
}
