package main

import (
	"citylegends/backend/internal/config"
	clog "citylegends/backend/internal/log"
	"citylegends/backend/internal/mockpages"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.String("addr", "127.0.0.1:5001", "listen address")
	pflag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	clog.Init(cfg.Env)

	r, err := mockpages.NewRouter(mockpages.NewStore())
	if err != nil {
		log.Fatal().Err(err).Msg("setup router")
	}
	log.Info().Str("addr", *addr).Msg("mock pages listening")
	if err := r.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("mock pages run")
	}
}
