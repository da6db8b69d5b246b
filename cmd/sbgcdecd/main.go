package main

import (
	"flag"
	"strings"

	"github.com/gimbalworks/sbgcdec/internal/api"
	"github.com/gimbalworks/sbgcdec/internal/config"
	"github.com/gimbalworks/sbgcdec/internal/observability"
)

func main() {
	cfgPath := flag.String("config", "", "service config path (toml)")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	cfg := config.DefaultServiceConfig()
	if *cfgPath != "" {
		loaded, err := loadServiceConfig(*cfgPath)
		if err != nil {
			lg := observability.InitLogger("sbgcdecd", config.LogConfig{Level: "info"})
			lg.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	}
	if v := strings.TrimSpace(*addr); v != "" {
		cfg.Addr = v
	}

	logger := observability.InitLogger(cfg.Name, cfg.Log)
	srv := api.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server exit")
	}
}
