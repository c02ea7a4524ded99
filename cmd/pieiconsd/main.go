// Command pieiconsd serves cluster icons over HTTP.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vasalvit/piechart"
	"github.com/vasalvit/piechart/internal/iconserver"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using flags and environment")
	}

	var (
		configPath = flag.String("config", os.Getenv("PIECHART_CONFIG"), "YAML configuration file")
		addr       = flag.String("addr", envOr("PIECHART_ADDR", ":8080"), "listen address")
	)
	flag.Parse()

	cfg, err := piechart.LoadConfigFile(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	builder, err := piechart.NewIconBuilder(cfg)
	if err != nil {
		log.Fatalf("error creating icon builder: %v", err)
	}

	srv := iconserver.New(*addr, builder)
	srv.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	srv.Stop()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
