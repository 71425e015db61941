package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/simulation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON configuration file (defaults are used when empty)")
	schemaFile := flag.String("schema", "", "JSON schema file (the embedded schema is used when empty)")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :2112")
	recordFile := flag.String("record", "", "write msgpack trajectory frames to this file")
	flag.Parse()

	ctx := context.Background()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	level, err := simulation.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := golog.New(level, os.Stdout)

	var opts []simulation.WorldOption

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, simulation.WithMetrics(simulation.NewMetrics(reg)))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server stopped: %v", err)
			}
		}()
		defer server.Close()
		logger.Infof("serving metrics on %s/metrics", *metricsAddr)
	}

	if *recordFile != "" {
		f, err := os.Create(*recordFile)
		if err != nil {
			log.Fatal(err)
		}
		recorder := simulation.NewRecorder(f)
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Errorf("failed to close %s: %v", *recordFile, err)
			}
			logger.Infof("recorded %d frames to %s", recorder.Frames(), *recordFile)
		}()
		opts = append(opts, simulation.WithRecorder(recorder))
	}

	system, err := actor.NewActorSystem("NBodyWorld", actor.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Barnes-Hut N-body")

	game, err := simulation.GetNewGame(ctx, cfg, system, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
