package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/actuator/prometheus", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTPAddr, cfg.MetricsPort),
		Handler: metricsMux,
	}
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTPAddr, cfg.HTTPPort),
		Handler: newRouter(),
	}

	go func() {
		log.Printf("Metrics server listening at %s", metricsSrv.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	go func() {
		log.Printf("REST API server listening at %s", apiSrv.Addr)
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := apiSrv.Shutdown(ctx); err != nil {
		log.Printf("REST API shutdown: %v", err)
	}
	if err := metricsSrv.Shutdown(ctx); err != nil {
		log.Printf("Metrics shutdown: %v", err)
	}
}
