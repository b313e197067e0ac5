package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hopecreatives/officialhope/pkg/common"
	"github.com/hopecreatives/officialhope/pkg/config"
	"github.com/hopecreatives/officialhope/pkg/content"
	"github.com/hopecreatives/officialhope/pkg/links"
	"github.com/hopecreatives/officialhope/pkg/server"
	"github.com/hopecreatives/officialhope/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")

var listenAddress = ":8080"
var debugAddress = ":8081"

func buildSource() (content.Source, func(ctx context.Context) error) {
	sanity := content.NewSanityClient(content.SanityConfig{
		ProjectId:  config.Getenv("SANITY_PROJECT_ID", ""),
		Dataset:    config.Getenv("SANITY_DATASET", "production"),
		ApiVersion: config.Getenv("SANITY_API_VERSION", "2024-01-01"),
	})
	if sanity == nil {
		log.Println("No usable sanity config, serving builtin catalog")
		return content.NewStaticSource(), nil
	}

	var source content.Source = sanity
	var closeHook func(ctx context.Context) error
	if redisUrl := config.Getenv("REDIS_URL", ""); redisUrl != "" {
		cached := content.NewCachedSource(source, redisUrl, config.Getenv("REDIS_PASSWORD", ""), 0)
		source = cached
		closeHook = func(ctx context.Context) error {
			return cached.Close()
		}
		log.Printf("Content cache enabled, url: %s", redisUrl)
	}

	return content.NewFallbackSource(source, content.NewStaticSource()), closeHook
}

func main() {
	flag.Parse()
	config.Load()

	source, closeSource := buildSource()

	srv := &server.WebServer{
		Source: source,
		Links: links.WhatsApp{
			StoreName: config.Getenv("STORE_NAME", "Official Hope"),
			PhoneIntl: config.Getenv("STORE_PHONE_INTL", "250790884160"),
			BaseURL:   config.Getenv("STORE_URL", "https://officialhope.rw"),
		},
		StoreTitle:       config.Getenv("STORE_NAME", "Official Hope"),
		StoreDescription: config.Getenv("STORE_DESCRIPTION", "Cameras, lenses and creator gear in Kigali"),
		FallbackImage:    content.FallbackProductImage,
	}

	hooks := []common.ShutdownHook{closeSource}
	if rabbitUrl := config.Getenv("RABBIT_URL", ""); rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
		hooks = append(hooks, func(ctx context.Context) error {
			return trk.Close()
		})
		log.Printf("Tracking enabled, url: %s", rabbitUrl)
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{
		Addr:    listenAddress,
		Handler: srv.ClientHandler(),
	}, timeouts)

	common.RunServerWithShutdown(httpServer, "storefront api", timeouts.Shutdown, hooks...)
}
