package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/ezouu/reddit-price-checker/internal/checker"
	"github.com/ezouu/reddit-price-checker/internal/collector"
	"github.com/ezouu/reddit-price-checker/internal/config"
	"github.com/ezouu/reddit-price-checker/internal/dashboard"
	"github.com/ezouu/reddit-price-checker/internal/domain"
	"github.com/ezouu/reddit-price-checker/internal/extractor"
	"github.com/ezouu/reddit-price-checker/internal/ingest"
	"github.com/ezouu/reddit-price-checker/internal/report"
	"github.com/ezouu/reddit-price-checker/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Setup
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Default()
	item := flag.String("item", "", "Item name to search (e.g. 'Sony A7III' or 'HD800')")
	minPrice := flag.Float64("min", 0, "Minimum expected price in dollars")
	maxPrice := flag.Float64("max", 0, "Maximum expected price in dollars")
	days := flag.Int("days", cfg.DaysBack, "Number of days to look back")
	venues := flag.String("venues", "", "Comma-separated venues to search (default: input/venues.csv or avexchange,photomarket)")
	venueFile := flag.String("venue-file", "input/venues.csv", "CSV of venues to search")
	serve := flag.Bool("serve", false, "Serve the price dashboard after the scan")
	flag.Parse()

	cfg.Item = strings.TrimSpace(*item)
	cfg.MinPrice = *minPrice
	cfg.MaxPrice = *maxPrice
	cfg.DaysBack = *days

	// 2. Resolve Venues (flag > file > defaults)
	if *venues != "" {
		cfg.Venues = nil
		for _, v := range strings.Split(*venues, ",") {
			if v = strings.TrimSpace(v); v != "" {
				cfg.Venues = append(cfg.Venues, v)
			}
		}
	} else if loaded, err := ingest.LoadVenues(*venueFile); err == nil && len(loaded) > 0 {
		cfg.Venues = nil
		for _, v := range loaded {
			cfg.Venues = append(cfg.Venues, v.Name)
		}
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "err", err)
		flag.Usage()
		os.Exit(1)
	}

	// 3. Credentials (fatal at startup, unlike mid-scan search errors)
	if missing := config.MissingCredentials(os.Getenv("COLLECTOR_MODE")); len(missing) > 0 {
		logger.Error("Missing environment variables", "vars", strings.Join(missing, ", "))
		os.Exit(1)
	}

	// 4. Initialize Collector and Extractor (Using Factories)
	client, err := collector.NewCollector()
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", os.Getenv("COLLECTOR_MODE"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	priceExtractor, err := extractor.NewExtractor()
	if err != nil {
		logger.Error("Failed to initialize extractor", "error", err)
		os.Exit(1)
	}
	if oai, ok := priceExtractor.(*extractor.OpenAIExtractor); ok {
		if err := oai.Verify(ctx); err != nil {
			logger.Error("OpenAI verification failed", "error", err)
			os.Exit(1)
		}
		logger.Info("OpenAI connection verified")
	}

	chk := checker.New(client, priceExtractor, logger)

	// 5. Concurrency Setup
	jobQueue := make(chan string, len(cfg.Venues))
	resultQueue := make(chan domain.Listing, 100)
	writerQueue := make(chan domain.Listing, 100)
	var workerWg sync.WaitGroup
	var writerWg sync.WaitGroup
	var collectWg sync.WaitGroup

	writer := &storage.WriterService{FilePath: cfg.DataFile}
	writerWg.Add(1)
	go writer.Start(&writerWg, writerQueue)

	// Tee results to the NDJSON writer and keep them for the report
	var listings []domain.Listing
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for l := range resultQueue {
			listings = append(listings, l)
			writerQueue <- l
		}
		close(writerQueue)
	}()

	// Adjust workers based on mode to prevent rate limiting
	numWorkers := 4
	if os.Getenv("COLLECTOR_MODE") == "public" {
		numWorkers = 2 // Go slower for public JSON
	}
	if numWorkers > len(cfg.Venues) {
		numWorkers = len(cfg.Venues)
	}

	for i := 0; i < numWorkers; i++ {
		workerWg.Add(1)
		go func(id int) {
			defer workerWg.Done()
			for venue := range jobQueue {
				select {
				case <-ctx.Done():
					return
				default:
					logger.Info("Searching venue", "venue", venue)
					for _, l := range chk.ScanVenue(ctx, venue, cfg) {
						resultQueue <- l
					}
				}
			}
		}(i)
	}

	// 6. Enqueue Jobs
	logger.Info("Starting scan", "item", cfg.Item, "venues", len(cfg.Venues), "days", cfg.DaysBack)
	for _, v := range cfg.Venues {
		jobQueue <- v
	}
	close(jobQueue)

	// 7. Graceful Shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received")
		cancel()
	}()

	workerWg.Wait()
	close(resultQueue)
	collectWg.Wait()
	writerWg.Wait()

	// 8. Report
	if len(listings) == 0 {
		fmt.Printf("\nNo results found for '%s' in the past %d days.\n", cfg.Item, cfg.DaysBack)
	} else if err := report.Render(os.Stdout, listings); err != nil {
		logger.Error("Report failed", "err", err)
	}

	if *serve {
		logger.Info("Starting Dashboard", "port", cfg.Port)
		if err := dashboard.StartServer(cfg.DataFile, cfg.Port); err != nil {
			logger.Error("Dashboard failed", "err", err)
			os.Exit(1)
		}
	}
}
