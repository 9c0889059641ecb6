package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/NivBraz/anagram-service/internal/config"
	"github.com/NivBraz/anagram-service/internal/models"
	"github.com/NivBraz/anagram-service/pkg/fetcher"
	"github.com/NivBraz/anagram-service/pkg/parser"
	"github.com/NivBraz/anagram-service/pkg/wordbank"
	"github.com/schollz/progressbar/v3"
)

// App represents the main application
type App struct {
	config   *config.Config
	fetcher  *fetcher.Fetcher
	parser   *parser.Parser
	wordBank *wordbank.WordBank
}

// New creates the application and loads every configured word list
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	f := fetcher.New(fetcher.FetcherConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
		UserAgent:         cfg.HTTPClient.UserAgent,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		InitialBackoff:    time.Duration(cfg.HTTPClient.RetryDelay) * time.Second,
	})

	a := &App{
		config:   cfg,
		fetcher:  f,
		parser:   parser.New(),
		wordBank: wordbank.New(),
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Loading word lists..."),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	for _, path := range cfg.Sources.WordListFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
		}
		if err := a.loadWords(content, bar); err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
	}

	for _, url := range cfg.Sources.WordListURLs {
		content, err := f.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch word list %s: %w", url, err)
		}
		if err := a.loadWords(content, bar); err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", url, err)
		}
	}

	log.Printf("Loaded %d words", a.wordBank.Len())
	return a, nil
}

// Queries gathers queries from args, the config and the configured queries file
func (a *App) Queries(args []string) ([]string, error) {
	queries := append([]string{}, args...)
	queries = append(queries, a.config.Queries...)

	if path := a.config.Sources.QueriesFile; path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read queries file: %w", err)
		}
		fromFile, err := a.parser.ParseQueries(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse queries file: %w", err)
		}
		queries = append(queries, fromFile...)
	}
	return queries, nil
}

// Run answers every query against the loaded word bank, keeping query order
func (a *App) Run(ctx context.Context, queries []string) (*models.Result, error) {
	startTime := time.Now()

	matches := make([]models.AnagramMatch, len(queries))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, a.config.Concurrency)
	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			matches[i] = a.lookup(query)
		}(i, query)
	}
	wg.Wait()

	result := &models.Result{Matches: matches}
	if a.config.Output.IncludeStats {
		result.Stats = &models.Stats{
			WordsLoaded:      a.wordBank.Len(),
			QueriesProcessed: len(queries),
			TimeElapsed:      int(time.Since(startTime).Milliseconds()),
		}
	}
	return result, nil
}

func (a *App) lookup(query string) models.AnagramMatch {
	words := a.wordBank.Anagrams(query)
	if words == nil {
		words = []string{}
	}
	if a.config.Output.SortMatches {
		sort.Strings(words)
	}
	return models.AnagramMatch{Query: query, Anagrams: words}
}

func (a *App) loadWords(content []byte, bar *progressbar.ProgressBar) error {
	var (
		words []string
		err   error
	)
	switch a.config.Sources.Format {
	case config.FormatHTML:
		words, err = a.parser.ParseWords(content)
	default:
		words, err = a.parser.ParseWordBank(content)
	}
	if err != nil {
		return err
	}

	for _, word := range words {
		if a.wordBank.Add(word) {
			bar.Add(1)
		}
	}
	return nil
}
