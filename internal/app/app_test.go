package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/NivBraz/anagram-service/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{Concurrency: 4}
	cfg.RateLimit.RequestsPerSecond = 10
	cfg.RateLimit.Burst = 20
	cfg.HTTPClient.Timeout = 30
	cfg.HTTPClient.MaxRetries = 1
	cfg.HTTPClient.UserAgent = "test-agent"
	cfg.Sources.Format = config.FormatLines
	return cfg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*testing.T, *config.Config)
		wantErr bool
	}{
		{
			name: "valid config",
			modify: func(t *testing.T, c *config.Config) {
				c.Sources.WordListFiles = []string{writeFile(t, "words.txt", "listen\nsilent")}
			},
			wantErr: false,
		},
		{
			name:    "invalid config - no sources",
			modify:  func(t *testing.T, c *config.Config) {},
			wantErr: true,
		},
		{
			name: "missing word list file",
			modify: func(t *testing.T, c *config.Config) {
				c.Sources.WordListFiles = []string{filepath.Join(t.TempDir(), "missing.txt")}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(t, cfg)
			_, err := New(context.Background(), cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApp_Run(t *testing.T) {
	wordList := `# remote list
listen
silent
enlist
Tinsel!
google
123`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words":
			w.Write([]byte(wordList))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Sources.WordListURLs = []string{server.URL + "/words"}
	cfg.Sources.WordListFiles = []string{writeFile(t, "local.txt", "inlets\nevil\nvile\nlive")}
	cfg.Output.IncludeStats = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	result, err := app.Run(ctx, []string{"LISTEN", "veil", "xyz", "!!"})
	if err != nil {
		t.Fatalf("Failed to run app: %v", err)
	}

	if len(result.Matches) != 4 {
		t.Fatalf("Expected 4 matches, got %d", len(result.Matches))
	}

	// Files load before URLs, so local words come first.
	expected := [][]string{
		{"inlets", "listen", "silent", "enlist", "tinsel"},
		{"evil", "vile", "live"},
		{},
		{},
	}
	for i, m := range result.Matches {
		if !reflect.DeepEqual(m.Anagrams, expected[i]) {
			t.Errorf("Matches[%d] (%q) = %v, want %v", i, m.Query, m.Anagrams, expected[i])
		}
	}

	if result.Stats == nil {
		t.Fatal("Expected stats to be included")
	}
	if result.Stats.WordsLoaded != 9 {
		t.Errorf("Expected 9 words loaded, got %d", result.Stats.WordsLoaded)
	}
	if result.Stats.QueriesProcessed != 4 {
		t.Errorf("Expected 4 queries processed, got %d", result.Stats.QueriesProcessed)
	}
}

func TestApp_RunSortedHTML(t *testing.T) {
	page := `<html><head><style>.stop{color:red}</style></head>
<body><p>Pots, tops and spot!</p><script>var stop = 1;</script></body></html>`

	cfg := testConfig()
	cfg.Sources.Format = config.FormatHTML
	cfg.Sources.WordListFiles = []string{writeFile(t, "page.html", page)}
	cfg.Output.SortMatches = true

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	result, err := app.Run(context.Background(), []string{"stop"})
	if err != nil {
		t.Fatalf("Failed to run app: %v", err)
	}
	expected := []string{"pots", "spot", "tops"}
	if got := result.Matches[0].Anagrams; !reflect.DeepEqual(got, expected) {
		t.Errorf("Anagrams = %v, want %v", got, expected)
	}
	if result.Stats != nil {
		t.Error("Expected stats to be omitted")
	}
}

func TestApp_RunCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Concurrency = 1
	cfg.Sources.WordListFiles = []string{writeFile(t, "words.txt", "cat")}

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := make([]string, 100)
	for i := range queries {
		queries[i] = "act"
	}
	if _, err := app.Run(ctx, queries); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestApp_Queries(t *testing.T) {
	cfg := testConfig()
	cfg.Sources.WordListFiles = []string{writeFile(t, "words.txt", "cat")}
	cfg.Sources.QueriesFile = writeFile(t, "queries.txt", "# queries\ntac\n\nact\n")
	cfg.Queries = []string{"tca"}

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	got, err := app.Queries([]string{"cta"})
	if err != nil {
		t.Fatalf("Queries() error = %v", err)
	}
	expected := []string{"cta", "tca", "tac", "act"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Queries() = %v, want %v", got, expected)
	}
}
