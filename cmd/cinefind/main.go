package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/provider/tmdb"
	"github.com/mmcdole/cinefind/internal/service"
	"github.com/mmcdole/cinefind/internal/store"
	"github.com/mmcdole/cinefind/internal/tui"
	"github.com/mmcdole/cinefind/internal/tui/styles"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var showVersion bool
	var configFile string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("cinefind %s\n", Version)
		return
	}

	if err := run(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting cinefind", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, configFile, logger)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	popularity, err := store.Open(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open popularity store: %w", err)
	}
	defer popularity.Close()

	client := tmdb.NewClient(cfg.Provider.BaseURL, cfg.Provider.Token, logger,
		tmdb.WithTimeout(cfg.Provider.Timeout))

	movieSvc := service.NewMovieService(client, logger)
	tracker := service.NewPopularityTracker(popularity, cfg.Provider.ImageBaseURL, cfg.Leaderboard.Size, logger)

	model := tui.NewModel(movieSvc, tracker, tui.Options{
		Debounce:        cfg.Search.Debounce,
		Refresh:         cfg.Leaderboard.Refresh,
		RefreshInterval: cfg.Leaderboard.Interval,
		ImageBaseURL:    cfg.Provider.ImageBaseURL,
		Logger:          logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "store", cfg.Store.Backend, "refresh", cfg.Leaderboard.Refresh)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow asks for the provider URL and token, checks them against the
// provider and saves them
func runSetupFlow(cfg *adapter.Config, configFile string, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("provider token not configured: set provider.token in %s or CINEFIND_PROVIDER_TOKEN", adapter.DefaultConfigFile())
	}

	fmt.Println()
	fmt.Println("Welcome to cinefind!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		defaultURL := cfg.Provider.BaseURL
		if defaultURL == "" {
			defaultURL = adapter.DefaultConfig().Provider.BaseURL
		}
		fmt.Printf("Provider API URL [%s]: ", defaultURL)
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		baseURL := strings.TrimSpace(input)
		if baseURL == "" {
			baseURL = defaultURL
		}

		fmt.Print("API read access token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token := strings.TrimSpace(string(raw))
		if token == "" {
			fmt.Println("Token cannot be empty. Please try again.")
			fmt.Println()
			continue
		}

		if err := verifyWithSpinner(baseURL, token, logger); err != nil {
			fmt.Printf("\n✗ Could not reach the provider: %v\n", err)
			fmt.Println("Please check the URL and token and try again.")
			fmt.Println()
			continue
		}

		cfg.Provider.BaseURL = baseURL
		cfg.Provider.Token = token
		break
	}

	if err := adapter.SaveConfig(cfg, configFile); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run cinefind again to start searching.")

	return nil
}

// verifyWithSpinner fetches the popular listing once to check the credentials
func verifyWithSpinner(baseURL, token string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := tmdb.NewClient(baseURL, token, logger)

	resultCh := make(chan error, 1)
	go func() {
		_, err := client.Fetch(ctx, "")
		resultCh <- err
	}()

	frame := 0
	fmt.Printf("\r%s Checking provider...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Println("✓ Provider reachable")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking provider...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("provider check timed out")
		}
	}
}
