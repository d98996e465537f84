package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lucas345987/Python-Master/internal/app"
	"github.com/Lucas345987/Python-Master/internal/catalog"
	"github.com/Lucas345987/Python-Master/internal/llm"
	"github.com/Lucas345987/Python-Master/internal/store"
	"github.com/Lucas345987/Python-Master/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "pymaster",
	Short: "Learn Python data libraries in the terminal",
	Long:  "Python Master — terminal app for studying Pandas, NumPy, OpenCV and Streamlit through static lessons and AI-assisted theory, practice and quiz modes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYMASTER_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp opens the event store, builds the tutor stack, and starts the
// TUI. The app still runs without a configured provider; the AI modes
// are disabled in that case.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load lesson catalog: %w", err)
	}

	opts := app.Options{Catalog: cat}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
		opts.ModelID = provider.ModelID()
	}

	return app.Run(opts)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PYMASTER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("PYMASTER_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
