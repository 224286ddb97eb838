package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pierkiroule/tagweave/internal/config"
	"github.com/pierkiroule/tagweave/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tagweave",
	Short: "Persistent tag co-occurrence engine",
	Long:  "Tagweave extracts weighted tags from text and grows a persistent co-occurrence graph that answers related, suggest, and trending queries. Single Go binary.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(mergeCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// openDB resolves the database path from config and opens the store.
func openDB() (*store.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path := cfg.Database.Path
	if path == "" {
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
	}
	return store.Open(path)
}
