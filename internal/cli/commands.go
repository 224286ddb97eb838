package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pierkiroule/tagweave/internal/engine"
	"github.com/pierkiroule/tagweave/internal/store"
	"github.com/pierkiroule/tagweave/internal/tagger"
)

var (
	extractTitle string
	extractTop   int
	queryLimit   int
	trendingDays int
)

func init() {
	extractCmd.Flags().StringVar(&extractTitle, "title", "", "document title (scored higher)")
	extractCmd.Flags().IntVar(&extractTop, "top", 0, "number of tags to return")
	relatedCmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum results")
	suggestCmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum results")
	trendingCmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum results")
	trendingCmd.Flags().IntVar(&trendingDays, "days", 0, "trailing window in days")
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract scored tags from a file (or stdin with -)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			text, err = io.ReadAll(os.Stdin)
		} else {
			text, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		top := extractTop
		if top <= 0 {
			top = tagger.DefaultTopN
		}
		for _, tag := range tagger.Extract(string(text), extractTitle, top) {
			fmt.Printf("%.2f\t%s\n", tag.Score, tag.Name)
		}
		return nil
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <files...>",
	Short: "Ingest documents into the tag graph, one document per file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		eng := engine.New(db)

		// Reads fan out; the store serializes writes internally.
		var g errgroup.Group
		g.SetLimit(4)
		for _, path := range args {
			path := path
			g.Go(func() error {
				text, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				tags, err := eng.Ingest(path, string(text), "")
				if err != nil {
					return fmt.Errorf("ingest %s: %w", path, err)
				}
				fmt.Printf("%s: %d tags\n", path, len(tags))
				return nil
			})
		}
		return g.Wait()
	},
}

var relatedCmd = &cobra.Command{
	Use:   "related <tag>",
	Short: "List tags that co-occur with the given tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		related, err := engine.New(db).RelatedTo(args[0], queryLimit)
		if err != nil {
			return err
		}
		printScores(related)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <seeds...>",
	Short: "Suggest tags from the neighborhoods of the given seed tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		suggested, err := engine.New(db).SuggestFromSeeds(args, queryLimit)
		if err != nil {
			return err
		}
		printScores(suggested)
		return nil
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List the most frequent recently seen tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		trending, err := engine.New(db).Trending(trendingDays, queryLimit)
		if err != nil {
			return err
		}
		printScores(trending)
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge <from> <to>",
	Short: "Merge one tag into another, combining links, stats, and edges",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		to, err := engine.New(db).Merge(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("merged %q into %q\n", args[0], to.Name)
		return nil
	},
}

func printScores(scores []store.TagScore) {
	for _, s := range scores {
		fmt.Printf("%.1f\t%s\n", s.Score, s.Name)
	}
}
