package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resumescreener/internal/logger"
	"resumescreener/internal/report"
	"resumescreener/internal/screening"
	"resumescreener/internal/services"
)

var (
	keywords   string
	skills     string
	minYears   string
	education  string
	reportPath string
	workers    int
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "screenctl",
	Short: "Screen a directory of resumes against hiring criteria",
	Long: `screenctl runs the resume screening engine over local files:
it extracts text from each PDF or DOCX resume, scores it against the
given keywords, skills, minimum experience and education terms, prints
the ranked batch and appends the results to the durable CSV report.`,
}

var screenCmd = &cobra.Command{
	Use:   "screen DIR",
	Short: "Score and rank every resume in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&keywords, "keywords", "", "comma-separated keywords")
	screenCmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	screenCmd.Flags().StringVar(&minYears, "min-years", "0", "minimum years of experience")
	screenCmd.Flags().StringVar(&education, "education", "", "comma-separated education terms")
	screenCmd.Flags().StringVar(&reportPath, "report", "report.csv", "path of the CSV report to append to")
	screenCmd.Flags().IntVar(&workers, "workers", 4, "concurrent extraction workers")
	screenCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-file extraction timeout")
	screenCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(screenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScreen(cmd *cobra.Command, args []string) error {
	zlog := zap.NewNop()
	if verbose {
		var err error
		zlog, err = logger.New(false, true)
		if err != nil {
			return err
		}
		defer zlog.Sync()
	}

	docs, err := loadResumes(args[0])
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no PDF or DOCX resumes found in %s", args[0])
	}

	criteria := screening.ParseCriteria(keywords, skills, minYears, education)
	engine := screening.NewEngine(services.NewTextExtractor(), workers, timeout, zlog)

	results, err := engine.Screen(context.Background(), criteria, docs)
	if err != nil {
		return err
	}

	printResults(results)

	store := report.NewCSVStore(reportPath)
	summary, err := store.Append(results)
	if err != nil {
		return fmt.Errorf("ranked results computed but report not saved: %w", err)
	}
	if summary.Warning != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", summary.Warning)
	}

	fmt.Printf("\nReport: %s (%d prior rows, %d total)\n",
		summary.Path, summary.PriorRows, summary.TotalRows)
	return nil
}

// loadResumes collects every supported resume in the directory, sorted by
// name so repeated runs submit the batch in the same order.
func loadResumes(dir string) ([]screening.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !services.SupportedFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]screening.Document, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", name, err)
			continue
		}
		docs = append(docs, screening.Document{ID: name, Data: data})
	}

	return docs, nil
}

func printResults(results []screening.ScoreResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFILE\tSCORE\tYEARS\tKEYWORDS\tSKILLS\tEDUCATION\tNOTES")

	for i, r := range results {
		notes := ""
		if r.ExtractionErr != "" {
			notes = "extraction failed"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d\t%d\t%d\t%s\n",
			i+1,
			r.CandidateID,
			scoreString(r.Score),
			r.Years,
			len(r.KeywordsFound),
			len(r.SkillsFound),
			len(r.EducationFound),
			notes,
		)
	}

	tw.Flush()
}

func scoreString(score float64) string {
	switch {
	case score >= 20:
		return color.GreenString("%.2f", score)
	case score >= 10:
		return color.YellowString("%.2f", score)
	default:
		return color.RedString("%.2f", score)
	}
}
