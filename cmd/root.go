// Package cmd implements the command-line interface for tubescribe.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubescribe-cli/tubescribe/batch"
	"github.com/tubescribe-cli/tubescribe/color"
	"github.com/tubescribe-cli/tubescribe/constant"
	"github.com/tubescribe-cli/tubescribe/extract"
	"github.com/tubescribe-cli/tubescribe/fault"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/key"
	"github.com/tubescribe-cli/tubescribe/log"
	"github.com/tubescribe-cli/tubescribe/open"
	"github.com/tubescribe-cli/tubescribe/provider/youtube"
	"github.com/tubescribe-cli/tubescribe/retry"
	"github.com/tubescribe-cli/tubescribe/save"
	"github.com/tubescribe-cli/tubescribe/style"
	"github.com/tubescribe-cli/tubescribe/util"
	"github.com/tubescribe-cli/tubescribe/validate"
)

func init() {
	rootCmd.Flags().StringP("url", "u", "", "Video URL to extract the transcript for")
	rootCmd.Flags().StringP("batch", "b", "", "Path to a file containing video URLs, one per line")
	rootCmd.MarkFlagsMutuallyExclusive("url", "batch")

	rootCmd.Flags().StringP("lang", "l", "", "ISO 639-1 language code of the transcript to retrieve")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("lang", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return validate.Languages, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("report", "r", "", "Write a JSON report of per-item outcomes to the given file (batch mode)")

	rootCmd.Flags().BoolP("open", "o", false, "Open the saved transcript with the default system handler")

	rootCmd.Flags().IntP("workers", "w", 8, "Number of concurrent batch workers")
	lo.Must0(viper.BindPFlag(key.BatchWorkers, rootCmd.Flags().Lookup("workers")))
}

// rootCmd defines the entry point for the tubescribe application.
var rootCmd = &cobra.Command{
	Use:   constant.Tubescribe,
	Short: "Extract video transcripts from the command line",
	Long: "Retrieve caption transcripts for videos and persist them as sanitized text files\n" +
		"in the working directory, one video at a time or as a concurrent batch.",
	Example: "  tubescribe --url https://www.youtube.com/watch?v=dQw4w9WgXcQ --lang en\n" +
		"  tubescribe --batch urls.txt --report report.json",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("url") && !cmd.Flags().Changed("batch") {
			handleErr(errors.New("either --url or --batch is required"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		lang, err := validate.Language(lo.Must(cmd.Flags().GetString("lang")))
		if err != nil {
			handleErr(suggestLanguage(err))
		}

		yt := youtube.New()
		ex := extract.New(yt, yt, retryPolicy())

		if path := lo.Must(cmd.Flags().GetString("batch")); path != "" {
			runBatch(cmd, ex, path, lang)
			return
		}

		runSingle(cmd, ex, lo.Must(cmd.Flags().GetString("url")), lang)
	},
}

// retryPolicy builds the transient-failure policy from configuration.
func retryPolicy() retry.Policy {
	return retry.Policy{
		Interval:  viper.GetDuration(key.RetryInterval),
		Window:    viper.GetDuration(key.RetryWindow),
		Retryable: fault.Retryable,
	}
}

// runSingle drives the single-item path: one retrieval, one output file,
// one diagnostic and mapped exit code on failure.
func runSingle(cmd *cobra.Command, ex *extract.Extractor, rawURL string, lang mo.Option[string]) {
	log.Infof("extracting transcript for %s", rawURL)
	eraser := util.PrintErasable("Working ...")

	result, err := ex.Run(context.Background(), rawURL, lang)
	eraser()
	handleErr(err)

	path, err := save.Transcript(result.Title, result.Text)
	handleErr(err)

	log.Infof("transcript saved to %s", path)
	fmt.Printf("%s %s\n", style.Fg(color.Green)("✓"), path)

	if lo.Must(cmd.Flags().GetBool("open")) {
		handleErr(open.Start(path))
	}
}

// runBatch drives the batch path. Structural failures abort with exit code 1;
// per-item outcomes never affect the exit status.
func runBatch(cmd *cobra.Command, ex *extract.Extractor, path string, lang mo.Option[string]) {
	log.Warn("batch processing is experimental and may be unstable")

	urls, skipped, err := batch.Parse(path)
	handleErr(err)

	log.Infof("processing %s from %s", util.Quantify(len(urls), "URL", "URLs"), path)
	outcomes := batch.Run(context.Background(), ex, urls, lang)
	report := batch.Summarize(path, outcomes, skipped)

	if target := lo.Must(cmd.Flags().GetString("report")); target != "" {
		resolved, err := util.SanitizePath(target)
		handleErr(err)
		data, err := report.Json()
		handleErr(err)
		handleErr(filesystem.WriteRestricted(resolved, data))
		log.Infof("batch report written to %s", resolved)
	}

	printSummary(report)
}

func printSummary(report *batch.Report) {
	width := 80
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = w
	}
	trim := style.Truncate(width)

	for _, item := range report.Items {
		if item.Error != "" {
			fmt.Println(trim(fmt.Sprintf("%s %s: %s", style.Fg(color.Red)("✗"), item.Input, item.Error)))
		} else {
			fmt.Println(trim(fmt.Sprintf("%s %s", style.Fg(color.Green)("✓"), item.File)))
		}
	}

	fmt.Printf("%s, %s, %s\n",
		style.Fg(color.Green)(util.Quantify(report.Succeeded, "transcript saved", "transcripts saved")),
		style.Fg(color.Red)(util.Quantify(report.Failed, "failure", "failures")),
		style.Faint(util.Quantify(report.Skipped, "line skipped", "lines skipped")),
	)
}

// suggestLanguage augments an unsupported-language error with the closest allow-listed code.
func suggestLanguage(err error) error {
	var classified *fault.Error
	if !errors.As(err, &classified) || classified.Kind != fault.UnsupportedLanguage {
		return err
	}

	closest := lo.MinBy(validate.Languages, func(a string, b string) bool {
		return levenshtein.Distance(classified.Input, a) < levenshtein.Distance(classified.Input, b)
	})
	classified.Message = fmt.Sprintf("%s, did you mean %s?", classified.Message, style.Fg(color.Yellow)(closest))
	return classified
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(fault.ExitCode(err))
	}
}
