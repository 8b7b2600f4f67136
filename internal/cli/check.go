package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"letterrush/internal/model"
	"letterrush/internal/score"
)

var (
	checkCategory string
	checkLetter   string
	checkTimeout  time.Duration
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <answer>",
	Short: "Validate a single answer from the terminal",
	Long: `Check runs one answer through the full validation pipeline and prints
the verdict and the points it would score.

Example:
  letterrush check France --category Country --letter F
  letterrush check Flute --category "Musical Instrument" --letter F`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkCategory, "category", "", "game category (required)")
	checkCmd.Flags().StringVar(&checkLetter, "letter", "", "assigned letter (required)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", time.Minute, "overall check timeout")
	_ = checkCmd.MarkFlagRequired("category")
	_ = checkCmd.MarkFlagRequired("letter")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg.Log)
	defer func() { _ = log.Sync() }()

	validator := buildValidator(cfg, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	req := model.AnswerRequest{
		Category: checkCategory,
		Answer:   args[0],
		Letter:   checkLetter,
	}
	valid := validator.Check(ctx, req)

	if valid {
		fmt.Printf("✓ %q is a valid %s (%d points)\n",
			req.Answer, req.Category, score.Points(req.Answer, true))
	} else {
		fmt.Printf("✗ %q was not accepted for %s\n", req.Answer, req.Category)
	}

	return nil
}
