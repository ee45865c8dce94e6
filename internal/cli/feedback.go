package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verinews/verinews/internal/feedback"
	"github.com/verinews/verinews/internal/model"
)

var (
	feedbackLabel   string
	feedbackComment string
	feedbackFile    string
)

// feedbackCmd represents the feedback command
var feedbackCmd = &cobra.Command{
	Use:   "feedback [text]",
	Short: "Report a misclassified text",
	Long: `Feedback records a text the classifier got wrong, together with the
label it should have received. Records are appended as JSON lines and
feed future retraining.

Example:
  verinews feedback --label real --comment "official statement" "新华社报道……"
  verinews feedback --label fake --file article.txt`,
	RunE: runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().StringVar(&feedbackLabel, "label", "", "actual label: real or fake (required)")
	feedbackCmd.Flags().StringVar(&feedbackComment, "comment", "", "optional free-text comment")
	feedbackCmd.Flags().StringVar(&feedbackFile, "file", "", "read the text from a file")
	_ = feedbackCmd.MarkFlagRequired("label")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	var label model.Label
	switch feedbackLabel {
	case "real":
		label = model.LabelReal
	case "fake":
		label = model.LabelFake
	default:
		return fmt.Errorf("invalid --label %q (expected real or fake)", feedbackLabel)
	}

	text, err := readFeedbackText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to report")
	}

	cfg := buildConfig()
	sink := feedback.NewJSONLSink(cfg.Feedback.Path)

	rec := model.NewFeedbackRecord(text, label, feedbackComment)
	if err := sink.Save(rec); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}

	fmt.Printf("✓ Feedback recorded (%s): %s\n", label, cfg.Feedback.Path)
	return nil
}

func readFeedbackText(args []string) (string, error) {
	if feedbackFile != "" {
		data, err := os.ReadFile(feedbackFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
