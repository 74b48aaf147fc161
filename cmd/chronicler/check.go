package main

import (
	"fmt"
	"strconv"
	"strings"

	"arctic-chronicler/internal/domain"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <mission-id> <answer>",
	Short: "Check an answer against a mission's reference value",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}

		missionID := args[0]
		spec, ok := cat.AnswerSpec(missionID)
		if !ok {
			return domain.NewMissionNotFoundError(missionID)
		}

		verdict := domain.Judge(domain.QuizSubmission{
			MissionID:  missionID,
			UserAnswer: strings.Join(args[1:], " "),
		}, spec)

		out := cmd.OutOrStdout()
		switch {
		case !verdict.Parsed():
			fmt.Fprintf(out, "unparsable: %q is not a number\n", verdict.RawAnswer)
		case verdict.Correct:
			fmt.Fprintf(out, "correct: %s %s (reference %s, ±%.0f%%)\n",
				formatNumber(verdict.UserAnswer), spec.Unit, formatNumber(spec.ReferenceAnswer), spec.ToleranceRatio*100)
		default:
			fmt.Fprintf(out, "incorrect: %s %s (reference %s, ±%.0f%%)\n",
				formatNumber(verdict.UserAnswer), spec.Unit, formatNumber(spec.ReferenceAnswer), spec.ToleranceRatio*100)
		}
		return nil
	},
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
