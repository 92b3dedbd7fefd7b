package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/moonbase-cli/internal/quiz"
	"github.com/KaramelBytes/moonbase-cli/internal/utils"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Astronaut trait questionnaire",
}

var quizScoreCmd = &cobra.Command{
	Use:   "score <answers.json>",
	Short: "Score a JSON answer sheet into a four-letter type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		answers, err := decodeAnswers(data)
		if err != nil {
			return err
		}
		res, err := quiz.Score(answers)
		if err != nil {
			return err
		}
		b, err := utils.PrettyJSON(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

// decodeAnswers accepts either a bare array or {"answers": [...]}.
func decodeAnswers(data []byte) ([]quiz.Answer, error) {
	var list []quiz.Answer
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Answers []quiz.Answer `json:"answers"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return wrapped.Answers, nil
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.AddCommand(quizScoreCmd)
}
