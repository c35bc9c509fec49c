package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

var (
	feedbackReward     float64
	feedbackNextLetter string
	feedbackNextLevel  int
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback <state-key> <action>",
	Short: "Report the outcome of a recommendation",
	Long:  "Reward is +1 for a correct response, 0 for partial or skipped, -1 for incorrect.",
	Args:  cobra.ExactArgs(2),
	RunE:  runFeedback,
}

func init() {
	feedbackCmd.Flags().Float64VarP(&feedbackReward, "reward", "w", 0, "observed reward")
	feedbackCmd.Flags().StringVar(&feedbackNextLetter, "next-letter", "", "letter the learner is on now")
	feedbackCmd.Flags().IntVar(&feedbackNextLevel, "next-level", 0, "mastery level of that letter (0-2)")
	feedbackCmd.MarkFlagRequired("reward")
	feedbackCmd.MarkFlagRequired("next-letter")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	client := socket.NewClient(socket.SocketPath(dataDir()))
	if !client.Ping() {
		return fmt.Errorf("daemon is not running (try: alphabet daemon start)")
	}

	reward := feedbackReward
	level := feedbackNextLevel
	result, err := client.Feedback(socket.FeedbackParams{
		StateKey:  args[0],
		Action:    args[1],
		Reward:    &reward,
		NextState: &socket.NextState{Letter: feedbackNextLetter, MasteryLevel: &level},
	})
	if err != nil {
		return err
	}

	fmt.Printf("ok │ %s[%s] = %.3f\n", args[0], args[1], result.Value)
	return nil
}
