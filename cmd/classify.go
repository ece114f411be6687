package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmail/internal/classifier"
	"github.com/spigell/jobmail/internal/logger"
	"github.com/spigell/jobmail/internal/mailfile"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single message and print the result as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), logger.WithOutput(logger.Stderr))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		if err := classify(cmd, cmd.OutOrStdout()); err != nil {
			logger.Fatal("classifying a message", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringP("subject", "s", "", "message subject")
	classifyCmd.Flags().StringP("body", "b", "", "message body")
	classifyCmd.Flags().String("sender", "", "sender address")
	classifyCmd.Flags().StringP("file", "f", "", "an .eml file to classify instead of the subject/body/sender flags")

	classifyCmd.MarkFlagsMutuallyExclusive("file", "subject")
	classifyCmd.MarkFlagsMutuallyExclusive("file", "body")
	classifyCmd.MarkFlagsMutuallyExclusive("file", "sender")
}

func classify(cmd *cobra.Command, w io.Writer) error {
	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	c, err := newClassifier(config)
	if err != nil {
		return err
	}

	in, err := classifyInput(cmd)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.Classify(in))
}

func classifyInput(cmd *cobra.Command) (classifier.Input, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("file")
	if path == "" {
		subject, _ := flags.GetString("subject")
		body, _ := flags.GetString("body")
		sender, _ := flags.GetString("sender")
		return classifier.Input{Subject: subject, Body: body, Sender: sender}, nil
	}

	msg, err := mailfile.ParseFile(path)
	if err != nil {
		return classifier.Input{}, err
	}

	body, err := msg.Body()
	if err != nil {
		return classifier.Input{}, fmt.Errorf("read body of %s: %w", path, err)
	}

	return classifier.Input{Subject: msg.Subject, Body: body, Sender: msg.Sender}, nil
}
