package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docsift/internal/config"
	"docsift/internal/llm"
)

var (
	configPath    string
	secretPath    string
	modelOverride string
	debug         bool

	cfg    *config.Config
	client llm.Client
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Content-aware PDF housekeeping",
	Long: `docsift fingerprints the lead text of PDF documents and uses a
language model to find content duplicates or to generate descriptive
file names.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		if err := godotenv.Load(); err != nil {
			logrus.Debug("No .env file found")
		}

		initLogging()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if modelOverride != "" {
			cfg.LLM.Model = modelOverride
		}
		if err := cfg.ResolveAPIKey(secretPath); err != nil {
			return err
		}

		client, err = llm.NewClient(cmd.Context(), cfg.LLM)
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "docsift.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&secretPath, "secret", ".secret", "path to the JSON secret file holding the API key")
	rootCmd.PersistentFlags().StringVar(&modelOverride, "model", "", "model to use for this run (overrides [llm].model)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

type runIDHook struct {
	id string
}

func (h runIDHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h runIDHook) Fire(e *logrus.Entry) error {
	e.Data["run_id"] = h.id
	return nil
}

func initLogging() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.AddHook(runIDHook{id: uuid.NewString()})
}
