package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.faultline.dev/faultline/internal/app"
	"go.faultline.dev/faultline/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		vars        []string
		secretsFile string
		journalPath string
	)

	cmd := &cobra.Command{
		Use:   "run [experiment file]",
		Short: "Run an experiment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "experiment.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			overrides, err := parseVars(vars)
			if err != nil {
				return err
			}

			secrets, err := readSecrets(secretsFile)
			if err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				ExperimentPath: path,
				Vars:           overrides,
				Secrets:        secrets,
				JournalPath:    journalPath,
			})
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Configuration override in key=value form (repeatable)")
	cmd.Flags().StringVar(&secretsFile, "secret-file", "", "Path to a YAML file with secret values")
	cmd.Flags().StringVar(&journalPath, "journal", "journal.json", "Where to write the run journal")

	return cmd
}

func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, zerr.With(zerr.New("invalid --var, expected key=value"), "var", pair)
		}
		vars[k] = v
	}
	return vars, nil
}

func readSecrets(path string) (domain.Secrets, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read secrets file")
	}
	var secrets domain.Secrets
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, zerr.Wrap(err, "failed to parse secrets file")
	}
	return secrets, nil
}
