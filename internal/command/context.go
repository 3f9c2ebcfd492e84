package command

import (
	"github.com/adamavenir/mentions/internal/config"
	"github.com/spf13/cobra"
)

// CommandContext carries what every subcommand needs.
type CommandContext struct {
	Config     *config.Config
	ConfigPath string
	JSONMode   bool
}

// GetContext loads the config named by --config, or the default one.
func GetContext(cmd *cobra.Command) (*CommandContext, error) {
	path, _ := cmd.Flags().GetString("config")
	jsonMode, _ := cmd.Flags().GetBool("json")

	cfg, loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Config:     cfg,
		ConfigPath: loaded,
		JSONMode:   jsonMode,
	}, nil
}
