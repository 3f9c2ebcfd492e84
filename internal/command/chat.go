package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/mentions/internal/chat"
	"github.com/adamavenir/mentions/internal/logger"
	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat input with @-mention suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return writeCommandError(cmd, fmt.Errorf("--json not supported for interactive chat"))
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			options, err := chatOptions(cmd, ctx)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			logFile, _ := cmd.Flags().GetString("log-file")
			if logFile == "" {
				logFile = ctx.Config.Log.File
			}
			logLevel, _ := cmd.Flags().GetString("log-level")
			if logLevel == "" {
				logLevel = ctx.Config.Log.Level
			}
			log, closer, err := logger.Open(logFile, AppName, logLevel)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer closer.Close()
			log.Info("chat started", "users", len(options.Users), "config", ctx.ConfigPath)
			options.Logger = log

			return chat.Run(options)
		},
	}

	cmd.Flags().StringSlice("users", nil, "override the candidate usernames")
	cmd.Flags().String("username", "", "name shown on sent messages")
	cmd.Flags().Bool("single-line", false, "disable newline insertion")
	cmd.Flags().Bool("ignore-case", false, "match usernames case-insensitively")
	cmd.Flags().String("log-file", "", "log file path (default "+logger.DefaultFile()+")")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, error")

	return cmd
}

// chatOptions merges command flags over the loaded config.
func chatOptions(cmd *cobra.Command, ctx *CommandContext) (chat.Options, error) {
	cfg := *ctx.Config

	if users, _ := cmd.Flags().GetStringSlice("users"); len(users) > 0 {
		cfg.Mentions.Users = users
		if err := cfg.Validate(); err != nil {
			return chat.Options{}, err
		}
	}
	if cmd.Flags().Changed("ignore-case") {
		cfg.Mentions.CaseInsensitive, _ = cmd.Flags().GetBool("ignore-case")
	}
	if singleLine, _ := cmd.Flags().GetBool("single-line"); singleLine {
		cfg.UI.Multiline = false
	}
	if username, _ := cmd.Flags().GetString("username"); strings.TrimSpace(username) != "" {
		cfg.UI.Username = strings.TrimSpace(username)
	}

	return chat.Options{
		Users:           cfg.Mentions.Users,
		Username:        cfg.UI.Username,
		Placeholder:     cfg.UI.Placeholder,
		Multiline:       cfg.UI.Multiline,
		MaxRows:         cfg.UI.MaxRows,
		CaseInsensitive: cfg.Mentions.CaseInsensitive,
	}, nil
}
