package command

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())

	if isMissingConfig(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Hint: create one with: mentions config init")
	}

	return err
}

func isMissingConfig(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
