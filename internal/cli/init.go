package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/nerdcli/internal/config"
	"github.com/llehouerou/nerdcli/internal/errmsg"
)

func newInitCommand() *cobra.Command {
	var (
		yes bool
		dir string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration and sample quotes",
		Long: `Write nerdcli.toml, sample quote files and an empty images directory
into the configuration directory. Existing files are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := dir
			if target == "" {
				target = config.DefaultDir()
			}
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), out,
					fmt.Sprintf("Create the default configuration in %s? [y/N] ", target))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			written, err := config.WriteDefaults(target)
			if err != nil {
				return errmsg.WrapWith(errmsg.OpConfigCreate, target, err)
			}
			if len(written) == 0 {
				logger.Info("configuration already present", "dir", target)
				return nil
			}
			for _, f := range written {
				logger.Info("created", "file", f)
			}
			fmt.Fprintf(out, "Put your pictures into %s\n", filepath.Join(target, "images"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	cmd.Flags().StringVar(&dir, "dir", "", "target directory (default: the XDG config directory)")
	return cmd
}

// confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
