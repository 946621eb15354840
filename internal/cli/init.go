package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/config"
	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/store"
	"github.com/mrz1836/roadmap/internal/tui"
)

// newInitCmd creates the init command.
func newInitCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Scaffold a new backlog in the current directory",
		Long: `Create a .roadmap/ data directory with an empty root index and
empty bug and idea collections. The project name defaults to the
current directory name.

Examples:
  roadmap init              # project named after the directory
  roadmap init my-service   # explicit project name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to get working directory")
			}

			project := filepath.Base(cwd)
			if len(args) == 1 {
				project = args[0]
			}

			st, err := store.New(filepath.Join(cwd, constants.DataDirName))
			if err != nil {
				return err
			}
			if err := st.Init(project); err != nil {
				return err
			}

			if err := config.WriteDefault(filepath.Join(st.Root(), constants.ProjectConfigName)); err != nil {
				return err
			}

			logger := GetLogger()
			logger.Info().Str("project", project).Str("root", st.Root()).Msg("backlog initialized")

			out.Success("initialized backlog for " + project + " in " + constants.DataDirName + "/")
			return nil
		},
	}
}
