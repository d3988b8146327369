package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/reoring/goschemes/codec"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=v0.1.0".
var Version = "dev"

// Info is printed by the version command.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

func (i Info) String() string { return i.Version }

func NewVersionCmd() *cobra.Command {
	var output string
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `goschemes version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" && output != "text" {
				return fmt.Errorf("output format must be text, yaml or json")
			}
			info := Info{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			out, err := codec.Marshal(info, codec.Format(output))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	versionCmd.Flags().StringVar(&output, "format", "yaml", "choose `text`, `yaml` or `json` format to print version info")
	return versionCmd
}
