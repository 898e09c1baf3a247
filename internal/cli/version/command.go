package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/crmarques/nfvctl/internal/cli/common"
	"github.com/crmarques/nfvctl/server"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// supportedAPIVersions is the server API range this client speaks.
const supportedAPIVersions = ">= 1.0, < 2.0"

type info struct {
	Version   string      `json:"version" yaml:"version"`
	Commit    string      `json:"commit" yaml:"commit"`
	BuildDate string      `json:"build_date" yaml:"build_date"`
	Server    *serverInfo `json:"server,omitempty" yaml:"server,omitempty"`
}

type serverInfo struct {
	APIVersion string `json:"api_version" yaml:"api_version"`
	Status     string `json:"status" yaml:"status"`
	Supported  bool   `json:"supported" yaml:"supported"`
}

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var queryServer bool

	command := &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value := info{Version: Version, Commit: Commit, BuildDate: BuildDate}
			if queryServer {
				client, err := common.RequireClient(deps)
				if err != nil {
					return err
				}
				versions, err := client.APIVersions(cmd.Context())
				if err != nil {
					return err
				}
				value.Server, err = currentServerVersion(versions)
				if err != nil {
					return err
				}
			}

			return common.WriteOutput(cmd, globalFlags.Output, value, func(w io.Writer, item info) error {
				if _, err := fmt.Fprintf(w, "%s (%s) %s\n", item.Version, item.Commit, item.BuildDate); err != nil {
					return err
				}
				if item.Server == nil {
					return nil
				}
				support := "supported"
				if !item.Server.Supported {
					support = "unsupported"
				}
				_, err := fmt.Fprintf(w, "server API %s (%s, %s)\n", item.Server.APIVersion, item.Server.Status, support)
				return err
			})
		},
	}

	command.Flags().BoolVar(&queryServer, "server", false, "also query the server API version")
	return command
}

// currentServerVersion picks the CURRENT entry, or the highest version when
// the server marks none as current.
func currentServerVersion(versions []server.APIVersion) (*serverInfo, error) {
	if len(versions) == 0 {
		return nil, common.ValidationError("server did not report any API version", nil)
	}

	constraint, err := semver.NewConstraint(supportedAPIVersions)
	if err != nil {
		return nil, err
	}

	var selected *server.APIVersion
	var selectedVersion *semver.Version
	for idx := range versions {
		candidate := &versions[idx]
		parsed, parseErr := semver.NewVersion(strings.TrimSpace(candidate.ID))
		if parseErr != nil {
			continue
		}
		if strings.EqualFold(candidate.Status, "CURRENT") {
			selected, selectedVersion = candidate, parsed
			break
		}
		if selectedVersion == nil || parsed.GreaterThan(selectedVersion) {
			selected, selectedVersion = candidate, parsed
		}
	}
	if selected == nil {
		return nil, common.ValidationError(fmt.Sprintf("server reported no parseable API version (first: %q)", versions[0].ID), nil)
	}

	return &serverInfo{
		APIVersion: selected.ID,
		Status:     selected.Status,
		Supported:  constraint.Check(selectedVersion),
	}, nil
}
