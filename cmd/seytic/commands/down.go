package commands

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/config"
	dockerpkg "github.com/seytic/seytic/internal/docker"
	"github.com/seytic/seytic/internal/printer"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop the Seytic Redis container",
	Long: `Stop and remove the Redis container started by 'seytic up' for the
current workspace. Ticket data inside the container is lost unless the
image was configured with persistence.

The command does not prompt for confirmation and executes immediately.`,
	RunE: runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return err
	}

	cli, err := dockerpkg.NewClient(ctx)
	if err != nil {
		return err
	}
	defer cli.Close()

	// Find the workspace's labeled containers.
	containerFilters := filters.NewArgs()
	containerFilters.Add("label", fmt.Sprintf("%s=true", dockerpkg.LabelProject))
	containerFilters.Add("label", fmt.Sprintf("%s=%s", dockerpkg.LabelWorkspace, cfg.Workspace))

	containers, err := cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: containerFilters,
	})
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}

	if len(containers) == 0 {
		return printer.Error(
			"no Seytic containers found",
			"Nothing to stop for this workspace.",
			[]string{"Start one first:\n  seytic up"},
		)
	}

	// Stop containers (10s graceful timeout), then remove.
	timeout := 10
	for _, c := range containers {
		containerName := c.Names[0]
		printer.Step("Stopping %s...\n", containerName)
		if err := cli.ContainerStop(ctx, c.ID, container.StopOptions{Timeout: &timeout}); err != nil {
			// Container might already be stopped - continue
			printer.Warning("failed to stop %s: %v\n", containerName, err)
		}
	}

	for _, c := range containers {
		containerName := c.Names[0]
		printer.Step("Removing %s...\n", containerName)
		if err := cli.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true, RemoveVolumes: true}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", containerName, err)
		}
	}

	printer.Success("Seytic Redis stopped\n")

	return nil
}
