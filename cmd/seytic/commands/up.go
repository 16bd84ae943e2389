package commands

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/go-connections/nat"
	"github.com/spf13/cobra"

	"github.com/seytic/seytic/internal/config"
	dockerpkg "github.com/seytic/seytic/internal/docker"
	"github.com/seytic/seytic/internal/printer"
)

var (
	upPort       int
	upRedisImage string
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start a local Redis container for Seytic",
	Long: `Start a labeled Redis container to hold Seytic state.

The container is named after the workspace in seytic.yml and labeled so
'seytic down' can find and remove it. If the container is already running
the command reports it and exits.

Examples:
  # Start Redis on the default port
  seytic up

  # Start Redis on a custom port
  seytic up --port 6380`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().IntVar(&upPort, "port", 6379, "Host port to publish Redis on")
	upCmd.Flags().StringVar(&upRedisImage, "image", "redis:7-alpine", "Redis image to run")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
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

	containerName := dockerpkg.RedisContainerName(cfg.Workspace)

	// Bail out if the container already exists.
	existingFilters := filters.NewArgs()
	existingFilters.Add("name", containerName)
	existing, err := cli.ContainerList(ctx, container.ListOptions{All: true, Filters: existingFilters})
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}
	if len(existing) > 0 {
		return printer.Error(
			fmt.Sprintf("container '%s' already exists", containerName),
			"A Seytic Redis container for this workspace is already present.",
			[]string{
				"Remove it first:\n  seytic down",
				"Or point seytic.yml at it and start working",
			},
		)
	}

	runID := dockerpkg.GenerateRunID()
	labels := dockerpkg.BuildLabels(cfg.Workspace, runID, "redis")
	labels[dockerpkg.LabelRedisPort] = fmt.Sprintf("%d", upPort)

	printer.Step("Starting Redis container %s...\n", containerName)

	resp, err := cli.ContainerCreate(ctx, &container.Config{
		Image:  upRedisImage,
		Labels: labels,
	}, &container.HostConfig{
		PortBindings: nat.PortMap{
			"6379/tcp": []nat.PortBinding{
				{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%d", upPort)},
			},
		},
	}, nil, nil, containerName)
	if err != nil {
		return fmt.Errorf("failed to create Redis container: %w", err)
	}

	if err := cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start Redis container: %w", err)
	}

	printer.Success("Started Redis container: %s (port %d)\n", containerName, upPort)
	printer.Info("\nNext steps:\n")
	printer.Info("  seytic signup --email you@example.com --name You\n")
	printer.Info("  seytic add --title \"My first ticket\"\n")

	return nil
}
