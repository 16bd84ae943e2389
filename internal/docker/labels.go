package docker

import (
	"fmt"

	"github.com/google/uuid"
)

// Label keys used for Seytic resources
const (
	LabelProject   = "seytic.project"
	LabelWorkspace = "seytic.workspace"
	LabelRunID     = "seytic.run_id"
	LabelComponent = "seytic.component"
	LabelRedisPort = "seytic.redis.port"
)

// BuildLabels creates the standard label set for Seytic-managed resources.
// Component is resource-specific and may be empty.
func BuildLabels(workspace, runID, component string) map[string]string {
	labels := map[string]string{
		LabelProject:   "true",
		LabelWorkspace: workspace,
		LabelRunID:     runID,
	}

	if component != "" {
		labels[LabelComponent] = component
	}

	return labels
}

// GenerateRunID creates a new UUID for a service run.
// Each invocation of `seytic up` gets a unique run ID.
func GenerateRunID() string {
	return uuid.New().String()
}

// RedisContainerName returns the Redis container name for a workspace.
// The empty workspace uses the shared default container.
func RedisContainerName(workspace string) string {
	if workspace == "" {
		return "seytic-redis"
	}
	return fmt.Sprintf("seytic-redis-%s", workspace)
}
