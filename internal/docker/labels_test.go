package docker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLabels(t *testing.T) {
	t.Run("includes component when set", func(t *testing.T) {
		labels := BuildLabels("team-a", "run-1", "redis")
		assert.Equal(t, "true", labels[LabelProject])
		assert.Equal(t, "team-a", labels[LabelWorkspace])
		assert.Equal(t, "run-1", labels[LabelRunID])
		assert.Equal(t, "redis", labels[LabelComponent])
	})

	t.Run("omits component when empty", func(t *testing.T) {
		labels := BuildLabels("team-a", "run-1", "")
		_, exists := labels[LabelComponent]
		assert.False(t, exists)
	})
}

func TestGenerateRunID(t *testing.T) {
	id1 := GenerateRunID()
	id2 := GenerateRunID()

	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestRedisContainerName(t *testing.T) {
	assert.Equal(t, "seytic-redis", RedisContainerName(""))
	assert.Equal(t, "seytic-redis-team-a", RedisContainerName("team-a"))
}
