// SPDX-License-Identifier: MPL-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerEngine_Validate(t *testing.T) {
	t.Parallel()

	for _, valid := range []ContainerEngine{EngineAuto, EngineDocker, EnginePodman, "DOCKER", " podman "} {
		require.NoError(t, valid.Validate(), "value %q", valid)
	}

	err := ContainerEngine("lima").Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidContainerEngine)

	var typed *InvalidContainerEngineError
	require.ErrorAs(t, err, &typed)
	require.Equal(t, ContainerEngine("lima"), typed.Value)
}

func TestContainerEngine_Normalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, EngineDocker, ContainerEngine("  DoCkEr\t").Normalize())
	require.Equal(t, EnginePodman, ContainerEngine("PODMAN").Normalize())
	require.Equal(t, EngineAuto, ContainerEngine("   ").Normalize())
}
