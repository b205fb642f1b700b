package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	plain, err := ResolvePath("out/resty")
	require.NoError(t, err)
	require.Equal(t, "out/resty", plain)

	root, err := GetWorkspaceRoot()
	require.NoError(t, err)

	resolved, err := ResolvePath("<dev_state>/resty/gsmarena")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "resty", "gsmarena"), resolved)
}
