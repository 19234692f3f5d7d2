package testutils

import (
	"os"
	"strings"
	"testing"
)

// ResetEnv empties the environment for the duration of a test,
// restoring it afterwards.
func ResetEnv(t *testing.T) {
	t.Helper()

	environ := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		for _, env := range environ {
			k, v, _ := strings.Cut(env, "=")
			os.Setenv(k, v)
		}
	})
}
