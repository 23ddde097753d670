package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv gives a test explicit control over every color- and
// CI-related environment variable, so results do not depend on the machine
// running the tests. NO_COLOR is existence-checked by the code under test,
// so it must be truly unset rather than set to empty.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	existenceCheckedVars := []string{"NO_COLOR"}

	valueCheckedVars := []string{
		"CLICOLOR_FORCE", "TERM",
		"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "TRAVIS",
		"CIRCLECI", "JENKINS_URL", "GITLAB_CI", "BUILDKITE", "DRONE",
	}

	for _, v := range existenceCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			unsetenv(t, v)
		}
	}

	for _, v := range valueCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "") // Empty is treated as unset for these variables
		}
	}
}

// unsetenv removes a variable for the duration of the test, restoring the
// original value afterwards. t.Setenv cannot express "unset".
func unsetenv(t *testing.T, key string) {
	t.Helper()

	original, existed := os.LookupEnv(key)
	if !existed {
		return
	}
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		_ = os.Setenv(key, original)
	})
}
