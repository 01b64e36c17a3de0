package cmd

import (
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			env := setupTest(t, "")
			defer ResetDeps()

			generateCompletion(shell)

			if env.exitCode != 0 {
				t.Errorf("exit code = %d, expected 0", env.exitCode)
			}
			if env.stdout.Len() == 0 {
				t.Error("no completion script written")
			}
			if !strings.Contains(env.stdout.String(), "allowance") {
				t.Error("completion script does not mention the binary name")
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	env := setupTest(t, "")
	defer ResetDeps()

	generateCompletion("tcsh")

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Unsupported shell 'tcsh'") {
		t.Errorf("missing error on stderr:\n%s", env.stderr.String())
	}
}
