package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
)

func completionDeps(t *testing.T) (*bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	cli.SetDeps(&cli.Deps{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) { exitCode = code },
	})
	t.Cleanup(cli.ResetDeps)
	return stdout, stderr, &exitCode
}

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell  string
		marker string
	}{
		{"bash", "bash completion"},
		{"zsh", "#compdef"},
		{"fish", "complete -c pawlog"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			stdout, stderr, exitCode := completionDeps(t)

			generateCompletion(tt.shell)

			if *exitCode != 0 {
				t.Errorf("Expected exit code 0, got %d", *exitCode)
			}
			if stderr.String() != "" {
				t.Errorf("Expected no errors, got: %s", stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.marker) {
				t.Errorf("Expected %q in %s completion output", tt.marker, tt.shell)
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	stdout, stderr, exitCode := completionDeps(t)

	generateCompletion("tcsh")

	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
	if stdout.String() != "" {
		t.Errorf("Expected no output, got: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Unsupported shell 'tcsh'") {
		t.Errorf("Expected unsupported shell error, got: %s", stderr.String())
	}
}

func TestCompletionCommand_Args(t *testing.T) {
	if err := completionCmd.Args(completionCmd, []string{}); err == nil {
		t.Error("Expected error with no args")
	}
	if err := completionCmd.Args(completionCmd, []string{"bash", "zsh"}); err == nil {
		t.Error("Expected error with two args")
	}
	if err := completionCmd.Args(completionCmd, []string{"tcsh"}); err == nil {
		t.Error("Expected error for an invalid shell")
	}
	if err := completionCmd.Args(completionCmd, []string{"fish"}); err != nil {
		t.Errorf("Expected fish to be accepted, got %v", err)
	}
}

func TestLogCommand_ValidArgs(t *testing.T) {
	names, directive := logCmd.ValidArgsFunction(logCmd, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("Expected NoFileComp directive, got %v", directive)
	}
	want := "walk poop pish play sleep meal other"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFixedCompletion(t *testing.T) {
	values, _ := fixedCompletion("walk", "backyard")(logCmd, nil, "")
	if strings.Join(values, ",") != "walk,backyard" {
		t.Errorf("Unexpected completion values: %v", values)
	}
}
