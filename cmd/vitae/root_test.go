package main

import (
	"bytes"
	"strings"
	"testing"
)

// Required flags are enforced by cobra itself; a subcommand invoked without
// them never reaches its Run function.
func TestRequiredFlagsRejectCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Get Without ID", []string{"get"}, `required flag(s) "id" not set`},
		{"Export Without ID", []string{"export"}, `required flag(s) "id" not set`},
		{"Section Without Flags", []string{"update-section"}, "required flag(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if err == nil {
				t.Fatal("Execute() succeeded, want required-flag error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Execute() error = %q, want containing %q", err, tt.want)
			}
		})
	}
}
