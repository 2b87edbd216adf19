package main

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

// executeCommand runs rootCmd in-process with args and returns everything it printed.
// Flag variables are package-level, so every flag is reset to its default first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
