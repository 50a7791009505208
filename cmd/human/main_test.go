package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("human %v: %v", args, err)
	}
	return buf.String()
}

func TestBytesCmd(t *testing.T) {
	if got, want := run(t, "bytes", "64 KiB"), "bytes = 65536\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDurationCmd(t *testing.T) {
	if got, want := run(t, "duration", "1h30m"), "nanoseconds = 5400000000000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTimeCmd(t *testing.T) {
	if got, want := run(t, "time", "1970-01-01T00:00:01.5Z"), "unix = 1.500000000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTimeCmd_Since(t *testing.T) {
	got := run(t, "time", "--since", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	if want := "elapsed = 86400.000000000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestQuiet(t *testing.T) {
	viper.Set("quiet", true)
	defer viper.Set("quiet", false)

	if got, want := run(t, "bytes", "1 KB"), "1000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestParseFailureExitsNonZero(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"bytes", "0.5 EB"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute succeeded for an invalid literal")
	}
}
