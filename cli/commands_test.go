package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ka2n/ppa/api"
	"github.com/ka2n/ppa/config"
	"github.com/morikuni/failure/v2"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestFieldsCommand(t *testing.T) {
	got, err := runCmd(t, "fields")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header and 12 fields, got %d lines:\n%s", len(lines), got)
	}
	for _, want := range []string{
		"  gene_data\n",
		"  evidence               (list, default)\n",
		"  tags                   (list)\n",
		"  mode_of_inheritance    (default)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(got, "ppa version "+api.Version+"\n") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".ppa.yaml")

	got, err := runCmd(t, "--config", cfgPath, "config", "set", "fields", "evidence,panel")
	if err != nil {
		t.Fatalf("config set error: %v", err)
	}
	if want := "Set fields = evidence,panel in " + cfgPath + "\n"; got != want {
		t.Errorf("config set output = %q, want %q", got, want)
	}

	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err = runCmd(t, "--config", cfgPath, "config", "get", "fields")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if got != "evidence,panel\n" {
		t.Errorf("config get output = %q", got)
	}

	got, err = runCmd(t, "--config", cfgPath, "config")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(got, "fields: evidence,panel") {
		t.Errorf("config show output missing fields:\n%s", got)
	}

	if _, err := runCmd(t, "--config", cfgPath, "config", "get", "colour"); err == nil {
		t.Error("Expected error for unknown key, got nil")
	}
}

func TestConfigSetInvalidTimeout(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".ppa.yaml")

	got, err := runCmd(t, "--config", cfgPath, "config", "set", "timeout", "10")
	if !failure.Is(err, config.ErrInvalidValue) {
		t.Fatalf("Expected error %v, got %v", config.ErrInvalidValue, err)
	}
	if got != "" {
		t.Errorf("unexpected output %q", got)
	}
	if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
		t.Errorf("config file written for an invalid value: %v", err)
	}
}

func TestConfiguredFieldsAreUsed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".ppa.yaml")
	if err := os.WriteFile(cfgPath, []byte("fields: colour\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := runCmd(t, "--config", cfgPath, "-g", "BRCA1")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(got, `Invalid field specified: "colour".`) {
		t.Errorf("configured fields were not validated, output %q", got)
	}
}
