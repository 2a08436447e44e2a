package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	c, err := New(filepath.Join(dir, ".env"), filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("TESTKEY_FROM_FILE=secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TESTKEY_FROM_FILE", "") // registers cleanup
	os.Unsetenv("TESTKEY_FROM_FILE")

	c, err := New(envFile, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.APIKey("TESTKEY_FROM_FILE"); got != "secret" {
		t.Errorf("APIKey = %q, want %q", got, "secret")
	}
}

func TestNew_MissingEnvFileIsFine(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.env"), ""); err != nil {
		t.Fatalf("missing .env should not error: %v", err)
	}
}

func TestAPIKey_PrefixFallback(t *testing.T) {
	c := newTestConfig(t)
	t.Setenv("FAKEPROVIDER_API_KEY", "")
	os.Unsetenv("FAKEPROVIDER_API_KEY")
	t.Setenv("WORDFORGE_FAKEPROVIDER_API_KEY", "prefixed-key")

	if got := c.APIKey("FAKEPROVIDER_API_KEY"); got != "prefixed-key" {
		t.Errorf("APIKey = %q, want prefixed fallback", got)
	}
}

func TestAPIKey_PrimaryWinsOverPrefix(t *testing.T) {
	c := newTestConfig(t)
	t.Setenv("FAKEPROVIDER_API_KEY", "primary")
	t.Setenv("WORDFORGE_FAKEPROVIDER_API_KEY", "prefixed")

	if got := c.APIKey("FAKEPROVIDER_API_KEY"); got != "primary" {
		t.Errorf("APIKey = %q, want %q", got, "primary")
	}
}

func TestAPIKey_EmptyEnvVar(t *testing.T) {
	c := newTestConfig(t)
	if got := c.APIKey(""); got != "" {
		t.Errorf("APIKey(\"\") = %q, want empty", got)
	}
}

func TestSetAPIKey_CreatesAndUpdatesEnvFile(t *testing.T) {
	c := newTestConfig(t)
	t.Setenv("SETKEY_TEST_VAR", "")
	os.Unsetenv("SETKEY_TEST_VAR")

	if err := c.SetAPIKey("SETKEY_TEST_VAR", "first"); err != nil {
		t.Fatalf("SetAPIKey: %v", err)
	}
	if got := os.Getenv("SETKEY_TEST_VAR"); got != "first" {
		t.Errorf("env = %q, want %q", got, "first")
	}

	// A second write must preserve other keys.
	if err := c.SetAPIKey("OTHER_TEST_VAR", "other"); err != nil {
		t.Fatalf("SetAPIKey: %v", err)
	}
	values, err := os.ReadFile(c.EnvFile())
	if err != nil {
		t.Fatal(err)
	}
	content := string(values)
	if !strings.Contains(content, "SETKEY_TEST_VAR") || !strings.Contains(content, "OTHER_TEST_VAR") {
		t.Errorf("env file missing keys:\n%s", content)
	}
}

func TestWriteExample(t *testing.T) {
	c := newTestConfig(t)
	path, err := c.WriteExample()
	if err != nil {
		t.Fatalf("WriteExample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "CUSTOM_API_KEY", "CUSTOM_API_URL"} {
		if !strings.Contains(string(data), v) {
			t.Errorf("example env missing %s", v)
		}
	}
}

func TestPreferences_DefaultsWhenMissing(t *testing.T) {
	c := newTestConfig(t)
	prefs := c.Preferences()
	if prefs.DefaultProvider != "openrouter" {
		t.Errorf("DefaultProvider = %q", prefs.DefaultProvider)
	}
	if prefs.DefaultType != "password" {
		t.Errorf("DefaultType = %q", prefs.DefaultType)
	}
	if prefs.DefaultLength != 100 {
		t.Errorf("DefaultLength = %d", prefs.DefaultLength)
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	c := newTestConfig(t)
	want := Preferences{
		DefaultProvider: "anthropic",
		DefaultType:     "subdomain",
		DefaultLength:   250,
		AppendByDefault: true,
		DefaultModels:   map[string]string{"anthropic": "claude-opus-4-20250514"},
	}
	if err := c.SavePreferences(want); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	got := c.Preferences()
	if got.DefaultProvider != want.DefaultProvider || got.DefaultType != want.DefaultType ||
		got.DefaultLength != want.DefaultLength || got.AppendByDefault != want.AppendByDefault {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.DefaultModels["anthropic"] != "claude-opus-4-20250514" {
		t.Errorf("DefaultModels = %v", got.DefaultModels)
	}
}

func TestPreferences_CorruptFileFallsBack(t *testing.T) {
	c := newTestConfig(t)
	if err := os.MkdirAll(filepath.Dir(c.prefsFile), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.prefsFile, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if prefs := c.Preferences(); prefs.DefaultProvider != "openrouter" {
		t.Errorf("corrupt prefs should fall back to defaults, got %+v", prefs)
	}
}
