package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("PROVIDER_BASE_URL")
	_ = os.Unsetenv("PROVIDER_TIMEOUT_SECONDS")
	_ = os.Unsetenv("PROVIDER_USER_AGENT")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Provider.BaseURL != "https://query1.finance.yahoo.com" {
		t.Fatalf("unexpected provider base URL: %q", AppConfig.Provider.BaseURL)
	}
	if AppConfig.Provider.Timeout != 10*time.Second {
		t.Fatalf("unexpected provider timeout: %v", AppConfig.Provider.Timeout)
	}
	if AppConfig.Provider.UserAgent == "" {
		t.Fatalf("expected a default user agent")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROVIDER_BASE_URL", "http://localhost:18080")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "3")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Provider.BaseURL != "http://localhost:18080" {
		t.Fatalf("expected base URL override, got %q", AppConfig.Provider.BaseURL)
	}
	if AppConfig.Provider.Timeout != 3*time.Second {
		t.Fatalf("expected timeout override, got %v", AppConfig.Provider.Timeout)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
