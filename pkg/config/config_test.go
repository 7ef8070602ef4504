package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8001" {
		t.Fatalf("unexpected port %s", cfg.Server.Port)
	}
	if cfg.Paths.UploadDir != "uploads" || cfg.Paths.OutputDir != "outputs" {
		t.Fatalf("unexpected dirs %+v", cfg.Paths)
	}
	if cfg.Paths.WorkDir != cfg.Paths.UploadDir {
		t.Fatalf("work dir should default to upload dir, got %s", cfg.Paths.WorkDir)
	}
	if cfg.Server.ProcessTimeout != 30*time.Minute {
		t.Fatalf("unexpected process timeout %s", cfg.Server.ProcessTimeout)
	}
	if cfg.Recognizer.Provider != "whisper" {
		t.Fatalf("unexpected recognizer %s", cfg.Recognizer.Provider)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("RECOGNIZER", "AssemblyAI")
	t.Setenv("ASSEMBLYAI_API_KEY", "key")
	t.Setenv("MAX_CONCURRENT_TRANSCRIPTIONS", "0")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("unexpected port %s", cfg.Server.Port)
	}
	if cfg.Recognizer.Provider != "assemblyai" {
		t.Fatalf("provider should be normalized, got %s", cfg.Recognizer.Provider)
	}
	if cfg.Recognizer.MaxConcurrent != 1 {
		t.Fatalf("max concurrent should be clamped to 1, got %d", cfg.Recognizer.MaxConcurrent)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_TranslatorDefaultFollowsGroqKey(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		groqKey  string
		want     string
	}{
		{name: "no key", want: "none"},
		{name: "groq key", groqKey: "gsk-test", want: "groq"},
		{name: "explicit groq without key", provider: "groq", want: "groq"},
		{name: "explicit none with key", provider: "None", groqKey: "gsk-test", want: "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("TRANSLATOR", tc.provider)
			t.Setenv("GROQ_API_KEY", tc.groqKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if cfg.Translator.Provider != tc.want {
				t.Fatalf("translator = %q, want %q", cfg.Translator.Provider, tc.want)
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"assemblyai without key": func(c *Config) { c.Recognizer.Provider = "assemblyai" },
		"unknown recognizer":     func(c *Config) { c.Recognizer.Provider = "vosk" },
		"unknown translator":     func(c *Config) { c.Translator.Provider = "deepl" },
		"google without key":     func(c *Config) { c.Translator.Provider = "google" },
		"unknown driver":         func(c *Config) { c.Database.Driver = "mysql" },
		"minio without bucket": func(c *Config) {
			c.Storage.Type = "minio"
			c.Storage.BucketName = ""
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	c := validConfig()
	c.Paths.UploadDir = root + "/u"
	c.Paths.OutputDir = root + "/o"
	c.Paths.WorkDir = root + "/w"
	if err := c.EnsureDirs(); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Paths:      PathsConfig{UploadDir: "uploads", OutputDir: "outputs"},
		Recognizer: RecognizerConfig{Provider: "whisper"},
		Translator: TranslatorConfig{Provider: "groq"},
		Database:   DatabaseConfig{Driver: "memory"},
		Storage:    StorageConfig{Type: "local", BucketName: "subtitles"},
	}
}
