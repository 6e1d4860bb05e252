package config

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

const HelpMessage = `
Lapla telemetry dashboard

Usage:
  lapla [-mode dashboard] [-config-path config.yaml]
  migrate [-config-path config.yaml]

Flags:
  -mode         application mode (default "dashboard")
  -config-path  path to the YAML config file (default "config.yaml")
  -help         show this message

Every setting can also be given as an environment variable, e.g.
SERVER_PORT, PROVIDER_BASE_URL, CACHE_TTL, LLM_API_KEY, LOG_LEVEL.
Variables that are already set win over the YAML file.
`

func PrintHelp() {
	fmt.Printf("%s", HelpMessage)
}

const redacted = "********"

// PrintConfig writes the effective configuration with secrets masked.
func PrintConfig(cfg *Config) {
	secret := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return redacted
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("configuration")
	t.AppendHeader(table.Row{"Section", "Key", "Value"})
	t.AppendRows([]table.Row{
		{"app", "mode", cfg.Mode},
		{"server", "port", cfg.Server.Port},
		{"server", "read_timeout", cfg.Server.ReadTimeout},
		{"server", "write_timeout", cfg.Server.WriteTimeout},
		{"provider", "base_url", cfg.Provider.BaseURL},
		{"provider", "timeout", cfg.Provider.Timeout},
		{"provider", "requests_per_second", cfg.Provider.RequestsPerSecond},
		{"cache", "ttl", cfg.Cache.TTL},
		{"cache", "max_entries", cfg.Cache.MaxEntries},
		{"cache", "postgres_enabled", cfg.Cache.PostgresEnabled},
		{"database", "host", cfg.Database.Host + ":" + cfg.Database.Port},
		{"database", "password", secret(cfg.Database.Password)},
		{"llm", "api_key", secret(cfg.LLM.APIKey)},
		{"llm", "model", cfg.LLM.Model},
		{"dashboard", "seasons", fmt.Sprintf("%d..%d", cfg.Dashboard.FirstSeason, cfg.Dashboard.DefaultSeason)},
		{"dashboard", "sample_lap_count", cfg.Dashboard.SampleLapCount},
		{"dashboard", "replay_speed_up", cfg.Dashboard.ReplaySpeedUp},
		{"log", "level", cfg.Log.Level},
	})
	t.Render()
}
