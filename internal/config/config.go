package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

const (
	RendererANSI = "ansi"
	RendererGrid = "grid"
)

type View struct {
	BytesPerRow int    `toml:"bytes_per_row"`
	Renderer    string `toml:"renderer"`
}

type Theme struct {
	StatusForeground string `toml:"status_foreground"`
	StatusBackground string `toml:"status_background"`
	PromptForeground string `toml:"prompt_foreground"`
	MessageColor     string `toml:"message_color"`
	CursorBackground string `toml:"cursor_background"`
}

type Config struct {
	View  View  `toml:"view"`
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		View: View{
			BytesPerRow: 32,
			Renderer:    RendererANSI,
		},
		Theme: Theme{
			StatusForeground: "#000000",
			StatusBackground: "#FFFFFF",
			PromptForeground: "#FFFFFF",
			MessageColor:     "#FF5555",
			CursorBackground: "#AAAAAA",
		},
	}
}

func ConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "hexview.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "hexview", "hexview.toml")
}

// Load reads the config file, falling back to defaults when it does not
// exist. Keys missing from the file keep their default values.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.View.BytesPerRow < 1 {
		return fmt.Errorf("view.bytes_per_row must be positive, got %d", c.View.BytesPerRow)
	}
	switch c.View.Renderer {
	case RendererANSI, RendererGrid:
	default:
		return fmt.Errorf("view.renderer must be %q or %q, got %q", RendererANSI, RendererGrid, c.View.Renderer)
	}
	return nil
}

func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

func (c *Config) SaveFile(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Status  lipgloss.Style
	Prompt  lipgloss.Style
	Message lipgloss.Style
	Cursor  lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.StatusBackground)).
			Foreground(lipgloss.Color(theme.StatusForeground)),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.PromptForeground)),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.MessageColor)),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorBackground)).
			Foreground(lipgloss.Color("#000000")),
	}
}
