package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file. The file may contain // and /* */ comments as
// well as trailing commas; it is converted to strict JSON before decoding.
type StructuredJSONConfig struct {
	App struct {
		Name               string `json:"name"`
		Version            string `json:"version"`
		BaseURL            string `json:"base_url"`
		Token              string `json:"token"`
		DefaultURL         string `json:"default_url"`
		StaticDir          string `json:"static_dir"`
		ConfigDir          string `json:"config_dir"`
		MathjaxURL         string `json:"mathjax_url"`
		MathjaxConfig      string `json:"mathjax_config"`
		ExposeAppInBrowser bool   `json:"expose_app_in_browser"`
		NoCustomCSS        bool   `json:"no_custom_css"`
	} `json:"app,omitempty"`

	Content struct {
		RootDir      string `json:"root_dir"`
		PreferredDir string `json:"preferred_dir"`
		AllowHidden  bool   `json:"allow_hidden"`
	} `json:"content,omitempty"`

	Extensions struct {
		Paths []string `json:"paths"`
	} `json:"extensions,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		TerminalsAvailable bool     `json:"terminals_available"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(jsonc.ToJSON(raw), &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:               jsonCfg.App.Name,
			Version:            jsonCfg.App.Version,
			BaseURL:            jsonCfg.App.BaseURL,
			Token:              jsonCfg.App.Token,
			DefaultURL:         jsonCfg.App.DefaultURL,
			StaticDir:          jsonCfg.App.StaticDir,
			ConfigDir:          jsonCfg.App.ConfigDir,
			MathjaxURL:         jsonCfg.App.MathjaxURL,
			MathjaxConfig:      jsonCfg.App.MathjaxConfig,
			ExposeAppInBrowser: jsonCfg.App.ExposeAppInBrowser,
			NoCustomCSS:        jsonCfg.App.NoCustomCSS,
		},
		Content: Content{
			RootDir:      jsonCfg.Content.RootDir,
			PreferredDir: jsonCfg.Content.PreferredDir,
			AllowHidden:  jsonCfg.Content.AllowHidden,
		},
		Extensions: Extensions{
			Paths: jsonCfg.Extensions.Paths,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			TerminalsAvailable: jsonCfg.Server.TerminalsAvailable,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
