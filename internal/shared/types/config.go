package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File       string   `json:"file" yaml:"file" toml:"file"`
	Event      string   `json:"event" yaml:"event" toml:"event"`
	Year       string   `json:"year" yaml:"year" toml:"year"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
}
