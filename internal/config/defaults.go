package config

const (
	defaultConfigPath = "~/.config/wordwiz/config.toml"
	projectConfigName = "wordwiz.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
	defaultOutput     = OutputText
	defaultColor      = ColorAuto
	defaultLanguage   = "und"
	keywordEnvVar     = "WORDWIZ_KEYWORD"
	maskedSecret      = "********"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutput,
			Color:  defaultColor,
		},
		Text: Text{
			Language: defaultLanguage,
		},
	}
}
