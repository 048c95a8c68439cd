package config

// Config is the workbench configuration loaded from YAML.
type Config struct {
	// StateDir overrides where layout state is kept (default ~/.workbench).
	StateDir string   `yaml:"state_dir"`
	Theme    Theme    `yaml:"theme"`
	Console  Console  `yaml:"console"`
	Explorer Explorer `yaml:"explorer"`
	SideBars SideBars `yaml:"side_bars"`
}

// Theme holds the ANSI-256 colors used by the renderer.
type Theme struct {
	Accent    string `yaml:"accent"`    // titles, highlights
	Highlight string `yaml:"highlight"` // selected tabs, borders
	Muted     string `yaml:"muted"`     // dimmed text, hints
	Text      string `yaml:"text"`      // normal text
	Danger    string `yaml:"danger"`    // errors, dirty markers
}

// Console configures the bottom-area terminal widget.
type Console struct {
	Shell   string `yaml:"shell"`    // command to spawn (default $SHELL, then sh)
	MaxLine int    `yaml:"max_line"` // scrollback lines kept (default 500)
}

// Explorer configures the left-area file explorer widget.
type Explorer struct {
	Dir string `yaml:"dir"` // root directory (default cwd)
}

// SideBars sets the default ranks of the built-in side-bar widgets.
// Lower ranks sort earlier.
type SideBars struct {
	ExplorerRank int `yaml:"explorer_rank"`
	ConsoleRank  int `yaml:"console_rank"`
}
