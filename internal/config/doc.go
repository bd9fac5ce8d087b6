// Package config provides the configuration system for uniedit.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← UNIEDIT_SECTION_SETTING
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/uniedit/config.{toml,yaml,yml}
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings are addressed by dot paths such as "session.prompt". Typed
// snapshots of each section are available through Session, Logging and
// Files.
//
// # Example Configuration
//
//	[session]
//	prompt = ">>"
//	showPrompt = "auto"   # auto, always, never
//	banner = false
//
//	[logging]
//	level = "warn"
//	file = ""
//
//	[files]
//	permissions = "0644"
//	readEncoding = "auto" # auto, utf-8, utf-32, utf-32le
//
// # Sub-packages
//
//   - loader: TOML and YAML file loading and environment variables
package config
