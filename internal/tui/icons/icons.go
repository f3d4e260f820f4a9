package icons

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// IconSet contains all icons used in the TUI
type IconSet struct {
	// Navigation
	Pointer    string
	ArrowUp    string
	ArrowDown  string
	ArrowLeft  string
	ArrowRight string
	Enter      string
	Back       string

	// Status
	Check    string
	Cross    string
	Dot      string
	Circle   string
	Star     string
	Warning  string
	Info     string
	Question string

	// Objects
	Folder   string
	File     string
	Terminal string
	Agent    string
	Key      string
	Run      string
	Attack   string
	Shield   string

	// Actions
	Send    string
	Target  string
	Search  string
	Refresh string
	Copy    string
	Save    string
	View    string

	// Decorations
	Sparkle   string
	Lightning string
	Rocket    string
	Gear      string

	// Help
	Help string
}

// NerdFonts is the full icon set using Nerd Font symbols
var NerdFonts = IconSet{
	// Navigation
	Pointer:    "❯",
	ArrowUp:    "",
	ArrowDown:  "",
	ArrowLeft:  "",
	ArrowRight: "",
	Enter:      "⏎",
	Back:       "",

	// Status
	Check:    "",
	Cross:    "",
	Dot:      "●",
	Circle:   "○",
	Star:     "★",
	Warning:  "",
	Info:     "",
	Question: "",

	// Objects
	Folder:   "",
	File:     "",
	Terminal: "",
	Agent:    "󰚩",
	Key:      "",
	Run:      "",
	Attack:   "󰓥",
	Shield:   "󰞀",

	// Actions
	Send:    "",
	Target:  "󰓾",
	Search:  "",
	Refresh: "",
	Copy:    "",
	Save:    "",
	View:    "󰈈",

	// Decorations
	Sparkle:   "✦",
	Lightning: "⚡",
	Rocket:    "➜",
	Gear:      "",

	// Help
	Help: "",
}

// Unicode is a fallback icon set using standard Unicode
var Unicode = IconSet{
	// Navigation
	Pointer:    "›",
	ArrowUp:    "↑",
	ArrowDown:  "↓",
	ArrowLeft:  "←",
	ArrowRight: "→",
	Enter:      "↵",
	Back:       "←",

	// Status
	Check:    "✓",
	Cross:    "✗",
	Dot:      "•",
	Circle:   "○",
	Star:     "★",
	Warning:  "⚠",
	Info:     "ℹ",
	Question: "?",

	// Objects
	Folder:   "▣",
	File:     "▤",
	Terminal: "▢",
	Agent:    "⚙",
	Key:      "⚿",
	Run:      "◆",
	Attack:   "◎",
	Shield:   "⛨",

	// Actions
	Send:    "➤",
	Target:  "◎",
	Search:  "⌕",
	Refresh: "⟳",
	Copy:    "⎘",
	Save:    "⤓",
	View:    "◉",

	// Decorations
	Sparkle:   "✦",
	Lightning: "⚡",
	Rocket:    "→",
	Gear:      "⚙",

	// Help
	Help: "?",
}

// ASCII is a minimal fallback for terminals without Unicode
var ASCII = IconSet{
	// Navigation
	Pointer:    ">",
	ArrowUp:    "^",
	ArrowDown:  "v",
	ArrowLeft:  "<",
	ArrowRight: ">",
	Enter:      "[Enter]",
	Back:       "<-",

	// Status
	Check:    "[x]",
	Cross:    "[X]",
	Dot:      "*",
	Circle:   "o",
	Star:     "*",
	Warning:  "!",
	Info:     "i",
	Question: "?",

	// Objects
	Folder:   "[D]",
	File:     "[F]",
	Terminal: "[>",
	Agent:    "[A]",
	Key:      "[K]",
	Run:      "[R]",
	Attack:   "(o)",
	Shield:   "[S]",

	// Actions
	Send:    ">>",
	Target:  "(o)",
	Search:  "[?]",
	Refresh: "[~]",
	Copy:    "[C]",
	Save:    "[S]",
	View:    "[V]",

	// Decorations
	Sparkle:   "*",
	Lightning: "!",
	Rocket:    ">>",
	Gear:      "@",

	// Help
	Help: "?",
}

func (i IconSet) WithFallback(fallback IconSet) IconSet {
	if reflect.DeepEqual(i, fallback) {
		return i
	}

	out := i
	dst := reflect.ValueOf(&out).Elem()
	fb := reflect.ValueOf(fallback)

	for idx := 0; idx < dst.NumField(); idx++ {
		f := dst.Field(idx)
		if f.Kind() != reflect.String {
			continue
		}
		if f.String() != "" {
			continue
		}
		f.SetString(fb.Field(idx).String())
	}

	return out
}

// HasNerdFonts detects if the terminal likely supports Nerd Fonts
func HasNerdFonts() bool {
	// Explicit user preference
	if os.Getenv("HACKAGENT_USE_ICONS") == "1" || os.Getenv("NERD_FONTS") == "1" {
		return true
	}
	if os.Getenv("HACKAGENT_USE_ICONS") == "0" || os.Getenv("NERD_FONTS") == "0" {
		return false
	}

	// Check for Powerlevel10k config (strong indicator)
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".p10k.zsh")); err == nil {
		return true
	}

	// Check terminal programs known to support Nerd Fonts well
	term := os.Getenv("TERM_PROGRAM")
	switch term {
	case "iTerm.app", "WezTerm", "Alacritty", "kitty", "Hyper":
		return true
	}

	// Check for Kitty
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}

	// Check for WezTerm
	if os.Getenv("WEZTERM_PANE") != "" {
		return true
	}

	// Check for VS Code integrated terminal
	if os.Getenv("TERM_PROGRAM") == "vscode" {
		return true
	}

	return false
}

// HasUnicode detects if the terminal supports Unicode
func HasUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	if strings.Contains(strings.ToLower(lang), "utf") ||
		strings.Contains(strings.ToLower(lcAll), "utf") {
		return true
	}

	// Most modern terminals support Unicode
	term := os.Getenv("TERM")
	if strings.Contains(term, "xterm") ||
		strings.Contains(term, "256color") ||
		strings.Contains(term, "screen") ||
		strings.Contains(term, "tmux") {
		return true
	}

	return true // Default to Unicode in modern era
}

// Detect returns the appropriate icon set for the current terminal
func Detect() IconSet {
	// Explicit preference via env var
	switch os.Getenv("HACKAGENT_ICONS") {
	case "nerd", "nerdfonts":
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	case "unicode":
		return Unicode.WithFallback(ASCII)
	case "ascii":
		return ASCII
	case "auto":
		if HasNerdFonts() {
			return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
		}
		if HasUnicode() {
			return Unicode.WithFallback(ASCII)
		}
	}

	// Explicit opt-in via HACKAGENT_USE_ICONS or NERD_FONTS
	if os.Getenv("HACKAGENT_USE_ICONS") == "1" || os.Getenv("NERD_FONTS") == "1" {
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	}

	// Default to ASCII to avoid width drift issues.
	return ASCII
}

// Default is the auto-detected icon set
var Default = Detect()

// Current returns the currently active icon set
func Current() IconSet {
	return Default
}

// SetDefault allows overriding the default icon set
func SetDefault(icons IconSet) {
	Default = icons
}

// TabIcon returns the icon for a dashboard tab
func (i IconSet) TabIcon(tab string) string {
	switch strings.ToLower(tab) {
	case "overview":
		return i.Shield
	case "agents":
		return i.Agent
	case "results":
		return i.Run
	case "keys":
		return i.Key
	case "attacks":
		return i.Attack
	case "settings":
		return i.Gear
	default:
		return i.Dot
	}
}

// StatusIcon returns a status icon string
func (i IconSet) StatusIcon(success bool) string {
	if success {
		return i.Check
	}
	return i.Cross
}
