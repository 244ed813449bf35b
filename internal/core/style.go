package core

// Style is the text attribute of a screen cell. Backends map it to their own
// styling (lipgloss faint/bold, tcell dim/bold).
type Style uint8

const (
	StyleNormal Style = iota
	StyleDim
	StyleBold
)

// String returns the style name as used in config files.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleDim:
		return "dim"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}

// ParseStyle converts a config name to a Style.
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "normal", "":
		return StyleNormal, true
	case "dim":
		return StyleDim, true
	case "bold":
		return StyleBold, true
	}
	return StyleNormal, false
}
