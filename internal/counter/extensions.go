package counter

// DefaultExtensions is the recognized set of source and text file extensions.
// A file contributes to session totals only when its extension (lowercased)
// is in this set. The set is closed at build time; per-user additions come in
// through config as extra extensions, not by editing counting logic.
var DefaultExtensions = map[string]struct{}{
	// Source code
	".c":     {},
	".cc":    {},
	".clj":   {},
	".cpp":   {},
	".cs":    {},
	".dart":  {},
	".erl":   {},
	".ex":    {},
	".exs":   {},
	".go":    {},
	".h":     {},
	".hpp":   {},
	".hs":    {},
	".java":  {},
	".js":    {},
	".jsx":   {},
	".kt":    {},
	".kts":   {},
	".lua":   {},
	".ml":    {},
	".php":   {},
	".pl":    {},
	".py":    {},
	".r":     {},
	".rb":    {},
	".rs":    {},
	".scala": {},
	".sh":    {},
	".sql":   {},
	".swift": {},
	".ts":    {},
	".tsx":   {},
	".vue":   {},
	".zig":   {},

	// Markup and stylesheets
	".css":      {},
	".html":     {},
	".htm":      {},
	".less":     {},
	".markdown": {},
	".md":       {},
	".rst":      {},
	".sass":     {},
	".scss":     {},
	".svelte":   {},
	".xml":      {},

	// Config and text formats
	".cfg":  {},
	".conf": {},
	".ini":  {},
	".json": {},
	".toml": {},
	".txt":  {},
	".yaml": {},
	".yml":  {},
}
