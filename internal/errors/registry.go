package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (H001-H099)
	// ============================================

	"H001": {
		Category:   CategoryConfig,
		Message:    "conversions config file not found",
		Detail:     "A config path was set explicitly but no file exists at that path. Only the default file may be absent.",
		Suggestion: "Create the file, or unset the environment variable to fall back to the default path.",
	},
	"H002": {
		Category:   CategoryConfig,
		Message:    "conversions config file is not valid JSON",
		Detail:     "The conversions config must be a JSON object with a \"conversions\" key listing converter names.",
		Suggestion: "Validate the file with a JSON linter.",
	},
	"H003": {
		Category:   CategoryConfig,
		Message:    "unknown converter name in conversions config",
		Detail:     "Every name listed under \"conversions\" must be registered with convert.Register before first render.",
		Suggestion: "Register the converter at startup, or remove the name from the config.",
	},

	// ============================================
	// Render Errors (H100-H199)
	// ============================================

	"H100": {
		Category:   CategoryRender,
		Message:    "unknown node kind",
		Detail:     "The renderer encountered a Node with an unrecognized Kind value.",
		Suggestion: "Construct nodes through the node package factories.",
	},
	"H101": {
		Category:   CategoryRender,
		Message:    "unsupported content type",
		Detail:     "Render accepts strings, nodes, and sequences mixing the two.",
		Suggestion: "Wrap the value in node.Value to route it through the conversion chain.",
	},

	// ============================================
	// I/O Errors (H200-H299)
	// ============================================

	"H200": {
		Category:   CategoryIO,
		Message:    "failed to write output file",
		Detail:     "The rendered document could not be written to the target path.",
		Suggestion: "Check the path and filesystem permissions.",
	},
	"H201": {
		Category:   CategoryIO,
		Message:    "failed to publish output",
		Detail:     "The rendered output could not be delivered to the publish target.",
		Suggestion: "Check target credentials and connectivity.",
	},
}
