package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (E101-E199)
	"E101": {
		Category: CategoryRender,
		Message:  "Invalid tag name",
		Detail:   "The display tree refused to create an element for this tag.",
	},
	"E102": {
		Category: CategoryRender,
		Message:  "Node has no parent",
		Detail:   "The node is not attached to the display tree, so it cannot be removed or used as an insertion point.",
	},
	"E103": {
		Category: CategoryRender,
		Message:  "Render returned no tree",
		Detail:   "A component's Render function must return a VNode on every call.",
	},
	"E104": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The render pass could not mount or replace the live tree.",
	},
	"E105": {
		Category: CategoryRender,
		Message:  "Component has no render function",
		Detail:   "A component descriptor needs a Render function before it can be mounted.",
	},
	"E106": {
		Category: CategoryRender,
		Message:  "Method name collides with data key",
		Detail:   "Methods are stored on the reactive context under their own name and would overwrite the data value on every render.",
	},

	// Config errors (E201-E299)
	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Configuration validation failed",
	},

	// Transport errors (E301-E399)
	"E301": {
		Category: CategoryTransport,
		Message:  "Snapshot export failed",
		Detail:   "The rendered snapshot could not be written to object storage.",
	},
	"E302": {
		Category: CategoryTransport,
		Message:  "Invalid live message",
		Detail:   "The client sent a message that is not a valid event.",
	},
	"E303": {
		Category: CategoryTransport,
		Message:  "Element not found",
		Detail:   "The event targets an element that is not part of the live tree.",
	},

	// CLI errors (E401-E499)
	"E401": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
