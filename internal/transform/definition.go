package transform

// DefaultVersion is stamped on every definition produced by the transformer.
const DefaultVersion = "1"

// APIDefinition is the normalized document registered with the target
// gateway, one per source service. Immutable after creation.
type APIDefinition struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	ListenPath  string `json:"listenPath,omitempty"`
	UpstreamURL string `json:"upstreamURL"`
	Active      bool   `json:"active"`
	Internal    bool   `json:"internal"`
}
