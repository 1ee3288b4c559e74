package source

// Export is the bulk configuration export of the source gateway, produced
// externally and consumed read-only.
type Export struct {
	Services []Service `json:"services"`
}

// Service is one service entry from the export. Protocol, host and path
// together describe the upstream; routes carry the inbound match paths.
type Service struct {
	Name     string  `json:"name"`
	Protocol string  `json:"protocol"`
	Host     string  `json:"host"`
	Path     string  `json:"path"`
	Routes   []Route `json:"routes"`
}

// Route holds the ordered path patterns of one route. Only the first path
// of the first route is migrated; the rest are ignored by design.
type Route struct {
	Paths []string `json:"paths"`
}

// ListenPath returns the first path of the first route, or "" when the
// service has no routes or the first route has no paths.
func (s Service) ListenPath() string {
	if len(s.Routes) == 0 || len(s.Routes[0].Paths) == 0 {
		return ""
	}
	return s.Routes[0].Paths[0]
}
