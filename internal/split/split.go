package split

import (
	"fmt"
	"strings"

	"github.com/gatewayops/gwshift/internal/transform"
)

// Unit is one independently importable artifact: a single API definition
// keyed by its service title, plus the filesystem-safe artifact name used
// when writing it out for inspection.
type Unit struct {
	Title      string
	FileName   string
	Definition transform.APIDefinition
}

// Split produces exactly one Unit per definition, in emission order equal
// to the transformer's output order. Titles are unique by the time they
// reach the splitter; sanitized file names that still collide get a numeric
// suffix instead of overwriting each other.
func Split(defs []transform.APIDefinition) []Unit {
	units := make([]Unit, 0, len(defs))
	taken := make(map[string]int, len(defs))

	for _, def := range defs {
		base := sanitizeTitle(def.Title)
		name := base
		if n := taken[base]; n > 0 {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		taken[base]++

		units = append(units, Unit{
			Title:      def.Title,
			FileName:   name + ".json",
			Definition: def,
		})
	}

	return units
}

// sanitizeTitle reduces a service title to a lowercase token safe for use
// as a file name.
func sanitizeTitle(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return '-'
	}, title)

	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")

	if sanitized == "" {
		sanitized = "api"
	}

	return sanitized
}
