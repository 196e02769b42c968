package shell

import (
	"path"
	"strings"

	"github.com/jask/sidenav/internal/nav"
)

// PathResolver links the first page to the base path and every other page
// to a slug of its display name beneath it.
type PathResolver struct{}

func (PathResolver) ResolveURL(basePath string, page nav.Page, index int) string {
	if basePath == "" {
		basePath = "/"
	}
	if index == 0 {
		return basePath
	}
	slug := Slug(page.DisplayName)
	if slug == "" {
		return ""
	}
	return path.Join(basePath, slug)
}

// Slug lower-cases name and joins its words with hyphens. Underscores count
// as word breaks.
func Slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '_' || r == ' ' || r == '/' || r == '-'
	})
	return strings.Join(fields, "-")
}
