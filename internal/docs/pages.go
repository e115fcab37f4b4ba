package docs

// Builtin returns the built-in documentation set in sidebar order. The
// returned slice is freshly allocated; callers may append overlay pages
// before constructing the registry.
func Builtin() []Page {
	pages := make([]Page, 0, 16)
	pages = append(pages, gettingStartedPages...)
	pages = append(pages, platformPages...)
	pages = append(pages, referencePages...)
	return pages
}
