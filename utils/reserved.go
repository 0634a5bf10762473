package utils

// reservedSlugs are first path segments owned by fixed routes. A guest page
// slug equal to one of them would be shadowed by that route.
var reservedSlugs = map[string]struct{}{
	"auth":        {},
	"files":       {},
	"invitation":  {},
	"invitations": {},
	"static":      {},
	"themes":      {},
	"upload":      {},
}

// IsReservedSlug reports whether slug collides with a fixed route segment.
func IsReservedSlug(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}
