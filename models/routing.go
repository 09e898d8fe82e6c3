package models

// RoutingKind discriminates the possible outcomes of classifying a requested
// tree path.
type RoutingKind int

const (
	// RouteNotFound means the path matches neither a directory nor a file.
	RouteNotFound RoutingKind = iota

	// RouteListing means the path is a servable directory and a listing
	// page should be rendered.
	RouteListing

	// RouteRedirect means the path is an existing file and the client
	// should be redirected to the matching viewer.
	RouteRedirect
)

// RedirectKind names the viewer a RouteRedirect decision points at.
type RedirectKind string

const (
	RedirectNotebook RedirectKind = "notebook"
	RedirectFile     RedirectKind = "file"
)

// RoutingDecision is the tagged result of tree-path classification.
// Exactly the fields relevant to Kind are populated:
//   - RouteListing:  TreePath
//   - RouteRedirect: Redirect, Target
//   - RouteNotFound: nothing
type RoutingDecision struct {
	Kind RoutingKind

	// TreePath is the normalized directory path to list.
	TreePath string

	// Redirect names the viewer kind (notebook or file).
	Redirect RedirectKind

	// Target is the full redirect URL under the base URL, with each path
	// segment escaped.
	Target string
}

// Listing builds a directory-listing decision for path.
func Listing(path string) RoutingDecision {
	return RoutingDecision{Kind: RouteListing, TreePath: path}
}

// Redirect builds a redirect decision of the given kind pointing at target.
func Redirect(kind RedirectKind, target string) RoutingDecision {
	return RoutingDecision{Kind: RouteRedirect, Redirect: kind, Target: target}
}

// NotFound builds a not-found decision.
func NotFound() RoutingDecision {
	return RoutingDecision{Kind: RouteNotFound}
}
