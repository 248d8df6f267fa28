package domain

// Route describes a navigation target and its authorization metadata.
// RequiresAuth and RequiresGuest are mutually exclusive by convention;
// the guard evaluates RequiresAuth first when both are set.
type Route struct {
	Path          string
	Name          string
	RequiresAuth  bool
	RequiresGuest bool
}

// DefaultRoutes is the application's static route table.
var DefaultRoutes = []Route{
	{Path: "/", Name: "Home"},
	{Path: "/login", Name: "Login", RequiresGuest: true},
	{Path: "/register", Name: "Register", RequiresGuest: true},
	{Path: "/planner", Name: "Planner", RequiresAuth: true},
	{Path: "/qa", Name: "QA", RequiresAuth: true},
	{Path: "/copywriter", Name: "Copywriter", RequiresAuth: true},
	{Path: "/settings", Name: "Settings", RequiresAuth: true},
	{Path: "/profile/edit", Name: "ProfileEdit", RequiresAuth: true},
}

// FindRoute looks up a route by path. The second return value reports
// whether the path is part of the table.
func FindRoute(path string) (Route, bool) {
	for _, r := range DefaultRoutes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
