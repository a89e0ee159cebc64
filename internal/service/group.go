package service

// Group classifies a service for configuration and manifest generation.
type Group string

const (
	GroupDatabase Group = "database"
	GroupCaching  Group = "caching"
	GroupOther    Group = "other"
)

// Groups returns every group in the order services are configured and
// written to the manifest.
func Groups() []Group {
	return []Group{GroupDatabase, GroupCaching, GroupOther}
}

// Required reports whether a project must pick a service from this group.
func (g Group) Required() bool {
	return g == GroupDatabase
}

// Valid reports whether g is one of the known groups.
func (g Group) Valid() bool {
	switch g {
	case GroupDatabase, GroupCaching, GroupOther:
		return true
	}
	return false
}
