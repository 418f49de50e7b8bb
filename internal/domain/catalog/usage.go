package catalog

// UsageType is the storefront filter that splits track parts from street parts
type UsageType string

const (
	UsageRacing UsageType = "racing"
	UsageDaily  UsageType = "daily"
)

// ParseUsageType maps a query value to a UsageType.
// Anything other than "racing" or "daily" means no filter.
func ParseUsageType(s string) UsageType {
	switch UsageType(s) {
	case UsageRacing, UsageDaily:
		return UsageType(s)
	default:
		return ""
	}
}
