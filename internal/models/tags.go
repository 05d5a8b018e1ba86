package models

import "strings"

// TagOther is the free-text escape hatch offered alongside every
// vocabulary. When the user picks it, the custom text becomes the tag and
// must be non-empty.
const TagOther = "Other"

// Task tag vocabularies per service tier. Tiers are matched against the
// project's package name; the generic list is the fallback.
var (
	euphoriaTags = []string{
		"Concept 1",
		"Concept 2",
		"Concept 3",
		"3D Rendering",
		"Design Review",
		"Revision Round",
		"Final Delivery",
		TagOther,
	}

	blissTags = []string{
		"Concept 1",
		"Concept 2",
		"3D Rendering",
		"Revision Round",
		"Final Delivery",
		TagOther,
	}

	delightTags = []string{
		"Concept 1",
		"Moodboard",
		"Revision Round",
		"Final Delivery",
		TagOther,
	}

	genericTags = []string{
		"Concept",
		"Client Call",
		"Revision",
		"Sourcing",
		TagOther,
	}
)

// packageTiers maps a lowercase substring of the package name to its
// vocabulary. Ordered most specific first; matching stops at the first hit.
var packageTiers = []struct {
	substr string
	tags   []string
}{
	{"euphoria", euphoriaTags},
	{"bliss", blissTags},
	{"delight", delightTags},
}

// ResolveTagVocabulary returns the task tag vocabulary for a project or
// package name. Matching is a case-insensitive substring check against the
// known service tiers; unknown names get the generic vocabulary.
func ResolveTagVocabulary(packageName string) []string {
	name := strings.ToLower(packageName)
	for _, tier := range packageTiers {
		if strings.Contains(name, tier.substr) {
			return tier.tags
		}
	}
	return genericTags
}
