package models

import (
	"reflect"
	"testing"
)

func TestResolveTagVocabulary(t *testing.T) {
	tests := []struct {
		name        string
		packageName string
		want        []string
	}{
		{"exact tier", "Euphoria", euphoriaTags},
		{"lowercase", "euphoria", euphoriaTags},
		{"surrounding text", "Living Room - EUPHORIA package", euphoriaTags},
		{"bliss tier", "Bliss Refresh", blissTags},
		{"delight tier", "delight", delightTags},
		{"unknown package", "Starter", genericTags},
		{"empty name", "", genericTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTagVocabulary(tt.packageName)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveTagVocabulary(%q) = %v, want %v", tt.packageName, got, tt.want)
			}
		})
	}
}

func TestEveryVocabularyOffersOther(t *testing.T) {
	vocabularies := [][]string{euphoriaTags, blissTags, delightTags, genericTags}
	for _, vocab := range vocabularies {
		found := false
		for _, tag := range vocab {
			if tag == TagOther {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vocabulary %v is missing the %q escape hatch", vocab, TagOther)
		}
	}
}
