// Package themes composes an invitation into the ordered section list of a
// named template. Rendering is pure: it never touches storage or transport.
package themes

import "strings"

// ID names a template.
type ID string

const (
	ModernElegance  ID = "modern-elegance"
	Scrapbook       ID = "scrapbook"
	PastelMinimalis ID = "pastel-minimalis"
	FlowerGarden    ID = "flower-garden"
	RoseGarden      ID = "rose-garden" // legacy
	Classic         ID = "classic"     // single-page fallback
)

// Template is a named section order.
type Template struct {
	ID       ID            `json:"id"`
	Name     string        `json:"name"`
	Legacy   bool          `json:"legacy,omitempty"`
	Sections []SectionKind `json:"sections"`
}

var templates = map[ID]Template{
	ModernElegance: {
		ID:   ModernElegance,
		Name: "Modern Elegance",
		Sections: []SectionKind{
			SectionHero, SectionSaveTheDate, SectionCouple, SectionVerse,
			SectionLoveStory, SectionEvent, SectionGallery, SectionVideo,
			SectionLiveStreaming, SectionRSVP, SectionWishes, SectionGift,
			SectionThankYou, SectionClosing,
		},
	},
	Scrapbook: {
		ID:   Scrapbook,
		Name: "Scrapbook",
		Sections: []SectionKind{
			SectionHero, SectionCouple, SectionLoveStory, SectionGallery,
			SectionEvent, SectionSaveTheDate, SectionRSVP, SectionWishes,
			SectionGift, SectionClosing,
		},
	},
	PastelMinimalis: {
		ID:   PastelMinimalis,
		Name: "Pastel Minimalis",
		Sections: []SectionKind{
			SectionHero, SectionSaveTheDate, SectionCouple, SectionEvent,
			SectionGallery, SectionRSVP, SectionGift, SectionThankYou,
		},
	},
	FlowerGarden: {
		ID:   FlowerGarden,
		Name: "Flower Garden",
		Sections: []SectionKind{
			SectionHero, SectionVerse, SectionCouple, SectionSaveTheDate,
			SectionEvent, SectionLoveStory, SectionGallery, SectionVideo,
			SectionLiveStreaming, SectionRSVP, SectionWishes, SectionGift,
			SectionContact, SectionThankYou, SectionClosing,
		},
	},
	RoseGarden: {
		ID:     RoseGarden,
		Name:   "Rose Garden",
		Legacy: true,
		Sections: []SectionKind{
			SectionHero, SectionCouple, SectionEvent, SectionGallery,
			SectionRSVP, SectionWishes, SectionClosing,
		},
	},
	Classic: {
		ID:   Classic,
		Name: "Classic",
		Sections: []SectionKind{
			SectionHero, SectionSaveTheDate, SectionEvent, SectionRSVP, SectionClosing,
		},
	},
}

// catalogueOrder is the listing order of Catalogue.
var catalogueOrder = []ID{ModernElegance, Scrapbook, PastelMinimalis, FlowerGarden, RoseGarden, Classic}

// Normalize maps a stored theme string to an ID: "Modern Elegance",
// "modern_elegance" and "modern-elegance" are the same template.
func Normalize(theme string) ID {
	s := strings.ToLower(strings.TrimSpace(theme))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return ID(s)
}

// Lookup returns the template for theme, falling back to Classic for
// unknown or empty values.
func Lookup(theme string) Template {
	if t, ok := templates[Normalize(theme)]; ok {
		return t
	}
	return templates[Classic]
}

// Catalogue lists every template.
func Catalogue() []Template {
	out := make([]Template, 0, len(catalogueOrder))
	for _, id := range catalogueOrder {
		t := templates[id]
		t.Sections = append([]SectionKind(nil), t.Sections...)
		out = append(out, t)
	}
	return out
}
