package themes

import (
	"time"

	"github.com/sohryuu101/web-wedding-sub000/models"
)

// Options tune a render. Now defaults to the current time.
type Options struct {
	IsPreview bool
	Now       time.Time
}

// Section is one rendered block.
type Section struct {
	Kind SectionKind `json:"kind"`
	Data any         `json:"data"`
}

// Page is the composed invitation.
type Page struct {
	Theme     ID        `json:"theme"`
	ThemeName string    `json:"theme_name"`
	IsPreview bool      `json:"is_preview"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
}

// Render selects the template for d.Theme and emits, in template order,
// every section whose data is present.
func Render(d models.InvitationData, opts Options) Page {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	tpl := Lookup(d.Theme)

	page := Page{
		Theme:     tpl.ID,
		ThemeName: tpl.Name,
		IsPreview: opts.IsPreview,
		Title:     d.BrideName + " & " + d.GroomName,
		Sections:  make([]Section, 0, len(tpl.Sections)),
	}
	for _, kind := range tpl.Sections {
		if !Present(kind, &d) {
			continue
		}
		build, ok := builders[kind]
		if !ok {
			continue
		}
		page.Sections = append(page.Sections, Section{Kind: kind, Data: build(&d, opts)})
	}
	return page
}

// Has reports whether the page contains a section of kind.
func (p Page) Has(kind SectionKind) bool {
	_, ok := p.Find(kind)
	return ok
}

// Find returns the first section of kind.
func (p Page) Find(kind SectionKind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
