// ABOUTME: Header/content/footer region contract for surface content
// ABOUTME: Regions are tagged sections; the first section per region wins

package overlay

import "github.com/mauromedda/cellar-go/pkg/tui"

// Region names one of the three areas of a surface frame.
type Region int

const (
	RegionHeader Region = iota
	RegionContent
	RegionFooter
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionContent:
		return "content"
	case RegionFooter:
		return "footer"
	}
	return "unknown"
}

// Section tags a component with the region it belongs to.
type Section struct {
	Region Region
	Body   tui.Component
}

// Header tags c as the header region.
func Header(c tui.Component) Section { return Section{Region: RegionHeader, Body: c} }

// Content tags c as the scrollable content region.
func Content(c tui.Component) Section { return Section{Region: RegionContent, Body: c} }

// Footer tags c as the footer region.
func Footer(c tui.Component) Section { return Section{Region: RegionFooter, Body: c} }

// SurfaceLayout is the resolved region set of one surface. Header and
// Footer are optional. A nil Content renders as an empty region.
type SurfaceLayout struct {
	Header  tui.Component
	Content tui.Component
	Footer  tui.Component
}

// Layout resolves sections into a SurfaceLayout. Only the first section of
// each region is used; extra sections, sections with a nil body and unknown
// regions are ignored.
func Layout(sections ...Section) SurfaceLayout {
	var l SurfaceLayout
	for _, s := range sections {
		if s.Body == nil {
			continue
		}
		switch s.Region {
		case RegionHeader:
			if l.Header == nil {
				l.Header = s.Body
			}
		case RegionContent:
			if l.Content == nil {
				l.Content = s.Body
			}
		case RegionFooter:
			if l.Footer == nil {
				l.Footer = s.Body
			}
		}
	}
	return l
}

// Surface is implemented by content that splits itself into regions.
// Content that does not implement it fills the content region.
type Surface interface {
	Layout() SurfaceLayout
}

func layoutOf(content tui.Component) SurfaceLayout {
	if s, ok := content.(Surface); ok {
		return s.Layout()
	}
	return SurfaceLayout{Content: content}
}
