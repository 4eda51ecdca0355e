package pages

import "html/template"

const (
	IconShare     = "share2"
	IconLineChart = "lineChart"
	IconCode      = "code"
	IconCamera    = "camera"
)

var iconPaths = map[string]string{
	IconShare:     `<circle cx="18" cy="5" r="3"/><circle cx="6" cy="12" r="3"/><circle cx="18" cy="19" r="3"/><line x1="8.59" x2="15.42" y1="13.51" y2="17.49"/><line x1="15.41" x2="8.59" y1="6.51" y2="10.49"/>`,
	IconLineChart: `<path d="M3 3v18h18"/><path d="m19 9-5 5-4-4-3 3"/>`,
	IconCode:      `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`,
	IconCamera:    `<path d="M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"/><circle cx="12" cy="13" r="3"/>`,
}

// IconKey normalises a content icon key. Unknown keys map to share2.
func IconKey(key string) string {
	if _, ok := iconPaths[key]; ok {
		return key
	}
	return IconShare
}

// IconSVG returns the inline SVG for key.
func IconSVG(key string) template.HTML {
	return template.HTML(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="icon icon-` + IconKey(key) + `" aria-hidden="true">` + iconPaths[IconKey(key)] + `</svg>`)
}
