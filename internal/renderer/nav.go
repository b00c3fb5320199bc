package renderer

import (
	"fmt"
	"strings"

	"github.com/mgsolli/hjemmebyggern/internal/config"
)

// NavDesktop bygger toppmenyen for brede skjermer.
func NavDesktop(nav config.Nav) string {
	if !nav.Enabled || len(nav.Menus) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<nav class=\"nav-desktop\">\n")
	for _, m := range nav.Menus {
		fmt.Fprintf(&b, `    <div class="nav-menu">
        <button class="nav-menu-trigger"><i class="%s"></i>%s</button>
        <div class="nav-menu-items">
`, m.Icon, m.Name)
		for _, it := range m.Items {
			b.WriteString(navItem(it, "nav-menu-item"))
		}
		b.WriteString("        </div>\n    </div>\n")
	}
	b.WriteString("</nav>")
	return b.String()
}

// NavMobile bygger den sammenleggbare menyvarianten for smale skjermer.
func NavMobile(nav config.Nav) string {
	if !nav.Enabled || len(nav.Menus) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="nav-mobile">
    <button class="nav-mobile-toggle" aria-label="Meny"><span></span><span></span><span></span></button>
    <div class="nav-mobile-panel">
`)
	for _, m := range nav.Menus {
		fmt.Fprintf(&b, `        <div class="nav-mobile-group">
            <span class="nav-mobile-heading"><i class="%s"></i>%s</span>
`, m.Icon, m.Name)
		for _, it := range m.Items {
			b.WriteString(navItem(it, "nav-mobile-item"))
		}
		b.WriteString("        </div>\n")
	}
	b.WriteString("    </div>\n</nav>")
	return b.String()
}

func navItem(it config.NavItem, class string) string {
	externalAttrs := ""
	if it.External {
		externalAttrs = ` target="_blank" rel="noopener"`
	}
	return fmt.Sprintf("            <a href=\"%s\" class=\"%s\"%s>%s</a>\n", it.URL, class, externalAttrs, it.Name)
}
