package renderer

import (
	"fmt"
	"strings"

	"github.com/mgsolli/hjemmebyggern/internal/config"
)

// Skjelettene speiler elementantallet i det ekte innholdet, slik at
// lasteskjermen aldri hopper når innholdet vises.

// SkeletonLinks bygger ett skjelettelement per aktiv lenke.
func SkeletonLinks(links []config.Link) string {
	n := 0
	for _, l := range links {
		if l.IsEnabled() {
			n++
		}
	}
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"skeleton-links\">\n")
	for i := 0; i < n; i++ {
		b.WriteString("    <div class=\"skeleton skeleton-link\"></div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

// SkeletonRSS bygger like mange skjelettrader som artikler vi kommer til
// å vise.
func SkeletonRSS(rss config.RSS) string {
	if !rss.Enabled {
		return ""
	}
	return skeletonRows("skeleton-rss", "skeleton skeleton-rss-item", rss.Count)
}

// SkeletonProjects bygger ett stort kort og minikort for resten.
func SkeletonProjects(projects config.Projects) string {
	if !projects.Enabled {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"skeleton-projects\">\n")
	b.WriteString("    <div class=\"skeleton skeleton-project-main\"></div>\n")
	for i := 1; i < projects.Count; i++ {
		b.WriteString("    <div class=\"skeleton skeleton-project-mini\"></div>\n")
	}
	b.WriteString("</div>")
	return b.String()
}

func skeletonRows(containerClass, rowClass string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"%s\">\n", containerClass)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "    <div class=\"%s\"></div>\n", rowClass)
	}
	b.WriteString("</div>")
	return b.String()
}
