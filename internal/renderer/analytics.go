package renderer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mgsolli/hjemmebyggern/internal/config"
)

// Analytics bygger script-blokken for statistikk. Alt her er
// konfigurasjonsforfattet og settes inn uescapet.
func Analytics(a config.Analytics) string {
	var b strings.Builder

	if a.GoogleAnalytics.Enabled && a.GoogleAnalytics.ID != "" {
		fmt.Fprintf(&b, `<!-- Google Analytics -->
<script async src="https://www.googletagmanager.com/gtag/js?id=%s"></script>
<script>
    window.dataLayer = window.dataLayer || [];
    function gtag(){dataLayer.push(arguments);}
    gtag('js', new Date());
    gtag('config', '%s');
</script>
`, a.GoogleAnalytics.ID, a.GoogleAnalytics.ID)
	}

	if a.MicrosoftClarity.Enabled && a.MicrosoftClarity.ID != "" {
		fmt.Fprintf(&b, `<!-- Microsoft Clarity -->
<script>
    (function(c,l,a,r,i,t,y){
        c[a]=c[a]||function(){(c[a].q=c[a].q||[]).push(arguments)};
        t=l.createElement(r);t.async=1;t.src="https://www.clarity.ms/tag/"+i;
        y=l.getElementsByTagName(r)[0];y.parentNode.insertBefore(t,y);
    })(window, document, "clarity", "script", "%s");
</script>
`, a.MicrosoftClarity.ID)
	}

	if a.Umami != "" {
		b.WriteString("<!-- Umami Analytics -->\n")
		b.WriteString(a.Umami)
		b.WriteString("\n")
	}

	if len(a.CustomScripts) > 0 {
		b.WriteString("<!-- Egendefinerte script -->\n")
		b.WriteString(strings.Join(a.CustomScripts, "\n"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// ThemeCSS skriver temafargene som CSS-variabler på :root.
func ThemeCSS(t config.Theme) string {
	return fmt.Sprintf(`:root {
    --accent: %s;
    --accent-secondary: %s;
    --bg-primary: %s;
    --bg-secondary: %s;
    --text-primary: %s;
    --text-secondary: %s;
    --border: %s;
}`, t.Accent, t.AccentSecondary, t.BgPrimary, t.BgSecondary, t.TextPrimary, t.TextSecondary, t.Border)
}

// clientConfig er det klientskriptet trenger for skrivemaskinsitatene og
// animasjonene.
type clientConfig struct {
	Animation config.Animation `json:"animation"`
	Quotes    []string         `json:"quotes"`
	Terminal  config.Terminal  `json:"terminal"`
}

// AnimationConfig serialiserer animasjonsoppsettet til en inline
// script-blokk som app.js leser ved oppstart.
func AnimationConfig(cfg config.Config) string {
	data, err := json.Marshal(clientConfig{
		Animation: cfg.Animation,
		Quotes:    cfg.Quotes,
		Terminal:  cfg.Terminal,
	})
	if err != nil {
		slog.Warn("Klarte ikke å serialisere animasjonsoppsettet", "error", err)
		return ""
	}
	return fmt.Sprintf("<script>window.HOMEPAGE_CONFIG = %s;</script>", data)
}
