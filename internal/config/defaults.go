package config

// DefaultLinkColor brukes for lenker uten eksplisitt farge.
const DefaultLinkColor = "#00ff9f"

// Default er den dokumenterte standardkonfigurasjonen. Hver seksjon som
// mangler i konfigurasjonsfilen ender opp nøyaktig slik.
func Default() Config {
	return Config{
		SEO: SEO{
			Title:       "Min hjemmeside",
			Description: "Personlig hjemmeside",
			Keywords:    []string{"hjemmeside", "portefølje"},
			OG: OG{
				Title:       "Min hjemmeside",
				Description: "Personlig hjemmeside",
				Image:       "images/avatar.webp",
			},
		},
		Profile: Profile{
			Name:   "Anonym",
			Avatar: "images/avatar.webp",
			Tagline: Tagline{
				Prefix:    ">",
				Text:      "Hei!",
				Highlight: "Velkommen hit.",
			},
		},
		Identity:  []string{"Utvikler"},
		Interests: []string{"Programvare"},
		Terminal: Terminal{
			Title: "gjest@hjemme:~|",
		},
		Quotes: []string{
			"Be water, my friend.",
			"Inspiration is perishable. Act on it immediately.",
		},
		Links: nil,
		Footer: Footer{
			Text: "Bygget med",
			Link: FooterLink{
				Text: "hjemmebyggern",
				URL:  "https://github.com/mgsolli/hjemmebyggern",
			},
		},
		Notice: Notice{
			Enabled: false,
			Type:    "warning",
			Icon:    "fa-solid fa-shield-halved",
		},
		About: About{Enabled: false},
		RSS: RSS{
			Enabled:              false,
			Count:                5,
			MaxDescriptionLength: 100,
		},
		Projects: Projects{
			Enabled: false,
			Count:   4,
		},
		Contribution: Contribution{
			UseRealData: false,
		},
		Nav: Nav{Enabled: false},
		Animation: Animation{
			FadeInDelay:      1000,
			TypingSpeed:      60,
			QuoteDisplayTime: 4000,
			QuoteDeleteSpeed: 42,
		},
		Theme: Theme{
			Accent:          "#00ff9f",
			AccentSecondary: "#00cc7a",
			BgPrimary:       "#0a0a0a",
			BgSecondary:     "#111111",
			TextPrimary:     "#e8e8e8",
			TextSecondary:   "#888888",
			Border:          "#222222",
		},
		Analytics: Analytics{
			GoogleAnalytics:  AnalyticsID{Enabled: false},
			MicrosoftClarity: AnalyticsID{Enabled: false},
		},
	}
}
