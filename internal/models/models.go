package models

// Article er en artikkel hentet fra en RSS-feed. Beskrivelsen er renset for
// HTML og kuttet til konfigurert lengde, PubDate er normalisert til
// YYYY-MM-DD (tom streng hvis datoen ikke lot seg tolke).
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
}

// Repo er et sammendrag av et offentlig GitHub-repository.
type Repo struct {
	Name          string   `json:"name"`
	FullName      string   `json:"fullName"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	Language      string   `json:"language"`
	LanguageColor string   `json:"languageColor"`
	IsArchived    bool     `json:"isArchived"`
	Topics        []string `json:"topics"`
	Homepage      string   `json:"homepage"`
}

// ContributionDays er antall dager i bidragsgrafen, 13 uker.
const ContributionDays = 78

// Contributions er et øyeblikksbilde av bidragsgrafen. Levels har alltid
// nøyaktig ContributionDays elementer, eldste dag først, hvert nivå i [0,4].
// Total er summen av rå hendelser, ikke nivåer.
type Contributions struct {
	Levels []int `json:"levels"`
	Total  int   `json:"total"`
}

// Status skiller "funksjonen er slått av" fra "vi fikk ingen data" slik at
// rendereren kan velge riktig gren. En feilet henting degraderes til
// StatusEmpty, aldri til en feil som propagerer oppover.
type Status int

const (
	StatusDisabled Status = iota
	StatusEmpty
	StatusData
)

// ArticlesResult er utfallet av en RSS-henting.
type ArticlesResult struct {
	Status   Status
	Articles []Article
}

// ReposResult er utfallet av en repo-henting.
type ReposResult struct {
	Status Status
	Repos  []Repo
}

// ContributionsResult er utfallet av en bidragshenting.
type ContributionsResult struct {
	Status        Status
	Contributions Contributions
}
