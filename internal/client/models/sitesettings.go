package models

// SiteSettings is the flat mapping of site copy and link fields managed by
// the admin. Mutation is all-or-nothing replace; defaults fill any field
// the server left empty.
type SiteSettings struct {
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroURL1     string `json:"hero_url1"`
	HeroURL2     string `json:"hero_url2"`
	HeroURL3     string `json:"hero_url3"`
	FacebookURL  string `json:"fb_url"`
	InstagramURL string `json:"ig_url"`
	RaffleTitle  string `json:"raffle_title"`
	RaffleDesc   string `json:"raffle_desc"`
	RaffleImg    string `json:"raffle_img"`
}

// WithDefaults returns a copy with defaults applied for missing fields.
func (s SiteSettings) WithDefaults() SiteSettings {
	def := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	def(&s.HeroTitle, "Tecnología de Vanguardia")
	def(&s.HeroSubtitle, "Descubre las últimas innovaciones.")
	def(&s.FacebookURL, "#")
	def(&s.InstagramURL, "#")
	def(&s.RaffleTitle, "Rifa del Mes")
	def(&s.RaffleDesc, "Participa y gana.")
	return s
}
