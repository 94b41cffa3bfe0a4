package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Settings prints the current site settings.
func (a *App) Settings(ctx context.Context) error {
	printSettings(a.settingsService.Current())
	return nil
}

// EditSettings replaces the site settings (admin only). The replace is
// optimistic and all-or-nothing: a server rejection restores the previous
// mapping.
func (a *App) EditSettings(ctx context.Context) error {
	if !a.isAdmin() {
		log.Println("Admin credential required")
		return nil
	}

	s := a.settingsService.Current()
	var err error

	fields := []struct {
		prompt string
		value  *string
	}{
		{"Hero title", &s.HeroTitle},
		{"Hero subtitle", &s.HeroSubtitle},
		{"Hero image 1 URL", &s.HeroURL1},
		{"Hero image 2 URL", &s.HeroURL2},
		{"Hero image 3 URL", &s.HeroURL3},
		{"Facebook URL", &s.FacebookURL},
		{"Instagram URL", &s.InstagramURL},
		{"Raffle title", &s.RaffleTitle},
		{"Raffle description", &s.RaffleDesc},
		{"Raffle image URL", &s.RaffleImg},
	}
	for _, f := range fields {
		if *f.value, err = GetOptionalText(a.reader, f.prompt, *f.value, os.Stdout); err != nil {
			return err
		}
	}

	saved, err := a.settingsService.Save(ctx, s)
	if err != nil {
		log.Printf("Settings save failed, previous values restored: %s", err.Error())
		printSettings(saved)
		return nil
	}
	log.Println("Settings saved")
	printSettings(saved)
	return nil
}

func printSettings(s models.SiteSettings) {
	fmt.Printf("Hero: %s - %s\n", s.HeroTitle, s.HeroSubtitle)
	fmt.Printf("  Slides: %s | %s | %s\n", s.HeroURL1, s.HeroURL2, s.HeroURL3)
	fmt.Printf("  Facebook: %s  Instagram: %s\n", s.FacebookURL, s.InstagramURL)
	fmt.Printf("Raffle: %s - %s (%s)\n", s.RaffleTitle, s.RaffleDesc, s.RaffleImg)
}
