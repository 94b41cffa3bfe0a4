package catalog

import (
	"strings"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// CategoryOffers is the synthetic category selecting en_oferta products
// regardless of their real category.
const CategoryOffers = "ofertas"

// Filter returns the visible subset of items for a free-text term, a
// category selector and an admin flag. Inactive products are hidden unless
// admin; the category matches case-insensitively (CategoryOffers matches
// the offer flag instead); the term matches case-insensitively as a
// substring of name plus description. Filters compose by conjunction and
// the input slice is never modified: same inputs, same subset.
func Filter(items []models.Product, term, category string, admin bool) []models.Product {
	t := strings.ToLower(strings.TrimSpace(term))
	c := strings.ToLower(strings.TrimSpace(category))

	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if !admin && !p.Activo {
			continue
		}
		if c == CategoryOffers {
			if !p.EnOferta {
				continue
			}
		} else if c != "" && !strings.EqualFold(p.Categoria, c) {
			continue
		}
		if t != "" && !strings.Contains(strings.ToLower(p.Nombre+" "+p.Descripcion), t) {
			continue
		}
		out = append(out, p)
	}
	return out
}
