package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/router"
)

// Open navigates by URL fragment, the same surface the storefront links
// use: "#product=<id>" opens a detail view, anything else the list.
func (a *App) Open(ctx context.Context) error {
	fragment, err := getSimpleText(a.reader, "Enter fragment (e.g. #product=42, empty for list)", os.Stdout)
	if err != nil {
		return err
	}
	return a.navigate(ctx, router.Parse(fragment))
}

// Show opens the detail view for a product id.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to show", os.Stdout)
	if err != nil {
		return err
	}
	return a.navigate(ctx, router.Route{Kind: router.KindDetail, ProductID: id})
}

// navigate records the new route, resolves it, and renders the result,
// unless the user navigated again while the resolution was in flight, in
// which case the stale resolution is dropped harmlessly.
func (a *App) navigate(ctx context.Context, rt router.Route) error {
	if rt == a.route && rt.Kind == router.KindList {
		// Re-entering the list is a no-op render.
		return a.List(ctx)
	}
	a.route = rt

	res, err := a.resolver.Resolve(ctx, rt)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return nil
	}
	if res.Route != a.route {
		return nil
	}

	switch {
	case res.Route.Kind == router.KindList:
		return a.List(ctx)
	case res.NotFound:
		fmt.Println("No se encontró el producto.")
		return nil
	default:
		printProductDetail(*res.Product)
		return nil
	}
}

func printProductDetail(p models.Product) {
	fmt.Printf("%s\n", p.Nombre)
	fmt.Printf("  %s\n", p.Descripcion)
	fmt.Printf("  Categoría: %s\n", p.Categoria)
	fmt.Printf("  Precio: $%.2f  Stock: %d\n", p.Precio, p.Stock)
	for _, media := range []string{p.Imagen, p.Imagen2, p.Imagen3, p.Video} {
		if media != "" {
			fmt.Printf("  Media: %s\n", media)
		}
	}
}
