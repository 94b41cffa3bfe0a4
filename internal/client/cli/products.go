package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/catalog"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/router"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/services"
)

// List prints the visible subset of the cached catalog under the current
// search term and category filter. No network round-trip.
func (a *App) List(ctx context.Context) error {
	items := a.catalogService.Visible(a.term, a.category)
	if len(items) == 0 {
		fmt.Println("No products match.")
		return nil
	}
	for _, p := range items {
		printProductLine(p)
	}
	return nil
}

// Search prompts for a free-text term (empty clears it) and re-renders.
func (a *App) Search(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search term (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}
	a.term = term
	return a.List(ctx)
}

// Category prompts for a category selector (empty clears it; "ofertas"
// selects products on offer) and re-renders.
func (a *App) Category(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category (empty to clear, 'ofertas' for offers)", os.Stdout)
	if err != nil {
		return err
	}
	a.category = category
	return a.List(ctx)
}

// New creates a product (admin only). File fields are uploaded before the
// record mutation is issued; the insert is optimistic with rollback.
func (a *App) New(ctx context.Context) error {
	if !a.isAdmin() {
		log.Println("Admin credential required")
		return nil
	}

	p, uploads, err := a.promptProduct(models.Product{Activo: true})
	if err != nil {
		return err
	}

	outcome, err := a.catalogService.Save(ctx, p, uploads)
	if err != nil {
		log.Printf("Save aborted: %s", err.Error())
		return nil
	}
	reportOutcome(outcome, "Saved")
	return nil
}

// Edit updates an existing product (admin only). The id is resolved
// through the router so a stale cache triggers one fresh fetch.
func (a *App) Edit(ctx context.Context) error {
	if !a.isAdmin() {
		log.Println("Admin credential required")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id to edit", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.resolver.Resolve(ctx, router.Route{Kind: router.KindDetail, ProductID: id})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return nil
	}
	if res.NotFound {
		log.Printf("Product %s not found", id)
		return nil
	}

	p, uploads, err := a.promptProduct(*res.Product)
	if err != nil {
		return err
	}

	outcome, err := a.catalogService.Save(ctx, p, uploads)
	if err != nil {
		log.Printf("Save aborted: %s", err.Error())
		return nil
	}
	reportOutcome(outcome, "Saved")
	return nil
}

// Delete removes a product (admin only), optimistically with rollback.
func (a *App) Delete(ctx context.Context) error {
	if !a.isAdmin() {
		log.Println("Admin credential required")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id to delete", os.Stdout)
	if err != nil {
		return err
	}

	outcome, err := a.catalogService.Delete(ctx, id)
	if err != nil {
		log.Printf("Delete aborted: %s", err.Error())
		return nil
	}
	reportOutcome(outcome, "Deleted")
	return nil
}

// promptProduct collects product fields interactively, starting from base
// (zero value for creations). Empty input keeps the current value. File
// prompts stage uploads; entering a path replaces the stored URL after a
// successful upload.
func (a *App) promptProduct(base models.Product) (models.Product, []services.Upload, error) {
	p := base
	var err error

	if p.Nombre, err = GetOptionalText(a.reader, "Name", p.Nombre, os.Stdout); err != nil {
		return p, nil, err
	}
	if p.Descripcion, err = GetOptionalText(a.reader, "Description", p.Descripcion, os.Stdout); err != nil {
		return p, nil, err
	}
	if p.Categoria, err = GetOptionalText(a.reader, "Category", p.Categoria, os.Stdout); err != nil {
		return p, nil, err
	}

	precio, err := GetOptionalText(a.reader, "Price", strconv.FormatFloat(p.Precio, 'f', -1, 64), os.Stdout)
	if err != nil {
		return p, nil, err
	}
	if p.Precio, err = strconv.ParseFloat(precio, 64); err != nil {
		log.Printf("Invalid price %q", precio)
		return p, nil, err
	}

	stock, err := GetOptionalText(a.reader, "Stock", strconv.Itoa(p.Stock), os.Stdout)
	if err != nil {
		return p, nil, err
	}
	if p.Stock, err = strconv.Atoi(stock); err != nil {
		log.Printf("Invalid stock %q", stock)
		return p, nil, err
	}

	if p.Activo, err = a.promptBool("Active (y/n)", p.Activo); err != nil {
		return p, nil, err
	}
	if p.EnOferta, err = a.promptBool("On offer (y/n)", p.EnOferta); err != nil {
		return p, nil, err
	}

	var uploads []services.Upload
	for _, field := range []string{"imagen", "imagen2", "imagen3", "video"} {
		path, err := getSimpleText(a.reader, fmt.Sprintf("Path to %s file (empty to keep)", field), os.Stdout)
		if err != nil {
			return p, nil, err
		}
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Cannot read %s: %s", path, err.Error())
			return p, nil, err
		}
		uploads = append(uploads, services.Upload{
			Field:    field,
			FileName: filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Data:     data,
		})
	}

	return p, uploads, nil
}

func (a *App) promptBool(prompt string, current bool) (bool, error) {
	cur := "n"
	if current {
		cur = "y"
	}
	text, err := GetOptionalText(a.reader, prompt, cur, os.Stdout)
	if err != nil {
		return current, err
	}
	return strings.EqualFold(text, "y"), nil
}

func reportOutcome(outcome catalog.Outcome, verb string) {
	if outcome.RolledBack {
		log.Printf("%s rejected by server, changes reverted: %s", verb, outcome.Err.Error())
		return
	}
	log.Printf("%s. Catalog now holds %d products", verb, len(outcome.Products))
}

func printProductLine(p models.Product) {
	flags := ""
	if p.EnOferta {
		flags += " [oferta]"
	}
	if !p.Activo {
		flags += " [inactivo]"
	}
	fmt.Printf("%s  %s  $%.2f  %s  stock:%d%s\n", p.ID, p.Nombre, p.Precio, p.Categoria, p.Stock, flags)
}
