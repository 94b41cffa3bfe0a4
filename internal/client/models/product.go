// Package models defines the catalog data types exchanged with the remote
// API and held by the client-side stores.
package models

// Product is one catalog item. JSON field names follow the remote API
// contract. Id is server-assigned; it is empty on creation requests.
type Product struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Categoria   string  `json:"categoria"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Activo      bool    `json:"activo"`
	EnOferta    bool    `json:"en_oferta"`
	Imagen      string  `json:"imagen"`
	Imagen2     string  `json:"imagen2"`
	Imagen3     string  `json:"imagen3"`
	Video       string  `json:"video"`
}

// IsNew reports whether the product has not been assigned a server id yet.
func (p Product) IsNew() bool {
	return p.ID == ""
}
