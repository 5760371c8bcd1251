// Package catalog orquesta la página de catálogo: traduce eventos de la vista en operaciones
// sobre el almacén, recalcula el filtro y produce la estructura de presentación.
package catalog

import (
	domcatalog "github.com/jhoicas/Activos-api/internal/domain/catalog"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Page destino de navegación emitido hacia arriba; el controlador nunca navega.
type Page string

const (
	PageCatalog  Page = "catalogo"
	PageRegister Page = "cadastro"
)

// View resultado de un evento: criterios vigentes, estructura de presentación y señales.
type View struct {
	Criteria domcatalog.Criteria
	GroupBy  bool
	Total    int // tamaño de la lista completa
	Display  domcatalog.Display
	Empty    bool // la vista muestra el marcador de "sin resultados" en lugar de la lista
	Navigate Page
}

// Controller controlador de página de una sesión de catálogo. Síncrono y sin estado
// compartido: quien lo posea debe serializar las llamadas.
type Controller struct {
	store    *domcatalog.Store
	filtered []*entity.Asset
	filter   func([]*entity.Asset, domcatalog.Criteria) []*entity.Asset
}

// NewController crea el controlador con la lista inicial y sin criterios.
func NewController(records []*entity.Asset) *Controller {
	c := &Controller{store: domcatalog.NewStore(), filter: domcatalog.Filter}
	c.store.SetAssets(records)
	c.refilter()
	return c
}

// OnSearchChange evento: cambia el texto de búsqueda.
func (c *Controller) OnSearchChange(text string) View {
	cr := c.store.Criteria()
	return c.ApplyCriteria(text, cr.Category, cr.Status)
}

// OnCategoryChange evento: cambia la selección de categoría.
func (c *Controller) OnCategoryChange(category string) View {
	cr := c.store.Criteria()
	return c.ApplyCriteria(cr.Search, category, cr.Status)
}

// OnStatusChange evento: cambia la selección de estado.
func (c *Controller) OnStatusChange(status string) View {
	cr := c.store.Criteria()
	return c.ApplyCriteria(cr.Search, cr.Category, status)
}

// ApplyCriteria actualiza los tres criterios a la vez, recalcula el filtro y vuelve a presentar.
func (c *Controller) ApplyCriteria(search, category, status string) View {
	c.store.SetCriteria(search, category, status)
	c.refilter()
	return c.View()
}

// OnGroupToggle invierte el modo de agrupación y vuelve a presentar la lista ya filtrada,
// sin recalcular el filtro.
func (c *Controller) OnGroupToggle() View {
	c.store.SetGroupBy(!c.store.GroupBy())
	return c.View()
}

// Reload reemplaza la lista completa (p. ej. tras un registro) y recalcula con los criterios vigentes.
func (c *Controller) Reload(records []*entity.Asset) View {
	c.store.SetAssets(records)
	c.refilter()
	return c.View()
}

// OnRegisterRequested evento "Cadastrar Ativo": emite la señal de navegación al registro.
func (c *Controller) OnRegisterRequested() View {
	v := c.View()
	v.Navigate = PageRegister
	return v
}

// View presenta el estado actual.
func (c *Controller) View() View {
	return View{
		Criteria: c.store.Criteria(),
		GroupBy:  c.store.GroupBy(),
		Total:    len(c.store.Assets()),
		Display:  domcatalog.Present(c.filtered, c.store.GroupBy()),
		Empty:    len(c.filtered) == 0,
	}
}

// Categories categorías presentes en la lista completa, en orden de primera aparición
// (opciones del selector de categoría).
func (c *Controller) Categories() []entity.AssetCategory {
	return Categories(c.store.Assets())
}

func (c *Controller) refilter() {
	c.filtered = c.filter(c.store.Assets(), c.store.Criteria())
}

// Categories devuelve las categorías distintas de records en orden de primera aparición.
func Categories(records []*entity.Asset) []entity.AssetCategory {
	groups := domcatalog.Present(records, true).Groups
	out := make([]entity.AssetCategory, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Category)
	}
	return out
}
