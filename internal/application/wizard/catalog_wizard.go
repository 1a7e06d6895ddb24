package wizard

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/locales"
)

// CatalogWizard asistente de alta de producto (admin). Cinco pasos en orden
// estricto: nombre, descripción, precio, tallas, foto; luego commit.
type CatalogWizard struct {
	catalog *usecase.CatalogUseCase
	loc     *locales.Locales
}

// NewCatalogWizard construye el asistente.
func NewCatalogWizard(catalog *usecase.CatalogUseCase, loc *locales.Locales) *CatalogWizard {
	return &CatalogWizard{catalog: catalog, loc: loc}
}

// ParsePrice parsea el precio aceptando coma o punto como separador decimal.
// Rechaza no numéricos y negativos con ErrInvalidInput.
func ParsePrice(text string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	price, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	if price.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	return price, nil
}

// Transition aplica el evento al paso actual. Cada paso acepta solo su clase
// de entrada; lo demás es ErrUnroutableInput sin avanzar (el asistente queda
// clavado en el paso hasta recibir algo válido). El precio es la única
// validación de campo: ante fallo de parseo se repregunta sin avanzar ni
// tocar los campos recogidos.
func (w *CatalogWizard) Transition(st State, ev Event, lang string) (State, string, error) {
	switch cur := st.(type) {
	case AwaitingName:
		if ev.Kind != KindText {
			return st, "", domain.ErrUnroutableInput
		}
		return AwaitingDescription{Name: ev.Text}, w.loc.Text(lang, "enter_description"), nil

	case AwaitingDescription:
		if ev.Kind != KindText {
			return st, "", domain.ErrUnroutableInput
		}
		return AwaitingPrice{Name: cur.Name, Description: ev.Text}, w.loc.Text(lang, "enter_price"), nil

	case AwaitingPrice:
		if ev.Kind != KindText {
			return st, "", domain.ErrUnroutableInput
		}
		price, err := ParsePrice(ev.Text)
		if err != nil {
			return cur, w.loc.Text(lang, "price_invalid"), nil
		}
		return AwaitingSizes{Name: cur.Name, Description: cur.Description, Price: price}, w.loc.Text(lang, "enter_sizes"), nil

	case AwaitingSizes:
		if ev.Kind != KindText {
			return st, "", domain.ErrUnroutableInput
		}
		return AwaitingPhoto{Name: cur.Name, Description: cur.Description, Price: cur.Price, Sizes: ev.Text}, w.loc.Text(lang, "enter_photo"), nil

	case AwaitingPhoto:
		var photoRef string
		switch {
		case ev.Kind == KindPhoto:
			photoRef = ev.PhotoRef
		case ev.Kind == KindText && ev.Text == entity.PhotoNone:
			photoRef = entity.PhotoNone
		default:
			// Ni foto ni "none": el asistente queda clavado en este paso.
			return st, "", domain.ErrUnroutableInput
		}
		return w.commit(cur, photoRef, lang)
	}
	return st, "", domain.ErrUnroutableInput
}

// commit persiste el producto con los cinco campos recogidos. Ante fallo de
// persistencia el estado se conserva para poder reintentar el último paso.
func (w *CatalogWizard) commit(cur AwaitingPhoto, photoRef, lang string) (State, string, error) {
	_, err := w.catalog.AddProduct(usecase.CreateProductInput{
		Name:        cur.Name,
		Description: cur.Description,
		Price:       cur.Price,
		Sizes:       entity.SplitSizes(cur.Sizes),
		PhotoRef:    photoRef,
	})
	if err != nil {
		return cur, w.loc.Text(lang, "product_retry"), err
	}
	return nil, w.loc.Text(lang, "product_saved"), nil
}
