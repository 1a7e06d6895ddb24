package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Tienda-bot/internal/application/session"
	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/application/wizard"
	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/locales"
	"github.com/jhoicas/Tienda-bot/pkg/logger"
)

// recentOrdersLimit cuántos pedidos lista el comando /orders.
const recentOrdersLimit = 10

// Deps dependencias del despachador.
type Deps struct {
	Catalog       *usecase.CatalogUseCase
	Orders        *usecase.OrderUseCase
	Sessions      *session.Store
	OrderWizard   *wizard.OrderWizard
	CatalogWizard *wizard.CatalogWizard
	Locales       *locales.Locales
	AdminIDs      []int64
	Log           *logger.Logger
}

// Dispatcher enruta cada evento entrante según su clase, la sesión y los
// permisos del remitente, y produce la respuesta.
type Dispatcher struct {
	catalog       *usecase.CatalogUseCase
	orders        *usecase.OrderUseCase
	sessions      *session.Store
	orderWizard   *wizard.OrderWizard
	catalogWizard *wizard.CatalogWizard
	loc           *locales.Locales
	adminIDs      map[int64]struct{}
	log           *logger.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(deps Deps) *Dispatcher {
	admins := make(map[int64]struct{}, len(deps.AdminIDs))
	for _, id := range deps.AdminIDs {
		admins[id] = struct{}{}
	}
	return &Dispatcher{
		catalog:       deps.Catalog,
		orders:        deps.Orders,
		sessions:      deps.Sessions,
		orderWizard:   deps.OrderWizard,
		catalogWizard: deps.CatalogWizard,
		loc:           deps.Locales,
		adminIDs:      admins,
		log:           deps.Log,
	}
}

// Handle procesa un evento entrante y devuelve la respuesta. Si nada reclama
// el evento devuelve ErrUnroutableInput con respuesta vacía: el usuario no ve
// nada, pero el resultado queda observable.
//
// Prioridad para texto, calcada del bot original: comandos y panel admin
// primero, luego los pasos del asistente de catálogo, luego los textos del
// menú principal, y por último el paso de dirección del pedido. Los botones
// se enrutan siempre por su dato, tengan o no asistente activo: pulsar
// "comprar" o "/add_product" en medio de otro asistente lo abandona sin aviso.
func (d *Dispatcher) Handle(ctx context.Context, ev InboundEvent) (Reply, error) {
	lang := d.loc.Resolve(ev.LanguageCode)

	switch ev.Kind {
	case KindButton:
		return d.handleButton(ctx, ev, lang)

	case KindText:
		if reply, ok := d.handleCommand(ev, lang); ok {
			return reply, nil
		}
		if st, ok := d.sessions.Get(ev.SessionKey); ok && wizard.IsCatalogState(st) {
			return d.runCatalogWizard(ev, st, lang)
		}
		if reply, ok := d.handleMenuText(ev, lang); ok {
			return reply, nil
		}
		if st, ok := d.sessions.Get(ev.SessionKey); ok && wizard.IsOrderState(st) {
			return d.runOrderWizard(ctx, ev, st, lang)
		}
		return Reply{}, domain.ErrUnroutableInput

	case KindPhoto:
		if st, ok := d.sessions.Get(ev.SessionKey); ok && wizard.IsCatalogState(st) {
			return d.runCatalogWizard(ev, st, lang)
		}
		return Reply{}, domain.ErrUnroutableInput
	}
	return Reply{}, domain.ErrUnroutableInput
}

func (d *Dispatcher) isAdmin(userID int64) bool {
	_, ok := d.adminIDs[userID]
	return ok
}

// ── Comandos y menú ───────────────────────────────────────────────────────────

// handleCommand atiende comandos "/..." y el botón del panel admin. El
// segundo valor indica si el texto fue reclamado.
func (d *Dispatcher) handleCommand(ev InboundEvent, lang string) (Reply, bool) {
	text := strings.TrimSpace(ev.Payload)
	switch text {
	case "/start":
		return Reply{
			Text:     d.loc.Text(lang, "welcome"),
			Keyboard: mainKeyboard(d.loc, lang, d.isAdmin(ev.UserID)),
		}, true

	case "/admin", d.loc.Text(locales.LangRU, "admin_panel"), d.loc.Text(locales.LangEN, "admin_panel"):
		if !d.isAdmin(ev.UserID) {
			return Reply{}, false
		}
		return Reply{Text: d.loc.Text(lang, "admin_panel_text")}, true

	case "/stats":
		if !d.isAdmin(ev.UserID) {
			return Reply{}, false
		}
		return d.statsReply(lang), true

	case "/orders":
		if !d.isAdmin(ev.UserID) {
			return Reply{}, false
		}
		return d.ordersReply(lang), true

	case "/add_product":
		if !d.isAdmin(ev.UserID) {
			return Reply{}, false
		}
		// Arrancar el asistente pisa cualquier estado anterior de la sesión.
		d.sessions.Put(ev.SessionKey, wizard.AwaitingName{})
		return Reply{Text: d.loc.Text(lang, "enter_name")}, true
	}
	return Reply{}, false
}

// handleMenuText atiende los botones de texto del menú principal en
// cualquiera de los dos idiomas.
func (d *Dispatcher) handleMenuText(ev InboundEvent, lang string) (Reply, bool) {
	switch strings.TrimSpace(ev.Payload) {
	case d.loc.Text(locales.LangRU, "catalog"), d.loc.Text(locales.LangEN, "catalog"):
		return d.catalogReply(lang), true
	case d.loc.Text(locales.LangRU, "help"), d.loc.Text(locales.LangEN, "help"):
		return Reply{Text: d.loc.Text(lang, "help_text")}, true
	case d.loc.Text(locales.LangRU, "manager"), d.loc.Text(locales.LangEN, "manager"):
		return Reply{Text: d.loc.Text(lang, "manager_text")}, true
	}
	return Reply{}, false
}

// ── Botones ───────────────────────────────────────────────────────────────────

func (d *Dispatcher) handleButton(ctx context.Context, ev InboundEvent, lang string) (Reply, error) {
	data := ev.Payload
	switch {
	case data == "catalog":
		return d.catalogReply(lang), nil

	case data == "close_catalog":
		// El transporte descarta el mensaje; el núcleo no tiene nada que decir.
		return Reply{}, nil

	case strings.HasPrefix(data, "prod_"):
		return d.productReply(data, lang)

	case strings.HasPrefix(data, "size_"):
		return d.sizeReply(data, lang)

	case strings.HasPrefix(data, "buy_"):
		return d.buyReply(ev, data, lang)

	case strings.HasPrefix(data, "status_"):
		if !d.isAdmin(ev.UserID) {
			return Reply{}, domain.ErrUnroutableInput
		}
		return d.statusReply(data, lang)
	}
	return Reply{}, domain.ErrUnroutableInput
}

func (d *Dispatcher) catalogReply(lang string) Reply {
	products, err := d.catalog.List()
	if err != nil {
		d.log.Error().Err(err).Msg("listar catálogo")
		return Reply{}
	}
	if len(products) == 0 {
		return Reply{Text: d.loc.Text(lang, "catalog_empty")}
	}
	return Reply{
		Text:     d.loc.Text(lang, "catalog_title"),
		Keyboard: catalogKeyboard(products, d.loc, lang),
	}
}

// productReply ficha del producto con teclado de tallas. Producto inexistente
// responde la alerta de no encontrado y devuelve al catálogo.
func (d *Dispatcher) productReply(data, lang string) (Reply, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, "prod_"), 10, 64)
	if err != nil {
		return Reply{}, domain.ErrUnroutableInput
	}
	p, err := d.catalog.GetByID(id)
	if err != nil {
		return Reply{}, fmt.Errorf("cargar producto %d: %w", id, err)
	}
	if p == nil {
		return Reply{Text: d.loc.Text(lang, "product_not_found")}, nil
	}
	text := d.loc.Text(lang, "product_card", p.Name, p.Description, p.Price.String()) +
		"\n\n" + d.loc.Text(lang, "select_size")
	reply := Reply{Text: text, Keyboard: sizesKeyboard(p, d.loc, lang)}
	if p.HasPhoto() {
		reply.PhotoRef = p.PhotoRef
	}
	return reply, nil
}

// sizeReply ficha con talla elegida y botón de compra.
func (d *Dispatcher) sizeReply(data, lang string) (Reply, error) {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 {
		return Reply{}, domain.ErrUnroutableInput
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Reply{}, domain.ErrUnroutableInput
	}
	size := parts[2]
	p, err := d.catalog.GetByID(id)
	if err != nil {
		return Reply{}, fmt.Errorf("cargar producto %d: %w", id, err)
	}
	if p == nil {
		return Reply{Text: d.loc.Text(lang, "product_not_found")}, nil
	}
	text := d.loc.Text(lang, "product_card", p.Name, p.Description, p.Price.String()) +
		"\n\n" + d.loc.Text(lang, "selected_size", size)
	return Reply{Text: text, Keyboard: buyKeyboard(p.ID, size, d.loc, lang)}, nil
}

// buyReply guarda producto y talla en la sesión y pide la dirección: entrada
// al asistente de pedido.
func (d *Dispatcher) buyReply(ev InboundEvent, data, lang string) (Reply, error) {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 {
		return Reply{}, domain.ErrUnroutableInput
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Reply{}, domain.ErrUnroutableInput
	}
	d.sessions.Put(ev.SessionKey, wizard.AwaitingAddress{ProductID: id, Size: parts[2]})
	return Reply{Text: d.loc.Text(lang, "enter_address")}, nil
}

func (d *Dispatcher) statusReply(data, lang string) (Reply, error) {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 {
		return Reply{}, domain.ErrUnroutableInput
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Reply{}, domain.ErrUnroutableInput
	}
	status := parts[2]
	if err := d.orders.UpdateStatus(id, status); err != nil {
		return Reply{}, fmt.Errorf("actualizar estado del pedido %d: %w", id, err)
	}
	return Reply{Text: d.loc.Text(lang, "status_updated", id, status)}, nil
}

// ── Reportes admin ────────────────────────────────────────────────────────────

func (d *Dispatcher) statsReply(lang string) Reply {
	stats, err := d.orders.Stats()
	if err != nil {
		d.log.Error().Err(err).Msg("estadísticas de ventas")
		return Reply{}
	}
	return Reply{Text: d.loc.Text(lang, "stats_text", stats.TotalOrders, stats.TotalSales.String())}
}

func (d *Dispatcher) ordersReply(lang string) Reply {
	orders, err := d.orders.Recent(recentOrdersLimit)
	if err != nil {
		d.log.Error().Err(err).Msg("listar pedidos recientes")
		return Reply{}
	}
	if len(orders) == 0 {
		return Reply{Text: d.loc.Text(lang, "no_orders")}
	}
	cards := make([]string, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, d.loc.Text(lang, "order_card",
			o.ID, o.Username, o.Address, o.ProductID, o.Size,
			o.CreatedAt.Format(time.DateTime), o.Status))
	}
	return Reply{
		Text:     strings.Join(cards, "\n\n"),
		Keyboard: ordersKeyboard(orders, d.loc, lang),
	}
}

// ── Asistentes ────────────────────────────────────────────────────────────────

func (d *Dispatcher) wizardEvent(ev InboundEvent) wizard.Event {
	wev := wizard.Event{UserID: ev.UserID, Username: ev.Username}
	switch ev.Kind {
	case KindText:
		wev.Kind = wizard.KindText
		wev.Text = ev.Payload
	case KindButton:
		wev.Kind = wizard.KindButton
		wev.Text = ev.Payload
	case KindPhoto:
		wev.Kind = wizard.KindPhoto
		wev.PhotoRef = ev.Payload
	}
	return wev
}

func (d *Dispatcher) runCatalogWizard(ev InboundEvent, st wizard.State, lang string) (Reply, error) {
	next, text, err := d.catalogWizard.Transition(st, d.wizardEvent(ev), lang)
	return d.finishTransition(ev.SessionKey, next, text, err)
}

func (d *Dispatcher) runOrderWizard(ctx context.Context, ev InboundEvent, st wizard.State, lang string) (Reply, error) {
	next, text, err := d.orderWizard.Transition(ctx, st, d.wizardEvent(ev), lang)
	return d.finishTransition(ev.SessionKey, next, text, err)
}

// finishTransition aplica el resultado de una transición a la sesión.
// Estado nil limpia la sesión (asistente terminado); un fallo de persistencia
// conserva el estado, se registra y el usuario recibe el texto de reintento.
func (d *Dispatcher) finishTransition(key string, next wizard.State, text string, err error) (Reply, error) {
	if errors.Is(err, domain.ErrUnroutableInput) {
		return Reply{}, err
	}
	if next == nil {
		d.sessions.Clear(key)
	} else {
		d.sessions.Put(key, next)
	}
	if err != nil {
		d.log.Error().Err(err).Str("session", key).Msg("fallo de persistencia en asistente")
	}
	return Reply{Text: text}, nil
}
