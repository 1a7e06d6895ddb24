package dispatch_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-bot/internal/application/session"
	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/application/wizard"
	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/infrastructure/sqlite"
	"github.com/jhoicas/Tienda-bot/internal/interfaces/dispatch"
	"github.com/jhoicas/Tienda-bot/internal/locales"
	"github.com/jhoicas/Tienda-bot/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminID  = int64(100)
	buyerID  = int64(200)
	adminKey = "chat:100"
	buyerKey = "chat:200"
)

type testBot struct {
	dispatcher *dispatch.Dispatcher
	store      *sqlite.Store
	sessions   *session.Store
	catalog    *usecase.CatalogUseCase
	orders     *usecase.OrderUseCase
	loc        *locales.Locales
}

// newTestBot monta el despachador completo sobre una base SQLite real de
// archivo temporal. Solo queda fuera el transporte.
func newTestBot(t *testing.T) *testBot {
	t.Helper()
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "bot.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.InitSchema())

	catalogUC := usecase.NewCatalogUseCase(sqlite.NewProductRepository(store.DB))
	orderUC := usecase.NewOrderUseCase(sqlite.NewTxRunner(store), sqlite.NewOrderRepository(store.DB))
	loc := locales.New(locales.LangEN)
	sessions := session.NewStore()

	d := dispatch.NewDispatcher(dispatch.Deps{
		Catalog:       catalogUC,
		Orders:        orderUC,
		Sessions:      sessions,
		OrderWizard:   wizard.NewOrderWizard(orderUC, loc),
		CatalogWizard: wizard.NewCatalogWizard(catalogUC, loc),
		Locales:       loc,
		AdminIDs:      []int64{adminID},
		Log:           logger.Nop(),
	})
	return &testBot{dispatcher: d, store: store, sessions: sessions, catalog: catalogUC, orders: orderUC, loc: loc}
}

func (b *testBot) text(t *testing.T, key string, userID int64, payload string) dispatch.Reply {
	t.Helper()
	reply, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
		SessionKey: key, UserID: userID, Username: "user" + fmt.Sprint(userID),
		LanguageCode: "en", Kind: dispatch.KindText, Payload: payload,
	})
	require.NoError(t, err)
	return reply
}

func (b *testBot) button(t *testing.T, key string, userID int64, data string) dispatch.Reply {
	t.Helper()
	reply, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
		SessionKey: key, UserID: userID, Username: "user" + fmt.Sprint(userID),
		LanguageCode: "en", Kind: dispatch.KindButton, Payload: data,
	})
	require.NoError(t, err)
	return reply
}

func (b *testBot) seedProduct(t *testing.T, name, price string, sizes ...string) int64 {
	t.Helper()
	id, err := b.catalog.AddProduct(usecase.CreateProductInput{
		Name: name, Description: "desc", Price: decimal.RequireFromString(price),
		Sizes: sizes, PhotoRef: entity.PhotoNone,
	})
	require.NoError(t, err)
	return id
}

func en(b *testBot, key string, args ...any) string {
	return b.loc.Text(locales.LangEN, key, args...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú y comandos
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatcher_Start_MenuSegunRol(t *testing.T) {
	b := newTestBot(t)

	reply := b.text(t, buyerKey, buyerID, "/start")
	assert.Equal(t, en(b, "welcome"), reply.Text)
	require.NotNil(t, reply.Keyboard)
	assert.Len(t, reply.Keyboard.Rows, 2, "el comprador no ve la fila de admin")

	reply = b.text(t, adminKey, adminID, "/start")
	require.NotNil(t, reply.Keyboard)
	require.Len(t, reply.Keyboard.Rows, 3, "el admin ve la fila extra del panel")
	assert.Equal(t, en(b, "admin_panel"), reply.Keyboard.Rows[2][0].Label)
}

func TestDispatcher_TextosDeMenu(t *testing.T) {
	b := newTestBot(t)

	assert.Equal(t, en(b, "help_text"), b.text(t, buyerKey, buyerID, en(b, "help")).Text)
	assert.Equal(t, en(b, "manager_text"), b.text(t, buyerKey, buyerID, en(b, "manager")).Text)

	// El texto del menú funciona también en el otro idioma, con respuesta en
	// el idioma del remitente.
	reply, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
		SessionKey: buyerKey, UserID: buyerID, LanguageCode: "en",
		Kind: dispatch.KindText, Payload: b.loc.Text(locales.LangRU, "help"),
	})
	require.NoError(t, err)
	assert.Equal(t, en(b, "help_text"), reply.Text)
}

// Texto que nada reclama: error explícito, sin respuesta para el usuario.
func TestDispatcher_TextoSinRuta(t *testing.T) {
	b := newTestBot(t)

	_, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
		SessionKey: buyerKey, UserID: buyerID, LanguageCode: "en",
		Kind: dispatch.KindText, Payload: "hola, ¿hay alguien?",
	})
	assert.ErrorIs(t, err, domain.ErrUnroutableInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos de admin
// ──────────────────────────────────────────────────────────────────────────────

// Los comandos de admin en manos de un no-admin caen hasta "sin ruta": el
// usuario no recibe ni siquiera un "no autorizado".
func TestDispatcher_ComandosAdmin_NoAdminSinRuta(t *testing.T) {
	b := newTestBot(t)

	for _, cmd := range []string{"/admin", "/stats", "/orders", "/add_product"} {
		_, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
			SessionKey: buyerKey, UserID: buyerID, LanguageCode: "en",
			Kind: dispatch.KindText, Payload: cmd,
		})
		assert.ErrorIs(t, err, domain.ErrUnroutableInput, "comando %s", cmd)
	}
	_, ok := b.sessions.Get(buyerKey)
	assert.False(t, ok, "/add_product denegado no debe dejar estado de asistente")
}

func TestDispatcher_BotonEstado_NoAdminSinRuta(t *testing.T) {
	b := newTestBot(t)

	_, err := b.dispatcher.Handle(context.Background(), dispatch.InboundEvent{
		SessionKey: buyerKey, UserID: buyerID, LanguageCode: "en",
		Kind: dispatch.KindButton, Payload: "status_1_" + entity.StatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrUnroutableInput)
}

func TestDispatcher_PanelAdmin(t *testing.T) {
	b := newTestBot(t)

	reply := b.text(t, adminKey, adminID, "/admin")
	assert.Equal(t, en(b, "admin_panel_text"), reply.Text)

	// El botón del menú lleva al mismo panel.
	reply = b.text(t, adminKey, adminID, en(b, "admin_panel"))
	assert.Equal(t, en(b, "admin_panel_text"), reply.Text)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatcher_CatalogoVacio(t *testing.T) {
	b := newTestBot(t)
	reply := b.button(t, buyerKey, buyerID, "catalog")
	assert.Equal(t, en(b, "catalog_empty"), reply.Text)
	assert.Nil(t, reply.Keyboard)
}

func TestDispatcher_CatalogoConProductos(t *testing.T) {
	b := newTestBot(t)
	capID := b.seedProduct(t, "Cap", "19.99", "S", "M")
	b.seedProduct(t, "Tee", "22.00", "M")

	reply := b.button(t, buyerKey, buyerID, "catalog")
	assert.Equal(t, en(b, "catalog_title"), reply.Text)
	require.NotNil(t, reply.Keyboard)
	assert.True(t, reply.Keyboard.Inline)
	require.Len(t, reply.Keyboard.Rows, 3, "un producto por fila más el botón de cerrar")
	assert.Equal(t, "Cap", reply.Keyboard.Rows[0][0].Label)
	assert.Equal(t, fmt.Sprintf("prod_%d", capID), reply.Keyboard.Rows[0][0].Data)
	assert.Equal(t, "close_catalog", reply.Keyboard.Rows[2][0].Data)

	// Cerrar el catálogo no produce respuesta.
	reply = b.button(t, buyerKey, buyerID, "close_catalog")
	assert.Equal(t, dispatch.Reply{}, reply)
}

func TestDispatcher_FichaDeProducto(t *testing.T) {
	b := newTestBot(t)
	pid := b.seedProduct(t, "Cap", "19.99", "S", "M", "L")

	reply := b.button(t, buyerKey, buyerID, fmt.Sprintf("prod_%d", pid))
	assert.Contains(t, reply.Text, "Cap")
	assert.Contains(t, reply.Text, "19.99")
	assert.Contains(t, reply.Text, en(b, "select_size"))
	require.NotNil(t, reply.Keyboard)
	// Tres tallas de a dos por fila (2+1) más la fila de volver.
	require.Len(t, reply.Keyboard.Rows, 3)
	assert.Equal(t, fmt.Sprintf("size_%d_S", pid), reply.Keyboard.Rows[0][0].Data)
	assert.Equal(t, fmt.Sprintf("size_%d_L", pid), reply.Keyboard.Rows[1][0].Data)
	assert.Equal(t, "catalog", reply.Keyboard.Rows[2][0].Data)
	assert.Empty(t, reply.PhotoRef, "producto sin foto no debe adjuntar nada")
}

func TestDispatcher_ProductoInexistente(t *testing.T) {
	b := newTestBot(t)
	reply := b.button(t, buyerKey, buyerID, "prod_999")
	assert.Equal(t, en(b, "product_not_found"), reply.Text)

	reply = b.button(t, buyerKey, buyerID, "size_999_M")
	assert.Equal(t, en(b, "product_not_found"), reply.Text)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistente de catálogo vía despachador
// ──────────────────────────────────────────────────────────────────────────────

// El paso de precio tiene prioridad sobre los textos de menú: durante el
// asistente, un número es un precio y no un intento de abrir el catálogo.
func TestDispatcher_AsistenteDeCatalogo_PrecedenciaSobreMenu(t *testing.T) {
	b := newTestBot(t)

	b.text(t, adminKey, adminID, "/add_product")
	b.text(t, adminKey, adminID, en(b, "catalog")) // nombre igual al botón del menú
	reply := b.text(t, adminKey, adminID, "descripción")
	assert.Equal(t, en(b, "enter_price"), reply.Text)

	st, ok := b.sessions.Get(adminKey)
	require.True(t, ok)
	price, ok := st.(wizard.AwaitingPrice)
	require.True(t, ok)
	assert.Equal(t, en(b, "catalog"), price.Name,
		"el texto del menú debe haberse tomado como nombre del producto")
}

// Un comando en medio del asistente lo abandona y arranca de cero.
func TestDispatcher_ComandoReiniciaAsistente(t *testing.T) {
	b := newTestBot(t)

	b.text(t, adminKey, adminID, "/add_product")
	b.text(t, adminKey, adminID, "Cap")
	reply := b.text(t, adminKey, adminID, "/add_product")
	assert.Equal(t, en(b, "enter_name"), reply.Text)

	st, ok := b.sessions.Get(adminKey)
	require.True(t, ok)
	assert.IsType(t, wizard.AwaitingName{}, st, "el asistente debe volver al primer paso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: alta de producto + compra
// ──────────────────────────────────────────────────────────────────────────────

// El admin publica un producto por el asistente; el comprador lo encuentra,
// elige talla, manda su dirección y el pedido queda en estado New con el
// agregado de ventas reflejando la compra.
func TestDispatcher_AltaYCompraDePuntaAPunta(t *testing.T) {
	b := newTestBot(t)

	// Alta por el asistente de admin.
	assert.Equal(t, en(b, "enter_name"), b.text(t, adminKey, adminID, "/add_product").Text)
	assert.Equal(t, en(b, "enter_description"), b.text(t, adminKey, adminID, "Cap").Text)
	assert.Equal(t, en(b, "enter_price"), b.text(t, adminKey, adminID, "Classic cap").Text)
	assert.Equal(t, en(b, "enter_sizes"), b.text(t, adminKey, adminID, "19.99").Text)
	assert.Equal(t, en(b, "enter_photo"), b.text(t, adminKey, adminID, "S, M, L").Text)
	assert.Equal(t, en(b, "product_saved"), b.text(t, adminKey, adminID, "none").Text)

	_, ok := b.sessions.Get(adminKey)
	assert.False(t, ok, "el asistente de admin debe haber terminado")

	// El comprador navega y compra.
	catalog := b.button(t, buyerKey, buyerID, "catalog")
	require.NotNil(t, catalog.Keyboard)
	prodData := catalog.Keyboard.Rows[0][0].Data

	b.button(t, buyerKey, buyerID, prodData)
	sizeData := fmt.Sprintf("size_%s_M", prodData[len("prod_"):])
	sizeReply := b.button(t, buyerKey, buyerID, sizeData)
	assert.Contains(t, sizeReply.Text, en(b, "selected_size", "M"))

	buyData := fmt.Sprintf("buy_%s_M", prodData[len("prod_"):])
	assert.Equal(t, en(b, "enter_address"), b.button(t, buyerKey, buyerID, buyData).Text)

	final := b.text(t, buyerKey, buyerID, "221B Baker St")
	assert.Contains(t, final.Text, "#1", "la confirmación incluye el id del pedido")

	_, ok = b.sessions.Get(buyerKey)
	assert.False(t, ok, "la sesión del comprador debe quedar limpia")

	// El pedido quedó persistido con estado New y el usuario registrado.
	orders, err := b.orders.Recent(10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, buyerID, orders[0].UserID)
	assert.Equal(t, "M", orders[0].Size)
	assert.Equal(t, "221B Baker St", orders[0].Address)
	assert.Equal(t, entity.StatusNew, orders[0].Status)

	stats, err := b.orders.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.True(t, stats.TotalSales.Equal(decimal.RequireFromString("19.99")),
		"la venta debe sumar el precio del producto; fue %s", stats.TotalSales)

	// El admin ve el pedido y lo completa desde el listado.
	list := b.text(t, adminKey, adminID, "/orders")
	assert.Contains(t, list.Text, "221B Baker St")
	require.NotNil(t, list.Keyboard)

	done := b.button(t, adminKey, adminID, fmt.Sprintf("status_%d_%s", orders[0].ID, entity.StatusCompleted))
	assert.Equal(t, en(b, "status_updated", orders[0].ID, entity.StatusCompleted), done.Text)

	orders, err = b.orders.Recent(10)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, orders[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes admin
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatcher_StatsYOrdersVacios(t *testing.T) {
	b := newTestBot(t)

	reply := b.text(t, adminKey, adminID, "/stats")
	assert.Equal(t, en(b, "stats_text", 0, "0"), reply.Text)

	reply = b.text(t, adminKey, adminID, "/orders")
	assert.Equal(t, en(b, "no_orders"), reply.Text)
}
