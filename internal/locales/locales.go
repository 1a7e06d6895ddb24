// Package locales resuelve los textos de respuesta del bot por idioma.
// La búsqueda de textos es un colaborador simple: clave -> plantilla.
package locales

import (
	"fmt"

	"golang.org/x/text/language"
)

// Idiomas soportados. El primero es el fallback del matcher.
const (
	LangRU = "ru"
	LangEN = "en"
)

var supported = []language.Tag{
	language.Russian, // fallback
	language.English,
}

var texts = map[string]map[string]string{
	LangEN: {
		"welcome":           "👋 Welcome to the shop! Pick an option from the menu below.",
		"catalog":           "🛍 Catalog",
		"help":              "ℹ️ Help",
		"manager":           "📞 Manager",
		"admin_panel":       "⚙️ Admin Panel",
		"help_text":         "ℹ️ Browse the catalog, pick a size and send us your address — we take care of the rest.",
		"manager_text":      "📞 Questions about an order? Write to the shop manager directly.",
		"catalog_title":     "🛍 Our catalog — tap a product:",
		"catalog_empty":     "The catalog is empty for now, come back later!",
		"close":             "✖️ Close",
		"back":              "⬅️ Back",
		"back_to_catalog":   "⬅️ Back to catalog",
		"buy":               "🛒 Buy",
		"product_card":      "👕 %s\n\n📝 %s\n\n💰 Price: %s$",
		"select_size":       "Select a size:",
		"selected_size":     "Selected size: %s",
		"enter_address":     "🏠 Send the delivery address as a message:",
		"order_success":     "✅ Order #%d accepted! We will contact you shortly.",
		"order_retry":       "⚠️ Could not save the order, please send the address again.",
		"product_not_found": "Product not found 😢",
		"admin_panel_text":  "🔧 Admin panel\n\n/add_product — add a new product\n/orders — recent orders\n/stats — sales stats",
		"stats_text":        "📊 Shop stats:\n\n📦 Total orders: %d\n💰 Total sales: %s$",
		"no_orders":         "No orders yet.",
		"order_card":        "📦 Order #%d\n👤 Buyer: @%s\n🏠 Address: %s\n👕 Product ID: %d (size %s)\n🕒 Date: %s\n🔄 Status: %s",
		"status_complete":   "✅ Complete",
		"status_cancel":     "❌ Cancel",
		"status_updated":    "Order #%d status changed to %s",
		"enter_name":        "📝 Enter the product name:",
		"enter_description": "📝 Enter the product description:",
		"enter_price":       "💰 Enter the product price (number only):",
		"price_invalid":     "❌ The price must be a number (e.g. 1500 or 1500.50).\nTry again:",
		"enter_sizes":       "📏 Enter the available sizes, comma separated (e.g. S, M, L):",
		"enter_photo":       "📸 Send the product photo (or the text 'none' if there is no photo):",
		"product_saved":     "✅ Product added to the catalog!",
		"product_retry":     "⚠️ Could not save the product, please send the photo again.",
	},
	LangRU: {
		"welcome":           "👋 Добро пожаловать в магазин! Выберите пункт меню ниже.",
		"catalog":           "🛍 Каталог",
		"help":              "ℹ️ Помощь",
		"manager":           "📞 Менеджер",
		"admin_panel":       "⚙️ Админ панель",
		"help_text":         "ℹ️ Выберите товар в каталоге, укажите размер и отправьте адрес — остальное мы сделаем сами.",
		"manager_text":      "📞 Вопросы по заказу? Напишите менеджеру магазина напрямую.",
		"catalog_title":     "🛍 Наш каталог — выберите товар:",
		"catalog_empty":     "Каталог пока пуст, загляните позже!",
		"close":             "✖️ Закрыть",
		"back":              "⬅️ Назад",
		"back_to_catalog":   "⬅️ Назад в каталог",
		"buy":               "🛒 Купить",
		"product_card":      "👕 %s\n\n📝 %s\n\n💰 Цена: %s$",
		"select_size":       "Выберите размер:",
		"selected_size":     "Выбран размер: %s",
		"enter_address":     "🏠 Отправьте адрес доставки сообщением:",
		"order_success":     "✅ Заказ #%d принят! Мы скоро свяжемся с вами.",
		"order_retry":       "⚠️ Не удалось сохранить заказ, отправьте адрес ещё раз.",
		"product_not_found": "Товар не найден 😢",
		"admin_panel_text":  "🔧 Панель администратора\n\n/add_product — добавить новый товар\n/orders — список последних заказов\n/stats — статистика продаж",
		"stats_text":        "📊 Статистика магазина:\n\n📦 Всего заказов: %d\n💰 Общая сумма: %s$",
		"no_orders":         "Заказов пока нет.",
		"order_card":        "📦 Заказ #%d\n👤 Покупатель: @%s\n🏠 Адрес: %s\n👕 Товар ID: %d (размер %s)\n🕒 Дата: %s\n🔄 Статус: %s",
		"status_complete":   "✅ Завершить",
		"status_cancel":     "❌ Отменить",
		"status_updated":    "Статус заказа #%d изменён на %s",
		"enter_name":        "📝 Введите название товара:",
		"enter_description": "📝 Введите описание товара:",
		"enter_price":       "💰 Введите цену товара (только число):",
		"price_invalid":     "❌ Цена должна быть числом (например, 1500 или 1500.50).\nПопробуйте ещё раз:",
		"enter_sizes":       "📏 Введите доступные размеры через запятую (например: S, M, L):",
		"enter_photo":       "📸 Отправьте фото товара (или текст 'none', если фото нет):",
		"product_saved":     "✅ Товар успешно добавлен в каталог!",
		"product_retry":     "⚠️ Не удалось сохранить товар, отправьте фото ещё раз.",
	},
}

// Locales resuelve idioma y textos. El idioma por defecto es configurable.
type Locales struct {
	matcher     language.Matcher
	defaultLang string
}

// New construye el resolvedor. defaultLang vacío o desconocido cae a ruso,
// como el bot original.
func New(defaultLang string) *Locales {
	if _, ok := texts[defaultLang]; !ok {
		defaultLang = LangRU
	}
	return &Locales{
		matcher:     language.NewMatcher(supported),
		defaultLang: defaultLang,
	}
}

// Resolve convierte un código BCP 47 del canal ("en", "en-US", "ru", ...) al
// idioma soportado más cercano.
func (l *Locales) Resolve(code string) string {
	if code == "" {
		return l.defaultLang
	}
	tag, err := language.Parse(code)
	if err != nil {
		return l.defaultLang
	}
	matched, _, conf := l.matcher.Match(tag)
	if conf == language.No {
		return l.defaultLang
	}
	base, _ := matched.Base()
	if _, ok := texts[base.String()]; !ok {
		return l.defaultLang
	}
	return base.String()
}

// Text devuelve el texto de la clave formateado con args. Si la clave no
// existe devuelve la clave misma, para que el agujero sea visible.
func (l *Locales) Text(lang, key string, args ...any) string {
	table, ok := texts[lang]
	if !ok {
		table = texts[l.defaultLang]
	}
	tmpl, ok := table[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
