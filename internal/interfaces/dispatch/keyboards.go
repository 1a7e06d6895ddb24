package dispatch

import (
	"fmt"

	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/locales"
)

// mainKeyboard menú principal (teclado de respuesta). Los admins ven una fila
// extra con el panel.
func mainKeyboard(loc *locales.Locales, lang string, isAdmin bool) *Keyboard {
	rows := [][]Button{
		{{Label: loc.Text(lang, "catalog")}},
		{{Label: loc.Text(lang, "help")}, {Label: loc.Text(lang, "manager")}},
	}
	if isAdmin {
		rows = append(rows, []Button{{Label: loc.Text(lang, "admin_panel")}})
	}
	return &Keyboard{Rows: rows}
}

// catalogKeyboard un producto por fila más el botón de cerrar.
func catalogKeyboard(products []entity.Product, loc *locales.Locales, lang string) *Keyboard {
	rows := make([][]Button, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, []Button{{Label: p.Name, Data: fmt.Sprintf("prod_%d", p.ID)}})
	}
	rows = append(rows, []Button{{Label: loc.Text(lang, "close"), Data: "close_catalog"}})
	return &Keyboard{Inline: true, Rows: rows}
}

// sizesKeyboard tallas de a dos por fila más volver al catálogo.
func sizesKeyboard(p *entity.Product, loc *locales.Locales, lang string) *Keyboard {
	var rows [][]Button
	var row []Button
	for _, size := range p.Sizes {
		row = append(row, Button{Label: size, Data: fmt.Sprintf("size_%d_%s", p.ID, size)})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []Button{{Label: loc.Text(lang, "back_to_catalog"), Data: "catalog"}})
	return &Keyboard{Inline: true, Rows: rows}
}

// buyKeyboard botón de compra con la talla ya elegida, más volver a la ficha.
func buyKeyboard(productID int64, size string, loc *locales.Locales, lang string) *Keyboard {
	return &Keyboard{Inline: true, Rows: [][]Button{
		{{Label: loc.Text(lang, "buy"), Data: fmt.Sprintf("buy_%d_%s", productID, size)}},
		{{Label: loc.Text(lang, "back"), Data: fmt.Sprintf("prod_%d", productID)}},
	}}
}

// ordersKeyboard una fila por pedido con completar/cancelar.
func ordersKeyboard(orders []entity.Order, loc *locales.Locales, lang string) *Keyboard {
	rows := make([][]Button, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []Button{
			{Label: fmt.Sprintf("%s #%d", loc.Text(lang, "status_complete"), o.ID), Data: fmt.Sprintf("status_%d_%s", o.ID, entity.StatusCompleted)},
			{Label: fmt.Sprintf("%s #%d", loc.Text(lang, "status_cancel"), o.ID), Data: fmt.Sprintf("status_%d_%s", o.ID, entity.StatusCancelled)},
		})
	}
	return &Keyboard{Inline: true, Rows: rows}
}
