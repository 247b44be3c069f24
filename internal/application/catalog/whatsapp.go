package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	orderGreeting = "Hola! Me interesa hacer el siguiente pedido:\n\n"
	waBaseURL     = "https://wa.me/"
)

// OrderMessage texto del pedido:
//
//	Hola! Me interesa hacer el siguiente pedido:
//
//	• 2x Café ($12.5)
//
//	*Total Estimado: $25.00*
func OrderMessage(c *Cart) string {
	var b strings.Builder
	b.WriteString(orderGreeting)
	for _, l := range c.lines {
		fmt.Fprintf(&b, "• %dx %s ($%s)\n", l.Quantity, l.Item.Name, l.Item.Price.String())
	}
	fmt.Fprintf(&b, "\n*Total Estimado: $%s*", c.Total().StringFixed(2))
	return b.String()
}

// WhatsAppURL enlace wa.me con el mensaje codificado. Del número solo se conservan los dígitos.
func WhatsAppURL(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	// QueryEscape codifica el espacio como "+"; wa.me espera %20.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return waBaseURL + digits + "?text=" + text
}
