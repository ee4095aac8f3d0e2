package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/orders"
	"github.com/lacigarreria/tienda-api/pkg/config"
)

var (
	_ checkout.Notifier = (*GomailNotifier)(nil)
	_ orders.Notifier   = (*GomailNotifier)(nil)
)

// Plantillas HTML por ID. El payload llega como pares clave/valor.
var templates = map[string]*template.Template{
	checkout.TemplateNuevoPedido: template.Must(template.New(checkout.TemplateNuevoPedido).Parse(`
		<h2>Pedido nuevo</h2>
		<p>Entró el pedido <strong>{{.pedido}}</strong>.</p>
		<ul>
			<li>Cliente: {{.cliente}}</li>
			<li>Teléfono: {{.telefono}}</li>
			<li>Total: {{.total}}</li>
		</ul>
		<p>Revisa el panel para asignar domiciliario.</p>`)),
	orders.TemplatePedidoAsignado: template.Must(template.New(orders.TemplatePedidoAsignado).Parse(`
		<h2>Pedido asignado</h2>
		<p>Te asignaron el pedido <strong>{{.pedido}}</strong>.</p>
		<ul>
			<li>Cliente: {{.cliente}}</li>
			<li>Teléfono: {{.telefono}}</li>
			<li>Dirección: {{.direccion}}</li>
			<li>Total a recaudar: {{.total}}</li>
		</ul>`)),
}

// Asuntos por plantilla.
var subjects = map[string]string{
	checkout.TemplateNuevoPedido:  "Pedido nuevo en la tienda",
	orders.TemplatePedidoAsignado: "Pedido asignado para entrega",
}

// GomailNotifier envía notificaciones por SMTP. El destinatario viaja en
// el payload bajo la clave "to".
type GomailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailNotifier construye el notificador con la configuración SMTP.
func NewGomailNotifier(cfg config.SMTPConfig) *GomailNotifier {
	return &GomailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send renderiza la plantilla y entrega el correo. Respeta la cancelación
// del contexto antes de marcar.
func (n *GomailNotifier) Send(ctx context.Context, templateID string, payload map[string]string) error {
	tmpl, ok := templates[templateID]
	if !ok {
		return fmt.Errorf("plantilla desconocida: %s", templateID)
	}
	to := payload["to"]
	if to == "" {
		return fmt.Errorf("payload sin destinatario (clave \"to\")")
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, payload); err != nil {
		return fmt.Errorf("renderizar plantilla %s: %w", templateID, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subjects[templateID])
	m.SetBody("text/html", body.String())

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
