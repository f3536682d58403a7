package chatbot

import "strings"

// Keyword chatbot: every intent is a bag of Spanish keywords matched by
// substring against the lowercased message. First matching intent in Order
// wins, so more specific intents come before greetings.

const (
	IntentSalesContact    = "contacto_venta"
	IntentCancelOrder     = "cancelar_pedido"
	IntentShippingInfo    = "informacion_envio"
	IntentEmail           = "correo"
	IntentProductInfo     = "info_producto"
	IntentPasswordReset   = "recuperar_contrasena"
	IntentGreeting        = "saludo"
	IntentFarewell        = "despedida"
	IntentAcknowledgement = "agradecimiento"
)

var Responses = map[string]string{
	IntentSalesContact:    "Puedes contactarnos al correo ventas@tresenuno.cl o al teléfono +56 9 1234 5678.",
	IntentCancelOrder:     "Para cancelar tu pedido, ve a \"Mis Pedidos\" en tu perfil y selecciona \"Cancelar\". Si ya fue despachado, contacta a soporte.",
	IntentShippingInfo:    "Los envíos se realizan en 3 a 5 días hábiles. Puedes rastrear tu pedido desde \"Mis Pedidos\".",
	IntentEmail:           "Nuestro correo de contacto es info@tresenuno.cl.",
	IntentProductInfo:     "Encuentras la información detallada de cada producto en su página, incluyendo precio y disponibilidad.",
	IntentPasswordReset:   "Para recuperar tu contraseña, usa \"¿Olvidaste tu contraseña?\" en la página de inicio de sesión.",
	IntentGreeting:        "¡Hola! Bienvenido a Tres en Uno. ¿En qué puedo ayudarte hoy?",
	IntentFarewell:        "¡Hasta pronto! Que tengas un excelente día.",
	IntentAcknowledgement: "¡De nada! Estoy aquí para ayudarte en lo que necesites.",
}

const Fallback = "Disculpa, no estoy seguro de entender tu pregunta. ¿Podrías reformularla? También puedes elegir una de las opciones sugeridas."

// QuickReplies are the suggestions returned alongside every answer.
var QuickReplies = []string{
	"¿tienes algún contacto de venta?",
	"¿cómo puedo cancelar mi pedido?",
	"información de envío",
	"¿poseen correo?",
	"¿dónde encuentro información del producto?",
	"olvidé mi contraseña",
}

type intentRule struct {
	intent   string
	keywords []string
	// requires must also appear in the message, when set.
	requires string
}

var rules = []intentRule{
	{intent: IntentSalesContact, keywords: []string{"contacto", "venta", "ventas", "vendedor", "telefono", "teléfono", "llamar"}},
	{intent: IntentCancelOrder, keywords: []string{"cancelar", "anular", "devolver"}, requires: "pedido"},
	{intent: IntentShippingInfo, keywords: []string{"envio", "envío", "despacho", "entrega", "delivery", "shipping"}},
	{intent: IntentEmail, keywords: []string{"correo", "email", "mail", "e-mail"}},
	{intent: IntentProductInfo, keywords: []string{"producto", "información", "informacion", "detalle", "caracteristica", "característica"}},
	{intent: IntentPasswordReset, keywords: []string{"contraseña", "contrasena", "password", "olvidé", "olvide", "recuperar"}},
	{intent: IntentGreeting, keywords: []string{"hola", "buenos días", "buenas tardes", "buenas noches", "saludos", "hey"}},
	{intent: IntentFarewell, keywords: []string{"adiós", "adios", "chao", "hasta luego", "nos vemos", "bye"}},
	{intent: IntentAcknowledgement, keywords: []string{"gracias", "muchas gracias", "thanks", "thank you", "agradezco"}},
}

// BestIntent returns the matched intent key, or "" when nothing matches.
func BestIntent(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return ""
	}

	for _, rule := range rules {
		if rule.requires != "" && !strings.Contains(msg, rule.requires) {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.intent
			}
		}
	}
	return ""
}

// Answer resolves the reply for a message, falling back when no intent fits.
func Answer(message string) (intent string, reply string) {
	intent = BestIntent(message)
	reply, ok := Responses[intent]
	if !ok {
		reply = Fallback
	}
	return intent, reply
}
