package chatbot

import "strings"

// Intent is the coarse triage category assigned to an inbound chat message.
type Intent string

const (
	IntentProductInquiry Intent = "product_inquiry"
	IntentOrderStatus    Intent = "order_status"
	IntentShipping       Intent = "shipping"
	IntentReturn         Intent = "return"
	IntentPayment        Intent = "payment"
	IntentSupport        Intent = "support"
	IntentGeneral        Intent = "general"
)

// Intents lists every label the classifier can produce.
var Intents = []Intent{
	IntentProductInquiry,
	IntentOrderStatus,
	IntentShipping,
	IntentReturn,
	IntentPayment,
	IntentSupport,
	IntentGeneral,
}

type intentRule struct {
	keywords []string
	intent   Intent
}

// intentRules is evaluated top-down with first-match-wins semantics. The
// ordering is load-bearing: a message matching several rules is tagged with
// the first one. Note this table is authored independently from the response
// table in responder.go; the two deliberately disagree in places (e.g. brand
// names map to product_inquiry here but have their own reply categories).
var intentRules = []intentRule{
	{[]string{"precio", "costo", "valor", "cuánto", "cuanto", "$$", "barato", "caro", "oferta", "descuento"}, IntentProductInquiry},
	{[]string{"pedido", "compra", "orden", "seguimiento", "rastreo", "track", "donde está", "estado"}, IntentOrderStatus},
	{[]string{"envío", "envio", "entrega", "delivery", "shipping", "cuando llega", "demora"}, IntentShipping},
	{[]string{"cambio", "devolver", "devolución", "devolucion", "reembolso", "talla", "talle"}, IntentReturn},
	{[]string{"pago", "pagar", "tarjeta", "cuotas", "financiación", "mercado pago"}, IntentPayment},
	{[]string{"nike", "adidas", "puma", "new balance", "marca", "modelo"}, IntentProductInquiry},
	{[]string{"ayuda", "problema", "error", "no funciona", "soporte"}, IntentSupport},
}

// Classifier maps free-text user messages to an Intent via ordered substring
// matching. It is a pure function of its input and safe for concurrent use.
type Classifier struct {
	rules []intentRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: intentRules}
}

// Classify lower-cases and trims the message, then returns the intent of the
// first matching rule. Unmatched messages fall to IntentGeneral.
func (c *Classifier) Classify(message string) Intent {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range c.rules {
		if containsAny(m, rule.keywords) {
			return rule.intent
		}
	}
	return IntentGeneral
}

// containsAny reports whether the message contains any keyword as a raw
// substring. Embedded matches count ("talle" inside a longer word matches).
func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}
