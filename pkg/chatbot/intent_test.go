package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownIntents(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		message string
		want    Intent
	}{
		{"¿Cuánto cuesta el Nike Air Max?", IntentProductInquiry},
		{"quiero saber el precio", IntentProductInquiry},
		{"donde está mi pedido", IntentOrderStatus},
		{"cuando llega el envío", IntentShipping},
		{"necesito hacer una devolución", IntentReturn},
		{"no me queda bien el talle", IntentReturn},
		{"puedo pagar con tarjeta?", IntentPayment},
		{"tienen adidas ultraboost?", IntentProductInquiry},
		{"tengo un problema con la página", IntentSupport},
		{"Hola", IntentGeneral},
		{"xyzzy", IntentGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Classify(tc.message), "message: %q", tc.message)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := NewClassifier()

	// "precio" (product_inquiry) and "envío" (shipping) both match; the
	// product_inquiry rule is evaluated first and must win.
	assert.Equal(t, IntentProductInquiry, c.Classify("precio del envío"))

	// order_status keywords outrank shipping keywords.
	assert.Equal(t, IntentOrderStatus, c.Classify("seguimiento de la entrega"))

	// The pricing rule outranks the brand rule even though both resolve to
	// product_inquiry.
	assert.Equal(t, IntentProductInquiry, c.Classify("oferta de nike"))
}

func TestClassifyAlwaysReturnsKnownLabel(t *testing.T) {
	c := NewClassifier()

	known := make(map[Intent]bool, len(Intents))
	for _, intent := range Intents {
		known[intent] = true
	}

	messages := []string{
		"hola", "precio", "envío y pago y devolución", "NIKE ADIDAS PUMA",
		"....", "1234567890", "¿¿¿???", "mensaje sin palabras clave",
	}
	for _, m := range messages {
		got := c.Classify(m)
		assert.True(t, known[got], "classify(%q) returned unknown label %q", m, got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier()

	for _, m := range []string{"hola", "precio de nike", "problema con mi cuenta"} {
		first := c.Classify(m)
		second := c.Classify(m)
		assert.Equal(t, first, second)
	}
}

func TestClassifyNormalizesCaseAndWhitespace(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, c.Classify("PRECIO"), c.Classify("  precio  "))
	assert.Equal(t, IntentShipping, c.Classify("  ENVÍO URGENTE  "))
}

func TestClassifyMatchesEmbeddedSubstrings(t *testing.T) {
	c := NewClassifier()

	// Substring matching is intentional: "talle" embedded in a longer word
	// still triggers the return rule.
	assert.Equal(t, IntentReturn, c.Classify("detallenme las opciones"))
}
