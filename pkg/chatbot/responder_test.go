package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondGreeting(t *testing.T) {
	r := NewResponder()

	reply := r.Respond("Hola")
	assert.Contains(t, reply, "Bienvenido a Sneakers Store")
}

func TestRespondPricing(t *testing.T) {
	r := NewResponder()

	reply := r.Respond("¿Cuánto cuesta el Nike Air Max?")
	// "cuánto" hits the pricing category before the Nike brand category.
	assert.Contains(t, reply, "Nuestros Precios")
	assert.Contains(t, reply, "$129.99")
}

func TestRespondBrandCategories(t *testing.T) {
	r := NewResponder()

	assert.Contains(t, r.Respond("tienen nike?"), "Just Do It")
	assert.Contains(t, r.Respond("busco adidas"), "Impossible Is Nothing")
	assert.Contains(t, r.Respond("algo de puma"), "Forever Faster")
	assert.Contains(t, r.Respond("new balance 574"), "Fearlessly Independent")
}

func TestRespondDefaultFallback(t *testing.T) {
	r := NewResponder()

	reply := r.Respond("mensaje completamente irreconocible xyzzy")
	assert.Contains(t, reply, "No estoy seguro de entender tu consulta")
}

func TestRespondAlwaysNonEmpty(t *testing.T) {
	r := NewResponder()

	messages := []string{
		"hola", "gracias", "adios", "precio", "envío", "talle", "devolución",
		"pago", "nike", "adidas", "puma", "new balance", "catálogo", "pedido",
		"stock", "cuenta", "horario", "garantía", "carrito", "review", "ayuda",
		"....", "qwerty",
	}
	for _, m := range messages {
		assert.NotEmpty(t, r.Respond(m), "respond(%q) returned empty reply", m)
	}
}

func TestRespondIsPure(t *testing.T) {
	r := NewResponder()

	for _, m := range []string{"hola", "precio", "sin coincidencia alguna"} {
		assert.Equal(t, r.Respond(m), r.Respond(m))
	}
}

// The responder and classifier tables are independently authored; a single
// message can get a reply from one category while the classifier tags it with
// a label derived from a different rule. These divergences are intentional.
func TestResponderAndClassifierDiverge(t *testing.T) {
	r := NewResponder()
	c := NewClassifier()

	// "gracias" has a thanks reply but no classifier rule.
	assert.Contains(t, r.Respond("gracias"), "De nada")
	assert.Equal(t, IntentGeneral, c.Classify("gracias"))

	// "nike" gets the brand-specific reply; the classifier has its own brand
	// rule mapping to product_inquiry.
	assert.True(t, strings.Contains(r.Respond("nike"), "Nike"))
	assert.Equal(t, IntentProductInquiry, c.Classify("nike"))

	// "stock" has a reply category but no intent rule.
	assert.Contains(t, r.Respond("hay stock?"), "Consulta de Stock")
	assert.Equal(t, IntentGeneral, c.Classify("stock"))
}
