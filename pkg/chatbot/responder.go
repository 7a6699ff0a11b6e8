package chatbot

import "strings"

type responseRule struct {
	keywords []string
	reply    string
}

// Responder maps free-text user messages to a canned reply via its own
// ordered rule table. The table is larger than and independent from the
// classifier's: matching mechanics are identical (lower-case, trim,
// substring, first match wins) but keywords and categories are authored
// separately, so a message can receive a brand-specific reply while being
// tagged with an unrelated intent. Reply text is fully static, including the
// product names and prices baked into it.
type Responder struct {
	rules []responseRule
}

func NewResponder() *Responder {
	return &Responder{rules: responseRules}
}

// Respond returns the reply of the first matching rule, or the default menu
// reply when nothing matches. The result is always non-empty.
func (r *Responder) Respond(message string) string {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range r.rules {
		if containsAny(m, rule.keywords) {
			return rule.reply
		}
	}
	return defaultReply
}

var responseRules = []responseRule{
	// Saludos y cortesía
	{
		keywords: []string{"hola", "hi", "hello", "buenas", "buenos días", "buenas tardes", "buenas noches", "hey", "que tal"},
		reply: `¡Hola! 👋 Bienvenido a Sneakers Store. Soy tu asistente virtual y estoy aquí para ayudarte. Puedo asesorarte sobre:

🔹 Productos y catálogo
🔹 Precios y ofertas
🔹 Envíos y entregas
🔹 Cambios y devoluciones
🔹 Métodos de pago
🔹 Seguimiento de pedidos

¿En qué puedo ayudarte hoy?`,
	},
	// Agradecimientos
	{
		keywords: []string{"gracias", "thanks", "thank you", "muchas gracias", "perfecto", "genial", "excelente", "ok"},
		reply:    `¡De nada! 😊 Estoy aquí para ayudarte siempre que lo necesites. ¿Hay algo más en lo que pueda asistirte?`,
	},
	// Despedidas
	{
		keywords: []string{"adios", "adiós", "chau", "bye", "hasta luego", "nos vemos", "me voy"},
		reply:    `¡Hasta pronto! 👋 Gracias por visitar Sneakers Store. Que tengas un excelente día. Estamos aquí cuando nos necesites. 😊`,
	},
	// Precios y costos
	{
		keywords: []string{"precio", "costo", "valor", "cuánto", "cuanto", "$$", "barato", "caro", "oferta", "descuento", "promoción"},
		reply: `💰 **Nuestros Precios:**

📌 Nike Air Max 90: $129.99
📌 Adidas Ultraboost: $179.99 (Premium)
📌 Puma RS-X: $99.99 (¡Oferta!)
📌 New Balance 574: $89.99 (Mejor precio)

🎉 **Promociones activas:**
• 15% OFF en segunda compra
• Envío gratis en compras +$150
• 3 cuotas sin interés

¿Te interesa algún modelo en particular?`,
	},
	// Envíos y entregas
	{
		keywords: []string{"envío", "envio", "entrega", "shipping", "delivery", "cuando llega", "cuanto tarda", "demora"},
		reply: `📦 **Información de Envíos:**

🚚 **Tiempos de entrega:**
• Capital Federal: 24-48 hs
• GBA: 2-3 días hábiles
• Interior: 3-5 días hábiles
• Patagonia: 5-7 días hábiles

💵 **Costos:**
• CABA: $5 (GRATIS +$150)
• GBA: $8
• Interior: $10-15

📍 Podés seguir tu pedido en tiempo real con el código de seguimiento. ¿Necesitas más detalles sobre alguna zona específica?`,
	},
	// Cambios y tallas
	{
		keywords: []string{"cambio", "cambiar", "talla", "talle", "número", "numero", "medida", "me queda", "grande", "chico", "pequeño"},
		reply: `👟 **Cambios y Tallas:**

📏 **Guía de tallas disponible:**
• Sistemas: US, EU, UK, CM
• Calculadora de talla en el sitio
• Medidas exactas por modelo

🔄 **Política de cambios:**
• Hasta 30 días desde la compra
• Producto sin uso y con etiquetas
• Primer cambio SIN COSTO
• Recolección a domicilio disponible

¿Necesitas ayuda para elegir tu talla correcta?`,
	},
	// Devoluciones y reembolsos
	{
		keywords: []string{"devolución", "devolucion", "reembolso", "devolver", "return", "me arrepentí", "no me gustó", "cancelar"},
		reply: `↩️ **Política de Devoluciones:**

✅ **Condiciones:**
• 30 días corridos desde la compra
• Producto sin uso y embalaje original
• Factura de compra incluida

💳 **Reembolsos:**
• Mismo medio de pago original
• Acreditación: 5-10 días hábiles
• Sin comisiones ni gastos extras

📝 **Proceso:**
1. Solicitá devolución desde tu cuenta
2. Generamos la etiqueta de envío
3. Despachás el producto
4. Verificamos y procesamos reembolso

¿Hay algún problema con tu compra?`,
	},
	// Métodos de pago
	{
		keywords: []string{"pago", "pagar", "tarjeta", "efectivo", "transferencia", "mercado pago", "cuotas", "financiación", "financiacion"},
		reply: `💳 **Métodos de Pago Disponibles:**

✨ **Tarjetas de crédito:**
• Visa, Mastercard, American Express
• Hasta 12 cuotas sin interés
• 3 cuotas SIN INTERÉS en compras +$100

💵 **Otros medios:**
• Débito (un solo pago)
• Mercado Pago
• Transferencia bancaria (5% descuento)
• Efectivo en sucursal

🔒 Pagos 100% seguros con encriptación SSL. ¿Querés proceder con tu compra?`,
	},
	// Marcas específicas
	{
		keywords: []string{"nike", "air max", "jordan"},
		reply: `👟 **Nike - Just Do It:**

⭐ Modelos disponibles:
• Nike Air Max 90 - $129.99
  - Clásico atemporal
  - Amortiguación Air visible
  - Disponible en 5 colores

• Nike Air Force 1 - $119.99
• Nike Pegasus - $139.99
• Nike Cortez - $99.99

✅ Stock disponible | Envío gratis +$150

¿Te gustaría ver más detalles de algún modelo?`,
	},
	{
		keywords: []string{"adidas", "ultraboost", "superstar", "stan smith"},
		reply: `⚡ **Adidas - Impossible Is Nothing:**

⭐ Colección destacada:
• Adidas Ultraboost - $179.99 ⭐ Premium
  - Tecnología BOOST
  - Máxima comodidad
  - Running profesional

• Adidas Superstar - $109.99
• Stan Smith - $99.99
• Forum Low - $119.99

✅ Modelos icónicos | Todas las tallas

¿Cuál te interesa más?`,
	},
	{
		keywords: []string{"puma", "rs-x", "suede"},
		reply: `🐆 **Puma - Forever Faster:**

⭐ Estilo urbano:
• Puma RS-X - $99.99 🔥 ¡OFERTA!
  - Diseño retro-futurista
  - Suela chunky
  - Edición limitada

• Puma Suede Classic - $89.99
• Puma Clyde - $109.99

✅ Tendencia actual | Descuentos especiales

¿Quieres agregar alguno al carrito?`,
	},
	{
		keywords: []string{"new balance", "nb", "574", "990"},
		reply: `🔵 **New Balance - Fearlessly Independent:**

⭐ Comodidad premium:
• New Balance 574 - $89.99 💎 BEST PRICE
  - Clásico versátil
  - Ideal uso diario
  - Excelente relación calidad-precio

• NB 990v5 - $169.99
• NB 327 - $119.99

✅ Made with quality | Stock completo

¿Te ayudo con tu talla?`,
	},
	// Productos y catálogo
	{
		keywords: []string{"productos", "zapatillas", "sneakers", "shoes", "catálogo", "catalogo", "modelos", "qué tienen", "que tienen", "mostrame"},
		reply: `🏪 **Nuestro Catálogo Premium:**

🏆 **Marcas disponibles:**
✔️ Nike - Innovación y estilo
✔️ Adidas - Performance y diseño
✔️ Puma - Actitud urbana
✔️ New Balance - Comodidad superior

📂 **Categorías:**
🏃 Running & Training
👟 Lifestyle & Casual
⚡ Limited Editions
🎨 Colorways exclusivos

💫 **Lo más vendido esta semana:**
1️⃣ Nike Air Max 90
2️⃣ Adidas Ultraboost
3️⃣ Puma RS-X

¿Qué estilo buscas?`,
	},
	// Pedidos y seguimiento
	{
		keywords: []string{"pedido", "orden", "compra", "seguimiento", "rastreo", "track", "dónde está", "donde esta", "estado"},
		reply: `📋 **Seguimiento de Pedidos:**

🔍 Para rastrear tu compra necesito:
• Número de pedido (ej: #12345)
• Email de compra

Podés consultar el estado desde:
✅ "Mi Cuenta" → "Mis Pedidos"
✅ Link en el email de confirmación
✅ WhatsApp: compartí tu número de orden

📊 **Estados posibles:**
🟡 Procesando
🔵 En preparación
🟢 En camino
✅ Entregado

¿Tenés el número de tu pedido?`,
	},
	// Stock y disponibilidad
	{
		keywords: []string{"stock", "disponible", "disponibilidad", "hay", "tienen", "quedó", "quedo", "agotado"},
		reply: `📦 **Consulta de Stock:**

✅ Todos nuestros productos tienen:
• Actualización en tiempo real
• Indicador de disponibilidad
• Alerta de últimas unidades

💡 **Sugerencia:**
• Revisá la página del producto específico
• Si dice "Agregar al carrito" → HAY STOCK ✅
• Si dice "Avisarme" → Sin stock temporalmente

🔔 Podemos notificarte cuando vuelva el producto que buscas. ¿Cuál modelo te interesa?`,
	},
	// Cuenta y registro
	{
		keywords: []string{"cuenta", "registrar", "registro", "crear cuenta", "login", "contraseña", "password", "olvidé"},
		reply: `👤 **Gestión de Cuenta:**

📝 **Crear cuenta:**
• Proceso rápido (2 minutos)
• Beneficios exclusivos
• Historial de compras
• Wishlist y favoritos

🔑 **Problemas de acceso:**
• ¿Olvidaste tu contraseña? → "Recuperar contraseña"
• Email de verificación en spam?
• Soporte directo: soporte@sneakers.com

🎁 **Beneficios de registrarte:**
✨ 10% OFF en primera compra
✨ Envío express disponible
✨ Acceso a preventas

¿Necesitas ayuda para crear tu cuenta?`,
	},
	// Atención y horarios
	{
		keywords: []string{"horario", "atención", "atencion", "abierto", "cerrado", "hora", "cuando atienden"},
		reply: `🕒 **Horarios de Atención:**

📅 **Tienda Online:**
• Disponible 24/7 🌐
• Compra cuando quieras

💬 **Soporte al Cliente:**
• Lun-Vie: 9:00 - 18:00 hs
• Sábados: 9:00 - 14:00 hs
• Domingos: cerrado

📞 **Canales de contacto:**
• Chat (aquí): 24/7
• WhatsApp: horario comercial
• Email: respuesta en 24 hs

🏬 **Tienda física:**
• Lun-Sáb: 10:00 - 20:00 hs

¿Necesitas hablar con un agente humano?`,
	},
	// Calidad y garantía
	{
		keywords: []string{"calidad", "garantía", "garantia", "original", "auténtico", "fake", "verdadero", "legítimo"},
		reply: `✅ **Garantía de Autenticidad:**

🔐 **100% PRODUCTOS ORIGINALES**
• Distribuidores oficiales
• Certificados de autenticidad
• Garantía del fabricante

🛡️ **Nuestra garantía:**
• 90 días contra defectos de fábrica
• Inspección pre-envío
• Embalaje original sellado
• Factura oficial

⚠️ **Cuidado con imitaciones:**
Comprá seguro en tiendas autorizadas como nosotros.

💎 Cada producto incluye:
✔️ Etiquetas originales
✔️ Caja oficial
✔️ Documentación de marca

¿Alguna duda sobre autenticidad?`,
	},
	// Carrito y compra
	{
		keywords: []string{"carrito", "comprar", "agregar", "añadir", "checkout", "proceder", "finalizar compra"},
		reply: `🛒 **Proceso de Compra:**

📝 **Pasos simples:**
1️⃣ Agregá productos al carrito
2️⃣ Revisá tu pedido
3️⃣ Completá datos de envío
4️⃣ Elegí método de pago
5️⃣ ¡Confirmá y listo!

💡 **Tips útiles:**
• Guardá productos para después
• Aplicá cupones de descuento
• Calculá envío antes de pagar

🎁 **Envío GRATIS en compras +$150**

¿Ya elegiste qué comprar o necesitas recomendaciones?`,
	},
	// Opiniones y reviews
	{
		keywords: []string{"opinión", "opinion", "review", "reseña", "resena", "comentario", "calificación", "calificacion", "estrella"},
		reply: `⭐ **Opiniones de Clientes:**

📊 **Nuestras calificaciones:**
• Promedio general: 4.8/5 ⭐⭐⭐⭐⭐
• +2,500 reseñas verificadas
• 95% recomienda nuestros productos

💬 **Cada producto incluye:**
✔️ Reviews de compradores reales
✔️ Fotos de clientes
✔️ Calificaciones por talla y comodidad

📝 **Dejá tu opinión:**
• Comprá → Recibí el producto → Calificá
• Ganás puntos por cada review
• Ayudás a otros compradores

¿Querés ver opiniones de algún modelo específico?`,
	},
	// Ayuda general o problemas
	{
		keywords: []string{"ayuda", "help", "problema", "error", "no funciona", "no puedo", "falla", "bug"},
		reply: `🆘 **Centro de Ayuda:**

¿Qué tipo de problema tenés?

🔹 **Navegación del sitio**
• Reiniciá la página
• Limpiá caché del navegador
• Probá con otro navegador

🔹 **Problemas de pago**
• Verificá datos de tarjeta
• Comprobá límites de compra
• Intentá otro medio de pago

🔹 **Problemas de cuenta**
• Recuperá contraseña
• Verificá email de confirmación

🔹 **Otros problemas**
📞 WhatsApp: +54 9 11 XXXX-XXXX
📧 soporte@sneakers.com

Describime tu problema específico y te ayudo a resolverlo.`,
	},
}

// defaultReply closes the table unconditionally so Respond is total.
const defaultReply = `🤖 **Asistente Virtual Sneakers Store**

¡Hola! No estoy seguro de entender tu consulta, pero puedo ayudarte con:

💬 **Preguntas frecuentes:**
🔹 "Precio de [producto]"
🔹 "Información de envíos"
🔹 "Cómo cambiar talla"
🔹 "Métodos de pago"
🔹 "Rastrear mi pedido"
🔹 "Ver catálogo Nike/Adidas/Puma"

💡 **Tip:** Sé específico con tu consulta
❓ **Ejemplo:** "Cuánto cuesta el Nike Air Max" o "Horarios de atención"

¿Cómo puedo ayudarte hoy? 😊`
