package entity

// CartLine es una línea del carrito en curso: código de producto y cantidad.
// El carrito vive solo en memoria; una sesión interrumpida lo pierde a propósito.
type CartLine struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}
