package dto

// ScanRequest un código decodificado por el lector de barras externo.
// Context distingue los dos lectores independientes: "setup" puebla el
// formulario de producto, "cart" agrega al carrito.
type ScanRequest struct {
	Context string `json:"context"`
	Code    string `json:"code"`
}

// ScanSetupResponse resultado de un escaneo en modo setup. Known indica si
// el código ya existe; para códigos nuevos Product es nil y el formulario
// se limpia.
type ScanSetupResponse struct {
	Code    string           `json:"code"`
	Known   bool             `json:"known"`
	Product *ProductResponse `json:"product,omitempty"`
}

// ScanCartResponse resultado de un escaneo en modo carrito. Duplicate marca
// un escaneo consecutivo del mismo código, que se ignora sin tocar el carrito.
type ScanCartResponse struct {
	Code      string       `json:"code"`
	Duplicate bool         `json:"duplicate"`
	Cart      CartResponse `json:"cart"`
}
