package costeo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarAcentos descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar prepara un texto para comparación: sin acentos, minúsculas y sin
// espacios en los bordes. "Cuadrado", "cuadrado" y "CUADRADO" comparan igual.
func normalizar(s string) string {
	limpio, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}
