package costeo

import "strings"

// MarcadorDiametro separa la medida del diámetro dentro del campo "medida"
// serializado de una línea de remito, ej. "20x20 Ø 4.2mm". Es la única
// convención de serialización que el motor entiende; el resto del string es
// texto libre del catálogo.
const MarcadorDiametro = "Ø"

// DescriptorMedida es la forma estructurada de una línea de remito: la tupla
// con la que se identifica un producto del catálogo.
type DescriptorMedida struct {
	Medida   string // ej. "20x20"
	Diametro string // ej. "4.2"; vacío si la medida no lleva diámetro
	Nombre   string // nombre del producto tal como se imprimió en el remito
}

// ParseMedida convierte el campo medida serializado más el nombre del producto
// en un descriptor estructurado. Si la medida contiene el marcador de
// diámetro, se corta ahí y se descarta el sufijo de unidad ("mm") del
// diámetro; si no, toda la cadena es la medida.
func ParseMedida(medida, nombre string) DescriptorMedida {
	d := DescriptorMedida{Nombre: strings.TrimSpace(nombre)}
	if i := strings.Index(medida, MarcadorDiametro); i >= 0 {
		d.Medida = strings.TrimSpace(medida[:i])
		d.Diametro = recortarUnidad(medida[i+len(MarcadorDiametro):])
		return d
	}
	d.Medida = strings.TrimSpace(medida)
	return d
}

// TieneDiametro indica si el descriptor identifica al producto también por diámetro.
func (d DescriptorMedida) TieneDiametro() bool {
	return d.Diametro != ""
}

// recortarUnidad limpia el valor de diámetro: espacios y sufijo "mm" opcional.
func recortarUnidad(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(strings.ToLower(s), "mm") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return s
}
