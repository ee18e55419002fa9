// Package dimension define el sistema de 5 puntos para las diez dimensiones
// perceptuales. Cada dimensión va de 1 a 5, con 3 como punto neutral.
package dimension

import (
	"math"

	"github.com/karenpiper/movievibe/internal/models"
)

// Level es uno de los cinco anclajes ordinales de una dimensión.
type Level struct {
	Value       int      `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Color       string   `json:"color"` // hex
}

// Scale es la definición completa de una dimensión.
type Scale struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Levels      []Level `json:"levels"` // exactamente cinco, ascendentes por Value
}

// neutralGray es el color de respaldo para niveles desconocidos.
const neutralGray = "#64748b"

// Names devuelve los nombres canónicos en orden de serialización.
func Names() []string {
	return models.DimensionNames
}

// GetScale devuelve la escala de una dimensión, o nil si el nombre no existe.
func GetScale(dim string) *Scale {
	s, ok := scales[dim]
	if !ok {
		return nil
	}
	return s
}

// Levels devuelve los cinco niveles de una dimensión (nil si no existe).
func Levels(dim string) []Level {
	s := GetScale(dim)
	if s == nil {
		return nil
	}
	return s.Levels
}

// GetLevel devuelve el nivel de una dimensión para un valor 1-5,
// o nil si la dimensión o el valor están fuera de rango.
func GetLevel(dim string, value int) *Level {
	s := GetScale(dim)
	if s == nil {
		return nil
	}
	for i := range s.Levels {
		if s.Levels[i].Value == value {
			return &s.Levels[i]
		}
	}
	return nil
}

// Description devuelve "Label: descripción" para un nivel, o "Unknown level".
func Description(dim string, value int) string {
	l := GetLevel(dim, value)
	if l == nil {
		return "Unknown level"
	}
	return l.Label + ": " + l.Description
}

// Examples devuelve las películas de ejemplo de un nivel (vacío si no existe).
func Examples(dim string, value int) []string {
	l := GetLevel(dim, value)
	if l == nil {
		return []string{}
	}
	return l.Examples
}

// Color devuelve el color hex de un nivel, con gris neutral de respaldo.
func Color(dim string, value int) string {
	l := GetLevel(dim, value)
	if l == nil {
		return neutralGray
	}
	return l.Color
}

// FromTenPoint convierte la escala antigua 0-10 a la escala canónica 1-5.
// Bandas: [0,1]→1, (1,3]→2, (3,6]→3, (6,8]→4, (8,10]→5.
func FromTenPoint(old float64) int {
	switch {
	case old <= 1:
		return 1
	case old <= 3:
		return 2
	case old <= 6:
		return 3
	case old <= 8:
		return 4
	default:
		return 5
	}
}

// ToTenPoint es la inversa canónica de FromTenPoint: devuelve el tope de cada
// banda, de modo que FromTenPoint(ToTenPoint(v)) == v para v en 1..5.
func ToTenPoint(v int) float64 {
	switch v {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 6
	case 4:
		return 8
	default:
		return 10
	}
}

// ToPercent convierte un valor 1-5 a porcentaje 0-100 para barras de progreso.
func ToPercent(value float64) float64 {
	return ((value - 1) / 4) * 100
}

// Clamp limita un valor a la escala canónica [1,5].
func Clamp(v float64) float64 {
	return math.Max(1, math.Min(5, v))
}

// RoundHalf redondea al múltiplo de 0.5 más cercano.
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
