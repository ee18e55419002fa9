package models

// Las diez dimensiones canónicas, en el orden fijo de serialización.
// Este orden manda en todos los blobs persistidos y en la API.
var DimensionNames = []string{
	"serotonin",
	"brainy_bonkers",
	"camp",
	"color",
	"pace",
	"darkness",
	"novelty",
	"social_safe",
	"runtime_fit",
	"subs_energy",
}

// NumDimensions es el tamaño del espacio de dimensiones.
const NumDimensions = 10

// Vector es un DimensionVector: mapea las diez dimensiones a valores.
// Dos sabores conviven sobre el mismo tipo:
//   - ordinal: enteros 1-5 (ratings de usuario y de onboarding)
//   - scored: 1.0-5.0 tras síntesis o promedios
type Vector struct {
	Serotonin     float64 `json:"serotonin" bson:"serotonin"`
	BrainyBonkers float64 `json:"brainy_bonkers" bson:"brainy_bonkers"`
	Camp          float64 `json:"camp" bson:"camp"`
	Color         float64 `json:"color" bson:"color"`
	Pace          float64 `json:"pace" bson:"pace"`
	Darkness      float64 `json:"darkness" bson:"darkness"`
	Novelty       float64 `json:"novelty" bson:"novelty"`
	SocialSafe    float64 `json:"social_safe" bson:"social_safe"`
	RuntimeFit    float64 `json:"runtime_fit" bson:"runtime_fit"`
	SubsEnergy    float64 `json:"subs_energy" bson:"subs_energy"`
}

// NeutralVector devuelve el vector con todas las dimensiones en 3 (neutral).
func NeutralVector() Vector {
	v := Vector{}
	for _, name := range DimensionNames {
		v.Set(name, 3)
	}
	return v
}

// Get devuelve el valor de una dimensión por nombre canónico (0 si no existe).
func (v Vector) Get(name string) float64 {
	switch name {
	case "serotonin":
		return v.Serotonin
	case "brainy_bonkers":
		return v.BrainyBonkers
	case "camp":
		return v.Camp
	case "color":
		return v.Color
	case "pace":
		return v.Pace
	case "darkness":
		return v.Darkness
	case "novelty":
		return v.Novelty
	case "social_safe":
		return v.SocialSafe
	case "runtime_fit":
		return v.RuntimeFit
	case "subs_energy":
		return v.SubsEnergy
	}
	return 0
}

// Set asigna el valor de una dimensión por nombre; nombres desconocidos se ignoran.
func (v *Vector) Set(name string, value float64) {
	switch name {
	case "serotonin":
		v.Serotonin = value
	case "brainy_bonkers":
		v.BrainyBonkers = value
	case "camp":
		v.Camp = value
	case "color":
		v.Color = value
	case "pace":
		v.Pace = value
	case "darkness":
		v.Darkness = value
	case "novelty":
		v.Novelty = value
	case "social_safe":
		v.SocialSafe = value
	case "runtime_fit":
		v.RuntimeFit = value
	case "subs_energy":
		v.SubsEnergy = value
	}
}

// ToSlice devuelve los valores en el orden canónico de DimensionNames.
func (v Vector) ToSlice() []float64 {
	out := make([]float64, 0, NumDimensions)
	for _, name := range DimensionNames {
		out = append(out, v.Get(name))
	}
	return out
}

// VectorFromSlice reconstruye un Vector desde valores en orden canónico.
// Slices cortos dejan las dimensiones restantes en 0.
func VectorFromSlice(values []float64) Vector {
	v := Vector{}
	for i, name := range DimensionNames {
		if i >= len(values) {
			break
		}
		v.Set(name, values[i])
	}
	return v
}

// IsZero indica si el vector está completamente vacío (todas las dimensiones en 0).
func (v Vector) IsZero() bool {
	return v == Vector{}
}
