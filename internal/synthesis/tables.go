package synthesis

import "github.com/karenpiper/movievibe/internal/models"

// Tablas heurísticas declarativas. Sesgos por género y estilos de director en
// la escala canónica 1-5; los valores 3 son neutrales y no mueven la mezcla
// de forma apreciable pero se conservan por fidelidad a la tabla fuente.

// genreBias mapea género → sesgo disperso por dimensión.
var genreBias = map[string]map[string]float64{
	"Comedy":    {"serotonin": 4, "camp": 4, "social_safe": 4, "darkness": 2},
	"Drama":     {"serotonin": 2, "brainy_bonkers": 4, "darkness": 4, "novelty": 3},
	"Action":    {"pace": 5, "serotonin": 3, "color": 4, "darkness": 3},
	"Thriller":  {"pace": 4, "darkness": 4, "brainy_bonkers": 4, "serotonin": 2},
	"Sci-Fi":    {"brainy_bonkers": 5, "novelty": 5, "color": 4, "subs_energy": 3},
	"Horror":    {"darkness": 5, "serotonin": 1, "social_safe": 2, "pace": 4},
	"Romance":   {"serotonin": 4, "social_safe": 4, "camp": 2, "darkness": 2},
	"Animation": {"color": 5, "serotonin": 4, "camp": 3, "social_safe": 5},
	"Fantasy":   {"color": 4, "novelty": 4, "camp": 3, "brainy_bonkers": 3},
	"Adventure": {"pace": 4, "color": 4, "serotonin": 4, "social_safe": 4},

	// Géneros TMDB adicionales, convertidos de la tabla 0-10 heredada.
	"Science Fiction": {"brainy_bonkers": 5, "novelty": 5, "color": 4, "subs_energy": 3},
	"Crime":           {"darkness": 4, "brainy_bonkers": 3, "pace": 3, "social_safe": 3},
	"Documentary":     {"brainy_bonkers": 4, "novelty": 3, "social_safe": 4, "subs_energy": 3},
	"Family":          {"serotonin": 4, "social_safe": 5, "darkness": 2, "camp": 3},
	"History":         {"brainy_bonkers": 4, "darkness": 3, "novelty": 3, "subs_energy": 3},
	"Music":           {"serotonin": 4, "color": 4, "social_safe": 4, "camp": 3},
	"Mystery":         {"brainy_bonkers": 4, "novelty": 4, "darkness": 3, "pace": 3},
	"War":             {"darkness": 5, "brainy_bonkers": 3, "serotonin": 2, "social_safe": 3},
	"Western":         {"pace": 3, "color": 3, "camp": 3, "darkness": 3},
}

// directorStyles mapea director (lowercase) → firma de autor. Influencia
// fuerte: nuevo = 0.3*actual + 0.7*estilo.
var directorStyles = map[string]map[string]float64{
	"wes anderson":       {"color": 5, "camp": 4, "novelty": 4, "social_safe": 4},
	"christopher nolan":  {"brainy_bonkers": 5, "novelty": 5, "darkness": 4, "runtime_fit": 4},
	"bong joon-ho":       {"brainy_bonkers": 5, "darkness": 4, "novelty": 5, "subs_energy": 4},
	"george miller":      {"pace": 5, "color": 4, "serotonin": 4, "runtime_fit": 5},
	"daniels":            {"novelty": 5, "camp": 5, "color": 5, "brainy_bonkers": 4},
	"yorgos lanthimos":   {"camp": 5, "novelty": 5, "darkness": 4, "brainy_bonkers": 4},
	"barry jenkins":      {"color": 4, "serotonin": 2, "darkness": 4, "social_safe": 3},
	"chad stahelski":     {"pace": 5, "runtime_fit": 4, "social_safe": 4, "serotonin": 3},
	"guillermo del toro": {"color": 5, "novelty": 4, "camp": 3, "serotonin": 3},
}

// cueFamily es una familia de palabras clave de reviews para una dimensión.
type cueFamily struct {
	dimension string
	delta     float64 // positivo sube, negativo baja
	cues      []string
}

// cueFamilies son las familias reconocidas en el escaneo de reviews.
// El ajuste por texto se acumula y se recorta a ±perTextCueCap por dimensión.
var cueFamilies = []cueFamily{
	{"serotonin", +0.3, []string{"joy", "fun", "delightful", "uplifting"}},
	{"serotonin", -0.3, []string{"depressing", "bleak", "sad"}},
	{"color", +0.4, []string{"visually stunning", "beautiful", "gorgeous", "colorful"}},
	{"pace", +0.4, []string{"fast-paced", "action-packed", "adrenaline", "non-stop"}},
	{"pace", -0.3, []string{"slow", "boring", "dragging"}},
	{"brainy_bonkers", +0.4, []string{"complex", "intelligent", "mind-bending", "thought-provoking"}},
	{"camp", +0.4, []string{"absurd", "bizarre", "weird", "bonkers"}},
	{"darkness", +0.3, []string{"dark", "disturbing", "intense", "heavy"}},
	{"novelty", +0.4, []string{"original", "innovative", "unique", "fresh"}},
	{"subs_energy", +0.5, []string{"subtitles", "foreign", "korean", "japanese"}},
}

// perTextCueCap limita la contribución neta de un texto por dimensión,
// para que una review repetitiva no dispare la escala.
const perTextCueCap = 1.0

// Tabla heredada 0-10 para la ruta metadata-only (compatibilidad con ratings
// externos 0-10; la salida pública siempre se canoniza a 1-5).
var legacyGlobalAverages = map[string]float64{
	"serotonin": 5.5, "brainy_bonkers": 4.0, "camp": 3.5, "color": 6.0, "pace": 6.0,
	"darkness": 5.0, "novelty": 4.5, "social_safe": 6.5, "runtime_fit": 6.0, "subs_energy": 3.0,
}

var legacyGenreBias = map[string]map[string]float64{
	"Comedy":          {"serotonin": 7.5, "camp": 6.0, "social_safe": 8.0, "darkness": 2.0},
	"Drama":           {"serotonin": 4.0, "brainy_bonkers": 6.0, "darkness": 7.0, "novelty": 5.0},
	"Action":          {"pace": 8.5, "serotonin": 6.0, "color": 7.5, "darkness": 4.0},
	"Thriller":        {"pace": 7.5, "darkness": 7.0, "brainy_bonkers": 6.5, "serotonin": 4.0},
	"Sci-Fi":          {"brainy_bonkers": 8.0, "novelty": 8.5, "color": 7.0, "subs_energy": 5.0},
	"Science Fiction": {"brainy_bonkers": 8.0, "novelty": 8.5, "color": 7.0, "subs_energy": 5.0},
	"Horror":          {"darkness": 9.0, "serotonin": 2.0, "social_safe": 3.0, "pace": 7.0},
	"Romance":         {"serotonin": 7.0, "social_safe": 8.5, "camp": 4.0, "darkness": 3.0},
	"Animation":       {"color": 8.5, "serotonin": 7.5, "camp": 6.0, "social_safe": 9.0},
	"Fantasy":         {"color": 8.0, "novelty": 7.5, "camp": 5.5, "brainy_bonkers": 5.0},
	"Adventure":       {"pace": 7.0, "color": 7.0, "serotonin": 6.5, "social_safe": 7.5},
	"Crime":           {"darkness": 6.5, "brainy_bonkers": 5.5, "pace": 6.0, "social_safe": 5.0},
	"Documentary":     {"brainy_bonkers": 7.0, "novelty": 6.0, "social_safe": 7.0, "subs_energy": 4.0},
	"Family":          {"serotonin": 8.0, "social_safe": 9.5, "darkness": 1.5, "camp": 4.0},
	"History":         {"brainy_bonkers": 6.5, "darkness": 5.5, "novelty": 4.0, "subs_energy": 4.5},
	"Music":           {"serotonin": 7.0, "color": 7.5, "social_safe": 8.0, "camp": 5.5},
	"Mystery":         {"brainy_bonkers": 7.0, "novelty": 6.5, "darkness": 5.5, "pace": 5.5},
	"War":             {"darkness": 8.5, "brainy_bonkers": 5.5, "serotonin": 3.0, "social_safe": 4.0},
	"Western":         {"pace": 5.5, "color": 6.0, "camp": 4.5, "darkness": 5.0},
}

func neutralResult() Result {
	return Result{Dimensions: models.NeutralVector(), Confidence: 0}
}
