package domain

import "strings"

type Category string

const (
	CategoryCaribe        Category = "Caribe"
	CategoryArgentina     Category = "Argentina"
	CategoryEstadosUnidos Category = "Estados Unidos"
	CategoryBrasil        Category = "Brasil"
	CategoryMexico        Category = "México"
	CategoryEuropa        Category = "Europa"
	CategoryAsia          Category = "Asia"
	CategoryAventura      Category = "Aventura"
	CategoryCultural      Category = "Cultural"

	DefaultCategory = CategoryCultural
)

// Order matters: the Caribbean list must win over Mexico for towns like Cancún.
var destinationKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryCaribe, []string{
		"caribe", "cancún", "cancun", "playa del carmen", "tulum", "cozumel", "riviera maya",
		"isla mujeres", "punta cana", "bávaro", "bavaro", "varadero", "la habana", "cuba",
		"aruba", "curazao", "curaçao", "jamaica", "bahamas", "margarita", "san andrés",
		"san andres", "república dominicana", "republica dominicana", "samaná", "samana",
	}},
	{CategoryArgentina, []string{
		"argentina", "buenos aires", "bariloche", "mendoza", "córdoba", "cordoba", "salta",
		"jujuy", "ushuaia", "calafate", "iguazú", "iguazu", "mar del plata", "rosario",
		"tucumán", "tucuman", "puerto madryn", "san martín de los andes", "villa la angostura",
		"patagonia", "tierra del fuego", "bahía blanca", "bahia blanca",
	}},
	{CategoryEstadosUnidos, []string{
		"estados unidos", "eeuu", "ee.uu", "miami", "orlando", "nueva york", "new york",
		"las vegas", "los ángeles", "los angeles", "san francisco", "chicago", "florida",
		"california", "hawái", "hawaii", "washington", "boston",
	}},
	{CategoryBrasil, []string{
		"brasil", "brazil", "río de janeiro", "rio de janeiro", "florianópolis", "florianopolis",
		"búzios", "buzios", "bahía", "bahia", "porto seguro", "maceió",
		"maceio", "natal", "fortaleza", "recife", "são paulo", "sao paulo", "camboriú", "camboriu",
	}},
	{CategoryMexico, []string{
		"méxico", "mexico", "cdmx", "guadalajara", "monterrey", "oaxaca", "puerto vallarta",
		"los cabos", "acapulco", "mazatlán", "mazatlan", "chiapas", "yucatán", "yucatan",
	}},
	{CategoryEuropa, []string{
		"europa", "españa", "espana", "madrid", "barcelona", "francia", "parís", "paris",
		"italia", "roma", "venecia", "florencia", "londres", "inglaterra", "portugal", "lisboa",
		"grecia", "atenas", "alemania", "berlín", "berlin", "ámsterdam", "amsterdam", "praga",
		"suiza", "viena",
	}},
	{CategoryAsia, []string{
		"asia", "japón", "japon", "tokio", "china", "pekín", "tailandia", "bangkok", "vietnam",
		"india", "corea", "seúl", "seul", "indonesia", "bali", "singapur", "filipinas", "dubái", "dubai",
	}},
	{CategoryAventura, []string{
		"aventura", "trekking", "rafting", "safari", "escalada", "expedición", "expedicion",
		"glaciar", "montaña", "montana", "selva", "amazonas", "kayak", "parapente",
	}},
}

var categorySynonyms = map[string]Category{
	"playa":  CategoryCaribe,
	"playas": CategoryCaribe,
	"beach":  CategoryCaribe,
}

var fallThroughCategories = map[string]bool{
	"otros":  true,
	"otro":   true,
	"other":  true,
	"others": true,
}

const genericCategory = "General"

func Categories() []Category {
	out := make([]Category, 0, len(destinationKeywords)+1)
	for _, group := range destinationKeywords {
		out = append(out, group.category)
	}

	return append(out, DefaultCategory)
}

// Classify resolves the marketing category of a destination. It never fails:
// unknown destinations land in DefaultCategory.
func Classify(destination string, existing string) Category {
	if strings.TrimSpace(destination) == "" {
		return DefaultCategory
	}

	existing = strings.TrimSpace(existing)
	if existing != "" && existing != genericCategory {
		key := strings.ToLower(existing)

		if mapped, ok := categorySynonyms[key]; ok {
			return mapped
		}

		if !fallThroughCategories[key] {
			return Category(existing)
		}
	}

	dest := strings.ToLower(destination)
	for _, group := range destinationKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(dest, keyword) {
				return group.category
			}
		}
	}

	return DefaultCategory
}
