// Package taxonomy holds the static category knowledge the validator matches
// against: which keywords an encyclopedia description of a correct answer is
// expected to contain, which search suffixes disambiguate a category, and
// which categories may fall back to a dictionary lookup. The tables are
// initialized once and never mutated, so concurrent reads need no locking.
package taxonomy

// Game categories, in the order the game board presents them.
var categories = []string{
	"Town",
	"State",
	"Country",
	"Capital City",
	"Girl's Name",
	"Boy's Name",
	"Article of Clothing",
	"Animal",
	"Food/Dish",
	"Movie",
	"Book",
	"Historical Figure",
	"Body of Water",
	"Musical Instrument",
	"Profession",
	"Plant/Flower",
	"Sport",
	"Brand",
	"Language",
	"Mythological Figure",
	"Song Title",
	"TV Show",
	"Scientific Term",
	"Board Game",
}

// keywords maps each category to the lowercase phrases that descriptive text
// about a correct answer should contain. A category absent from this table can
// never validate.
var keywords = map[string][]string{
	"Town":                {"town", "city", "village", "municipality", "settlement", "populated place", "census-designated", "population", "county seat", "borough", "hamlet", "unincorporated"},
	"State":               {"state", "province", "region", "territory", "subdivision", "administrative", "u.s. state", "federal subject"},
	"Country":             {"country", "sovereign", "nation", "republic", "kingdom", "state in", "member state", "independent"},
	"Capital City":        {"capital", "seat of government", "capital city", "capital of", "capital and largest"},
	"Girl's Name":         {"given name", "feminine", "female name", "female given", "name of", "first name", "forename", "hypocorism", "diminutive"},
	"Boy's Name":          {"given name", "masculine", "male name", "male given", "name of", "first name", "forename", "hypocorism", "diminutive"},
	"Article of Clothing": {"clothing", "garment", "worn", "fashion", "apparel", "fabric", "textile", "dress", "wear", "footwear", "headwear", "outerwear"},
	"Animal":              {"animal", "species", "mammal", "bird", "fish", "reptile", "insect", "genus", "family", "amphibian", "invertebrate", "predator", "prey", "habitat"},
	"Food/Dish":           {"food", "dish", "cuisine", "recipe", "ingredient", "cooking", "bread", "dessert", "soup", "sauce", "meat", "vegetable", "fruit", "pastry", "baked", "eaten", "meal"},
	"Movie":               {"film", "movie", "directed", "starring", "box office", "screenplay", "released"},
	"Book":                {"book", "novel", "author", "written by", "published", "literature", "novella", "memoir", "nonfiction"},
	"Historical Figure":   {"historian", "emperor", "king", "queen", "president", "leader", "general", "politician", "revolutionary", "explorer", "conqueror", "born", "died", "reign", "century", "war", "battle", "founder", "statesman", "philosopher"},
	"Body of Water":       {"river", "lake", "ocean", "sea", "bay", "gulf", "strait", "creek", "reservoir", "waterway", "tributary", "flows", "basin", "estuary"},
	"Musical Instrument":  {"instrument", "musical", "played", "string", "woodwind", "brass", "percussion", "keyboard", "plucked", "bowed"},
	"Profession":          {"profession", "occupation", "career", "job", "worker", "specialist", "practitioner", "person who", "responsible for", "trained", "expert", "professional"},
	"Plant/Flower":        {"plant", "flower", "species", "genus", "botanical", "herb", "tree", "shrub", "flora", "blossom", "perennial", "annual", "cultivar", "bloom"},
	"Sport":               {"sport", "game", "competition", "tournament", "championship", "played", "athlete", "olympic", "team sport", "race", "racing", "marathon", "athletics", "league", "match", "event"},
	"Brand":               {"brand", "company", "corporation", "founded", "manufacturer", "trademark", "subsidiary", "products", "headquartered", "multinational"},
	"Language":            {"language", "spoken", "dialect", "lingua", "speakers", "linguistic", "official language", "native"},
	"Mythological Figure": {"mythology", "myth", "god", "goddess", "deity", "legend", "mythical", "folklore", "pantheon", "demigod", "hero", "titan"},
	"Song Title":          {"song", "single", "track", "recorded", "album", "music", "billboard", "chart", "written by", "performed by", "lyrics"},
	"TV Show":             {"television", "tv series", "tv show", "sitcom", "drama", "episodes", "season", "aired", "network", "streaming", "premiered", "created by"},
	"Scientific Term":     {"science", "scientific", "theory", "biology", "chemistry", "physics", "cell", "molecule", "process", "phenomenon", "medical", "organism", "compound", "element", "equation", "hypothesis", "genetic", "quantum", "atomic"},
	"Board Game":          {"board game", "game", "players", "dice", "cards", "tabletop", "strategy game", "parlor", "designed by", "published by", "gameplay"},
}

// searchSuffixes maps categories to suffixes appended to the answer when the
// open search fails to surface the right article ("hobbit" vs "hobbit film").
// Categories without an entry search with the category name itself.
var searchSuffixes = map[string][]string{
	"Girl's Name":        {"name", "given name"},
	"Boy's Name":         {"name", "given name"},
	"Capital City":       {"city"},
	"Body of Water":      {"river", "lake"},
	"Musical Instrument": {"instrument"},
	"TV Show":            {"TV series"},
	"Movie":              {"film"},
	"Board Game":         {"board game"},
	"Song Title":         {"song"},
}

// nameCategories are the categories whose answers usually live under
// disambiguation titles like "William (name)".
var nameCategories = map[string]bool{
	"Girl's Name": true,
	"Boy's Name":  true,
}

// dictionaryCategories are the everyday-noun categories where a dictionary
// definition is a sensible evidence source. Named places, people, and titled
// works are deliberately excluded. Keep this list in step with the keyword
// table when adding categories.
var dictionaryCategories = map[string]bool{
	"Animal":              true,
	"Food/Dish":           true,
	"Article of Clothing": true,
	"Plant/Flower":        true,
	"Musical Instrument":  true,
	"Sport":               true,
	"Profession":          true,
	"Scientific Term":     true,
}

// Categories returns the closed set of game categories.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Keywords returns the keyword set for a category, or nil if the category has
// no defined taxonomy.
func Keywords(category string) []string {
	return keywords[category]
}

// SearchSuffixes returns the configured search suffixes for a category,
// falling back to the category name itself.
func SearchSuffixes(category string) []string {
	if s, ok := searchSuffixes[category]; ok {
		return s
	}
	return []string{category}
}

// IsNameCategory reports whether direct "(name)" page lookups apply.
func IsNameCategory(category string) bool {
	return nameCategories[category]
}

// AllowsDictionary reports whether the dictionary fallback applies.
func AllowsDictionary(category string) bool {
	return dictionaryCategories[category]
}
