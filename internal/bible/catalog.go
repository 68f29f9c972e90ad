package bible

import "biblealive/pkg/models"

// Books is the full 66-book canon in canonical order. Built once, read only.
var Books = []models.Book{
	// Antiguo Testamento
	{ID: 1, Name: "Génesis", NameEn: "Genesis", Chapters: 50, Testament: "Antiguo"},
	{ID: 2, Name: "Éxodo", NameEn: "Exodus", Chapters: 40, Testament: "Antiguo"},
	{ID: 3, Name: "Levítico", NameEn: "Leviticus", Chapters: 27, Testament: "Antiguo"},
	{ID: 4, Name: "Números", NameEn: "Numbers", Chapters: 36, Testament: "Antiguo"},
	{ID: 5, Name: "Deuteronomio", NameEn: "Deuteronomy", Chapters: 34, Testament: "Antiguo"},
	{ID: 6, Name: "Josué", NameEn: "Joshua", Chapters: 24, Testament: "Antiguo"},
	{ID: 7, Name: "Jueces", NameEn: "Judges", Chapters: 21, Testament: "Antiguo"},
	{ID: 8, Name: "Rut", NameEn: "Ruth", Chapters: 4, Testament: "Antiguo"},
	{ID: 9, Name: "1 Samuel", NameEn: "1 Samuel", Chapters: 31, Testament: "Antiguo"},
	{ID: 10, Name: "2 Samuel", NameEn: "2 Samuel", Chapters: 24, Testament: "Antiguo"},
	{ID: 11, Name: "1 Reyes", NameEn: "1 Kings", Chapters: 22, Testament: "Antiguo"},
	{ID: 12, Name: "2 Reyes", NameEn: "2 Kings", Chapters: 25, Testament: "Antiguo"},
	{ID: 13, Name: "1 Crónicas", NameEn: "1 Chronicles", Chapters: 29, Testament: "Antiguo"},
	{ID: 14, Name: "2 Crónicas", NameEn: "2 Chronicles", Chapters: 36, Testament: "Antiguo"},
	{ID: 15, Name: "Esdras", NameEn: "Ezra", Chapters: 10, Testament: "Antiguo"},
	{ID: 16, Name: "Nehemías", NameEn: "Nehemiah", Chapters: 13, Testament: "Antiguo"},
	{ID: 17, Name: "Ester", NameEn: "Esther", Chapters: 10, Testament: "Antiguo"},
	{ID: 18, Name: "Job", NameEn: "Job", Chapters: 42, Testament: "Antiguo"},
	{ID: 19, Name: "Salmos", NameEn: "Psalms", Chapters: 150, Testament: "Antiguo"},
	{ID: 20, Name: "Proverbios", NameEn: "Proverbs", Chapters: 31, Testament: "Antiguo"},
	{ID: 21, Name: "Eclesiastés", NameEn: "Ecclesiastes", Chapters: 12, Testament: "Antiguo"},
	{ID: 22, Name: "Cantares", NameEn: "Song of Songs", Chapters: 8, Testament: "Antiguo"},
	{ID: 23, Name: "Isaías", NameEn: "Isaiah", Chapters: 66, Testament: "Antiguo"},
	{ID: 24, Name: "Jeremías", NameEn: "Jeremiah", Chapters: 52, Testament: "Antiguo"},
	{ID: 25, Name: "Lamentaciones", NameEn: "Lamentations", Chapters: 5, Testament: "Antiguo"},
	{ID: 26, Name: "Ezequiel", NameEn: "Ezekiel", Chapters: 48, Testament: "Antiguo"},
	{ID: 27, Name: "Daniel", NameEn: "Daniel", Chapters: 12, Testament: "Antiguo"},
	{ID: 28, Name: "Oseas", NameEn: "Hosea", Chapters: 14, Testament: "Antiguo"},
	{ID: 29, Name: "Joel", NameEn: "Joel", Chapters: 3, Testament: "Antiguo"},
	{ID: 30, Name: "Amós", NameEn: "Amos", Chapters: 9, Testament: "Antiguo"},
	{ID: 31, Name: "Abdías", NameEn: "Obadiah", Chapters: 1, Testament: "Antiguo"},
	{ID: 32, Name: "Jonás", NameEn: "Jonah", Chapters: 4, Testament: "Antiguo"},
	{ID: 33, Name: "Miqueas", NameEn: "Micah", Chapters: 7, Testament: "Antiguo"},
	{ID: 34, Name: "Nahúm", NameEn: "Nahum", Chapters: 3, Testament: "Antiguo"},
	{ID: 35, Name: "Habacuc", NameEn: "Habakkuk", Chapters: 3, Testament: "Antiguo"},
	{ID: 36, Name: "Sofonías", NameEn: "Zephaniah", Chapters: 3, Testament: "Antiguo"},
	{ID: 37, Name: "Hageo", NameEn: "Haggai", Chapters: 2, Testament: "Antiguo"},
	{ID: 38, Name: "Zacarías", NameEn: "Zechariah", Chapters: 14, Testament: "Antiguo"},
	{ID: 39, Name: "Malaquías", NameEn: "Malachi", Chapters: 4, Testament: "Antiguo"},

	// Nuevo Testamento
	{ID: 40, Name: "Mateo", NameEn: "Matthew", Chapters: 28, Testament: "Nuevo"},
	{ID: 41, Name: "Marcos", NameEn: "Mark", Chapters: 16, Testament: "Nuevo"},
	{ID: 42, Name: "Lucas", NameEn: "Luke", Chapters: 24, Testament: "Nuevo"},
	{ID: 43, Name: "Juan", NameEn: "John", Chapters: 21, Testament: "Nuevo"},
	{ID: 44, Name: "Hechos", NameEn: "Acts", Chapters: 28, Testament: "Nuevo"},
	{ID: 45, Name: "Romanos", NameEn: "Romans", Chapters: 16, Testament: "Nuevo"},
	{ID: 46, Name: "1 Corintios", NameEn: "1 Corinthians", Chapters: 16, Testament: "Nuevo"},
	{ID: 47, Name: "2 Corintios", NameEn: "2 Corinthians", Chapters: 13, Testament: "Nuevo"},
	{ID: 48, Name: "Gálatas", NameEn: "Galatians", Chapters: 6, Testament: "Nuevo"},
	{ID: 49, Name: "Efesios", NameEn: "Ephesians", Chapters: 6, Testament: "Nuevo"},
	{ID: 50, Name: "Filipenses", NameEn: "Philippians", Chapters: 4, Testament: "Nuevo"},
	{ID: 51, Name: "Colosenses", NameEn: "Colossians", Chapters: 4, Testament: "Nuevo"},
	{ID: 52, Name: "1 Tesalonicenses", NameEn: "1 Thessalonians", Chapters: 5, Testament: "Nuevo"},
	{ID: 53, Name: "2 Tesalonicenses", NameEn: "2 Thessalonians", Chapters: 3, Testament: "Nuevo"},
	{ID: 54, Name: "1 Timoteo", NameEn: "1 Timothy", Chapters: 6, Testament: "Nuevo"},
	{ID: 55, Name: "2 Timoteo", NameEn: "2 Timothy", Chapters: 4, Testament: "Nuevo"},
	{ID: 56, Name: "Tito", NameEn: "Titus", Chapters: 3, Testament: "Nuevo"},
	{ID: 57, Name: "Filemón", NameEn: "Philemon", Chapters: 1, Testament: "Nuevo"},
	{ID: 58, Name: "Hebreos", NameEn: "Hebrews", Chapters: 13, Testament: "Nuevo"},
	{ID: 59, Name: "Santiago", NameEn: "James", Chapters: 5, Testament: "Nuevo"},
	{ID: 60, Name: "1 Pedro", NameEn: "1 Peter", Chapters: 5, Testament: "Nuevo"},
	{ID: 61, Name: "2 Pedro", NameEn: "2 Peter", Chapters: 3, Testament: "Nuevo"},
	{ID: 62, Name: "1 Juan", NameEn: "1 John", Chapters: 5, Testament: "Nuevo"},
	{ID: 63, Name: "2 Juan", NameEn: "2 John", Chapters: 1, Testament: "Nuevo"},
	{ID: 64, Name: "3 Juan", NameEn: "3 John", Chapters: 1, Testament: "Nuevo"},
	{ID: 65, Name: "Judas", NameEn: "Jude", Chapters: 1, Testament: "Nuevo"},
	{ID: 66, Name: "Apocalipsis", NameEn: "Revelation", Chapters: 22, Testament: "Nuevo"},
}

// Source identifiers for the upstream providers.
const (
	SourceGitHub   = "github"   // wldeh CDN-hosted per-version JSON
	SourceBolls    = "bolls"    // bolls.life REST API (numeric book ids)
	SourceBibleAPI = "bible-api" // bible-api.com (English KJV only)
)

// Versions lists every translation the app offers and which upstream serves
// it. Built once, read only.
var Versions = []models.Version{
	// Español
	{ID: "es-rvr1960", APIID: "es-rvr1960", Name: "Reina-Valera 1960", Lang: "es", Description: "Versión tradicional en español más popular", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "es-pddpt", APIID: "es-pddpt", Name: "La Palabra de Dios para Todos", Lang: "es", Description: "Traducción moderna y clara en español", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "es-valera", APIID: "es-valera", Name: "Sagradas Escrituras (1569)", Lang: "es", Description: "Traducción histórica de Casiodoro de Reina", Source: SourceGitHub, Scope: "Complete Bible"},

	// Inglés (CDN)
	{ID: "en-kjv", APIID: "en-kjv", Name: "King James Version", Lang: "en", Description: "Classic English translation (1611)", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "en-niv2011", APIID: "NIV2011", Name: "NIV 2011 Updated", Lang: "en", Description: "Updated New International Version", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "en-asv", APIID: "en-asv", Name: "American Standard Version", Lang: "en", Description: "Accurate English translation (1901)", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "en-web", APIID: "en-web", Name: "World English Bible", Lang: "en", Description: "Modern public domain English translation", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "en-ylt", APIID: "en-ylt", Name: "Young's Literal Translation", Lang: "en", Description: "Literal word-for-word translation", Source: SourceGitHub, Scope: "Complete Bible"},

	// Español (Bolls)
	{ID: "es-rvr1909", APIID: "RVR1909", Name: "Reina-Valera 1909", Lang: "es", Description: "Versión histórica Reina-Valera", Source: SourceBolls, Scope: "Complete Bible"},
	{ID: "es-rvr1995", APIID: "RVR1995", Name: "Reina-Valera 1995", Lang: "es", Description: "Versión actualizada Reina-Valera", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-rvr2000", APIID: "RVR2000", Name: "Reina-Valera 2000", Lang: "es", Description: "Versión contemporánea Reina-Valera", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-ntv", APIID: "NTV", Name: "Nueva Traducción Viviente", Lang: "es", Description: "Traducción moderna y clara en español contemporáneo", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-lbla", APIID: "LBLA", Name: "La Biblia de las Américas", Lang: "es", Description: "Traducción fiel y exacta en español", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-dra", APIID: "DRA", Name: "Dios Habla Hoy", Lang: "es", Description: "Versión Popular en español sencillo", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-btx", APIID: "BTX", Name: "Biblia Textual", Lang: "es", Description: "Traducción basada en textos originales", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "es-nvi", APIID: "NVI", Name: "Nueva Versión Internacional", Lang: "es", Description: "Traducción moderna en español", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Inglés (Bolls)
	{ID: "en-niv", APIID: "NIV", Name: "New International Version", Lang: "en", Description: "Popular modern English translation", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-esv", APIID: "ESV", Name: "English Standard Version", Lang: "en", Description: "Contemporary English translation", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-nlt", APIID: "NLT", Name: "New Living Translation", Lang: "en", Description: "Easy-to-read modern English", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-nasb", APIID: "NASB", Name: "New American Standard Bible", Lang: "en", Description: "Accurate literal translation", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-amp", APIID: "AMP", Name: "Amplified Bible", Lang: "en", Description: "Expanded translation with detailed meanings", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-msg", APIID: "MSG", Name: "The Message", Lang: "en", Description: "Contemporary paraphrase by Eugene Peterson", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-nkjv", APIID: "NKJV", Name: "New King James Version", Lang: "en", Description: "Modern update of the King James Version", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "en-csb", APIID: "CSB", Name: "Christian Standard Bible", Lang: "en", Description: "Balance of accuracy and readability", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Português
	{ID: "pt-acf", APIID: "pt-acf", Name: "Almeida Corrigida Fiel", Lang: "pt", Description: "Tradução tradicional em português", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "pt-ara", APIID: "ARA", Name: "Almeida Revista e Atualizada", Lang: "pt", Description: "Versão atualizada em português", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "pt-nvi", APIID: "NVI-PT", Name: "Nova Versão Internacional", Lang: "pt", Description: "Tradução moderna em português", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Français
	{ID: "fr-bdm", APIID: "fr-bdm", Name: "Bible de David Martin", Lang: "fr", Description: "Traduction française classique", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "fr-lsg", APIID: "LSG", Name: "Louis Segond 1910", Lang: "fr", Description: "Traduction française traditionnelle", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "fr-bds", APIID: "BDS", Name: "Bible du Semeur", Lang: "fr", Description: "Traduction française contemporaine", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Deutsch
	{ID: "de-schlachter", APIID: "de-schlachter", Name: "Schlachter Bibel", Lang: "de", Description: "Deutsche Bibelübersetzung", Source: SourceGitHub, Scope: "Complete Bible", Popular: true},
	{ID: "de-luther", APIID: "LUTHER", Name: "Luther Bibel 1984", Lang: "de", Description: "Deutsche Lutherübersetzung", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Italiano
	{ID: "it-cei", APIID: "CEI", Name: "Conferenza Episcopale Italiana", Lang: "it", Description: "Traduzione italiana cattolica", Source: SourceBolls, Scope: "Complete Bible", Popular: true},
	{ID: "it-riveduta", APIID: "RIVEDUTA", Name: "Bibbia della Riveduta", Lang: "it", Description: "Traduzione italiana classica", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Русский
	{ID: "ru-synodal", APIID: "SYNODAL", Name: "Синодальный перевод", Lang: "ru", Description: "Традиционный русский перевод", Source: SourceBolls, Scope: "Complete Bible", Popular: true},

	// Idiomas originales
	{ID: "he-wlc", APIID: "he-wlc", Name: "Westminster Leningrad Codex", Lang: "he", Description: "Texto hebreo del Antiguo Testamento", Source: SourceGitHub, Scope: "Old Testament"},
	{ID: "grc-srgnt", APIID: "grc-srgnt", Name: "SBL Greek New Testament", Lang: "grc", Description: "Texto griego del Nuevo Testamento", Source: SourceGitHub, Scope: "New Testament"},

	// Fallback bible-api.com
	{ID: "kjv-fallback", APIID: "kjv", Name: "King James Version (Fallback)", Lang: "en", Description: "KJV from bible-api.com", Source: SourceBibleAPI, Scope: "Complete Bible"},
}

// Plans is the static reading-plan catalog.
var Plans = []models.ReadingPlan{
	{ID: 1, Name: "Biblia en un año", Duration: 365, Description: "Lee toda la Biblia en 365 días"},
	{ID: 2, Name: "Nuevo Testamento en 3 meses", Duration: 90, Description: "Completa el Nuevo Testamento"},
	{ID: 3, Name: "Salmos y Proverbios", Duration: 60, Description: "Sabiduría diaria"},
	{ID: 4, Name: "Evangelios", Duration: 30, Description: "Los cuatro evangelios en un mes"},
	{ID: 5, Name: "Epistolas de Pablo", Duration: 45, Description: "Las cartas del apóstol Pablo"},
}

// VersionInfo is the resolved routing target for a version id.
type VersionInfo struct {
	APIID  string
	Source string
}

var versionByID = func() map[string]models.Version {
	m := make(map[string]models.Version, len(Versions))
	for _, v := range Versions {
		m[v.ID] = v
	}
	return m
}()

// bollsEditions overrides routing for ids the display catalog attributes to
// the CDN but that also carry a bolls.life edition. The CDN dataset stays the
// first attempt for these; the bolls edition backs it up when the CDN misses.
var bollsEditions = map[string]string{
	"es-rvr1960": "RVR60",
	"es-pddpt":   "PDDPT",
	"es-valera":  "RVR1569",
}

// ResolveVersion maps a version id to its upstream routing. Unknown ids are
// assumed fetchable from the generic CDN under the same identifier; they fail
// at fetch time instead of here.
func ResolveVersion(id string) VersionInfo {
	if apiID, ok := bollsEditions[id]; ok {
		return VersionInfo{APIID: apiID, Source: SourceBolls}
	}
	if v, ok := versionByID[id]; ok {
		return VersionInfo{APIID: v.APIID, Source: v.Source}
	}
	return VersionInfo{APIID: id, Source: SourceGitHub}
}

// LookupVersion returns the full catalog entry, if any.
func LookupVersion(id string) (models.Version, bool) {
	v, ok := versionByID[id]
	return v, ok
}

var bookByKey = func() map[string]models.Book {
	m := make(map[string]models.Book, len(Books))
	for _, b := range Books {
		m[Normalize(b.NameEn)] = b
	}
	return m
}()

// BookByKey looks up a book by canonical key ("1samuel", "psalms", ...).
func BookByKey(key string) (models.Book, bool) {
	b, ok := bookByKey[key]
	return b, ok
}

// MaxChapters returns the chapter count for a canonical key, or a permissive
// default for unknown books so search loops stay bounded.
func MaxChapters(key string) int {
	if b, ok := bookByKey[key]; ok {
		return b.Chapters
	}
	return 25
}

// AllBookKeys returns the canonical keys of the whole canon in order.
func AllBookKeys() []string {
	keys := make([]string, 0, len(Books))
	for _, b := range Books {
		keys = append(keys, Normalize(b.NameEn))
	}
	return keys
}
