package bible

import "strings"

// bookAliases maps lowercased Spanish/English book names to the canonical
// lowercase no-space keys the upstream providers address books by.
var bookAliases = map[string]string{
	"genesis": "genesis", "génesis": "genesis",
	"exodus": "exodus", "éxodo": "exodus",
	"leviticus": "leviticus", "levítico": "leviticus",
	"numbers": "numbers", "números": "numbers",
	"deuteronomy": "deuteronomy", "deuteronomio": "deuteronomy",
	"joshua": "joshua", "josué": "joshua",
	"judges": "judges", "jueces": "judges",
	"ruth": "ruth", "rut": "ruth",
	"1 samuel": "1samuel",
	"2 samuel": "2samuel",
	"1 kings":  "1kings", "1 reyes": "1kings",
	"2 kings": "2kings", "2 reyes": "2kings",
	"1 chronicles": "1chronicles", "1 crónicas": "1chronicles",
	"2 chronicles": "2chronicles", "2 crónicas": "2chronicles",
	"ezra": "ezra", "esdras": "ezra",
	"nehemiah": "nehemiah", "nehemías": "nehemiah",
	"esther": "esther", "ester": "esther",
	"job":    "job",
	"psalms": "psalms", "salmos": "psalms",
	"proverbs": "proverbs", "proverbios": "proverbs",
	"ecclesiastes": "ecclesiastes", "eclesiastés": "ecclesiastes",
	"song of songs": "songofsolomon", "song of solomon": "songofsolomon", "cantares": "songofsolomon",
	"isaiah": "isaiah", "isaías": "isaiah",
	"jeremiah": "jeremiah", "jeremías": "jeremiah",
	"lamentations": "lamentations", "lamentaciones": "lamentations",
	"ezekiel": "ezekiel", "ezequiel": "ezekiel",
	"daniel": "daniel",
	"hosea":  "hosea", "oseas": "hosea",
	"joel": "joel",
	"amos": "amos", "amós": "amos",
	"obadiah": "obadiah", "abdías": "obadiah",
	"jonah": "jonah", "jonás": "jonah",
	"micah": "micah", "miqueas": "micah",
	"nahum": "nahum", "nahúm": "nahum",
	"habakkuk": "habakkuk", "habacuc": "habakkuk",
	"zephaniah": "zephaniah", "sofonías": "zephaniah",
	"haggai": "haggai", "hageo": "haggai",
	"zechariah": "zechariah", "zacarías": "zechariah",
	"malachi": "malachi", "malaquías": "malachi",
	"matthew": "matthew", "mateo": "matthew",
	"mark": "mark", "marcos": "mark",
	"luke": "luke", "lucas": "luke",
	"john": "john", "juan": "john",
	"acts": "acts", "hechos": "acts",
	"romans": "romans", "romanos": "romans",
	"1 corinthians": "1corinthians", "1 corintios": "1corinthians",
	"2 corinthians": "2corinthians", "2 corintios": "2corinthians",
	"galatians": "galatians", "gálatas": "galatians",
	"ephesians": "ephesians", "efesios": "ephesians",
	"philippians": "philippians", "filipenses": "philippians",
	"colossians": "colossians", "colosenses": "colossians",
	"1 thessalonians": "1thessalonians", "1 tesalonicenses": "1thessalonians",
	"2 thessalonians": "2thessalonians", "2 tesalonicenses": "2thessalonians",
	"1 timothy": "1timothy", "1 timoteo": "1timothy",
	"2 timothy": "2timothy", "2 timoteo": "2timothy",
	"titus": "titus", "tito": "titus",
	"philemon": "philemon", "filemón": "philemon",
	"hebrews": "hebrews", "hebreos": "hebrews",
	"james": "james", "santiago": "james",
	"1 peter": "1peter", "1 pedro": "1peter",
	"2 peter": "2peter", "2 pedro": "2peter",
	"1 john": "1john", "1 juan": "1john",
	"2 john": "2john", "2 juan": "2john",
	"3 john": "3john", "3 juan": "3john",
	"jude": "jude", "judas": "jude",
	"revelation": "revelation", "apocalipsis": "revelation",
}

// Normalize maps a raw book name to its canonical key. Names outside the
// alias table pass through lower-cased; an unknown key fails later at fetch
// time, not here.
func Normalize(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if key, ok := bookAliases[lower]; ok {
		return key
	}
	return lower
}

// bookNumbers maps canonical keys to the 1-66 numeric ids the bolls.life API
// addresses books by.
var bookNumbers = map[string]int{
	"genesis": 1, "exodus": 2, "leviticus": 3, "numbers": 4, "deuteronomy": 5,
	"joshua": 6, "judges": 7, "ruth": 8, "1samuel": 9, "2samuel": 10,
	"1kings": 11, "2kings": 12, "1chronicles": 13, "2chronicles": 14,
	"ezra": 15, "nehemiah": 16, "esther": 17, "job": 18, "psalms": 19,
	"proverbs": 20, "ecclesiastes": 21, "songofsolomon": 22, "isaiah": 23,
	"jeremiah": 24, "lamentations": 25, "ezekiel": 26, "daniel": 27,
	"hosea": 28, "joel": 29, "amos": 30, "obadiah": 31, "jonah": 32,
	"micah": 33, "nahum": 34, "habakkuk": 35, "zephaniah": 36, "haggai": 37,
	"zechariah": 38, "malachi": 39, "matthew": 40, "mark": 41, "luke": 42,
	"john": 43, "acts": 44, "romans": 45, "1corinthians": 46,
	"2corinthians": 47, "galatians": 48, "ephesians": 49, "philippians": 50,
	"colossians": 51, "1thessalonians": 52, "2thessalonians": 53,
	"1timothy": 54, "2timothy": 55, "titus": 56, "philemon": 57,
	"hebrews": 58, "james": 59, "1peter": 60, "2peter": 61, "1john": 62,
	"2john": 63, "3john": 64, "jude": 65, "revelation": 66,
}

// BookNumber returns the numeric book id for the numeric-id provider, or 0
// when the key has no mapping (that provider is then skipped).
func BookNumber(key string) int {
	return bookNumbers[Normalize(key)]
}
