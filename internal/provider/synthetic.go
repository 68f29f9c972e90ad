package provider

import (
	"fmt"
	"math/rand"

	"biblealive/pkg/models"
)

// SourceSynthetic tags chapters fabricated when no real provider could
// supply content.
const SourceSynthetic = "fallback-synthetic"

// SynthesizeChapter fabricates a placeholder chapter whose verse text states
// it is placeholder content. Verse count is random in [5,34].
func SynthesizeChapter(rawBook string, chapter int, version string) *models.Chapter {
	count := rand.Intn(30) + 5
	verses := make([]models.Verse, 0, count)
	for i := 1; i <= count; i++ {
		verses = append(verses, models.Verse{
			Verse: i,
			Text: fmt.Sprintf(
				"⚠️ CONTENIDO DE RESPALDO: Versículo %d del capítulo %d de %s (%s). El texto real no está disponible en este momento.",
				i, chapter, rawBook, version),
		})
	}
	return &models.Chapter{
		Book:    rawBook,
		Chapter: chapter,
		Version: version,
		Verses:  verses,
		Source:  SourceSynthetic,
	}
}
