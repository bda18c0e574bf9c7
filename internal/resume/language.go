package resume

import "strings"

// Marker-word scoring between the two languages job descriptions here come
// in. Deliberately simple: postings are long enough that counting function
// words and domain words picks the right branch.
var (
	germanMarkers = []string{
		"und", "der", "die", "das", "mit", "für", "bei", "nicht",
		"entwickeln", "entwicklung", "bewerben", "kenntnisse", "erfahrung",
		"arbeitgeber", "bereich", "teamfähig", "studium",
		"werkstudent", "praktikum",
	}

	englishMarkers = []string{
		"and", "the", "with", "for", "software", "engineer",
		"responsibilities", "requirements", "experience",
		"working student", "internship",
	}
)

const (
	LanguageGerman  = "German"
	LanguageEnglish = "English"
)

// DetectLanguage decides between German and English for a job description.
// English is the default; German needs a strictly higher marker count.
func DetectLanguage(text string) string {
	t := strings.ToLower(text)

	germanScore := 0
	for _, w := range germanMarkers {
		if strings.Contains(t, w) {
			germanScore++
		}
	}

	englishScore := 0
	for _, w := range englishMarkers {
		if strings.Contains(t, w) {
			englishScore++
		}
	}

	if germanScore > englishScore {
		return LanguageGerman
	}
	return LanguageEnglish
}
