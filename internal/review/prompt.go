package review

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultLang = "fr"

// languages maps accepted codes to the name used inside the French prompt.
var languages = map[string]string{
	"fr": "français",
	"en": "anglais",
	"es": "espagnol",
	"de": "allemand",
	"it": "italien",
	"pt": "portugais",
	"nl": "néerlandais",
	"ja": "japonais",
	"zh": "chinois",
}

var categoryLabels = map[string]string{
	"dish":                 "Plats dégustés",
	CategoryServiceQuality: "Qualités du service appréciées",
	CategoryAtmosphere:     "Ambiance",
	CategoryReasonForVisit: "Occasion de la visite",
	CategoryQuickHighlight: "Point marquant",
}

// Language returns the prompt name for code, falling back to French.
func Language(code string) string {
	if name, ok := languages[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return languages[defaultLang]
}

// PromptInput is everything the drafted review is built from.
type PromptInput struct {
	Lang        string
	Tags        []Tag
	Rating      *float64
	CustomNotes string
}

// BuildPrompt returns the system and user messages. Output depends only on
// the input: categories appear in first-occurrence order and values in
// request order.
func BuildPrompt(in PromptInput) (system, user string) {
	lang := Language(in.Lang)

	system = fmt.Sprintf(
		"Tu es un assistant de rédaction d'avis pour Gallopin, une brasserie parisienne de luxe. "+
			"Rédige des avis authentiques et élégants en %s.", lang)

	var order []string
	values := map[string][]string{}
	server := ""
	for _, t := range in.Tags {
		if t.Category == CategoryServer {
			if server == "" {
				server = t.Value
			}
			continue
		}
		if _, seen := values[t.Category]; !seen {
			order = append(order, t.Category)
		}
		values[t.Category] = append(values[t.Category], t.Value)
	}

	var b strings.Builder
	b.WriteString("Rédige un avis client authentique et élégant pour Gallopin, une brasserie parisienne historique et raffinée fondée en 1876.\n")
	b.WriteString("Le ton doit être celui d'un client satisfait qui partage une expérience mémorable.\n")
	fmt.Fprintf(&b, "L'avis doit être rédigé en %s.\n\n", lang)

	b.WriteString("Voici les détails de l'expérience :\n")
	if in.Rating != nil {
		fmt.Fprintf(&b, "- Note attribuée : %s/5 étoiles.\n", strconv.FormatFloat(*in.Rating, 'f', -1, 64))
	}
	for _, cat := range order {
		fmt.Fprintf(&b, "- %s : %s.\n", label(cat), strings.Join(values[cat], ", "))
	}
	if notes := strings.TrimSpace(in.CustomNotes); notes != "" {
		fmt.Fprintf(&b, "- Notes additionnelles du client : %q\n", notes)
	}

	if server != "" {
		fmt.Fprintf(&b, "\nLe client a été servi par %s : mentionne son prénom et salue chaleureusement la qualité de son service.\n", server)
	}

	b.WriteString("\nInstructions de rédaction :\n")
	b.WriteString("1. Commence par une phrase d'accroche qui reflète le cadre unique de Gallopin.\n")
	b.WriteString("2. Intègre naturellement les détails ci-dessus dans le corps du texte.\n")
	b.WriteString("3. Si des notes additionnelles sont fournies, inspire-t'en pour ajouter une touche personnelle.\n")
	b.WriteString("4. Conclus sur une note positive, en recommandant l'établissement.\n")
	b.WriteString("5. La réponse doit être uniquement le texte de l'avis, sans introduction ni fioritures.")

	return system, b.String()
}

func label(category string) string {
	if l, ok := categoryLabels[category]; ok {
		return l
	}
	return category
}
