package sanitize

import "strings"

// maxPlayerNameLen borne la longueur du pseudo affiché sur le classement.
const maxPlayerNameLen = 50

// stripper retire les caractères dangereux pour tout consommateur qui
// afficherait le pseudo sans échappement (balisage, guillemets).
var stripper = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// PlayerName assainit le pseudo optionnel: espaces externes retirés,
// tronqué à 50 caractères, puis débarrassé de < > " ' &. Le trim final
// garantit l'idempotence quand le strip expose de nouveaux espaces de bord.
// Jamais d'échec: au pire une chaîne vide.
func PlayerName(name *string) *string {
	if name == nil {
		return nil
	}
	s := strings.TrimSpace(*name)
	if runes := []rune(s); len(runes) > maxPlayerNameLen {
		s = string(runes[:maxPlayerNameLen])
	}
	s = strings.TrimSpace(stripper.Replace(s))
	return &s
}
