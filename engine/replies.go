package engine

import (
	"fmt"
	"strings"
	"troc-service/domain"
	"troc-service/store"
)

// Reply catalog. The texts are the production French ones; command keywords
// themselves stay bilingual (see domain.ParseCommand).

const replyWelcome = `🤝 Bienvenue sur Troc-Service !
La marketplace d'échange de services sans argent.

Tapez *HELP* pour voir les commandes disponibles.
Tapez *REGISTER* pour commencer votre inscription.`

const replyHelp = `📋 COMMANDES DISPONIBLES :

*REGISTER* - S'inscrire sur la plateforme
*OFFER* [service] [heures] - Proposer un service
*SEARCH* [service] - Rechercher un service
*NEED* [service] - Indiquer vos besoins
*MY_OFFERS* - Voir vos offres
*MY_AGREEMENTS* - Voir vos accords
*PROFILE* - Voir votre profil
*HELP* - Afficher cette aide

Exemples :
OFFER design logo 3
SEARCH comptabilité
NEED comptabilité`

const replyRegisterIntro = `📝 INSCRIPTION TROC-SERVICE

Pour commencer, donnez-moi votre nom complet :`

const replyMustRegister = `❌ Vous devez d'abord vous inscrire.
Tapez *REGISTER* pour commencer.`

const replyOfferFormat = `❌ Format incorrect. Utilisez : OFFER [service] [heures]
Exemple : OFFER design logo 3`

const replySearchMissing = `❌ Veuillez spécifier un service à rechercher.
Exemple : SEARCH design`

const replyNeedMissing = `❌ Veuillez spécifier un service dont vous avez besoin.
Exemple : NEED comptabilité`

const replyAskEmail = `Parfait ! Votre numéro est enregistré.

Quelle est votre adresse email ?`

const replyAskServices = `Excellent ! Maintenant, dites-moi quels services vous proposez.

Format : *OFFER* [service] [heures]
Exemple : OFFER design graphique 5

Ou tapez *SKIP* pour ajouter plus tard.`

const replyAskNeeds = `Parfait ! Vos services ont été enregistrés.

Maintenant, quels services recherchez-vous ?

Format : *NEED* [service]
Exemple : NEED comptabilité

Ou tapez *SKIP* pour ajouter plus tard.`

const replyRegistrationDone = `🎉 Inscription terminée !

Votre profil Troc-Service a été créé avec succès.

Tapez *PROFILE* pour voir vos informations.
Tapez *OFFER* pour ajouter un service.
Tapez *SEARCH* pour trouver des services.`

const replyInternalError = `❌ Une erreur est survenue. Réessayez, ou tapez *HELP*.`

const replyNoOffers = `📤 Vous n'avez pas encore proposé de services.
Tapez *OFFER* [service] [heures] pour en créer un.`

const replyNoAgreements = `🤝 Vous n'avez pas encore d'accords.
Utilisez *SEARCH* pour trouver des services.`

func replyAskPhone(name string) string {
	return fmt.Sprintf(`Merci %s !

Maintenant, quel est votre numéro de téléphone ?
(Format: +237 6 XX XX XX XX)`, name)
}

func replyOfferStored(offer domain.ServiceOffer) string {
	return fmt.Sprintf(`✅ Service enregistré !
Service: %s
Heures: %d

Tapez *MY_OFFERS* pour voir vos offres.`, offer.Service, offer.Hours)
}

func replyNeedStored(label string) string {
	return fmt.Sprintf(`✅ Besoin enregistré : %s

Tapez *PROFILE* pour voir tous vos besoins.`, label)
}

func replyNoResults(term string) string {
	return fmt.Sprintf(`🔍 Aucun service trouvé pour "%s".
Essayez avec d'autres mots-clés.`, term)
}

func renderSearchResults(term string, results []SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Services trouvés pour %q:\n\n", term)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s - %s (%dh)\n", i+1, r.Name, r.Service, r.Hours)
	}
	b.WriteString("\nPour contacter un prestataire, partagez votre numéro.")
	return b.String()
}

func renderProfile(p domain.Participant) string {
	var b strings.Builder
	b.WriteString("👤 PROFIL UTILISATEUR\n\n")
	fmt.Fprintf(&b, "Nom: %s\n", p.Name)
	fmt.Fprintf(&b, "Téléphone: %s\n", orUnset(p.Phone))
	fmt.Fprintf(&b, "Email: %s\n\n", orUnset(p.Email))

	if len(p.Services) > 0 {
		b.WriteString("📤 Services proposés:\n")
		for _, s := range p.Services {
			fmt.Fprintf(&b, "- %s (%dh)\n", s.Service, s.Hours)
		}
		b.WriteString("\n")
	}
	if len(p.Needs) > 0 {
		b.WriteString("🔍 Services recherchés:\n")
		for _, n := range p.Needs {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}
	return b.String()
}

func renderMyOffers(offers []domain.ServiceOffer) string {
	var b strings.Builder
	b.WriteString("📤 VOS SERVICES PROPOSÉS:\n\n")
	for i, o := range offers {
		fmt.Fprintf(&b, "%d. %s (%dh)\n", i+1, o.Service, o.Hours)
	}
	return b.String()
}

func renderMyAgreements(agreements []domain.Agreement) string {
	var b strings.Builder
	b.WriteString("🤝 VOS ACCORDS:\n\n")
	for i, a := range agreements {
		fmt.Fprintf(&b, "%d. %s avec %s\n", i+1, a.Description, a.Partner)
	}
	return b.String()
}

func orUnset(v string) string {
	if v == "" {
		return "Non renseigné"
	}
	return v
}

// SearchResult is one line of a SEARCH reply.
type SearchResult struct {
	Name    string
	Service string
	Hours   uint
}

func toSearchResult(name string, o store.IndexedOffer) SearchResult {
	if name == "" {
		name = "Utilisateur"
	}
	return SearchResult{Name: name, Service: o.Offer.Service, Hours: o.Offer.Hours}
}
