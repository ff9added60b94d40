package domain

import (
	"strconv"
	"strings"
)

// CommandKind tags a recognized chat command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdHelp
	CmdRegister
	CmdProfile
	CmdMyOffers
	CmdMyAgreements
	CmdOffer
	CmdSearch
	CmdNeed
)

// Command is the result of parsing one inbound message. Payload carries the
// original-case argument text for the prefix commands; it is empty for the
// zero-argument ones.
type Command struct {
	Kind    CommandKind
	Payload string
}

// route binds a command tag to its recognized spellings. Exact aliases are
// matched before prefixes so that matching precedence stays explicit and
// testable instead of being buried in a conditional cascade.
type route struct {
	kind     CommandKind
	aliases  []string
	prefixes []string
}

var routes = []route{
	{kind: CmdHelp, aliases: []string{"HELP", "AIDE"}},
	{kind: CmdRegister, aliases: []string{"REGISTER", "INSCRIPTION"}},
	{kind: CmdProfile, aliases: []string{"PROFILE"}},
	{kind: CmdMyOffers, aliases: []string{"MY_OFFERS", "MES_OFFRES"}},
	{kind: CmdMyAgreements, aliases: []string{"MY_AGREEMENTS", "MES_ACCORDS"}},
	{kind: CmdOffer, prefixes: []string{"OFFER "}},
	{kind: CmdSearch, prefixes: []string{"SEARCH ", "RECHERCHE "}},
	{kind: CmdNeed, prefixes: []string{"NEED "}},
}

// ParseCommand matches raw input against the command table. Matching is
// case-insensitive on a trimmed copy; argument payloads are sliced from the
// trimmed original-case text so that labels keep their casing.
func ParseCommand(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	upper := strings.ToUpper(trimmed)

	for _, r := range routes {
		for _, alias := range r.aliases {
			if upper == alias {
				return Command{Kind: r.kind}
			}
		}
	}
	for _, r := range routes {
		for _, prefix := range r.prefixes {
			if strings.HasPrefix(upper, prefix) {
				return Command{Kind: r.kind, Payload: payloadFor(r.kind, trimmed)}
			}
		}
	}
	return Command{Kind: CmdNone}
}

func payloadFor(kind CommandKind, trimmed string) string {
	switch kind {
	case CmdNeed:
		// Fixed 5-character prefix: "NEED ".
		return strings.TrimSpace(trimmed[5:])
	case CmdSearch:
		if i := strings.IndexByte(trimmed, ' '); i >= 0 {
			return strings.TrimSpace(trimmed[i+1:])
		}
		return ""
	case CmdOffer:
		// The offer grammar counts tokens including the keyword, so the
		// whole trimmed text is handed to ParseOfferArgs.
		return trimmed
	}
	return ""
}

// ParseOfferArgs parses "OFFER <label ...> <hours>" from the trimmed
// original-case text. Tokens split on single spaces; the last token must be
// a positive integer, the middle tokens rejoined form the service label.
func ParseOfferArgs(text string) (ServiceOffer, bool) {
	parts := strings.Split(text, " ")
	if len(parts) < 3 {
		return ServiceOffer{}, false
	}
	hours, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || hours <= 0 {
		return ServiceOffer{}, false
	}
	offer, err := NewServiceOffer(strings.Join(parts[1:len(parts)-1], " "), hours)
	if err != nil {
		return ServiceOffer{}, false
	}
	return offer, true
}

// IsSkip reports whether the input is the SKIP keyword, case-insensitively.
func IsSkip(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "SKIP")
}
