package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand_AliasesAndPrefixes(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		raw     string
		kind    CommandKind
		payload string
	}{
		{"HELP", CmdHelp, ""},
		{"aide", CmdHelp, ""},
		{"  register  ", CmdRegister, ""},
		{"INSCRIPTION", CmdRegister, ""},
		{"PROFILE", CmdProfile, ""},
		{"MY_OFFERS", CmdMyOffers, ""},
		{"mes_offres", CmdMyOffers, ""},
		{"MY_AGREEMENTS", CmdMyAgreements, ""},
		{"MES_ACCORDS", CmdMyAgreements, ""},
		{"OFFER design logo 3", CmdOffer, "OFFER design logo 3"},
		{"offer Design Logo 3", CmdOffer, "offer Design Logo 3"},
		{"SEARCH design", CmdSearch, "design"},
		{"recherche Comptabilité", CmdSearch, "Comptabilité"},
		{"NEED comptabilité", CmdNeed, "comptabilité"},
		{"need   plomberie  ", CmdNeed, "plomberie"},
		{"bonjour", CmdNone, ""},
		{"", CmdNone, ""},
		// Prefix commands require the space: bare and glued keywords
		// are not commands.
		{"OFFER", CmdNone, ""},
		{"OFFERING", CmdNone, ""},
	}

	for _, c := range cases {
		cmd := ParseCommand(c.raw)
		req.Equal(c.kind, cmd.Kind, "raw=%q", c.raw)
		req.Equal(c.payload, cmd.Payload, "raw=%q", c.raw)
	}
}

func TestParseOfferArgs(t *testing.T) {
	req := require.New(t)

	offer, ok := ParseOfferArgs("OFFER design logo 3")
	req.True(ok)
	req.Equal("design logo", offer.Service)
	req.Equal(uint(3), offer.Hours)
	req.NotEmpty(offer.ID)

	offer, ok = ParseOfferArgs("OFFER plomberie 2")
	req.True(ok)
	req.Equal("plomberie", offer.Service)
	req.Equal(uint(2), offer.Hours)

	// Keyword counts as a token: a label is mandatory.
	_, ok = ParseOfferArgs("OFFER 3")
	req.False(ok)

	// Last token must be a positive integer.
	_, ok = ParseOfferArgs("OFFER design logo trois")
	req.False(ok)
	_, ok = ParseOfferArgs("OFFER design logo 0")
	req.False(ok)
	_, ok = ParseOfferArgs("OFFER design logo -3")
	req.False(ok)
}

func TestIsSkip(t *testing.T) {
	req := require.New(t)
	req.True(IsSkip("SKIP"))
	req.True(IsSkip("skip"))
	req.True(IsSkip("  Skip  "))
	req.False(IsSkip("SKIPPED"))
	req.False(IsSkip(""))
}

func TestNewServiceOffer_Validation(t *testing.T) {
	req := require.New(t)

	offer, err := NewServiceOffer("  design logo  ", 3)
	req.NoError(err)
	req.Equal("design logo", offer.Service)

	_, err = NewServiceOffer("   ", 3)
	req.Error(err)
	_, err = NewServiceOffer("design", 0)
	req.Error(err)
	_, err = NewServiceOffer("design", -1)
	req.Error(err)
}

func TestConversationState_Known(t *testing.T) {
	req := require.New(t)
	for _, s := range []ConversationState{
		StateAwaitingName, StateAwaitingPhone, StateAwaitingEmail,
		StateAwaitingServices, StateAwaitingNeeds,
	} {
		req.True(s.Known())
	}
	req.True(StateNone.Known())
	req.False(ConversationState("REGISTER_SHOE_SIZE").Known())
}
