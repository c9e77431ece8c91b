package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidateRejectsBadStates(t *testing.T) {
	cases := map[string]func(*MatchState){
		"view mode":      func(s *MatchState) { s.ViewMode = "banner" },
		"template":       func(s *MatchState) { s.Left.Template = "squash" },
		"negative point": func(s *MatchState) { s.Right.P2 = -1 },
		"negative sets":  func(s *MatchState) { s.Left.P1Sets = -3 },
		"negative timer": func(s *MatchState) { s.Left.TimerStored = -1 },
		"double advantage": func(s *MatchState) {
			s.Right.Template = TemplateTennis
			s.Right.P1, s.Right.P2 = 4, 4
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := Defaults()
			mutate(&s)
			err := Validate(s)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidDelta))
		})
	}
}

func TestValidateAllowsLargeAmericanoTotals(t *testing.T) {
	s := Defaults()
	s.Left.Template = TemplateAmericano
	s.Left.P1, s.Left.P2 = 31, 4
	require.NoError(t, Validate(s))
}

func TestValidateDeltaTennisPointRange(t *testing.T) {
	s := Defaults()
	s.Right.Template = TemplateTennis

	over := Delta{Right: &CourtDelta{P1: intPtr(9)}}
	err := ValidateDelta(over, Merge(s, over))
	require.ErrorIs(t, err, ErrInvalidDelta)

	advantage := Delta{Right: &CourtDelta{P1: intPtr(MaxTennisIndex)}}
	require.NoError(t, ValidateDelta(advantage, Merge(s, advantage)))

	tennis := TemplateTennis
	switched := Delta{Left: &CourtDelta{Template: &tennis, P1: intPtr(9)}}
	require.NoError(t, ValidateDelta(switched, Merge(s, switched)))

	americano := Delta{Left: &CourtDelta{P1: intPtr(9)}}
	require.NoError(t, ValidateDelta(americano, Merge(s, americano)))
}

func TestDecodeDeltaRejectsMalformedBodies(t *testing.T) {
	bodies := []string{
		`{"left":{"p1":"five"}}`,
		`{"score":1}`,
		`{"left":{"winner":null}}`,
		`[1,2]`,
		`{"viewMode":"text"} {"viewMode":"score"}`,
		`{"left":`,
		`{}}`,
		`{}]`,
		`null`,
		`"score"`,
		`{} x`,
	}
	for _, body := range bodies {
		_, err := DecodeDelta(strings.NewReader(body))
		require.Error(t, err, body)
		require.ErrorIs(t, err, ErrInvalidDelta, body)
	}
}

func TestDecodeDeltaAcceptsEmptyObject(t *testing.T) {
	d, err := DecodeDelta(strings.NewReader(" {}\n"))
	require.NoError(t, err)
	require.True(t, d.Empty())
}

func TestDecodeDeltaTreatsNullAsAbsent(t *testing.T) {
	d, err := DecodeDelta(strings.NewReader(`{"left":null,"runningText":null}`))
	require.NoError(t, err)
	require.True(t, d.Empty())
}
