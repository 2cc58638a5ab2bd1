package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

// shotMapQuery is the query string shared by the dashboard and the shot map
// endpoints. Repeating team selects several teams; teams_set marks an
// explicit (possibly empty) team list. When prev_match differs from match the
// team list is reset to the new match's default.
type shotMapQuery struct {
	Match     string   `validate:"max=200"`
	PrevMatch string   `validate:"max=200"`
	Teams     []string `validate:"max=64,dive,required,max=100"`
	TeamsSet  bool
	Outcome   string `validate:"omitempty,oneof=Goal Saved All goal saved all"`
	View      string `validate:"omitempty,oneof=pitch goal Pitch Goal"`
}

func (h *Handler) parseShotMapQuery(ctx context.Context, r *http.Request) (usecase.RenderInput, error) {
	ctx, span := startSpan(ctx, "httpapi.Handler.parseShotMapQuery")
	defer span.End()

	values := r.URL.Query()
	_, hasTeams := values["team"]
	q := shotMapQuery{
		Match:     strings.TrimSpace(values.Get("match")),
		PrevMatch: strings.TrimSpace(values.Get("prev_match")),
		Teams:     trimAll(values["team"]),
		TeamsSet:  hasTeams || isTruthy(values.Get("teams_set")),
		Outcome:   strings.TrimSpace(values.Get("outcome")),
		View:      strings.TrimSpace(values.Get("view")),
	}
	if err := h.validateRequest(ctx, q); err != nil {
		return usecase.RenderInput{}, err
	}

	outcome, _ := shot.ParseOutcomeFilter(q.Outcome)
	view, _ := usecase.ParseView(q.View)
	input := usecase.RenderInput{
		MatchID: q.Match,
		Outcome: outcome,
		View:    view,
	}

	matchChanged := q.PrevMatch != "" && q.PrevMatch != q.Match
	if q.TeamsSet && !matchChanged {
		input.Teams = q.Teams
		if input.Teams == nil {
			input.Teams = []string{}
		}
	}

	return input, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// exportFilename turns a match name into a safe attachment name.
func exportFilename(matchID string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(matchID) {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "shotmap"
	}
	return name + ".xlsx"
}
