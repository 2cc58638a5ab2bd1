package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

// View selects which chart Render draws.
type View string

const (
	ViewPitch View = "pitch"
	ViewGoal  View = "goal"
)

// Views lists the selectable views in display order.
var Views = []View{ViewPitch, ViewGoal}

func ParseView(v string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "pitch":
		return ViewPitch, true
	case "goal":
		return ViewGoal, true
	default:
		return "", false
	}
}

// RenderInput is the dashboard selection. An empty MatchID picks the first
// match; nil Teams means every team of the match while an empty non-nil
// slice selects none.
type RenderInput struct {
	MatchID string
	Teams   []string
	Outcome shot.OutcomeFilter
	View    View
}

// Analysis is the filtered selection with its statistics and the option
// lists needed to redraw the controls.
type Analysis struct {
	Matches        []string
	AvailableTeams []string
	Selection      shot.Selection
	View           View
	Shots          []shot.Shot
	Summary        shot.Summary
}

// ShotMap is an Analysis plus the rendered chart.
type ShotMap struct {
	Analysis
	ContentType string
	Chart       []byte
	// Plotted is the number of markers drawn. The goal view skips rows
	// without an end location so it can be lower than len(Shots).
	Plotted int
}

type chartRenderer interface {
	ContentType() string
	RenderGoalView(ctx context.Context, points []shot.GoalMouthPoint) ([]byte, error)
	RenderPitchView(ctx context.Context, shots []shot.Shot) ([]byte, error)
}

// RenderObserver receives pipeline measurements. Implementations must be safe
// for concurrent use.
type RenderObserver interface {
	ObserveDatasetLoad(rows int, err error)
	ObserveRender(view string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveDatasetLoad(int, error) {}
func (nopObserver) ObserveRender(string, time.Duration, error) {}

type ShotMapService struct {
	shotRepo shot.Repository
	renderer chartRenderer
	observer RenderObserver
	now      func() time.Time
}

func NewShotMapService(shotRepo shot.Repository, renderer chartRenderer, observer RenderObserver) *ShotMapService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ShotMapService{
		shotRepo: shotRepo,
		renderer: renderer,
		observer: observer,
		now:      time.Now,
	}
}

func (s *ShotMapService) ListMatches(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotMapService.ListMatches")
	defer span.End()

	shots, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return shot.Matches(shots), nil
}

func (s *ShotMapService) ListTeamsByMatch(ctx context.Context, matchID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotMapService.ListTeamsByMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match is required", ErrInvalidInput)
	}

	shots, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	teams := shot.TeamsInMatch(shots, matchID)
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return teams, nil
}

// Analyze resolves the selection against the dataset, filters it and computes
// the summary statistics.
func (s *ShotMapService) Analyze(ctx context.Context, input RenderInput) (Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotMapService.Analyze")
	defer span.End()

	shots, err := s.load(ctx)
	if err != nil {
		return Analysis{}, err
	}

	return analyze(shots, input)
}

// Render runs Analyze and draws the requested view.
func (s *ShotMapService) Render(ctx context.Context, input RenderInput) (result ShotMap, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotMapService.Render")
	defer func() { endRenderSpan(span, result, err) }()

	if s.renderer == nil {
		return ShotMap{}, fmt.Errorf("%w: chart renderer is not configured", ErrDependencyUnavailable)
	}

	started := s.now()
	view, ok := ParseView(string(input.View))
	if !ok {
		view = input.View
	}
	defer func() {
		s.observer.ObserveRender(string(view), s.now().Sub(started), err)
	}()

	analysis, err := s.Analyze(ctx, input)
	if err != nil {
		return ShotMap{}, err
	}

	result = ShotMap{Analysis: analysis, ContentType: s.renderer.ContentType()}
	switch analysis.View {
	case ViewGoal:
		points := shot.ProjectGoalMouth(analysis.Shots)
		result.Plotted = len(points)
		result.Chart, err = s.renderer.RenderGoalView(ctx, points)
	default:
		result.Plotted = len(analysis.Shots)
		result.Chart, err = s.renderer.RenderPitchView(ctx, analysis.Shots)
	}
	if err != nil {
		return ShotMap{}, fmt.Errorf("render %s view: %w", analysis.View, err)
	}

	return result, nil
}

func (s *ShotMapService) load(ctx context.Context) ([]shot.Shot, error) {
	shots, err := s.shotRepo.List(ctx)
	s.observer.ObserveDatasetLoad(len(shots), err)
	if err != nil {
		if crerr.Is(err, shot.ErrDatasetUnavailable) {
			return nil, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
		}
		return nil, fmt.Errorf("list shots: %w", err)
	}

	return shots, nil
}

func analyze(shots []shot.Shot, input RenderInput) (Analysis, error) {
	view, ok := ParseView(string(input.View))
	if !ok {
		return Analysis{}, fmt.Errorf("%w: unknown view=%s", ErrInvalidInput, input.View)
	}

	outcome, ok := shot.ParseOutcomeFilter(string(input.Outcome))
	if !ok {
		return Analysis{}, fmt.Errorf("%w: unknown outcome=%s", ErrInvalidInput, input.Outcome)
	}

	matches := shot.Matches(shots)
	if len(matches) == 0 {
		return Analysis{}, fmt.Errorf("%w: dataset has no matches", ErrNotFound)
	}

	matchID := strings.TrimSpace(input.MatchID)
	if matchID == "" {
		matchID = matches[0]
	}

	available := shot.TeamsInMatch(shots, matchID)
	if len(available) == 0 {
		return Analysis{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	teams, err := resolveTeams(input.Teams, available)
	if err != nil {
		return Analysis{}, err
	}

	sel := shot.Selection{MatchID: matchID, Teams: teams, Outcome: outcome}
	filtered := shot.Filter(shots, sel)

	return Analysis{
		Matches:        matches,
		AvailableTeams: available,
		Selection:      sel,
		View:           view,
		Shots:          filtered,
		Summary:        shot.Summarize(filtered),
	}, nil
}

func resolveTeams(requested, available []string) ([]string, error) {
	if requested == nil {
		return append([]string(nil), available...), nil
	}

	known := make(map[string]struct{}, len(available))
	for _, team := range available {
		known[team] = struct{}{}
	}

	out := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, team := range requested {
		team = strings.TrimSpace(team)
		if team == "" {
			continue
		}
		if _, ok := known[team]; !ok {
			return nil, fmt.Errorf("%w: team=%s is not in the selected match", ErrInvalidInput, team)
		}
		if _, ok := seen[team]; ok {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, team)
	}

	return out, nil
}
