package httpapi

import (
	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

type matchDTO struct {
	ID string `json:"id"`
}

type selectionDTO struct {
	Match   string   `json:"match"`
	Teams   []string `json:"teams"`
	Outcome string   `json:"outcome"`
	View    string   `json:"view"`
}

type teamXGDTO struct {
	Team string  `json:"team"`
	XG   float64 `json:"xg"`
}

type summaryDTO struct {
	TotalShots int         `json:"totalShots"`
	Goals      int         `json:"goals"`
	Saves      int         `json:"saves"`
	TotalXG    float64     `json:"totalXg"`
	TeamXG     []teamXGDTO `json:"teamXg"`
}

type shotDTO struct {
	Team       string   `json:"team"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Outcome    string   `json:"outcome"`
	Category   string   `json:"category"`
	EndY       *float64 `json:"endY,omitempty"`
	EndZ       *float64 `json:"endZ,omitempty"`
	XG         float64  `json:"xg"`
	OnTarget   bool     `json:"onTarget"`
	MarkerArea float64  `json:"markerArea"`
}

type analysisDTO struct {
	Selection      selectionDTO `json:"selection"`
	Matches        []string     `json:"matches"`
	AvailableTeams []string     `json:"availableTeams"`
	Summary        summaryDTO   `json:"summary"`
	Shots          []shotDTO    `json:"shots"`
}

func analysisToDTO(a usecase.Analysis) analysisDTO {
	teamXG := make([]teamXGDTO, 0, len(a.Summary.TeamXG))
	for _, item := range a.Summary.TeamXG {
		teamXG = append(teamXG, teamXGDTO{Team: item.Team, XG: shot.Round2(item.XG)})
	}

	shots := make([]shotDTO, 0, len(a.Shots))
	for _, item := range a.Shots {
		shots = append(shots, shotToDTO(item))
	}

	return analysisDTO{
		Selection: selectionDTO{
			Match:   a.Selection.MatchID,
			Teams:   nonNil(a.Selection.Teams),
			Outcome: string(a.Selection.Outcome),
			View:    string(a.View),
		},
		Matches:        nonNil(a.Matches),
		AvailableTeams: nonNil(a.AvailableTeams),
		Summary: summaryDTO{
			TotalShots: a.Summary.TotalShots,
			Goals:      a.Summary.Goals,
			Saves:      a.Summary.Saves,
			TotalXG:    shot.Round2(a.Summary.TotalXG),
			TeamXG:     teamXG,
		},
		Shots: shots,
	}
}

// shotToDTO expects a filtered shot, so x, y and xG are present.
func shotToDTO(s shot.Shot) shotDTO {
	out := shotDTO{
		Team:       s.Team,
		Outcome:    s.Outcome,
		Category:   string(shot.CategoryOf(s.Outcome)),
		EndY:       s.EndY,
		EndZ:       s.EndZ,
		XG:         s.XGValue(),
		OnTarget:   s.IsOnTarget(),
		MarkerArea: shot.MarkerArea(s),
	}
	if s.X != nil {
		out.X = *s.X
	}
	if s.Y != nil {
		out.Y = *s.Y
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
