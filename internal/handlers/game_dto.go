package handlers

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

var ErrMissingParams = errors.New("either preset or width, height and mine_count are required")

type GameParamsDTO struct {
	Preset    string `schema:"preset"`
	Width     *int   `schema:"width"`
	Height    *int   `schema:"height"`
	MineCount *int   `schema:"mine_count"`
}

func ParseGameParams(src map[string][]string) (mines.GameParams, error) {
	var dto GameParamsDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	if dto.Preset != "" {
		p, ok := mines.Preset(dto.Preset)
		if !ok {
			return mines.GameParams{}, fmt.Errorf("unknown preset %q", dto.Preset)
		}
		return p, nil
	}
	if dto.Width == nil || dto.Height == nil || dto.MineCount == nil {
		return mines.GameParams{}, ErrMissingParams
	}
	p := mines.GameParams{Width: *dto.Width, Height: *dto.Height, MineCount: *dto.MineCount}
	return p, p.Validate()
}

type MoveDTO struct {
	Move   string `schema:"move,required"`
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Middle bool   `schema:"middle"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type CellDTO struct {
	ID       int    `json:"id"`
	Display  string `json:"display"`
	Class    string `json:"class"`
	Revealed bool   `json:"revealed"`
	Flagged  bool   `json:"flagged"`
	Disabled bool   `json:"disabled"`
}

type GameSessionDTO struct {
	GameSessionID string    `json:"game_session_id"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	MineCount     int       `json:"mine_count"`
	Phase         string    `json:"phase"`
	Tense         bool      `json:"tense"`
	Status        string    `json:"status"`
	Cells         []CellDTO `json:"cells"`
	StartedAt     int64     `json:"started_at"`
	Token         string    `json:"token,omitempty"`
}

// NewGameSessionDTO snapshots g. Only Display reaches the client, so the
// content of hidden cells is never sent.
func NewGameSessionDTO(s *session.Session, g *mines.Game) *GameSessionDTO {
	cells := make([]CellDTO, len(g.Board))
	for i, c := range g.Board {
		cells[i] = CellDTO{
			ID:       c.ID,
			Display:  c.Display,
			Class:    c.ClassName(),
			Revealed: c.Revealed,
			Flagged:  c.Flagged,
			Disabled: c.Disabled(),
		}
	}
	return &GameSessionDTO{
		GameSessionID: s.ID,
		Width:         g.Width,
		Height:        g.Height,
		MineCount:     g.MineCount,
		Phase:         g.Phase.String(),
		Tense:         g.Tense,
		Status:        g.Status(),
		Cells:         cells,
		StartedAt:     s.StartedAt.UnixMilli(),
	}
}
