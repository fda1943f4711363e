package workflow

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

var (
	ErrStageNotFound         = errors.New("stage not found")
	ErrInvalidStageReference = errors.New("invalid stage reference")
	ErrInvalidTimeEntry      = errors.New("invalid time entry")
)

// The engine operates on project values: every operation returns a new Project
// and leaves its input untouched, so a failed transition can never leave a
// half-mutated record behind.

// CurrentStageName returns the label of the project's current stage. A current
// stage id that is not in the snapshot means corrupt state and is reported, not
// guessed around.
func CurrentStageName(p entities.Project) (string, error) {
	idx := stageIndex(p.Stages, p.CurrentStageID)
	if idx < 0 {
		return "", fmt.Errorf("%w: current stage %q not in snapshot", ErrStageNotFound, p.CurrentStageID)
	}
	return p.Stages[idx].Label, nil
}

// Progress is the stage-based completion percent: round(100 * (index+1) / len).
// It is a pure function of ordinal position; logged hours never move it.
func Progress(p entities.Project) (int, error) {
	if len(p.Stages) == 0 {
		return 0, fmt.Errorf("%w: empty stage snapshot", ErrStageNotFound)
	}
	idx := stageIndex(p.Stages, p.CurrentStageID)
	if idx < 0 {
		return 0, fmt.Errorf("%w: current stage %q not in snapshot", ErrStageNotFound, p.CurrentStageID)
	}
	return int(math.Round(100 * float64(idx+1) / float64(len(p.Stages)))), nil
}

// AdvanceStage moves the project to targetStageID. Forward and backward moves
// are both legal (revision loops happen); the only validation is snapshot
// membership. Reaching the last stage marks the project entregue and stamps
// DeliveredAt; any other target while entregue reopens it.
func AdvanceStage(p entities.Project, targetStageID string, now time.Time) (entities.Project, error) {
	idx := stageIndex(p.Stages, targetStageID)
	if idx < 0 {
		return entities.Project{}, fmt.Errorf("%w: stage %q not in snapshot", ErrInvalidStageReference, targetStageID)
	}

	p.CurrentStageID = targetStageID
	p.UpdatedAt = now

	if idx == len(p.Stages)-1 {
		p.Status = entities.ProjectStatusEntregue
		p.DeliveredAt = now
		return p, nil
	}

	if p.Status == entities.ProjectStatusEntregue || p.Status == entities.ProjectStatusAguardando {
		p.Status = entities.ProjectStatusEmAndamento
	}
	p.DeliveredAt = time.Time{}
	return p, nil
}

// AppendTimeEntry validates and appends one entry. The entries slice is copied
// before appending so the caller's project value stays untouched on failure and
// on success alike.
func AppendTimeEntry(p entities.Project, entry entities.TimeEntry) (entities.Project, error) {
	if entry.Hours <= 0 {
		return entities.Project{}, fmt.Errorf("%w: hours must be > 0", ErrInvalidTimeEntry)
	}
	if stageIndex(p.Stages, entry.StageID) < 0 {
		return entities.Project{}, fmt.Errorf("%w: stage %q not in snapshot", ErrInvalidStageReference, entry.StageID)
	}

	entries := make([]entities.TimeEntry, len(p.TimeEntries), len(p.TimeEntries)+1)
	copy(entries, p.TimeEntries)
	p.TimeEntries = append(entries, entry)
	return p, nil
}

// HoursUsed is always recomputed from the entry list; it is never stored, so it
// cannot drift from the entries.
func HoursUsed(p entities.Project) float64 {
	total := 0.0
	for _, e := range p.TimeEntries {
		total += e.Hours
	}
	return total
}

func stageIndex(stages []entities.StageDefinition, id string) int {
	for i, s := range stages {
		if s.ID == id {
			return i
		}
	}
	return -1
}
