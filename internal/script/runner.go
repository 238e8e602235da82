package script

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/thenoetrevino/swimlane/internal/board"
	"github.com/thenoetrevino/swimlane/internal/drag"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// Result summarises a completed run
type Result struct {
	Steps        int
	StartVersion uint64
	EndVersion   uint64
}

// Changed reports whether any step committed to the board.
// A run whose moves cancel out still counts as changed.
func (r Result) Changed() bool {
	return r.EndVersion != r.StartVersion
}

// Runner executes scripts. Aliases persist across Run calls.
type Runner struct {
	store   *board.Store
	drag    *drag.Coordinator
	logger  *slog.Logger
	aliases map[string]types.ID
}

// NewRunner creates a runner over store and coord
func NewRunner(store *board.Store, coord *drag.Coordinator, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		store:   store,
		drag:    coord,
		logger:  logger,
		aliases: make(map[string]types.ID),
	}
}

// Resolve maps an alias to its id. Names that are not aliases are taken as
// literal ids.
func (r *Runner) Resolve(name string) types.ID {
	if id, ok := r.aliases[name]; ok {
		return id
	}
	return types.ID(name)
}

// Name maps an id back to its alias, or returns the id itself
func (r *Runner) Name(id types.ID) string {
	for alias, aliased := range r.aliases {
		if aliased == id {
			return alias
		}
	}
	return id.String()
}

// Run executes every step in order and stops at the first error
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	res := Result{StartVersion: r.store.Version()}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := r.step(step); err != nil {
			res.EndVersion = r.store.Version()
			return res, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		res.Steps++
	}

	res.EndVersion = r.store.Version()
	r.logger.Debug("script finished",
		"name", s.Name,
		"steps", res.Steps,
		"start_version", res.StartVersion,
		"end_version", res.EndVersion)
	return res, nil
}

func (r *Runner) step(st Step) error {
	r.logger.Debug("script step", "op", st.Op, "column", st.Column, "card", st.Card, "target", st.Target)

	switch st.Op {
	case OpCreateColumn:
		col := r.store.CreateColumn()
		if st.Title != "" {
			r.store.RenameColumn(col.ID, st.Title)
		}
		r.alias(st.As, col.ID)

	case OpCreateCard:
		if st.Column == "" {
			return missing("column")
		}
		card, err := r.store.CreateCard(r.Resolve(st.Column))
		if err != nil {
			return err
		}
		if st.Content != "" {
			r.store.EditCardContent(card.ID, st.Content)
		}
		r.alias(st.As, card.ID)

	case OpRenameColumn:
		if st.Column == "" {
			return missing("column")
		}
		r.store.RenameColumn(r.Resolve(st.Column), st.Title)

	case OpEditCard:
		if st.Card == "" {
			return missing("card")
		}
		r.store.EditCardContent(r.Resolve(st.Card), st.Content)

	case OpDeleteColumn:
		if st.Column == "" {
			return missing("column")
		}
		r.store.DeleteColumn(r.Resolve(st.Column))

	case OpDeleteCard:
		if st.Card == "" {
			return missing("card")
		}
		r.store.DeleteCard(r.Resolve(st.Card))

	case OpMoveColumn:
		if st.Column == "" || st.Target == "" {
			return missing("column and target")
		}
		r.store.MoveColumn(r.Resolve(st.Column), r.Resolve(st.Target))

	case OpMoveCard:
		if st.Card == "" || st.Target == "" {
			return missing("card and target")
		}
		r.store.MoveCard(r.Resolve(st.Card), r.Resolve(st.Target), st.OverIsColumn)

	case OpDragStart:
		active, err := r.subject(st)
		if err != nil {
			return err
		}
		return r.drag.DragStart(active)

	case OpDragOver, OpDragEnd:
		over, err := r.target(st)
		if err != nil {
			return err
		}
		activeID := r.activeID(st)
		if st.Op == OpDragOver {
			r.drag.DragOver(activeID, over)
		} else {
			r.drag.DragEnd(activeID, over)
		}

	case OpDragCancel:
		r.drag.DragCancel()

	case OpLock, OpUnlock:
		subject, err := r.subject(st)
		if err != nil {
			return err
		}
		if st.Op == OpLock {
			r.drag.Lock(subject.ID)
		} else {
			r.drag.Unlock(subject.ID)
		}

	case OpExpect:
		return r.expect(st)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}

// subject reads the item a step acts on from its card or column field
func (r *Runner) subject(st Step) (drag.Target, error) {
	switch {
	case st.Card != "" && st.Column != "":
		return drag.Target{}, fmt.Errorf("%w: set card or column, not both", ErrInvalidStep)
	case st.Card != "":
		return drag.Target{Kind: types.KindCard, ID: r.Resolve(st.Card)}, nil
	case st.Column != "":
		return drag.Target{Kind: types.KindColumn, ID: r.Resolve(st.Column)}, nil
	default:
		return drag.Target{}, missing("card or column")
	}
}

// target reads the over target of a drag step. An empty target means the
// pointer is over nothing.
func (r *Runner) target(st Step) (drag.Target, error) {
	kind, err := types.ParseKind(st.Kind)
	if err != nil {
		return drag.Target{}, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	if st.Target == "" {
		return drag.Target{}, nil
	}
	return drag.Target{Kind: kind, ID: r.Resolve(st.Target)}, nil
}

// activeID is the step's explicit card or column, else the session's active item
func (r *Runner) activeID(st Step) types.ID {
	if subject, err := r.subject(st); err == nil {
		return subject.ID
	}
	if active, ok := r.drag.Active(); ok {
		return active.ID
	}
	return ""
}

func (r *Runner) alias(name string, id types.ID) {
	if name != "" {
		r.aliases[name] = id
	}
}

// expect compares the rendered board against the step's expectations
func (r *Runner) expect(st Step) error {
	view := r.drag.View()
	var failures []string

	if st.State != "" && st.State != r.drag.State().String() {
		failures = append(failures, fmt.Sprintf("state: got %s, want %s", r.drag.State(), st.State))
	}

	if st.Columns != nil {
		got := make([]string, 0, view.ColumnCount())
		for _, col := range view.Columns() {
			got = append(got, r.Name(col.ID))
		}
		if want := r.names(st.Columns); !slices.Equal(got, want) {
			failures = append(failures, fmt.Sprintf("columns: got [%s], want [%s]",
				strings.Join(got, " "), strings.Join(want, " ")))
		}
	}

	columns := make([]string, 0, len(st.Cards))
	for column := range st.Cards {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	for _, column := range columns {
		got := []string{}
		for _, card := range view.CardsIn(r.Resolve(column)) {
			got = append(got, r.Name(card.ID))
		}
		if want := r.names(st.Cards[column]); !slices.Equal(got, want) {
			failures = append(failures, fmt.Sprintf("cards in %s: got [%s], want [%s]",
				column, strings.Join(got, " "), strings.Join(want, " ")))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %s", ErrExpectationFailed, strings.Join(failures, "; "))
	}
	return nil
}

// names normalises expected entries, which may be aliases or literal ids
func (r *Runner) names(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, r.Name(r.Resolve(e)))
	}
	return out
}

func missing(field string) error {
	return fmt.Errorf("%w: %s required", ErrInvalidStep, field)
}
