package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/tickseq/internal/ctxlog"
	"github.com/vk/tickseq/internal/registry"
	"github.com/vk/tickseq/sequencer"
)

// step is the payload of one sequencer node.
type step struct {
	// id is the "kind.name" identifier used in logs and errors.
	id     string
	kind   string
	action registry.Action
}

// buildSequencer turns the script into a sequencer holding one node per
// action. All actions are inserted in a single batch, so a script is either
// loaded whole or not at all.
func (a *App) buildSequencer(ctx context.Context) (*sequencer.Sequencer[step], error) {
	logger := ctxlog.FromContext(ctx)

	ordered, position, err := a.model.Ordered()
	if err != nil {
		return nil, err
	}

	entries := make([]sequencer.Entry[step], len(ordered))
	for i, act := range ordered {
		def, ok := a.registry.Lookup(act.Kind)
		if !ok {
			return nil, fmt.Errorf("action '%s' in %s: unknown kind '%s' (known kinds: %s)",
				act.Name, act.Source, act.Kind, strings.Join(a.registry.Kinds(), ", "))
		}

		input := def.NewInput()
		if err := a.converter.DecodeArguments(ctx, input, act.Arguments); err != nil {
			return nil, fmt.Errorf("action '%s' in %s: %w", act.Name, act.Source, err)
		}
		action, err := def.New(registry.Env{Name: act.Name, Out: a.outW}, input)
		if err != nil {
			return nil, fmt.Errorf("action '%s' in %s: %w", act.Name, act.Source, err)
		}

		parents := make([]sequencer.Ref, 0, len(act.DependsOn))
		for _, dep := range act.DependsOn {
			parents = append(parents, sequencer.IndexRef(position[dep]))
		}
		entries[i] = sequencer.Entry[step]{
			Payload: step{id: act.ID(), kind: act.Kind, action: action},
			Parents: parents,
		}
	}

	seq := sequencer.New[step](sequencer.WithLogger(logger), sequencer.WithCapacity(len(entries)))
	if len(entries) == 0 {
		return seq, nil
	}
	if _, err := seq.InsertGraph(entries); err != nil {
		return nil, err
	}
	logger.Debug("Run graph built.", "nodes", seq.NodeCount(), "queued", seq.QueuedCount())
	return seq, nil
}
