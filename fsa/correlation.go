package fsa

import (
	"maps"

	"github.com/google/uuid"
)

// CorrelationCreatorEnhancer stamps a fresh correlation id into meta unless the extra already carries one.
func CorrelationCreatorEnhancer(next Creator) Creator {
	if next == nil {
		return nil
	}

	return func(payload any, extra Extra) Action {
		if id, ok := extra.Meta[MetaCorrelationID].(string); ok && id != "" {
			return next(payload, extra)
		}

		meta := make(Meta, len(extra.Meta)+1)
		maps.Copy(meta, extra.Meta)
		meta[MetaCorrelationID] = uuid.NewString()

		return next(payload, Extra{Error: extra.Error, Meta: meta})
	}
}
