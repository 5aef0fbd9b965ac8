package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augmarket/internal/model"
)

func TestCheckState(t *testing.T) {
	t.Parallel()

	reg := newTestCatalog(t)

	tests := []struct {
		name    string
		owned   []model.OwnedAugmentation
		queued  []model.QueuedAugmentation
		wantErr error
		errText string
	}{
		{name: "empty"},
		{
			name:   "valid",
			owned:  []model.OwnedAugmentation{{Name: testNeuroFlux, Level: 4}, {Name: "BitWire", Level: 1}},
			queued: []model.QueuedAugmentation{{Name: testNeuroFlux}, {Name: "X"}},
		},
		{
			name:    "unknown owned",
			owned:   []model.OwnedAugmentation{{Name: "Neurotrainer IV", Level: 1}},
			wantErr: ErrUnknownTemplate,
		},
		{
			name:    "unknown queued",
			queued:  []model.QueuedAugmentation{{Name: "Neurotrainer IV"}},
			wantErr: ErrUnknownTemplate,
		},
		{
			name:    "zero level",
			owned:   []model.OwnedAugmentation{{Name: "BitWire", Level: 0}},
			errText: "invalid level",
		},
		{
			name:    "leveled non-repeatable",
			owned:   []model.OwnedAugmentation{{Name: "BitWire", Level: 2}},
			errText: "non-repeatable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckState(reg, tt.owned, tt.queued)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
