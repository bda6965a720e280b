package booking

import (
	"testing"

	"festivo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSlotFromTime(t *testing.T) {
	morning := models.SlotMorning
	afternoon := models.SlotAfternoon

	tests := []struct {
		input string
		want  *models.Slot
	}{
		{"morning do", &morning},
		{"Brunch party", &morning},
		{"2pm onwards", &afternoon},
		{"after lunch", &afternoon},
		{"early evening", &afternoon},
		{"10am", &morning},
		{"10 am", &morning},
		{"14:30", &afternoon},
		{"9:00", &morning},
		{"around 3pm", &afternoon},
		// Morning is checked first and wins a tie.
		{"morning or afternoon", &morning},
		// A bare number is not a time.
		{"10", nil},
		{"party for 20", nil},
		// Substrings of ordinary words must not register as meridiems.
		{"family fun", nil},
		{"", nil},
		{"   ", nil},
		{"sometime", nil},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := InferSlotFromTime(tc.input)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}
