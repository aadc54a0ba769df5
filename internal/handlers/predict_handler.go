package handlers

import (
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/stressmodel"
	"github.com/gofiber/fiber/v2"
)

// PredictHandler serves the in-process model over the same wire contract the
// remote model service speaks.
type PredictHandler struct {
	model *stressmodel.Model
}

// NewPredictHandler accepts a nil model; requests then get 503.
func NewPredictHandler(model *stressmodel.Model) *PredictHandler {
	return &PredictHandler{model: model}
}

func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if h.model == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Detail: detailModelNotLoaded,
		})
	}

	prediction := h.model.Predict(stressmodel.Input{
		SleepHours:       *req.SleepHours,
		WorkoutIntensity: *req.WorkoutIntensity,
		SupplementIntake: req.SupplementIntake,
		ScreenTime:       *req.ScreenTime,
	})

	return c.JSON(dto.PredictResponse{
		Prediction:     prediction,
		Recommendation: stressmodel.Recommend(prediction),
		InputReceived:  req,
	})
}
