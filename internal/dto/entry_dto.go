package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
)

// EntryRequest is the body of POST /entries and PUT /entries/:id.
// Pointer fields tell a missing value apart from a zero value.
type EntryRequest struct {
	Date             *models.Date `json:"date" validate:"required"`
	SleepHours       *float64     `json:"sleep_hours" validate:"required,gte=0,lte=24"`
	WorkoutIntensity *string      `json:"workout_intensity" validate:"required,notblank,max=50"`
	SupplementIntake *string      `json:"supplement_intake" validate:"omitempty,max=500"`
	ScreenTime       *float64     `json:"screen_time" validate:"required,gte=0,lte=24"`
	StressLevel      *int         `json:"stress_level" validate:"required,gte=1,lte=10"`
}

// Apply copies the request onto e. Callers validate first.
func (r *EntryRequest) Apply(e *models.Entry) {
	e.Date = *r.Date
	e.SleepHours = *r.SleepHours
	e.WorkoutIntensity = *r.WorkoutIntensity
	e.SupplementIntake = r.SupplementIntake
	e.ScreenTime = *r.ScreenTime
	e.StressLevel = *r.StressLevel
}

type PredictionResponse struct {
	ID             uint      `json:"id"`
	Prediction     float64   `json:"prediction"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

type EntryResponse struct {
	ID               uint                `json:"id"`
	Date             models.Date         `json:"date"`
	SleepHours       float64             `json:"sleep_hours"`
	WorkoutIntensity string              `json:"workout_intensity"`
	SupplementIntake *string             `json:"supplement_intake"`
	ScreenTime       float64             `json:"screen_time"`
	StressLevel      int                 `json:"stress_level"`
	CreatedAt        time.Time           `json:"created_at"`
	Prediction       *PredictionResponse `json:"prediction,omitempty"`
}

func NewEntryResponse(e *models.Entry) EntryResponse {
	resp := EntryResponse{
		ID:               e.ID,
		Date:             e.Date,
		SleepHours:       e.SleepHours,
		WorkoutIntensity: e.WorkoutIntensity,
		SupplementIntake: e.SupplementIntake,
		ScreenTime:       e.ScreenTime,
		StressLevel:      e.StressLevel,
		CreatedAt:        e.CreatedAt,
	}
	if p := e.Prediction; p != nil {
		resp.Prediction = &PredictionResponse{
			ID:             p.ID,
			Prediction:     p.Prediction,
			Recommendation: p.Recommendation,
			CreatedAt:      p.CreatedAt,
		}
	}
	return resp
}

func NewEntryList(entries []models.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = NewEntryResponse(&entries[i])
	}
	return out
}
