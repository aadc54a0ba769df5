package dto

// PredictRequest mirrors the feature payload the remote model service receives.
// stress_level and date are accepted and ignored by the model.
type PredictRequest struct {
	SleepHours       *float64 `json:"sleep_hours" validate:"required,gte=0,lte=24"`
	WorkoutIntensity *string  `json:"workout_intensity" validate:"required,notblank,max=50"`
	SupplementIntake *string  `json:"supplement_intake" validate:"omitempty,max=500"`
	ScreenTime       *float64 `json:"screen_time" validate:"required,gte=0,lte=24"`
	StressLevel      *int     `json:"stress_level,omitempty" validate:"omitempty,gte=1,lte=10"`
	Date             *string  `json:"date,omitempty"`
}

type PredictResponse struct {
	Prediction     float64        `json:"prediction"`
	Recommendation string         `json:"recommendation"`
	InputReceived  PredictRequest `json:"input_received"`
}
