package models

// DateLayout is the ISO-8601 calendar-date form workouts are stored in.
const DateLayout = "2006-01-02"

type Workout struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	Type   string   `gorm:"not null" json:"type"`
	Date   string   `gorm:"type:date;not null" json:"date"`
	Reps   int      `gorm:"not null" json:"reps"`
	Sets   int      `gorm:"not null" json:"sets"`
	Weight *float64 `json:"weight"`
}

// TypeVolume is one group-by row of the weekly volume summary. An
// unweighted entry contributes a weight of 1 to TotalVolume.
type TypeVolume struct {
	Type        string
	TotalReps   int
	TotalVolume float64
}
