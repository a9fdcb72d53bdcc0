package services

import (
	"time"

	"github.com/mwestrum/liftlog/internal/models"
)

// WorkoutSummaryReader is the slice of the workout store the analytics
// service needs.
type WorkoutSummaryReader interface {
	SummarizeByTypeSince(fromDate string) ([]models.TypeVolume, error)
}

type AnalyticsService struct {
	workouts WorkoutSummaryReader
}

// VolumeReport carries three index-aligned sequences: RepsData[i] and
// VolumeData[i] describe the workout type at Labels[i].
type VolumeReport struct {
	Labels     []string  `json:"labels"`
	RepsData   []int     `json:"reps_data"`
	VolumeData []float64 `json:"volume_data"`
}

func NewAnalyticsService(workouts WorkoutSummaryReader) *AnalyticsService {
	return &AnalyticsService{workouts: workouts}
}

// TrailingWindowStart is the earliest calendar date (inclusive) of the
// 7-day window ending on now's date in the given location. The window
// follows the configured clock, not UTC.
func TrailingWindowStart(now time.Time, location *time.Location) string {
	current := now.In(location)
	today := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, location)
	return today.AddDate(0, 0, -7).Format(models.DateLayout)
}

// BuildWeeklyReport totals rep count and weighted volume per workout
// type over the trailing window. Types with no rows in the window are
// omitted rather than zero-filled.
func (service *AnalyticsService) BuildWeeklyReport(now time.Time, location *time.Location) (VolumeReport, error) {
	summaries, err := service.workouts.SummarizeByTypeSince(TrailingWindowStart(now, location))
	if err != nil {
		return VolumeReport{}, err
	}
	return BuildVolumeReport(summaries), nil
}

func BuildVolumeReport(summaries []models.TypeVolume) VolumeReport {
	report := VolumeReport{
		Labels:     make([]string, 0, len(summaries)),
		RepsData:   make([]int, 0, len(summaries)),
		VolumeData: make([]float64, 0, len(summaries)),
	}
	for _, summary := range summaries {
		report.Labels = append(report.Labels, summary.Type)
		report.RepsData = append(report.RepsData, summary.TotalReps)
		report.VolumeData = append(report.VolumeData, summary.TotalVolume)
	}
	return report
}
