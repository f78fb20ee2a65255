package store

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"energy-dashboard-backend/internal/model"
	"energy-dashboard-backend/internal/parse"
)

// usageHistoryDays is how many days of usage history get synthesized for a
// newly added device.
const usageHistoryDays = 7

// maxHoursPerDay bounds a usage log; a day only has 24 hours.
const maxHoursPerDay = 24

// ValidateDeviceForm checks the device-add contract. It returns nil when the
// form is acceptable, otherwise a map of field names to messages.
func ValidateDeviceForm(form model.DeviceForm) model.FieldErrors {
	errs := model.FieldErrors{}

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = "name is required"
	}
	if form.WattsPerHour <= 0 {
		errs["watts_per_hour"] = "wattage must be greater than 0"
	}
	if form.AverageHoursPerDay < 0 || form.AverageHoursPerDay > maxHoursPerDay {
		errs["average_hours_per_day"] = "hours must be between 0 and 24"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// BuildDevice assembles a new device from form input: a generated id and a
// synthesized seven-day usage history centered on the supplied daily average.
// The form must already have passed ValidateDeviceForm.
func BuildDevice(form model.DeviceForm, today time.Time) model.Device {
	return model.Device{
		ID:           parse.Slug(form.Name) + "_" + uuid.NewString()[:8],
		Name:         form.Name,
		Icon:         form.Icon,
		WattsPerHour: form.WattsPerHour,
		UsageLogs:    synthesizeLogs(form.AverageHoursPerDay, today),
	}
}

// synthesizeLogs walks backward from today one day at a time, perturbing the
// daily average by up to ±30% and clamping the result to what a calendar day
// can hold. Hours are kept at one decimal place.
func synthesizeLogs(avgHoursPerDay float64, today time.Time) []model.UsageLog {
	logs := make([]model.UsageLog, 0, usageHistoryDays)
	for i := 0; i < usageHistoryDays; i++ {
		variance := rand.Float64()*0.6 - 0.3
		hours := avgHoursPerDay * (1 + variance)
		if hours < 0 {
			hours = 0
		}
		if hours > maxHoursPerDay {
			hours = maxHoursPerDay
		}
		logs = append(logs, model.UsageLog{
			Seq:     i,
			Date:    today.AddDate(0, 0, -i).Format("2006-01-02"),
			HoursOn: math.Round(hours*10) / 10,
		})
	}
	return logs
}
