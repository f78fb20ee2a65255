package model

// UsageLog records how many hours a device ran on a single calendar day.
type UsageLog struct {
	ID       int64   `gorm:"autoIncrement;primaryKey" json:"-" yaml:"-"`
	DeviceID string  `gorm:"index;size:128;not null" json:"-" yaml:"-"`
	Seq      int     `gorm:"not null" json:"-" yaml:"-"` // 0 = most recent day
	Date     string  `gorm:"size:10;not null" json:"date" yaml:"date"`
	HoursOn  float64 `gorm:"not null" json:"hours_on" yaml:"hours_on"`
}

// Device represents a household appliance being tracked by the dashboard.
type Device struct {
	ID           string  `gorm:"primaryKey;size:128" json:"id" yaml:"id"`
	Name         string  `gorm:"size:128;not null" json:"name" yaml:"name"`
	Icon         string  `gorm:"size:64" json:"icon" yaml:"icon"`
	WattsPerHour float64 `gorm:"not null" json:"watts_per_hour" yaml:"watts_per_hour"`

	// Associations. Ordered most-recent-first by Seq.
	UsageLogs []UsageLog `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"usage_logs" yaml:"usage_logs"`
}

// AverageHoursPerDay is the mean hours_on across the device's usage logs.
// A device with no logs averages to zero rather than dividing by zero.
func (d Device) AverageHoursPerDay() float64 {
	if len(d.UsageLogs) == 0 {
		return 0
	}
	var total float64
	for _, l := range d.UsageLogs {
		total += l.HoursOn
	}
	return total / float64(len(d.UsageLogs))
}

// DeviceForm carries the user-supplied fields for creating a device.
type DeviceForm struct {
	Name               string  `json:"name"`
	Icon               string  `json:"icon"`
	WattsPerHour       float64 `json:"watts_per_hour"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// DevicePatch is a partial device update. Nil fields are left unchanged;
// id and usage logs are not editable through this path.
type DevicePatch struct {
	Name         *string  `json:"name"`
	Icon         *string  `json:"icon"`
	WattsPerHour *float64 `json:"watts_per_hour"`
}
