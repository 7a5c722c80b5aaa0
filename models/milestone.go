package models

// GlobalOrder is a shared milestone flag (gym badge, Top 4 member,
// champion) all players track together. The set of order numbers is
// fixed at seed time and only the flag ever changes.
type GlobalOrder struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber int  `gorm:"uniqueIndex;not null" json:"order_number"`
	IsObtained  bool `gorm:"default:false" json:"is_obtained"`
}

func (GlobalOrder) TableName() string {
	return "global_orders"
}

type LevelCap struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"size:255;not null" json:"name"`
	OrderNumber   int    `gorm:"uniqueIndex;not null" json:"order_number"`
	MaxLevel      int    `gorm:"not null" json:"max_level"`
	AdjustedLevel int    `gorm:"not null" json:"adjusted_level"`
}

func (LevelCap) TableName() string {
	return "level_caps"
}

// LevelCapEntry is the shape of one element of level_caps.json.
// AdjustedLevel comes from the file as-is (display value, usually
// MaxLevel-2); it is never recomputed here.
type LevelCapEntry struct {
	Name          string `json:"name"`
	OrderNumber   int    `json:"order_number"`
	MaxLevel      int    `json:"max_level"`
	AdjustedLevel int    `json:"adjusted_level"`
}
