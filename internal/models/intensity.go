package models

// Intensity bounds
const (
	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5
)

// Intensity labels, from gentlest to harshest
const (
	LabelGentle     = "温和委婉"
	LabelPoliteFirm = "礼貌但坚定"
	LabelDirect     = "直接明了"
	LabelDispleased = "略带不满"
	LabelAnnoyed    = "明显不悦"
	LabelPushback   = "强硬反驳"
	LabelSharp      = "犀利反击"
	LabelFierce     = "激烈对抗"
	LabelRelentless = "凌厉攻势"
	LabelCrushing   = "绝对碾压"
	LabelModerate   = "适中" // fallback for unmapped levels
)

// IntensityOption pairs a level with its label for the client view
type IntensityOption struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

// IntensityLabel returns the descriptive label for an intensity level
func IntensityLabel(level int) string {
	switch level {
	case 1:
		return LabelGentle
	case 2:
		return LabelPoliteFirm
	case 3:
		return LabelDirect
	case 4:
		return LabelDispleased
	case 5:
		return LabelAnnoyed
	case 6:
		return LabelPushback
	case 7:
		return LabelSharp
	case 8:
		return LabelFierce
	case 9:
		return LabelRelentless
	case 10:
		return LabelCrushing
	default:
		return LabelModerate
	}
}

// IsValidIntensity checks the inclusive 1-10 range
func IsValidIntensity(level int) bool {
	return level >= MinIntensity && level <= MaxIntensity
}

// IntensityLevels returns every level with its label in ascending order
func IntensityLevels() []IntensityOption {
	options := make([]IntensityOption, 0, MaxIntensity-MinIntensity+1)
	for level := MinIntensity; level <= MaxIntensity; level++ {
		options = append(options, IntensityOption{Level: level, Label: IntensityLabel(level)})
	}
	return options
}
