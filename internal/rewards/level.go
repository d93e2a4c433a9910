package rewards

// DefaultThresholds[i] is the minimal XP for level i+1
var DefaultThresholds = []int{
	0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200,
	4000, 5000, 6200, 7600, 9200, 11000, 13000, 15500, 18500, 22000,
}

type LevelInfo struct {
	Level int `json:"level"`
	// XP earned since reaching current level
	XPInLevel int `json:"xp_in_level"`
	// XP between current and next level. At max level equals XPInLevel
	Span       int     `json:"span"`
	Progress   float64 `json:"progress"`
	IsMaxLevel bool    `json:"is_max_level"`
}

func LevelFor(xp int) LevelInfo {
	return LevelInfoFor(xp, DefaultThresholds)
}

// LevelInfoFor computes level against ascending thresholds table
func LevelInfoFor(xp int, thresholds []int) LevelInfo {
	if len(thresholds) == 0 {
		return LevelInfo{Level: 1, IsMaxLevel: true, Progress: 100}
	}
	idx := 0
	for i, t := range thresholds {
		if xp >= t {
			idx = i
		} else {
			break
		}
	}
	info := LevelInfo{
		Level:     idx + 1,
		XPInLevel: max(xp-thresholds[idx], 0),
	}
	if idx == len(thresholds)-1 {
		info.IsMaxLevel = true
		info.Span = info.XPInLevel
		info.Progress = 100
		return info
	}
	info.Span = thresholds[idx+1] - thresholds[idx]
	if info.Span <= 0 {
		return info
	}
	info.Progress = min(float64(info.XPInLevel)/float64(info.Span)*100, 100)
	return info
}
