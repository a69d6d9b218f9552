package render

import (
	"fmt"
	"time"
)

// TimeAgo 计算相对时间的分桶展示：
// <60s→秒、<1h→分、<1d→时、<7d→天，更久则显示绝对日期
func TimeAgo(ts, now time.Time) string {
	if ts.IsZero() {
		return "ahora"
	}

	seconds := int(now.Sub(ts).Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd", seconds/86400)
	default:
		return ts.Format("02/01/2006")
	}
}
