package log

import (
	"strings"

	"github.com/astaxie/beego/logs"
)

const defaultLogLevel = logs.LevelDebug

var levelMap = map[string]int{
	"emergency":     logs.LevelEmergency,
	"alert":         logs.LevelAlert,
	"critical":      logs.LevelCritical,
	"error":         logs.LevelError,
	"warn":          logs.LevelWarn,
	"warning":       logs.LevelWarning,
	"notice":        logs.LevelNotice,
	"info":          logs.LevelInfo,
	"informational": logs.LevelInformational,
	"debug":         logs.LevelDebug,
	"trace":         logs.LevelTrace,
}

// GetLevel maps a level name to its beego level, case-insensitively.
// Unknown names map to debug.
func GetLevel(level string) int {
	ele, ok := levelMap[strings.ToLower(level)]
	if !ok {
		return defaultLogLevel
	}
	return ele
}
