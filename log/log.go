package log

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/astaxie/beego/logs"
)

const funcCallDepth = 4

var (
	moduleMu  sync.RWMutex
	mapModule = make(map[string]struct{})
)

type logConfig struct {
	Filename string `json:"filename"`
	Level    int    `json:"level"`
	Rotate   bool   `json:"rotate,omitempty"`
	Daily    bool   `json:"daily,omitempty"`
	MaxDays  int64  `json:"maxdays,omitempty"`
}

// InitLogger routes all logging to dir/debug.log at the given level and
// enables module filtered output for modules.
func InitLogger(dir, strLevel string, modules []string) error {
	config, err := json.Marshal(logConfig{
		Filename: path.Join(dir, "debug.log"),
		Level:    GetLevel(strLevel),
		Rotate:   true,
		Daily:    true,
		MaxDays:  7,
	})
	if err != nil {
		return err
	}
	if err := Init(string(config)); err != nil {
		return err
	}
	SetModules(modules)
	return nil
}

// Init installs a file adapter configured by the beego JSON config,
// replacing any file adapter installed earlier.
func Init(config string) error {
	// not found is fine
	_ = logs.GetBeeLogger().DelLogger(logs.AdapterFile)
	logs.EnableFuncCallDepth(true)
	logs.SetLogFuncCallDepth(funcCallDepth)
	if err := logs.SetLogger(logs.AdapterFile, config); err != nil {
		return fmt.Errorf("init file logger: %v", err)
	}
	return nil
}

// SetModules replaces the set of modules whose Print output is emitted.
func SetModules(modules []string) {
	m := make(map[string]struct{}, len(modules))
	for _, item := range modules {
		m[strings.ToLower(item)] = struct{}{}
	}
	moduleMu.Lock()
	mapModule = m
	moduleMu.Unlock()
}

func IsIncludeModule(module string) bool {
	moduleMu.RLock()
	_, ok := mapModule[strings.ToLower(module)]
	moduleMu.RUnlock()
	return ok
}

// Print logs at the named level when module is enabled.
func Print(module string, level string, format string, reason ...interface{}) {
	if !IsIncludeModule(module) {
		return
	}
	switch GetLevel(level) {
	case logs.LevelEmergency:
		logs.Emergency(format, reason...)
	case logs.LevelAlert:
		logs.Alert(format, reason...)
	case logs.LevelCritical:
		logs.Critical(format, reason...)
	case logs.LevelError:
		logs.Error(format, reason...)
	case logs.LevelWarn:
		logs.Warn(format, reason...)
	case logs.LevelNotice:
		logs.Notice(format, reason...)
	case logs.LevelInfo:
		logs.Info(format, reason...)
	default:
		logs.Debug(format, reason...)
	}
}

func Emergency(format string, reason ...interface{}) {
	logs.Emergency(format, reason...)
}

func Alert(format string, reason ...interface{}) {
	logs.Alert(format, reason...)
}

func Critical(format string, reason ...interface{}) {
	logs.Critical(format, reason...)
}

func Error(format string, reason ...interface{}) {
	logs.Error(format, reason...)
}

func Warn(format string, reason ...interface{}) {
	logs.Warn(format, reason...)
}

func Notice(format string, reason ...interface{}) {
	logs.Notice(format, reason...)
}

func Info(format string, reason ...interface{}) {
	logs.Info(format, reason...)
}

func Debug(format string, reason ...interface{}) {
	logs.Debug(format, reason...)
}

func Trace(format string, reason ...interface{}) {
	logs.Trace(format, reason...)
}
