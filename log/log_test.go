package log

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astaxie/beego/logs"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	levels := []string{"emergency", "Alert", "critical", "error", "warn", "info", "debug", "Notice", "trace"}
	for _, levelStr := range levels {
		num := GetLevel(levelStr)
		if num < logs.LevelEmergency || num > logs.LevelDebug {
			t.Fatalf("get log level failed: %d\n", num)
		}
	}

	assert.Equal(t, logs.LevelDebug, GetLevel("default"))
	assert.Equal(t, logs.LevelError, GetLevel("ERROR"))
}

func TestModuleFilter(t *testing.T) {
	SetModules([]string{"pow", "Chain"})
	assert.True(t, IsIncludeModule("pow"))
	assert.True(t, IsIncludeModule("chain"))
	assert.False(t, IsIncludeModule("conf"))

	SetModules(nil)
	assert.False(t, IsIncludeModule("pow"))
}

func TestPrintWritesOnlyEnabledModules(t *testing.T) {
	dir, err := ioutil.TempDir("", "logtest")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.log")
	configuration, err := json.Marshal(struct {
		FileName string `json:"filename"`
		Level    int    `json:"level"`
	}{
		FileName: fileName,
		Level:    GetLevel("debug"),
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, Init(string(configuration)))
	defer logs.GetBeeLogger().DelLogger(logs.AdapterFile)

	SetModules([]string{"pow"})
	defer SetModules(nil)
	Print("pow", "info", "module[%s]: %s", "pow", "enabled")
	Print("conf", "info", "module[%s]: %s", "conf", "disabled")
	logs.GetBeeLogger().Flush()

	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		t.Fatalf("read log file failed: %s\n", err)
	}
	assert.True(t, strings.Contains(string(content), "module[pow]: enabled"))
	assert.False(t, strings.Contains(string(content), "module[conf]: disabled"))
}

func TestLogClosure(t *testing.T) {
	calls := 0
	c := InitLogClosure(func() string {
		calls++
		return "built"
	})
	assert.Equal(t, 0, calls)
	assert.Equal(t, "built", c.String())
	assert.Equal(t, 1, calls)
}
