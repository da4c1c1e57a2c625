package minecraft_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Adirelle/efadmintag/pkg/minecraft"
)

func TestConfigCmdLine(t *testing.T) {
	t.Parallel()
	base := filepath.FromSlash("/srv/minecraft")
	conf := minecraft.Config{
		JavaParameters: []string{"-Xmx2G"},
		ServerJarPath:  "spigot.jar",
		Parameters:     []string{"nogui"},
	}
	conf.ConfigureDefaults()
	conf.JavaHome = ""
	conf.SetBaseDir(base)

	cmdLine := conf.CmdLine()
	expected := []string{"-Xmx2G", "-jar", filepath.Join(base, "spigot.jar"), "nogui"}
	if !reflect.DeepEqual(cmdLine[1:], expected) {
		t.Errorf("expected %v, got %v", expected, cmdLine[1:])
	}
	if conf.StopDelay() != 30*time.Second {
		t.Errorf("unexpected stop delay: %s", conf.StopDelay())
	}
}
