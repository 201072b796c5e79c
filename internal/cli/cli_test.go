package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/devmenu/internal/config"
)

func init() {
	color.NoColor = true
}

// run executes the command line against sqlite storage in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New(nil)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--storage", "sqlite",
		"--storage-path", dir,
		"--log-file", filepath.Join(dir, "devmenu.log"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSetThenGetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "set", "display:contrast", "40")
	require.NoError(t, err)
	assert.Equal(t, "display:contrast\t040\n", out)

	out, err = run(t, dir, "get", "display:contrast")
	require.NoError(t, err)
	assert.Equal(t, "display:contrast\t040\n", out)
}

func TestSetClampsToRange(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "set", "modbus:address", "999")
	require.NoError(t, err)
	assert.Equal(t, "modbus:address\t247\n", out)
}

func TestSetRejectsUnstoredSetting(t *testing.T) {
	_, err := run(t, t.TempDir(), "set", "clock:time", "10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not stored")
}

func TestSetRejectsReadOnlySetting(t *testing.T) {
	_, err := run(t, t.TempDir(), "set", "counters:ch0", "123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestSetRejectsUnknownSetting(t *testing.T) {
	_, err := run(t, t.TempDir(), "set", "zzzz-nothing", "1")
	require.ErrorIs(t, err, errNoMatch)
}

func TestGetPrintsDefaultsOnFreshStorage(t *testing.T) {
	out, err := run(t, t.TempDir(), "get", "modbus:id")
	require.NoError(t, err)
	assert.Equal(t, "modbus:id\t00A5\n", out)
}

func TestTreeListsEverySetting(t *testing.T) {
	out, err := run(t, t.TempDir(), "tree")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "ITEM")
	assert.Contains(t, out, "display:contrast")
	assert.Contains(t, out, "0x10")
	assert.Contains(t, out, "modbus:baud")
	assert.Contains(t, out, "  Contrast")
}

func TestSlotsShowsStoredBytes(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "set", "display:contrast", "40")
	require.NoError(t, err)

	out, err := run(t, dir, "slots")
	require.NoError(t, err)
	var contrast string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "display:contrast") {
			contrast = line
		}
	}
	require.NotEmpty(t, contrast)
	assert.Contains(t, contrast, "0x10")
	assert.Contains(t, contrast, "28")
	assert.Contains(t, out, "unset")
}

func TestVersionShort(t *testing.T) {
	Version = "1.2.3"
	t.Cleanup(func() { Version = "dev" })

	var out bytes.Buffer
	cmd := New(nil)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}

func TestStartHookSeesResolvedConfig(t *testing.T) {
	dir := t.TempDir()
	var seen config.Config
	cmd := New(func(cfg config.Config) { seen = cfg })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"--storage", "diskv",
		"--storage-path", dir,
		"--log-file", filepath.Join(dir, "devmenu.log"),
		"--rows", "4",
		"tree",
	})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 4, seen.App.Rows)
	assert.Equal(t, dir, seen.App.StoragePath)
}

func TestInvalidConfigFails(t *testing.T) {
	_, err := run(t, t.TempDir(), "--width", "2", "tree")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}
