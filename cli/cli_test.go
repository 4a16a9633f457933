package cli

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"penguin/nsmbw"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--settings", settingsPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T, dir string) (string, *nsmbw.SaveFile) {
	t.Helper()
	s := nsmbw.Blank()
	s.Header.Region = nsmbw.KOR
	s.Header.ExtraModesUnlockedWorlds = 0x0007
	s.Header.FreeModePlayCount[0][2] = 1500
	s.Slots[1].CompletionFlags = nsmbw.FinalBossBeaten | nsmbw.GameCompleted
	s.Slots[1].CurrentWorld = 2
	s.Slots[1].Score = 1234567
	s.Slots[1].Players[0].Lives = 42
	s.Slots[1].Players[0].Powerup = nsmbw.PowerupPropellerMushroom
	s.Slots[1].StartingMushroomHouse[3] = nsmbw.HouseOneUpRescue
	s.Slots[1].AmbushEnemies[4][1].WalkDirection = nsmbw.FirstTimeValue
	s.Slots[1].StageCompletion[0][0] = nsmbw.StarCoin1 | nsmbw.StarCoin2 | nsmbw.GoalNormal
	s.Slots[1].StageCompletion[7][37] = nsmbw.StarCoin3 | nsmbw.GoalSecret
	s.Slots[1].DeathCount[3][23] = 9
	s.Slots[1].HintMovieBought[5] = true
	s.Slots[2].CompletionFlags = nsmbw.SaveEmpty

	path := filepath.Join(dir, "save.sav")
	require.NoError(t, nsmbw.WriteFile(path, s))
	return path, s
}

func TestShow(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	path, _ := writeSample(t, dir)

	out, err := run(t, settingsPath, "show", path)
	require.NoError(t, err)
	for _, want := range []string{
		"KOR (Korea)",
		"1 2 3",
		"1,500",
		"Slot 1 (save slot 2)",
		"final boss beaten, game completed",
		"world 3, subworld 0, node 0",
		"1,234,567",
		"42 lives, 0 coins, PropellerMushroom",
		"Star coins",
		"4-Castle 1 (9)",
		"1/64",
		"Slot 5 (quick save of slot 3)",
	} {
		assert.Contains(t, out, want)
	}

	// show creates the settings file when it is missing
	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", gjson.GetBytes(data, "theme").String())
}

func TestShowSlot(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeSample(t, dir)

	out, err := run(t, filepath.Join(dir, "settings.json"), "show", path, "--slot", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Slot 2 (save slot 3)")
	assert.Contains(t, out, "empty")
	assert.NotContains(t, out, "Header")
	assert.NotContains(t, out, "Slot 1")

	_, err = run(t, filepath.Join(dir, "settings.json"), "show", path, "--slot", "6")
	assert.Error(t, err)
}

func TestShowBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.sav")
	require.NoError(t, os.WriteFile(path, []byte("not a save"), 0644))

	_, err := run(t, filepath.Join(dir, "settings.json"), "show", path)
	assert.ErrorIs(t, err, nsmbw.ErrFormat)
}

func TestDumpAndBuild(t *testing.T) {
	for _, format := range []string{"yaml", "cbor"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			settingsPath := filepath.Join(dir, "settings.json")
			path, want := writeSample(t, dir)

			export := filepath.Join(dir, "save."+format)
			_, err := run(t, settingsPath, "dump", path, "-o", export)
			require.NoError(t, err)

			rebuilt := filepath.Join(dir, "rebuilt.sav")
			_, err = run(t, settingsPath, "build", export, "-o", rebuilt)
			require.NoError(t, err)

			got, err := nsmbw.ReadFile(rebuilt)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("rebuilt save differs (-want +got):\n%s", diff)
			}

			orig, err := os.ReadFile(path)
			require.NoError(t, err)
			data, err := os.ReadFile(rebuilt)
			require.NoError(t, err)
			assert.Equal(t, orig, data)
		})
	}
}

func TestDumpYAMLToStdout(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeSample(t, dir)

	out, err := run(t, filepath.Join(dir, "settings.json"), "dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "region: KOR")
	assert.Contains(t, out, "powerup: PropellerMushroom")
	assert.Contains(t, out, "score: 1234567")

	_, err = run(t, filepath.Join(dir, "settings.json"), "dump", path, "--format", "json")
	assert.Error(t, err)
}

func TestBuildPartialYAML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(in, []byte("header:\n  region: PAL\n"), 0644))

	out := filepath.Join(dir, "out.sav")
	_, err := run(t, filepath.Join(dir, "settings.json"), "build", in, "-o", out)
	require.NoError(t, err)

	s, err := nsmbw.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, nsmbw.PAL, s.Header.Region)
	assert.Equal(t, nsmbw.Luigi, s.Slots[0].Players[1].Character)
}

func TestBuildRejectsUnknownEnum(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(in, []byte("header:\n  region: USA\n"), 0644))

	_, err := run(t, filepath.Join(dir, "settings.json"), "build", in, "-o", filepath.Join(dir, "out.sav"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out.sav"))
}

func TestBlank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.sav")

	_, err := run(t, filepath.Join(dir, "settings.json"), "blank", "-o", path, "--region", "J")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, nsmbw.FileSize)
	assert.Equal(t, "SMNJ", string(data[:4]))

	_, err = run(t, filepath.Join(dir, "settings.json"), "blank", "-o", path, "--region", "USA")
	assert.Error(t, err)
}

func TestVerifyAndFix(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	path, _ := writeSample(t, dir)

	out, err := run(t, settingsPath, "verify", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "MISMATCH")

	// corrupt the checksum of slot 4
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	off := nsmbw.HeaderSize + 4*nsmbw.SlotSize + nsmbw.SlotSize - 4
	binary.BigEndian.PutUint32(data[off:], 0xDEADBEEF)
	require.NoError(t, os.WriteFile(path, data, 0644))

	out, err = run(t, settingsPath, "verify", path)
	assert.ErrorIs(t, err, errChecksumMismatch)
	assert.Contains(t, out, "MISMATCH  stored deadbeef")

	fixed := filepath.Join(dir, "fixed.sav")
	_, err = run(t, settingsPath, "fix", path, "-o", fixed)
	require.NoError(t, err)
	_, err = run(t, settingsPath, "verify", fixed)
	assert.NoError(t, err)

	_, err = run(t, settingsPath, "fix", path)
	require.NoError(t, err)
	_, err = run(t, settingsPath, "verify", path)
	assert.NoError(t, err)
}

func TestTheme(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")

	out, err := run(t, settingsPath, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = run(t, settingsPath, "theme", "LIGHT")
	require.NoError(t, err)
	out, err = run(t, settingsPath, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = run(t, settingsPath, "theme", "sepia")
	assert.Error(t, err)
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "slot", 3)
	assert.Equal(t, int64(3), gjson.Get(buf.String(), "slot").Int())
	assert.Equal(t, "shown", gjson.Get(buf.String(), "msg").String())
}
