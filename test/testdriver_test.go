package test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandScripts(t *testing.T) {
	err := runHandScriptTests("scripts", "")
	assert.NoError(t, err)
}

func TestHandScriptsByName(t *testing.T) {
	err := runHandScriptTests("scripts", "walk")
	assert.NoError(t, err)
}

func TestHandScriptsMissingDir(t *testing.T) {
	err := runHandScriptTests("no-such-dir", "")
	assert.Error(t, err)
}

func TestRunHandScriptRecordsGameNumber(t *testing.T) {
	driver := NewTestDriver()
	err := driver.RunHandScript("scripts/walk.yaml")
	assert.NoError(t, err)

	result := driver.ScriptResult["scripts/walk.yaml"]
	assert.Equal(t, "script-walk", result.GameNumber)
	assert.True(t, result.Passed)
	assert.True(t, driver.ReportResult())
}

func TestReportResultFailingScript(t *testing.T) {
	script := `
hand:
  game-number: "script-bad"
  small-blind: 1
  big-blind: 2
  dealer-seat: 1
players:
  - id: 1
    seat: 1
    starting-stack: 10
  - id: 2
    seat: 2
    starting-stack: 10
  - id: 3
    seat: 3
    starting-stack: 10
rounds:
  - id: 1
    street: Preflop
    actions:
      - player: 2
        action: Post SB
        amount: 1
      - player: 3
        action: Post BB
        amount: 2
      - player: 1
        action: Fold
      - player: 2
        action: Fold
pots:
  - number: 0
    amount: 3
    winners: [3]
verify:
  total-committed: 99
`
	fileName := filepath.Join(t.TempDir(), "bad.yaml")
	err := ioutil.WriteFile(fileName, []byte(script), 0644)
	assert.NoError(t, err)

	driver := NewTestDriver()
	err = driver.RunHandScript(fileName)
	assert.NoError(t, err)

	result := driver.ScriptResult[fileName]
	assert.Equal(t, "script-bad", result.GameNumber)
	assert.False(t, result.Passed)
	assert.NotEmpty(t, result.Failures)
	assert.False(t, driver.ReportResult())
}
