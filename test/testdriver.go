package test

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/godo.v2/glob"

	"github.com/homanp/ohh/handscript"
	"github.com/homanp/ohh/logging"
)

var testDriverLogger = logging.GetZeroLogger("test::testdriver", nil)

type ScriptTestResult struct {
	Filename   string
	GameNumber string
	Passed     bool
	Failures   []error
	Disabled   bool
}

func (s *ScriptTestResult) addError(e error) {
	s.Failures = append(s.Failures, e)
}

// runs hand scripts and captures the results
// and output the results at the end
type TestDriver struct {
	ScriptResult map[string]*ScriptTestResult
	ScriptFiles  []string
}

func NewTestDriver() *TestDriver {
	return &TestDriver{ScriptResult: make(map[string]*ScriptTestResult), ScriptFiles: make([]string, 0)}
}

func (t *TestDriver) RunHandScript(filename string) error {
	fmt.Printf("Running hand script: %s\n", filename)
	result := &ScriptTestResult{Filename: filename, Failures: make([]error, 0)}
	t.ScriptResult[filename] = result
	t.ScriptFiles = append(t.ScriptFiles, filename)

	script, err := handscript.ReadHandScript(filename)
	if err != nil {
		fmt.Printf("Failed to load file: %s, err: %v\n", filename, err)
		result.addError(err)
		return err
	}
	result.GameNumber = script.Hand.GameNumber
	if script.Disabled {
		result.Disabled = true
		return nil
	}

	testScript := TestHandScript{
		script:   script,
		filename: filename,
		result:   result,
	}

	e := testScript.run()
	if e != nil {
		testScript.result.Passed = false
		testScript.result.addError(e)
		return e
	}
	result.Passed = len(result.Failures) == 0
	return nil
}

func (t *TestDriver) ReportResult() bool {
	passed := true
	for _, scriptFile := range t.ScriptFiles {
		result := t.ScriptResult[scriptFile]
		label := result.Filename
		if result.GameNumber != "" {
			label = fmt.Sprintf("%s [game %s]", result.Filename, result.GameNumber)
		}
		if result.Disabled {
			fmt.Printf("Script %s is disabled\n", label)
			continue
		}
		if len(result.Failures) == 0 {
			fmt.Printf("Script %s passed\n", label)
			continue
		}

		passed = false
		fmt.Printf("Script %s failed with %d error(s)\n", label, len(result.Failures))
		for _, e := range result.Failures {
			fmt.Printf("  - %s\n", e.Error())
		}
	}
	return passed
}

// RunHandScriptTests runs the hand scripts found under fileOrDir and exits
// with a non-zero code if any of them fail.
func RunHandScriptTests(fileOrDir string, testName string) {
	err := runHandScriptTests(fileOrDir, testName)
	if err != nil {
		testDriverLogger.Error().Msgf("%v", err)
		os.Exit(1)
	}
}

func runHandScriptTests(fileOrDir string, testName string) error {
	info, err := os.Stat(fileOrDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist", fileOrDir)
	}
	pattern := fileOrDir
	if info.IsDir() {
		pattern = fmt.Sprintf("%s/**/*.yaml", fileOrDir)
	}
	patterns := []string{pattern}
	files, _, err := glob.Glob(patterns)
	if err != nil {
		return errors.Wrapf(err, "Failed to get hand script file(s) from dir: %s", fileOrDir)
	}

	testDriver := NewTestDriver()
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if testName != "" {
			if !strings.Contains(file.Name(), testName) {
				continue
			}
		}
		fmt.Printf("----------------------------------------------\n")
		testDriver.RunHandScript(file.Path)
		fmt.Printf("----------------------------------------------\n")
	}

	passed := testDriver.ReportResult()
	if !passed {
		return fmt.Errorf("One or more scripts failed")
	}
	fmt.Printf("All scripts passed\n")
	return nil
}
