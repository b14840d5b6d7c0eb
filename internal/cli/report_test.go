package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/model"
	"budgetbook/internal/service"
	"budgetbook/internal/store"
)

// seedDataFile writes a populated document and returns its path: alice with
// a June budget of 500, a Food category and a single 200 expense.
func seedDataFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	st, err := store.Open(path, nil)
	require.NoError(t, err)
	svc := service.New(st)

	require.True(t, svc.Users.Create("alice", "Alice A").OK)
	require.True(t, svc.Categories.Create("Food").OK)

	start, err := model.ParseDate("01-06-2024")
	require.NoError(t, err)
	end, err := model.ParseDate("30-06-2024")
	require.NoError(t, err)
	allowance, err := model.ParseAmount("500")
	require.NoError(t, err)
	require.True(t, svc.Budgets.Create(1, "June", start, end, allowance).OK)

	when, err := model.ParseDate("15-06-2024")
	require.NoError(t, err)
	spent, err := model.ParseAmount("200")
	require.NoError(t, err)
	require.True(t, svc.Expenses.Add(1, 1, "Groceries run", when, spent).OK)
	return path
}

func runCommand(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestReport_Text(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	out, err := runCommand(t, "report", "--user", "1", "--config", cfgPath, "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Budget 'June' (01-06-2024 to 30-06-2024)")
	assert.Contains(t, out, "Allowance:   €500")
	assert.Contains(t, out, "Total spent: €200 (40%)")
	assert.Contains(t, out, "Remaining:   €300 (60%)")
	assert.Contains(t, out, "Food")
}

func TestReport_JSON(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	out, err := runCommand(t, "report", "--user", "1", "--config", cfgPath, "--data", dataPath, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	summaries, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, summaries, 1)
	first, ok := summaries[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 200, first["total_spent"])
	assert.EqualValues(t, 300, first["remaining"])
}

func TestReport_SingleBudget(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	out, err := runCommand(t, "report", "--user", "1", "--budget", "1", "--config", cfgPath, "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Budget 'June'")
}

func TestReport_UnknownUserFails(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	out, err := runCommand(t, "report", "--user", "9", "--config", cfgPath, "--data", dataPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "user 9 not found")
}

func TestReport_BudgetOwnershipEnforced(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	// Second user owns no budgets; reaching across users is rejected.
	st, err := store.Open(dataPath, nil)
	require.NoError(t, err)
	svc := service.New(st)
	require.True(t, svc.Users.Create("bob", "Bob B").OK)

	_, err = runCommand(t, "report", "--user", "2", "--budget", "1", "--config", cfgPath, "--data", dataPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestReport_InvalidFormatRejected(t *testing.T) {
	dataPath := seedDataFile(t)
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := runCommand(t, "report", "--user", "1", "--config", cfgPath, "--data", dataPath, "--format", "yaml")
	assert.Error(t, err)
}

func TestReport_MalformedDataFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte("{broken"), 0o644))

	_, err := runCommand(t, "report", "--user", "1", "--config", filepath.Join(dir, "absent.yaml"), "--data", dataPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
