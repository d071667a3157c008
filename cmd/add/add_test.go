package add_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"fjacquet/finance-tracker/cmd/add"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/apperror"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/container/containertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 7, 9, 0, 0, 0, time.UTC)

func run(t *testing.T, c *container.Container, args ...string) (string, error) {
	t.Helper()
	cmd := add.NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(root.WithContainer(context.Background(), c))
	return out.String(), err
}

func TestAddCommand_Metadata(t *testing.T) {
	assert.Equal(t, "add", add.Cmd.Use)
	assert.Contains(t, add.Cmd.Short, "new transaction")
	assert.NotNil(t, add.Cmd.RunE)

	for flag, short := range map[string]string{"description": "d", "amount": "a", "category": "c", "date": "t"} {
		f := add.Cmd.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, short, f.Shorthand)
	}
}

func TestAddCommand_StoresTransaction(t *testing.T) {
	c := containertest.New(t, container.WithClock(func() time.Time { return today }))

	out, err := run(t, c, "-d", "Weekly groceries", "-a", "42.50", "-c", "Food", "-t", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "ZMW 42.50")
	assert.Contains(t, out, "2024-06-01")

	all := c.GetLedger().ExportAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Weekly groceries", all[0].Description)
}

func TestAddCommand_DefaultsDateToToday(t *testing.T) {
	c := containertest.New(t, container.WithClock(func() time.Time { return today }))

	_, err := run(t, c, "-d", "Coffee", "-a", "3", "-c", "Food")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-07", c.GetLedger().ExportAll()[0].Date)
}

func TestAddCommand_ValidationErrors(t *testing.T) {
	c := containertest.New(t)

	_, err := run(t, c, "-d", "the the rent", "-a", "10.00", "-c", "Bills", "-t", "2024-13-01")

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Duplicate words found", verr.Fields["description"])
	assert.Equal(t, "Invalid date", verr.Fields["date"])
	assert.Empty(t, c.GetLedger().ExportAll())
}

func TestAddCommand_RequiresContainer(t *testing.T) {
	cmd := add.NewCmd()
	cmd.SetArgs([]string{"-d", "x"})
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	assert.ErrorIs(t, err, root.ErrNoContainer)
}
