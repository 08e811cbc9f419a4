package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	model "workbase.com/workbase/internal/models"
)

func TestDirectory(t *testing.T) {
	joined := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	data, err := Directory([]model.Employee{
		{Name: "Ada Park", Email: "ada@example.com", Title: "Engineer", Department: "Platform", CreatedAt: joined},
		{Name: "Sam Reyes", Email: "sam@example.com", Title: "Recruiter", Department: "People", CreatedAt: joined},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DirectorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Title", "Department", "Joined"}, rows[0])
	assert.Equal(t, []string{"Ada Park", "ada@example.com", "Engineer", "Platform", "2025-01-06"}, rows[1])
	assert.Equal(t, "Sam Reyes", rows[2][0])
}

func TestDirectoryEmpty(t *testing.T) {
	data, err := Directory(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DirectorySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
