package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("crew@example.com"))
	assert.NoError(t, Email("first.last+tag@sub.example.co"))

	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email(strings.Repeat("a", 250)+"@example.com"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("longenough"))
	assert.Error(t, Password("short"))
	assert.Error(t, Password(strings.Repeat("x", 129)))
}

func TestProjectName(t *testing.T) {
	assert.NoError(t, ProjectName("Harbor Tower"))
	assert.Error(t, ProjectName(""))
	assert.Error(t, ProjectName("   "))
	assert.Error(t, ProjectName(strings.Repeat("n", 256)))
}

func TestBlueprintName(t *testing.T) {
	assert.NoError(t, BlueprintName("ground-floor v2.pdf"))

	assert.Error(t, BlueprintName(""))
	assert.Error(t, BlueprintName("../escape.pdf"))
	assert.Error(t, BlueprintName("dir\\file.pdf"))
	assert.Error(t, BlueprintName("bad\x00name"))
	assert.Error(t, BlueprintName(strings.Repeat("n", 256)))
}

func TestSanitizeContentType(t *testing.T) {
	got, err := SanitizeContentType("application/pdf; charset=binary")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", got)

	got, err = SanitizeContentType("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = SanitizeContentType("not a media type")
	assert.Error(t, err)
}

func TestFileSize(t *testing.T) {
	assert.NoError(t, FileSize(0))
	assert.NoError(t, FileSize(500*1024*1024))

	assert.Error(t, FileSize(-1))
	assert.Error(t, FileSize(500*1024*1024+1))
}

func TestBudget(t *testing.T) {
	assert.NoError(t, Budget(0))
	assert.NoError(t, Budget(125000.50))
	assert.Error(t, Budget(-0.01))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	assert.NoError(t, DateRange(&start, &end))
	assert.NoError(t, DateRange(nil, &end))
	assert.NoError(t, DateRange(&start, nil))
	assert.NoError(t, DateRange(&start, &start))
	assert.Error(t, DateRange(&end, &start))
}
