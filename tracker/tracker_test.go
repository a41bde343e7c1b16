package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isoforge/isoforge/types"
)

const issuesJSON = `[
  {"iid": 42, "title": "Fix UEFI boot entry", "labels": ["bug"], "web_url": "https://tracker.example.org/issues/42"},
  {"iid": 57, "title": "Update firmware bundle", "labels": ["enhancement"], "web_url": "https://tracker.example.org/issues/57"}
]`

func TestParseIssues(t *testing.T) {
	issues, err := ParseIssues([]byte(issuesJSON))

	assert.Nil(t, err)
	assert.Len(t, issues, 2)
	assert.Equal(t, 42, issues[0].IID)
	assert.Equal(t, "Fix UEFI boot entry", issues[0].Title)
	assert.Equal(t, []string{"enhancement"}, issues[1].Labels)
}

func TestParseIssuesEmptyList(t *testing.T) {
	issues, err := ParseIssues([]byte("[]"))

	assert.Nil(t, err)
	assert.Len(t, issues, 0)
}

func TestParseIssuesGarbage(t *testing.T) {
	_, err := ParseIssues([]byte("{not json"))

	assert.NotNil(t, err)
}

func TestRenderChangelog(t *testing.T) {
	issues, _ := ParseIssues([]byte(issuesJSON))

	got := RenderChangelog("1.2.0", issues)

	want := "## 1.2.0\n\n" +
		"- Fix UEFI boot entry ([#42](https://tracker.example.org/issues/42))\n" +
		"- Update firmware bundle ([#57](https://tracker.example.org/issues/57))\n"

	assert.Equal(t, want, got)
}

func TestRenderChangelogWithoutIssues(t *testing.T) {
	got := RenderChangelog("1.2.0", nil)

	assert.Equal(t, "## 1.2.0\n\nNo tracked changes.\n", got)
}

func TestNewClientNeedsProject(t *testing.T) {
	_, err := NewClient(types.TrackerConfig{Command: "glab"})

	assert.NotNil(t, err)
}
