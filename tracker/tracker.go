// Package tracker reads closed issues from the project issue tracker
// through its CLI's JSON output and renders them as a changelog
// section. The tracker CLI is an opaque binary, its JSON API the only
// contract.
package tracker

import (
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Issue is the subset of the tracker's issue JSON used here.
type Issue struct {
	IID    int      `json:"iid"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	WebURL string   `json:"web_url"`
}

// Client talks to the tracker CLI.
type Client struct {
	config types.TrackerConfig
}

// NewClient returns a Client for config.
func NewClient(config types.TrackerConfig) (*Client, error) {
	if config.Project == "" {
		return nil, errors.New("no tracker project configured")
	}
	return &Client{config: config}, nil
}

// ClosedIssues lists the closed issues of a milestone.
func (c *Client) ClosedIssues(milestone string) ([]Issue, error) {
	args := []string{
		"issue", "list",
		"--repo", c.config.Project,
		"--milestone", milestone,
		"--closed",
		"--output", "json",
	}
	log.Debug(c.config.Command + " " + strings.Join(args, " "))

	out, err := exec.Command(c.config.Command, args...).Output()
	if err != nil {
		return nil, errors.Errorf("%s issue list: %v", c.config.Command, err)
	}

	return ParseIssues(out)
}

// ParseIssues decodes the tracker CLI issue JSON.
func ParseIssues(data []byte) ([]Issue, error) {
	issues := []Issue{}
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// RenderChangelog formats issues as the markdown section for version.
func RenderChangelog(version string, issues []Issue) string {
	var sb strings.Builder

	sb.WriteString("## " + version + "\n\n")

	if len(issues) == 0 {
		sb.WriteString("No tracked changes.\n")
		return sb.String()
	}

	for _, issue := range issues {
		sb.WriteString("- " + issue.Title)
		if issue.WebURL != "" {
			sb.WriteString(" ([#" + strconv.Itoa(issue.IID) + "](" + issue.WebURL + "))")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
