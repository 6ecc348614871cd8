// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func allIds() []Id {
	return []Id{
		ShellNotFoundId,
		PathTranslationFailedId,
		UnknownPlatformId,
		ConfigLoadFailedId,
		SpawnFailedId,
		SubsystemNotDetectedId,
	}
}

func stubRender(t *testing.T) {
	t.Helper()
	original := render
	t.Cleanup(func() { render = original })
	render = func(in string, _ string) (string, error) {
		return in, nil
	}
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, id := range allIds() {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if ShellNotFoundId != 1 {
		t.Errorf("ShellNotFoundId = %d, want 1", ShellNotFoundId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{ShellNotFoundId, false, "Shell not found"},
		{PathTranslationFailedId, false, "cygpath -w /usr/bin"},
		{UnknownPlatformId, false, "msys2"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{SpawnFailedId, false, "Failed to start the command"},
		{SubsystemNotDetectedId, false, "MSYSTEM is not set"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Get(%d).Id() = %d", tt.id, issue.Id())
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues_Ordered(t *testing.T) {
	issues := Values()
	ids := allIds()

	if len(issues) != len(ids) {
		t.Fatalf("Values() returned %d issues, want %d", len(issues), len(ids))
	}
	for i, issue := range issues {
		if issue.Id() != ids[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, issue.Id(), ids[i])
		}
	}
}

func TestIssue_ExtLinksAreCloned(t *testing.T) {
	issue := Get(ShellNotFoundId)
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("ShellNotFound issue should have external links")
	}

	original := links[0]
	links[0] = "modified"
	if issue.ExtLinks()[0] != original {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
	if !strings.Contains(rendered, "https://docs.example.com") || !strings.Contains(rendered, "https://external.example.com") {
		t.Error("Render() should list every link")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, issue := range Values() {
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}
