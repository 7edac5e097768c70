package commands

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/irahardianto/scribe/internal/engine/config"
	"github.com/irahardianto/scribe/internal/engine/git"
	"github.com/irahardianto/scribe/internal/engine/llm"
)

// mockMessageFS implements MessageFS for unit tests.
type mockMessageFS struct {
	content  []byte
	readErr  error
	writeErr error

	reads       int
	writtenPath string
	writtenData []byte
}

func (m *mockMessageFS) ReadFile(_ string) ([]byte, error) {
	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.content, nil
}

func (m *mockMessageFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writtenPath = name
	m.writtenData = data
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Model:        config.DefaultModel,
		GeminiAPIKey: "test-key",
	}
}

func newTestDraft(gitSvc *git.MockService, client *llm.MockClient, msgFS *mockMessageFS, cfg *config.Config) *Draft {
	return &Draft{
		Git:    gitSvc,
		Client: client,
		FS:     msgFS,
		Config: cfg,
	}
}

func TestDraft_MergeCommitSkipped(t *testing.T) {
	client := &llm.MockClient{Result: "should not be used"}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: "some diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG", Source: "merge"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Prompts) != 0 {
		t.Error("expected no API call for merge commit")
	}
	if msgFS.writtenData != nil {
		t.Error("expected commit-message file untouched for merge commit")
	}
}

func TestDraft_EmptyDiffIsNoOp(t *testing.T) {
	client := &llm.MockClient{Result: "should not be used"}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: ""}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.Prompts) != 0 {
		t.Error("expected no API call for empty diff")
	}
	if msgFS.writtenData != nil {
		t.Error("expected commit-message file untouched for empty diff")
	}
}

func TestDraft_WhitespaceDiffIsNoOp(t *testing.T) {
	client := &llm.MockClient{Result: "x"}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: "  \n\t\n"}, client, msgFS, testConfig())

	if err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.Prompts) != 0 {
		t.Error("expected no API call for whitespace-only diff")
	}
}

func TestDraft_WritesMessageVerbatim(t *testing.T) {
	const generated = "Add pancakes.\n\n- feat(api): add pancakes\n"
	client := &llm.MockClient{Result: generated}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: "diff --git a/x b/x\n+x\n", Branch: "main"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "COMMIT_EDITMSG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msgFS.writtenPath != "COMMIT_EDITMSG" {
		t.Errorf("expected write to COMMIT_EDITMSG, got %q", msgFS.writtenPath)
	}
	if string(msgFS.writtenData) != generated {
		t.Errorf("expected verbatim message, got %q", msgFS.writtenData)
	}
}

func TestDraft_MessageSourceBecomesHint(t *testing.T) {
	client := &llm.MockClient{Result: "generated message"}
	msgFS := &mockMessageFS{content: []byte("  fix the flaky test  \n")}
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG", Source: "message"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msgFS.reads != 1 {
		t.Fatalf("expected the existing file to be read once, got %d reads", msgFS.reads)
	}
	if len(client.Prompts) != 1 {
		t.Fatalf("expected 1 API call, got %d", len(client.Prompts))
	}
	// The trimmed file content is the hint.
	if !strings.Contains(client.Prompts[0], "hint: 'fix the flaky test'") {
		t.Errorf("expected trimmed hint in prompt, got:\n%s", client.Prompts[0])
	}
}

func TestDraft_MessageSourceReadError(t *testing.T) {
	client := &llm.MockClient{Result: "x"}
	msgFS := &mockMessageFS{readErr: errors.New("no such file")}
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG", Source: "message"})
	if err == nil {
		t.Fatal("expected error when hint file cannot be read")
	}
	if len(client.Prompts) != 0 {
		t.Error("expected no API call after read failure")
	}
}

func TestDraft_MissingAPIKeyFailsBeforeAPICall(t *testing.T) {
	client := &llm.MockClient{Result: "x"}
	msgFS := &mockMessageFS{}
	cfg := &config.Config{Model: config.DefaultModel} // no key
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, cfg)

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if len(client.Prompts) != 0 {
		t.Error("expected no API call without credentials")
	}
	if msgFS.writtenData != nil {
		t.Error("expected commit-message file untouched")
	}
}

func TestDraft_APIErrorLeavesFileUntouched(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("429 resource exhausted")}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err == nil {
		t.Fatal("expected error from failed API call")
	}
	if msgFS.writtenData != nil {
		t.Error("expected commit-message file untouched after API failure")
	}
}

func TestDraft_EmptyModelOutputLeavesFileUntouched(t *testing.T) {
	client := &llm.MockClient{Result: ""}
	msgFS := &mockMessageFS{}
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err != nil {
		t.Fatalf("empty model output should not be an error, got: %v", err)
	}
	if msgFS.writtenData != nil {
		t.Error("expected commit-message file untouched for empty model output")
	}
}

func TestDraft_DiffErrorIsFatal(t *testing.T) {
	client := &llm.MockClient{Result: "x"}
	msgFS := &mockMessageFS{}
	gitSvc := &git.MockService{DiffErr: errors.New("git: executable file not found")}
	d := newTestDraft(gitSvc, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err == nil {
		t.Fatal("expected error when the diff cannot be obtained")
	}
	if len(client.Prompts) != 0 {
		t.Error("expected no API call after diff failure")
	}
}

func TestDraft_BranchFailureTolerated(t *testing.T) {
	client := &llm.MockClient{Result: "generated"}
	msgFS := &mockMessageFS{}
	gitSvc := &git.MockService{Diff: "a diff", BranchErr: errors.New("fatal: ambiguous argument 'HEAD'")}
	d := newTestDraft(gitSvc, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err != nil {
		t.Fatalf("branch lookup failure should not be fatal, got: %v", err)
	}
	if len(client.Prompts) != 1 {
		t.Fatalf("expected 1 API call, got %d", len(client.Prompts))
	}
	if !strings.Contains(client.Prompts[0], "branch ''") {
		t.Error("expected empty branch in prompt after lookup failure")
	}
	if string(msgFS.writtenData) != "generated" {
		t.Errorf("expected message written, got %q", msgFS.writtenData)
	}
}

func TestDraft_WriteErrorSurfaced(t *testing.T) {
	client := &llm.MockClient{Result: "generated"}
	msgFS := &mockMessageFS{writeErr: errors.New("read-only file system")}
	d := newTestDraft(&git.MockService{Diff: "a diff"}, client, msgFS, testConfig())

	err := d.Execute(context.Background(), DraftOpts{MsgFile: "MSG"})
	if err == nil {
		t.Fatal("expected error when the commit-message file cannot be written")
	}
}

func TestDraft_Generate_ResultFields(t *testing.T) {
	client := &llm.MockClient{Result: "Summary.\n\n- feat(api): add thing\n"}
	gitSvc := &git.MockService{
		Diff:   "a diff",
		Branch: "feature/thing",
		Files:  []string{"api/thing.go"},
	}
	d := newTestDraft(gitSvc, client, &mockMessageFS{}, testConfig())

	result, ok, err := d.Generate(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a draft to be produced")
	}
	if result.Branch != "feature/thing" {
		t.Errorf("expected branch in result, got %q", result.Branch)
	}
	if result.Model != config.DefaultModel {
		t.Errorf("expected model in result, got %q", result.Model)
	}
	if len(result.Files) != 1 || result.Files[0] != "api/thing.go" {
		t.Errorf("expected staged files in result, got %v", result.Files)
	}
	if result.Message.Summary != "Summary." {
		t.Errorf("expected parsed summary, got %q", result.Message.Summary)
	}
	if len(result.Message.Changes) != 1 {
		t.Errorf("expected 1 parsed change, got %d", len(result.Message.Changes))
	}
}
