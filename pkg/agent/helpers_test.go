package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/dappsmith/conductor/pkg/models"
	"github.com/dappsmith/conductor/pkg/sandbox"
)

// sampleOutline mirrors the accessibility outline the sandbox bridge
// produces: role, quoted label, ref, optional testid.
const sampleOutline = `- generic [ref=e1]
  - button "Connect Wallet" [ref=e2] [testid=connect-wallet]
  - textbox "Amount" [ref=e3]
  - button "Accept cookies" [ref=e4]`

// scriptPlanner replays canned turns in order and captures every
// request it receives.
type scriptPlanner struct {
	mu    sync.Mutex
	turns []plannerTurn
	reqs  []*PlannerRequest
}

type plannerTurn struct {
	resp *PlannerResponse
	err  error
}

func (p *scriptPlanner) queue(resp *PlannerResponse) *scriptPlanner {
	p.turns = append(p.turns, plannerTurn{resp: resp})
	return p
}

func (p *scriptPlanner) fail(err error) *scriptPlanner {
	p.turns = append(p.turns, plannerTurn{err: err})
	return p
}

func (p *scriptPlanner) Complete(_ context.Context, req *PlannerRequest) (*PlannerResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reqs = append(p.reqs, req)
	if len(p.turns) == 0 {
		return nil, fmt.Errorf("unexpected planner call %d", len(p.reqs))
	}
	turn := p.turns[0]
	p.turns = p.turns[1:]
	if turn.err != nil {
		return nil, turn.err
	}
	return turn.resp, nil
}

func (p *scriptPlanner) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reqs)
}

func (p *scriptPlanner) request(i int) *PlannerRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reqs[i]
}

func toolResp(name string, input map[string]interface{}) *PlannerResponse {
	return &PlannerResponse{
		ToolCalls:  []ToolCall{{ID: "tu_" + name, Name: name, Input: input}},
		StopReason: StopToolUse,
		Model:      "claude-sonnet-4-5",
		Usage:      models.TokenUsage{InputTokens: 100, OutputTokens: 20},
	}
}

func textResp(text string) *PlannerResponse {
	return &PlannerResponse{
		Text:       text,
		StopReason: StopEndTurn,
		Model:      "claude-sonnet-4-5",
		Usage:      models.TokenUsage{InputTokens: 50, OutputTokens: 10},
	}
}

func stepCompleteResp() *PlannerResponse { return toolResp(ToolStepComplete, nil) }

func stepFailedResp(reason string) *PlannerResponse {
	return toolResp(ToolStepFailed, map[string]interface{}{"reason": reason})
}

func testCompleteResp(status, reason string) *PlannerResponse {
	return toolResp(ToolTestComplete, map[string]interface{}{"status": status, "reason": reason})
}

// fakePage records driver calls. When failWith is set every call
// returns that error.
type fakePage struct {
	mu       sync.Mutex
	outline  string
	url      string
	evalFn   func(expr string) (interface{}, error)
	failWith error

	clicks  []sandbox.Target
	typed   []string
	keys    []string
	selects []string
	navs    []string
	backs   int
	scrolls int
	shots   int
}

func newFakePage() *fakePage {
	return &fakePage{outline: sampleOutline, url: "https://dapp.test/"}
}

func (f *fakePage) Navigate(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navs = append(f.navs, url)
	f.url = url
	return f.failWith
}

func (f *fakePage) GoBack(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.backs++
	return f.failWith
}

func (f *fakePage) Click(_ context.Context, target sandbox.Target) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicks = append(f.clicks, target)
	return f.failWith
}

func (f *fakePage) Type(_ context.Context, target sandbox.Target, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typed = append(f.typed, text)
	return f.failWith
}

func (f *fakePage) PressKey(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.failWith
}

func (f *fakePage) SelectOption(_ context.Context, target sandbox.Target, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selects = append(f.selects, value)
	return f.failWith
}

func (f *fakePage) Scroll(context.Context, int, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scrolls++
	return f.failWith
}

func (f *fakePage) Evaluate(_ context.Context, expr string) (interface{}, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.evalFn != nil {
		return f.evalFn(expr)
	}
	return "", nil
}

func (f *fakePage) Screenshot(context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shots++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return []byte("png"), nil
}

func (f *fakePage) Snapshot(context.Context) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	return f.outline, nil
}

func (f *fakePage) URL(context.Context) (string, error) {
	return f.url, f.failWith
}

// fakeWallet reports handled-or-not for every popup driver.
type fakeWallet struct {
	mu      sync.Mutex
	handled bool
	err     error
	address string

	approves, signs, confirms, rejects, siwe int
	networks                                 []string
}

func (w *fakeWallet) op(counter *int) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	*counter++
	return w.handled, w.err
}

func (w *fakeWallet) Approve(context.Context) (bool, error) { return w.op(&w.approves) }
func (w *fakeWallet) Sign(context.Context) (bool, error)    { return w.op(&w.signs) }
func (w *fakeWallet) ConfirmTransaction(context.Context) (bool, error) {
	return w.op(&w.confirms)
}
func (w *fakeWallet) Reject(context.Context) (bool, error)          { return w.op(&w.rejects) }
func (w *fakeWallet) HandleSIWEPopup(context.Context) (bool, error) { return w.op(&w.siwe) }
func (w *fakeWallet) GetAddress() string                            { return w.address }

func (w *fakeWallet) SwitchNetwork(_ context.Context, name string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.networks = append(w.networks, name)
	return w.handled, w.err
}

func newTestToolset() (*Toolset, *fakePage, *fakeWallet) {
	page := newFakePage()
	wallet := &fakeWallet{handled: true, address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}
	return NewToolset(page, wallet, nil, nil), page, wallet
}
